package persist

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mydahanu/directory/internal/domain"
)

type fakeStore struct {
	mu     sync.Mutex
	values map[string]string
	writes []string
	fail   map[string]error

	entered chan string   // receives the key on every Set, when non-nil
	gate    chan struct{} // Set blocks on it, when non-nil
}

func newFakeStore() *fakeStore {
	return &fakeStore{values: make(map[string]string), fail: make(map[string]error)}
}

func (f *fakeStore) Get(_ context.Context, key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.values[key]
	return v, ok, nil
}

func (f *fakeStore) Set(_ context.Context, key, value string) error {
	if f.entered != nil {
		f.entered <- key
	}
	if f.gate != nil {
		<-f.gate
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes = append(f.writes, key+"="+value)
	if err := f.fail[key]; err != nil {
		return err
	}
	f.values[key] = value
	return nil
}

func (f *fakeStore) Remove(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.values, key)
	return nil
}

func (f *fakeStore) Close() error { return nil }

func (f *fakeStore) value(key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.values[key]
	return v, ok
}

func (f *fakeStore) writeLog() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.writes...)
}

func banners(ids ...string) domain.Banners {
	out := domain.Banners{}
	for _, id := range ids {
		out = append(out, domain.Banner{ID: id})
	}
	return out
}

func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestPersister_EnqueueFlush(t *testing.T) {
	ctx := testContext(t)
	store := newFakeStore()
	p := New(store)
	p.Start()
	defer p.Close(ctx)

	p.Enqueue(banners("1", "2"))
	require.NoError(t, p.Flush(ctx))

	v, ok := store.value(domain.KeyBanners)
	require.True(t, ok)
	assert.JSONEq(t, `[{"id":"1","title":"","description":"","image":""},{"id":"2","title":"","description":"","image":""}]`, v)
}

func TestPersister_SnapshotTakenAtEnqueue(t *testing.T) {
	ctx := testContext(t)
	store := newFakeStore()
	p := New(store)

	rec := banners("1")
	p.Enqueue(rec)
	rec[0].ID = "changed"

	p.Start()
	defer p.Close(ctx)
	require.NoError(t, p.Flush(ctx))

	v, _ := store.value(domain.KeyBanners)
	assert.Contains(t, v, `"id":"1"`)
}

func TestPersister_LatestWins(t *testing.T) {
	ctx := testContext(t)
	store := newFakeStore()
	store.entered = make(chan string, 10)
	store.gate = make(chan struct{})

	p := New(store)
	p.Start()

	p.Enqueue(banners("v1"))
	<-store.entered // worker is now blocked writing v1

	p.Enqueue(banners("v2"))
	p.Enqueue(banners("v3"))

	close(store.gate)
	require.NoError(t, p.Flush(ctx))
	require.NoError(t, p.Close(ctx))

	writes := store.writeLog()
	require.Len(t, writes, 2)
	assert.Contains(t, writes[0], `"id":"v1"`)
	assert.Contains(t, writes[1], `"id":"v3"`)
}

func TestPersister_FailureIsSwallowed(t *testing.T) {
	ctx := testContext(t)
	store := newFakeStore()
	store.fail[domain.KeyServices] = errors.New("disk full")

	p := New(store)
	p.Start()
	defer p.Close(ctx)

	p.Enqueue(domain.Services{{ID: "srv_1"}})
	p.Enqueue(banners("1"))
	require.NoError(t, p.Flush(ctx))

	_, ok := store.value(domain.KeyServices)
	assert.False(t, ok)
	_, ok = store.value(domain.KeyBanners)
	assert.True(t, ok)
}

func TestPersister_SaveReportsFailure(t *testing.T) {
	ctx := testContext(t)
	store := newFakeStore()
	boom := errors.New("disk full")
	store.fail[domain.KeyCategories] = boom

	p := New(store)
	p.Start()
	defer p.Close(ctx)

	err := p.Save(ctx, domain.Categories{{ID: "cat_x"}})
	assert.ErrorIs(t, err, boom)

	require.NoError(t, p.Save(ctx, banners("1")))
	_, ok := store.value(domain.KeyBanners)
	assert.True(t, ok)
}

func TestPersister_CloseDrainsAndRefuses(t *testing.T) {
	ctx := testContext(t)
	store := newFakeStore()
	p := New(store)

	p.Enqueue(banners("1"))
	require.NoError(t, p.Close(ctx))

	_, ok := store.value(domain.KeyBanners)
	assert.True(t, ok)

	assert.ErrorIs(t, p.Save(ctx, banners("2")), ErrClosed)
	p.Enqueue(banners("3"))
	require.NoError(t, p.Flush(ctx))
	require.NoError(t, p.Close(ctx))

	v, _ := store.value(domain.KeyBanners)
	assert.Contains(t, v, `"id":"1"`)
}

func TestPersister_FlushHonoursContext(t *testing.T) {
	p := New(newFakeStore())
	p.Enqueue(banners("1"))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	// Not started, so nothing drains.
	assert.ErrorIs(t, p.Flush(ctx), context.DeadlineExceeded)
	require.NoError(t, p.Close(testContext(t)))
}

func TestPersister_FlushWhenIdle(t *testing.T) {
	p := New(newFakeStore())
	assert.NoError(t, p.Flush(context.Background()))
}
