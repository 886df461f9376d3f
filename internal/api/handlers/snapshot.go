package handlers

import (
	"context"
	"net/http"

	log "github.com/sirupsen/logrus"

	"mydahanu/directory/internal/catalog"
	"mydahanu/directory/internal/domain"
)

type SnapshotStore interface {
	Export() domain.Snapshot
	Import(ctx context.Context, snap domain.Snapshot) error
	Reset(ctx context.Context) error
	Stats() catalog.Stats
}

// SnapshotFetcher downloads a snapshot published elsewhere.
type SnapshotFetcher interface {
	FetchSnapshot(ctx context.Context, url string) (domain.Snapshot, error)
}

type SnapshotHandler struct {
	store   SnapshotStore
	fetcher SnapshotFetcher
}

func NewSnapshotHandler(store SnapshotStore, fetcher SnapshotFetcher) *SnapshotHandler {
	return &SnapshotHandler{store: store, fetcher: fetcher}
}

func (h *SnapshotHandler) Export(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Disposition", `attachment; filename="directory-snapshot.json"`)
	respond(w, r, http.StatusOK, h.store.Export())
}

func (h *SnapshotHandler) Import(w http.ResponseWriter, r *http.Request) {
	var req importRequest
	if !decode(w, r, &req) {
		return
	}

	snap := req.Snapshot
	if req.URL != "" {
		fetched, err := h.fetcher.FetchSnapshot(r.Context(), req.URL)
		if err != nil {
			log.Warnf("⚠️ Failed to fetch snapshot from %s: %v", req.URL, err)
			respondError(w, r, http.StatusBadGateway, "fetch_failed", err.Error())
			return
		}
		snap = fetched
	}

	if err := h.store.Import(r.Context(), snap); err != nil {
		respondErr(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, h.store.Stats())
}

func (h *SnapshotHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Reset(r.Context()); err != nil {
		respondErr(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, h.store.Stats())
}

func (h *SnapshotHandler) Stats(w http.ResponseWriter, r *http.Request) {
	respond(w, r, http.StatusOK, h.store.Stats())
}
