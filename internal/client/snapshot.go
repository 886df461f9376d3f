package client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.uber.org/ratelimit"
	"resty.dev/v3"

	"mydahanu/directory/internal/config"
	"mydahanu/directory/internal/domain"
)

// SnapshotClient fetches catalog snapshots published over HTTP.
type SnapshotClient interface {
	FetchSnapshot(ctx context.Context, url string) (domain.Snapshot, error)
}

type snapshotClient struct {
	rl         ratelimit.Limiter
	timeout    time.Duration
	httpClient *resty.Client
}

func NewSnapshotClient(cfg config.ImportConfig) SnapshotClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(cfg.MaxRetries).
		SetRetryWaitTime(500*time.Millisecond).
		SetRetryMaxWaitTime(5*time.Second).
		SetHeader("Accept", "application/json")

	rl := ratelimit.NewUnlimited()
	if cfg.MaxRequestsPerSecond > 0 {
		rl = ratelimit.New(cfg.MaxRequestsPerSecond)
	}

	return &snapshotClient{
		rl:         rl,
		timeout:    timeout,
		httpClient: client,
	}
}

// FetchSnapshot downloads and validates the snapshot at url.
func (c *snapshotClient) FetchSnapshot(ctx context.Context, url string) (domain.Snapshot, error) {
	c.rl.Take()

	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.httpClient.R().
		SetContext(reqCtx).
		Get(url)
	if err != nil {
		if ctx.Err() != nil {
			return domain.Snapshot{}, fmt.Errorf("request cancelled: %w", ctx.Err())
		}
		return domain.Snapshot{}, fmt.Errorf("failed to fetch snapshot: %w", err)
	}

	if resp.IsError() {
		return domain.Snapshot{}, fmt.Errorf("HTTP error: %d %s", resp.StatusCode(), resp.Status())
	}

	var snap domain.Snapshot
	if err := json.Unmarshal([]byte(resp.String()), &snap); err != nil {
		return domain.Snapshot{}, fmt.Errorf("%w: %v", domain.ErrInvalidSnapshot, err)
	}
	if err := snap.Validate(); err != nil {
		return domain.Snapshot{}, err
	}

	log.Infof("📦 Fetched snapshot %s from %s (%d categories, %d services)",
		snap.Version, url, len(snap.Categories), len(snap.Services))
	return snap, nil
}
