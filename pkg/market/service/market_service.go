package service

import (
	"context"
	"io"
	"time"

	"agrisense/entities"
)

type Filter struct {
	Query  string // crop substring
	Market string // market substring; "" or "all" matches everything
}

type Snapshot struct {
	Prices    []entities.MarketPrice `json:"prices"`
	Source    string                 `json:"source"`
	UpdatedAt time.Time              `json:"updated_at"`
}

type MarketService interface {
	List(f Filter) Snapshot
	// Refresh replaces the snapshot; on failure the previous snapshot stays.
	Refresh(ctx context.Context) error
	Export(w io.Writer, f Filter) error
}
