package serviceImp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/xuri/excelize/v2"

	"agrisense/entities"
	"agrisense/pkg/logger"
	"agrisense/pkg/market/service"
	"agrisense/pkg/market/source"
)

const ExportSheet = "Prices"

type marketSvc struct {
	src source.Source
	log logger.Logger
	now func() time.Time

	mu   sync.RWMutex
	snap service.Snapshot
}

// NewMarketService seeds the snapshot from the static board so List never
// comes back empty before the first refresh.
func NewMarketService(src source.Source, log logger.Logger) service.MarketService {
	seed, _ := source.Static().Fetch(context.Background())
	return &marketSvc{
		src:  src,
		log:  logger.Component(log, "market_service"),
		now:  time.Now,
		snap: service.Snapshot{Prices: seed, Source: source.Static().Name(), UpdatedAt: time.Now()},
	}
}

func (s *marketSvc) Refresh(ctx context.Context) error {
	rows, err := s.src.Fetch(ctx)
	if err == nil && len(rows) == 0 {
		err = errors.New("no price rows")
	}
	if err != nil {
		s.log.Warnf("refresh from %s failed, keeping last snapshot: %v", s.src.Name(), err)
		return fmt.Errorf("refresh market prices: %w", err)
	}

	s.mu.Lock()
	s.snap = service.Snapshot{Prices: rows, Source: s.src.Name(), UpdatedAt: s.now()}
	s.mu.Unlock()
	s.log.Infof("market prices refreshed from %s: %d rows", s.src.Name(), len(rows))
	return nil
}

func (s *marketSvc) List(f service.Filter) service.Snapshot {
	s.mu.RLock()
	snap := s.snap
	s.mu.RUnlock()

	q := strings.ToLower(strings.TrimSpace(f.Query))
	m := strings.ToLower(strings.TrimSpace(f.Market))
	if m == "all" {
		m = ""
	}
	out := make([]entities.MarketPrice, 0, len(snap.Prices))
	for _, p := range snap.Prices {
		if q != "" && !strings.Contains(strings.ToLower(p.Crop), q) {
			continue
		}
		if m != "" && !strings.Contains(strings.ToLower(p.Market), m) {
			continue
		}
		out = append(out, p)
	}
	snap.Prices = out
	return snap
}

func (s *marketSvc) Export(w io.Writer, f service.Filter) error {
	snap := s.List(f)

	x := excelize.NewFile()
	defer x.Close()
	if err := x.SetSheetName("Sheet1", ExportSheet); err != nil {
		return err
	}
	header := []any{"Crop", "Market", "Price (₹/quintal)", "Change", "Trend", "Date"}
	if err := x.SetSheetRow(ExportSheet, "A1", &header); err != nil {
		return err
	}
	for i, p := range snap.Prices {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{p.Crop, p.Market, p.Price, p.Change, p.Trend, p.Date}
		if err := x.SetSheetRow(ExportSheet, cell, &row); err != nil {
			return err
		}
	}
	return x.Write(w)
}
