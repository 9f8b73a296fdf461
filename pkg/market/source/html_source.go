package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"agrisense/entities"
	"agrisense/pkg/logger"
)

const maxPageBytes = 2 << 20

type htmlSource struct {
	url    string
	client *http.Client
	log    logger.Logger
}

// NewHTML scrapes the first <table> at url. Body rows must carry the cells
// crop, market, price, change, date in that order; other rows are skipped.
func NewHTML(url string, timeout time.Duration, log logger.Logger) Source {
	return &htmlSource{
		url:    url,
		client: &http.Client{Timeout: timeout},
		log:    logger.Component(log, "market_html_source"),
	}
}

func (s *htmlSource) Name() string { return s.url }

func (s *htmlSource) Fetch(ctx context.Context) ([]entities.MarketPrice, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", s.url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: status %d", s.url, resp.StatusCode)
	}
	ct := strings.ToLower(resp.Header.Get("Content-Type"))
	if ct != "" && !strings.Contains(ct, "text/html") {
		return nil, fmt.Errorf("unsupported content-type: %s", ct)
	}

	doc, err := goquery.NewDocumentFromReader(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.url, err)
	}
	return s.parse(doc), nil
}

func (s *htmlSource) parse(doc *goquery.Document) []entities.MarketPrice {
	var out []entities.MarketPrice
	doc.Find("table").First().Find("tr").Each(func(i int, tr *goquery.Selection) {
		var cells []string
		tr.Find("td").Each(func(_ int, td *goquery.Selection) {
			cells = append(cells, strings.TrimSpace(td.Text()))
		})
		if len(cells) < 5 {
			return
		}
		price, err1 := parseAmount(cells[2])
		change, err2 := parseAmount(cells[3])
		if err1 != nil || err2 != nil || cells[0] == "" {
			s.log.Debugf("skip row %d: %v", i, cells)
			return
		}
		out = append(out, entities.MarketPrice{
			ID:     len(out) + 1,
			Crop:   cells[0],
			Market: cells[1],
			Price:  price,
			Change: change,
			Trend:  entities.TrendOf(change),
			Date:   cells[4],
		})
	})
	return out
}

// parseAmount accepts "₹2,450", "+120", "-50" and "0".
func parseAmount(s string) (float64, error) {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	return strconv.ParseFloat(b.String(), 64)
}
