package entities

const (
	TrendUp     = "up"
	TrendDown   = "down"
	TrendStable = "stable"
)

// MarketPrice is a mandi quote in rupees per quintal.
type MarketPrice struct {
	ID     int     `json:"id"`
	Crop   string  `json:"crop"`
	Market string  `json:"market"`
	Price  float64 `json:"price"`
	Change float64 `json:"change"`
	Trend  string  `json:"trend"`
	Date   string  `json:"date"` // YYYY-MM-DD
}

func TrendOf(change float64) string {
	switch {
	case change > 0:
		return TrendUp
	case change < 0:
		return TrendDown
	}
	return TrendStable
}
