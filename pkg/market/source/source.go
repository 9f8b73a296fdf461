// Package source provides mandi price feeds.
package source

import (
	"context"

	"agrisense/entities"
)

type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]entities.MarketPrice, error)
}

type static struct{}

// Static serves the built-in price board.
func Static() Source { return static{} }

func (static) Name() string { return "static" }

func (static) Fetch(context.Context) ([]entities.MarketPrice, error) {
	out := make([]entities.MarketPrice, len(board))
	copy(out, board)
	return out, nil
}

var board = []entities.MarketPrice{
	{ID: 1, Crop: "Onion (Red)", Market: "Lasalgaon, Nashik", Price: 2450, Change: 120, Trend: entities.TrendUp, Date: "2024-05-20"},
	{ID: 2, Crop: "Tomato (Hybrid)", Market: "Kolar, Karnataka", Price: 1800, Change: -50, Trend: entities.TrendDown, Date: "2024-05-20"},
	{ID: 3, Crop: "Wheat (Lokwan)", Market: "Khanna, Punjab", Price: 2275, Change: 0, Trend: entities.TrendStable, Date: "2024-05-20"},
	{ID: 4, Crop: "Cotton (Medium)", Market: "Rajkot, Gujarat", Price: 7200, Change: 150, Trend: entities.TrendUp, Date: "2024-05-20"},
	{ID: 5, Crop: "Soybean", Market: "Indore, MP", Price: 4800, Change: -100, Trend: entities.TrendDown, Date: "2024-05-20"},
	{ID: 6, Crop: "Potato (Jyoti)", Market: "Agra, UP", Price: 1450, Change: 20, Trend: entities.TrendUp, Date: "2024-05-20"},
	{ID: 7, Crop: "Rice (Basmati)", Market: "Karnal, Haryana", Price: 3800, Change: 0, Trend: entities.TrendStable, Date: "2024-05-20"},
	{ID: 8, Crop: "Maize", Market: "Davangere, Karnataka", Price: 1950, Change: 40, Trend: entities.TrendUp, Date: "2024-05-20"},
	{ID: 9, Crop: "Grapes (Thompson)", Market: "Pimpalgaon, Nashik", Price: 6500, Change: -200, Trend: entities.TrendDown, Date: "2024-05-20"},
	{ID: 10, Crop: "Pomegranate (Bhagwa)", Market: "Nashik, Nashik", Price: 8200, Change: 100, Trend: entities.TrendUp, Date: "2024-05-20"},
	{ID: 11, Crop: "Tomato (Desi)", Market: "Pimpalgaon, Nashik", Price: 1600, Change: 50, Trend: entities.TrendUp, Date: "2024-05-20"},
	{ID: 12, Crop: "Bajra", Market: "Yeola, Nashik", Price: 2100, Change: 0, Trend: entities.TrendStable, Date: "2024-05-20"},
}
