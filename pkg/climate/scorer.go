package climate

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"agrisense/entities"
)

// MaxRecommendations caps how many crops the dashboard shows.
const MaxRecommendations = 10

const (
	tempPenalty     = 2.0
	moisturePenalty = 1.5
)

// Match scores one crop against current conditions: 100 minus a linear penalty
// on the temperature and moisture gaps, rounded and clamped to [0,100].
func Match(temperature, moisture float64, p entities.CropProfile) int {
	tempDiff := math.Abs(temperature - p.IdealTemperature)
	moistureDiff := math.Abs(moisture - p.IdealMoisture)
	m := 100 - tempPenalty*tempDiff - moisturePenalty*moistureDiff
	if math.IsNaN(m) || m < 0 {
		return 0
	}
	if m > 100 {
		return 100
	}
	return int(math.Round(m))
}

// Score ranks crops by Match, highest first. Ties keep the order of crops.
func Score(s entities.Season, crops []entities.CropProfile, w entities.WeatherReading, soil entities.SoilReading) []entities.CropRecommendation {
	out := make([]entities.CropRecommendation, 0, len(crops))
	note := recommendationNote(s, w, soil)
	for _, c := range crops {
		out = append(out, entities.CropRecommendation{
			Name:         c.Name,
			MatchPercent: Match(w.Temperature, soil.MoisturePercent, c),
			Note:         note,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].MatchPercent > out[j].MatchPercent })
	if len(out) > MaxRecommendations {
		out = out[:MaxRecommendations]
	}
	return out
}

func recommendationNote(s entities.Season, w entities.WeatherReading, soil entities.SoilReading) string {
	return fmt.Sprintf("Thrives in %s conditions. Ideal for %s weather and %s%% soil moisture.",
		s, strings.ToLower(w.Condition), strconv.FormatFloat(soil.MoisturePercent, 'f', -1, 64))
}
