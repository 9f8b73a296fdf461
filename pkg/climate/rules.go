package climate

import (
	"agrisense/entities"
)

// RulesEngine answers every seasonal question the dashboard asks. Unknown
// seasons yield zero readings and empty lists, never an error.
type RulesEngine interface {
	SeasonWeather(entities.Season) (entities.WeatherReading, bool)
	Soil(entities.Season) entities.SoilReading
	Irrigation(entities.Season) []entities.IrrigationZoneSchedule
	Recommend(entities.Season, entities.WeatherReading, entities.SoilReading) []entities.CropRecommendation
}

type seasonRow struct {
	Weather entities.WeatherReading `yaml:"weather"`
	Soil    entities.SoilReading    `yaml:"soil"`
	Crops   []string                `yaml:"crops"`
}

type rules struct {
	seasons    map[entities.Season]seasonRow
	profiles   []entities.CropProfile // order breaks score ties
	irrigation map[entities.Season][]entities.IrrigationZoneSchedule
}

// monsoonSchedule replaces any configured schedule while it rains.
var monsoonSchedule = entities.IrrigationZoneSchedule{
	Zone:             "All Zones",
	CropType:         "N/A",
	GrowthStage:      "N/A",
	Reason:           "Sufficient rainfall. No irrigation required.",
	NextIrrigationMM: 0,
}

// Default returns the built-in tables.
func Default() RulesEngine { return defaultRules() }

func defaultRules() *rules {
	return &rules{
		seasons: map[entities.Season]seasonRow{
			entities.SeasonSummer: {
				Weather: entities.WeatherReading{Temperature: 35, Condition: "Sunny", Rainfall: 0, AirQualityIndex: "3 (Moderate)"},
				Soil:    entities.SoilReading{MoisturePercent: 40, FertilityPercent: 75, ConditionsNote: "Needs Frequent Watering"},
				Crops:   []string{"Pomegranate", "Grapes", "Mango", "Cotton", "Sorghum (Jowar)", "Groundnut", "Cashew"},
			},
			entities.SeasonMonsoon: {
				Weather: entities.WeatherReading{Temperature: 28, Condition: "Rainy", Rainfall: 25, AirQualityIndex: "1 (Good)"},
				Soil:    entities.SoilReading{MoisturePercent: 85, FertilityPercent: 80, ConditionsNote: "High Humidity, Watch for Fungus"},
				Crops:   []string{"Rice", "Sugarcane", "Soybean", "Turmeric", "Coconut", "Banana", "Onion"},
			},
			entities.SeasonWinter: {
				Weather: entities.WeatherReading{Temperature: 22, Condition: "Clear", Rainfall: 0, AirQualityIndex: "2 (Fair)"},
				Soil:    entities.SoilReading{MoisturePercent: 60, FertilityPercent: 85, ConditionsNote: "Excellent for Growth"},
				Crops:   []string{"Wheat", "Gram (Chickpea)", "Tur (Pigeon Pea)", "Nagpur Orange", "Onion", "Tomato", "Grapes"},
			},
		},
		profiles: []entities.CropProfile{
			{Name: "Grapes", IdealTemperature: 25, IdealMoisture: 60},
			{Name: "Pomegranate", IdealTemperature: 27, IdealMoisture: 55},
			{Name: "Onion", IdealTemperature: 22, IdealMoisture: 65},
			{Name: "Sugarcane", IdealTemperature: 28, IdealMoisture: 80},
			{Name: "Cotton", IdealTemperature: 26, IdealMoisture: 60},
			{Name: "Soybean", IdealTemperature: 25, IdealMoisture: 65},
			{Name: "Sorghum (Jowar)", IdealTemperature: 27, IdealMoisture: 50},
			{Name: "Tomato", IdealTemperature: 24, IdealMoisture: 70},
			{Name: "Rice", IdealTemperature: 28, IdealMoisture: 85},
			{Name: "Banana", IdealTemperature: 26, IdealMoisture: 75},
			{Name: "Mango", IdealTemperature: 27, IdealMoisture: 60},
			{Name: "Cashew", IdealTemperature: 26, IdealMoisture: 65},
			{Name: "Nagpur Orange", IdealTemperature: 25, IdealMoisture: 55},
			{Name: "Wheat", IdealTemperature: 22, IdealMoisture: 65},
			{Name: "Tur (Pigeon Pea)", IdealTemperature: 27, IdealMoisture: 55},
			{Name: "Gram (Chickpea)", IdealTemperature: 23, IdealMoisture: 50},
			{Name: "Groundnut", IdealTemperature: 26, IdealMoisture: 60},
			{Name: "Turmeric", IdealTemperature: 27, IdealMoisture: 75},
			{Name: "Coconut", IdealTemperature: 28, IdealMoisture: 80},
		},
		irrigation: map[entities.Season][]entities.IrrigationZoneSchedule{
			entities.SeasonSummer: {
				{Zone: "Zone A", CropType: "Pomegranate", GrowthStage: "Fruiting", Reason: "High heat requires frequent watering.", NextIrrigationMM: 20},
				{Zone: "Zone B", CropType: "Cotton", GrowthStage: "Boll Formation", Reason: "Critical water need during boll development.", NextIrrigationMM: 25},
			},
			entities.SeasonWinter: {
				{Zone: "Zone C", CropType: "Wheat", GrowthStage: "Tillering", Reason: "Cool weather reduces evaporation, but regular watering is key.", NextIrrigationMM: 15},
				{Zone: "Zone D", CropType: "Onion", GrowthStage: "Bulb Formation", Reason: "Consistent moisture needed for bulb development.", NextIrrigationMM: 10},
			},
		},
	}
}

// SeasonWeather returns the table reading for s. City is left empty; the
// weather resolver decides which location it belongs to.
func (r *rules) SeasonWeather(s entities.Season) (entities.WeatherReading, bool) {
	row, ok := r.seasons[s]
	if !ok {
		return entities.WeatherReading{}, false
	}
	return row.Weather, true
}

func (r *rules) Soil(s entities.Season) entities.SoilReading {
	return r.seasons[s].Soil
}

func (r *rules) Irrigation(s entities.Season) []entities.IrrigationZoneSchedule {
	if s == entities.SeasonMonsoon {
		return []entities.IrrigationZoneSchedule{monsoonSchedule}
	}
	src := r.irrigation[s]
	out := make([]entities.IrrigationZoneSchedule, len(src))
	copy(out, src)
	return out
}

// cropsFor filters the profile table down to the season's crop list, keeping
// profile table order.
func (r *rules) cropsFor(s entities.Season) []entities.CropProfile {
	row, ok := r.seasons[s]
	if !ok {
		return nil
	}
	want := make(map[string]bool, len(row.Crops))
	for _, name := range row.Crops {
		want[name] = true
	}
	var out []entities.CropProfile
	for _, p := range r.profiles {
		if want[p.Name] {
			out = append(out, p)
		}
	}
	return out
}

func (r *rules) Recommend(s entities.Season, w entities.WeatherReading, soil entities.SoilReading) []entities.CropRecommendation {
	return Score(s, r.cropsFor(s), w, soil)
}
