package serviceImp

import (
	"agrisense/entities"
	"agrisense/pkg/community/service"
)

const defaultPollID = "season-challenge"

func defaultPoll() *entities.Poll {
	return &entities.Poll{
		PollID:   defaultPollID,
		Question: "What's your biggest challenge this season?",
		Options: []entities.PollOption{
			{PollID: defaultPollID, Ord: 0, Text: "Pest control", Votes: 38},
			{PollID: defaultPollID, Ord: 1, Text: "Water management", Votes: 25},
			{PollID: defaultPollID, Ord: 2, Text: "Soil fertility", Votes: 18},
			{PollID: defaultPollID, Ord: 3, Text: "Other", Votes: 5},
		},
	}
}

var seasonalTips = map[entities.Season][]entities.FarmingTip{
	entities.SeasonSummer: {
		{Tip: "Mulch to retain soil moisture and reduce weed growth.", Category: "Soil & Water", Author: "Expert Team"},
		{Tip: "Choose heat-tolerant crop varieties for better yields.", Category: "Crop Selection", Author: "Dr. Sharma"},
		{Tip: "Scout for pests like spider mites and whiteflies.", Category: "Pest Control", Author: "AgriTech Labs"},
	},
	entities.SeasonMonsoon: {
		{Tip: "Ensure proper drainage to prevent waterlogging.", Category: "Water Management", Author: "Expert Team"},
		{Tip: "Plant cover crops to prevent soil erosion.", Category: "Soil Health", Author: "Dr. Sharma"},
		{Tip: "Monitor for fungal diseases in humid conditions.", Category: "Disease Control", Author: "AgriTech Labs"},
	},
	entities.SeasonWinter: {
		{Tip: "Use row covers or cloches to protect crops from frost.", Category: "Crop Protection", Author: "Expert Team"},
		{Tip: "Plant garlic and onions for a winter harvest.", Category: "Planting", Author: "Dr. Sharma"},
		{Tip: "Reduce watering frequency as evaporation is lower.", Category: "Water Management", Author: "AgriTech Labs"},
	},
}

var achievements = []service.Achievement{
	{Name: "Water Saver", Desc: "Saved 1000L+ water this month", Icon: "💧", Progress: 100, Goal: 1000, Current: 1000},
	{Name: "Eco Warrior", Desc: "50 eco-actions", Icon: "🌱", Progress: 100, Goal: 50, Current: 50},
	{Name: "Knowledge Seeker", Desc: "25 tips learned", Icon: "📚", Progress: 100, Goal: 25, Current: 25},
	{Name: "Community Helper", Desc: "Helped 5 other farmers", Icon: "🤝", Progress: 60, Goal: 5, Current: 3},
	{Name: "Harvest Master", Desc: "Harvested 500kg of produce", Icon: "🚜", Progress: 20, Goal: 500, Current: 100},
	{Name: "Pest Control Expert", Desc: "Successfully managed 10 pest infestations", Icon: "🐞", Progress: 0, Goal: 10, Current: 0},
}

// upcomingAchievements is how many unfinished achievements the hub previews.
const upcomingAchievements = 2
