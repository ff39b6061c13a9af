package services

import "strings"

// DayTheme is one entry of the fixed fallback catalogue. Activity text may
// contain the {destination} placeholder.
type DayTheme struct {
	Title      string
	Activities []string
	Highlights []string
	Meals      []string
	Tips       []string
}

const destinationPlaceholder = "{destination}"

var dayThemes = [...]DayTheme{
	{
		Title: "Arrival & Heritage Discovery",
		Activities: []string{
			"Explore {destination} heritage sites and monuments",
			"Visit traditional handicraft workshops and artisan quarters",
			"Evening cultural performance and local cuisine introduction",
		},
		Highlights: []string{"Historic Architecture", "Local Craftsmanship", "Cultural Welcome"},
		Meals:      []string{"Traditional Gujarati breakfast thali", "Local street food lunch", "Welcome dinner with folk music"},
		Tips:       []string{"Dress modestly for heritage sites", "Carry camera for architecture", "Learn basic Gujarati greetings"},
	},
	{
		Title: "Village Immersion & Crafts",
		Activities: []string{
			"Participate in traditional pottery or textile workshops",
			"Visit rural village communities and farming activities",
			"Evening storytelling session with village elders",
		},
		Highlights: []string{"Artisan Workshops", "Rural Life Experience", "Community Stories"},
		Meals:      []string{"Farm-fresh breakfast", "Village-style lunch with locals", "Traditional dinner around bonfire"},
		Tips:       []string{"Participate respectfully in village activities", "Support local artisans", "Carry mosquito repellent"},
	},
	{
		Title: "Nature & Adventure",
		Activities: []string{
			"Early morning bird watching and nature photography",
			"Trekking or desert safari adventures",
			"Sunset viewing from scenic viewpoints",
		},
		Highlights: []string{"Wildlife Spotting", "Adventure Activities", "Natural Beauty"},
		Meals:      []string{"Packed breakfast for trek", "Picnic lunch in nature", "Campfire dinner under stars"},
		Tips:       []string{"Wear comfortable trekking shoes", "Carry plenty of water", "Respect wildlife and environment"},
	},
	{
		Title: "Spiritual & Wellness",
		Activities: []string{
			"Visit ancient temples and meditation centers",
			"Participate in yoga and wellness sessions",
			"Evening aarti and spiritual discussions",
		},
		Highlights: []string{"Sacred Sites", "Meditation Experience", "Spiritual Learning"},
		Meals:      []string{"Sattvic breakfast", "Temple prasad lunch", "Simple vegetarian dinner"},
		Tips:       []string{"Remove shoes in temples", "Maintain silence during meditation", "Dress conservatively"},
	},
	{
		Title: "Culinary & Agricultural Tour",
		Activities: []string{
			"Cooking classes with local families",
			"Visit organic farms and agricultural processes",
			"Food market tours and spice education",
		},
		Highlights: []string{"Cooking Workshop", "Farm Experience", "Local Markets"},
		Meals:      []string{"Cook your own breakfast", "Farm-to-table lunch", "Multi-course dinner feast"},
		Tips:       []string{"Ask about ingredients and recipes", "Support organic farmers", "Try regional specialties"},
	},
	{
		Title: "Wildlife & Eco-Tourism",
		Activities: []string{
			"Wildlife sanctuary visits and safaris",
			"Bird watching and nature conservation learning",
			"Evening eco-lodge activities and stargazing",
		},
		Highlights: []string{"Wildlife Safari", "Conservation Learning", "Night Sky Observation"},
		Meals:      []string{"Early safari breakfast", "Eco-lodge lunch", "Outdoor barbecue dinner"},
		Tips:       []string{"Follow wildlife guidelines", "Maintain distance from animals", "Support conservation efforts"},
	},
	{
		Title: "Shopping & Cultural Farewell",
		Activities: []string{
			"Shopping for handicrafts and local specialties",
			"Final cultural site visits and photography",
			"Farewell dinner with cultural performances",
		},
		Highlights: []string{"Handicraft Shopping", "Cultural Memories", "Farewell Celebration"},
		Meals:      []string{"Local breakfast favorites", "Street food tour lunch", "Grand farewell dinner"},
		Tips:       []string{"Bargain respectfully at markets", "Keep receipts for handicrafts", "Exchange contact with new friends"},
	},
}

// ThemeFor returns the catalogue entry used for a 0-based day index.
func ThemeFor(dayIndex int) DayTheme {
	return dayThemes[dayIndex%len(dayThemes)]
}

// ThemeCount is the length of the cycle.
func ThemeCount() int {
	return len(dayThemes)
}

func (t DayTheme) activitiesFor(destination string) []string {
	out := make([]string, len(t.Activities))
	for i, a := range t.Activities {
		out[i] = strings.ReplaceAll(a, destinationPlaceholder, destination)
	}
	return out
}

func cloneStrings(in []string) []string {
	return append([]string(nil), in...)
}
