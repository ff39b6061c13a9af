package services

import (
	"fmt"
	"strings"

	"yatrasetu/internal/models/request_models"
)

const (
	itineraryTemperature = 0.8
	itineraryMaxTokens   = 4000
)

const itinerarySystemPrompt = "You are an expert travel planner specializing in Gujarat, India with deep knowledge of " +
	"rural tourism, cultural heritage, local traditions, and hidden gems. You create detailed, day-by-day itineraries " +
	"with completely unique activities for each day. Never repeat activities across different days. Focus on authentic, " +
	"immersive experiences that showcase different aspects of Gujarat culture each day."

var dayArchetypes = []string{
	"Arrival and local orientation, heritage sites, local markets",
	"Cultural immersion, handicraft workshops, village experiences",
	"Nature and adventure activities, outdoor experiences",
	"Spiritual and religious sites, meditation, local festivals",
	"Food tours, cooking classes, agricultural experiences",
	"Wildlife, nature reserves, eco-tourism",
	"Shopping, final cultural experiences, departure",
}

func buildItineraryPrompt(req request_models.ItineraryRequest) string {
	var archetypes strings.Builder
	for i, a := range dayArchetypes {
		fmt.Fprintf(&archetypes, "- Day %d: %s\n", i+1, a)
	}

	return fmt.Sprintf(`Create a detailed %[1]d-day travel itinerary for %[2]s, Gujarat, India.

Target Group: %[3]s
Interests: %[4]s

IMPORTANT: Each day must be COMPLETELY DIFFERENT with unique activities. Do not repeat activities across days.

Day Structure Requirements:
%[5]s
For each day provide SPECIFIC and UNIQUE:
1. Morning activities (different each day)
2. Afternoon experiences (varied and specific)
3. Evening entertainment (unique cultural activities)
4. Local food specialties to try
5. Specific places to visit with exact names
6. Cultural insights and local customs
7. Budget breakdown in INR with low <= medium <= high
8. Practical tips specific to that day's activities

Focus on authentic Gujarat village experiences, local handicrafts and artisan workshops, traditional festivals,
rural and agro-tourism, heritage architecture, wildlife, local cuisine and community interactions.

Return JSON only, no markdown, with exactly %[1]d entries in "days" numbered 1..%[1]d:
{
  "title": "Comprehensive %[1]d-Day %[2]s Cultural Journey",
  "description": "An immersive exploration of %[2]s's rich heritage, traditions, and rural charm",
  "days": [
    {
      "day": 1,
      "title": "Arrival & Heritage Discovery",
      "activities": ["Specific morning activity", "Unique afternoon experience", "Evening cultural activity"],
      "highlights": ["Specific landmark 1", "Specific landmark 2"],
      "meals": ["Local breakfast specialty", "Traditional lunch dish", "Regional dinner"],
      "accommodation": "Specific type of lodging recommendation",
      "tips": ["Practical tip 1", "Cultural tip 2"],
      "budget": {"low": 1500, "medium": 3000, "high": 5000}
    }
  ]
}`, req.Days, req.Destination, req.GroupSize, req.Interests, archetypes.String())
}
