package response_models

type Destination struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	NameGu       string   `json:"nameGu"`
	Region       string   `json:"region"`
	RegionGu     string   `json:"regionGu"`
	Category     string   `json:"category"`
	Lat          float64  `json:"lat"`
	Lng          float64  `json:"lng"`
	Rating       float64  `json:"rating"`
	Reviews      int      `json:"reviews"`
	Specialty    string   `json:"specialty"`
	SpecialtyGu  string   `json:"specialtyGu"`
	Description  string   `json:"description"`
	BestTime     string   `json:"bestTime"`
	BestTimeGu   string   `json:"bestTimeGu"`
	HowToReach   string   `json:"howToReach"`
	HowToReachGu string   `json:"howToReachGu"`
	Moods        []string `json:"moods"`
}

// CategoryCount is one catalogue category with the number of destinations
// in it. The "all" entry counts the whole catalogue.
type CategoryCount struct {
	Value   string `json:"value"`
	Label   string `json:"label"`
	LabelGu string `json:"labelGu"`
	Count   int    `json:"count"`
}

type Directions struct {
	Destination    *Destination `json:"destination,omitempty"`
	Language       string       `json:"language"`
	Text           string       `json:"text"`
	DistanceMeters int          `json:"distanceMeters,omitempty"`
	DurationText   string       `json:"durationText,omitempty"`
}

type SpeechCapabilities struct {
	Recognition bool     `json:"recognition"`
	Synthesis   bool     `json:"synthesis"`
	Languages   []string `json:"languages"`
}
