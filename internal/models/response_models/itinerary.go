package response_models

// ItineraryResponse is the shape returned to clients and the shape the
// remote model is asked to produce.
type ItineraryResponse struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	Days        []DayPlan `json:"days" validate:"required,min=1,dive"`
}

type DayPlan struct {
	Day           int      `json:"day" validate:"gte=1"`
	Title         string   `json:"title" validate:"required"`
	Activities    []string `json:"activities" validate:"min=1,dive,required,notblank"`
	Highlights    []string `json:"highlights,omitempty"`
	Meals         []string `json:"meals,omitempty" validate:"omitempty,len=3"`
	Accommodation string   `json:"accommodation,omitempty"`
	Tips          []string `json:"tips,omitempty"`
	Budget        *Budget  `json:"budget,omitempty"`
}

// Budget is a per-day cost estimate in INR.
type Budget struct {
	Low    int `json:"low" validate:"gte=0"`
	Medium int `json:"medium" validate:"gtefield=Low"`
	High   int `json:"high" validate:"gtefield=Medium"`
}

type ItinerarySource string

const (
	SourceAI       ItinerarySource = "ai"
	SourceFallback ItinerarySource = "fallback"
)

type GeneratedItinerary struct {
	ID        string            `json:"id,omitempty"`
	Source    ItinerarySource   `json:"source"`
	Itinerary ItineraryResponse `json:"itinerary"`
}

type DayThemeResponse struct {
	Index      int      `json:"index"`
	Title      string   `json:"title"`
	Activities []string `json:"activities"`
	Highlights []string `json:"highlights"`
	Meals      []string `json:"meals"`
	Tips       []string `json:"tips"`
}
