package services

import (
	"fmt"
	"slices"
	"strings"

	"yatrasetu/internal/models/response_models"
	"yatrasetu/pkg/utils"
)

type DestinationServiceInterface interface {
	List(category, search, mood string) ([]response_models.Destination, error)
	Get(id string) (response_models.Destination, error)
	Categories() []response_models.CategoryCount
	// Match finds the destination a spoken phrase refers to.
	Match(spoken string) (response_models.Destination, bool)
}

type DestinationService struct {
	catalogue []response_models.Destination
}

func NewDestinationService() DestinationServiceInterface {
	return &DestinationService{catalogue: gujaratDestinations}
}

// List filters by category ("" or "all" for every category), by mood and by
// a case-insensitive search over name, region and specialty. The Gujarati
// name is matched as typed. An unknown mood is rejected.
func (s *DestinationService) List(category, search, mood string) ([]response_models.Destination, error) {
	category = strings.ToLower(strings.TrimSpace(category))
	mood = strings.ToLower(strings.TrimSpace(mood))
	search = strings.TrimSpace(search)
	needle := strings.ToLower(search)

	if mood != "" && !slices.Contains(destinationMoods, mood) {
		return nil, fmt.Errorf("%w: %s", utils.ErrInvalidMood, mood)
	}

	out := make([]response_models.Destination, 0, len(s.catalogue))
	for _, d := range s.catalogue {
		if category != "" && category != "all" && d.Category != category {
			continue
		}
		if mood != "" && !slices.Contains(d.Moods, mood) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(d.Name), needle) &&
			!strings.Contains(d.NameGu, search) &&
			!strings.Contains(strings.ToLower(d.Region), needle) &&
			!strings.Contains(strings.ToLower(d.Specialty), needle) {
			continue
		}
		out = append(out, cloneDestination(d))
	}
	return out, nil
}

func (s *DestinationService) Get(id string) (response_models.Destination, error) {
	for _, d := range s.catalogue {
		if d.ID == id {
			return cloneDestination(d), nil
		}
	}
	return response_models.Destination{}, fmt.Errorf("%w: %s", utils.ErrDestinationNotFound, id)
}

// Categories returns the "all" entry followed by each category with its
// destination count.
func (s *DestinationService) Categories() []response_models.CategoryCount {
	out := make([]response_models.CategoryCount, 0, len(destinationCategories)+1)
	out = append(out, response_models.CategoryCount{Value: "all", Label: "All", LabelGu: "બધા", Count: len(s.catalogue)})
	for _, c := range destinationCategories {
		for _, d := range s.catalogue {
			if d.Category == c.Value {
				c.Count++
			}
		}
		out = append(out, c)
	}
	return out
}

func (s *DestinationService) Match(spoken string) (response_models.Destination, bool) {
	spoken = strings.TrimSpace(spoken)
	if spoken == "" {
		return response_models.Destination{}, false
	}
	lower := strings.ToLower(spoken)
	for _, d := range s.catalogue {
		name := strings.ToLower(d.Name)
		if strings.Contains(name, lower) || strings.Contains(d.NameGu, spoken) || strings.Contains(lower, name) ||
			strings.Contains(spoken, d.NameGu) {
			return cloneDestination(d), true
		}
	}
	return response_models.Destination{}, false
}

func cloneDestination(d response_models.Destination) response_models.Destination {
	d.Moods = append([]string(nil), d.Moods...)
	return d
}
