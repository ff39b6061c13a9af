package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"yatrasetu/internal/models/db_models"
	"yatrasetu/internal/models/request_models"
	"yatrasetu/internal/models/response_models"
	"yatrasetu/internal/repositories"
	"yatrasetu/pkg/utils"
)

type ItineraryServiceInterface interface {
	Generate(ctx context.Context, req request_models.ItineraryRequest) (response_models.GeneratedItinerary, error)
	Synthesize(req request_models.ItineraryRequest) response_models.ItineraryResponse
	Themes() []response_models.DayThemeResponse
	GetSaved(ctx context.Context, id uuid.UUID) (response_models.GeneratedItinerary, error)
}

type ItineraryService struct {
	llm      utils.ChatClientInterface
	repo     repositories.ItineraryRepositoryInterface
	validate *validator.Validate
	logger   *zap.Logger
}

// NewItineraryService builds the generator. llm and repo may be nil: without
// a model every request is synthesized, without a repository nothing is saved.
func NewItineraryService(
	llm utils.ChatClientInterface,
	repo repositories.ItineraryRepositoryInterface,
	logger *zap.Logger,
) ItineraryServiceInterface {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ItineraryService{
		llm:      llm,
		repo:     repo,
		validate: newItineraryValidator(),
		logger:   logger.Named("itinerary"),
	}
}

func newItineraryValidator() *validator.Validate {
	v := validator.New()
	// notblank lives outside the default tag set.
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return v
}

func (s *ItineraryService) Generate(ctx context.Context, req request_models.ItineraryRequest) (response_models.GeneratedItinerary, error) {
	if req.Days < 1 {
		return response_models.GeneratedItinerary{}, fmt.Errorf("%w: got %d", utils.ErrInvalidDays, req.Days)
	}

	out := response_models.GeneratedItinerary{Source: response_models.SourceFallback}
	itinerary, err := s.fromModel(ctx, req)
	if err != nil {
		s.logger.Warn("using synthesized itinerary",
			zap.String("destination", req.Destination),
			zap.Int("days", req.Days),
			zap.Error(err))
		out.Itinerary = s.Synthesize(req)
	} else {
		out.Source = response_models.SourceAI
		out.Itinerary = itinerary
	}

	if id, ok := s.persist(ctx, req, out); ok {
		out.ID = id
	}
	return out, nil
}

func (s *ItineraryService) fromModel(ctx context.Context, req request_models.ItineraryRequest) (response_models.ItineraryResponse, error) {
	if s.llm == nil {
		return response_models.ItineraryResponse{}, utils.ErrLLMUnavailable
	}
	content, err := s.llm.Complete(ctx, utils.ChatRequest{
		System:      itinerarySystemPrompt,
		User:        buildItineraryPrompt(req),
		Temperature: itineraryTemperature,
		MaxTokens:   itineraryMaxTokens,
	})
	if err != nil {
		return response_models.ItineraryResponse{}, err
	}
	return s.parseItinerary(content, req.Days)
}

// parseItinerary decodes the model output and rejects anything that does not
// match the itinerary shape exactly. Partial results are never salvaged.
func (s *ItineraryService) parseItinerary(content string, days int) (response_models.ItineraryResponse, error) {
	var itinerary response_models.ItineraryResponse

	dec := json.NewDecoder(bytes.NewReader([]byte(utils.StripCodeFences(content))))
	if err := dec.Decode(&itinerary); err != nil {
		return response_models.ItineraryResponse{}, fmt.Errorf("%w: decode: %v", utils.ErrLLMMalformed, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return response_models.ItineraryResponse{}, fmt.Errorf("%w: trailing data after object", utils.ErrLLMMalformed)
	}

	if err := s.validate.Struct(itinerary); err != nil {
		return response_models.ItineraryResponse{}, fmt.Errorf("%w: %v", utils.ErrLLMMalformed, err)
	}
	if len(itinerary.Days) != days {
		return response_models.ItineraryResponse{}, fmt.Errorf("%w: expected %d days, got %d", utils.ErrLLMMalformed, days, len(itinerary.Days))
	}
	for i, d := range itinerary.Days {
		if d.Day != i+1 {
			return response_models.ItineraryResponse{}, fmt.Errorf("%w: day %d at position %d", utils.ErrLLMMalformed, d.Day, i+1)
		}
	}
	return itinerary, nil
}

// Synthesize builds the deterministic fallback itinerary. It is pure and
// total; days <= 0 yields an empty day list.
func (s *ItineraryService) Synthesize(req request_models.ItineraryRequest) response_models.ItineraryResponse {
	return SynthesizeItinerary(req)
}

func SynthesizeItinerary(req request_models.ItineraryRequest) response_models.ItineraryResponse {
	n := req.Days
	if n < 0 {
		n = 0
	}
	days := make([]response_models.DayPlan, 0, n)
	for i := 0; i < n; i++ {
		theme := ThemeFor(i)
		plan := response_models.DayPlan{
			Day:        i + 1,
			Title:      fmt.Sprintf("Day %d: %s", i+1, theme.Title),
			Activities: theme.activitiesFor(req.Destination),
			Highlights: cloneStrings(theme.Highlights),
			Meals:      cloneStrings(theme.Meals),
			Tips:       cloneStrings(theme.Tips),
			Budget: &response_models.Budget{
				Low:    1200 + 100*i,
				Medium: 2500 + 200*i,
				High:   4500 + 300*i,
			},
		}
		if i == 0 {
			plan.Accommodation = fmt.Sprintf("Heritage hotel or traditional guesthouse in %s", req.Destination)
		}
		days = append(days, plan)
	}

	return response_models.ItineraryResponse{
		Title: fmt.Sprintf("%d-Day %s Complete Cultural Experience", req.Days, req.Destination),
		Description: fmt.Sprintf("An immersive journey through %s, Gujarat, showcasing diverse aspects of local culture, "+
			"heritage, and traditions with unique experiences each day.", req.Destination),
		Days: days,
	}
}

func (s *ItineraryService) Themes() []response_models.DayThemeResponse {
	out := make([]response_models.DayThemeResponse, 0, ThemeCount())
	for i := 0; i < ThemeCount(); i++ {
		t := ThemeFor(i)
		out = append(out, response_models.DayThemeResponse{
			Index:      i,
			Title:      t.Title,
			Activities: cloneStrings(t.Activities),
			Highlights: cloneStrings(t.Highlights),
			Meals:      cloneStrings(t.Meals),
			Tips:       cloneStrings(t.Tips),
		})
	}
	return out
}

func (s *ItineraryService) GetSaved(ctx context.Context, id uuid.UUID) (response_models.GeneratedItinerary, error) {
	if s.repo == nil {
		return response_models.GeneratedItinerary{}, utils.ErrItineraryNotFound
	}
	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return response_models.GeneratedItinerary{}, err
	}

	var itinerary response_models.ItineraryResponse
	if err := json.Unmarshal([]byte(row.Body), &itinerary); err != nil {
		return response_models.GeneratedItinerary{}, fmt.Errorf("%w: stored itinerary %s: %v", utils.ErrDatabaseError, id, err)
	}
	return response_models.GeneratedItinerary{
		ID:        row.ID.String(),
		Source:    response_models.ItinerarySource(row.Source),
		Itinerary: itinerary,
	}, nil
}

func (s *ItineraryService) persist(ctx context.Context, req request_models.ItineraryRequest, out response_models.GeneratedItinerary) (string, bool) {
	if s.repo == nil {
		return "", false
	}
	body, err := json.Marshal(out.Itinerary)
	if err != nil {
		s.logger.Warn("failed to encode itinerary", zap.Error(err))
		return "", false
	}
	row := &db_models.SavedItinerary{
		Destination: req.Destination,
		Days:        req.Days,
		Interests:   req.Interests,
		GroupSize:   req.GroupSize,
		Source:      string(out.Source),
		Body:        string(body),
	}
	if err := s.repo.Save(ctx, row); err != nil {
		s.logger.Warn("failed to save itinerary", zap.String("destination", req.Destination), zap.Error(err))
		return "", false
	}
	return row.ID.String(), true
}
