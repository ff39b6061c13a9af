package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"yatrasetu/internal/models/response_models"
)

const distanceLookupTimeout = 5 * time.Second

type DirectionsServiceInterface interface {
	Directions(ctx context.Context, transcript, language string) response_models.Directions
}

type DirectionsService struct {
	destinations DestinationServiceInterface
	distance     DistanceServiceInterface
	origin       string
	logger       *zap.Logger
}

// NewDirectionsService builds spoken directions. distance may be nil, in
// which case no route estimate is attached.
func NewDirectionsService(
	destinations DestinationServiceInterface,
	distance DistanceServiceInterface,
	origin string,
	logger *zap.Logger,
) DirectionsServiceInterface {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DirectionsService{
		destinations: destinations,
		distance:     distance,
		origin:       origin,
		logger:       logger.Named("directions"),
	}
}

func (s *DirectionsService) Directions(ctx context.Context, transcript, language string) response_models.Directions {
	gujarati := strings.HasPrefix(strings.ToLower(language), "gu")
	out := response_models.Directions{Language: "en"}
	if gujarati {
		out.Language = "gu"
	}

	dest, ok := s.destinations.Match(transcript)
	if !ok {
		out.Text = fmt.Sprintf("Navigate to %s. Follow the main highway and look for local signboards. "+
			"Ask locals for specific directions to reach your destination safely.", strings.TrimSpace(transcript))
		return out
	}
	out.Destination = &dest

	est, hasRoute := s.estimate(ctx, dest)
	if hasRoute {
		out.DistanceMeters = est.DistanceMeters
		out.DurationText = est.Duration.Round(time.Minute).String()
	}

	if gujarati {
		out.Text = fmt.Sprintf("%s જવા માટે: %s. %sમાં આવેલું આ સ્થળ %s માટે પ્રસિદ્ધ છે. %s દરમિયાન જવાનું શ્રેષ્ઠ રહેશે.",
			dest.NameGu, dest.HowToReachGu, dest.RegionGu, dest.SpecialtyGu, dest.BestTimeGu)
		if hasRoute {
			out.Text += fmt.Sprintf(" %sથી અંદાજે %d કિમી.", s.origin, kilometres(est.DistanceMeters))
		}
		return out
	}

	out.Text = fmt.Sprintf("To reach %s: %s. This %s in %s is best visited during %s.",
		dest.Name, dest.HowToReach, strings.ToLower(dest.Specialty), dest.Region, strings.ToLower(dest.BestTime))
	if hasRoute {
		out.Text += fmt.Sprintf(" Current distance: approximately %d km from %s.", kilometres(est.DistanceMeters), s.origin)
	}
	return out
}

// estimate makes one bounded lookup. Failures only drop the distance.
func (s *DirectionsService) estimate(ctx context.Context, dest response_models.Destination) (RouteEstimate, bool) {
	if s.distance == nil || s.origin == "" {
		return RouteEstimate{}, false
	}
	ctx, cancel := context.WithTimeout(ctx, distanceLookupTimeout)
	defer cancel()

	est, err := s.distance.Estimate(ctx, s.origin, LatLng{Lat: dest.Lat, Lng: dest.Lng})
	if err != nil {
		s.logger.Warn("distance lookup failed", zap.String("destination", dest.ID), zap.Error(err))
		return RouteEstimate{}, false
	}
	return est, true
}

func kilometres(meters int) int {
	return (meters + 500) / 1000
}
