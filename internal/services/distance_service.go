package services

import (
	"context"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"googlemaps.github.io/maps"
)

type RouteEstimate struct {
	DistanceMeters int
	Duration       time.Duration
	DistanceText   string
}

type LatLng struct {
	Lat float64
	Lng float64
}

func (p LatLng) String() string {
	return fmt.Sprintf("%f,%f", p.Lat, p.Lng)
}

// DistanceServiceInterface estimates driving routes from a free-text origin.
type DistanceServiceInterface interface {
	Estimate(ctx context.Context, origin string, dest LatLng) (RouteEstimate, error)
}

// --------- cache keyed by (mode, origin, destination) ---------

type RouteKey struct {
	Mode   string
	Origin string
	Dest   string
}

func (k RouteKey) String() string {
	return k.Mode + "|" + k.Origin + "|" + k.Dest
}

type RouteCache interface {
	Get(k RouteKey) (RouteEstimate, bool)
	Set(k RouteKey, v RouteEstimate)
}

type inMemoryRouteCache struct {
	c *gocache.Cache
}

func NewInMemoryRouteCache(ttl time.Duration) RouteCache {
	return &inMemoryRouteCache{c: gocache.New(ttl, time.Hour)}
}

func (c *inMemoryRouteCache) Get(k RouteKey) (RouteEstimate, bool) {
	v, ok := c.c.Get(k.String())
	if !ok {
		return RouteEstimate{}, false
	}
	est, ok := v.(RouteEstimate)
	return est, ok
}

func (c *inMemoryRouteCache) Set(k RouteKey, v RouteEstimate) {
	c.c.SetDefault(k.String(), v)
}

// -------------- Google Maps directions client ---------------

type GoogleDistanceClient struct {
	client *maps.Client
	cache  RouteCache
	mode   maps.Mode
}

func NewGoogleDistanceClient(apiKey string, cache RouteCache, opts ...maps.ClientOption) (*GoogleDistanceClient, error) {
	client, err := maps.NewClient(append([]maps.ClientOption{maps.WithAPIKey(apiKey)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	if cache == nil {
		cache = NewInMemoryRouteCache(7 * 24 * time.Hour)
	}
	return &GoogleDistanceClient{client: client, cache: cache, mode: maps.TravelModeDriving}, nil
}

func (c *GoogleDistanceClient) Estimate(ctx context.Context, origin string, dest LatLng) (RouteEstimate, error) {
	k := RouteKey{Mode: string(c.mode), Origin: origin, Dest: dest.String()}
	if v, ok := c.cache.Get(k); ok {
		return v, nil
	}

	routes, _, err := c.client.Directions(ctx, &maps.DirectionsRequest{
		Origin:      origin,
		Destination: dest.String(),
		Mode:        c.mode,
		Region:      "in",
	})
	if err != nil {
		return RouteEstimate{}, fmt.Errorf("maps api error: %w", err)
	}
	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return RouteEstimate{}, fmt.Errorf("no route found from %q", origin)
	}

	leg := routes[0].Legs[0]
	est := RouteEstimate{
		DistanceMeters: leg.Distance.Meters,
		Duration:       leg.Duration,
		DistanceText:   leg.Distance.HumanReadable,
	}
	c.cache.Set(k, est)
	return est, nil
}
