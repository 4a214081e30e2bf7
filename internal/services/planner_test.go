package services

import (
	"context"
	"strings"
	"testing"

	"route-recommendation-service/internal/augment"
	"route-recommendation-service/internal/config"
	"route-recommendation-service/internal/domain"
	"route-recommendation-service/internal/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type plannerFixture struct {
	planner *Planner
	history *events.HistoryRecorder
	alerts  *events.TrafficAlerter
}

func newPlanner(t *testing.T, settings config.Settings) plannerFixture {
	t.Helper()

	tourist := augment.NewTouristInfo(augment.DefaultAttractions())
	tourist.Shuffle = func(int, func(i, j int)) {}

	history := events.NewHistoryRecorder(events.DefaultHistorySize)
	alerts := events.NewTrafficAlerter(func(events.Alert) {})
	bus := events.NewBus()
	bus.Subscribe(history)
	bus.Subscribe(alerts)

	p := NewPlanner(settings, PlannerDeps{
		Routes:  NewRouteService(mockProvider(), newCache(t, settings.MaxCacheSize)),
		Tourist: tourist,
		Safety:  augment.NewSafetyAlert(augment.DefaultAlerts()),
		Bus:     bus,
		History: history,
	})
	return plannerFixture{planner: p, history: history, alerts: alerts}
}

func TestPlanner_Recommend(t *testing.T) {
	f := newPlanner(t, config.Defaults())

	r, err := f.planner.Recommend(context.Background(), PlanRequest{
		Origin:      "Centro",
		Destination: "Parque Ibirapuera",
		Mode:        domain.ModeCar,
		Conditions:  domain.DefaultConditions(),
	})
	require.NoError(t, err)

	// default strategy is Fastest
	assert.InDelta(t, 11.0, r.DistanceKm, 1e-9)
	assert.Contains(t, r.Narrative, "Take the fastest route using expressways")
	assert.Contains(t, r.Narrative, "Tourist attractions near the origin (Centro):")
	assert.Contains(t, r.Narrative, "  - Museu de Arte Moderna")
	assert.True(t, strings.HasPrefix(r.Narrative[len(r.Narrative)-1], "Safety alert for Parque Ibirapuera"))

	h := f.planner.History()
	require.Len(t, h, 1)
	assert.Equal(t, "Centro", h[0].Origin)
	assert.Equal(t, "Car", h[0].Mode)

	require.Len(t, f.alerts.Recent(), 1)
	assert.Equal(t, events.AlertLongRoute, f.alerts.Recent()[0].Kind)
}

func TestPlanner_CachedRouteIsNotAugmentedTwice(t *testing.T) {
	f := newPlanner(t, config.Defaults())
	req := PlanRequest{Origin: "Centro", Destination: "Parque Ibirapuera", Mode: domain.ModeCar}

	first, err := f.planner.Recommend(context.Background(), req)
	require.NoError(t, err)
	second, err := f.planner.Recommend(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	stats, ok := f.planner.CacheStats()
	require.True(t, ok)
	assert.Equal(t, int64(1), stats.Hits)
	assert.Len(t, f.planner.History(), 2)
}

func TestPlanner_AugmentsInOrderWithoutChangingMetrics(t *testing.T) {
	f := newPlanner(t, config.Defaults())
	on, off := true, false
	req := PlanRequest{
		Origin:      "Centro",
		Destination: "Parque Ibirapuera",
		Mode:        domain.ModeCar,
		Conditions:  domain.DefaultConditions(),
		UseCache:    &off,
	}

	req.TouristInfo, req.SafetyAlerts = &off, &off
	plain, err := f.planner.Recommend(context.Background(), req)
	require.NoError(t, err)

	req.TouristInfo, req.SafetyAlerts = &on, &on
	augmented, err := f.planner.Recommend(context.Background(), req)
	require.NoError(t, err)

	assert.True(t, augmented.SameMetrics(plain))
	require.Greater(t, len(augmented.Narrative), len(plain.Narrative))
	assert.Equal(t, plain.Narrative, augmented.Narrative[:len(plain.Narrative)])

	lastTourist, firstSafety := -1, -1
	for i, line := range augmented.Narrative {
		switch {
		case strings.HasPrefix(line, "Tourist attractions"), strings.HasPrefix(line, "  - "):
			lastTourist = i
		case strings.HasPrefix(line, "Safety alert") && firstSafety < 0:
			firstSafety = i
		}
	}
	require.Positive(t, lastTourist)
	require.Positive(t, firstSafety)
	assert.Less(t, lastTourist, firstSafety)
}

func TestPlanner_UseCacheOverridesDisabledDefault(t *testing.T) {
	s := config.Defaults()
	s.CacheEnabled = false
	f := newPlanner(t, s)
	on := true
	req := PlanRequest{Origin: "Centro", Destination: "Parque Ibirapuera", Mode: domain.ModeCar}

	_, err := f.planner.Recommend(context.Background(), req)
	require.NoError(t, err)
	stats, _ := f.planner.CacheStats()
	assert.Zero(t, stats.Entries)

	req.UseCache = &on
	for range 2 {
		_, err = f.planner.Recommend(context.Background(), req)
		require.NoError(t, err)
	}
	stats, _ = f.planner.CacheStats()
	assert.Equal(t, 1, stats.Entries)
	assert.Equal(t, int64(1), stats.Hits)
}

func TestPlanner_Overrides(t *testing.T) {
	f := newPlanner(t, config.Defaults())
	off := false

	r, err := f.planner.Recommend(context.Background(), PlanRequest{
		Origin:       "Centro",
		Destination:  "Parque Ibirapuera",
		Mode:         domain.ModePublicTransit,
		Strategy:     domain.StrategyEconomical,
		TouristInfo:  &off,
		SafetyAlerts: &off,
		UseCache:     &off,
	})
	require.NoError(t, err)

	assert.Equal(t, "Public Transit", r.TransportModeName)
	assert.InDelta(t, 4.5*0.85, r.Cost, 1e-9)
	assert.Equal(t, "Arrive at Parque Ibirapuera", r.Narrative[len(r.Narrative)-1])

	stats, _ := f.planner.CacheStats()
	assert.Zero(t, stats.Entries)
}

func TestPlanner_SettingsDisableAugmenters(t *testing.T) {
	s := config.Defaults()
	s.ShowTouristInfo = false
	f := newPlanner(t, s)

	r, err := f.planner.Recommend(context.Background(), PlanRequest{Origin: "Centro", Destination: "Parque Ibirapuera", Mode: domain.ModeCar})
	require.NoError(t, err)

	for _, line := range r.Narrative {
		assert.NotContains(t, line, "Tourist attractions")
	}
}

func TestPlanner_Errors(t *testing.T) {
	f := newPlanner(t, config.Defaults())

	_, err := f.planner.Recommend(context.Background(), PlanRequest{Origin: "A", Destination: "B", Mode: domain.ModeUnknown})
	assert.ErrorIs(t, err, domain.ErrUnsupportedMode)

	_, err = f.planner.Recommend(context.Background(), PlanRequest{Origin: "A", Destination: "B", Mode: domain.ModeCar, Strategy: domain.StrategyKind(42)})
	assert.ErrorIs(t, err, domain.ErrUnsupportedStrategy)

	_, err = f.planner.Recommend(context.Background(), PlanRequest{Origin: "Centro", Destination: "Nowhere", Mode: domain.ModeCar})
	assert.ErrorIs(t, err, domain.ErrProviderUnavailable)
	assert.Empty(t, f.planner.History(), "failed requests are not published")
}

func TestPlanner_ClearCacheAndHistory(t *testing.T) {
	f := newPlanner(t, config.Defaults())
	_, err := f.planner.Recommend(context.Background(), PlanRequest{Origin: "Centro", Destination: "Parque Ibirapuera", Mode: domain.ModeCar})
	require.NoError(t, err)

	f.planner.ClearCache()
	f.planner.ClearHistory()

	stats, _ := f.planner.CacheStats()
	assert.Zero(t, stats.Entries)
	assert.Empty(t, f.planner.History())
}
