package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want TransportMode
	}{
		{"car", ModeCar},
		{" Carro ", ModeCar},
		{"Transporte Público", ModePublicTransit},
		{"ônibus", ModePublicTransit},
		{"bicicleta", ModeBike},
		{"A Pé", ModeWalk},
		{"walking", ModeWalk},
		{"teleport", ModeUnknown},
		{"", ModeUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseMode(tt.in), "ParseMode(%q)", tt.in)
	}
}

func TestProfiles(t *testing.T) {
	for _, m := range Modes() {
		p := ProfileFor(m)
		require.NotNil(t, p, "mode %s", m)
		assert.Greater(t, p.Speed(), 0.0)
		assert.GreaterOrEqual(t, p.CostPerKm(), 0.0)
		assert.GreaterOrEqual(t, p.EmissionFactor(), 0.0)
		assert.NotEmpty(t, p.ProviderKey())
		assert.Equal(t, m, p.Mode())
	}

	assert.Nil(t, ProfileFor(ModeUnknown))
	assert.True(t, ProfileFor(ModePublicTransit).FlatRate())
	assert.False(t, ProfileFor(ModeCar).FlatRate())
}

func TestBaseTimeMultiplier(t *testing.T) {
	assert.Equal(t, 2, RouteConditions{Sunny, Light}.BaseTimeMultiplier())
	assert.Equal(t, 3, RouteConditions{Cloudy, Moderate}.BaseTimeMultiplier())
	assert.Equal(t, 6, RouteConditions{Rainy, Heavy}.BaseTimeMultiplier())
	assert.Equal(t, 10, RouteConditions{Snowy, Gridlock}.BaseTimeMultiplier())
}

func TestParseConditions(t *testing.T) {
	w, err := ParseWeather("Snowy")
	require.NoError(t, err)
	assert.Equal(t, Snowy, w)

	tr, err := ParseTraffic("")
	require.NoError(t, err)
	assert.Equal(t, Moderate, tr)

	_, err = ParseWeather("hail")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = ParseTraffic("jammed")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestParseStrategyKind(t *testing.T) {
	assert.Equal(t, StrategyFastest, ParseStrategyKind("FastestRoute"))
	assert.Equal(t, StrategyShortest, ParseStrategyKind("shortest"))
	assert.Equal(t, StrategyEconomical, ParseStrategyKind("cheapest"))
	assert.Equal(t, StrategyEcoFriendly, ParseStrategyKind("eco"))
	assert.Equal(t, StrategyUnset, ParseStrategyKind("scenic"))
}
