package geostore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"route-recommendation-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSeeds(t *testing.T) {
	p := filepath.Join(t.TempDir(), "geocodes.json")
	require.NoError(t, os.WriteFile(p, []byte(`[
		{"name": " Parque   Ibirapuera ", "lon": -46.6575, "lat": -23.5874},
		{"name": "Centro", "lon": -46.6333, "lat": -23.5505}
	]`), 0o600))

	got, err := LoadSeeds(p)
	require.NoError(t, err)

	assert.Equal(t, map[string]domain.Coordinates{
		"Parque Ibirapuera": {Lon: -46.6575, Lat: -23.5874},
		"Centro":            {Lon: -46.6333, Lat: -23.5505},
	}, got)
}

func TestLoadSeeds_Rejects(t *testing.T) {
	cases := map[string]string{
		"empty name":   `[{"name": " ", "lon": 1, "lat": 1}]`,
		"out of range": `[{"name": "X", "lon": 200, "lat": 1}]`,
		"bad json":     `{`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			p := filepath.Join(t.TempDir(), "geocodes.json")
			require.NoError(t, os.WriteFile(p, []byte(body), 0o600))

			_, err := LoadSeeds(p)
			assert.Error(t, err)
		})
	}
}

func TestLoadSeeds_RepositoryFile(t *testing.T) {
	got, err := LoadSeeds(filepath.Join("..", "..", "..", "data", "seeds", "geocodes.json"))
	require.NoError(t, err)
	assert.Contains(t, got, "Centro")
}

func TestSQLGeocodeStore_NilDB(t *testing.T) {
	s := NewSQLGeocodeStore(nil)

	_, err := s.GetMany(context.Background(), []string{"Centro"})
	assert.Error(t, err)

	err = s.PutMany(context.Background(), map[string]domain.Coordinates{"Centro": {}})
	assert.Error(t, err)
}

func TestUniqueNames(t *testing.T) {
	assert.Equal(t, []string{"A", "B"}, uniqueNames([]string{" A", "", "B", "A "}))
}
