package augment

import (
	"route-recommendation-service/internal/domain"
	"sync"
)

// Attractions maps a location name to points of interest near it.
// Lookups are case-insensitive exact matches. Safe for concurrent use.
type Attractions struct {
	mu    sync.RWMutex
	items map[string][]string
}

func NewAttractions(seed map[string][]string) *Attractions {
	a := &Attractions{items: make(map[string][]string, len(seed))}
	for loc, list := range seed {
		a.Set(loc, list)
	}
	return a
}

func (a *Attractions) Lookup(location string) ([]string, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	list, ok := a.items[domain.NormalizeLocation(location)]
	if !ok || len(list) == 0 {
		return nil, false
	}
	return append([]string(nil), list...), true
}

// Set replaces the attractions for location.
func (a *Attractions) Set(location string, list []string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.items[domain.NormalizeLocation(location)] = append([]string(nil), list...)
}

// Merge appends names not already listed for location.
func (a *Attractions) Merge(location string, names []string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	k := domain.NormalizeLocation(location)
	cur := a.items[k]
	seen := make(map[string]struct{}, len(cur))
	for _, n := range cur {
		seen[n] = struct{}{}
	}
	for _, n := range names {
		if _, ok := seen[n]; ok || n == "" {
			continue
		}
		seen[n] = struct{}{}
		cur = append(cur, n)
	}
	a.items[k] = cur
}

func DefaultAttractions() *Attractions {
	return NewAttractions(map[string][]string{
		"São Paulo": {
			"Museu de Arte de São Paulo (MASP)",
			"Parque Ibirapuera",
			"Pinacoteca do Estado",
			"Mercado Municipal",
			"Avenida Paulista",
		},
		"Rio de Janeiro": {
			"Cristo Redentor",
			"Pão de Açúcar",
			"Praia de Copacabana",
			"Maracanã",
			"Jardim Botânico",
		},
		"Centro": {
			"Catedral da Sé",
			"Teatro Municipal",
			"Pateo do Collegio",
			"Edifício Martinelli",
			"Mercado Municipal",
		},
		"Parque Ibirapuera": {
			"Museu de Arte Moderna",
			"Pavilhão Japonês",
			"Planetário",
			"Museu Afro Brasil",
			"Auditório Ibirapuera",
		},
	})
}

// Alert is a safety notice attached to a named area.
type Alert struct {
	Area    string
	Message string
}

// DefaultAlerts lists known areas in the order they are checked.
func DefaultAlerts() []Alert {
	return []Alert{
		{Area: "Centro", Message: "Stay alert in busy areas, especially at night."},
		{Area: "Parque Ibirapuera", Message: "Avoid visiting the park after closing time."},
		{Area: "Estação Sé", Message: "High incidence of theft; keep your belongings secure."},
		{Area: "Praça da República", Message: "Watch your belongings during peak hours."},
	}
}
