package domain

import "strings"

// TransportMode identifies one of the supported ways of travelling.
type TransportMode int

const (
	ModeUnknown TransportMode = iota
	ModeCar
	ModePublicTransit
	ModeBike
	ModeWalk
)

// Immutable per-mode physical and economic constants.
// Profiles are package-level values created once; callers share pointers to them.
type TransportProfile struct {
	mode           TransportMode
	name           string
	providerKey    string
	speedKmh       float64
	costPerKm      float64
	emissionFactor float64
	flatRate       bool
}

func (p *TransportProfile) Mode() TransportMode { return p.mode }

// Average speed in km/h.
func (p *TransportProfile) Speed() float64 { return p.speedKmh }

// Cost per km, or the flat fare when FlatRate reports true.
func (p *TransportProfile) CostPerKm() float64 { return p.costPerKm }

func (p *TransportProfile) Name() string { return p.name }

// CO2 emitted per km, in kg.
func (p *TransportProfile) EmissionFactor() float64 { return p.emissionFactor }

// FlatRate reports whether CostPerKm is a fixed fare for the whole trip.
func (p *TransportProfile) FlatRate() bool { return p.flatRate }

// ProviderKey is the vehicle type understood by map providers.
func (p *TransportProfile) ProviderKey() string { return p.providerKey }

var (
	carProfile = &TransportProfile{
		mode: ModeCar, name: "Car", providerKey: "car",
		speedKmh: 40, costPerKm: 0.70, emissionFactor: 0.12,
	}
	transitProfile = &TransportProfile{
		mode: ModePublicTransit, name: "Public Transit", providerKey: "bus",
		speedKmh: 25, costPerKm: 4.50, emissionFactor: 0.05, flatRate: true,
	}
	bikeProfile = &TransportProfile{
		mode: ModeBike, name: "Bike", providerKey: "bike",
		speedKmh: 15,
	}
	walkProfile = &TransportProfile{
		mode: ModeWalk, name: "Walk", providerKey: "walking",
		speedKmh: 5,
	}
)

var profiles = map[TransportMode]*TransportProfile{
	ModeCar:           carProfile,
	ModePublicTransit: transitProfile,
	ModeBike:          bikeProfile,
	ModeWalk:          walkProfile,
}

// ProfileFor returns the profile of a mode, or nil when the mode is not supported.
func ProfileFor(mode TransportMode) *TransportProfile {
	return profiles[mode]
}

// Modes lists the supported modes in menu order.
func Modes() []TransportMode {
	return []TransportMode{ModeCar, ModePublicTransit, ModeBike, ModeWalk}
}

func (m TransportMode) String() string {
	switch m {
	case ModeCar:
		return "car"
	case ModePublicTransit:
		return "public_transit"
	case ModeBike:
		return "bike"
	case ModeWalk:
		return "walk"
	default:
		return "unknown"
	}
}

// ParseMode maps user input (English or Portuguese aliases) to a TransportMode.
// Unrecognized input returns ModeUnknown.
func ParseMode(input string) TransportMode {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "car", "carro", "driving":
		return ModeCar
	case "public_transit", "publictransit", "public", "transit", "bus",
		"transporte público", "transporte publico", "onibus", "ônibus":
		return ModePublicTransit
	case "bike", "bicycle", "cycling", "bicicleta":
		return ModeBike
	case "walk", "walking", "foot", "a pé", "a pe", "pé", "pe":
		return ModeWalk
	default:
		return ModeUnknown
	}
}
