package config

import (
	"errors"
	"fmt"
	"os"
	"route-recommendation-service/internal/domain"
	"strconv"
	"strings"

	"gopkg.in/ini.v1"
)

// Settings are the pipeline options. They are loaded once at startup and
// passed explicitly to the components that need them.
type Settings struct {
	CacheEnabled     bool
	MaxCacheSize     int
	CacheEviction    string
	DefaultStrategy  domain.StrategyKind
	DefaultMode      domain.TransportMode
	ShowTouristInfo  bool
	ShowSafetyAlerts bool
}

func Defaults() Settings {
	return Settings{
		CacheEnabled:     true,
		MaxCacheSize:     10,
		CacheEviction:    "lru",
		DefaultStrategy:  domain.StrategyFastest,
		DefaultMode:      domain.ModeCar,
		ShowTouristInfo:  true,
		ShowSafetyAlerts: true,
	}
}

const settingsSection = "pipeline"

// key names shared by the settings file and the environment (upper-cased)
const (
	keyCacheEnabled     = "cache_enabled"
	keyMaxCacheSize     = "max_cache_size"
	keyCacheEviction    = "cache_eviction"
	keyDefaultStrategy  = "default_strategy"
	keyDefaultMode      = "default_mode"
	keyShowTouristInfo  = "show_tourist_info"
	keyShowSafetyAlerts = "show_safety_alerts"
)

// Load builds Settings from defaults, then the [pipeline] section of path
// (skipped when path is empty), then environment variables.
func Load(path string) (Settings, error) {
	s := Defaults()

	if strings.TrimSpace(path) != "" {
		f, err := ini.Load(path)
		if err != nil {
			return Settings{}, fmt.Errorf("load settings: read %q: %w", path, err)
		}
		sec := f.Section(settingsSection)
		err = s.apply(func(k string) (string, bool) {
			if !sec.HasKey(k) {
				return "", false
			}
			return sec.Key(k).String(), true
		})
		if err != nil {
			return Settings{}, fmt.Errorf("load settings: %q: %w", path, err)
		}
	}

	err := s.apply(func(k string) (string, bool) {
		v, ok := os.LookupEnv(strings.ToUpper(k))
		return v, ok && strings.TrimSpace(v) != ""
	})
	if err != nil {
		return Settings{}, fmt.Errorf("load settings: env: %w", err)
	}

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func (s *Settings) apply(lookup func(key string) (string, bool)) error {
	var errs []error

	boolKey := func(k string, dst *bool) {
		if v, ok := lookup(k); ok {
			b, err := strconv.ParseBool(strings.TrimSpace(v))
			if err != nil {
				errs = append(errs, fmt.Errorf("%s=%q: %w", k, v, domain.ErrInvalidArgument))
				return
			}
			*dst = b
		}
	}

	boolKey(keyCacheEnabled, &s.CacheEnabled)
	boolKey(keyShowTouristInfo, &s.ShowTouristInfo)
	boolKey(keyShowSafetyAlerts, &s.ShowSafetyAlerts)

	if v, ok := lookup(keyMaxCacheSize); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s=%q: %w", keyMaxCacheSize, v, domain.ErrInvalidArgument))
		} else {
			s.MaxCacheSize = n
		}
	}
	if v, ok := lookup(keyCacheEviction); ok {
		s.CacheEviction = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := lookup(keyDefaultStrategy); ok {
		s.DefaultStrategy = domain.ParseStrategyKind(v)
		if s.DefaultStrategy == domain.StrategyUnset {
			errs = append(errs, fmt.Errorf("%s=%q: %w", keyDefaultStrategy, v, domain.ErrUnsupportedStrategy))
		}
	}
	if v, ok := lookup(keyDefaultMode); ok {
		s.DefaultMode = domain.ParseMode(v)
		if s.DefaultMode == domain.ModeUnknown {
			errs = append(errs, fmt.Errorf("%s=%q: %w", keyDefaultMode, v, domain.ErrUnsupportedMode))
		}
	}

	return errors.Join(errs...)
}

// Validate checks the values Load cannot repair.
func (s Settings) Validate() error {
	if s.MaxCacheSize <= 0 {
		return fmt.Errorf("settings: max_cache_size %d must be positive: %w", s.MaxCacheSize, domain.ErrInvalidArgument)
	}
	switch s.CacheEviction {
	case "", "lru", "fifo", "random":
	default:
		return fmt.Errorf("settings: cache_eviction %q: %w", s.CacheEviction, domain.ErrInvalidArgument)
	}
	if s.DefaultStrategy == domain.StrategyUnset {
		return fmt.Errorf("settings: default_strategy: %w", domain.ErrUnsupportedStrategy)
	}
	if domain.ProfileFor(s.DefaultMode) == nil {
		return fmt.Errorf("settings: default_mode: %w", domain.ErrUnsupportedMode)
	}
	return nil
}
