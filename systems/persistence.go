package systems

import (
	"encoding/json"

	"github.com/automoto/monorpg/components"
	"github.com/automoto/monorpg/logger"
	"github.com/quasilyte/gdata"
	"go.uber.org/zap"
)

const settingsKey = "settings"

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Fullscreen bool `json:"fullscreen"`
	Debug      bool `json:"debug"`
}

// settingsStore is the subset of *gdata.Manager the settings need.
type settingsStore interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

var store settingsStore

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		logger.Warn("could not initialize persistence", zap.Error(err))
		return err
	}
	store = m
	return nil
}

// LoadSettings loads settings from disk. It returns nil without error when
// nothing has been saved yet or persistence is unavailable.
func LoadSettings() (*SavedSettings, error) {
	if store == nil {
		return nil, nil
	}

	data, err := store.LoadItem(settingsKey)
	if err != nil {
		logger.Warn("could not load settings", zap.Error(err))
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		logger.Warn("could not parse saved settings", zap.Error(err))
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if store == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		logger.Warn("could not serialize settings", zap.Error(err))
		return err
	}

	if err := store.SaveItem(settingsKey, data); err != nil {
		logger.Warn("could not save settings", zap.Error(err))
		return err
	}
	return nil
}

// SaveCurrentSettings saves the toggles held in the Settings component
func SaveCurrentSettings(s *components.SettingsData) {
	_ = SaveSettings(&SavedSettings{
		Fullscreen: s.Fullscreen,
		Debug:      s.Debug,
	})
}
