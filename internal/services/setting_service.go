package services

import (
	"itemnav/internal/constants"
	"itemnav/internal/repository"
	"log"
	"strconv"
	"sync"
)

type SettingService struct {
	repo         *repository.SettingRepository
	settings     map[string]string
	settingsLock sync.RWMutex
}

func NewSettingService(repo *repository.SettingRepository) *SettingService {
	s := &SettingService{
		repo:     repo,
		settings: make(map[string]string),
	}
	s.loadSettings()
	return s
}

// EnsureDefaults writes every missing default setting and refreshes the cache.
func (s *SettingService) EnsureDefaults() error {
	for key, value := range constants.DefaultSettings {
		if err := s.repo.InsertMissing(key, value); err != nil {
			return err
		}
	}
	s.loadSettings()
	return nil
}

func (s *SettingService) loadSettings() {
	settings, err := s.repo.FindAll()
	if err != nil {
		log.Printf("failed to load settings: %v", err)
		return
	}

	s.settingsLock.Lock()
	defer s.settingsLock.Unlock()
	s.settings = settings
}

// GetAllSettings returns a copy of the cached settings.
func (s *SettingService) GetAllSettings() map[string]string {
	s.settingsLock.RLock()
	defer s.settingsLock.RUnlock()

	settingsCopy := make(map[string]string, len(s.settings))
	for key, value := range s.settings {
		settingsCopy[key] = value
	}
	return settingsCopy
}

// UpdateSettings updates multiple settings at once and refreshes the cache.
func (s *SettingService) UpdateSettings(settings map[string]string) error {
	for key, value := range settings {
		if err := s.repo.Upsert(key, value); err != nil {
			return err
		}
	}
	s.loadSettings()
	return nil
}

func (s *SettingService) GetSetting(key string) string {
	s.settingsLock.RLock()
	defer s.settingsLock.RUnlock()
	return s.settings[key]
}

// GetBool reads a setting as a boolean; unset or malformed values are false.
func (s *SettingService) GetBool(key string) bool {
	v, err := strconv.ParseBool(s.GetSetting(key))
	return err == nil && v
}

// GetInt reads a setting as an integer, falling back to def.
func (s *SettingService) GetInt(key string, def int) int {
	v, err := strconv.Atoi(s.GetSetting(key))
	if err != nil {
		return def
	}
	return v
}
