package store

import (
	"sync"

	"github.com/kavyabhat/scanlate/internal/config"
	"github.com/kavyabhat/scanlate/internal/domain"
	"github.com/kavyabhat/scanlate/internal/translate"
)

// SettingsStore keeps per-chat preferences in memory only. Losing a
// style or model choice on restart is tolerable; API keys are not, and
// they live in CredentialStore instead.
type SettingsStore struct {
	mu   sync.RWMutex
	data map[int64]domain.Settings
}

func NewSettingsStore() *SettingsStore {
	return &SettingsStore{data: make(map[int64]domain.Settings)}
}

// Get returns the chat's settings, falling back to defaults. Never fails.
func (s *SettingsStore) Get(chatID int64) domain.Settings {
	s.mu.RLock()
	rec, ok := s.data[chatID]
	s.mu.RUnlock()
	if !ok {
		rec = domain.Settings{}
	}
	if rec.OCRMode == "" {
		rec.OCRMode = domain.OCRLocal
	}
	if rec.Model == "" {
		rec.Model = config.DefaultModel
	}
	if rec.StyleGuide == "" {
		rec.StyleGuide = translate.DefaultStyleGuide
	}
	return rec
}

// SetOCRMode validates and stores the extraction backend choice.
func (s *SettingsStore) SetOCRMode(chatID int64, mode string) error {
	parsed, err := domain.ParseOCRMode(mode)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := s.data[chatID]
	rec.OCRMode = parsed
	s.data[chatID] = rec
	return nil
}

func (s *SettingsStore) SetModel(chatID int64, model string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := s.data[chatID]
	rec.Model = model
	s.data[chatID] = rec
}

func (s *SettingsStore) SetStyleGuide(chatID int64, guide string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := s.data[chatID]
	rec.StyleGuide = guide
	s.data[chatID] = rec
}

// ResetStyleGuide drops a custom guide, restoring the default tone.
func (s *SettingsStore) ResetStyleGuide(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := s.data[chatID]
	rec.StyleGuide = ""
	s.data[chatID] = rec
}

// IsCustomStyle reports whether the chat overrode the default guide.
func (s *SettingsStore) IsCustomStyle(chatID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.data[chatID]
	return ok && rec.StyleGuide != ""
}
