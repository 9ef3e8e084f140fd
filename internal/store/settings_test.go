package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kavyabhat/scanlate/internal/config"
	"github.com/kavyabhat/scanlate/internal/domain"
	"github.com/kavyabhat/scanlate/internal/translate"
)

func TestSettingsStore_Defaults(t *testing.T) {
	s := NewSettingsStore()

	rec := s.Get(42)
	assert.Equal(t, domain.OCRLocal, rec.OCRMode)
	assert.Equal(t, config.DefaultModel, rec.Model)
	assert.Equal(t, translate.DefaultStyleGuide, rec.StyleGuide)
}

func TestSettingsStore_SetOCRMode(t *testing.T) {
	s := NewSettingsStore()

	assert.NoError(t, s.SetOCRMode(42, "online"))
	assert.Equal(t, domain.OCROnline, s.Get(42).OCRMode)

	t.Run("invalid mode leaves stored value unchanged", func(t *testing.T) {
		err := s.SetOCRMode(42, "cloud")
		assert.True(t, domain.IsValidation(err))
		assert.Equal(t, domain.OCROnline, s.Get(42).OCRMode)
	})
}

func TestSettingsStore_StyleGuide(t *testing.T) {
	s := NewSettingsStore()

	s.SetStyleGuide(42, "keep it dramatic")
	assert.Equal(t, "keep it dramatic", s.Get(42).StyleGuide)
	assert.True(t, s.IsCustomStyle(42))

	s.ResetStyleGuide(42)
	assert.Equal(t, translate.DefaultStyleGuide, s.Get(42).StyleGuide)
	assert.False(t, s.IsCustomStyle(42))
}

func TestSettingsStore_SetModel(t *testing.T) {
	s := NewSettingsStore()

	s.SetModel(42, "gemini-1.5-pro")
	assert.Equal(t, "gemini-1.5-pro", s.Get(42).Model)

	// Other chats keep their defaults.
	assert.Equal(t, config.DefaultModel, s.Get(7).Model)
}
