package handler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kavyabhat/scanlate/internal/config"
	"github.com/kavyabhat/scanlate/internal/domain"
)

func TestCheckTxtContent(t *testing.T) {
	t.Run("plain text accepted", func(t *testing.T) {
		assert.NoError(t, checkTxtContent("Hello, translate me."))
	})

	t.Run("exactly at the cap accepted", func(t *testing.T) {
		assert.NoError(t, checkTxtContent(strings.Repeat("x", config.MaxTxtChars)))
	})

	t.Run("one rune over the cap rejected", func(t *testing.T) {
		err := checkTxtContent(strings.Repeat("x", config.MaxTxtChars+1))
		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
		assert.Equal(t, "File too large. Max 15,000 characters.", err.Error())
	})

	t.Run("cap counts runes not bytes", func(t *testing.T) {
		// Three bytes per rune; still within the character cap.
		assert.NoError(t, checkTxtContent(strings.Repeat("あ", config.MaxTxtChars)))
	})

	t.Run("empty content rejected", func(t *testing.T) {
		err := checkTxtContent("  \n\t ")
		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
		assert.Equal(t, "File is empty or contains no readable text.", err.Error())
	})
}

func TestIsArchiveName(t *testing.T) {
	assert.True(t, isArchiveName("chapter01.zip"))
	assert.True(t, isArchiveName("chapter01.cbz"))
	assert.True(t, isArchiveName("chapter01.7z"))
	assert.False(t, isArchiveName("chapter01.rar"))
	assert.False(t, isArchiveName("notes.txt"))
	assert.False(t, isArchiveName("zip"))
}
