package telegram

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitMessage_ShortTextUntouched(t *testing.T) {
	parts := SplitMessage("hello", 4096)
	assert.Equal(t, []string{"hello"}, parts)
}

func TestSplitMessage_PrefersNewlineBoundary(t *testing.T) {
	first := strings.Repeat("a", 80)
	second := strings.Repeat("b", 40)
	parts := SplitMessage(first+"\n"+second, 100)

	require.Len(t, parts, 2)
	assert.Equal(t, first+"\n", parts[0])
	assert.Equal(t, second, parts[1])
}

func TestSplitMessage_MultibyteWithNewline(t *testing.T) {
	// The newline sits past the half-window in rune terms; byte offsets
	// would point far outside the rune slice here.
	first := strings.Repeat("あ", 99)
	second := strings.Repeat("い", 50)
	parts := SplitMessage(first+"\n"+second, 100)

	require.Len(t, parts, 2)
	assert.Equal(t, first+"\n", parts[0])
	assert.Equal(t, second, parts[1])
}

func TestSplitMessage_MultibyteHardSplit(t *testing.T) {
	text := strings.Repeat("क", 250)
	parts := SplitMessage(text, 100)

	require.Len(t, parts, 3)
	assert.Equal(t, text, strings.Join(parts, ""))
	for _, p := range parts[:2] {
		assert.Equal(t, 100, len([]rune(p)))
	}
}

func TestSplitMessage_HardSplitWithoutNewlines(t *testing.T) {
	text := strings.Repeat("x", 250)
	parts := SplitMessage(text, 100)

	require.Len(t, parts, 3)
	assert.Equal(t, text, strings.Join(parts, ""))
	for _, p := range parts[:2] {
		assert.Len(t, p, 100)
	}
}

func TestFixMarkdown(t *testing.T) {
	t.Run("closes dangling code fence", func(t *testing.T) {
		assert.Equal(t, "```go\ncode\n```", FixMarkdown("```go\ncode"))
	})

	t.Run("closes dangling inline code", func(t *testing.T) {
		assert.Equal(t, "use `model`", FixMarkdown("use `model"))
	})

	t.Run("balanced text untouched", func(t *testing.T) {
		text := "plain with `code` and ```\nblock\n```"
		assert.Equal(t, text, FixMarkdown(text))
	})

	t.Run("backticks inside a block are left alone", func(t *testing.T) {
		text := "```\na ` b\n```"
		assert.Equal(t, text, FixMarkdown(text))
	})
}
