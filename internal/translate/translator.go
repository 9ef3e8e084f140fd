package translate

import (
	"context"

	"github.com/kavyabhat/scanlate/internal/config"
)

// Backend is the opaque text-in/text-out translation capability.
type Backend interface {
	Generate(ctx context.Context, credential, model, styleGuide, text string) (string, error)
}

// Translator resolves a chat's configuration into a backend call. The
// returned string is always safe to show the user: a missing credential
// and backend failures come back as message text, not errors.
type Translator struct {
	backend Backend
}

func NewTranslator() *Translator {
	return &Translator{backend: newGeminiBackend()}
}

// NewTranslatorWithBackend is used by tests to substitute the backend.
func NewTranslatorWithBackend(b Backend) *Translator {
	return &Translator{backend: b}
}

func (t *Translator) Translate(ctx context.Context, text, model, styleGuide, credential string) string {
	if credential == "" {
		return NoKeyMessage
	}
	if styleGuide == "" {
		styleGuide = DefaultStyleGuide
	}
	if model == "" {
		model = config.DefaultModel
	}

	ctx, cancel := context.WithTimeout(ctx, config.TranslateRequestTimeout)
	defer cancel()

	out, err := t.backend.Generate(ctx, credential, model, styleGuide, text)
	if err != nil {
		return classifyAPIError(err)
	}
	return out
}
