package translate

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// ModelInfo is one selectable translation model.
type ModelInfo struct {
	Name        string
	Description string
}

// geminiBackend talks to the Gemini API. Clients are cached per
// credential; keys are few and long-lived per chat, so there is no
// eviction.
type geminiBackend struct {
	mu      sync.Mutex
	clients map[string]*genai.Client
}

func newGeminiBackend() *geminiBackend {
	return &geminiBackend{clients: make(map[string]*genai.Client)}
}

func (g *geminiBackend) client(ctx context.Context, credential string) (*genai.Client, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if c, ok := g.clients[credential]; ok {
		return c, nil
	}
	c, err := genai.NewClient(ctx, option.WithAPIKey(credential))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	g.clients[credential] = c
	return c, nil
}

func (g *geminiBackend) Generate(ctx context.Context, credential, model, styleGuide, text string) (string, error) {
	client, err := g.client(ctx, credential)
	if err != nil {
		return "", err
	}

	gm := client.GenerativeModel(model)
	gm.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(styleGuide)},
	}

	prompt := styleGuide + "\n\n--- DIALOGUES TO TRANSLATE ---\n" + text
	resp, err := gm.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("empty response from gemini")
	}

	var out strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			out.WriteString(string(t))
		}
	}
	return strings.TrimSpace(out.String()), nil
}

func (g *geminiBackend) ListModels(ctx context.Context, credential string) ([]ModelInfo, error) {
	client, err := g.client(ctx, credential)
	if err != nil {
		return nil, err
	}

	var infos []ModelInfo
	it := client.ListModels(ctx)
	for {
		m, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list models: %w", err)
		}

		name := m.Name[strings.LastIndex(m.Name, "/")+1:]
		if !strings.HasPrefix(name, "gemini-") {
			continue
		}
		if !supportsGenerate(m.SupportedGenerationMethods) {
			continue
		}

		var parts []string
		if m.DisplayName != "" {
			parts = append(parts, m.DisplayName)
		}
		if m.InputTokenLimit > 0 {
			parts = append(parts, fmt.Sprintf("%d ctx", m.InputTokenLimit))
		}
		desc := strings.Join(parts, " | ")
		if desc == "" {
			desc = "Text model"
		}
		infos = append(infos, ModelInfo{Name: name, Description: desc})
	}
	return infos, nil
}

func supportsGenerate(methods []string) bool {
	for _, m := range methods {
		if m == "generateContent" {
			return true
		}
	}
	return false
}

// classifyAPIError turns a backend failure into the message shown to the
// user. Failures here are reply content, never a crash.
func classifyAPIError(err error) string {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case 401, 403:
			return "Gemini API error: your API key was rejected. Check it with /api."
		case 429:
			return "Gemini API error: quota exceeded for this key. Try again later or switch keys with /api."
		default:
			return fmt.Sprintf("Gemini API error: %s", apiErr.Message)
		}
	}
	return fmt.Sprintf("Translation error: %v", err)
}
