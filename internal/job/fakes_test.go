package job

import (
	"context"
	"io"
	"path/filepath"
	"sync"

	"github.com/kavyabhat/scanlate/internal/domain"
)

// fakeGateway records everything a job reports.
type fakeGateway struct {
	mu    sync.Mutex
	texts []string
	docs  []fakeDoc
}

type fakeDoc struct {
	filename string
	caption  string
	content  string
}

func (g *fakeGateway) SendText(_ context.Context, _ int64, text string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.texts = append(g.texts, text)
	return nil
}

func (g *fakeGateway) SendDocument(_ context.Context, _ int64, filename, caption string, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.docs = append(g.docs, fakeDoc{filename: filename, caption: caption, content: string(data)})
	return nil
}

func (g *fakeGateway) sentTexts() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string(nil), g.texts...)
}

func (g *fakeGateway) sentDocs() []fakeDoc {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]fakeDoc(nil), g.docs...)
}

// fakeExtractor returns canned text per page basename and can trigger a
// cancellation after a fixed number of calls, emulating a /cancel that
// lands while a page is being processed.
type fakeExtractor struct {
	mu          sync.Mutex
	byName      map[string]string
	calls       []string
	cancelAfter int // 0 means never
	job         *Job
}

func (e *fakeExtractor) Extract(_ context.Context, path string, _ domain.OCRMode) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.calls = append(e.calls, filepath.Base(path))
	if e.cancelAfter > 0 && len(e.calls) == e.cancelAfter && e.job != nil {
		e.job.Cancel()
	}
	if text, ok := e.byName[filepath.Base(path)]; ok {
		return text
	}
	return ""
}

func (e *fakeExtractor) callCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.calls)
}
