package handler

import (
	"sync"

	"github.com/go-telegram/bot"

	"github.com/kavyabhat/scanlate/internal/config"
	"github.com/kavyabhat/scanlate/internal/job"
	"github.com/kavyabhat/scanlate/internal/store"
	"github.com/kavyabhat/scanlate/internal/translate"
)

// Handler holds all dependencies needed by command and callback handlers.
type Handler struct {
	bot        *bot.Bot
	cfg        *config.Config
	creds      *store.CredentialStore
	settings   *store.SettingsStore
	registry   *job.Registry
	runner     *job.Runner
	gateway    job.Gateway
	ocr        job.Extractor
	translator *translate.Translator
	catalog    *translate.ModelCatalog

	// pending tracks chats whose next text message completes a menu
	// flow (new API key, rename, style guide).
	pendingMu sync.Mutex
	pending   map[int64]pendingInput
}

// Deps contains all dependencies required to construct a Handler.
type Deps struct {
	Bot        *bot.Bot
	Cfg        *config.Config
	Creds      *store.CredentialStore
	Settings   *store.SettingsStore
	Registry   *job.Registry
	Runner     *job.Runner
	Gateway    job.Gateway
	OCR        job.Extractor
	Translator *translate.Translator
	Catalog    *translate.ModelCatalog
}

// New creates a new Handler from the provided dependencies.
func New(deps Deps) *Handler {
	return &Handler{
		bot:        deps.Bot,
		cfg:        deps.Cfg,
		creds:      deps.Creds,
		settings:   deps.Settings,
		registry:   deps.Registry,
		runner:     deps.Runner,
		gateway:    deps.Gateway,
		ocr:        deps.OCR,
		translator: deps.Translator,
		catalog:    deps.Catalog,
		pending:    make(map[int64]pendingInput),
	}
}

type pendingKind int

const (
	pendingAPIKey pendingKind = iota + 1
	pendingRename
	pendingStyle
)

type pendingInput struct {
	kind pendingKind
	arg  string // generated key name, or the key being renamed
}

func (h *Handler) setPending(chatID int64, kind pendingKind, arg string) {
	h.pendingMu.Lock()
	defer h.pendingMu.Unlock()
	h.pending[chatID] = pendingInput{kind: kind, arg: arg}
}

func (h *Handler) takePending(chatID int64) (pendingInput, bool) {
	h.pendingMu.Lock()
	defer h.pendingMu.Unlock()
	p, ok := h.pending[chatID]
	if ok {
		delete(h.pending, chatID)
	}
	return p, ok
}

func (h *Handler) clearPending(chatID int64) {
	h.pendingMu.Lock()
	defer h.pendingMu.Unlock()
	delete(h.pending, chatID)
}

// cancelAll aborts whatever the chat is in the middle of: the live OCR
// job, and any prompt waiting on the next text message. Without the
// pending reset a stale /style prompt would swallow the next message.
func (h *Handler) cancelAll(chatID int64) (jobCancelled, inputCancelled bool) {
	_, inputCancelled = h.takePending(chatID)
	jobCancelled = h.registry.Cancel(chatID)
	return jobCancelled, inputCancelled
}
