// Package ocr unifies the two text extraction backends behind one call.
// Failures at this layer are data, not control flow: the local engine
// degrades to an empty string and the online service to a placeholder
// message, so a bad page never aborts an archive batch.
package ocr

import (
	"context"

	"github.com/kavyabhat/scanlate/internal/domain"
)

// Engine extracts text from one image file.
type Engine interface {
	Extract(ctx context.Context, path string) string
}

// Dispatcher routes extraction to the configured backend.
type Dispatcher struct {
	local  Engine
	online Engine
}

func NewDispatcher(local, online Engine) *Dispatcher {
	return &Dispatcher{local: local, online: online}
}

func (d *Dispatcher) Extract(ctx context.Context, path string, mode domain.OCRMode) string {
	if mode == domain.OCROnline {
		return d.online.Extract(ctx, path)
	}
	return d.local.Extract(ctx, path)
}
