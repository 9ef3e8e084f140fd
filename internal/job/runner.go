package job

import (
	"context"
	"log/slog"
	"os"
	"runtime/debug"
)

// Runner launches jobs as independent tasks and owns their cleanup.
// Scratch directory removal and registry deregistration run exactly once
// on every exit path, whether the job succeeded, failed, or panicked.
type Runner struct {
	registry *Registry
	gw       Gateway
}

func NewRunner(registry *Registry, gw Gateway) *Runner {
	return &Runner{registry: registry, gw: gw}
}

// Launch runs fn concurrently. A panic inside fn is local to this job
// and this chat: it is logged, reported generically, and never takes
// down the process or other chats' jobs.
func (r *Runner) Launch(ctx context.Context, j *Job, scratchDir string, fn func(context.Context)) {
	go func() {
		defer func() {
			if p := recover(); p != nil {
				slog.Error("job panicked",
					"chat_id", j.ChatID,
					"kind", j.Kind,
					"panic", p,
					"stack", string(debug.Stack()),
				)
				r.gw.SendText(ctx, j.ChatID, "Something went wrong while processing your file.")
			}
			if scratchDir != "" {
				if err := os.RemoveAll(scratchDir); err != nil {
					slog.Warn("remove scratch dir", "dir", scratchDir, "error", err)
				}
			}
			r.registry.Finish(j)
		}()

		slog.Info("job started", "chat_id", j.ChatID, "kind", j.Kind)
		fn(ctx)
		slog.Info("job finished", "chat_id", j.ChatID, "kind", j.Kind)
	}()
}
