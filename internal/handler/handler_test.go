package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kavyabhat/scanlate/internal/domain"
	"github.com/kavyabhat/scanlate/internal/job"
)

func TestCancelAll_ClearsPendingInput(t *testing.T) {
	h := New(Deps{Registry: job.NewRegistry()})
	h.setPending(5, pendingStyle, "")

	jobCancelled, inputCancelled := h.cancelAll(5)

	assert.False(t, jobCancelled)
	assert.True(t, inputCancelled)

	_, ok := h.takePending(5)
	assert.False(t, ok, "the prompt must not survive a cancel")
}

func TestCancelAll_FlagsLiveJob(t *testing.T) {
	reg := job.NewRegistry()
	j, err := reg.Begin(5, domain.JobArchive)
	require.NoError(t, err)

	h := New(Deps{Registry: reg})
	h.setPending(5, pendingAPIKey, "key_deadbeef")

	jobCancelled, inputCancelled := h.cancelAll(5)

	assert.True(t, jobCancelled)
	assert.True(t, inputCancelled)
	assert.True(t, j.Cancelled())
}

func TestCancelAll_NothingToCancel(t *testing.T) {
	h := New(Deps{Registry: job.NewRegistry()})

	jobCancelled, inputCancelled := h.cancelAll(5)

	assert.False(t, jobCancelled)
	assert.False(t, inputCancelled)
}
