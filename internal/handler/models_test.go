package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kavyabhat/scanlate/internal/translate"
)

func TestModelButtonLabel(t *testing.T) {
	tests := []struct {
		name    string
		model   translate.ModelInfo
		current bool
		want    string
	}{
		{
			name:  "select with hint",
			model: translate.ModelInfo{Name: "gemini-1.5-flash", Description: "Fast & cheap | 1M context"},
			want:  "Select: FLASH | Fast & cheap",
		},
		{
			name:    "current drops the hint",
			model:   translate.ModelInfo{Name: "gemini-1.5-flash", Description: "Fast & cheap | 1M context"},
			current: true,
			want:    "Current: FLASH",
		},
		{
			name:  "long hint truncated",
			model: translate.ModelInfo{Name: "gemini-1.5-pro", Description: "An unreasonably verbose display name | 2M context"},
			want:  "Select: PRO | An unreasonably verbos...",
		},
		{
			name:  "no description",
			model: translate.ModelInfo{Name: "gemini-2.0-flash-exp"},
			want:  "Select: EXP",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, modelButtonLabel(tt.model, tt.current))
		})
	}
}
