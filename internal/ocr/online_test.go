package ocr

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImage(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "page.png")
	require.NoError(t, os.WriteFile(path, []byte("fake png bytes"), 0o600))
	return path
}

func onlineEngine(t *testing.T, h http.HandlerFunc) *OnlineEngine {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewOnlineEngine("user", "license", srv.URL)
}

func TestOnlineExtract_MissingCredentials(t *testing.T) {
	e := NewOnlineEngine("", "", "http://unused.invalid")
	got := e.Extract(context.Background(), "/nonexistent.png")
	assert.Equal(t, "OCRWebService credentials not configured.", got)
}

func TestOnlineExtract_StatusPlaceholders(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   string
	}{
		{"unauthorized", http.StatusUnauthorized, "Invalid OCRWebService credentials."},
		{"payment required", http.StatusPaymentRequired, "Payment required or quota exceeded on OCRWebService account."},
		{"bad request", http.StatusBadRequest, "Bad OCR request (check file format or params)."},
		{"server error", http.StatusInternalServerError, "OCRWebService internal error, please try later."},
		{"bad gateway", http.StatusBadGateway, "OCRWebService internal error, please try later."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := onlineEngine(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			})
			got := e.Extract(context.Background(), testImage(t))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOnlineExtract_JoinsRecognizedZones(t *testing.T) {
	var gotAuth bool
	e := onlineEngine(t, func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		gotAuth = ok && user == "user" && pass == "license"
		w.Write([]byte(`{"OCRText": [["first zone", "second zone"], ["next page"]]}`))
	})

	got := e.Extract(context.Background(), testImage(t))

	assert.True(t, gotAuth, "request must carry basic auth")
	assert.Equal(t, "first zone\n\nsecond zone\n\nnext page", got)
}

func TestOnlineExtract_ServiceError(t *testing.T) {
	e := onlineEngine(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"ErrorMessage": "unsupported image"}`))
	})

	got := e.Extract(context.Background(), testImage(t))
	assert.Equal(t, "OCR error: unsupported image", got)
}

func TestOnlineExtract_EmptyTextFallsBackToFileURL(t *testing.T) {
	e := onlineEngine(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"OCRText": [[""]], "OutputFileUrl": "https://example.com/out.txt"}`))
	})

	got := e.Extract(context.Background(), testImage(t))
	assert.Equal(t, "Result file: https://example.com/out.txt", got)
}

func TestOnlineExtract_NoTextDetected(t *testing.T) {
	e := onlineEngine(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"OCRText": []}`))
	})

	got := e.Extract(context.Background(), testImage(t))
	assert.Equal(t, "No text detected.", got)
}

func TestOnlineExtract_NonJSONBodyReturnedVerbatim(t *testing.T) {
	e := onlineEngine(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("  plain text answer \n"))
	})

	got := e.Extract(context.Background(), testImage(t))
	assert.Equal(t, "plain text answer", got)
}
