package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/kavyabhat/scanlate/internal/config"
)

// OnlineEngine calls the OCRWebService REST API. HTTP outcomes map to
// human-readable placeholder strings returned in place of extracted
// text; from the job's point of view they are page content.
type OnlineEngine struct {
	username   string
	licenseKey string
	endpoint   string
	httpClient *http.Client
}

func NewOnlineEngine(username, licenseKey, endpoint string) *OnlineEngine {
	return &OnlineEngine{
		username:   username,
		licenseKey: licenseKey,
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: config.OCRRequestTimeout},
	}
}

type onlineResult struct {
	ErrorMessage  string     `json:"ErrorMessage"`
	OCRText       [][]string `json:"OCRText"`
	OutputFileURL string     `json:"OutputFileUrl"`
}

func (e *OnlineEngine) Extract(ctx context.Context, path string) string {
	if e.username == "" || e.licenseKey == "" {
		return "OCRWebService credentials not configured."
	}

	body, contentType, err := buildUpload(path)
	if err != nil {
		slog.Error("online ocr: build upload", "path", path, "error", err)
		return fmt.Sprintf("Online OCR error: %v", err)
	}

	ctx, cancel := context.WithTimeout(ctx, config.OCRRequestTimeout)
	defer cancel()

	url := e.endpoint + "?language=english&gettext=true&outputformat=txt"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return fmt.Sprintf("Online OCR error: %v", err)
	}
	req.SetBasicAuth(e.username, e.licenseKey)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	resp, err := e.httpClient.Do(req)
	if err != nil {
		slog.Error("online ocr: request", "path", path, "error", err)
		return fmt.Sprintf("Online OCR error: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Sprintf("Online OCR error: %v", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return "Invalid OCRWebService credentials."
	case resp.StatusCode == http.StatusPaymentRequired:
		return "Payment required or quota exceeded on OCRWebService account."
	case resp.StatusCode == http.StatusBadRequest:
		slog.Error("online ocr: bad request", "body", string(raw))
		return "Bad OCR request (check file format or params)."
	case resp.StatusCode >= 500:
		return "OCRWebService internal error, please try later."
	}

	var result onlineResult
	if err := json.Unmarshal(raw, &result); err != nil {
		// Not JSON; the service sometimes answers with plain text.
		return strings.TrimSpace(string(raw))
	}
	if result.ErrorMessage != "" {
		return fmt.Sprintf("OCR error: %s", result.ErrorMessage)
	}

	var sb strings.Builder
	for _, zone := range result.OCRText {
		for _, page := range zone {
			if page != "" {
				sb.WriteString(strings.TrimSpace(page))
				sb.WriteString("\n\n")
			}
		}
	}

	text := strings.TrimSpace(sb.String())
	if text == "" && result.OutputFileURL != "" {
		return fmt.Sprintf("Result file: %s", result.OutputFileURL)
	}
	if text == "" {
		return "No text detected."
	}
	return text
}

func buildUpload(path string) (io.Reader, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return nil, "", fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, "", fmt.Errorf("copy image: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}
