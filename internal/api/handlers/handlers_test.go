package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careerpilot/internal/agents"
	"careerpilot/internal/config"
	"careerpilot/internal/llm"
	"careerpilot/internal/search"
	"careerpilot/pkg/models"
)

// echoGenerator returns its own prompt so tests can check what reached the
// generation layer, or fails with a fixed error.
type echoGenerator struct {
	fixed string
	err   error
}

func (g *echoGenerator) Complete(ctx context.Context, req models.GenerationRequest) (string, error) {
	if g.err != nil {
		return "", g.err
	}
	if g.fixed != "" {
		return g.fixed, nil
	}
	return req.UserPrompt, nil
}

type listingsProvider struct{}

func (p *listingsProvider) Name() string { return "stub" }

func (p *listingsProvider) SearchWeb(query string, maxResults int, region string) ([]models.SearchResult, error) {
	return []models.SearchResult{
		{Title: "Posting A for " + query, URL: "https://example.com/a", Snippet: "snippet", Source: "Google"},
		{Title: "Posting B for " + query, URL: "https://example.com/b", Snippet: "snippet", Source: "Google"},
	}, nil
}

func (p *listingsProvider) SearchNews(query string, maxResults int, region string) ([]models.SearchResult, error) {
	return nil, nil
}

func testSearchClient() *search.Client {
	cfg := &config.Config{}
	cfg.Search.MaxResults = 10
	cfg.Search.QueryPause = time.Millisecond
	return search.NewClient(cfg, &listingsProvider{})
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) models.APIResponse {
	t.Helper()
	var envelope models.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope
}

func TestSearchJobsHandlerSuccess(t *testing.T) {
	e := echo.New()
	handler := SearchJobsHandler(agents.NewJobSearchAgent(&echoGenerator{}, testSearchClient()))

	body := `{"job_title":"Développeur Python","location":"Paris"}`
	req := httptest.NewRequest(http.MethodPost, "/api/search-jobs", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, handler(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.True(t, envelope.Success)
	assert.Empty(t, envelope.Error)

	report, ok := envelope.Data.(string)
	require.True(t, ok)
	assert.Contains(t, report, "Développeur Python")
	assert.Contains(t, report, "Paris")
}

func TestSearchJobsHandlerMissingTitle(t *testing.T) {
	e := echo.New()
	handler := SearchJobsHandler(agents.NewJobSearchAgent(&echoGenerator{}, testSearchClient()))

	req := httptest.NewRequest(http.MethodPost, "/api/search-jobs", strings.NewReader(`{"location":"Paris"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, handler(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.False(t, envelope.Success)
	assert.Equal(t, "job_title is required", envelope.Error)
}

func TestSearchJobsHandlerProviderUnavailable(t *testing.T) {
	e := echo.New()
	gen := &echoGenerator{err: fmt.Errorf("groq request failed: %w", llm.ErrProviderUnavailable)}
	handler := SearchJobsHandler(agents.NewJobSearchAgent(gen, testSearchClient()))

	req := httptest.NewRequest(http.MethodPost, "/api/search-jobs", strings.NewReader(`{"job_title":"DevOps"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, handler(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.False(t, envelope.Success)
	assert.Equal(t, "generation provider is unavailable", envelope.Error)
}

// multipartBody builds a multipart form with the given fields and an optional
// uploaded file.
func multipartBody(t *testing.T, fields map[string]string, filename string, fileData []byte) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)

	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}

	if filename != "" {
		part, err := writer.CreateFormFile("cv_file", filename)
		require.NoError(t, err)
		_, err = part.Write(fileData)
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())
	return buf, writer.FormDataContentType()
}

func TestGenerateCVHandlerWithUploadedFile(t *testing.T) {
	e := echo.New()
	handler := GenerateCVHandler(agents.NewCVAgent(&echoGenerator{fixed: "\\documentclass{article}"}))

	body, contentType := multipartBody(t,
		map[string]string{"job_description": "Senior Go engineer"},
		"resume.txt", []byte("ten years of backend experience"))
	req := httptest.NewRequest(http.MethodPost, "/api/generate-cv", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()

	require.NoError(t, handler(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.True(t, envelope.Success)
	assert.Equal(t, "\\documentclass{article}", envelope.Data)
}

func TestGenerateCVHandlerWithRawText(t *testing.T) {
	e := echo.New()
	handler := GenerateCVHandler(agents.NewCVAgent(&echoGenerator{}))

	body, contentType := multipartBody(t, map[string]string{
		"cv_content":      "raw resume text",
		"job_description": "backend role",
	}, "", nil)
	req := httptest.NewRequest(http.MethodPost, "/api/generate-cv", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()

	require.NoError(t, handler(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec)
	require.True(t, envelope.Success)
	assert.Contains(t, envelope.Data.(string), "raw resume text")
}

func TestGenerateCVHandlerMissingInputs(t *testing.T) {
	e := echo.New()
	handler := GenerateCVHandler(agents.NewCVAgent(&echoGenerator{}))

	tests := []struct {
		name    string
		fields  map[string]string
		wantErr string
	}{
		{
			name:    "no cv",
			fields:  map[string]string{"job_description": "backend role"},
			wantErr: "cv_file or cv_content is required",
		},
		{
			name:    "no job description",
			fields:  map[string]string{"cv_content": "resume"},
			wantErr: "job_description is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, contentType := multipartBody(t, tt.fields, "", nil)
			req := httptest.NewRequest(http.MethodPost, "/api/generate-cv", body)
			req.Header.Set(echo.HeaderContentType, contentType)
			rec := httptest.NewRecorder()

			require.NoError(t, handler(e.NewContext(req, rec)))
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			envelope := decodeEnvelope(t, rec)
			assert.False(t, envelope.Success)
			assert.Equal(t, tt.wantErr, envelope.Error)
		})
	}
}

func TestGenerateCVHandlerUnsupportedFormat(t *testing.T) {
	e := echo.New()
	handler := GenerateCVHandler(agents.NewCVAgent(&echoGenerator{}))

	body, contentType := multipartBody(t,
		map[string]string{"job_description": "role"},
		"resume.rtf", []byte("{\\rtf1}"))
	req := httptest.NewRequest(http.MethodPost, "/api/generate-cv", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()

	require.NoError(t, handler(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.False(t, envelope.Success)
	assert.Contains(t, envelope.Error, "unsupported")
}

func TestGenerateCoverLetterHandlerSuccess(t *testing.T) {
	e := echo.New()
	handler := GenerateCoverLetterHandler(agents.NewCoverLetterAgent(&echoGenerator{}))

	body, contentType := multipartBody(t, map[string]string{
		"cv_content":      "candidate resume",
		"job_description": "product engineer",
		"company_info":    "Acme builds rockets",
	}, "", nil)
	req := httptest.NewRequest(http.MethodPost, "/api/generate-cover-letter", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()

	require.NoError(t, handler(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec)
	require.True(t, envelope.Success)
	letter := envelope.Data.(string)
	assert.Contains(t, letter, "candidate resume")
	assert.Contains(t, letter, "Acme builds rockets")
}

func TestDownloadLatexHandlerReturnsExactBytes(t *testing.T) {
	e := echo.New()
	handler := DownloadLatexHandler()

	latexSource := "\\documentclass{article}\n\\begin{document}\nBonjour\n\\end{document}\n"
	payload, err := json.Marshal(models.DownloadLatexRequest{LatexContent: latexSource})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/download-latex", bytes.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, handler(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	disposition := rec.Header().Get(echo.HeaderContentDisposition)
	assert.Contains(t, disposition, "attachment")
	assert.Contains(t, disposition, "cv.tex")

	served, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, latexSource, string(served))
}

func TestDownloadLatexHandlerCustomFilename(t *testing.T) {
	e := echo.New()
	handler := DownloadLatexHandler()

	payload, err := json.Marshal(models.DownloadLatexRequest{
		LatexContent: "x",
		Filename:     "../../etc/resume",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/download-latex", bytes.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, handler(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	// Path components are stripped and the extension normalized
	disposition := rec.Header().Get(echo.HeaderContentDisposition)
	assert.Contains(t, disposition, "resume.tex")
	assert.NotContains(t, disposition, "..")
}

func TestDownloadLatexHandlerMissingContent(t *testing.T) {
	e := echo.New()
	handler := DownloadLatexHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/download-latex", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, handler(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.False(t, envelope.Success)
	assert.Equal(t, "latex_content is required", envelope.Error)
}
