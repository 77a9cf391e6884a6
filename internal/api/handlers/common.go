package handlers

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"careerpilot/internal/extractor"
	"careerpilot/internal/llm"
	"careerpilot/pkg/models"
	"careerpilot/pkg/utils"
)

var validate = validator.New()

// requestID returns the ID set by the request validation middleware,
// generating one when the middleware did not run.
func requestID(c echo.Context) string {
	if id, ok := c.Get("request_id").(string); ok && id != "" {
		return id
	}
	return utils.GenerateRequestID()
}

// envelopeMessage maps classified failures to stable client-facing envelope
// messages. Internal error text stays in the logs.
func envelopeMessage(err error) string {
	switch {
	case errors.Is(err, llm.ErrProviderUnavailable):
		return "generation provider is unavailable"
	case errors.Is(err, llm.ErrMalformedResponse):
		return "generation provider returned an unexpected response"
	case errors.Is(err, extractor.ErrUnsupportedFormat):
		return extractor.ErrUnsupportedFormat.Error()
	default:
		return "request processing failed"
	}
}

// bindCvInput reads the "file upload or raw text field" union from a
// multipart form without interpreting it.
func bindCvInput(c echo.Context) (models.CvInput, error) {
	fileHeader, err := c.FormFile("cv_file")
	if err == nil && fileHeader != nil {
		f, err := fileHeader.Open()
		if err != nil {
			return models.CvInput{}, fmt.Errorf("failed to open uploaded file: %w", err)
		}
		defer f.Close()

		data, err := io.ReadAll(f)
		if err != nil {
			return models.CvInput{}, fmt.Errorf("failed to read uploaded file: %w", err)
		}

		return models.CvInput{Document: &models.UploadedDocument{
			Filename: fileHeader.Filename,
			Data:     data,
		}}, nil
	}

	return models.CvInput{Text: c.FormValue("cv_content")}, nil
}

// resolveCvContent flattens the CV input union into plain text so the
// orchestrators never see file formats.
func resolveCvContent(c echo.Context) (string, error) {
	input, err := bindCvInput(c)
	if err != nil {
		return "", err
	}

	if input.Document != nil {
		return extractor.Extract(*input.Document)
	}

	return input.Text, nil
}
