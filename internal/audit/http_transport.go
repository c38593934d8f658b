package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/webperf-id/seo-audit/internal/model"
	"github.com/webperf-id/seo-audit/internal/platform/errs"
	"github.com/webperf-id/seo-audit/internal/seoaudit"
)

const auditTimeout = 60 * time.Second

var errURLRequired = errors.New("the \"url\" field is required")

// Transport handles HTTP requests for page audits.
type Transport struct {
	service *Service
	logger  *slog.Logger
}

// NewTransport creates an HTTP transport backed by the given service.
func NewTransport(service *Service, logger *slog.Logger) *Transport {
	return &Transport{service: service, logger: logger}
}

// RegisterRoutes attaches the transport's handlers to the given mux.
func (t *Transport) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /audit", t.handleAudit)
	mux.HandleFunc("GET /audit/preview", t.handlePreview)
}

type auditRequest struct {
	URL string `json:"url"`
}

func (r auditRequest) validate() error {
	if r.URL == "" {
		return errURLRequired
	}
	return nil
}

func (t *Transport) handleAudit(w http.ResponseWriter, r *http.Request) {
	const maxRequestBody = 1 << 20 // 1 MB
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)

	var req auditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		t.renderError(w, http.StatusBadRequest, "Invalid request body. Please send a JSON object with a \"url\" field.")
		return
	}

	if err := req.validate(); err != nil {
		t.renderError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), auditTimeout)
	defer cancel()

	report, err := t.service.Audit(ctx, req.URL)
	if err != nil {
		t.handleServiceError(w, err)
		return
	}

	t.renderJSON(w, http.StatusOK, report)
}

// handlePreview serves the canned demonstration report. The optional "host"
// query parameter only customizes the Details rows; no fetch is performed.
func (t *Transport) handlePreview(w http.ResponseWriter, r *http.Request) {
	t.renderJSON(w, http.StatusOK, seoaudit.PreviewReport(r.URL.Query().Get("host")))
}

func (t *Transport) handleServiceError(w http.ResponseWriter, err error) {
	var appErr *errs.AppError
	if errors.As(err, &appErr) {
		status := http.StatusInternalServerError
		switch appErr.Kind {
		case errs.InvalidInput:
			status = http.StatusBadRequest
		case errs.Unreachable:
			status = http.StatusBadGateway
		case errs.Timeout:
			status = http.StatusGatewayTimeout
		case errs.Unknown:
			// 500 Internal Server Error
		}
		t.renderError(w, status, appErr.Message)
		return
	}

	t.renderError(w, http.StatusInternalServerError, "An unexpected error occurred.")
}

func (t *Transport) renderJSON(w http.ResponseWriter, status int, data any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(data); err != nil {
		t.logger.Error("failed to encode response", "error", err)
		http.Error(w, `{"error":"Internal Server Error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (t *Transport) renderError(w http.ResponseWriter, status int, message string) {
	t.renderJSON(w, status, model.ErrorResponse{
		Error:      http.StatusText(status),
		StatusCode: status,
		Message:    message,
	})
}
