package audit

import (
	"context"
	"errors"
	"log/slog"

	"github.com/webperf-id/seo-audit/internal/model"
	"github.com/webperf-id/seo-audit/internal/platform/errs"
	"github.com/webperf-id/seo-audit/internal/platform/requestid"
)

// Service orchestrates a ReportProvider and logs results.
type Service struct {
	provider ReportProvider
	logger   *slog.Logger
}

// NewService creates a Service backed by the given provider.
func NewService(provider ReportProvider, logger *slog.Logger) *Service {
	return &Service{provider: provider, logger: logger}
}

// Audit delegates to the provider and logs the outcome.
func (s *Service) Audit(ctx context.Context, rawURL string) (*model.Report, error) {
	logger := s.logger.With("url", rawURL, "request_id", requestid.FromContext(ctx))

	report, err := s.provider.Audit(ctx, rawURL)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			err = &errs.AppError{
				Kind:    errs.Timeout,
				Message: "The audit timed out. The target site may be slow to respond.",
				Cause:   err,
			}
		}

		attrs := []any{"error", err}
		var appErr *errs.AppError
		if errors.As(err, &appErr) && appErr.UpstreamStatus != 0 {
			attrs = append(attrs, "target_status", appErr.UpstreamStatus)
		}
		logger.Error("audit failed", attrs...)
		return nil, err
	}

	logger.Info("audit complete",
		"final_url", report.URL,
		"passed", report.Score.Passed,
		"total", report.Score.Total,
		"percentage", report.Score.Percentage,
		"load_time_ms", report.LoadTimeMs,
	)
	return report, nil
}
