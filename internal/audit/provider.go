package audit

import (
	"context"

	"github.com/webperf-id/seo-audit/internal/model"
)

// ReportProvider defines the contract for any audit engine.
type ReportProvider interface {
	Audit(ctx context.Context, rawURL string) (*model.Report, error)
}
