package pick

import (
	"errors"

	"github.com/osse101/PlayPredix_Go/internal/domain"
	"github.com/osse101/PlayPredix_Go/internal/metrics"
)

// Rejection reasons recorded on the picks_rejected_total counter
const (
	RejectValidation = "validation"
	RejectNotFound   = "not_found"
	RejectScope      = "invalid_scope"
	RejectLocked     = "locked"
	RejectInternal   = "internal"
)

func reasonFor(err error) string {
	switch {
	case errors.Is(err, domain.ErrPickLocked):
		return RejectLocked
	case errors.Is(err, domain.ErrInvalidScope):
		return RejectScope
	case errors.Is(err, domain.ErrNotFound):
		return RejectNotFound
	case errors.Is(err, domain.ErrValidation):
		return RejectValidation
	default:
		return RejectInternal
	}
}

// reject counts a failed submission and passes the error through
func reject(err error) error {
	metrics.PicksRejected.WithLabelValues(reasonFor(err)).Inc()
	return err
}
