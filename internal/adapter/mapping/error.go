package mapping

import (
	"errors"
	"net/http"

	"github.com/eslsoft/lingua/internal/entity"
)

// ToHTTPStatus maps a domain error to a response status. Conflicts never
// reach the transport: the usecases resolve them internally, so anything
// unrecognized here is a server fault.
func ToHTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, entity.ErrInvalidLearnerID),
		errors.Is(err, entity.ErrInvalidUnitType),
		errors.Is(err, entity.ErrInvalidUnitID),
		errors.Is(err, entity.ErrInvalidSessionID),
		errors.Is(err, entity.ErrInvalidBatchTotal),
		errors.Is(err, entity.ErrInvalidAnswer),
		errors.Is(err, entity.ErrInvalidDedupeKey):
		return http.StatusBadRequest
	case errors.Is(err, entity.ErrPackNotFound),
		errors.Is(err, entity.ErrClusterNotFound),
		errors.Is(err, entity.ErrSenseNotFound),
		errors.Is(err, entity.ErrVerbNotFound),
		errors.Is(err, entity.ErrBadgeNotFound),
		errors.Is(err, entity.ErrKnowledgeNotFound),
		errors.Is(err, entity.ErrUserXpNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
