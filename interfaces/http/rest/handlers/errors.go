package handlers

import (
	"net/http"

	"musclelog-backend/pkg/common"
	apperrors "musclelog-backend/pkg/errors"
)

// respondAppError translates a typed error into the status mapping the
// clients expect: 403 auth, 422 validation, 404 missing rows, 500 for
// store and everything else. Store causes never leak to the body.
func respondAppError(w http.ResponseWriter, err error) {
	status := apperrors.HTTPStatusFor(err)
	switch {
	case apperrors.IsValidation(err):
		common.RespondError(w, status, "not set parameter.")
	case apperrors.IsUnauthorized(err):
		common.RespondError(w, status, "Access is Denied")
	case apperrors.IsNotFound(err):
		common.RespondError(w, status, "not found")
	default:
		common.RespondError(w, http.StatusInternalServerError, "Failed. An Error Occured")
	}
}
