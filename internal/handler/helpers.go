package handler

import (
	"errors"
	"net/http"

	"pitchdeck/internal/domain"
	"pitchdeck/internal/httputil"
)

// handleError converts domain errors to HTTP responses
func handleError(w http.ResponseWriter, err error) {
	var rangeErr *domain.OutOfRangeError
	var invalidErr *domain.InvalidArgumentError

	switch {
	case errors.As(err, &rangeErr):
		httputil.RespondErrorWithExtras(w, http.StatusBadRequest, rangeErr.Error(), map[string]interface{}{
			"index": rangeErr.Index,
			"count": rangeErr.Count,
		})
	case errors.As(err, &invalidErr):
		var extras map[string]interface{}
		if invalidErr.Field != "" {
			extras = map[string]interface{}{"field": invalidErr.Field}
		}
		httputil.RespondErrorWithExtras(w, http.StatusBadRequest, invalidErr.Error(), extras)
	case errors.Is(err, domain.ErrNotFound):
		httputil.RespondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrConflict):
		httputil.RespondError(w, http.StatusConflict, err.Error())
	default:
		httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
	}
}
