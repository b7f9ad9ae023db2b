package handler

import (
	"errors"
	"net/http"

	"huddle/internal/domain"
	"huddle/internal/httputil"
)

// respondError maps domain errors to RFC 7807 responses. Anything that
// does not carry a status code is an internal error.
func respondError(w http.ResponseWriter, err error) {
	var httpErr domain.HTTPError
	if errors.As(err, &httpErr) {
		httputil.RespondError(w, httpErr.StatusCode(), httpErr.Error())
		return
	}
	httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
}
