package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/jobportal/jobportal-go/internal/middleware"
	"github.com/jobportal/jobportal-go/internal/model"
	"github.com/jobportal/jobportal-go/internal/service"
)

// writeError maps an error from the service layer to a status code and JSON body.
// Unknown errors become a generic 500 and are logged with the request id.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *model.ValidationError
	if errors.As(err, &verr) {
		body := errorResponse(verr.Error())
		body["errors"] = verr.Fields
		writeJSON(w, http.StatusBadRequest, body)
		return
	}

	switch {
	case errors.Is(err, errMalformedBody), errors.Is(err, errInvalidJobID):
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
	case errors.Is(err, errBodyTooLarge):
		writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse(err.Error()))
	case errors.Is(err, service.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, errorResponse("Invalid email or password"))
	case errors.Is(err, service.ErrNotJobOwner):
		writeJSON(w, http.StatusForbidden, errorResponse("You are not authorized to modify this job"))
	case errors.Is(err, service.ErrJobNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse("No job found with this id"))
	case errors.Is(err, service.ErrUserNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse("User not found"))
	case errors.Is(err, service.ErrEmailTaken):
		writeJSON(w, http.StatusConflict, errorResponse("Email already registered"))
	default:
		slog.Error("request failed",
			slog.String("request_id", middleware.RequestIDFromContext(r.Context())),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeJSON(w, http.StatusInternalServerError, errorResponse("Something went wrong."))
	}
}

// NotFound answers requests for unknown routes.
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, errorResponse("Route not found"))
}

// MethodNotAllowed answers requests with an unsupported method on a known route.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, errorResponse("Method not allowed"))
}

// requireUser returns the authenticated user id, writing a 401 when it is absent.
func requireUser(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("Authentication invalid"))
		return 0, false
	}
	return userID, true
}
