package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/stylesam/luxuria/internal/apperr"
	"github.com/stylesam/luxuria/pkg/validator"
)

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, map[string]any{
		"error": map[string]string{"code": code, "message": message},
	})
}

func writeValidationErrors(w http.ResponseWriter, errs validator.ValidationErrors) {
	writeJSON(w, http.StatusBadRequest, map[string]any{
		"error": map[string]any{
			"code":    "VALIDATION_FAILED",
			"message": "Validation failed",
			"fields":  errs,
		},
	})
}

// writeServiceError maps the error taxonomy onto status codes. Transport
// knowledge lives here and nowhere below.
func writeServiceError(w http.ResponseWriter, log *zap.Logger, op string, err error) {
	switch apperr.KindOf(err) {
	case apperr.KindBadRequest:
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
	case apperr.KindForbidden:
		writeError(w, http.StatusForbidden, "FORBIDDEN", err.Error())
	case apperr.KindConflict:
		writeError(w, http.StatusConflict, "CONFLICT", err.Error())
	case apperr.KindNotFound:
		writeError(w, http.StatusNotFound, "NOT_FOUND", err.Error())
	default:
		log.Error("unexpected error", zap.String("op", op), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
	}
}
