package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/stylesam/luxuria/internal/service"
	"github.com/stylesam/luxuria/internal/transport/http/middleware"
	"github.com/stylesam/luxuria/pkg/validator"
)

type ZoneHandler struct {
	zoneService *service.ZoneService
	log         *zap.Logger
}

func NewZoneHandler(zoneService *service.ZoneService, log *zap.Logger) *ZoneHandler {
	return &ZoneHandler{zoneService: zoneService, log: log}
}

// ownerID resolves the {id} path segment and checks it against the
// authenticated caller. Zones are strictly self-service: the user id in the
// path must be the caller's own.
func (h *ZoneHandler) ownerID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return uuid.Nil, false
	}

	requester := middleware.GetRequester(r.Context())
	if requester.UserID != userID {
		writeError(w, http.StatusForbidden, "FORBIDDEN", "You can only manage your own zones")
		return uuid.Nil, false
	}
	return userID, true
}

func (h *ZoneHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.ownerID(w, r)
	if !ok {
		return
	}

	var input service.ZoneInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if errs := validator.ValidateZone(input.Name, input.Payload); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	zone, err := h.zoneService.Create(r.Context(), userID, input)
	if err != nil {
		writeServiceError(w, h.log, "create zone", err)
		return
	}

	writeJSON(w, http.StatusCreated, zone)
}

func (h *ZoneHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.ownerID(w, r)
	if !ok {
		return
	}

	zones, err := h.zoneService.ListAll(r.Context(), userID)
	if err != nil {
		writeServiceError(w, h.log, "list zones", err)
		return
	}

	writeJSON(w, http.StatusOK, zones)
}

func (h *ZoneHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.ownerID(w, r)
	if !ok {
		return
	}

	zoneID, err := uuid.Parse(r.PathValue("zoneId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid zone ID")
		return
	}

	zone, err := h.zoneService.GetByID(r.Context(), userID, zoneID)
	if err != nil {
		writeServiceError(w, h.log, "get zone", err)
		return
	}

	writeJSON(w, http.StatusOK, zone)
}

func (h *ZoneHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.ownerID(w, r)
	if !ok {
		return
	}

	zoneID, err := uuid.Parse(r.PathValue("zoneId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid zone ID")
		return
	}

	var input service.ZoneInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if errs := validator.ValidateZone(input.Name, input.Payload); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	zone, err := h.zoneService.UpdateByID(r.Context(), userID, zoneID, input)
	if err != nil {
		writeServiceError(w, h.log, "update zone", err)
		return
	}

	writeJSON(w, http.StatusOK, zone)
}

func (h *ZoneHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.ownerID(w, r)
	if !ok {
		return
	}

	zoneID, err := uuid.Parse(r.PathValue("zoneId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid zone ID")
		return
	}

	deleted, err := h.zoneService.DeleteByID(r.Context(), userID, zoneID)
	if err != nil {
		writeServiceError(w, h.log, "delete zone", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": deleted})
}
