package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/stylesam/luxuria/internal/domain"
	"github.com/stylesam/luxuria/internal/service"
	"github.com/stylesam/luxuria/internal/transport/http/middleware"
	"github.com/stylesam/luxuria/pkg/validator"
)

type UserHandler struct {
	userService *service.UserService
	log         *zap.Logger
}

func NewUserHandler(userService *service.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{userService: userService, log: log}
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.CreateUserInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if errs := validator.ValidateCreateUser(input.Login, input.Password, input.Name, input.Phone, input.Email, input.Socials); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	user, err := h.userService.Create(r.Context(), input)
	if err != nil {
		writeServiceError(w, h.log, "create user", err)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context())
	if err != nil {
		writeServiceError(w, h.log, "list users", err)
		return
	}

	writeJSON(w, http.StatusOK, users)
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return
	}

	user, err := h.userService.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.log, "get user", err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return
	}

	var input service.UpdateUserInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if errs := validator.ValidateUpdateUser(input.Name, input.Email, input.Phone, patchSocials(input)); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	requester := middleware.GetRequester(r.Context())

	user, err := h.userService.UpdateByID(r.Context(), id, input, requester)
	if err != nil {
		writeServiceError(w, h.log, "update user", err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return
	}

	requester := middleware.GetRequester(r.Context())

	deleted, err := h.userService.DeleteByID(r.Context(), id, requester)
	if err != nil {
		writeServiceError(w, h.log, "delete user", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": deleted})
}

func patchSocials(in service.UpdateUserInput) []domain.Social {
	if in.Socials == nil {
		return nil
	}
	return *in.Socials
}
