package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/stylesam/luxuria/internal/service"
)

type FriendHandler struct {
	friendService *service.FriendService
	log           *zap.Logger
}

func NewFriendHandler(friendService *service.FriendService, log *zap.Logger) *FriendHandler {
	return &FriendHandler{friendService: friendService, log: log}
}

func (h *FriendHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return
	}

	friends, err := h.friendService.ListFriends(r.Context(), userID)
	if err != nil {
		writeServiceError(w, h.log, "list friends", err)
		return
	}

	writeJSON(w, http.StatusOK, friends)
}

// Add expects the candidate in the candidateFriendId query parameter and
// responds with the updated friend list.
func (h *FriendHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return
	}

	candidateID, err := uuid.Parse(r.URL.Query().Get("candidateFriendId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid candidate friend ID")
		return
	}

	friends, err := h.friendService.AddFriend(r.Context(), userID, candidateID)
	if err != nil {
		writeServiceError(w, h.log, "add friend", err)
		return
	}

	writeJSON(w, http.StatusOK, friends)
}

func (h *FriendHandler) Remove(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return
	}

	candidateID, err := uuid.Parse(r.URL.Query().Get("candidateFriendId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid candidate friend ID")
		return
	}

	removed, err := h.friendService.RemoveFriend(r.Context(), userID, candidateID)
	if err != nil {
		writeServiceError(w, h.log, "remove friend", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": removed,
		"message": "Friend has been removed",
	})
}
