package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"amoria_server/helpers"
	"amoria_server/models"
	"amoria_server/services"

	"github.com/gorilla/mux"
)

// ChatController handles HTTP requests for match conversations
type ChatController struct {
	ChatService *services.ChatService
}

// NewChatController creates a new ChatController instance
func NewChatController(chatService *services.ChatService) *ChatController {
	return &ChatController{ChatService: chatService}
}

// SendMessage stores a new message in a match conversation
func (cc *ChatController) SendMessage(w http.ResponseWriter, r *http.Request) {
	var message models.Message
	if err := json.NewDecoder(r.Body).Decode(&message); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	stored, err := cc.ChatService.SendMessage(r.Context(), message)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	helpers.WriteJSONResponse(w, http.StatusOK, map[string]interface{}{
		"message": "Message sent successfully",
		"data":    stored,
	})
}

// GetMessages fetches messages for a match, newest first
func (cc *ChatController) GetMessages(w http.ResponseWriter, r *http.Request) {
	matchID := mux.Vars(r)["matchId"]

	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	messages, err := cc.ChatService.GetMessagesByMatchID(r.Context(), matchID, limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	helpers.WriteJSONResponse(w, http.StatusOK, map[string]interface{}{
		"messages": messages,
	})
}

// MarkMessagesAsRead marks the caller's received messages in a match as read
func (cc *ChatController) MarkMessagesAsRead(w http.ResponseWriter, r *http.Request) {
	matchID := mux.Vars(r)["matchId"]
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		writeServiceError(w, services.ErrNotAuthenticated)
		return
	}

	if err := cc.ChatService.MarkMessagesAsRead(r.Context(), matchID, userID); err != nil {
		writeServiceError(w, err)
		return
	}

	helpers.WriteJSONResponse(w, http.StatusOK, map[string]string{
		"message": "Messages marked as read",
	})
}
