package routes

import (
	"amoria_server/controllers"
	"amoria_server/services"

	"github.com/gorilla/mux"
)

// RegisterChatRoutes sets up routes for match conversations under /api/messages
func RegisterChatRoutes(r *mux.Router, chatService *services.ChatService) {
	controller := controllers.NewChatController(chatService)

	chatRouter := r.PathPrefix("/api/messages").Subrouter()
	chatRouter.HandleFunc("", controller.SendMessage).Methods("POST")
	chatRouter.HandleFunc("/{matchId}", controller.GetMessages).Methods("GET")
	chatRouter.HandleFunc("/{matchId}/read", controller.MarkMessagesAsRead).Methods("POST")
}
