package socket

import (
	"log"

	socketio "github.com/googollee/go-socket.io"
)

// NewSocketServer initializes the Socket.IO server used for realtime chat
// and match events. Clients join a room per matchId; messages and new-match
// notifications are broadcast into that room.
func NewSocketServer() *socketio.Server {
	server := socketio.NewServer(nil)

	server.OnConnect("/", func(c socketio.Conn) error {
		log.Println("socket connected:", c.ID())
		return nil
	})

	server.OnEvent("/", "join", func(c socketio.Conn, data map[string]string) {
		matchID := data["matchId"]
		if matchID == "" {
			log.Println("join request without matchId")
			return
		}
		c.Join(matchID)
	})

	server.OnEvent("/", "sendMessage", func(c socketio.Conn, message map[string]interface{}) {
		matchID, _ := message["matchId"].(string)
		if matchID == "" {
			return
		}
		server.BroadcastToRoom("/", matchID, "newMessage", message)
	})

	server.OnDisconnect("/", func(c socketio.Conn, reason string) {
		log.Println("socket disconnected:", c.ID(), reason)
	})

	server.OnError("/", func(c socketio.Conn, err error) {
		log.Println("socket error:", err)
	})

	return server
}
