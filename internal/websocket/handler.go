package websocket

import (
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// ServeWs attaches one websocket connection to the hub. room is empty
// for the notification stream and a live-class id for class chat.
func ServeWs(hub *Hub, c *websocket.Conn, userID uuid.UUID, room string) {
	client := &Client{Hub: hub, Conn: c, UserID: userID, Room: room, Send: make(chan []byte, 256)}
	client.Hub.register <- client

	go client.writePump()
	client.readPump() // runs on the handler goroutine
}
