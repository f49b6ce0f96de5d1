package stream

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

type conn interface {
	ReadMessage() (int, []byte, error)
	WriteMessage(messageType int, data []byte) error
}

func RegisterRoutes(r fiber.Router, hub *Hub) {
	r.Get("/ws/:tripID", websocket.New(func(c *websocket.Conn) {
		serve(hub, c.Params("tripID"), c)
	}))
}

func serve(hub *Hub, tripID string, c conn) {
	client := hub.Register(tripID)
	defer hub.Unregister(client)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for msg := range client.Send {
			if err := c.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		}
	}()

	for {
		if _, _, err := c.ReadMessage(); err != nil {
			break
		}
	}

	// Unregister closes Send so the writer drains and exits even when no
	// further broadcast arrives.
	hub.Unregister(client)
	<-done
}
