package controllers

import (
	"log"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	"github.com/habitflow/habitflow-backend/pkg/utils"
)

var notifier *utils.Notifier

// UseNotifier wires the realtime hub constructed in main into the handlers.
func UseNotifier(n *utils.Notifier) {
	notifier = n
}

// HabitSocket upgrades the connection and keeps it registered until the
// client goes away. Auth comes from a token query param because browsers
// cannot set headers on websocket upgrades.
func HabitSocket(c *websocket.Conn) {
	token := c.Query("token")
	userID, err := utils.ExtractUserIDFromToken(token)
	if err != nil || userID == uuid.Nil {
		c.Close()
		return
	}

	if notifier == nil {
		c.Close()
		return
	}

	notifier.Register(userID, c)
	defer func() {
		notifier.Unregister(userID)
		c.Close()
	}()

	for {
		if _, _, err := c.ReadMessage(); err != nil {
			break
		}
	}
}

func pushHabitEvent(userID uuid.UUID, payload interface{}) {
	if notifier == nil {
		return
	}
	if err := notifier.Send(userID, payload); err != nil && err != utils.ErrNoConnection {
		log.Printf("event=push_failed user=%s err=%v", userID, err)
	}
}
