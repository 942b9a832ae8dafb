package messages

import (
	"database/sql"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/RITIK-CHAUDHRY/smart-campus-connect/app/database"
	"github.com/RITIK-CHAUDHRY/smart-campus-connect/app/flash"
	"github.com/RITIK-CHAUDHRY/smart-campus-connect/app/models"
	"github.com/RITIK-CHAUDHRY/smart-campus-connect/app/routes/auth"
)

type Handlers struct {
	DB *sql.DB
}

func SetupMessagesRoutes(app *fiber.App, db *sql.DB) {
	h := &Handlers{DB: db}

	app.Get("/messages", auth.RequireLogin(), h.ShowInbox)
	app.Get("/messages/:recipient", auth.RequireLogin(), h.ShowConversation)
	app.Post("/send_message", auth.RequireLogin(), h.SendMessage)
}

// ShowInbox lists conversations: the latest message per counterpart.
func (h *Handlers) ShowInbox(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)

	conversations, err := database.GetUserConversations(h.DB, user.Username)
	if err != nil {
		return err
	}

	type conversationView struct {
		Counterpart string
		LastMessage models.Message
	}
	views := make([]conversationView, 0, len(conversations))
	for _, m := range conversations {
		views = append(views, conversationView{
			Counterpart: m.Counterpart(user.Username),
			LastMessage: m,
		})
	}

	return c.Render("messages", fiber.Map{
		"Title":         "Messages",
		"Flash":         flash.Pop(c),
		"Conversations": views,
	})
}

func (h *Handlers) ShowConversation(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	recipient := c.Params("recipient")

	msgs, err := database.GetConversation(h.DB, user.Username, recipient)
	if err != nil {
		return err
	}

	return c.Render("conversation", fiber.Map{
		"Title":     "Conversation with " + recipient,
		"Flash":     flash.Pop(c),
		"Messages":  msgs,
		"Recipient": recipient,
	})
}

func (h *Handlers) SendMessage(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	recipient := c.FormValue("recipient")
	content := c.FormValue("content")

	if recipient == "" || content == "" {
		flash.Set(c, "Recipient and message content are required")
		return c.Redirect("/messages")
	}

	message := &models.Message{
		Sender:    user.Username,
		Recipient: recipient,
		Content:   content,
	}
	if err := database.CreateMessage(h.DB, message); err != nil {
		return err
	}

	// Raise a notification for the recipient. A missing recipient account
	// only skips the notification, the message itself is already stored.
	h.notifyRecipient(user.Username, recipient)

	return c.Redirect("/messages/" + recipient)
}

func (h *Handlers) notifyRecipient(sender, recipient string) {
	user, err := database.GetUserByUsername(h.DB, recipient)
	if err != nil {
		if err != sql.ErrNoRows {
			log.Printf("Failed to look up message recipient %s: %v", recipient, err)
		}
		return
	}

	notification := &models.Notification{
		UserID:  user.ID,
		Message: "New message from " + sender,
	}
	if err := database.CreateNotification(h.DB, notification); err != nil {
		log.Printf("Failed to create notification for %s: %v", recipient, err)
	}
}
