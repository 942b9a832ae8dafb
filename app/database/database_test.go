package database

import (
	"database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/RITIK-CHAUDHRY/smart-campus-connect/app/models"
)

// openTestDB connects to the database named by TEST_DATABASE_URL and
// applies the schema. Tests needing a real database skip when it is unset.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := db.Ping(); err != nil {
		t.Fatalf("ping test database: %v", err)
	}
	if err := RunMigrations(db); err != nil {
		t.Fatalf("run migrations: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func createTestUser(t *testing.T, db *sql.DB, prefix string) *models.User {
	t.Helper()
	tag := fmt.Sprintf("%s_%d", prefix, time.Now().UnixNano())
	user := &models.User{
		Username:     tag,
		Email:        tag + "@example.edu",
		PasswordHash: "x",
		Department:   "Computer Science",
		Year:         "2",
	}
	if err := CreateUser(db, user); err != nil {
		t.Fatalf("create user %s: %v", tag, err)
	}
	t.Cleanup(func() {
		db.Exec(`DELETE FROM notifications WHERE user_id = $1`, user.ID)
		db.Exec(`DELETE FROM users WHERE id = $1`, user.ID)
	})
	return user
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	db := openTestDB(t)
	first := createTestUser(t, db, "dup")

	second := &models.User{
		Username:     first.Username + "_again",
		Email:        first.Email,
		PasswordHash: "x",
	}
	if err := CreateUser(db, second); err != ErrDuplicateEmail {
		t.Fatalf("second insert with same email: got %v, want ErrDuplicateEmail", err)
	}
}

func TestGetConversationBothDirections(t *testing.T) {
	db := openTestDB(t)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	t.Cleanup(func() {
		db.Exec(`DELETE FROM messages WHERE sender = $1 OR recipient = $1`, alice.Username)
	})

	contents := []struct {
		from, to, text string
	}{
		{alice.Username, bob.Username, "hey, lab at 4?"},
		{bob.Username, alice.Username, "works for me"},
		{alice.Username, bob.Username, "see you there"},
	}
	for _, msg := range contents {
		err := CreateMessage(db, &models.Message{Sender: msg.from, Recipient: msg.to, Content: msg.text})
		if err != nil {
			t.Fatalf("create message %q: %v", msg.text, err)
		}
		// Keep sent_at strictly increasing.
		time.Sleep(2 * time.Millisecond)
	}

	conv, err := GetConversation(db, alice.Username, bob.Username)
	if err != nil {
		t.Fatalf("get conversation: %v", err)
	}
	if len(conv) != len(contents) {
		t.Fatalf("expected %d messages, got %d", len(contents), len(conv))
	}
	for i, m := range conv {
		if m.Sender != contents[i].from || m.Content != contents[i].text {
			t.Fatalf("message %d out of order: got %s %q, want %s %q",
				i, m.Sender, m.Content, contents[i].from, contents[i].text)
		}
		if i > 0 && m.Timestamp.Before(conv[i-1].Timestamp) {
			t.Fatalf("message %d timestamp precedes message %d", i, i-1)
		}
	}

	// Fetching with the users swapped returns the same conversation.
	swapped, err := GetConversation(db, bob.Username, alice.Username)
	if err != nil {
		t.Fatalf("get conversation swapped: %v", err)
	}
	if len(swapped) != len(conv) || swapped[0].ID != conv[0].ID {
		t.Fatalf("swapped fetch differs: %d messages, first id %s", len(swapped), swapped[0].ID)
	}
}

func TestMarkNotificationReadIdempotent(t *testing.T) {
	db := openTestDB(t)
	user := createTestUser(t, db, "notify")

	n := &models.Notification{UserID: user.ID, Message: "New message from bob"}
	if err := CreateNotification(db, n); err != nil {
		t.Fatalf("create notification: %v", err)
	}
	if count, err := GetUnreadCount(db, user.ID); err != nil || count != 1 {
		t.Fatalf("unread count before read: %d, %v", count, err)
	}

	if err := MarkNotificationRead(db, user.ID, n.ID); err != nil {
		t.Fatalf("first mark read: %v", err)
	}
	if err := MarkNotificationRead(db, user.ID, n.ID); err != nil {
		t.Fatalf("second mark read: %v", err)
	}

	if count, err := GetUnreadCount(db, user.ID); err != nil || count != 0 {
		t.Fatalf("unread count after read: %d, %v", count, err)
	}
	list, err := GetUserNotifications(db, user.ID)
	if err != nil {
		t.Fatalf("get notifications: %v", err)
	}
	if len(list) != 1 || !list[0].IsRead {
		t.Fatalf("expected one read notification, got %+v", list)
	}
}

func TestToggleAdminTwice(t *testing.T) {
	db := openTestDB(t)
	user := createTestUser(t, db, "toggle")

	granted, err := ToggleAdmin(db, user.ID)
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if !granted {
		t.Fatalf("first toggle should grant admin")
	}

	revoked, err := ToggleAdmin(db, user.ID)
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if revoked {
		t.Fatalf("second toggle should revoke admin")
	}

	fresh, err := GetUserByID(db, user.ID)
	if err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if fresh.IsAdmin {
		t.Fatalf("admin flag not restored after two toggles")
	}
}
