package events

import (
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/RITIK-CHAUDHRY/smart-campus-connect/app/database"
	"github.com/RITIK-CHAUDHRY/smart-campus-connect/app/flash"
	"github.com/RITIK-CHAUDHRY/smart-campus-connect/app/models"
	"github.com/RITIK-CHAUDHRY/smart-campus-connect/app/routes/auth"
)

// formTimeLayout matches the value of an HTML datetime-local input.
const formTimeLayout = "2006-01-02T15:04"

const upcomingLimit = 5

type Handlers struct {
	DB *sql.DB
}

func SetupEventsRoutes(app *fiber.App, db *sql.DB) {
	h := &Handlers{DB: db}

	app.Get("/events", h.ListEvents)
	app.Get("/event/:id", h.ShowEvent)
	app.Get("/create_event", auth.RequireLogin(), auth.RequireAdmin(), h.ShowCreatePage)
	app.Post("/create_event", auth.RequireLogin(), auth.RequireAdmin(), h.CreateEvent)
	app.Get("/upcoming_events", h.ListUpcomingEvents)
}

type EventGroup struct {
	Month  string
	Events []models.Event
}

// groupEventsByMonth splits an ascending event list into month buckets for
// the listing page. Input order is preserved inside each bucket.
func groupEventsByMonth(events []models.Event) []EventGroup {
	var groups []EventGroup
	currentMonth := ""
	for _, event := range events {
		monthYear := event.StartTime.Format("January 2006")
		if monthYear != currentMonth {
			currentMonth = monthYear
			groups = append(groups, EventGroup{Month: monthYear})
		}
		last := &groups[len(groups)-1]
		last.Events = append(last.Events, event)
	}
	return groups
}

func (h *Handlers) ListEvents(c *fiber.Ctx) error {
	events, err := database.GetEvents(h.DB)
	if err != nil {
		return err
	}
	return c.Render("events", fiber.Map{
		"Title":       "Events",
		"Flash":       flash.Pop(c),
		"Events":      events,
		"EventGroups": groupEventsByMonth(events),
		"HasEvents":   len(events) > 0,
	})
}

func (h *Handlers) ShowEvent(c *fiber.Ctx) error {
	event, err := database.GetEventByID(h.DB, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			flash.Set(c, "Event not found")
			return c.Redirect("/events")
		}
		return err
	}
	return c.Render("event_detail", fiber.Map{
		"Title": event.Title,
		"Flash": flash.Pop(c),
		"Event": event,
	})
}

func (h *Handlers) ShowCreatePage(c *fiber.Ctx) error {
	return c.Render("create_event", fiber.Map{
		"Title": "New Event",
		"Flash": flash.Pop(c),
	})
}

func (h *Handlers) CreateEvent(c *fiber.Ctx) error {
	title := c.FormValue("title")
	description := c.FormValue("description")
	location := c.FormValue("location")

	startTime, err := time.ParseInLocation(formTimeLayout, c.FormValue("start_time"), time.Local)
	if err != nil {
		flash.Set(c, "Invalid start time")
		return c.Redirect("/create_event")
	}
	endTime, err := time.ParseInLocation(formTimeLayout, c.FormValue("end_time"), time.Local)
	if err != nil {
		flash.Set(c, "Invalid end time")
		return c.Redirect("/create_event")
	}
	if title == "" {
		flash.Set(c, "Title is required")
		return c.Redirect("/create_event")
	}

	event := &models.Event{
		Title:       title,
		Description: description,
		StartTime:   startTime,
		EndTime:     endTime,
		Location:    location,
		Organizer:   auth.CurrentUser(c).Username,
	}
	if err := database.CreateEvent(h.DB, event); err != nil {
		return err
	}

	flash.Set(c, "Event created successfully")
	return c.Redirect("/events")
}

func (h *Handlers) ListUpcomingEvents(c *fiber.Ctx) error {
	events, err := database.GetUpcomingEvents(h.DB, upcomingLimit)
	if err != nil {
		return err
	}
	return c.Render("upcoming_events", fiber.Map{
		"Title":  "Upcoming Events",
		"Flash":  flash.Pop(c),
		"Events": events,
	})
}
