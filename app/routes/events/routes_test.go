package events

import (
	"testing"
	"time"

	"github.com/RITIK-CHAUDHRY/smart-campus-connect/app/models"
)

func TestGroupEventsByMonth(t *testing.T) {
	mk := func(title string, start time.Time) models.Event {
		return models.Event{Title: title, StartTime: start, EndTime: start.Add(time.Hour)}
	}

	events := []models.Event{
		mk("Orientation", time.Date(2026, time.September, 1, 9, 0, 0, 0, time.UTC)),
		mk("Career Fair", time.Date(2026, time.September, 15, 10, 0, 0, 0, time.UTC)),
		mk("Hackathon", time.Date(2026, time.October, 3, 8, 0, 0, 0, time.UTC)),
	}

	groups := groupEventsByMonth(events)
	if len(groups) != 2 {
		t.Fatalf("expected 2 month groups, got %d", len(groups))
	}
	if groups[0].Month != "September 2026" || groups[1].Month != "October 2026" {
		t.Fatalf("unexpected group months: %q, %q", groups[0].Month, groups[1].Month)
	}
	if len(groups[0].Events) != 2 || len(groups[1].Events) != 1 {
		t.Fatalf("unexpected group sizes: %d, %d", len(groups[0].Events), len(groups[1].Events))
	}
	if groups[0].Events[0].Title != "Orientation" || groups[0].Events[1].Title != "Career Fair" {
		t.Fatalf("input order not preserved inside group: %+v", groups[0].Events)
	}
}

func TestGroupEventsByMonthEmpty(t *testing.T) {
	if groups := groupEventsByMonth(nil); len(groups) != 0 {
		t.Fatalf("expected no groups for empty input, got %d", len(groups))
	}
}
