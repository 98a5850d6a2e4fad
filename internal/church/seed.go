package church

import (
	"context"
	"fmt"
	"time"

	"github.com/daniilsolovey/church-portal/internal/db"
)

// Seed fills an empty database with the initial program, announcements and events.
// It does nothing when at least one program exists and reports whether data was inserted.
func (m *Manager) Seed(ctx context.Context) (bool, error) {
	count, err := m.db.ProgramsCount(ctx)
	if err != nil {
		return false, fmt.Errorf("db get programs count: %w", err)
	} else if count > 0 {
		return false, nil
	}

	now := m.now()
	theme := "Living in Faith"

	program, err := m.db.AddProgram(ctx, &db.ServiceProgram{
		Title: "Sunday Morning Service",
		Date:  now,
		Theme: &theme,
	})
	if err != nil {
		return false, fmt.Errorf("db add seed program: %w", err)
	}

	items := []db.ProgramItem{
		{Title: "Opening Prayer", Order: 1, Time: ptr("10:00 AM"), Presenter: ptr("Deacon Smith"), Description: ptr("Invocation and welcome")},
		{Title: "Praise & Worship", Order: 2, Time: ptr("10:15 AM"), Presenter: ptr("Worship Team"), Description: ptr("Songs of praise")},
		{Title: "Sermon", Order: 3, Time: ptr("11:00 AM"), Presenter: ptr("Pastor Johnson"), Description: ptr("Scripture: Hebrews 11:1")},
	}
	for i := range items {
		items[i].ProgramID = program.ID
		if _, err := m.db.AddProgramItem(ctx, &items[i]); err != nil {
			return false, fmt.Errorf("db add seed program item %q: %w", items[i].Title, err)
		}
	}

	announcements := []db.Announcement{
		{Title: "Community Picnic", Content: "Join us this Saturday for a community picnic at the park. Bring a dish to share!", Date: now},
		{Title: "Youth Group Meeting", Content: "Youth group meets every Wednesday at 6 PM in the fellowship hall.", Date: now},
	}
	for i := range announcements {
		if _, err := m.db.AddAnnouncement(ctx, &announcements[i]); err != nil {
			return false, fmt.Errorf("db add seed announcement %q: %w", announcements[i].Title, err)
		}
	}

	events := []db.Event{
		{
			Title:       "Christmas Eve Service",
			Description: "Join us for a candlelight service celebrating the birth of Christ.",
			Date:        time.Date(2025, 12, 24, 18, 0, 0, 0, time.Local),
			Location:    "Main Sanctuary",
			ImageURL:    ptr("https://images.unsplash.com/photo-1512389142860-9c449e58a543"),
		},
		{
			Title:       "New Year's Prayer Vigil",
			Description: "Ring in the new year with prayer and reflection.",
			Date:        time.Date(2025, 12, 31, 22, 0, 0, 0, time.Local),
			Location:    "Prayer Chapel",
		},
	}
	for i := range events {
		if _, err := m.db.AddEvent(ctx, &events[i]); err != nil {
			return false, fmt.Errorf("db add seed event %q: %w", events[i].Title, err)
		}
	}

	return true, nil
}

func ptr[T any](v T) *T {
	return &v
}
