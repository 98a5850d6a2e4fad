package church

import (
	"context"
	"sort"
	"time"
)

const summaryLimit = 3

// Calendar merges events and programs into one list sorted by date ascending.
func (m *Manager) Calendar(ctx context.Context, filter CalendarFilter) ([]CalendarEntry, error) {
	var entries []CalendarEntry

	if filter.Type == "" || filter.Type == EntryTypeEvent {
		events, err := m.Events(ctx)
		if err != nil {
			return nil, err
		}
		for i := range events {
			entries = append(entries, newEventEntry(&events[i]))
		}
	}

	if filter.Type == "" || filter.Type == EntryTypeProgram {
		programs, err := m.Programs(ctx)
		if err != nil {
			return nil, err
		}
		for i := range programs {
			entries = append(entries, newProgramEntry(&programs[i]))
		}
	}

	result := make([]CalendarEntry, 0, len(entries))
	for _, e := range entries {
		if filter.match(e.Date) {
			result = append(result, e)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		if !result[i].Date.Equal(result[j].Date) {
			return result[i].Date.Before(result[j].Date)
		}
		if result[i].Type != result[j].Type {
			return result[i].Type == EntryTypeEvent
		}
		return result[i].ID < result[j].ID
	})

	return result, nil
}

func (f CalendarFilter) match(date time.Time) bool {
	if f.Year != 0 && date.Year() != f.Year {
		return false
	}
	if f.Month != 0 && int(date.Month()) != f.Month {
		return false
	}

	return true
}

// Summary collects the home page data: the upcoming program with its items
// (the latest one when nothing is scheduled from today on), the three newest
// announcements and the next three events.
func (m *Manager) Summary(ctx context.Context) (*Summary, error) {
	now := m.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	programs, err := m.Programs(ctx)
	if err != nil {
		return nil, err
	}

	summary := &Summary{}
	if upcoming := upcomingProgram(programs, today); upcoming != nil {
		if err := m.fillItems(ctx, upcoming); err != nil {
			return nil, err
		}
		summary.UpcomingProgram = upcoming
	}

	announcements, err := m.Announcements(ctx)
	if err != nil {
		return nil, err
	}
	summary.RecentAnnouncements = announcements[:min(len(announcements), summaryLimit)]

	events, err := m.Events(ctx)
	if err != nil {
		return nil, err
	}
	summary.UpcomingEvents = make([]Event, 0, summaryLimit)
	for _, e := range events {
		if len(summary.UpcomingEvents) == summaryLimit {
			break
		}
		if !e.Date.Before(now) {
			summary.UpcomingEvents = append(summary.UpcomingEvents, e)
		}
	}

	return summary, nil
}

// upcomingProgram expects programs sorted by date descending.
func upcomingProgram(programs []Program, from time.Time) *Program {
	if len(programs) == 0 {
		return nil
	}

	var next *Program
	for i := range programs {
		if programs[i].Date.Before(from) {
			break
		}
		next = &programs[i]
	}

	if next == nil {
		next = &programs[0]
	}

	return next
}
