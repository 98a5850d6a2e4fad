package rpc

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/daniilsolovey/church-portal/internal/church"
	"github.com/daniilsolovey/church-portal/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockReader is a manual stub implementation of Reader for testing
type mockReader struct {
	eventsFunc        func(ctx context.Context) ([]church.Event, error)
	announcementsFunc func(ctx context.Context) ([]church.Announcement, error)
	programsFunc      func(ctx context.Context) ([]church.Program, error)
	programByIDFunc   func(ctx context.Context, id int) (*church.Program, error)
	calendarFunc      func(ctx context.Context, filter church.CalendarFilter) ([]church.CalendarEntry, error)
	summaryFunc       func(ctx context.Context) (*church.Summary, error)
}

func (m *mockReader) Events(ctx context.Context) ([]church.Event, error) {
	if m.eventsFunc != nil {
		return m.eventsFunc(ctx)
	}
	return nil, nil
}

func (m *mockReader) Announcements(ctx context.Context) ([]church.Announcement, error) {
	if m.announcementsFunc != nil {
		return m.announcementsFunc(ctx)
	}
	return nil, nil
}

func (m *mockReader) Programs(ctx context.Context) ([]church.Program, error) {
	if m.programsFunc != nil {
		return m.programsFunc(ctx)
	}
	return nil, nil
}

func (m *mockReader) ProgramByID(ctx context.Context, id int) (*church.Program, error) {
	if m.programByIDFunc != nil {
		return m.programByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockReader) Calendar(ctx context.Context, filter church.CalendarFilter) ([]church.CalendarEntry, error) {
	if m.calendarFunc != nil {
		return m.calendarFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockReader) Summary(ctx context.Context) (*church.Summary, error) {
	if m.summaryFunc != nil {
		return m.summaryFunc(ctx)
	}
	return &church.Summary{}, nil
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func call(t *testing.T, reader Reader, method, params string) rpcResponse {
	t.Helper()

	srv := New(slog.New(slog.NewTextHandler(io.Discard, nil)), reader)

	body := `{"jsonrpc":"2.0","id":1,"method":"` + method + `"`
	if params != "" {
		body += `,"params":` + params
	}
	body += `}`

	req := httptest.NewRequest(http.MethodPost, "/rpc/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp rpcResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return resp
}

var testDate = time.Date(2025, 12, 24, 18, 0, 0, 0, time.UTC)

func TestChurchService_Events(t *testing.T) {
	reader := &mockReader{
		eventsFunc: func(ctx context.Context) ([]church.Event, error) {
			return []church.Event{{Event: db.Event{ID: 1, Title: "Christmas Eve", Date: testDate, Location: "Main hall"}}}, nil
		},
	}

	resp := call(t, reader, "church.events", "")
	require.Nil(t, resp.Error)

	var events []Event
	require.NoError(t, json.Unmarshal(resp.Result, &events))
	require.Len(t, events, 1)
	assert.Equal(t, 1, events[0].EventID)
	assert.Equal(t, "Christmas Eve", events[0].Title)
}

func TestChurchService_Program(t *testing.T) {
	theme := "Living in Faith"
	reader := &mockReader{
		programByIDFunc: func(ctx context.Context, id int) (*church.Program, error) {
			if id != 1 {
				return nil, nil
			}
			return &church.Program{
				ServiceProgram: db.ServiceProgram{ID: 1, Title: "Sunday Morning Service", Date: testDate, Theme: &theme},
				Items:          []church.ProgramItem{{ProgramItem: db.ProgramItem{ID: 5, ProgramID: 1, Title: "Opening Prayer", Order: 1}}},
			}, nil
		},
	}

	tests := []struct {
		name          string
		params        string
		expectedCode  int
		expectedTitle string
	}{
		{name: "Found", params: `{"req":{"id":1}}`, expectedTitle: "Sunday Morning Service"},
		{name: "PositionalParams", params: `[{"id":1}]`, expectedTitle: "Sunday Morning Service"},
		{name: "NotFound", params: `{"req":{"id":2}}`, expectedCode: 404},
		{name: "InvalidID", params: `{"req":{"id":0}}`, expectedCode: 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := call(t, reader, "church.program", tt.params)

			if tt.expectedCode != 0 {
				require.NotNil(t, resp.Error)
				assert.Equal(t, tt.expectedCode, resp.Error.Code)
				return
			}

			require.Nil(t, resp.Error)
			var program Program
			require.NoError(t, json.Unmarshal(resp.Result, &program))
			assert.Equal(t, tt.expectedTitle, program.Title)
			require.Len(t, program.Items, 1)
			assert.Equal(t, 5, program.Items[0].ProgramItemID)
		})
	}
}

func TestChurchService_Calendar(t *testing.T) {
	var got church.CalendarFilter
	reader := &mockReader{
		calendarFunc: func(ctx context.Context, filter church.CalendarFilter) ([]church.CalendarEntry, error) {
			got = filter
			return []church.CalendarEntry{{Type: church.EntryTypeEvent, ID: 1, Title: "Picnic", Date: testDate}}, nil
		},
	}

	t.Run("Filter", func(t *testing.T) {
		resp := call(t, reader, "church.calendar", `{"filter":{"year":2025,"month":12,"type":"event"}}`)
		require.Nil(t, resp.Error)
		assert.Equal(t, church.CalendarFilter{Year: 2025, Month: 12, Type: "event"}, got)

		var entries []CalendarEntry
		require.NoError(t, json.Unmarshal(resp.Result, &entries))
		require.Len(t, entries, 1)
		assert.Equal(t, "event", entries[0].Type)
	})

	t.Run("NoFilter", func(t *testing.T) {
		resp := call(t, reader, "church.calendar", "")
		require.Nil(t, resp.Error)
		assert.Equal(t, church.CalendarFilter{}, got)
	})

	t.Run("InvalidMonth", func(t *testing.T) {
		resp := call(t, reader, "church.calendar", `{"filter":{"month":13}}`)
		require.NotNil(t, resp.Error)
		assert.Equal(t, 400, resp.Error.Code)
	})
}

func TestChurchService_Errors(t *testing.T) {
	reader := &mockReader{
		announcementsFunc: func(ctx context.Context) ([]church.Announcement, error) {
			return nil, errors.New("connection refused")
		},
	}

	resp := call(t, reader, "church.announcements", "")
	require.NotNil(t, resp.Error)

	resp = call(t, reader, "church.unknown", "")
	require.NotNil(t, resp.Error)
}

func TestChurchService_Summary(t *testing.T) {
	resp := call(t, &mockReader{}, "church.summary", "")
	require.Nil(t, resp.Error)

	var summary Summary
	require.NoError(t, json.Unmarshal(resp.Result, &summary))
	assert.Nil(t, summary.UpcomingProgram)
	assert.NotNil(t, summary.RecentAnnouncements)
	assert.Empty(t, summary.UpcomingEvents)
}
