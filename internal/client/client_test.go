package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/daniilsolovey/church-portal/internal/contract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDate = time.Date(2025, 12, 24, 18, 0, 0, 0, time.UTC)

// fakeAPI is a minimal in-memory server speaking the church portal API.
type fakeAPI struct {
	mu    sync.Mutex
	hits  map[string]int
	token string
}

func (f *fakeAPI) hit(r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.hits[r.Method+" "+r.URL.RequestURI()]++
}

func (f *fakeAPI) count(key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hits[key]
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (f *fakeAPI) authorized(r *http.Request) bool {
	cookie, err := r.Cookie("church_session")
	return err == nil && cookie.Value == f.token
}

func (f *fakeAPI) handler() http.Handler {
	event := contract.Event{ID: 1, Title: "Christmas Eve", Description: "Candles", Date: testDate, Location: "Main hall"}
	program := contract.ProgramWithItems{
		Program: contract.Program{ID: 1, Title: "Sunday Morning Service", Date: testDate},
		Items:   []contract.ProgramItem{{ID: 1, ProgramID: 1, Title: "Opening Prayer", Order: 1}},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/events", func(w http.ResponseWriter, r *http.Request) {
		f.hit(r)
		if r.Method == http.MethodPost {
			if !f.authorized(r) {
				writeJSON(w, http.StatusUnauthorized, contract.ErrorResponse{Message: "Unauthorized"})
				return
			}
			var req contract.CreateEventRequest
			_ = json.NewDecoder(r.Body).Decode(&req)
			writeJSON(w, http.StatusCreated, contract.Event{ID: 2, Title: req.Title, Description: req.Description, Date: req.Date, Location: req.Location})
			return
		}
		writeJSON(w, http.StatusOK, []contract.Event{event})
	})
	mux.HandleFunc("/api/events/1", func(w http.ResponseWriter, r *http.Request) {
		f.hit(r)
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		writeJSON(w, http.StatusOK, event)
	})
	mux.HandleFunc("/api/events/404", func(w http.ResponseWriter, r *http.Request) {
		f.hit(r)
		writeJSON(w, http.StatusNotFound, contract.ErrorResponse{Message: "Event not found"})
	})
	mux.HandleFunc("/api/events/0", func(w http.ResponseWriter, r *http.Request) {
		f.hit(r)
		writeJSON(w, http.StatusOK, contract.Event{Title: "broken"})
	})
	mux.HandleFunc("/api/programs/1", func(w http.ResponseWriter, r *http.Request) {
		f.hit(r)
		writeJSON(w, http.StatusOK, program)
	})
	mux.HandleFunc("/api/programs/1/items", func(w http.ResponseWriter, r *http.Request) {
		f.hit(r)
		writeJSON(w, http.StatusCreated, contract.ProgramItem{ID: 2, ProgramID: 1, Title: "Sermon", Order: 2})
	})
	mux.HandleFunc("/api/calendar", func(w http.ResponseWriter, r *http.Request) {
		f.hit(r)
		writeJSON(w, http.StatusOK, []contract.CalendarEntry{{Type: "event", ID: 1, Title: "Christmas Eve", Date: testDate}})
	})
	mux.HandleFunc("/api/admin/login", func(w http.ResponseWriter, r *http.Request) {
		f.hit(r)
		var req contract.LoginRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Password != "s3cret" {
			writeJSON(w, http.StatusUnauthorized, contract.ErrorResponse{Message: "Invalid password"})
			return
		}
		http.SetCookie(w, &http.Cookie{Name: "church_session", Value: f.token, Path: "/", HttpOnly: true})
		writeJSON(w, http.StatusOK, contract.SuccessResponse{Success: true})
	})
	mux.HandleFunc("/api/admin/check", func(w http.ResponseWriter, r *http.Request) {
		f.hit(r)
		if !f.authorized(r) {
			writeJSON(w, http.StatusUnauthorized, contract.CheckResponse{Authenticated: false})
			return
		}
		writeJSON(w, http.StatusOK, contract.CheckResponse{Authenticated: true})
	})
	mux.HandleFunc("/api/upload/image", func(w http.ResponseWriter, r *http.Request) {
		f.hit(r)
		fh, _, err := r.FormFile("image")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, contract.ErrorResponse{Message: "No file uploaded"})
			return
		}
		defer fh.Close()
		b, _ := io.ReadAll(fh)
		if string(b) != "png-bytes" {
			writeJSON(w, http.StatusBadRequest, contract.ErrorResponse{Message: "only image files are allowed"})
			return
		}
		writeJSON(w, http.StatusOK, contract.UploadResponse{ImageURL: "/uploads/image-1.png"})
	})

	return mux
}

func newTestClient(t *testing.T) (*Client, *fakeAPI) {
	t.Helper()

	api := &fakeAPI{hits: make(map[string]int), token: "session-token"}
	srv := httptest.NewServer(api.handler())
	t.Cleanup(srv.Close)

	c, err := New(srv.URL + "/")
	require.NoError(t, err)

	return c, api
}

func TestClient_ReadsAreCachedUntilWrite(t *testing.T) {
	c, api := newTestClient(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		events, err := c.Events(ctx)
		require.NoError(t, err)
		require.Len(t, events, 1)
	}
	assert.Equal(t, 1, api.count("GET /api/events"))

	_, err := c.Event(ctx, 1)
	require.NoError(t, err)
	_, err = c.Event(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, api.count("GET /api/events/1"))

	require.NoError(t, c.Login(ctx, "s3cret"))
	created, err := c.CreateEvent(ctx, contract.CreateEventRequest{
		Title: "Picnic", Description: "Fun", Date: testDate, Location: "Park",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, created.ID)

	_, err = c.Events(ctx)
	require.NoError(t, err)
	_, err = c.Event(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, api.count("GET /api/events"))
	assert.Equal(t, 2, api.count("GET /api/events/1"))
}

func TestClient_FailedWriteKeepsCache(t *testing.T) {
	c, api := newTestClient(t)
	ctx := context.Background()

	_, err := c.Events(ctx)
	require.NoError(t, err)

	_, err = c.CreateEvent(ctx, contract.CreateEventRequest{
		Title: "Picnic", Description: "Fun", Date: testDate, Location: "Park",
	})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "Unauthorized", apiErr.Message)

	_, err = c.Events(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, api.count("GET /api/events"))
}

func TestClient_ProgramItemWriteInvalidatesProgram(t *testing.T) {
	c, api := newTestClient(t)
	ctx := context.Background()

	program, err := c.Program(ctx, 1)
	require.NoError(t, err)
	require.Len(t, program.Items, 1)

	_, err = c.CreateProgramItem(ctx, 1, contract.CreateProgramItemRequest{Title: "Sermon"})
	require.NoError(t, err)

	_, err = c.Program(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, api.count("GET /api/programs/1"))
}

func TestClient_InputValidatedBeforeSending(t *testing.T) {
	c, api := newTestClient(t)

	_, err := c.CreateEvent(context.Background(), contract.CreateEventRequest{Title: " ", Description: "Fun", Date: testDate, Location: "Park"})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "title", apiErr.Field)
	assert.Zero(t, api.count("POST /api/events"))
}

func TestClient_Errors(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	t.Run("NotFound", func(t *testing.T) {
		_, err := c.Event(ctx, 404)
		require.Error(t, err)
		assert.True(t, IsNotFound(err))
		assert.Contains(t, err.Error(), "Event not found")
	})

	t.Run("InvalidResponse", func(t *testing.T) {
		_, err := c.Event(ctx, 0)
		require.Error(t, err)
		assert.False(t, IsNotFound(err))
		assert.Contains(t, err.Error(), "invalid response")
	})
}

func TestClient_AdminSession(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	ok, err := c.Check(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	err = c.Login(ctx, "wrong")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Invalid password", apiErr.Message)

	require.NoError(t, c.Login(ctx, "s3cret"))

	ok, err = c.Check(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestClient_Calendar(t *testing.T) {
	c, api := newTestClient(t)
	ctx := context.Background()

	entries, err := c.Calendar(ctx, contract.CalendarQuery{Year: 2025, Month: 12})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 1, api.count("GET /api/calendar?month=12&year=2025"))

	_, err = c.Calendar(ctx, contract.CalendarQuery{Type: "meeting"})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "type", apiErr.Field)
}

func TestClient_UploadImage(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	url, err := c.UploadImage(ctx, "photo.png", "image/png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/image-1.png", url)

	_, err = c.UploadImage(ctx, "notes.txt", "text/plain", strings.NewReader("hello"))
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
}
