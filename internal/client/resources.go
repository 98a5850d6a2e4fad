package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strconv"

	"github.com/daniilsolovey/church-portal/internal/contract"
)

var api = contract.API

// Cached read prefixes dropped by writes of each entity.
var (
	eventReads        = []string{api.Events.List.Path, api.Calendar.List.Path, api.Home.Summary.Path}
	announcementReads = []string{api.Announcements.List.Path, api.Home.Summary.Path}
	programReads      = []string{api.Programs.List.Path, api.Calendar.List.Path, api.Home.Summary.Path}
)

func idParams(id int) map[string]any {
	return map[string]any{"id": id}
}

func (c *Client) Events(ctx context.Context) ([]contract.Event, error) {
	var events []contract.Event
	if err := c.read(ctx, api.Events.List.Path, &events); err != nil {
		return nil, err
	}

	return events, validateList(events)
}

func (c *Client) Event(ctx context.Context, id int) (*contract.Event, error) {
	var event contract.Event
	if err := c.read(ctx, api.Events.Get.URL(idParams(id)), &event); err != nil {
		return nil, err
	}

	return &event, validateOne(event)
}

func (c *Client) CreateEvent(ctx context.Context, req contract.CreateEventRequest) (*contract.Event, error) {
	if err := validateInput(req); err != nil {
		return nil, err
	}

	var event contract.Event
	if err := c.write(ctx, api.Events.Create, nil, req, &event, eventReads...); err != nil {
		return nil, err
	}

	return &event, validateOne(event)
}

func (c *Client) UpdateEvent(ctx context.Context, id int, req contract.UpdateEventRequest) (*contract.Event, error) {
	if err := validateInput(req); err != nil {
		return nil, err
	}

	var event contract.Event
	if err := c.write(ctx, api.Events.Update, idParams(id), req, &event, eventReads...); err != nil {
		return nil, err
	}

	return &event, validateOne(event)
}

func (c *Client) DeleteEvent(ctx context.Context, id int) error {
	return c.write(ctx, api.Events.Delete, idParams(id), nil, nil, eventReads...)
}

func (c *Client) Announcements(ctx context.Context) ([]contract.Announcement, error) {
	var announcements []contract.Announcement
	if err := c.read(ctx, api.Announcements.List.Path, &announcements); err != nil {
		return nil, err
	}

	return announcements, validateList(announcements)
}

func (c *Client) CreateAnnouncement(ctx context.Context, req contract.CreateAnnouncementRequest) (*contract.Announcement, error) {
	if err := validateInput(req); err != nil {
		return nil, err
	}

	var announcement contract.Announcement
	if err := c.write(ctx, api.Announcements.Create, nil, req, &announcement, announcementReads...); err != nil {
		return nil, err
	}

	return &announcement, validateOne(announcement)
}

func (c *Client) UpdateAnnouncement(ctx context.Context, id int, req contract.UpdateAnnouncementRequest) (*contract.Announcement, error) {
	if err := validateInput(req); err != nil {
		return nil, err
	}

	var announcement contract.Announcement
	if err := c.write(ctx, api.Announcements.Update, idParams(id), req, &announcement, announcementReads...); err != nil {
		return nil, err
	}

	return &announcement, validateOne(announcement)
}

func (c *Client) DeleteAnnouncement(ctx context.Context, id int) error {
	return c.write(ctx, api.Announcements.Delete, idParams(id), nil, nil, announcementReads...)
}

func (c *Client) Programs(ctx context.Context) ([]contract.Program, error) {
	var programs []contract.Program
	if err := c.read(ctx, api.Programs.List.Path, &programs); err != nil {
		return nil, err
	}

	return programs, validateList(programs)
}

// Program returns the program with its items in display order.
func (c *Client) Program(ctx context.Context, id int) (*contract.ProgramWithItems, error) {
	var program contract.ProgramWithItems
	if err := c.read(ctx, api.Programs.Get.URL(idParams(id)), &program); err != nil {
		return nil, err
	}

	return &program, validateOne(program)
}

func (c *Client) CreateProgram(ctx context.Context, req contract.CreateProgramRequest) (*contract.Program, error) {
	if err := validateInput(req); err != nil {
		return nil, err
	}

	var program contract.Program
	if err := c.write(ctx, api.Programs.Create, nil, req, &program, programReads...); err != nil {
		return nil, err
	}

	return &program, validateOne(program)
}

func (c *Client) UpdateProgram(ctx context.Context, id int, req contract.UpdateProgramRequest) (*contract.Program, error) {
	if err := validateInput(req); err != nil {
		return nil, err
	}

	var program contract.Program
	if err := c.write(ctx, api.Programs.Update, idParams(id), req, &program, programReads...); err != nil {
		return nil, err
	}

	return &program, validateOne(program)
}

func (c *Client) DeleteProgram(ctx context.Context, id int) error {
	return c.write(ctx, api.Programs.Delete, idParams(id), nil, nil, programReads...)
}

func (c *Client) CreateProgramItem(ctx context.Context, programID int, req contract.CreateProgramItemRequest) (*contract.ProgramItem, error) {
	if err := validateInput(req); err != nil {
		return nil, err
	}

	var item contract.ProgramItem
	params := map[string]any{"programId": programID}
	if err := c.write(ctx, api.ProgramItems.Create, params, req, &item, programReads...); err != nil {
		return nil, err
	}

	return &item, validateOne(item)
}

func (c *Client) UpdateProgramItem(ctx context.Context, id int, req contract.UpdateProgramItemRequest) (*contract.ProgramItem, error) {
	if err := validateInput(req); err != nil {
		return nil, err
	}

	var item contract.ProgramItem
	if err := c.write(ctx, api.ProgramItems.Update, idParams(id), req, &item, programReads...); err != nil {
		return nil, err
	}

	return &item, validateOne(item)
}

func (c *Client) DeleteProgramItem(ctx context.Context, id int) error {
	return c.write(ctx, api.ProgramItems.Delete, idParams(id), nil, nil, programReads...)
}

// Calendar returns merged events and programs matching q.
func (c *Client) Calendar(ctx context.Context, q contract.CalendarQuery) ([]contract.CalendarEntry, error) {
	if err := validateInput(q); err != nil {
		return nil, err
	}

	path := api.Calendar.List.Path
	if query := calendarValues(q).Encode(); query != "" {
		path += "?" + query
	}

	var entries []contract.CalendarEntry
	if err := c.read(ctx, path, &entries); err != nil {
		return nil, err
	}

	return entries, validateList(entries)
}

func calendarValues(q contract.CalendarQuery) url.Values {
	values := url.Values{}
	if q.Year != 0 {
		values.Set("year", strconv.Itoa(q.Year))
	}
	if q.Month != 0 {
		values.Set("month", strconv.Itoa(q.Month))
	}
	if q.Type != "" {
		values.Set("type", q.Type)
	}

	return values
}

func (c *Client) Home(ctx context.Context) (*contract.HomeSummary, error) {
	var summary contract.HomeSummary
	if err := c.read(ctx, api.Home.Summary.Path, &summary); err != nil {
		return nil, err
	}

	return &summary, validateOne(summary)
}

// Login opens an admin session; the cookie is kept in the client's jar.
func (c *Client) Login(ctx context.Context, password string) error {
	req := contract.LoginRequest{Password: password}
	if err := validateInput(req); err != nil {
		return err
	}

	var resp contract.SuccessResponse
	return c.write(ctx, api.Admin.Login, nil, req, &resp)
}

// Check reports whether the client holds a live admin session.
func (c *Client) Check(ctx context.Context) (bool, error) {
	var resp contract.CheckResponse
	err := c.write(ctx, api.Admin.Check, nil, nil, &resp)

	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
		return false, nil
	} else if err != nil {
		return false, err
	}

	return resp.Authenticated, nil
}

func (c *Client) Logout(ctx context.Context) error {
	var resp contract.SuccessResponse
	return c.write(ctx, api.Admin.Logout, nil, nil, &resp)
}

// UploadImage sends an image as the multipart field "image" and returns its public URL.
func (c *Client) UploadImage(ctx context.Context, filename, contentType string, r io.Reader) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename=%q`, filename))
	if contentType != "" {
		header.Set("Content-Type", contentType)
	}

	part, err := mw.CreatePart(header)
	if err != nil {
		return "", fmt.Errorf("create form part: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", fmt.Errorf("copy image: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("close form: %w", err)
	}

	body, err := c.send(ctx, api.Upload.Image.Method, api.Upload.Image.Path, mw.FormDataContentType(), &buf)
	if err != nil {
		return "", err
	}

	var resp contract.UploadResponse
	if err := decodeJSON(body, &resp); err != nil {
		return "", err
	}

	return resp.ImageURL, validateOne(resp)
}
