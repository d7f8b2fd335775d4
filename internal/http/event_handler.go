package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/example/glass-calendar/internal/calendar"
	"github.com/example/glass-calendar/internal/event"
	"github.com/example/glass-calendar/internal/imaging"
	"github.com/example/glass-calendar/internal/store"
)

type eventService interface {
	Fetch(ctx context.Context, window calendar.Window) store.Snapshot
	Create(ctx context.Context, draft event.Draft, attachment *store.ImageAttachment) (event.Event, error)
	Update(ctx context.Context, id string, patch event.Patch) (event.Event, error)
	Delete(ctx context.Context, id string) error
}

type EventHandler struct {
	service   eventService
	responder responder
	now       func() time.Time
}

func NewEventHandler(service eventService, logger *slog.Logger, now func() time.Time) *EventHandler {
	if now == nil {
		now = time.Now
	}
	return &EventHandler{service: service, responder: newResponder(logger), now: now}
}

type windowDTO struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type listEventsResponse struct {
	Events        []event.Event `json:"events"`
	Window        windowDTO     `json:"window"`
	UsingFallback bool          `json:"using_fallback"`
	Configured    bool          `json:"configured"`
}

// List serves events for the requested window. The read path never fails on
// backend trouble; the response flags record which source served it.
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	window, err := parseWindow(r.URL.Query(), h.now)
	if err != nil {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, err)
		return
	}

	snap := h.service.Fetch(r.Context(), window)
	h.responder.writeJSON(r.Context(), w, http.StatusOK, listEventsResponse{
		Events:        ensureEvents(snap.Events),
		Window:        toWindowDTO(window),
		UsingFallback: snap.UsingFallback,
		Configured:    snap.Configured,
	})
}

// Create accepts either a JSON draft or a multipart form with an optional
// image part. The image is validated and derived before any store call.
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	draft, attachment, err := decodeCreateRequest(r)
	if err != nil {
		var vErr *event.ValidationError
		if errors.As(err, &vErr) {
			h.responder.handleServiceError(r.Context(), w, err)
			return
		}
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, err)
		return
	}

	created, err := h.service.Create(r.Context(), draft, attachment)
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusCreated, created)
}

// Update applies a partial patch to the event identified by the path.
func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	id, ok := EventIDFromContext(r.Context())
	if !ok || strings.TrimSpace(id) == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidEventID)
		return
	}

	var patch event.Patch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	updated, err := h.service.Update(r.Context(), id, patch)
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, updated)
}

// Delete removes the identified event.
func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	id, ok := EventIDFromContext(r.Context())
	if !ok || strings.TrimSpace(id) == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidEventID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusNoContent, nil)
}

func decodeCreateRequest(r *http.Request) (event.Draft, *store.ImageAttachment, error) {
	contentType := r.Header.Get("Content-Type")
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = contentType
	}

	if mediaType == "multipart/form-data" {
		return decodeMultipartCreate(r)
	}

	var draft event.Draft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		return event.Draft{}, nil, errBadRequestBody
	}
	return draft, nil, nil
}

func decodeMultipartCreate(r *http.Request) (event.Draft, *store.ImageAttachment, error) {
	if err := r.ParseMultipartForm(imaging.MaxUploadBytes + 1<<20); err != nil {
		return event.Draft{}, nil, errBadRequestBody
	}

	draft := event.Draft{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Date:        r.FormValue("date"),
		StartTime:   r.FormValue("start_time"),
		EndTime:     r.FormValue("end_time"),
		Location:    r.FormValue("location"),
		Color:       r.FormValue("color"),
		Organizer:   r.FormValue("organizer"),
		Attendees:   event.SplitAttendees(r.FormValue("attendees")),
	}

	file, header, err := r.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) {
		return draft, nil, nil
	}
	if err != nil {
		return event.Draft{}, nil, errBadRequestBody
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, imaging.MaxUploadBytes+1))
	if err != nil {
		return event.Draft{}, nil, fmt.Errorf("failed to read image part: %w", err)
	}

	if err := imaging.Validate(data, header.Header.Get("Content-Type")); err != nil {
		vErr := &event.ValidationError{}
		vErr.FieldErrors = map[string]string{"image": err.Error()}
		return event.Draft{}, nil, vErr
	}

	derived, err := imaging.Process(data)
	if err != nil {
		vErr := &event.ValidationError{}
		vErr.FieldErrors = map[string]string{"image": err.Error()}
		return event.Draft{}, nil, vErr
	}

	return draft, &store.ImageAttachment{
		Filename:    header.Filename,
		ContentType: derived.ContentType,
		Compressed:  derived.Compressed,
		Thumbnail:   derived.Thumbnail,
	}, nil
}

// parseWindow resolves the query's date range: explicit start/end bounds win,
// otherwise a view (default week) and anchor date (default today) are
// expanded through the layout engine. nav=next|previous steps the anchor by
// one view unit before expansion, serving the prev/today/next controls.
func parseWindow(query url.Values, now func() time.Time) (calendar.Window, error) {
	startValue := strings.TrimSpace(query.Get("start"))
	endValue := strings.TrimSpace(query.Get("end"))
	if startValue != "" || endValue != "" {
		if startValue == "" || endValue == "" {
			return calendar.Window{}, errors.New("start and end must be supplied together")
		}
		start, err := time.Parse(event.DateLayout, startValue)
		if err != nil {
			return calendar.Window{}, fmt.Errorf("malformed start date %q", startValue)
		}
		end, err := time.Parse(event.DateLayout, endValue)
		if err != nil {
			return calendar.Window{}, fmt.Errorf("malformed end date %q", endValue)
		}
		if end.Before(start) {
			return calendar.Window{}, errors.New("end must not precede start")
		}
		return calendar.Window{Start: start, End: end}, nil
	}

	view := calendar.ViewWeek
	if viewValue := strings.TrimSpace(query.Get("view")); viewValue != "" {
		parsed, err := calendar.ParseView(viewValue)
		if err != nil {
			return calendar.Window{}, err
		}
		view = parsed
	}

	anchor := now()
	if dateValue := strings.TrimSpace(query.Get("date")); dateValue != "" {
		parsed, err := time.Parse(event.DateLayout, dateValue)
		if err != nil {
			return calendar.Window{}, fmt.Errorf("malformed date %q", dateValue)
		}
		anchor = parsed
	}

	switch nav := strings.TrimSpace(query.Get("nav")); nav {
	case "":
	case "next":
		anchor = calendar.Next(view, anchor)
	case "previous":
		anchor = calendar.Previous(view, anchor)
	default:
		return calendar.Window{}, fmt.Errorf("unknown nav %q", nav)
	}

	return calendar.Compute(view, anchor), nil
}

func toWindowDTO(window calendar.Window) windowDTO {
	return windowDTO{
		Start: window.Start.Format(event.DateLayout),
		End:   window.End.Format(event.DateLayout),
	}
}

func ensureEvents(events []event.Event) []event.Event {
	if events == nil {
		return []event.Event{}
	}
	return events
}
