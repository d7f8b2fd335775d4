package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/example/glass-calendar/internal/calendar"
)

type LayoutHandler struct {
	service   eventService
	responder responder
	now       func() time.Time
}

func NewLayoutHandler(service eventService, logger *slog.Logger, now func() time.Time) *LayoutHandler {
	if now == nil {
		now = time.Now
	}
	return &LayoutHandler{service: service, responder: newResponder(logger), now: now}
}

type desktopLayoutResponse struct {
	Layout        string               `json:"layout"`
	Window        windowDTO            `json:"window"`
	Columns       []calendar.DayColumn `json:"columns"`
	UsingFallback bool                 `json:"using_fallback"`
}

type mobileLayoutResponse struct {
	Layout        string          `json:"layout"`
	Window        windowDTO       `json:"window"`
	Cells         []calendar.Cell `json:"cells"`
	SlotLabels    [3]string       `json:"slot_labels"`
	UsingFallback bool            `json:"using_fallback"`
}

// Week serves the weekly grid's render instructions: positioned blocks for
// the desktop layout, stacked coarse-slot cells for mobile.
func (h *LayoutHandler) Week(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	query := r.URL.Query()
	window, err := parseWindow(query, h.now)
	if err != nil {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, err)
		return
	}

	layout := strings.TrimSpace(query.Get("layout"))
	if layout == "" {
		layout = "desktop"
	}

	snap := h.service.Fetch(r.Context(), window)

	switch layout {
	case "desktop":
		h.responder.writeJSON(r.Context(), w, http.StatusOK, desktopLayoutResponse{
			Layout:        layout,
			Window:        toWindowDTO(window),
			Columns:       calendar.DesktopWeek(snap.Events),
			UsingFallback: snap.UsingFallback,
		})
	case "mobile":
		h.responder.writeJSON(r.Context(), w, http.StatusOK, mobileLayoutResponse{
			Layout:        layout,
			Window:        toWindowDTO(window),
			Cells:         calendar.MobileWeek(snap.Events),
			SlotLabels:    calendar.SlotLabels,
			UsingFallback: snap.UsingFallback,
		})
	default:
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, fmt.Errorf("unknown layout %q", layout))
	}
}
