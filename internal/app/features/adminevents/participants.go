package adminevents

import (
	"context"
	"encoding/csv"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/remote"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/auth"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/gates"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/timeouts"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/viewdata"
)

type participantsData struct {
	viewdata.BaseVM
	EventID      string
	EventName    string
	Participants []remote.Participant
}

// ServeParticipants handles GET /admin/events/{id}/participants.
func (h *Handler) ServeParticipants(w http.ResponseWriter, r *http.Request) {
	if g := gates.RequireEventManager(w, r); !g.OK() {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	api := h.API.Bearer(auth.Token(r))

	event, ok := h.manageableEvent(ctx, w, r, api)
	if !ok {
		return
	}

	name, participants, err := api.EventParticipants(ctx, event.ID)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "event participants failed", err,
			remote.Message(err, "Couldn't load the participants. Please try again."), "/admin/events")
		return
	}
	if name == "" {
		name = event.Name
	}

	templates.Render(w, r, "adminevents_participants", participantsData{
		BaseVM:       viewdata.NewBaseVM(r, name+" Participants", "/admin/events"),
		EventID:      event.ID,
		EventName:    name,
		Participants: participants,
	})
}

// ServeParticipantsCSV handles GET /admin/events/{id}/participants.csv.
func (h *Handler) ServeParticipantsCSV(w http.ResponseWriter, r *http.Request) {
	if g := gates.RequireEventManager(w, r); !g.OK() {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	api := h.API.Bearer(auth.Token(r))

	event, ok := h.manageableEvent(ctx, w, r, api)
	if !ok {
		return
	}

	name, participants, err := api.EventParticipants(ctx, event.ID)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "event participants failed", err,
			remote.Message(err, "Couldn't export the participants. Please try again."), "/admin/events")
		return
	}
	if name == "" {
		name = event.Name
	}

	filename := fmt.Sprintf("%s_participants_%s.csv", slugify(name), time.Now().Format("20060102"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, url.PathEscape(filename)))

	// UTF-8 BOM for Excel
	if _, err := w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		h.Log.Error("csv write failed (BOM)", zap.Error(err))
		return
	}

	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	defer cw.Flush()

	if err := cw.Write([]string{"registration_id", "payment_status", "name", "email", "reg_no", "phone", "vitian"}); err != nil {
		h.Log.Error("csv write failed (header)", zap.Error(err))
		return
	}

	for _, p := range participants {
		vitian := "no"
		if p.IsVITian {
			vitian = "yes"
		}
		if err := cw.Write([]string{
			p.RegistrationID,
			p.PaymentStatus,
			sanitizeCSVField(p.Name),
			sanitizeCSVField(p.Email),
			sanitizeCSVField(p.RegNo),
			sanitizeCSVField(p.Phone),
			vitian,
		}); err != nil {
			h.Log.Error("csv write failed (row)", zap.Error(err))
			return
		}
	}
}

// sanitizeCSVField prefixes values that spreadsheet apps would otherwise
// evaluate as formulas.
func sanitizeCSVField(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@':
		return "'" + s
	}
	return s
}

func slugify(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "event"
	}
	return b.String()
}
