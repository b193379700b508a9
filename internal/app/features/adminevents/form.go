package adminevents

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/remote"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/auth"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/authz"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/gates"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/normalize"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/timeouts"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/viewdata"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/domain/models"
)

type formData struct {
	viewdata.BaseVM
	Form         remote.EventInput
	EventID      string
	Clubs        []models.Club
	FeeStructure string
	Error        string
}

// ServeNew handles GET /admin/events/new.
func (h *Handler) ServeNew(w http.ResponseWriter, r *http.Request) {
	if g := gates.RequireEventManager(w, r); !g.OK() {
		return
	}
	h.renderForm(w, r, formData{
		Form: remote.EventInput{GroupSizeMin: 1, GroupSizeMax: 1, RegistrationsOpen: true},
	})
}

// HandleCreate handles POST /admin/events.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if g := gates.RequireEventManager(w, r); !g.OK() {
		return
	}

	in, raw, err := parseEventForm(r)
	if err != nil {
		h.renderForm(w, r, formData{Form: in, FeeStructure: raw, Error: err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	event, err := h.API.Bearer(auth.Token(r)).CreateEvent(ctx, in)
	if err != nil {
		h.renderForm(w, r, formData{
			Form:         in,
			FeeStructure: raw,
			Error:        remote.Message(err, "Couldn't create the event. Please try again."),
		})
		return
	}

	h.notices(r).Success("Event created.")
	h.Log.Info("event created", zap.String("event_id", event.ID), zap.String("name", event.Name))
	http.Redirect(w, r, "/admin/events", http.StatusSeeOther)
}

// ServeEdit handles GET /admin/events/{id}/edit.
func (h *Handler) ServeEdit(w http.ResponseWriter, r *http.Request) {
	if g := gates.RequireEventManager(w, r); !g.OK() {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	event, ok := h.manageableEvent(ctx, w, r, h.API.Bearer(auth.Token(r)))
	if !ok {
		return
	}

	h.renderForm(w, r, formData{
		Form:         inputFromEvent(event),
		EventID:      event.ID,
		FeeStructure: FormatFeeStructure(event.FeeStructure),
	})
}

// HandleUpdate handles POST /admin/events/{id}/edit.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	if g := gates.RequireEventManager(w, r); !g.OK() {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	api := h.API.Bearer(auth.Token(r))

	event, ok := h.manageableEvent(ctx, w, r, api)
	if !ok {
		return
	}

	in, raw, err := parseEventForm(r)
	if err != nil {
		h.renderForm(w, r, formData{Form: in, EventID: event.ID, FeeStructure: raw, Error: err.Error()})
		return
	}

	if _, err := api.UpdateEvent(ctx, event.ID, in); err != nil {
		h.renderForm(w, r, formData{
			Form:         in,
			EventID:      event.ID,
			FeeStructure: raw,
			Error:        remote.Message(err, "Couldn't save the event. Please try again."),
		})
		return
	}

	h.notices(r).Success("Event saved.")
	http.Redirect(w, r, "/admin/events", http.StatusSeeOther)
}

// HandleDelete handles POST /admin/events/{id}/delete. Coordinators cannot
// delete, even for assigned events.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	g := gates.Require(w, r, func(r *http.Request) bool {
		return authz.IsAdmin(r) || authz.IsSuperCoordinator(r)
	})
	if !g.OK() {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	api := h.API.Bearer(auth.Token(r))

	event, ok := h.manageableEvent(ctx, w, r, api)
	if !ok {
		return
	}

	if err := api.DeleteEvent(ctx, event.ID); err != nil {
		h.notices(r).Error(remote.Message(err, "Couldn't delete the event."))
	} else {
		h.notices(r).Success("Event deleted.")
		h.Log.Info("event deleted", zap.String("event_id", event.ID), zap.String("name", event.Name))
	}
	http.Redirect(w, r, "/admin/events", http.StatusSeeOther)
}

func (h *Handler) renderForm(w http.ResponseWriter, r *http.Request, data formData) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	clubs, err := h.API.Bearer(auth.Token(r)).ListClubs(ctx)
	if err != nil {
		// The club picker degrades to empty; the form still works.
		h.Log.Warn("list clubs failed", zap.Error(err))
	}
	data.Clubs = clubs

	title := "New Event"
	if data.EventID != "" {
		title = "Edit Event"
	}
	data.BaseVM = viewdata.NewBaseVM(r, title, "/admin/events")

	templates.Render(w, r, "adminevents_form", data)
}

// parseEventForm builds the writable event from the posted form. The raw
// fee-structure text is returned alongside so validation failures can
// re-render it untouched.
func parseEventForm(r *http.Request) (remote.EventInput, string, error) {
	if err := r.ParseForm(); err != nil {
		return remote.EventInput{}, "", fmt.Errorf("the form couldn't be read")
	}

	in := remote.EventInput{
		Name:              normalize.Name(r.PostFormValue("name")),
		Description:       strings.TrimSpace(r.PostFormValue("description")),
		Poster:            strings.TrimSpace(r.PostFormValue("poster")),
		Venue:             strings.TrimSpace(r.PostFormValue("venue")),
		StartDate:         r.PostFormValue("start_date"),
		StartTime:         r.PostFormValue("start_time"),
		EndDate:           r.PostFormValue("end_date"),
		EndTime:           r.PostFormValue("end_time"),
		Clubs:             r.PostForm["clubs"],
		IsCollaboration:   len(r.PostForm["clubs"]) > 1,
		RegistrationsOpen: r.PostFormValue("registrations_open") == "on",
		IsHidden:          r.PostFormValue("is_hidden") == "on",
		IsPinned:          r.PostFormValue("is_pinned") == "on",
	}

	raw := r.PostFormValue("fee_structure")

	if in.Name == "" {
		return in, raw, fmt.Errorf("the event needs a name")
	}

	var err error
	if in.Fee, err = parseAmount(r.PostFormValue("fee")); err != nil {
		return in, raw, fmt.Errorf("the flat fee must be a non-negative number")
	}
	if in.FeePerPerson, err = parseAmount(r.PostFormValue("fee_per_person")); err != nil {
		return in, raw, fmt.Errorf("the per-person fee must be a non-negative number")
	}
	if in.FeeStructure, err = ParseFeeStructure(raw); err != nil {
		return in, raw, err
	}

	in.GroupSizeMin, _ = strconv.Atoi(r.PostFormValue("group_size_min"))
	in.GroupSizeMax, _ = strconv.Atoi(r.PostFormValue("group_size_max"))
	if in.GroupSizeMin < 1 {
		in.GroupSizeMin = 1
	}
	if in.GroupSizeMax < in.GroupSizeMin {
		return in, raw, fmt.Errorf("the maximum team size can't be below the minimum")
	}

	in.StudentCoordinators = parseCoordinators(r.PostFormValue("student_coordinators"))
	in.FacultyCoordinators = parseCoordinators(r.PostFormValue("faculty_coordinators"))

	return in, raw, nil
}

func parseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	return v, nil
}

// ParseFeeStructure reads one "size: amount" pair per line, for example
// "2: 100". Blank lines are skipped; a blank input means no tiered pricing.
func ParseFeeStructure(raw string) (map[string]float64, error) {
	out := map[string]float64{}
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		size, amount, found := strings.Cut(line, ":")
		if !found {
			return nil, fmt.Errorf("fee tiers need the form \"team size: amount\", got %q", line)
		}
		size = strings.TrimSpace(size)
		if n, err := strconv.Atoi(size); err != nil || n < 1 {
			return nil, fmt.Errorf("invalid team size %q in fee tiers", size)
		}
		v, err := parseAmount(amount)
		if err != nil {
			return nil, fmt.Errorf("invalid amount %q in fee tiers", strings.TrimSpace(amount))
		}
		out[size] = v
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out, nil
}

// FormatFeeStructure renders the tier map back into the form's line format.
func FormatFeeStructure(tiers map[string]float64) string {
	if len(tiers) == 0 {
		return ""
	}
	keys := make([]int, 0, len(tiers))
	for k := range tiers {
		if n, err := strconv.Atoi(k); err == nil {
			keys = append(keys, n)
		}
	}
	sort.Ints(keys)
	var b strings.Builder
	for _, n := range keys {
		fmt.Fprintf(&b, "%d: %g\n", n, tiers[strconv.Itoa(n)])
	}
	return b.String()
}

// parseCoordinators reads one "name, phone" pair per line.
func parseCoordinators(raw string) []models.CoordinatorInfo {
	var out []models.CoordinatorInfo
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		name, phone, _ := strings.Cut(line, ",")
		out = append(out, models.CoordinatorInfo{
			Name:  normalize.Name(name),
			Phone: strings.TrimSpace(phone),
		})
	}
	return out
}

// inputFromEvent maps a fetched event back into the writable shape for the
// edit form.
func inputFromEvent(e models.Event) remote.EventInput {
	in := remote.EventInput{
		Name:              e.Name,
		Description:       e.Description,
		Poster:            e.Poster,
		Venue:             e.Venue,
		StartTime:         e.StartTime,
		EndTime:           e.EndTime,
		Fee:               e.Fee,
		FeePerPerson:      e.FeePerPerson,
		FeeStructure:      e.FeeStructure,
		GroupSizeMin:      e.GroupSizeMin,
		GroupSizeMax:      e.GroupSizeMax,
		IsCollaboration:   e.IsCollaboration,
		RegistrationsOpen: e.RegistrationsOpen,
		IsHidden:          e.IsHidden,
		IsPinned:          e.IsPinned,

		StudentCoordinators: e.StudentCoordinators,
		FacultyCoordinators: e.FacultyCoordinators,
	}
	if e.StartDate != nil {
		in.StartDate = e.StartDate.Format("2006-01-02")
	}
	if e.EndDate != nil {
		in.EndDate = e.EndDate.Format("2006-01-02")
	}
	for _, c := range e.Clubs {
		in.Clubs = append(in.Clubs, c.ID)
	}
	return in
}
