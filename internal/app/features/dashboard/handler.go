package dashboard

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	uierrors "github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/features/errors"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/remote"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/auth"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/fees"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/notify"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/timeouts"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/viewdata"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// Handler serves the signed-in user's dashboard: their registrations, the
// payment flow, and team invitations.
type Handler struct {
	API     *remote.Client
	Notices *notify.Hub
	ErrLog  *uierrors.ErrorLogger
	Log     *zap.Logger
}

func NewHandler(api *remote.Client, hub *notify.Hub, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		API:     api,
		Notices: hub,
		ErrLog:  errLog,
		Log:     logger,
	}
}

// notices resolves the caller's session channel so toasts stay private to
// the browser that triggered them.
func (h *Handler) notices(r *http.Request) *notify.Bus {
	return h.Notices.Channel(auth.Token(r))
}

// Ticket pairs a registration with the fee owed for its resolved team size
// and the signed-in user's relationship to it.
type Ticket struct {
	Registration models.Registration
	AmountDue    float64
	IsCreator    bool
	InvitePending bool
}

type dashData struct {
	viewdata.BaseVM
	Tickets []Ticket
}

// ServeDashboard handles GET /dashboard.
func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	regs, err := h.API.Bearer(auth.Token(r)).ListRegistrations(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list registrations failed", err,
			remote.Message(err, "Couldn't load your registrations. Please try again."), "/")
		return
	}

	user, _ := viewdata.CurrentUser(r)

	templates.Render(w, r, "dashboard", dashData{
		BaseVM:  viewdata.NewBaseVM(r, "My Tickets", "/"),
		Tickets: BuildTickets(regs, user),
	})
}

// BuildTickets derives the view rows: the amount due for each registration's
// team size, whether the user created it, and whether their own invitation
// is still pending.
func BuildTickets(regs []models.Registration, user *models.User) []Ticket {
	tickets := make([]Ticket, 0, len(regs))
	for _, reg := range regs {
		t := Ticket{
			Registration: reg,
			AmountDue:    fees.Calculate(&reg.Event, reg.TeamSize()),
		}
		if user != nil {
			t.IsCreator = reg.Creator.ID == user.ID
			for _, inv := range reg.Invitations {
				if inv.User.ID == user.ID && inv.Status == models.InvitePending {
					t.InvitePending = true
				}
			}
		}
		tickets = append(tickets, t)
	}
	return tickets
}

type payData struct {
	viewdata.BaseVM
	Registration models.Registration
	Amount       float64
	ClientSecret string
}

// ServePay handles GET /dashboard/pay/{id}: it creates a payment intent for
// the registration and renders the hosted payment element with the intent's
// client secret.
func (h *Handler) ServePay(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	api := h.API.Bearer(auth.Token(r))

	reg, ok := h.findRegistration(ctx, w, r, api, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	if reg.IsPaid() {
		h.notices(r).Info("This registration is already paid.")
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	amount := fees.Calculate(&reg.Event, reg.TeamSize())

	intent, err := api.CreatePaymentIntent(ctx, reg.ID, amount)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "create payment intent failed", err,
			remote.Message(err, "Couldn't start the payment. Please try again."), "/dashboard")
		return
	}

	templates.Render(w, r, "dashboard_pay", payData{
		BaseVM:       viewdata.NewBaseVM(r, "Pay for "+reg.Event.Name, "/dashboard"),
		Registration: reg,
		Amount:       amount,
		ClientSecret: intent.ClientSecret,
	})
}

// HandleConfirmPayment handles POST /dashboard/pay/{id}/confirm. The payment
// element posts here after the provider reports success; the payment id is
// opaque to this portal.
func (h *Handler) HandleConfirmPayment(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad payment confirmation", err,
			"That request couldn't be read.", "/dashboard")
		return
	}
	paymentID := r.PostFormValue("payment_id")
	if paymentID == "" {
		h.ErrLog.LogBadRequest(w, r, "payment confirmation missing payment id", nil,
			"The payment reference is missing. If you were charged, contact support.", "/dashboard")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	err := h.API.Bearer(auth.Token(r)).MarkPaid(ctx, chi.URLParam(r, "id"), paymentID)
	if err != nil {
		h.notices(r).Error(remote.Message(err, "Payment confirmation failed. If you were charged, contact support."))
		h.Log.Error("confirm payment failed",
			zap.String("registration_id", chi.URLParam(r, "id")),
			zap.Error(err))
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	h.notices(r).Success("Payment confirmed. See you at the event!")
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// HandleLeave handles POST /dashboard/registrations/{id}/leave. For the
// creator this cancels the registration; for a team member it leaves the
// team. The API decides from the bearer token.
func (h *Handler) HandleLeave(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	err := h.API.Bearer(auth.Token(r)).DeleteRegistration(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.notices(r).Error(remote.Message(err, "Couldn't remove the registration. Please try again."))
	} else {
		h.notices(r).Success("Registration removed.")
	}
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// HandleInvitation handles POST /dashboard/invitations/{id}: accept or
// decline a pending team invitation.
func (h *Handler) HandleInvitation(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad invitation response", err,
			"That request couldn't be read.", "/dashboard")
		return
	}
	accept := r.PostFormValue("response") == "accept"

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	err := h.API.Bearer(auth.Token(r)).RespondInvitation(ctx, chi.URLParam(r, "id"), accept)
	if err != nil {
		h.notices(r).Error(remote.Message(err, "Couldn't record your response. Please try again."))
	} else if accept {
		h.notices(r).Success("Invitation accepted.")
	} else {
		h.notices(r).Info("Invitation declined.")
	}
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// findRegistration resolves one of the caller's registrations by id. The
// list endpoint already scopes to the caller, so a miss is a 404.
func (h *Handler) findRegistration(ctx context.Context, w http.ResponseWriter, r *http.Request, api *remote.Client, id string) (models.Registration, bool) {
	regs, err := api.ListRegistrations(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list registrations failed", err,
			remote.Message(err, "Couldn't load your registrations. Please try again."), "/dashboard")
		return models.Registration{}, false
	}
	for _, reg := range regs {
		if reg.ID == id {
			return reg, true
		}
	}
	uierrors.RenderNotFound(w, r, "That registration doesn't exist.", "/dashboard")
	return models.Registration{}, false
}
