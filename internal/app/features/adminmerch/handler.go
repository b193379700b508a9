package adminmerch

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	uierrors "github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/features/errors"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/remote"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/auth"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/gates"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/normalize"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/notify"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/timeouts"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/txn"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/viewdata"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// Handler serves the merch management screens.
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

type listData struct {
	viewdata.BaseVM
	Items []models.MerchItem
}

type formData struct {
	viewdata.BaseVM
	ItemID string
	Form   remote.MerchInput
	Error  string
}

// ServeList handles GET /admin/merch.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	if g := gates.RequireMerchManager(w, r); !g.OK() {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	items, err := h.API.Bearer(auth.Token(r)).ListMerch(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list merch failed", err,
			remote.Message(err, "Couldn't load the merch. Please try again."), "/admin")
		return
	}

	templates.Render(w, r, "adminmerch", listData{
		BaseVM: viewdata.NewBaseVM(r, "Manage Merch", "/admin"),
		Items:  items,
	})
}

// ServeNew handles GET /admin/merch/new.
func (h *Handler) ServeNew(w http.ResponseWriter, r *http.Request) {
	if g := gates.RequireMerchManager(w, r); !g.OK() {
		return
	}
	h.renderForm(w, r, formData{Form: remote.MerchInput{SalesOpen: true}})
}

// HandleCreate handles POST /admin/merch.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if g := gates.RequireMerchManager(w, r); !g.OK() {
		return
	}

	in, err := parseMerchForm(r)
	if err != nil {
		h.renderForm(w, r, formData{Form: in, Error: err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if _, err := h.API.Bearer(auth.Token(r)).CreateMerchItem(ctx, in); err != nil {
		h.renderForm(w, r, formData{
			Form:  in,
			Error: remote.Message(err, "Couldn't create the listing. Please try again."),
		})
		return
	}

	h.notices(r).Success("Listing created.")
	http.Redirect(w, r, "/admin/merch", http.StatusSeeOther)
}

// ServeEdit handles GET /admin/merch/{id}/edit.
func (h *Handler) ServeEdit(w http.ResponseWriter, r *http.Request) {
	if g := gates.RequireMerchManager(w, r); !g.OK() {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	item, ok := h.findItem(ctx, w, r)
	if !ok {
		return
	}

	h.renderForm(w, r, formData{
		ItemID: item.ID,
		Form: remote.MerchInput{
			Name:      item.Name,
			Price:     item.Price,
			Image:     item.Image,
			SalesOpen: item.SalesOpen,
		},
	})
}

// HandleUpdate handles POST /admin/merch/{id}/edit.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	if g := gates.RequireMerchManager(w, r); !g.OK() {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	item, ok := h.findItem(ctx, w, r)
	if !ok {
		return
	}

	in, err := parseMerchForm(r)
	if err != nil {
		h.renderForm(w, r, formData{ItemID: item.ID, Form: in, Error: err.Error()})
		return
	}

	if _, err := h.API.Bearer(auth.Token(r)).UpdateMerchItem(ctx, item.ID, in); err != nil {
		h.renderForm(w, r, formData{
			ItemID: item.ID, Form: in,
			Error: remote.Message(err, "Couldn't save the listing. Please try again."),
		})
		return
	}

	h.notices(r).Success("Listing saved.")
	http.Redirect(w, r, "/admin/merch", http.StatusSeeOther)
}

// HandleToggleSales handles POST /admin/merch/{id}/toggle: flip SalesOpen
// optimistically and revert on rejection.
func (h *Handler) HandleToggleSales(w http.ResponseWriter, r *http.Request) {
	if g := gates.RequireMerchManager(w, r); !g.OK() {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	api := h.API.Bearer(auth.Token(r))

	item, ok := h.findItem(ctx, w, r)
	if !ok {
		return
	}

	flip := txn.Begin(item, func(m models.MerchItem) models.MerchItem { return m })
	flip.Apply(func(m *models.MerchItem) { m.SalesOpen = !m.SalesOpen })

	next := flip.Value()
	in := remote.MerchInput{Name: next.Name, Price: next.Price, Image: next.Image, SalesOpen: next.SalesOpen}
	if _, err := api.UpdateMerchItem(ctx, item.ID, in); err != nil {
		flip.Revert()
		h.notices(r).Error(remote.Message(err, "Couldn't update the listing."))
		h.Log.Warn("merch toggle rejected", zap.String("item_id", item.ID), zap.Error(err))
	} else {
		flip.Commit()
	}

	http.Redirect(w, r, "/admin/merch", http.StatusSeeOther)
}

// HandleDelete handles POST /admin/merch/{id}/delete.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if g := gates.RequireMerchManager(w, r); !g.OK() {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	item, ok := h.findItem(ctx, w, r)
	if !ok {
		return
	}

	if err := h.API.Bearer(auth.Token(r)).DeleteMerchItem(ctx, item.ID); err != nil {
		h.notices(r).Error(remote.Message(err, "Couldn't delete the listing."))
	} else {
		h.notices(r).Success("Listing deleted.")
	}
	http.Redirect(w, r, "/admin/merch", http.StatusSeeOther)
}

func (h *Handler) findItem(ctx context.Context, w http.ResponseWriter, r *http.Request) (models.MerchItem, bool) {
	items, err := h.API.Bearer(auth.Token(r)).ListMerch(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list merch failed", err,
			remote.Message(err, "Couldn't load the merch. Please try again."), "/admin/merch")
		return models.MerchItem{}, false
	}
	id := chi.URLParam(r, "id")
	for _, item := range items {
		if item.ID == id {
			return item, true
		}
	}
	uierrors.RenderNotFound(w, r, "That listing doesn't exist.", "/admin/merch")
	return models.MerchItem{}, false
}

func (h *Handler) renderForm(w http.ResponseWriter, r *http.Request, data formData) {
	title := "New Listing"
	if data.ItemID != "" {
		title = "Edit Listing"
	}
	data.BaseVM = viewdata.NewBaseVM(r, title, "/admin/merch")
	templates.Render(w, r, "adminmerch_form", data)
}

func parseMerchForm(r *http.Request) (remote.MerchInput, error) {
	if err := r.ParseForm(); err != nil {
		return remote.MerchInput{}, fmt.Errorf("the form couldn't be read")
	}

	in := remote.MerchInput{
		Name:      normalize.Name(r.PostFormValue("name")),
		Image:     strings.TrimSpace(r.PostFormValue("image")),
		SalesOpen: r.PostFormValue("sales_open") == "on",
	}
	if in.Name == "" {
		return in, fmt.Errorf("the listing needs a name")
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(r.PostFormValue("price")), 64)
	if err != nil || price < 0 {
		return in, fmt.Errorf("the price must be a non-negative number")
	}
	in.Price = price

	return in, nil
}
