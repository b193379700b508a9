package merch

import (
	"context"
	"net/http"
	"sort"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	uierrors "github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/features/errors"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/remote"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/timeouts"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/viewdata"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/domain/models"
)

// Handler serves the public merchandise storefront.
type Handler struct {
	API    *remote.Client
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

func NewHandler(api *remote.Client, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		API:    api,
		ErrLog: errLog,
		Log:    logger,
	}
}

type listData struct {
	viewdata.BaseVM
	Items []models.MerchItem
}

// ServeList handles GET /merch.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	items, err := h.API.ListMerch(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list merch failed", err,
			remote.Message(err, "Couldn't load the merch store. Please try again."), "/")
		return
	}

	templates.Render(w, r, "merch", listData{
		BaseVM: viewdata.NewBaseVM(r, "Merch", "/"),
		Items:  Storefront(items),
	})
}

// Storefront orders listings for display: items on sale first, then by name.
// Closed listings stay visible but unbuyable.
func Storefront(items []models.MerchItem) []models.MerchItem {
	out := make([]models.MerchItem, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].SalesOpen != out[j].SalesOpen {
			return out[i].SalesOpen
		}
		return out[i].Name < out[j].Name
	})
	return out
}
