package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	auctionhandler "github.com/lotline/auctioneer/pkg/handlers/auction"
	itemshandler "github.com/lotline/auctioneer/pkg/handlers/items"
	preapprovalshandler "github.com/lotline/auctioneer/pkg/handlers/preapprovals"
	presencehandler "github.com/lotline/auctioneer/pkg/handlers/presence"
	profileshandler "github.com/lotline/auctioneer/pkg/handlers/profiles"
	wshandler "github.com/lotline/auctioneer/pkg/handlers/websockets"
	"github.com/lotline/auctioneer/pkg/middleware"
)

// Handlers bundles the per-resource handlers mounted on the router.
type Handlers struct {
	Auction      *auctionhandler.Handler
	Items        *itemshandler.Handler
	Profiles     *profileshandler.Handler
	Preapprovals *preapprovalshandler.Handler
	Presence     *presencehandler.Handler
	WebSockets   *wshandler.Handler
}

// NewRouter wires every HTTP surface of the service onto a chi router.
func NewRouter(logger *slog.Logger, h Handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewStructuredLogger(logger))

	r.Get("/auction/status", h.Auction.GetStatus)
	r.Post("/auction/bids", h.Auction.PlaceBid)

	r.Post("/items", h.Items.CreateItem)
	r.Get("/items", h.Items.ListItems)

	r.Get("/profiles/{userId}", h.Profiles.GetProfile)

	r.Post("/preapprovals", h.Preapprovals.CreatePreapproval)
	r.Get("/preapprovals/return", h.Preapprovals.HandleReturn)

	r.Post("/presence/{userId}", h.Presence.Heartbeat)
	r.Get("/presence", h.Presence.GetActive)

	if h.WebSockets != nil {
		r.Handle("/ws", h.WebSockets)
	}

	return r
}
