package handlers

import (
	"net/http"

	_ "github.com/koquifi/lottoframe/docs"
	"github.com/koquifi/lottoframe/internal/config"
	adminhandlers "github.com/koquifi/lottoframe/internal/handlers/admin"
	authhandlers "github.com/koquifi/lottoframe/internal/handlers/auth"
	drawshandlers "github.com/koquifi/lottoframe/internal/handlers/draws"
	notificationshandlers "github.com/koquifi/lottoframe/internal/handlers/notifications"
	ticketshandlers "github.com/koquifi/lottoframe/internal/handlers/tickets"
	"github.com/koquifi/lottoframe/internal/service"
	"github.com/koquifi/lottoframe/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	IssueToken(w http.ResponseWriter, r *http.Request)
}

type TicketHandler interface {
	Purchase(w http.ResponseWriter, r *http.Request)
	GetTickets(w http.ResponseWriter, r *http.Request)
}

type NotificationHandler interface {
	GetNotifications(w http.ResponseWriter, r *http.Request)
	MarkRead(w http.ResponseWriter, r *http.Request)
}

type DrawHandler interface {
	GetHistory(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	ExecuteDraw(w http.ResponseWriter, r *http.Request)
	SimulateDraw(w http.ResponseWriter, r *http.Request)
	GetStats(w http.ResponseWriter, r *http.Request)
	Reset(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler         AuthHandler
	TicketHandler       TicketHandler
	NotificationHandler NotificationHandler
	DrawHandler         DrawHandler
	AdminHandler        AdminHandler

	adminFIDs []string
}

func New(s *service.Services, cfg *config.Config) *Handlers {
	return &Handlers{
		AuthHandler:         authhandlers.New(&auth.JWTService{}),
		TicketHandler:       ticketshandlers.New(s.TicketService),
		NotificationHandler: notificationshandlers.New(s.NotificationService),
		DrawHandler:         drawshandlers.New(s.DrawService),
		AdminHandler:        adminhandlers.New(s.DrawService, s.TicketService, s.NotificationService),
		adminFIDs:           cfg.AdminFIDs,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/token", h.AuthHandler.IssueToken)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/tickets", func(r chi.Router) {
				r.Post("/", h.TicketHandler.Purchase)
				r.Get("/", h.TicketHandler.GetTickets)
			})
			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", h.NotificationHandler.GetNotifications)
				r.Post("/{id}/read", h.NotificationHandler.MarkRead)
			})
			r.Get("/draws", h.DrawHandler.GetHistory)

			r.Route("/admin", func(r chi.Router) {
				r.Use(auth.AdminMiddleware(h.adminFIDs))
				r.Post("/draw/execute", h.AdminHandler.ExecuteDraw)
				r.Post("/draw/simulate", h.AdminHandler.SimulateDraw)
				r.Get("/stats", h.AdminHandler.GetStats)
				r.Post("/reset", h.AdminHandler.Reset)
			})
		})
	})

	return r
}
