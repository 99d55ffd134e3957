package router

import (
	"resort/internal/handlers/auth"
	"resort/internal/handlers/booking"
	"resort/internal/handlers/holiday"
	"resort/internal/handlers/user"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth    auth.Handler
	User    user.Handler
	Booking booking.Handler
	Holiday holiday.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/api", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Holiday.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
