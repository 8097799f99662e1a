package router

import (
	"fitbook/internal/handlers/booking"
	"fitbook/internal/handlers/class"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Class   class.Handler
	Booking booking.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

// SetupRoutes mounts the API under /v1 and again at the root, where the first clients call it.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", r.mount)
	r.mount(router)
}

func (r *Router) mount(router chi.Router) {
	r.DomainHandlers.Class.Router(router)
	r.DomainHandlers.Booking.Router(router)
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
