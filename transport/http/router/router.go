package router

import (
	"rideflow/internal/handlers/auth"
	"rideflow/internal/handlers/booking"
	"rideflow/internal/handlers/driver"
	"rideflow/internal/handlers/fare"
	"rideflow/internal/handlers/place"
	"rideflow/internal/handlers/user"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth    auth.Handler
	User    user.Handler
	Booking booking.Handler
	Driver  driver.Handler
	Fare    fare.Handler
	Place   place.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Driver.Router(routerGroup)
		r.DomainHandlers.Fare.Router(routerGroup)
		r.DomainHandlers.Place.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
