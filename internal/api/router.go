// Tessera - Multi-Tenant Event Ticketing Platform
// Copyright 2026 Tessera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tessera-hq/tessera

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tessera-hq/tessera/internal/auth"
	"github.com/tessera-hq/tessera/internal/authz"
	"github.com/tessera-hq/tessera/internal/middleware"
	"github.com/tessera-hq/tessera/internal/models"
)

// Router wires handlers and middleware into the HTTP surface.
type Router struct {
	handler       *Handler
	authMW        *auth.Middleware
	authzMW       *authz.Middleware
	chiMiddleware *ChiMiddleware
}

// NewRouter creates the router.
func NewRouter(handler *Handler, authMW *auth.Middleware, authzMW *authz.Middleware, chiMW *ChiMiddleware) *Router {
	return &Router{
		handler:       handler,
		authMW:        authMW,
		authzMW:       authzMW,
		chiMiddleware: chiMW,
	}
}

// Setup builds the full route tree.
//
// Health and metrics are unauthenticated. Admin surfaces require a bearer
// token, are authorized through Casbin against the request path and
// method, and are rate limited per client IP. The public event page is
// unauthenticated with its own higher rate ceiling.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS())

	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(APISecurityHeaders)
		r.Get("/", router.handler.Health)
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1/platform-admin", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders)
		r.Use(middleware.PrometheusMetrics)
		r.Use(middleware.Compression)
		r.Use(router.authMW.Authenticate)
		r.Use(router.authzMW.AuthorizeRequest)
		r.Use(router.authzMW.RequireRole(models.RolePlatformAdmin))

		r.Route("/themes", func(r chi.Router) {
			r.Get("/", router.handler.ThemeList)
			r.Post("/", router.handler.ThemeCreate)
			r.Get("/{id}", router.handler.ThemeGet)
			r.Put("/{id}", router.handler.ThemeUpdate)
			r.Delete("/{id}", router.handler.ThemeDelete)
		})
	})

	r.Route("/api/v1/tenant-admin", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders)
		r.Use(middleware.PrometheusMetrics)
		r.Use(middleware.Compression)
		r.Use(router.authMW.Authenticate)
		r.Use(router.authzMW.AuthorizeRequest)

		r.Route("/themes", func(r chi.Router) {
			r.Get("/available", router.handler.ThemesAvailable)
			r.Get("/purchased", router.handler.ThemesPurchased)
			r.Post("/{id}/purchase", router.handler.ThemePurchase)
		})

		r.Route("/events", func(r chi.Router) {
			r.Get("/", router.handler.EventList)
			r.Post("/", router.handler.EventCreate)
			r.Get("/{id}", router.handler.EventGet)
			r.Put("/{id}", router.handler.EventUpdate)
			r.Delete("/{id}", router.handler.EventDelete)

			r.Put("/{id}/theme", router.handler.EventThemeUpdate)
			r.Post("/{id}/theme/preview", router.handler.EventThemePreview)
			r.Get("/{id}/theme/preview/ws", router.handler.EventThemePreviewWS)
			r.Put("/{id}/ticket-features/{ticketTypeID}", router.handler.TicketFeaturesUpdate)
		})

		r.Route("/ticket-types", func(r chi.Router) {
			r.Post("/", router.handler.TicketTypeCreate)
			r.Put("/{id}", router.handler.TicketTypeUpdate)
			r.Delete("/{id}", router.handler.TicketTypeDelete)
		})
	})

	r.Route("/public/events", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitPublic())
		r.Use(APISecurityHeaders)
		r.Use(middleware.PrometheusMetrics)
		r.Use(middleware.Compression)
		r.Get("/{slug}", router.handler.PublicEvent)
	})

	return r
}
