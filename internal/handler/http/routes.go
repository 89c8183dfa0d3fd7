package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Get("/api/version/", h.getServerVersion)
	})

	// routes behind bearer token authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/keys/{userID}", h.getKeyRecord)
		r.Post("/api/keys/batch", h.getPublicKeys)

		r.With(h.sendHashing).Post("/api/messages/", h.sendMessage)
		r.Get("/api/messages/", h.getInbox)
		r.Get("/api/messages/thread/{counterpartyID}", h.getThread)
		r.Get("/api/messages/conversations", h.getConversations)
		r.Post("/api/messages/read", h.markThreadRead)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
