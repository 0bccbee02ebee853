package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"school-site-backend/config"
	"school-site-backend/internal/auth"
	"school-site-backend/internal/mw"
	"school-site-backend/internal/store"
)

// Handler holds shared dependencies for the request handlers.
type Handler struct {
	store    store.Store
	sessions *auth.SessionManager
	throttle *mw.LoginThrottle
	cfg      *config.Config
}

// NewHandler creates a new request handler set.
func NewHandler(s store.Store, sessions *auth.SessionManager, throttle *mw.LoginThrottle, cfg *config.Config) *Handler {
	return &Handler{
		store:    s,
		sessions: sessions,
		throttle: throttle,
		cfg:      cfg,
	}
}

// serverError logs the underlying failure and renders the generic error
// page. Infrastructure failures are fatal to the request, never retried.
func (h *Handler) serverError(c *gin.Context, err error) {
	log.Printf("request failed: %v", err)
	c.HTML(http.StatusInternalServerError, "error.html", gin.H{
		"Message": "The server could not complete your request. Please try again later.",
	})
	c.Abort()
}
