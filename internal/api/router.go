package api

import (
	"html/template"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"school-site-backend/config"
	"school-site-backend/internal/auth"
	"school-site-backend/internal/mw"
	"school-site-backend/internal/store"
	"school-site-backend/internal/web"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(cfg *config.Config, s store.Store) *gin.Engine {
	r := gin.Default()

	tmpl := template.Must(web.Templates())
	r.SetHTMLTemplate(tmpl)

	sessions := auth.NewSessionManager(cfg.Session.Secret, cfg.Session.TTL)
	throttle := mw.NewLoginThrottle(
		cfg.LoginThrottle.MaxFailures,
		time.Duration(cfg.LoginThrottle.WindowMinutes)*time.Minute,
	)
	handler := NewHandler(s, sessions, throttle, cfg)

	r.Use(mw.MaxBodyBytes(cfg.Server.MaxBodyBytes))

	// Token bucket per IP on the two public write endpoints.
	rateLimiter := mw.RateLimiter(rate.Limit(cfg.Server.RateLimitPerSec), cfg.Server.RateLimitBurst)

	r.GET("/", handler.Home)
	r.GET("/admission", handler.AdmissionForm)
	r.POST("/admission", rateLimiter, handler.SubmitAdmission)
	r.GET("/uploads/*filepath", handler.ServeUpload)

	r.GET("/admin/login", handler.LoginForm)
	r.POST("/admin/login", rateLimiter, handler.Login)

	admin := r.Group("/admin")
	admin.Use(handler.RequireAdmin)
	{
		admin.GET("/dashboard", handler.Dashboard)
		admin.GET("/logout", handler.Logout)
		admin.POST("/add_notice", handler.AddNotice)
	}

	return r
}
