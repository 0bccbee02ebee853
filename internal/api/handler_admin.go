package api

import (
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"

	"school-site-backend/internal/auth"
	"school-site-backend/internal/forms"
	"school-site-backend/internal/store"
)

// dashboardAdmissionLimit caps how many recent applications the dashboard
// lists. Notices are listed unbounded.
const dashboardAdmissionLimit = 50

// invalidCredentials is the single message for unknown email and wrong
// password alike, so responses carry no account-enumeration signal.
const invalidCredentials = "Invalid email or password"

const adminIDKey = "admin_id"

// RequireAdmin gates the administrative routes. Anonymous callers are
// redirected to the login page, not served an error.
func (h *Handler) RequireAdmin(c *gin.Context) {
	token, err := c.Cookie(h.cfg.Session.CookieName)
	if err != nil {
		c.Redirect(http.StatusFound, "/admin/login")
		c.Abort()
		return
	}
	adminID, err := h.sessions.Verify(token)
	if err != nil {
		h.clearSessionCookie(c)
		c.Redirect(http.StatusFound, "/admin/login")
		c.Abort()
		return
	}
	c.Set(adminIDKey, adminID)
	c.Next()
}

// LoginForm handles GET /admin/login.
func (h *Handler) LoginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_login.html", gin.H{
		"Errors": forms.FieldErrors{},
		"Values": url.Values{},
	})
}

// Login handles POST /admin/login.
func (h *Handler) Login(c *gin.Context) {
	ip := c.ClientIP()
	if h.throttle.Blocked(ip) {
		c.HTML(http.StatusTooManyRequests, "admin_login.html", gin.H{
			"Errors":  forms.FieldErrors{},
			"Values":  url.Values{},
			"Message": "Too many failed attempts. Please try again later.",
		})
		return
	}

	if err := c.Request.ParseForm(); err != nil {
		c.HTML(http.StatusBadRequest, "admin_login.html", gin.H{
			"Errors":  forms.FieldErrors{},
			"Values":  url.Values{},
			"Message": "The submitted form could not be read",
		})
		return
	}

	creds, fieldErrs := forms.ParseLogin(c.Request.PostForm)
	if len(fieldErrs) > 0 {
		c.HTML(http.StatusBadRequest, "admin_login.html", gin.H{
			"Errors": fieldErrs,
			"Values": c.Request.PostForm,
		})
		return
	}

	admin, err := h.store.AdminByEmail(c.Request.Context(), creds.Email)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		h.serverError(c, err)
		return
	}
	if err != nil || !auth.CheckPassword(admin.PasswordHash, creds.Password) {
		h.throttle.RecordFailure(ip)
		c.HTML(http.StatusUnauthorized, "admin_login.html", gin.H{
			"Errors":  forms.FieldErrors{},
			"Values":  c.Request.PostForm,
			"Message": invalidCredentials,
		})
		return
	}

	token, err := h.sessions.Issue(admin.ID)
	if err != nil {
		h.serverError(c, err)
		return
	}
	h.throttle.Reset(ip)
	h.setSessionCookie(c, token)
	c.Redirect(http.StatusFound, "/admin/dashboard")
}

// Dashboard handles GET /admin/dashboard.
func (h *Handler) Dashboard(c *gin.Context) {
	adminID := c.GetInt64(adminIDKey)
	admin, err := h.store.AdminByID(c.Request.Context(), adminID)
	if errors.Is(err, store.ErrNotFound) {
		// The account behind this session no longer exists.
		h.clearSessionCookie(c)
		c.Redirect(http.StatusFound, "/admin/login")
		return
	}
	if err != nil {
		h.serverError(c, err)
		return
	}

	admissions, err := h.store.ListAdmissions(c.Request.Context(), dashboardAdmissionLimit)
	if err != nil {
		h.serverError(c, err)
		return
	}
	notices, err := h.store.ListNotices(c.Request.Context(), 0)
	if err != nil {
		h.serverError(c, err)
		return
	}

	c.HTML(http.StatusOK, "admin_dashboard.html", gin.H{
		"Admin":      admin,
		"Admissions": admissions,
		"Notices":    notices,
	})
}

// Logout handles GET /admin/logout. Only the caller's credential is
// dropped; other sessions stay valid until they expire.
func (h *Handler) Logout(c *gin.Context) {
	h.clearSessionCookie(c)
	c.Redirect(http.StatusFound, "/admin/login")
}

// AddNotice handles POST /admin/add_notice. Invalid input skips the insert
// and navigates back to the dashboard.
func (h *Handler) AddNotice(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		c.Redirect(http.StatusFound, "/admin/dashboard")
		return
	}

	notice, fieldErrs := forms.ParseNotice(c.Request.PostForm)
	if len(fieldErrs) > 0 {
		c.Redirect(http.StatusFound, "/admin/dashboard")
		return
	}

	notice.PublishedAt = time.Now().UTC()
	if err := h.store.CreateNotice(c.Request.Context(), notice); err != nil {
		h.serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/admin/dashboard")
}

func (h *Handler) setSessionCookie(c *gin.Context, token string) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     h.cfg.Session.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.sessions.TTL().Seconds()),
		HttpOnly: true,
		Secure:   h.cfg.Session.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearSessionCookie(c *gin.Context) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     h.cfg.Session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cfg.Session.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}
