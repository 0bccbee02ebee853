package api

import (
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"

	"school-site-backend/internal/forms"
)

// homeNoticeLimit caps how many notices the public home page shows.
const homeNoticeLimit = 5

// Home handles GET /.
func (h *Handler) Home(c *gin.Context) {
	notices, err := h.store.ListNotices(c.Request.Context(), homeNoticeLimit)
	if err != nil {
		h.serverError(c, err)
		return
	}
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Notices": notices,
	})
}

// AdmissionForm handles GET /admission.
func (h *Handler) AdmissionForm(c *gin.Context) {
	c.HTML(http.StatusOK, "admission.html", gin.H{
		"Errors":    forms.FieldErrors{},
		"Values":    url.Values{},
		"Submitted": c.Query("submitted") == "1",
	})
}

// SubmitAdmission handles POST /admission. Invalid input re-renders the
// form with field errors and writes nothing.
func (h *Handler) SubmitAdmission(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		c.HTML(http.StatusBadRequest, "admission.html", gin.H{
			"Errors": forms.FieldErrors{"form": "the submitted form could not be read"},
			"Values": url.Values{},
		})
		return
	}

	admission, fieldErrs := forms.ParseAdmission(c.Request.PostForm)
	if len(fieldErrs) > 0 {
		c.HTML(http.StatusBadRequest, "admission.html", gin.H{
			"Errors": fieldErrs,
			"Values": c.Request.PostForm,
		})
		return
	}

	admission.SubmittedAt = time.Now().UTC()
	if err := h.store.CreateAdmission(c.Request.Context(), admission); err != nil {
		h.serverError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/admission?submitted=1")
}
