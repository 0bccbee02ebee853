package api

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// ServeUpload handles GET /uploads/*filepath. It streams bytes from the
// configured upload directory and refuses anything that does not resolve
// under it.
func (h *Handler) ServeUpload(c *gin.Context) {
	name := strings.TrimPrefix(c.Param("filepath"), "/")
	if name == "" || !filepath.IsLocal(name) {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	full := filepath.Join(h.cfg.Uploads.Dir, filepath.FromSlash(name))
	info, err := os.Stat(full)
	if err != nil || info.IsDir() {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}
	c.File(full)
}
