package handlers

import (
	"log"
	"net/http"

	"oncoscreen/internal/middleware"

	"github.com/gin-gonic/gin"
)

// render wraps c.HTML and threads the authenticated user into every
// template.
func render(c *gin.Context, status int, tmpl string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	if user, ok := middleware.CurrentUser(c); ok {
		data["CurrentUser"] = user
		data["CurrentUserName"] = user.Name
		data["CurrentUserRole"] = user.Role
	}

	c.HTML(status, tmpl, data)
}

func jsonError(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"status":  "error",
		"code":    code,
		"message": message,
	})
}

// internalError answers with an opaque code; the underlying error stays in
// the server log only.
func internalError(c *gin.Context, err error) {
	log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	jsonError(c, http.StatusInternalServerError, "internal_error", "internal error")
}
