package middleware

import (
	"net/http"

	"oncoscreen/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// RequireAuth gates protected routes. Browser navigation is redirected to
// the login page; API calls get a structured 401.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		userID := sess.Get("user_id")
		if userID == nil {
			if c.Request.Method == http.MethodGet {
				c.Redirect(http.StatusFound, "/")
			} else {
				c.JSON(http.StatusUnauthorized, gin.H{
					"status":  "error",
					"code":    "auth_failed",
					"message": "authentication required",
				})
			}
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireRole allows only the listed roles through. Role checks always run
// before any state mutation.
func RequireRole(roles ...models.UserRole) gin.HandlerFunc {
	roleSet := map[models.UserRole]struct{}{}
	for _, r := range roles {
		roleSet[r] = struct{}{}
	}

	return func(c *gin.Context) {
		sess := sessions.Default(c)
		roleVal := sess.Get("role")
		roleStr, ok := roleVal.(string)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"code":    "auth_failed",
				"message": "authentication required",
			})
			c.Abort()
			return
		}
		role := models.UserRole(roleStr)

		if _, ok := roleSet[role]; !ok {
			c.JSON(http.StatusForbidden, gin.H{
				"status":  "error",
				"code":    "forbidden",
				"message": "role not permitted",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
