package handlers

import (
	"net/http"
	"strings"

	"oncoscreen/internal/database"
	"oncoscreen/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func (e *Env) LoginPage(c *gin.Context) {
	render(c, http.StatusOK, "login.html", gin.H{"error": ""})
}

type loginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

func (e *Env) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusBadRequest, "login.html", gin.H{"error": "Invalid Credentials"})
		return
	}
	form.Username = strings.TrimSpace(form.Username)

	var user models.User
	if err := database.DB.First(&user, "id = ?", form.Username).Error; err != nil {
		render(c, http.StatusBadRequest, "login.html", gin.H{"error": "Invalid Credentials"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(form.Password)); err != nil {
		render(c, http.StatusBadRequest, "login.html", gin.H{"error": "Invalid Credentials"})
		return
	}

	sess := sessions.Default(c)
	sess.Set("user_id", user.ID)
	sess.Set("role", string(user.Role))
	sess.Set("name", user.Name)
	_ = sess.Save()

	c.Redirect(http.StatusFound, "/dashboard")
}

func (e *Env) Logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	_ = sess.Save()
	c.Redirect(http.StatusFound, "/")
}
