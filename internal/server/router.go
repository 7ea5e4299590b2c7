package server

import (
	"net/http"

	"oncoscreen/internal/config"
	"oncoscreen/internal/handlers"
	"oncoscreen/internal/middleware"
	"oncoscreen/internal/models"
	"oncoscreen/internal/risk"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func NewRouter(cfg *config.Config, model *risk.Model) *gin.Engine {
	r := gin.Default()

	r.Use(cors.Default())

	r.LoadHTMLGlob("web/templates/*.html")

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("clinic_session", store))

	r.Use(middleware.InjectUser())

	h := handlers.New(cfg, model)

	// AUTH
	r.GET("/", h.LoginPage)
	r.POST("/login", h.Login)
	r.GET("/logout", h.Logout)

	auth := r.Group("/")
	auth.Use(middleware.RequireAuth())

	// DASHBOARD (patients see only their own record)
	auth.GET("/dashboard", h.Dashboard)

	// PATIENT PROVISIONING
	auth.POST("/create_patient",
		middleware.RequireRole(models.RoleAdmin, models.RoleDoctor),
		h.CreatePatient,
	)

	// CLINICAL NOTES
	auth.POST("/add_note",
		middleware.RequireRole(models.RoleDoctor),
		h.AddNote,
	)

	// BIOPSY UPLOADS
	auth.POST("/upload_biopsy",
		middleware.RequireRole(models.RoleRadiologist),
		h.UploadBiopsy,
	)
	auth.GET("/uploads/:filename", h.ServeUpload)

	// RISK PREDICTION (any authenticated role)
	auth.POST("/predict", h.Predict)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
