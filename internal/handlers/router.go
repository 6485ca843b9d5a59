package handlers

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/jayadedental/clinic-api/internal/middleware"
	"github.com/jayadedental/clinic-api/internal/models"
)

// Routes assembles the full gin engine: CORS, public endpoints, and the
// token- and role-gated staff surface.
func (h *Handler) Routes() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
	}))

	// Health check
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Jayade Dental Clinic API is running")
	})

	api := r.Group("/api")

	authRoutes := api.Group("/auth")
	{
		authRoutes.POST("/register", h.Register)
		authRoutes.POST("/login", h.Login)
		authRoutes.GET("/me", middleware.AuthMiddleware(h.JWTSecret), h.Me)
	}

	// Public website submissions
	api.POST("/appointments", h.CreateAppointment)
	api.POST("/enquiries", h.CreateEnquiry)
	api.POST("/chat", h.HandleChat)

	// Staff listings (doctor or admin)
	staff := api.Group("", middleware.AuthMiddleware(h.JWTSecret), middleware.RequireRoles(models.RoleDoctor, models.RoleAdmin))
	{
		staff.GET("/appointments", h.ListAppointments)
		staff.GET("/enquiries", h.ListEnquiries)
	}

	// Admin only
	admin := api.Group("/admin", middleware.AuthMiddleware(h.JWTSecret), middleware.RequireRoles(models.RoleAdmin))
	{
		admin.GET("/overview", h.AdminOverview)
	}

	return r
}
