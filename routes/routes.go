package routes

import (
	"net/http"
	"time"

	"petopia/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers the three booking paths and OTP
// verification.
func RegisterBookingRoutes(r *gin.Engine, bh *handlers.BookingHandler) {
	booking := r.Group("/api/booking")
	{
		booking.POST("/registered", bh.BookForOwnerHandler)
		booking.POST("/guest", bh.StageGuestBookingHandler)
		booking.POST("/verify-otp", bh.VerifyGuestBookingHandler)
		booking.POST("/clinic-initiated", bh.BookForClinicHandler)
	}
}

// RegisterAppointmentRoutes registers appointment reads, updates, and
// deletion.
func RegisterAppointmentRoutes(r *gin.Engine, ah *handlers.AppointmentHandler) {
	api := r.Group("/api/appointments")
	{
		api.GET("", ah.GetAllHandler)
		api.GET("/id/:id", ah.GetByIDHandler)
		api.GET("/owner/:ownerId", ah.GetByOwnerHandler)
		api.GET("/clinic/:clinicId", ah.GetByClinicHandler)
		api.GET("/clinic/:clinicId/owners", ah.GetClinicOwnersHandler)
		api.PUT("/:id", ah.UpdateHandler)
		api.DELETE("/:id", ah.DeleteHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Petopia"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, bh *handlers.BookingHandler, ah *handlers.AppointmentHandler) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterBookingRoutes(r, bh)
	RegisterAppointmentRoutes(r, ah)
	RegisterHealthRoute(r)
}
