package handlers

import (
	"net/http"

	"petopia/models"
	"petopia/services/appointment"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes the three booking paths and OTP verification.
type BookingHandler struct {
	Service appointment.AppointmentService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(svc appointment.AppointmentService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// BookForOwnerHandler books an appointment for a registered owner.
func (bh *BookingHandler) BookForOwnerHandler(c *gin.Context) {
	var req models.OwnerBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	appt, err := bh.Service.BookForOwner(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":     "Appointment booked successfully.",
		"appointment": appt,
	})
}

// StageGuestBookingHandler stages a guest booking and emails an OTP.
func (bh *BookingHandler) StageGuestBookingHandler(c *gin.Context) {
	var req models.GuestBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := bh.Service.StageGuestBooking(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "OTP sent to your email. Please verify to complete your booking.",
	})
}

// VerifyGuestBookingHandler consumes a staged guest booking.
func (bh *BookingHandler) VerifyGuestBookingHandler(c *gin.Context) {
	var req struct {
		Email string `json:"email"`
		OTP   string `json:"otp"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	appt, err := bh.Service.VerifyGuestBooking(c.Request.Context(), req.Email, req.OTP)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":     "Appointment booked successfully.",
		"appointment": appt,
	})
}

// BookForClinicHandler books directly for an existing owner and pet.
func (bh *BookingHandler) BookForClinicHandler(c *gin.Context) {
	var req models.ClinicBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	appt, err := bh.Service.BookForClinic(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":     "Appointment booked successfully.",
		"appointment": appt,
	})
}
