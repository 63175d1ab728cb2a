package handlers

import (
	"net/http"

	"petopia/models"
	"petopia/services/appointment"

	"github.com/gin-gonic/gin"
)

// AppointmentHandler exposes appointment reads, updates, and deletion.
type AppointmentHandler struct {
	Service appointment.AppointmentService
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(svc appointment.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{Service: svc}
}

// GetAllHandler returns every appointment, newest first.
func (ah *AppointmentHandler) GetAllHandler(c *gin.Context) {
	views, err := ah.Service.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// GetByIDHandler returns a single appointment view.
func (ah *AppointmentHandler) GetByIDHandler(c *gin.Context) {
	view, err := ah.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// GetByOwnerHandler returns an owner's appointments.
func (ah *AppointmentHandler) GetByOwnerHandler(c *gin.Context) {
	views, err := ah.Service.ListByOwner(c.Request.Context(), c.Param("ownerId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// GetByClinicHandler returns a clinic's appointments; an empty list is 200.
func (ah *AppointmentHandler) GetByClinicHandler(c *gin.Context) {
	views, err := ah.Service.ListByClinic(c.Request.Context(), c.Param("clinicId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// GetClinicOwnersHandler returns the owners seen at a clinic with their
// pets and services.
func (ah *AppointmentHandler) GetClinicOwnersHandler(c *gin.Context) {
	summaries, err := ah.Service.OwnersWithAppointments(c.Request.Context(), c.Param("clinicId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summaries)
}

// UpdateHandler applies a status transition and/or field updates.
func (ah *AppointmentHandler) UpdateHandler(c *gin.Context) {
	var req models.AppointmentUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	view, err := ah.Service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":     "Appointment updated successfully.",
		"appointment": view,
	})
}

// DeleteHandler hard-deletes an appointment.
func (ah *AppointmentHandler) DeleteHandler(c *gin.Context) {
	if err := ah.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
