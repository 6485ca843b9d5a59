package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jayadedental/clinic-api/internal/models"
)

type AppointmentRequest struct {
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email"`
	Phone         string `json:"phone" binding:"required"`
	Service       string `json:"service" binding:"required"`
	PreferredDate string `json:"preferredDate"`
	PreferredTime string `json:"preferredTime"`
	Message       string `json:"message"`
}

// CreateAppointment accepts a public appointment request from the clinic
// website. No authentication required.
func (h *Handler) CreateAppointment(c *gin.Context) {
	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name, phone and service are required"})
		return
	}

	apt := &models.Appointment{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Service:       req.Service,
		PreferredDate: req.PreferredDate,
		PreferredTime: req.PreferredTime,
		Message:       req.Message,
	}

	if err := h.Appointments.Create(c.Request.Context(), apt); err != nil {
		log.Printf("CreateAppointment: failed to save request: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	h.NotificationSvc.SendAppointmentRequestSMS(apt)

	c.JSON(http.StatusCreated, gin.H{"message": "Appointment request submitted successfully"})
}

// ListAppointments returns every appointment request, newest first.
// Restricted to doctor and admin roles by the router.
func (h *Handler) ListAppointments(c *gin.Context) {
	appointments, err := h.Appointments.List(c.Request.Context())
	if err != nil {
		log.Printf("ListAppointments: failed to fetch: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, appointments)
}
