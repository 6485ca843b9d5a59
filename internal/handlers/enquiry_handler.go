package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jayadedental/clinic-api/internal/models"
)

type EnquiryRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email"`
	Phone   string `json:"phone" binding:"required"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

// CreateEnquiry accepts a public enquiry from the clinic website.
func (h *Handler) CreateEnquiry(c *gin.Context) {
	var req EnquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name, phone and message are required"})
		return
	}

	enq := &models.Enquiry{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	}

	if err := h.Enquiries.Create(c.Request.Context(), enq); err != nil {
		log.Printf("CreateEnquiry: failed to save enquiry: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Enquiry submitted successfully"})
}

// ListEnquiries returns every enquiry, newest first. Restricted to doctor
// and admin roles by the router.
func (h *Handler) ListEnquiries(c *gin.Context) {
	enquiries, err := h.Enquiries.List(c.Request.Context())
	if err != nil {
		log.Printf("ListEnquiries: failed to fetch: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, enquiries)
}
