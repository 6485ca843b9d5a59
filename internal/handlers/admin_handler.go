package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminOverview reports collection counts for the admin dashboard.
func (h *Handler) AdminOverview(c *gin.Context) {
	ctx := c.Request.Context()

	appointmentsCount, err := h.Appointments.Count(ctx)
	if err != nil {
		log.Printf("AdminOverview: failed to count appointments: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	enquiriesCount, err := h.Enquiries.Count(ctx)
	if err != nil {
		log.Printf("AdminOverview: failed to count enquiries: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	usersCount, err := h.Users.Count(ctx)
	if err != nil {
		log.Printf("AdminOverview: failed to count users: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"appointmentsCount": appointmentsCount,
		"enquiriesCount":    enquiriesCount,
		"usersCount":        usersCount,
	})
}
