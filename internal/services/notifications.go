package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/jayadedental/clinic-api/internal/models"
)

// NotificationService sends SMS acknowledgements for appointment
// requests. Sends are fire-and-forget and never affect the HTTP response.
type NotificationService struct{}

func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

// SendAppointmentRequestSMS acknowledges a submitted appointment request.
func (s *NotificationService) SendAppointmentRequestSMS(apt *models.Appointment) {
	if apt.Phone == "" {
		log.Println("SMS not sent: appointment request has no phone number.")
		return
	}
	if os.Getenv("TEXTBELT_API_KEY") == "" {
		return
	}

	smsBody := fmt.Sprintf(
		"Jayade Dental Clinic: we received your request for %s, %s. Our team will call you to confirm a slot.",
		apt.Service,
		apt.Name,
	)

	// Send in a goroutine so it doesn't block the API response.
	go sendSmsWithTextbelt(apt.Phone, smsBody)
}

func sendSmsWithTextbelt(phone, message string) {
	textbeltKey := os.Getenv("TEXTBELT_API_KEY")

	postBody, _ := json.Marshal(map[string]string{
		"phone":   phone,
		"message": message,
		"key":     textbeltKey,
	})

	resp, err := http.Post("https://textbelt.com/text", "application/json", bytes.NewBuffer(postBody))
	if err != nil {
		log.Printf("Failed to send Textbelt request for number %s: %v", phone, err)
		return
	}
	defer resp.Body.Close()

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)

	success, _ := result["success"].(bool)
	if !success {
		errorMsg, _ := result["error"].(string)
		log.Printf("Failed to send SMS via Textbelt to %s. Reason: %s", phone, errorMsg)
	} else {
		log.Printf("Successfully sent SMS via Textbelt to %s", phone)
	}
}
