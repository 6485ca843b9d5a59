package handlers

import (
	"github.com/jayadedental/clinic-api/internal/services"
	"github.com/jayadedental/clinic-api/internal/store"
)

// Handler carries the stores and services the route handlers need. It is
// built once in main and shared across requests.
type Handler struct {
	Users           store.UserStore
	Appointments    store.AppointmentStore
	Enquiries       store.EnquiryStore
	NotificationSvc *services.NotificationService
	JWTSecret       []byte
}

func NewHandler(users store.UserStore, appointments store.AppointmentStore, enquiries store.EnquiryStore, notificationSvc *services.NotificationService, jwtSecret []byte) *Handler {
	return &Handler{
		Users:           users,
		Appointments:    appointments,
		Enquiries:       enquiries,
		NotificationSvc: notificationSvc,
		JWTSecret:       jwtSecret,
	}
}
