// Package store abstracts the document collections behind small
// interfaces so handlers and the seeding routine stay testable without a
// live database.
package store

import (
	"context"
	"errors"

	"github.com/jayadedental/clinic-api/internal/models"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	Count(ctx context.Context) (int64, error)
}

type AppointmentStore interface {
	Create(ctx context.Context, apt *models.Appointment) error
	List(ctx context.Context) ([]models.Appointment, error)
	Count(ctx context.Context) (int64, error)
}

type EnquiryStore interface {
	Create(ctx context.Context, enq *models.Enquiry) error
	List(ctx context.Context) ([]models.Enquiry, error)
	Count(ctx context.Context) (int64, error)
}
