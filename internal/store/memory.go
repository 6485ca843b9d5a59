package store

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jayadedental/clinic-api/internal/models"
)

// MemoryStore is an in-process implementation of the store interfaces.
// It honours the same contract as the Mongo stores (unique emails,
// sentinel errors, newest-first listings) and backs the test suite.
type MemoryStore struct {
	Users        *MemoryUserStore
	Appointments *MemoryAppointmentStore
	Enquiries    *MemoryEnquiryStore
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		Users:        &MemoryUserStore{byEmail: make(map[string]*models.User)},
		Appointments: &MemoryAppointmentStore{},
		Enquiries:    &MemoryEnquiryStore{},
	}
}

type MemoryUserStore struct {
	mu      sync.Mutex
	users   []*models.User
	byEmail map[string]*models.User
}

func (s *MemoryUserStore) Create(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[user.Email]; exists {
		return ErrDuplicateEmail
	}

	now := time.Now().UTC()
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	user.CreatedAt = now
	user.UpdatedAt = now

	copied := *user
	s.users = append(s.users, &copied)
	s.byEmail[copied.Email] = &copied
	return nil
}

func (s *MemoryUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.byEmail[email]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (s *MemoryUserStore) FindByID(_ context.Context, id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.ID.Hex() == id {
			copied := *user
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryUserStore) Count(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.users)), nil
}

type MemoryAppointmentStore struct {
	mu           sync.Mutex
	appointments []models.Appointment
}

func (s *MemoryAppointmentStore) Create(_ context.Context, apt *models.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	if apt.ID.IsZero() {
		apt.ID = primitive.NewObjectID()
	}
	apt.CreatedAt = now
	apt.UpdatedAt = now

	s.appointments = append(s.appointments, *apt)
	return nil
}

func (s *MemoryAppointmentStore) List(_ context.Context) ([]models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Insertion order stands in for createdAt ordering; reversed for
	// newest first.
	out := make([]models.Appointment, 0, len(s.appointments))
	for i := len(s.appointments) - 1; i >= 0; i-- {
		out = append(out, s.appointments[i])
	}
	return out, nil
}

func (s *MemoryAppointmentStore) Count(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.appointments)), nil
}

type MemoryEnquiryStore struct {
	mu        sync.Mutex
	enquiries []models.Enquiry
}

func (s *MemoryEnquiryStore) Create(_ context.Context, enq *models.Enquiry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	if enq.ID.IsZero() {
		enq.ID = primitive.NewObjectID()
	}
	enq.CreatedAt = now
	enq.UpdatedAt = now

	s.enquiries = append(s.enquiries, *enq)
	return nil
}

func (s *MemoryEnquiryStore) List(_ context.Context) ([]models.Enquiry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Enquiry, 0, len(s.enquiries))
	for i := len(s.enquiries) - 1; i >= 0; i-- {
		out = append(out, s.enquiries[i])
	}
	return out, nil
}

func (s *MemoryEnquiryStore) Count(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.enquiries)), nil
}
