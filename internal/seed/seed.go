// Package seed provisions the fixed set of staff logins at startup so the
// clinic never requires manual account creation. Initial passwords are
// expected to be rotated out-of-band.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/jayadedental/clinic-api/internal/models"
	"github.com/jayadedental/clinic-api/internal/store"
	"github.com/jayadedental/clinic-api/internal/utils"
)

type staffEntry struct {
	Name     string
	Email    string
	Phone    string
	Role     string
	Password string
}

var defaultStaff = []staffEntry{
	{Name: "Dr. Gautam Jayade", Email: "gautam@jayadedental.com", Phone: "+91 90000 00001", Role: models.RoleDoctor, Password: "Gautam@123"},
	{Name: "Dr. Deepa Jayade", Email: "deepa@jayadedental.com", Phone: "+91 90000 00002", Role: models.RoleDoctor, Password: "Deepa@123"},
	{Name: "Dr. Rohan Shetty", Email: "rohan@jayadedental.com", Phone: "+91 90000 00003", Role: models.RoleDoctor, Password: "Rohan@123"},
	{Name: "Dr. Ananya Kulkarni", Email: "ananya@jayadedental.com", Phone: "+91 90000 00004", Role: models.RoleDoctor, Password: "Ananya@123"},
	{Name: "Clinic Admin", Email: "admin@jayadedental.com", Phone: "+91 90000 00005", Role: models.RoleAdmin, Password: "Admin@123"},
}

// DefaultStaff runs once at startup, after the store is reachable and
// before the listener binds. Existing accounts are left untouched, so
// re-running never duplicates records or rewrites password hashes.
func DefaultStaff(ctx context.Context, users store.UserStore) error {
	for _, entry := range defaultStaff {
		_, err := users.FindByEmail(ctx, entry.Email)
		if err == nil {
			continue
		}
		if !errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("seed: lookup %s: %w", entry.Email, err)
		}

		hashed, err := utils.HashPassword(entry.Password)
		if err != nil {
			return fmt.Errorf("seed: hash password for %s: %w", entry.Email, err)
		}

		user := &models.User{
			Name:     entry.Name,
			Email:    entry.Email,
			Phone:    entry.Phone,
			Role:     entry.Role,
			Password: hashed,
		}
		if err := users.Create(ctx, user); err != nil {
			// A concurrent replica may have won the insert race.
			if errors.Is(err, store.ErrDuplicateEmail) {
				continue
			}
			return fmt.Errorf("seed: create %s: %w", entry.Email, err)
		}
		log.Printf("Seeded staff user: %s (%s)", entry.Email, entry.Role)
	}
	return nil
}
