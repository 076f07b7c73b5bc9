package repository

import (
	"context"

	"github.com/okgaadi/fleet-api/internal/domain"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *domain.User) error
	// GetByID retrieves a user by ID, nil if absent
	GetByID(ctx context.Context, id string) (*domain.User, error)
	// GetByEmail retrieves a user by email, nil if absent
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	// ExistsByEmail checks if a user exists with the given email
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// Upsert inserts the user or replaces the record with the same email
	Upsert(ctx context.Context, user *domain.User) error
}

// VehicleRepository defines the interface for vehicle data access
type VehicleRepository interface {
	Create(ctx context.Context, vehicle *domain.Vehicle) error
	List(ctx context.Context) ([]*domain.Vehicle, error)
	// GetByID returns domain.ErrNotFound when no vehicle matches
	GetByID(ctx context.Context, id string) (*domain.Vehicle, error)
	// Update replaces the vehicle; domain.ErrNotFound when no vehicle matches
	Update(ctx context.Context, vehicle *domain.Vehicle) error
	// Delete removes the vehicle; domain.ErrNotFound when no vehicle matches
	Delete(ctx context.Context, id string) error
}

// TripRepository defines the interface for trip data access
type TripRepository interface {
	Create(ctx context.Context, trip *domain.Trip) error
	List(ctx context.Context) ([]*domain.Trip, error)
}

// AlertRepository defines the interface for alert data access
type AlertRepository interface {
	Create(ctx context.Context, alert *domain.Alert) error
	// List returns alerts ordered by timestamp, newest first
	List(ctx context.Context) ([]*domain.Alert, error)
	// MarkRead flags the alert as read; domain.ErrNotFound when absent
	MarkRead(ctx context.Context, id string) error
	// Delete removes the alert; domain.ErrNotFound when absent
	Delete(ctx context.Context, id string) error
}

// Set bundles one repository per collection. The connectivity manager builds
// exactly one Set at startup, either MongoDB-backed or memory-backed; callers
// cannot tell which variant they hold.
type Set struct {
	Users    UserRepository
	Vehicles VehicleRepository
	Trips    TripRepository
	Alerts   AlertRepository
}
