// Package seed holds the baseline dataset used when the durable store is
// unreachable, plus the full demo dataset the explicit seeding tool writes to
// the durable store.
//
// Known hazard: Bootstrap upserts users (safe to repeat) but plain-inserts
// vehicles and alerts. Running it twice against the same live fallback store
// would duplicate those records on a store that allows it. Switching them to
// upserts would change the seeded id semantics, so the insert behavior stays.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/okgaadi/fleet-api/internal/domain"
	"github.com/okgaadi/fleet-api/internal/repository"
	"github.com/okgaadi/fleet-api/internal/service"
)

// Demo credentials for the fallback store.
const (
	AdminEmail    = "admin@okgadi.com"
	AdminPassword = "admin123"

	// The standard account carries role "user" while registration defaults
	// new accounts to "manager". Existing clients rely on both.
	StandardEmail    = "user@okgadi.com"
	StandardPassword = "user123"
)

// Users returns the two baseline accounts with freshly hashed passwords.
func Users(bcryptCost int) ([]*domain.User, error) {
	adminHash, err := service.HashPassword(AdminPassword, bcryptCost)
	if err != nil {
		return nil, err
	}
	standardHash, err := service.HashPassword(StandardPassword, bcryptCost)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return []*domain.User{
		{
			ID:           uuid.New().String(),
			Email:        AdminEmail,
			PasswordHash: adminHash,
			Name:         "Admin User",
			Role:         domain.RoleAdmin,
			CreatedAt:    now,
		},
		{
			ID:           uuid.New().String(),
			Email:        StandardEmail,
			PasswordHash: standardHash,
			Name:         "Standard User",
			Role:         domain.RoleUser,
			CreatedAt:    now,
		},
	}, nil
}

// Vehicles returns the five baseline vehicle records seeded on fallback.
func Vehicles() []*domain.Vehicle {
	return []*domain.Vehicle{
		{
			ID: "VH001", Name: "Tata Ultra T.7", Type: "Heavy Truck", Status: "active",
			HealthScore: 87, BreakdownRisk: 23, TelemetryCompleteness: 95,
			Location: "Mumbai Depot", Driver: "DRV001", Anomalies: []string{},
			TotalTrips: 234, TotalKm: 45620,
		},
		{
			ID: "VH002", Name: "Ashok Leyland 3118", Type: "Medium Truck", Status: "active",
			HealthScore: 92, BreakdownRisk: 12, TelemetryCompleteness: 98,
			Location: "Delhi Hub", Driver: "DRV002", Anomalies: []string{},
			TotalTrips: 189, TotalKm: 38450,
		},
		{
			ID: "VH003", Name: "Mahindra Blazo X", Type: "Heavy Truck", Status: "maintenance",
			HealthScore: 45, BreakdownRisk: 78, TelemetryCompleteness: 67,
			Location: "Bangalore Service", Driver: "DRV003", Anomalies: []string{},
			TotalTrips: 312, TotalKm: 67890,
		},
		{
			ID: "VH004", Name: "BharatBenz 2823R", Type: "Heavy Truck", Status: "active",
			HealthScore: 95, BreakdownRisk: 8, TelemetryCompleteness: 99,
			Location: "Chennai Depot", Driver: "DRV004", Anomalies: []string{},
			TotalTrips: 156, TotalKm: 32100,
		},
		{
			ID: "VH005", Name: "Eicher Pro 6031", Type: "Medium Truck", Status: "active",
			HealthScore: 71, BreakdownRisk: 35, TelemetryCompleteness: 82,
			Location: "Pune Hub", Driver: "DRV005", Anomalies: []string{},
			TotalTrips: 267, TotalKm: 54320,
		},
	}
}

// Alerts returns the two baseline alert records seeded on fallback.
func Alerts() []*domain.Alert {
	now := time.Now().UTC()
	return []*domain.Alert{
		{
			ID: "ALR001", Type: "critical", Title: "High Breakdown Risk",
			Message:   "Vehicle VH003 shows 78% breakdown probability",
			Timestamp: now, Read: false, Vehicle: "VH003",
		},
		{
			ID: "ALR002", Type: "info", Title: "Maintenance Due",
			Message:   "Vehicle VH001 maintenance scheduled in 5 days",
			Timestamp: now, Read: true, Vehicle: "VH001",
		},
	}
}

// Bootstrap seeds the fallback store with the baseline dataset so the system
// stays demoable without external infrastructure: upsert-by-email for users,
// plain insert for vehicles and alerts (see package comment for the re-run
// hazard).
func Bootstrap(ctx context.Context, repos *repository.Set, bcryptCost int) error {
	users, err := Users(bcryptCost)
	if err != nil {
		return fmt.Errorf("hashing baseline credentials: %w", err)
	}
	for _, user := range users {
		if err := repos.Users.Upsert(ctx, user); err != nil {
			return fmt.Errorf("seeding user %s: %w", user.Email, err)
		}
	}
	for _, vehicle := range Vehicles() {
		if err := repos.Vehicles.Create(ctx, vehicle); err != nil {
			return fmt.Errorf("seeding vehicle %s: %w", vehicle.ID, err)
		}
	}
	for _, alert := range Alerts() {
		if err := repos.Alerts.Create(ctx, alert); err != nil {
			return fmt.Errorf("seeding alert %s: %w", alert.ID, err)
		}
	}
	return nil
}
