package repository

import (
	"go.mongodb.org/mongo-driver/mongo"
)

// NewMongoSet builds the repository set backed by the durable document store.
func NewMongoSet(db *mongo.Database) *Set {
	return &Set{
		Users:    NewMongoUserRepository(db),
		Vehicles: NewMongoVehicleRepository(db),
		Trips:    NewMongoTripRepository(db),
		Alerts:   NewMongoAlertRepository(db),
	}
}

// NewMemorySet builds the in-process fallback repository set.
func NewMemorySet() *Set {
	return &Set{
		Users:    NewMemoryUserRepository(),
		Vehicles: NewMemoryVehicleRepository(),
		Trips:    NewMemoryTripRepository(),
		Alerts:   NewMemoryAlertRepository(),
	}
}
