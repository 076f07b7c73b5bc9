// Command seed wipes and repopulates the durable document store with the full
// demo dataset. Unlike server startup there is no in-memory fallback here: an
// unreachable store is a hard failure.
package main

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/okgaadi/fleet-api/internal/repository"
	"github.com/okgaadi/fleet-api/internal/seed"
	"github.com/okgaadi/fleet-api/pkg/config"
	"github.com/okgaadi/fleet-api/pkg/database"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db, err := database.NewMongo(ctx, &database.MongoConfig{
		URI:            cfg.MongoDB.URI,
		Database:       cfg.MongoDB.Database,
		ConnectTimeout: cfg.MongoDB.ConnectTimeout,
	})
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer db.Close(context.Background())

	for _, name := range []string{"users", "vehicles", "trips", "alerts"} {
		if _, err := db.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			log.Fatalf("Failed to clear %s: %v", name, err)
		}
	}

	repos := repository.NewMongoSet(db.Database())

	users, err := seed.Users(cfg.Auth.BcryptCost)
	if err != nil {
		log.Fatalf("Failed to hash seed credentials: %v", err)
	}
	for _, user := range users {
		if err := repos.Users.Create(ctx, user); err != nil {
			log.Fatalf("Failed to seed user %s: %v", user.Email, err)
		}
	}
	log.Println("Users seeded")

	for _, vehicle := range seed.FullVehicles() {
		if err := repos.Vehicles.Create(ctx, vehicle); err != nil {
			log.Fatalf("Failed to seed vehicle %s: %v", vehicle.ID, err)
		}
	}
	log.Println("Vehicles seeded")

	for _, trip := range seed.FullTrips() {
		if err := repos.Trips.Create(ctx, trip); err != nil {
			log.Fatalf("Failed to seed trip %s: %v", trip.ID, err)
		}
	}
	log.Println("Trips seeded")

	for _, alert := range seed.FullAlerts() {
		if err := repos.Alerts.Create(ctx, alert); err != nil {
			log.Fatalf("Failed to seed alert %s: %v", alert.ID, err)
		}
	}
	log.Println("Alerts seeded")
}
