package di

import (
	"context"

	"github.com/okgaadi/fleet-api/internal/handler"
	"github.com/okgaadi/fleet-api/internal/repository"
	"github.com/okgaadi/fleet-api/internal/seed"
	"github.com/okgaadi/fleet-api/internal/service"
	"github.com/okgaadi/fleet-api/pkg/config"
	"github.com/okgaadi/fleet-api/pkg/database"
	"github.com/okgaadi/fleet-api/pkg/logger"
)

// Container holds all dependencies for the fleet API. It owns store
// selection: the durable document store is probed once at construction, and
// on failure the container binds the in-memory fallback, seeded with the
// baseline dataset. The choice is fixed for the life of the process and is
// observable only in logs.
type Container struct {
	// Infrastructure; nil when the in-memory fallback is bound
	Mongo *database.MongoDB

	// Repositories
	Repos *repository.Set

	// Services
	AuthService service.AuthService

	// Handlers
	HealthHandler  *handler.HealthHandler
	AuthHandler    *handler.AuthHandler
	VehicleHandler *handler.VehicleHandler
	TripHandler    *handler.TripHandler
	AlertHandler   *handler.AlertHandler
}

// memoryPinger satisfies the readiness probe for the in-memory store, which
// is reachable by construction.
type memoryPinger struct{}

func (memoryPinger) Ping(ctx context.Context) error { return nil }

// NewContainer probes the durable store and wires the dependency graph.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	log := logger.Get()

	c := &Container{}
	var pinger handler.StorePinger

	log.Info("Attempting to connect to MongoDB at " + cfg.MongoDB.URI)
	mongoDB, err := database.NewMongo(ctx, &database.MongoConfig{
		URI:            cfg.MongoDB.URI,
		Database:       cfg.MongoDB.Database,
		ConnectTimeout: cfg.MongoDB.ConnectTimeout,
	})
	if err == nil {
		log.Info("Successfully connected to MongoDB")
		c.Mongo = mongoDB
		c.Repos = repository.NewMongoSet(mongoDB.Database())
		pinger = mongoDB
	} else {
		log.Warn("Failed to connect to MongoDB: " + err.Error())
		log.Warn("Falling back to in-memory store")
		c.Repos = repository.NewMemorySet()
		pinger = memoryPinger{}

		if err := seed.Bootstrap(ctx, c.Repos, cfg.Auth.BcryptCost); err != nil {
			return nil, err
		}
		log.Info("In-memory store seeded. Login with " + seed.AdminEmail + " or " + seed.StandardEmail)
	}

	// Services
	c.AuthService = service.NewAuthService(c.Repos.Users, &service.AuthServiceConfig{
		JWTSecret:         cfg.JWT.Secret,
		AccessTokenExpiry: cfg.JWT.AccessTokenTTL,
		BcryptCost:        cfg.Auth.BcryptCost,
	})

	// Handlers
	c.HealthHandler = handler.NewHealthHandler(pinger)
	c.AuthHandler = handler.NewAuthHandler(c.AuthService)
	c.VehicleHandler = handler.NewVehicleHandler(c.Repos.Vehicles)
	c.TripHandler = handler.NewTripHandler(c.Repos.Trips)
	c.AlertHandler = handler.NewAlertHandler(c.Repos.Alerts)

	return c, nil
}

// UsingFallback reports whether the in-memory store is bound. Server-side
// only; nothing in the HTTP surface exposes it.
func (c *Container) UsingFallback() bool {
	return c.Mongo == nil
}

// Close releases the store connection, if any.
func (c *Container) Close(ctx context.Context) error {
	if c.Mongo != nil {
		return c.Mongo.Close(ctx)
	}
	return nil
}
