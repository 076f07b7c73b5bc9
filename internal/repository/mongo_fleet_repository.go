package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/okgaadi/fleet-api/internal/domain"
)

// mongoVehicleRepository implements VehicleRepository over the vehicles collection
type mongoVehicleRepository struct {
	coll *mongo.Collection
}

// NewMongoVehicleRepository creates a MongoDB-backed VehicleRepository
func NewMongoVehicleRepository(db *mongo.Database) VehicleRepository {
	return &mongoVehicleRepository{coll: db.Collection("vehicles")}
}

func (r *mongoVehicleRepository) Create(ctx context.Context, vehicle *domain.Vehicle) error {
	_, err := r.coll.InsertOne(ctx, vehicle)
	return err
}

func (r *mongoVehicleRepository) List(ctx context.Context) ([]*domain.Vehicle, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	vehicles := []*domain.Vehicle{}
	if err := cursor.All(ctx, &vehicles); err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (r *mongoVehicleRepository) GetByID(ctx context.Context, id string) (*domain.Vehicle, error) {
	var vehicle domain.Vehicle
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&vehicle)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (r *mongoVehicleRepository) Update(ctx context.Context, vehicle *domain.Vehicle) error {
	result, err := r.coll.ReplaceOne(ctx, bson.M{"_id": vehicle.ID}, vehicle)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *mongoVehicleRepository) Delete(ctx context.Context, id string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// mongoTripRepository implements TripRepository over the trips collection
type mongoTripRepository struct {
	coll *mongo.Collection
}

// NewMongoTripRepository creates a MongoDB-backed TripRepository
func NewMongoTripRepository(db *mongo.Database) TripRepository {
	return &mongoTripRepository{coll: db.Collection("trips")}
}

func (r *mongoTripRepository) Create(ctx context.Context, trip *domain.Trip) error {
	_, err := r.coll.InsertOne(ctx, trip)
	return err
}

func (r *mongoTripRepository) List(ctx context.Context) ([]*domain.Trip, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	trips := []*domain.Trip{}
	if err := cursor.All(ctx, &trips); err != nil {
		return nil, err
	}
	return trips, nil
}

// mongoAlertRepository implements AlertRepository over the alerts collection
type mongoAlertRepository struct {
	coll *mongo.Collection
}

// NewMongoAlertRepository creates a MongoDB-backed AlertRepository
func NewMongoAlertRepository(db *mongo.Database) AlertRepository {
	return &mongoAlertRepository{coll: db.Collection("alerts")}
}

func (r *mongoAlertRepository) Create(ctx context.Context, alert *domain.Alert) error {
	_, err := r.coll.InsertOne(ctx, alert)
	return err
}

func (r *mongoAlertRepository) List(ctx context.Context) ([]*domain.Alert, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	alerts := []*domain.Alert{}
	if err := cursor.All(ctx, &alerts); err != nil {
		return nil, err
	}
	return alerts, nil
}

func (r *mongoAlertRepository) MarkRead(ctx context.Context, id string) error {
	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"read": true}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *mongoAlertRepository) Delete(ctx context.Context, id string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
