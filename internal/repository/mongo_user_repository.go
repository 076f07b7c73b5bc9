package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/okgaadi/fleet-api/internal/domain"
)

// mongoUserRepository implements UserRepository backed by the users collection
type mongoUserRepository struct {
	coll *mongo.Collection
}

// NewMongoUserRepository creates a MongoDB-backed UserRepository
func NewMongoUserRepository(db *mongo.Database) UserRepository {
	return &mongoUserRepository{coll: db.Collection("users")}
}

func (r *mongoUserRepository) Create(ctx context.Context, user *domain.User) error {
	_, err := r.coll.InsertOne(ctx, user)
	return err
}

func (r *mongoUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *mongoUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *mongoUserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	var user domain.User
	err := r.coll.FindOne(ctx, filter).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if !user.Role.Valid() {
		return nil, domain.ErrInvalidRole
	}
	return &user, nil
}

func (r *mongoUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *mongoUserRepository) Upsert(ctx context.Context, user *domain.User) error {
	// _id is immutable on a matched document, so it only applies on insert.
	update := bson.M{
		"$set": bson.M{
			"email":           user.Email,
			"hashed_password": user.PasswordHash,
			"name":            user.Name,
			"role":            user.Role,
			"created_at":      user.CreatedAt,
		},
		"$setOnInsert": bson.M{"_id": user.ID},
	}
	_, err := r.coll.UpdateOne(ctx, bson.M{"email": user.Email}, update, options.Update().SetUpsert(true))
	return err
}
