package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shariqrahman/Products-Management/internal/database"
	"github.com/shariqrahman/Products-Management/internal/models"
)

var (
	// ErrUserNotFound is returned when a lookup matches no document.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateKey is returned when a write violates the unique email or
	// phone index.
	ErrDuplicateKey = errors.New("email or phone already in use")
)

// UserStore persists user documents in the users collection.
type UserStore struct {
	col *mongo.Collection
}

func NewUserStore(db *database.DB) *UserStore {
	return &UserStore{col: db.Database.Collection("users")}
}

func (s *UserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.findOne(ctx, bson.M{"email": email})
}

func (s *UserStore) FindByPhone(ctx context.Context, phone string) (*models.User, error) {
	return s.findOne(ctx, bson.M{"phone": phone})
}

func (s *UserStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return s.findOne(ctx, bson.M{"_id": id})
}

func (s *UserStore) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var user models.User
	err := s.col.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	return &user, nil
}

// Create inserts a new user document and returns it with the generated id.
func (s *UserStore) Create(ctx context.Context, user *models.User) (*models.User, error) {
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	res, err := s.col.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return user, nil
}

// Update applies the supplied fields to the document with the given id and
// returns the updated document. The set document carries dotted keys for
// address leaves (e.g. "address.shipping.city") so that unmentioned leaves
// keep their stored values.
func (s *UserStore) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.User, error) {
	set["updated_at"] = time.Now().UTC()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var user models.User
	err := s.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return &user, nil
}
