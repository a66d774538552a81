package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/taskhub/task-service/internal/core/domain"
)

const userCollection = "users"

type MongoUserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{coll: db.Collection(userCollection)}
}

// EnsureIndexes creates the unique email index. The uniqueness constraint
// backs the duplicate-registration check at the storage layer.
func (r *MongoUserRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create email index: %w", err)
	}
	return nil
}

type mongoUser struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty"`
	Email               string             `bson:"email"`
	UserName            string             `bson:"user_name"`
	PasswordHash        string             `bson:"password_hash"`
	Role                string             `bson:"role"`
	ProfileImageID      string             `bson:"profile_image_id,omitempty"`
	ExternalAccessToken string             `bson:"external_access_token,omitempty"`
	JoinedAt            int64              `bson:"joined_at"`
}

func (r *MongoUserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	doc := mongoUser{
		Email:        user.Email,
		UserName:     user.UserName,
		PasswordHash: user.PasswordHash,
		Role:         string(user.Role),
		JoinedAt:     user.JoinedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	id, _ := res.InsertedID.(primitive.ObjectID)
	return r.FindByID(ctx, id.Hex())
}

func (r *MongoUserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *MongoUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *MongoUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return false, fmt.Errorf("count users: %w", err)
	}
	return n > 0, nil
}

func (r *MongoUserRepository) UpdateRole(ctx context.Context, id string, role domain.Role) error {
	return r.updateField(ctx, id, "role", string(role))
}

func (r *MongoUserRepository) UpdateExternalAccessToken(ctx context.Context, id, accessToken string) error {
	return r.updateField(ctx, id, "external_access_token", accessToken)
}

func (r *MongoUserRepository) UpdateProfileImage(ctx context.Context, id, imageID string) error {
	return r.updateField(ctx, id, "profile_image_id", imageID)
}

func (r *MongoUserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	var mu mongoUser
	if err := r.coll.FindOne(ctx, filter).Decode(&mu); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return toDomainUser(&mu), nil
}

func (r *MongoUserRepository) updateField(ctx context.Context, id, field string, value string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrUserNotFound
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{field: value}})
	if err != nil {
		return fmt.Errorf("update user %s: %w", field, err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func toDomainUser(mu *mongoUser) *domain.User {
	return &domain.User{
		ID:                  mu.ID.Hex(),
		Email:               mu.Email,
		UserName:            mu.UserName,
		PasswordHash:        mu.PasswordHash,
		Role:                domain.Role(mu.Role),
		ProfileImageID:      mu.ProfileImageID,
		ExternalAccessToken: mu.ExternalAccessToken,
		JoinedAt:            unixToTime(mu.JoinedAt),
	}
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
