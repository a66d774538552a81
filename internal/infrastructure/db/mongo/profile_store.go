package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/taskhub/task-service/internal/core/domain"
)

const profileImageCollection = "profile_images"

// MongoProfileImageStore keeps profile images as documents. Images are capped
// at a few megabytes by the transport layer, well under Mongo's document
// limit, so a dedicated blob engine is not needed here.
type MongoProfileImageStore struct {
	coll *mongo.Collection
}

func NewProfileImageStore(db *mongo.Database) *MongoProfileImageStore {
	return &MongoProfileImageStore{coll: db.Collection(profileImageCollection)}
}

type mongoProfileImage struct {
	ID          string `bson:"_id"`
	ContentType string `bson:"content_type"`
	Data        []byte `bson:"data"`
}

func (s *MongoProfileImageStore) Put(ctx context.Context, imageID string, data []byte, contentType string) error {
	doc := mongoProfileImage{ID: imageID, ContentType: contentType, Data: data}
	if _, err := s.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert profile image: %w", err)
	}
	return nil
}

func (s *MongoProfileImageStore) Get(ctx context.Context, imageID string) ([]byte, string, error) {
	var doc mongoProfileImage
	if err := s.coll.FindOne(ctx, bson.M{"_id": imageID}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, "", domain.ErrUserNotFound
		}
		return nil, "", fmt.Errorf("find profile image: %w", err)
	}
	return doc.Data, doc.ContentType, nil
}
