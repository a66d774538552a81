package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/taskhub/task-service/internal/core/domain"
)

const auditCollection = "auth_events"

type MongoAuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *MongoAuditRepository {
	return &MongoAuditRepository{coll: db.Collection(auditCollection)}
}

type mongoAuthEvent struct {
	UserID string `bson:"user_id"`
	Kind   string `bson:"kind"`
	Detail string `bson:"detail,omitempty"`
	At     int64  `bson:"at"`
}

func (r *MongoAuditRepository) Insert(ctx context.Context, event *domain.AuthEvent) error {
	doc := mongoAuthEvent{
		UserID: event.UserID,
		Kind:   string(event.Kind),
		Detail: event.Detail,
		At:     event.At.Unix(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert auth event: %w", err)
	}
	return nil
}
