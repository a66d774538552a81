package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/taskhub/task-service/internal/core/domain"
)

const taskCollection = "tasks"

type MongoTaskRepository struct {
	coll *mongo.Collection
}

func NewTaskRepository(db *mongo.Database) *MongoTaskRepository {
	return &MongoTaskRepository{coll: db.Collection(taskCollection)}
}

type mongoTask struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Title     string             `bson:"title"`
	Done      bool               `bson:"done"`
	OwnerID   string             `bson:"owner_id"`
	CreatedAt int64              `bson:"created_at"`
}

func (r *MongoTaskRepository) Insert(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	doc := mongoTask{
		Title:     task.Title,
		Done:      task.Done,
		OwnerID:   task.OwnerID,
		CreatedAt: task.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}

	id, _ := res.InsertedID.(primitive.ObjectID)
	out := *task
	out.ID = id.Hex()
	return &out, nil
}

func (r *MongoTaskRepository) CountByOwner(ctx context.Context, ownerID string) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"owner_id": ownerID})
	if err != nil {
		return 0, fmt.Errorf("count tasks: %w", err)
	}
	return n, nil
}

func (r *MongoTaskRepository) FindAllByOwner(ctx context.Context, ownerID string) ([]domain.Task, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{"owner_id": ownerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("find tasks: %w", err)
	}
	defer cur.Close(ctx)

	var tasks []domain.Task
	for cur.Next(ctx) {
		var mt mongoTask
		if err := cur.Decode(&mt); err != nil {
			return nil, fmt.Errorf("decode task: %w", err)
		}
		tasks = append(tasks, domain.Task{
			ID:        mt.ID.Hex(),
			Title:     mt.Title,
			Done:      mt.Done,
			OwnerID:   mt.OwnerID,
			CreatedAt: unixToTime(mt.CreatedAt),
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}
	return tasks, nil
}

func (r *MongoTaskRepository) UpdateDone(ctx context.Context, taskID, ownerID string, done bool) error {
	oid, err := primitive.ObjectIDFromHex(taskID)
	if err != nil {
		return domain.ErrTaskNotFound
	}

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid, "owner_id": ownerID},
		bson.M{"$set": bson.M{"done": done}},
	)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *MongoTaskRepository) Delete(ctx context.Context, taskID, ownerID string) error {
	oid, err := primitive.ObjectIDFromHex(taskID)
	if err != nil {
		return domain.ErrTaskNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid, "owner_id": ownerID})
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}
