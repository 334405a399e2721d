package mongo

import (
	"context"
	"time"

	"github.com/strivehq/goaltrack/internal/goaltrack/domain"
	"github.com/strivehq/goaltrack/internal/goaltrack/store"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type tasksRepo struct {
	col *mongo.Collection
}

type taskDoc struct {
	ID               string    `bson:"_id"`
	Title            string    `bson:"title"`
	Description      string    `bson:"description"`
	Completed        bool      `bson:"completed"`
	Date             time.Time `bson:"date"`
	DepartmentalGoal string    `bson:"departmental_goal,omitempty"`
	UserID           string    `bson:"user_id"`
	CreatedAt        time.Time `bson:"created_at"`
	UpdatedAt        time.Time `bson:"updated_at"`
}

func (d taskDoc) toDomain() domain.Task {
	return domain.Task{
		ID:               d.ID,
		Title:            d.Title,
		Description:      d.Description,
		Completed:        d.Completed,
		Date:             d.Date,
		DepartmentalGoal: d.DepartmentalGoal,
		UserID:           d.UserID,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

func (r *tasksRepo) GetTaskByID(ctx context.Context, id string) (domain.Task, error) {
	var doc taskDoc
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		return domain.Task{}, mapNotFound(err)
	}
	return doc.toDomain(), nil
}

func (r *tasksRepo) ListTasksByUser(ctx context.Context, userID string) ([]domain.Task, error) {
	cur, err := r.col.Find(ctx, bson.M{"user_id": userID},
		options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	tasks := make([]domain.Task, 0)
	for cur.Next(ctx) {
		var doc taskDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		tasks = append(tasks, doc.toDomain())
	}
	return tasks, cur.Err()
}

func (r *tasksRepo) CreateTask(ctx context.Context, t domain.Task) error {
	now := nowUTC()
	_, err := r.col.InsertOne(ctx, taskDoc{
		ID:               t.ID,
		Title:            t.Title,
		Description:      t.Description,
		Completed:        t.Completed,
		Date:             t.Date,
		DepartmentalGoal: t.DepartmentalGoal,
		UserID:           t.UserID,
		CreatedAt:        now,
		UpdatedAt:        now,
	})
	return mapConflict(err)
}

func (r *tasksRepo) UpdateTask(ctx context.Context, t domain.Task) error {
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": t.ID}, bson.M{
		"$set": bson.M{
			"title":             t.Title,
			"description":       t.Description,
			"completed":         t.Completed,
			"date":              t.Date,
			"departmental_goal": t.DepartmentalGoal,
			"updated_at":        nowUTC(),
		},
	})
	if err != nil {
		return err
	}
	return requireMatched(res.MatchedCount)
}

func (r *tasksRepo) SetTaskCompleted(ctx context.Context, id string, completed bool) error {
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"completed": completed, "updated_at": nowUTC()},
	})
	if err != nil {
		return err
	}
	return requireMatched(res.MatchedCount)
}

func (r *tasksRepo) DeleteTask(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	return requireMatched(res.DeletedCount)
}

func requireMatched(n int64) error {
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
