package mongo

import (
	"context"
	"time"

	"github.com/strivehq/goaltrack/internal/goaltrack/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type objectivesRepo struct {
	col *mongo.Collection
}

type objectiveDoc struct {
	ID          string    `bson:"_id"`
	Title       string    `bson:"title"`
	Description string    `bson:"description"`
	CreatedAt   time.Time `bson:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at"`
}

func (r *objectivesRepo) ListObjectives(ctx context.Context) ([]domain.Objective, error) {
	cur, err := r.col.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	objectives := make([]domain.Objective, 0)
	for cur.Next(ctx) {
		var doc objectiveDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		objectives = append(objectives, domain.Objective{
			ID:          doc.ID,
			Title:       doc.Title,
			Description: doc.Description,
			CreatedAt:   doc.CreatedAt,
			UpdatedAt:   doc.UpdatedAt,
		})
	}
	return objectives, cur.Err()
}

func (r *objectivesRepo) UpsertObjective(ctx context.Context, o domain.Objective) error {
	now := nowUTC()
	_, err := r.col.UpdateOne(ctx,
		bson.M{"_id": o.ID},
		bson.M{
			"$set":         bson.M{"title": o.Title, "description": o.Description, "updated_at": now},
			"$setOnInsert": bson.M{"created_at": now},
		},
		options.Update().SetUpsert(true),
	)
	return err
}
