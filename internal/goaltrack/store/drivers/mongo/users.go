package mongo

import (
	"context"
	"time"

	"github.com/strivehq/goaltrack/internal/goaltrack/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type usersRepo struct {
	col *mongo.Collection
}

type userDoc struct {
	ID           string    `bson:"_id"`
	Username     string    `bson:"username"`
	Email        string    `bson:"email"`
	PasswordHash string    `bson:"password_hash"`
	Privilege    string    `bson:"privilege"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

func (d userDoc) toDomain() domain.User {
	return domain.User{
		ID:           d.ID,
		Username:     d.Username,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		Privilege:    domain.Privilege(d.Privilege),
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	var doc userDoc
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return doc.toDomain(), nil
}

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	var doc userDoc
	err := r.col.FindOne(ctx, bson.M{"username": username}).Decode(&doc)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return doc.toDomain(), nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	now := nowUTC()
	_, err := r.col.InsertOne(ctx, userDoc{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Privilege:    string(u.Privilege),
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	return mapConflict(err)
}

func (r *usersRepo) UpdatePasswordHash(ctx context.Context, userID string, newHash string) error {
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": userID}, bson.M{
		"$set": bson.M{"password_hash": newHash, "updated_at": nowUTC()},
	})
	if err != nil {
		return err
	}
	return requireMatched(res.MatchedCount)
}
