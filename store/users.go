package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Korux/SnP-REST-API/models"
)

type userStore struct {
	coll *mongo.Collection
}

func NewUserStore(coll *mongo.Collection) UserStore {
	return &userStore{coll: coll}
}

func (us *userStore) Insert(ctx context.Context, u models.User) error {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	_, err := us.coll.InsertOne(ctx, u)
	return err
}

func (us *userStore) GetByUID(ctx context.Context, uid string) (*models.User, error) {
	var u models.User
	err := us.coll.FindOne(ctx, bson.M{"uid": uid}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (us *userStore) Scan(ctx context.Context, offset, limit int64) ([]models.User, error) {
	opts := options.Find().SetSkip(offset).SetLimit(limit)
	cursor, err := us.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}
