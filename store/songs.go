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

type songStore struct {
	coll *mongo.Collection
}

func NewSongStore(coll *mongo.Collection) SongStore {
	return &songStore{coll: coll}
}

// songID parses a path id. Anything that is not a valid object id cannot
// name a stored song, so it maps to ErrNotFound rather than a 400.
func songID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, models.ErrNotFound
	}
	return oid, nil
}

func (ss *songStore) Insert(ctx context.Context, s models.Song) (string, error) {
	if s.ID.IsZero() {
		s.ID = primitive.NewObjectID()
	}
	if _, err := ss.coll.InsertOne(ctx, s); err != nil {
		return "", err
	}
	return s.ID.Hex(), nil
}

func (ss *songStore) Get(ctx context.Context, id string) (*models.Song, error) {
	oid, err := songID(id)
	if err != nil {
		return nil, err
	}

	var s models.Song
	err = ss.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (ss *songStore) Replace(ctx context.Context, id string, s models.Song) error {
	oid, err := songID(id)
	if err != nil {
		return err
	}

	s.ID = oid
	res, err := ss.coll.ReplaceOne(ctx, bson.M{"_id": oid}, s)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (ss *songStore) Delete(ctx context.Context, id string) error {
	oid, err := songID(id)
	if err != nil {
		return err
	}

	res, err := ss.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (ss *songStore) Scan(ctx context.Context, offset int64) ([]models.Song, error) {
	opts := options.Find().SetSkip(offset)
	cursor, err := ss.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var songs []models.Song
	if err := cursor.All(ctx, &songs); err != nil {
		return nil, err
	}
	return songs, nil
}

func (ss *songStore) ScanAll(ctx context.Context) ([]models.Song, error) {
	return ss.Scan(ctx, 0)
}
