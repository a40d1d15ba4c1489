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

type playlistStore struct {
	coll *mongo.Collection
}

func NewPlaylistStore(coll *mongo.Collection) PlaylistStore {
	return &playlistStore{coll: coll}
}

func playlistID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, models.ErrNotFound
	}
	return oid, nil
}

func (ps *playlistStore) Insert(ctx context.Context, p models.Playlist) (string, error) {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	if _, err := ps.coll.InsertOne(ctx, p); err != nil {
		return "", err
	}
	return p.ID.Hex(), nil
}

func (ps *playlistStore) Get(ctx context.Context, id string) (*models.Playlist, error) {
	oid, err := playlistID(id)
	if err != nil {
		return nil, err
	}

	var p models.Playlist
	err = ps.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (ps *playlistStore) Replace(ctx context.Context, id string, p models.Playlist) error {
	oid, err := playlistID(id)
	if err != nil {
		return err
	}

	p.ID = oid
	res, err := ps.coll.ReplaceOne(ctx, bson.M{"_id": oid}, p)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (ps *playlistStore) Delete(ctx context.Context, id string) error {
	oid, err := playlistID(id)
	if err != nil {
		return err
	}

	res, err := ps.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (ps *playlistStore) Scan(ctx context.Context, f PlaylistFilter, offset int64) ([]models.Playlist, error) {
	filter := bson.M{}
	if f.Owner != nil {
		filter["owner"] = *f.Owner
	}
	if f.Public != nil {
		filter["public"] = *f.Public
	}

	opts := options.Find().SetSkip(offset)
	cursor, err := ps.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var playlists []models.Playlist
	if err := cursor.All(ctx, &playlists); err != nil {
		return nil, err
	}
	return playlists, nil
}

func (ps *playlistStore) ScanAll(ctx context.Context) ([]models.Playlist, error) {
	return ps.Scan(ctx, PlaylistFilter{}, 0)
}
