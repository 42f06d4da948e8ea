package repo

import (
	"context"
	"errors"
	"time"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MazeRepo handles the persistence of maze records.
type MazeRepo struct {
	collection *mongo.Collection
}

// NewMazeRepo creates a new MazeRepo with the given MongoDB client, database name, and collection name.
func NewMazeRepo(client *mongo.Client, dbName, collectionName string) *MazeRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &MazeRepo{
		collection: collection,
	}
}

// Save inserts or updates a maze in the repository.
func (r *MazeRepo) Save(ctx context.Context, m *dmn.MazeRecord) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	filter := bson.M{"_id": m.ID}
	update := bson.M{
		"$set": bson.M{
			"rows":      m.Rows,
			"width":     m.Width,
			"height":    m.Height,
			"digest":    m.Digest,
			"createdAt": m.CreatedAt,
			"updatedAt": time.Now(),
		},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := r.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return errors.New("unexpected error: " + err.Error())
	}

	return nil
}

// ByID retrieves a maze by its ID.
// Returns dmn.ErrMazeNotFound if the maze is not found.
func (r *MazeRepo) ByID(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	filter := bson.M{"_id": id}
	var m dmn.MazeRecord
	if err := r.collection.FindOne(ctx, filter).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, dmn.ErrMazeNotFound
		}
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return &m, nil
}
