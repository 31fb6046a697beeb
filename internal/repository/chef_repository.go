package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"homechef/internal/models"
)

type ChefRepository interface {
	FindByID(ctx context.Context, id string) (*models.Chef, error)
	Summaries(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.ChefSummary, error)
}

type mongoChefRepository struct {
	collection *mongo.Collection
}

func NewChefRepository(db *mongo.Database) ChefRepository {
	return &mongoChefRepository{
		collection: db.Collection("chefs"),
	}
}

func (r *mongoChefRepository) FindByID(ctx context.Context, id string) (*models.Chef, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var chef models.Chef
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&chef)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &chef, nil
}

// Summaries resolves a batch of chef ids to their list projection in a
// single query. Missing chefs are simply absent from the result map.
func (r *mongoChefRepository) Summaries(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.ChefSummary, error) {
	summaries := make(map[primitive.ObjectID]models.ChefSummary, len(ids))
	if len(ids) == 0 {
		return summaries, nil
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetProjection(bson.M{
		"businessName": 1,
		"rating":       1,
	})

	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var chefs []models.Chef
	if err := cursor.All(ctx, &chefs); err != nil {
		return nil, err
	}

	for i := range chefs {
		summaries[chefs[i].ID] = chefs[i].Summary()
	}

	return summaries, nil
}
