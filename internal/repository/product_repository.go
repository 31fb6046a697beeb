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

// ErrNotFound is returned when an id resolves to no document.
var ErrNotFound = errors.New("not found")

// ListQuery carries the catalog list parameters. The "All" sentinel on
// category/cuisine means no filter, matching what the storefront sends.
type ListQuery struct {
	Category string
	Cuisine  string
	Search   string
	Page     int
	Limit    int
}

type ProductRepository interface {
	List(ctx context.Context, q ListQuery) ([]models.Product, int64, error)
	FindByID(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, id string, update *models.ProductUpdate) (*models.Product, error)
	Delete(ctx context.Context, id string) error
}

type mongoProductRepository struct {
	collection *mongo.Collection
}

func NewProductRepository(db *mongo.Database) ProductRepository {
	return &mongoProductRepository{
		collection: db.Collection("products"),
	}
}

// List returns one page of discoverable products plus the total match count.
func (r *mongoProductRepository) List(ctx context.Context, q ListQuery) ([]models.Product, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := buildListFilter(q)

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	findOptions := options.Find().
		SetSort(listSort()).
		SetSkip(int64((q.Page - 1) * q.Limit)).
		SetLimit(int64(q.Limit))

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	products := make([]models.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

// FindByID fetches a product regardless of its active/available state,
// so owners and admins can still see delisted items.
func (r *mongoProductRepository) FindByID(ctx context.Context, id string) (*models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var product models.Product
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &product, nil
}

func (r *mongoProductRepository) Create(ctx context.Context, product *models.Product) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now().UTC()
	product.ID = primitive.NewObjectID()
	product.Rating = models.Rating{}
	product.Orders = models.OrderStats{}
	product.CreatedAt = now
	product.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, product)
	return err
}

// Update applies the non-nil fields of the payload and returns the
// fully updated document.
func (r *mongoProductRepository) Update(ctx context.Context, id string, update *models.ProductUpdate) (*models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	set := buildUpdateDoc(update)
	set["updatedAt"] = time.Now().UTC()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var product models.Product
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": objID}, bson.M{"$set": set}, opts).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &product, nil
}

func (r *mongoProductRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	err = r.collection.FindOneAndDelete(ctx, bson.M{"_id": objID}).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return err
	}

	return nil
}

// buildListFilter restricts the catalog to discoverable products and
// layers the optional equality and text filters on top.
func buildListFilter(q ListQuery) bson.M {
	filter := bson.M{
		"isActive":                 true,
		"availability.isAvailable": true,
	}

	if q.Category != "" && q.Category != "All" {
		filter["category"] = q.Category
	}
	if q.Cuisine != "" && q.Cuisine != "All" {
		filter["cuisine"] = q.Cuisine
	}
	if q.Search != "" {
		filter["$text"] = bson.M{"$search": q.Search}
	}

	return filter
}

// listSort orders by rating first, then newest among equal ratings.
func listSort() bson.D {
	return bson.D{
		{Key: "rating.average", Value: -1},
		{Key: "createdAt", Value: -1},
	}
}

// buildUpdateDoc maps the non-nil update fields onto their stored paths.
// Availability fields use dotted paths so a partial availability update
// does not clobber its siblings.
func buildUpdateDoc(u *models.ProductUpdate) bson.M {
	set := bson.M{}

	if u.Name != nil {
		set["name"] = *u.Name
	}
	if u.Description != nil {
		set["description"] = *u.Description
	}
	if u.Category != nil {
		set["category"] = *u.Category
	}
	if u.Cuisine != nil {
		set["cuisine"] = *u.Cuisine
	}
	if u.Images != nil {
		set["images"] = u.Images
	}
	if u.Price != nil {
		set["price"] = *u.Price
	}
	if u.Servings != nil {
		set["servings"] = *u.Servings
	}
	if u.PrepTime != nil {
		set["prepTime"] = *u.PrepTime
	}
	if u.CookTime != nil {
		set["cookTime"] = *u.CookTime
	}
	if u.Difficulty != nil {
		set["difficulty"] = *u.Difficulty
	}
	if u.Ingredients != nil {
		set["ingredients"] = u.Ingredients
	}
	if u.NutritionalInfo != nil {
		set["nutritionalInfo"] = u.NutritionalInfo
	}
	if u.Tags != nil {
		set["tags"] = u.Tags
	}
	if u.Dietary != nil {
		set["dietary"] = u.Dietary
	}
	if u.SpiceLevel != nil {
		set["spiceLevel"] = *u.SpiceLevel
	}
	if u.Instructions != nil {
		set["instructions"] = u.Instructions
	}
	if u.Availability != nil {
		if u.Availability.IsAvailable != nil {
			set["availability.isAvailable"] = *u.Availability.IsAvailable
		}
		if u.Availability.MaxOrdersPerDay != nil {
			set["availability.maxOrdersPerDay"] = *u.Availability.MaxOrdersPerDay
		}
		if u.Availability.AdvanceOrderDays != nil {
			set["availability.advanceOrderDays"] = *u.Availability.AdvanceOrderDays
		}
	}
	if u.IsActive != nil {
		set["isActive"] = *u.IsActive
	}

	return set
}

// EnsureProductIndexes creates the text index backing search plus the
// secondary indexes the catalog queries rely on.
func EnsureProductIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{
			{Key: "name", Value: "text"},
			{Key: "description", Value: "text"},
			{Key: "tags", Value: "text"},
		}},
		{Keys: bson.D{{Key: "chefId", Value: 1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "cuisine", Value: 1}}},
		{Keys: bson.D{{Key: "tags", Value: 1}}},
		{Keys: bson.D{{Key: "dietary", Value: 1}}},
		{Keys: bson.D{{Key: "rating.average", Value: -1}}},
		{Keys: bson.D{{Key: "price", Value: 1}}},
		{Keys: bson.D{{Key: "availability.isAvailable", Value: 1}}},
		{Keys: bson.D{{Key: "isActive", Value: 1}}},
	}

	_, err := db.Collection("products").Indexes().CreateMany(ctx, indexes)
	return err
}
