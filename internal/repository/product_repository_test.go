package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	"homechef/internal/models"
)

func TestBuildListFilter_Base(t *testing.T) {
	filter := buildListFilter(ListQuery{Page: 1, Limit: 20})

	// Only discoverable products are ever listed.
	assert.Equal(t, bson.M{
		"isActive":                 true,
		"availability.isAvailable": true,
	}, filter)
}

func TestBuildListFilter_AllSentinel(t *testing.T) {
	filter := buildListFilter(ListQuery{Category: "All", Cuisine: "All"})

	assert.NotContains(t, filter, "category")
	assert.NotContains(t, filter, "cuisine")
}

func TestBuildListFilter_Equality(t *testing.T) {
	filter := buildListFilter(ListQuery{Category: "Desserts", Cuisine: "French"})

	assert.Equal(t, "Desserts", filter["category"])
	assert.Equal(t, "French", filter["cuisine"])
	assert.Equal(t, true, filter["isActive"])
}

func TestBuildListFilter_Search(t *testing.T) {
	filter := buildListFilter(ListQuery{Search: "laksa"})

	assert.Equal(t, bson.M{"$search": "laksa"}, filter["$text"])
}

func TestListSort_RatingThenNewest(t *testing.T) {
	sort := listSort()

	assert.Equal(t, bson.D{
		{Key: "rating.average", Value: -1},
		{Key: "createdAt", Value: -1},
	}, sort)
}

func TestBuildUpdateDoc_PartialFields(t *testing.T) {
	name := "Rendang"
	price := 18.0
	doc := buildUpdateDoc(&models.ProductUpdate{Name: &name, Price: &price})

	assert.Equal(t, bson.M{"name": "Rendang", "price": 18.0}, doc)
}

func TestBuildUpdateDoc_Empty(t *testing.T) {
	assert.Empty(t, buildUpdateDoc(&models.ProductUpdate{}))
}

func TestBuildUpdateDoc_AvailabilityDottedPaths(t *testing.T) {
	available := false
	days := 3
	doc := buildUpdateDoc(&models.ProductUpdate{
		Availability: &models.AvailabilityUpdate{
			IsAvailable:      &available,
			AdvanceOrderDays: &days,
		},
	})

	assert.Equal(t, false, doc["availability.isAvailable"])
	assert.Equal(t, 3, doc["availability.advanceOrderDays"])
	// Sibling availability fields must not be clobbered.
	assert.NotContains(t, doc, "availability")
	assert.NotContains(t, doc, "availability.maxOrdersPerDay")
}

func TestBuildUpdateDoc_NoServerOwnedFields(t *testing.T) {
	active := false
	tags := []string{"halal"}
	doc := buildUpdateDoc(&models.ProductUpdate{IsActive: &active, Tags: tags})

	for _, protected := range []string{"_id", "rating", "orders", "createdAt", "chefId"} {
		assert.NotContains(t, doc, protected)
	}
	assert.Equal(t, false, doc["isActive"])
}
