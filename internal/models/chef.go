package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Chef is the seller entity. Products reference it by id; only the
// fields needed for catalog projections live here.
type Chef struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	BusinessName string             `json:"businessName" bson:"businessName"`
	Rating       Rating             `json:"rating" bson:"rating"`
	ServiceArea  []string           `json:"serviceArea" bson:"serviceArea"`
	IsActive     bool               `json:"isActive" bson:"isActive"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// ChefSummary is the projection embedded in catalog list results.
type ChefSummary struct {
	BusinessName string `json:"businessName" bson:"businessName"`
	Rating       Rating `json:"rating" bson:"rating"`
}

// ChefDetail is the larger projection returned with a single product.
type ChefDetail struct {
	BusinessName string   `json:"businessName" bson:"businessName"`
	Rating       Rating   `json:"rating" bson:"rating"`
	ServiceArea  []string `json:"serviceArea" bson:"serviceArea"`
}

func (c *Chef) Summary() ChefSummary {
	return ChefSummary{BusinessName: c.BusinessName, Rating: c.Rating}
}

func (c *Chef) Detail() ChefDetail {
	return ChefDetail{BusinessName: c.BusinessName, Rating: c.Rating, ServiceArea: c.ServiceArea}
}
