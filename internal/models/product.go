package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is a single sellable food listing owned by a chef.
// Field names follow the public API's camelCase wire format.
type Product struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ChefID          primitive.ObjectID `json:"chefId" bson:"chefId"`
	Name            string             `json:"name" bson:"name"`
	Description     string             `json:"description" bson:"description"`
	Category        string             `json:"category" bson:"category"`
	Cuisine         string             `json:"cuisine" bson:"cuisine"`
	Images          []string           `json:"images" bson:"images"`
	Price           float64            `json:"price" bson:"price"`
	Servings        int                `json:"servings" bson:"servings"`
	PrepTime        int                `json:"prepTime" bson:"prepTime"`
	CookTime        int                `json:"cookTime" bson:"cookTime"`
	Difficulty      string             `json:"difficulty" bson:"difficulty"`
	Ingredients     []Ingredient       `json:"ingredients" bson:"ingredients"`
	NutritionalInfo *NutritionalInfo   `json:"nutritionalInfo,omitempty" bson:"nutritionalInfo,omitempty"`
	Tags            []string           `json:"tags" bson:"tags"`
	Dietary         []string           `json:"dietary" bson:"dietary"`
	SpiceLevel      string             `json:"spiceLevel" bson:"spiceLevel"`
	Instructions    []string           `json:"instructions" bson:"instructions"`
	Availability    Availability       `json:"availability" bson:"availability"`
	Rating          Rating             `json:"rating" bson:"rating"`
	Orders          OrderStats         `json:"orders" bson:"orders"`
	IsActive        bool               `json:"isActive" bson:"isActive"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type Ingredient struct {
	Name      string   `json:"name" bson:"name" validate:"required"`
	Quantity  string   `json:"quantity" bson:"quantity" validate:"required"`
	Allergens []string `json:"allergens,omitempty" bson:"allergens,omitempty"`
}

type NutritionalInfo struct {
	Calories float64 `json:"calories" bson:"calories" validate:"gte=0"`
	Protein  float64 `json:"protein" bson:"protein" validate:"gte=0"`
	Carbs    float64 `json:"carbs" bson:"carbs" validate:"gte=0"`
	Fat      float64 `json:"fat" bson:"fat" validate:"gte=0"`
	Fiber    float64 `json:"fiber" bson:"fiber" validate:"gte=0"`
	Sugar    float64 `json:"sugar" bson:"sugar" validate:"gte=0"`
}

type Availability struct {
	IsAvailable      bool `json:"isAvailable" bson:"isAvailable"`
	MaxOrdersPerDay  int  `json:"maxOrdersPerDay" bson:"maxOrdersPerDay"`
	AdvanceOrderDays int  `json:"advanceOrderDays" bson:"advanceOrderDays"`
}

type Rating struct {
	Average float64 `json:"average" bson:"average"`
	Count   int     `json:"count" bson:"count"`
}

type OrderStats struct {
	Total     int `json:"total" bson:"total"`
	ThisWeek  int `json:"thisWeek" bson:"thisWeek"`
	ThisMonth int `json:"thisMonth" bson:"thisMonth"`
}

// ProductInput is the create payload. Server-owned fields (id, rating,
// orders, timestamps) are deliberately absent; booleans that default to
// true are pointers so an omitted value is distinguishable from false.
type ProductInput struct {
	ChefID          string             `json:"chefId" validate:"required"`
	Name            string             `json:"name" validate:"required,max=100"`
	Description     string             `json:"description" validate:"required,max=1000"`
	Category        string             `json:"category" validate:"required,category"`
	Cuisine         string             `json:"cuisine" validate:"required,cuisine"`
	Images          []string           `json:"images" validate:"required,min=1,dive,required"`
	Price           float64            `json:"price" validate:"gt=0"`
	Servings        int                `json:"servings" validate:"min=1"`
	PrepTime        int                `json:"prepTime" validate:"min=1"`
	CookTime        int                `json:"cookTime" validate:"min=1"`
	Difficulty      string             `json:"difficulty" validate:"required,difficulty"`
	Ingredients     []Ingredient       `json:"ingredients" validate:"omitempty,dive"`
	NutritionalInfo *NutritionalInfo   `json:"nutritionalInfo" validate:"omitempty"`
	Tags            []string           `json:"tags"`
	Dietary         []string           `json:"dietary" validate:"omitempty,dive,dietary"`
	SpiceLevel      string             `json:"spiceLevel" validate:"omitempty,spicelevel"`
	Instructions    []string           `json:"instructions" validate:"required,min=1,dive,required"`
	Availability    *AvailabilityInput `json:"availability" validate:"required"`
	IsActive        *bool              `json:"isActive"`
}

type AvailabilityInput struct {
	IsAvailable      *bool `json:"isAvailable"`
	MaxOrdersPerDay  int   `json:"maxOrdersPerDay" validate:"min=1"`
	AdvanceOrderDays int   `json:"advanceOrderDays" validate:"min=0,max=7"`
}

// ToProduct materializes the input into a persistable entity, applying
// the schema defaults. Identity, aggregates and timestamps are left for
// the repository to assign.
func (in *ProductInput) ToProduct(chefID primitive.ObjectID) *Product {
	p := &Product{
		ChefID:          chefID,
		Name:            in.Name,
		Description:     in.Description,
		Category:        in.Category,
		Cuisine:         in.Cuisine,
		Images:          in.Images,
		Price:           in.Price,
		Servings:        in.Servings,
		PrepTime:        in.PrepTime,
		CookTime:        in.CookTime,
		Difficulty:      in.Difficulty,
		Ingredients:     in.Ingredients,
		NutritionalInfo: in.NutritionalInfo,
		Tags:            in.Tags,
		Dietary:         in.Dietary,
		SpiceLevel:      in.SpiceLevel,
		Instructions:    in.Instructions,
		Availability: Availability{
			IsAvailable:      true,
			MaxOrdersPerDay:  in.Availability.MaxOrdersPerDay,
			AdvanceOrderDays: in.Availability.AdvanceOrderDays,
		},
		IsActive: true,
	}

	if p.SpiceLevel == "" {
		p.SpiceLevel = DefaultSpiceLevel
	}
	if in.Availability.IsAvailable != nil {
		p.Availability.IsAvailable = *in.Availability.IsAvailable
	}
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}
	return p
}

// ProductUpdate is the partial update payload. Only non-nil fields are
// written; aggregates and timestamps cannot be touched through it.
type ProductUpdate struct {
	Name            *string             `json:"name,omitempty" validate:"omitempty,max=100"`
	Description     *string             `json:"description,omitempty" validate:"omitempty,max=1000"`
	Category        *string             `json:"category,omitempty" validate:"omitempty,category"`
	Cuisine         *string             `json:"cuisine,omitempty" validate:"omitempty,cuisine"`
	Images          []string            `json:"images,omitempty" validate:"omitempty,min=1,dive,required"`
	Price           *float64            `json:"price,omitempty" validate:"omitempty,gt=0"`
	Servings        *int                `json:"servings,omitempty" validate:"omitempty,min=1"`
	PrepTime        *int                `json:"prepTime,omitempty" validate:"omitempty,min=1"`
	CookTime        *int                `json:"cookTime,omitempty" validate:"omitempty,min=1"`
	Difficulty      *string             `json:"difficulty,omitempty" validate:"omitempty,difficulty"`
	Ingredients     []Ingredient        `json:"ingredients,omitempty" validate:"omitempty,dive"`
	NutritionalInfo *NutritionalInfo    `json:"nutritionalInfo,omitempty" validate:"omitempty"`
	Tags            []string            `json:"tags,omitempty"`
	Dietary         []string            `json:"dietary,omitempty" validate:"omitempty,dive,dietary"`
	SpiceLevel      *string             `json:"spiceLevel,omitempty" validate:"omitempty,spicelevel"`
	Instructions    []string            `json:"instructions,omitempty" validate:"omitempty,min=1,dive,required"`
	Availability    *AvailabilityUpdate `json:"availability,omitempty" validate:"omitempty"`
	IsActive        *bool               `json:"isActive,omitempty"`
}

type AvailabilityUpdate struct {
	IsAvailable      *bool `json:"isAvailable,omitempty"`
	MaxOrdersPerDay  *int  `json:"maxOrdersPerDay,omitempty" validate:"omitempty,min=1"`
	AdvanceOrderDays *int  `json:"advanceOrderDays,omitempty" validate:"omitempty,min=0,max=7"`
}
