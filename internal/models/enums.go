package models

// Closed vocabularies for the enumerated product fields. Anything
// outside these sets is rejected at validation time.

var Categories = []string{
	"Appetizers", "Main Course", "Desserts", "Soups", "Salads",
	"Beverages", "Snacks", "Breakfast", "Lunch", "Dinner",
}

var Cuisines = []string{
	"Italian", "Chinese", "Indian", "Malay", "Mexican", "American", "Japanese",
	"Thai", "French", "Korean", "Mediterranean", "Greek", "Spanish",
	"Vietnamese", "Lebanese", "Moroccan", "Indonesian", "Hong Kong", "Taiwanese",
	"Health Food", "Fusion", "Other",
}

var DietaryOptions = []string{
	"Vegetarian", "Vegan", "Gluten-Free", "Dairy-Free", "Nut-Free",
	"Soy-Free", "Egg-Free", "Keto", "Paleo", "Low-Carb", "High-Protein",
}

var Difficulties = []string{"Easy", "Medium", "Hard"}

var SpiceLevels = []string{"Mild", "Medium", "Hot", "Very Hot"}

// DefaultSpiceLevel applies when a product is created without one.
const DefaultSpiceLevel = "Mild"

var (
	categorySet   = toSet(Categories)
	cuisineSet    = toSet(Cuisines)
	dietarySet    = toSet(DietaryOptions)
	difficultySet = toSet(Difficulties)
	spiceLevelSet = toSet(SpiceLevels)
)

func IsValidCategory(v string) bool   { return categorySet[v] }
func IsValidCuisine(v string) bool    { return cuisineSet[v] }
func IsValidDietary(v string) bool    { return dietarySet[v] }
func IsValidDifficulty(v string) bool { return difficultySet[v] }
func IsValidSpiceLevel(v string) bool { return spiceLevelSet[v] }

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
