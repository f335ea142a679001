package recipes

// Recipe is the payload shape for POST /api/recipes.
type Recipe struct {
	Name        string       `json:"name"`
	Steps       string       `json:"steps"`
	Ingredients []Ingredient `json:"ingredients"`
}

// Ingredient is a single entry in a recipe's ingredient list. Unit carries a
// short unit code ("g", "ml", "pcs") rather than a display name.
type Ingredient struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// SamplePlanDate is the fixed date used by the weekly-plan demo call,
// in YYYY-MM-DD form.
const SamplePlanDate = "2025-01-06"

// SampleRecipe returns the fixed recipe used by the create-recipe demo call.
// The payload is static demo data, not user editable.
func SampleRecipe() Recipe {
	return Recipe{
		Name:  "Tomato Soup",
		Steps: "Dice the onion and soften it in olive oil. Add tomatoes and stock, simmer for 20 minutes, then blend until smooth.",
		Ingredients: []Ingredient{
			{Name: "tomato", Quantity: 6, Unit: "pcs"},
			{Name: "onion", Quantity: 1, Unit: "pcs"},
			{Name: "olive oil", Quantity: 30, Unit: "ml"},
			{Name: "vegetable stock", Quantity: 500, Unit: "ml"},
		},
	}
}
