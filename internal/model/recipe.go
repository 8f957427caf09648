package model

// Difficulty levels a recipe can carry.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// BaselineServings is the serving count every catalog recipe is written for.
const BaselineServings = 4

// Ingredient is a single line of a recipe's ingredient list. Amount is kept as
// a string because some amounts are not numbers ("to taste").
type Ingredient struct {
	Item   string `json:"item"`
	Amount string `json:"amount"`
	Unit   string `json:"unit"`
}

type Recipe struct {
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Ingredients  []Ingredient `json:"ingredients"`
	Instructions []string     `json:"instructions"`
	CookingTime  string       `json:"cookingTime"`
	Servings     string       `json:"servings"`
	Difficulty   string       `json:"difficulty"`
	Calories     string       `json:"calories"`
	Tips         string       `json:"tips,omitempty"`
}

// Clone returns a deep copy of the recipe.
func (r Recipe) Clone() Recipe {
	out := r
	out.Ingredients = append([]Ingredient(nil), r.Ingredients...)
	out.Instructions = append([]string(nil), r.Instructions...)
	return out
}
