package service

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/pageza/pantrychef/backend/internal/catalog"
	"github.com/pageza/pantrychef/backend/internal/model"
	"github.com/pageza/pantrychef/backend/internal/observability"
)

// Recipe sources reported to metrics.
const (
	SourceCatalog  = "catalog"
	SourceFallback = "fallback"
)

// Picker chooses an index in [0, n). Tests pin it to make selection
// deterministic.
type Picker interface {
	Intn(n int) int
}

type randomPicker struct{}

func (randomPicker) Intn(n int) int { return rand.Intn(n) }

// MatchRequest is the input of RecipeService.Match.
type MatchRequest struct {
	Ingredients         []string
	DietaryRestrictions []string
	Cuisine             string
	Difficulty          string
	// Servings is the requested serving count; zero or negative means the
	// caller did not ask for scaling.
	Servings int
}

// RecipeService picks a catalog recipe for a list of ingredients, or
// synthesizes a generic one when nothing matches.
type RecipeService struct {
	catalog *catalog.Catalog
	picker  Picker
	metrics *observability.Metrics
	logger  *logrus.Logger
}

// NewRecipeService creates a new RecipeService. A nil picker selects
// uniformly at random.
func NewRecipeService(cat *catalog.Catalog, picker Picker, metrics *observability.Metrics, logger *logrus.Logger) *RecipeService {
	if picker == nil {
		picker = randomPicker{}
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &RecipeService{
		catalog: cat,
		picker:  picker,
		metrics: metrics,
		logger:  logger,
	}
}

// Match returns a recipe for the request. The only failure is an empty
// ingredient list.
func (s *RecipeService) Match(ctx context.Context, req MatchRequest) (*model.Recipe, error) {
	ingredients := cleanIngredients(req.Ingredients)
	if len(ingredients) == 0 {
		return nil, newValidationError("ingredients", "at least one ingredient is required")
	}

	recipe, key, ok := s.fromCatalog(ingredients)
	source := SourceCatalog
	if !ok {
		recipe = fallbackRecipe(ingredients, req.Cuisine, req.Difficulty)
		source = SourceFallback
	}

	// The fallback title echoes the caller's ingredients and is never rewritten.
	if ok && wantsMeatless(req.DietaryRestrictions) {
		applyMeatlessSubstitution(&recipe)
	}
	if req.Servings > 0 {
		scaleRecipe(&recipe, req.Servings)
	}

	s.metrics.RecipeGenerated(source)
	s.logger.WithFields(logrus.Fields{
		"source":      source,
		"keyword":     key,
		"title":       recipe.Title,
		"ingredients": len(ingredients),
	}).Debug("recipe matched")

	return &recipe, nil
}

// fromCatalog scans ingredients in input order for the first exact catalog
// keyword and picks one of its candidates.
func (s *RecipeService) fromCatalog(ingredients []string) (model.Recipe, string, bool) {
	for _, ing := range ingredients {
		key := strings.ToLower(ing)
		candidates, ok := s.catalog.Lookup(key)
		if !ok || len(candidates) == 0 {
			continue
		}
		return candidates[s.picker.Intn(len(candidates))], key, true
	}
	return model.Recipe{}, "", false
}

func cleanIngredients(in []string) []string {
	out := make([]string, 0, len(in))
	for _, ing := range in {
		if ing = strings.TrimSpace(ing); ing != "" {
			out = append(out, ing)
		}
	}
	return out
}

func wantsMeatless(restrictions []string) bool {
	for _, r := range restrictions {
		switch strings.ToLower(strings.TrimSpace(r)) {
		case "vegetarian", "vegan":
			return true
		}
	}
	return false
}

var titleSubstitutions = []struct{ from, to string }{
	{"Chicken", "Tofu"},
	{"Beef", "Tempeh"},
	{"Salmon", "Tofu"},
}

// applyMeatlessSubstitution rewrites title and description only. Ingredients
// and instructions keep the original protein, so the result can read "Tofu"
// in the title while listing chicken breast.
func applyMeatlessSubstitution(r *model.Recipe) {
	hasMeat := false
	for _, sub := range titleSubstitutions {
		if strings.Contains(r.Title, sub.from) {
			hasMeat = true
			break
		}
	}
	if !hasMeat {
		return
	}
	for _, sub := range titleSubstitutions {
		r.Title = strings.ReplaceAll(r.Title, sub.from, sub.to)
		r.Description = strings.ReplaceAll(r.Description, strings.ToLower(sub.from), strings.ToLower(sub.to))
	}
}

// scaleRecipe multiplies numeric amounts by servings/BaselineServings,
// rounded to one decimal. Scaling to the baseline is the identity.
func scaleRecipe(r *model.Recipe, servings int) {
	if servings == model.BaselineServings {
		return
	}
	multiplier := float64(servings) / float64(model.BaselineServings)
	for i, ing := range r.Ingredients {
		amount, ok := parseAmount(ing.Amount)
		if !ok {
			continue
		}
		r.Ingredients[i].Amount = formatAmount(amount * multiplier)
	}
	r.Servings = fmt.Sprintf("%d servings", servings)
}

func parseAmount(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(math.Round(v*10)/10, 'f', -1, 64)
}

var fallbackSteps = []string{
	"Wash and prepare all of your ingredients",
	"Chop everything into bite-sized pieces",
	"Heat a little oil in a large pan over medium heat",
	"Cook the ingredients until tender, stirring occasionally",
	"Season to taste and serve hot",
}

func fallbackRecipe(ingredients []string, cuisine, difficulty string) model.Recipe {
	items := make([]model.Ingredient, 0, len(ingredients))
	for _, ing := range ingredients {
		items = append(items, model.Ingredient{Item: ing, Amount: "1", Unit: "portion"})
	}

	description := "A simple dish made with the ingredients you have on hand"
	if c := strings.TrimSpace(cuisine); c != "" {
		description = fmt.Sprintf("A simple %s-style dish made with the ingredients you have on hand", c)
	}

	return model.Recipe{
		Title:        strings.Join(ingredients, ", ") + " Recipe",
		Description:  description,
		Ingredients:  items,
		Instructions: append([]string(nil), fallbackSteps...),
		CookingTime:  "30 minutes",
		Servings:     fmt.Sprintf("%d servings", model.BaselineServings),
		Difficulty:   normalizeDifficulty(difficulty),
		Calories:     "350 calories per serving",
		Tips:         "Adjust cooking times to the ingredients you are using",
	}
}

func normalizeDifficulty(d string) string {
	switch d = strings.ToLower(strings.TrimSpace(d)); d {
	case model.DifficultyEasy, model.DifficultyMedium, model.DifficultyHard:
		return d
	default:
		return model.DifficultyMedium
	}
}
