package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pageza/pantrychef/backend/internal/service"
)

type RecipeHandler struct {
	recipes service.IRecipeService
	logger  *logrus.Logger
}

func NewRecipeHandler(recipes service.IRecipeService, logger *logrus.Logger) *RecipeHandler {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &RecipeHandler{
		recipes: recipes,
		logger:  logger,
	}
}

// RegisterRoutes mounts the recipe endpoints. limit runs before generation.
func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup, limit gin.HandlerFunc) {
	router.POST("/generate-recipe", limit, h.GenerateRecipe)
}

// GenerateRecipe returns a catalog or synthesized recipe for the given
// ingredients.
func (h *RecipeHandler) GenerateRecipe(c *gin.Context) {
	var req GenerateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(invalidBody(err))
		return
	}

	recipe, err := h.recipes.Match(c.Request.Context(), service.MatchRequest{
		Ingredients:         req.Ingredients,
		DietaryRestrictions: req.DietaryRestrictions,
		Cuisine:             req.Cuisine,
		Difficulty:          req.Difficulty,
		Servings:            req.Servings,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, recipe)
}
