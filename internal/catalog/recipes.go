package catalog

import "github.com/pageza/pantrychef/backend/internal/model"

// All recipes are written for model.BaselineServings.
var defaultRecipes = map[string][]model.Recipe{
	"chicken": {
		{
			Title:       "Chicken Stir-Fry",
			Description: "A quick and delicious stir-fry with chicken, vegetables and soy sauce",
			Ingredients: []model.Ingredient{
				{Item: "chicken breast", Amount: "1", Unit: "pound"},
				{Item: "broccoli", Amount: "2", Unit: "cups"},
				{Item: "soy sauce", Amount: "3", Unit: "tablespoons"},
				{Item: "garlic", Amount: "3", Unit: "cloves"},
				{Item: "ginger", Amount: "1", Unit: "tablespoon"},
			},
			Instructions: []string{
				"Cut chicken into bite-sized pieces",
				"Heat oil in a large wok or skillet",
				"Stir-fry chicken until golden brown",
				"Add garlic and ginger, cook for 1 minute",
				"Add broccoli and stir-fry for 3 minutes",
				"Add soy sauce and cook for 2 more minutes",
				"Serve hot with rice",
			},
			CookingTime: "25 minutes",
			Servings:    "4 servings",
			Difficulty:  model.DifficultyMedium,
			Calories:    "420 calories per serving",
			Tips:        "Use high heat for best results",
		},
		{
			Title:       "Baked Chicken Parmesan",
			Description: "Crispy breaded chicken topped with marinara and melted mozzarella",
			Ingredients: []model.Ingredient{
				{Item: "chicken breasts", Amount: "4", Unit: "pieces"},
				{Item: "breadcrumbs", Amount: "1", Unit: "cup"},
				{Item: "parmesan cheese", Amount: "0.5", Unit: "cup"},
				{Item: "marinara sauce", Amount: "2", Unit: "cups"},
				{Item: "mozzarella", Amount: "1.5", Unit: "cups"},
				{Item: "salt and pepper", Amount: "to taste", Unit: ""},
			},
			Instructions: []string{
				"Preheat oven to 425°F (220°C)",
				"Mix breadcrumbs with parmesan",
				"Coat chicken in the breadcrumb mixture",
				"Bake for 20 minutes",
				"Top with marinara and mozzarella",
				"Bake 10 more minutes until the cheese bubbles",
			},
			CookingTime: "40 minutes",
			Servings:    "4 servings",
			Difficulty:  model.DifficultyMedium,
			Calories:    "510 calories per serving",
			Tips:        "Pound the chicken to an even thickness so it cooks evenly",
		},
		{
			Title:       "Lemon Herb Chicken",
			Description: "Pan-seared chicken thighs with lemon, garlic and fresh herbs",
			Ingredients: []model.Ingredient{
				{Item: "chicken thighs", Amount: "8", Unit: "pieces"},
				{Item: "lemon", Amount: "2", Unit: "whole"},
				{Item: "garlic", Amount: "4", Unit: "cloves"},
				{Item: "thyme", Amount: "1", Unit: "tablespoon"},
				{Item: "olive oil", Amount: "2", Unit: "tablespoons"},
			},
			Instructions: []string{
				"Season chicken with salt, pepper and thyme",
				"Sear skin side down until crisp",
				"Flip and add garlic and lemon slices",
				"Finish in a 400°F (200°C) oven for 15 minutes",
				"Rest 5 minutes before serving",
			},
			CookingTime: "35 minutes",
			Servings:    "4 servings",
			Difficulty:  model.DifficultyEasy,
			Calories:    "390 calories per serving",
		},
	},
	"beef": {
		{
			Title:       "Beef Tacos",
			Description: "Flavorful ground beef tacos with fresh toppings",
			Ingredients: []model.Ingredient{
				{Item: "ground beef", Amount: "1", Unit: "pound"},
				{Item: "taco seasoning", Amount: "1", Unit: "packet"},
				{Item: "tortillas", Amount: "8", Unit: "pieces"},
				{Item: "lettuce", Amount: "1", Unit: "head"},
				{Item: "tomatoes", Amount: "2", Unit: "medium"},
			},
			Instructions: []string{
				"Brown ground beef in a large skillet",
				"Add taco seasoning and water according to packet",
				"Simmer for 5 minutes until thickened",
				"Warm tortillas in a dry skillet",
				"Assemble tacos with beef and toppings",
				"Serve with salsa and sour cream",
			},
			CookingTime: "20 minutes",
			Servings:    "4 servings",
			Difficulty:  model.DifficultyEasy,
			Calories:    "380 calories per serving",
		},
		{
			Title:       "Beef and Broccoli",
			Description: "Tender sliced beef and broccoli in a savory garlic sauce",
			Ingredients: []model.Ingredient{
				{Item: "flank steak", Amount: "1", Unit: "pound"},
				{Item: "broccoli florets", Amount: "4", Unit: "cups"},
				{Item: "soy sauce", Amount: "0.25", Unit: "cup"},
				{Item: "brown sugar", Amount: "2", Unit: "tablespoons"},
				{Item: "cornstarch", Amount: "1", Unit: "tablespoon"},
			},
			Instructions: []string{
				"Slice the beef thinly against the grain",
				"Toss beef with cornstarch",
				"Sear beef in batches and set aside",
				"Steam-fry broccoli until bright green",
				"Return beef with soy sauce and sugar and toss until glossy",
			},
			CookingTime: "25 minutes",
			Servings:    "4 servings",
			Difficulty:  model.DifficultyMedium,
			Calories:    "350 calories per serving",
			Tips:        "Freeze the steak for 20 minutes to make slicing easier",
		},
	},
	"salmon": {
		{
			Title:       "Baked Salmon",
			Description: "Simple and healthy baked salmon with herbs",
			Ingredients: []model.Ingredient{
				{Item: "salmon fillets", Amount: "4", Unit: "pieces"},
				{Item: "lemon", Amount: "1", Unit: "whole"},
				{Item: "olive oil", Amount: "2", Unit: "tablespoons"},
				{Item: "dill", Amount: "2", Unit: "tablespoons"},
				{Item: "salt and pepper", Amount: "to taste", Unit: ""},
			},
			Instructions: []string{
				"Preheat oven to 400°F (200°C)",
				"Place salmon on a baking sheet",
				"Drizzle with olive oil and lemon juice",
				"Sprinkle with dill, salt, and pepper",
				"Bake for 12-15 minutes",
				"Serve with steamed vegetables",
			},
			CookingTime: "15 minutes",
			Servings:    "4 servings",
			Difficulty:  model.DifficultyEasy,
			Calories:    "280 calories per serving",
		},
		{
			Title:       "Teriyaki Salmon Bowl",
			Description: "Glazed salmon over rice with cucumber and sesame",
			Ingredients: []model.Ingredient{
				{Item: "salmon fillets", Amount: "4", Unit: "pieces"},
				{Item: "teriyaki sauce", Amount: "0.5", Unit: "cup"},
				{Item: "cooked rice", Amount: "4", Unit: "cups"},
				{Item: "cucumber", Amount: "1", Unit: "whole"},
				{Item: "sesame seeds", Amount: "1", Unit: "tablespoon"},
			},
			Instructions: []string{
				"Brush salmon with teriyaki sauce",
				"Broil for 8 minutes, basting once",
				"Slice the cucumber",
				"Serve salmon over rice topped with cucumber and sesame",
			},
			CookingTime: "20 minutes",
			Servings:    "4 servings",
			Difficulty:  model.DifficultyEasy,
			Calories:    "520 calories per serving",
		},
	},
	"pasta": {
		{
			Title:       "Creamy Pasta",
			Description: "Rich and creamy pasta with parmesan cheese",
			Ingredients: []model.Ingredient{
				{Item: "pasta", Amount: "1", Unit: "pound"},
				{Item: "heavy cream", Amount: "1", Unit: "cup"},
				{Item: "parmesan cheese", Amount: "1", Unit: "cup"},
				{Item: "garlic", Amount: "3", Unit: "cloves"},
				{Item: "butter", Amount: "2", Unit: "tablespoons"},
			},
			Instructions: []string{
				"Cook pasta according to package directions",
				"Melt butter in a large skillet",
				"Add minced garlic and cook for 1 minute",
				"Add cream and simmer for 3 minutes",
				"Stir in parmesan cheese until melted",
				"Add cooked pasta and toss to coat",
				"Serve with extra parmesan on top",
			},
			CookingTime: "20 minutes",
			Servings:    "4 servings",
			Difficulty:  model.DifficultyEasy,
			Calories:    "450 calories per serving",
		},
		{
			Title:       "Pasta Primavera",
			Description: "Pasta tossed with spring vegetables, olive oil and lemon",
			Ingredients: []model.Ingredient{
				{Item: "penne", Amount: "12", Unit: "ounces"},
				{Item: "zucchini", Amount: "1", Unit: "medium"},
				{Item: "cherry tomatoes", Amount: "1", Unit: "pint"},
				{Item: "peas", Amount: "1", Unit: "cup"},
				{Item: "olive oil", Amount: "3", Unit: "tablespoons"},
			},
			Instructions: []string{
				"Cook penne until al dente",
				"Sauté zucchini in olive oil",
				"Add tomatoes and peas and cook 3 minutes",
				"Toss with pasta and a squeeze of lemon",
			},
			CookingTime: "25 minutes",
			Servings:    "4 servings",
			Difficulty:  model.DifficultyEasy,
			Calories:    "400 calories per serving",
		},
	},
	"tofu": {
		{
			Title:       "Crispy Tofu Stir-Fry",
			Description: "Golden tofu cubes with peppers in a sweet chili glaze",
			Ingredients: []model.Ingredient{
				{Item: "firm tofu", Amount: "14", Unit: "ounces"},
				{Item: "bell peppers", Amount: "2", Unit: "whole"},
				{Item: "sweet chili sauce", Amount: "0.25", Unit: "cup"},
				{Item: "cornstarch", Amount: "2", Unit: "tablespoons"},
			},
			Instructions: []string{
				"Press tofu for 15 minutes and cube it",
				"Toss with cornstarch",
				"Pan-fry until crisp on all sides",
				"Add peppers and chili sauce and toss to coat",
			},
			CookingTime: "30 minutes",
			Servings:    "4 servings",
			Difficulty:  model.DifficultyMedium,
			Calories:    "310 calories per serving",
		},
	},
	"eggs": {
		{
			Title:       "Vegetable Frittata",
			Description: "Fluffy oven-baked eggs with spinach, onion and cheese",
			Ingredients: []model.Ingredient{
				{Item: "eggs", Amount: "8", Unit: "large"},
				{Item: "spinach", Amount: "2", Unit: "cups"},
				{Item: "onion", Amount: "1", Unit: "small"},
				{Item: "cheddar", Amount: "0.5", Unit: "cup"},
			},
			Instructions: []string{
				"Whisk the eggs with salt and pepper",
				"Soften onion and spinach in an oven-safe skillet",
				"Pour in eggs and sprinkle with cheese",
				"Bake at 375°F (190°C) for 15 minutes",
			},
			CookingTime: "25 minutes",
			Servings:    "4 servings",
			Difficulty:  model.DifficultyEasy,
			Calories:    "260 calories per serving",
		},
	},
	"rice": {
		{
			Title:       "Vegetable Fried Rice",
			Description: "Day-old rice fried with vegetables, egg and soy sauce",
			Ingredients: []model.Ingredient{
				{Item: "cooked rice", Amount: "4", Unit: "cups"},
				{Item: "mixed vegetables", Amount: "2", Unit: "cups"},
				{Item: "eggs", Amount: "2", Unit: "large"},
				{Item: "soy sauce", Amount: "3", Unit: "tablespoons"},
				{Item: "green onions", Amount: "3", Unit: "stalks"},
			},
			Instructions: []string{
				"Heat oil in a wok over high heat",
				"Scramble the eggs and set aside",
				"Stir-fry vegetables for 2 minutes",
				"Add rice and press it against the wok until toasted",
				"Return eggs, add soy sauce and green onions",
			},
			CookingTime: "15 minutes",
			Servings:    "4 servings",
			Difficulty:  model.DifficultyEasy,
			Calories:    "340 calories per serving",
			Tips:        "Cold leftover rice fries best",
		},
	},
}
