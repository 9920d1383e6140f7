package recipes

import (
	"encoding/json"
	"log"
)

// Built-in offline dataset used whenever the remote source is not
// configured or not reachable. Field shapes are deliberately uneven
// (string ingredients, missing categories, numeric ids) so the dataset
// exercises the same normalization path remote data does.
const mockJSON = `[
  {
    "id": 1,
    "title": "Paneer Tikka Bowl",
    "description": "Charred paneer cubes over spiced rice.",
    "ingredients": ["paneer", "yogurt", "rice", "capsicum"],
    "steps": ["Marinate paneer", "Grill", "Serve over rice"],
    "tags": ["vegetarian", "grill"],
    "category": "Veg",
    "difficulty": "Medium",
    "cookingTime": 35,
    "calories": 520,
    "protein": 24,
    "dietTags": ["high-protein", "gluten-free"]
  },
  {
    "id": 2,
    "title": "Lemon Ginger Smoothie",
    "description": "Bright, cold and quick.",
    "ingredients": "lemon, ginger, banana, ice",
    "steps": "Blend everything until smooth",
    "tags": ["smoothie", "breakfast"],
    "cookingTime": 5,
    "calories": 180,
    "dietTags": ["vegan"]
  },
  {
    "id": 3,
    "title": "Chocolate Lava Cake",
    "description": "Molten center, crisp shell.",
    "ingredients": { "items": ["dark chocolate", "butter", "eggs", "flour", "sugar"] },
    "steps": ["Melt chocolate", "Fold batter", "Bake 12 minutes"],
    "tags": ["cake", "sweet"],
    "difficulty": "Hard",
    "cookingTime": 25,
    "calories": 640
  },
  {
    "id": 4,
    "title": "Grilled Chicken Salad",
    "description": "Lean grilled chicken over crunchy greens.",
    "ingredients": ["chicken breast", "lettuce", "olive oil", "lemon"],
    "steps": ["Grill chicken", "Toss with greens"],
    "tags": ["chicken", "salad"],
    "difficulty": "Easy",
    "cookingTime": 20,
    "calories": 340,
    "protein": 32,
    "dietTags": ["keto", "high-protein"]
  },
  {
    "id": 5,
    "title": "Masala Chai",
    "description": "Slow-simmered spiced tea.",
    "ingredients": "black tea, milk, cardamom, ginger",
    "tags": ["drink", "hot"],
    "difficulty": "Easy",
    "cookingTime": 10,
    "calories": 120
  },
  {
    "id": 6,
    "title": "Quick Hummus Toast",
    "description": "Snack-ready toast with lemony hummus.",
    "ingredients": ["bread", "hummus", "olive oil", "paprika"],
    "steps": ["Toast bread", "Spread hummus"],
    "tags": ["snack", "vegan"],
    "difficulty": "Easy",
    "cookingTime": 8,
    "calories": 260,
    "protein": 9,
    "dietTags": ["vegan"]
  }
]`

// MockRecipes decodes the embedded dataset into raw records. The mock
// data ships inside the binary, so a decode failure is a programmer
// error; it degrades to an empty slice all the same.
func MockRecipes() []RawRecipe {
	var out []RawRecipe
	if err := json.Unmarshal([]byte(mockJSON), &out); err != nil {
		log.Printf("recipes: mock dataset decode failed: %v", err)
		return nil
	}
	return out
}
