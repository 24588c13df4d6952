package types

// RegisterRequest is the payload for account creation.
type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	DisplayName string `json:"display_name"`
}

// LoginRequest is the payload for credential login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ProcessRecipeRequest is the payload for server-side recipe processing.
type ProcessRecipeRequest struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Category     string   `json:"category"`
	Difficulty   string   `json:"difficulty"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
	PrepTime     int      `json:"prep_time"`
	CookTime     int      `json:"cook_time"`
	Servings     int      `json:"servings"`
	Calories     float64  `json:"calories"`
	Protein      float64  `json:"protein"`
}

// BulkProcessRequest is the payload for admin bulk recipe operations.
type BulkProcessRequest struct {
	Operation string   `json:"operation" binding:"required"`
	RecipeIDs []string `json:"recipe_ids" binding:"required"`
}

// UpdateRoleRequest is the payload for admin role changes.
type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// RecipeAnalytics is the aggregate metric view of one recipe.
type RecipeAnalytics struct {
	RecipeID        string  `json:"recipe_id"`
	Name            string  `json:"name"`
	Views           int64   `json:"views"`
	Likes           int64   `json:"likes"`
	Rating          float64 `json:"rating"`
	NutritionScore  int     `json:"nutrition_score"`
	PopularityScore float64 `json:"popularity_score"`
	HealthScore     int     `json:"health_score"`
}

// UserStats summarizes one user's account activity.
type UserStats struct {
	RecipesCreated int64   `json:"recipes_created"`
	MemberSince    string  `json:"member_since"`
	LastLogin      *string `json:"last_login"`
	IsActive       bool    `json:"is_active"`
	Role           string  `json:"role"`
}
