package main

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/healthyrecipehub/backend/config"
	"github.com/healthyrecipehub/backend/internal/database"
	"github.com/healthyrecipehub/backend/internal/models"
	"github.com/healthyrecipehub/backend/internal/service"
	"github.com/healthyrecipehub/backend/internal/store"
	"github.com/healthyrecipehub/backend/internal/types"
)

var sampleRecipes = []types.ProcessRecipeRequest{
	{
		Name:         "Quick Organic Veggie Stir-Fry",
		Description:  "A fast weeknight dinner loaded with vegetables",
		Category:     "Dinner",
		Ingredients:  []string{"organic broccoli", "carrot", "fresh ginger", "soy sauce", "brown rice"},
		Instructions: []string{"Chop the vegetables", "Stir-fry over high heat", "Serve over rice"},
		PrepTime:     10,
		CookTime:     10,
		Servings:     2,
		Calories:     350,
		Protein:      12,
	},
	{
		Name:         "High-Protein Breakfast Bowl",
		Description:  "Greek yogurt with fruit and whole grain oats",
		Category:     "Breakfast",
		Ingredients:  []string{"greek yogurt", "whole grain oats", "fresh fruit", "honey"},
		Instructions: []string{"Layer the yogurt and oats", "Top with fruit"},
		PrepTime:     5,
		Servings:     1,
		Calories:     320,
		Protein:      24,
	},
	{
		Name:         "Lean Chicken Salad",
		Description:  "A light lunch with lean grilled chicken",
		Category:     "Lunch",
		Ingredients:  []string{"lean chicken breast", "mixed greens", "olive oil", "lemon"},
		Instructions: []string{"Grill the chicken", "Toss with greens and dressing"},
		PrepTime:     15,
		CookTime:     12,
		Servings:     2,
		Calories:     280,
		Protein:      30,
	},
	{
		Name:         "Vegan Lentil Soup",
		Description:  "A hearty plant-based soup for cold evenings",
		Category:     "Dinner",
		Ingredients:  []string{"red lentils", "vegetable stock", "onion", "cumin"},
		Instructions: []string{"Saute the onion", "Simmer the lentils until soft"},
		PrepTime:     10,
		CookTime:     30,
		Servings:     4,
		Calories:     240,
		Protein:      14,
	},
	{
		Name:         "Sweet Chocolate Brownies",
		Description:  "A rich dessert with dark chocolate",
		Category:     "Dessert",
		Ingredients:  []string{"dark chocolate", "sugar", "butter", "flour", "eggs"},
		Instructions: []string{"Melt the chocolate", "Bake for 25 minutes"},
		PrepTime:     15,
		CookTime:     25,
		Servings:     8,
		Calories:     420,
		Protein:      5,
	},
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("seedpassword123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	now := time.Now()
	author := &models.User{
		ID:                 uuid.New(),
		Email:              "seed@healthyrecipehub.dev",
		PasswordHash:       string(hash),
		DisplayName:        "Seed Chef",
		Role:               models.RoleUser,
		IsActive:           true,
		LastLogin:          &now,
		EmailNotifications: false,
		Theme:              "light",
	}
	if err := db.Where("email = ?", author.Email).FirstOrCreate(author).Error; err != nil {
		log.Fatalf("Failed to create seed user: %v", err)
	}

	recipeService := service.NewRecipeService(db, store.New(db))
	ctx := context.Background()

	seeded := 0
	for i := range sampleRecipes {
		req := &sampleRecipes[i]

		var count int64
		db.Model(&models.Recipe{}).Where("name = ? AND author_id = ?", req.Name, author.ID).Count(&count)
		if count > 0 {
			continue
		}

		recipe, err := recipeService.ProcessRecipe(ctx, author.ID, req)
		if err != nil {
			log.Printf("Failed to seed recipe %q: %v", req.Name, err)
			continue
		}
		log.Printf("Seeded %q (nutrition score %d, tags %v)", recipe.Name, recipe.NutritionScore, recipe.Tags)
		seeded++
	}

	log.Printf("Seeding complete: %d new recipes", seeded)
}
