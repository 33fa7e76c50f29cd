package utils

import (
	"context"
	"fmt"

	"github.com/otakuwear/shopbackend/database"
	"github.com/otakuwear/shopbackend/models"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// SeedData returns the demo catalog inserted into an empty product collection.
func SeedData() []models.Product {
	return []models.Product{
		{
			Title:       "Shadow Ninja Hoodie",
			Character:   "Itachi",
			Description: "Oversized streetwear hoodie inspired by Itachi's cloak.",
			Price:       59.99,
			Colors:      []string{"black", "white", "purple"},
			Sizes:       []string{"S", "M", "L", "XL"},
			Image:       "https://images.unsplash.com/photo-1544025162-d76694265947?q=80&w=1200&auto=format&fit=crop",
			InStock:     true,
		},
		{
			Title:       "Thunder Breather Jacket",
			Character:   "Zenitsu",
			Description: "Lightweight coach jacket with subtle lightning pattern.",
			Price:       74.99,
			Colors:      []string{"black", "white", "purple"},
			Sizes:       []string{"S", "M", "L", "XL"},
			Image:       "https://images.unsplash.com/photo-1490481651871-ab68de25d43d?q=80&w=1200&auto=format&fit=crop",
			InStock:     true,
		},
		{
			Title:       "Survey Corps Cloak",
			Character:   "Levi",
			Description: "Minimalist green cloak reimagined in monochrome.",
			Price:       89.99,
			Colors:      []string{"black", "white", "purple"},
			Sizes:       []string{"S", "M", "L", "XL"},
			Image:       "https://images.unsplash.com/photo-1520975922284-5f5730b979bc?q=80&w=1200&auto=format&fit=crop",
			InStock:     true,
		},
	}
}

// FallbackProducts is the static catalog served when no store is configured,
// so a disconnected frontend can still render something.
func FallbackProducts() []bson.M {
	return []bson.M{
		{
			"id":        "1",
			"title":     "Shadow Ninja Hoodie",
			"character": "Itachi",
			"price":     59.99,
			"colors":    []string{"black", "white", "purple"},
			"image":     "https://images.unsplash.com/photo-1544025162-d76694265947?q=80&w=1200&auto=format&fit=crop",
		},
		{
			"id":        "2",
			"title":     "Thunder Breather Jacket",
			"character": "Zenitsu",
			"price":     74.99,
			"colors":    []string{"black", "white", "purple"},
			"image":     "https://images.unsplash.com/photo-1490481651871-ab68de25d43d?q=80&w=1200&auto=format&fit=crop",
		},
		{
			"id":        "3",
			"title":     "Survey Corps Cloak",
			"character": "Levi",
			"price":     89.99,
			"colors":    []string{"black", "white", "purple"},
			"image":     "https://images.unsplash.com/photo-1520975922284-5f5730b979bc?q=80&w=1200&auto=format&fit=crop",
		},
	}
}

// SeedProducts inserts the demo catalog once, only when the product
// collection is empty. An unavailable store is skipped silently. The caller
// decides what to do with a failure; startup just logs it.
func SeedProducts(ctx context.Context, store database.Store) error {
	if !store.Available() {
		return nil
	}

	col := store.Collection("product")
	count, err := col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("count products: %w", err)
	}
	if count != 0 {
		return nil
	}

	seed := SeedData()
	docs := make([]any, 0, len(seed))
	for _, p := range seed {
		docs = append(docs, p)
	}
	if err := col.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert seed products: %w", err)
	}
	return nil
}
