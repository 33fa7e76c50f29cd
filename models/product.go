package models

import "go.mongodb.org/mongo-driver/v2/bson"

// Product mirrors a document in the "product" collection. Documents are
// created by the startup seeder or by admin tooling, never through the API.
type Product struct {
	Id          bson.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title       string        `bson:"title" json:"title"`
	Character   string        `bson:"character" json:"character"`
	Description string        `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64       `bson:"price" json:"price"`
	Colors      []string      `bson:"colors" json:"colors"`
	Sizes       []string      `bson:"sizes" json:"sizes"`
	Image       string        `bson:"image,omitempty" json:"image,omitempty"`
	InStock     bool          `bson:"in_stock" json:"in_stock"`
}
