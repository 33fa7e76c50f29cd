package utils

import (
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// ToStringID replaces the store's internal identity key with a public "id"
// string. Empty documents pass through untouched; only the given map is
// mutated.
func ToStringID(doc bson.M) bson.M {
	if len(doc) == 0 {
		return doc
	}
	raw, ok := doc["_id"]
	if !ok {
		return doc
	}
	delete(doc, "_id")
	switch id := raw.(type) {
	case bson.ObjectID:
		doc["id"] = id.Hex()
	case string:
		doc["id"] = id
	default:
		doc["id"] = fmt.Sprint(id)
	}
	return doc
}

// ProductQueryFilter builds the product listing predicate. Keys combine
// with AND; q alone expands to an OR over title, description and character.
// No parameters means match everything.
func ProductQueryFilter(character, color, q string) bson.M {
	filter := bson.M{}
	if character != "" {
		filter["character"] = bson.M{"$regex": character, "$options": "i"}
	}
	if color != "" {
		filter["colors"] = color
	}
	if q != "" {
		filter["$or"] = bson.A{
			bson.M{"title": bson.M{"$regex": q, "$options": "i"}},
			bson.M{"description": bson.M{"$regex": q, "$options": "i"}},
			bson.M{"character": bson.M{"$regex": q, "$options": "i"}},
		}
	}
	return filter
}
