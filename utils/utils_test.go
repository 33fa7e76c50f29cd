package utils_test

import (
	"testing"

	"github.com/otakuwear/shopbackend/utils"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestToStringIDReplacesObjectID(t *testing.T) {
	oid := bson.NewObjectID()
	doc := bson.M{"_id": oid, "title": "Survey Corps Cloak"}

	got := utils.ToStringID(doc)

	assert.Equal(t, oid.Hex(), got["id"])
	assert.Equal(t, "Survey Corps Cloak", got["title"])
	assert.NotContains(t, got, "_id")
}

func TestToStringIDKeepsStringID(t *testing.T) {
	doc := bson.M{"_id": "abc-123", "title": "Thunder Breather Jacket"}

	got := utils.ToStringID(doc)

	assert.Equal(t, "abc-123", got["id"])
	assert.NotContains(t, got, "_id")
}

func TestToStringIDEmptyDocIsNoOp(t *testing.T) {
	doc := bson.M{}
	assert.Equal(t, bson.M{}, utils.ToStringID(doc))

	var nilDoc bson.M
	assert.Nil(t, utils.ToStringID(nilDoc))
}

func TestToStringIDMutatesOnlyGivenDoc(t *testing.T) {
	oid := bson.NewObjectID()
	doc := bson.M{"_id": oid}

	got := utils.ToStringID(doc)

	// same map, modified in place
	assert.Equal(t, doc, got)
	assert.Equal(t, oid.Hex(), doc["id"])
}

func TestProductQueryFilterEmpty(t *testing.T) {
	assert.Empty(t, utils.ProductQueryFilter("", "", ""))
}

func TestProductQueryFilterCharacter(t *testing.T) {
	filter := utils.ProductQueryFilter("Levi", "", "")

	assert.Equal(t, bson.M{
		"character": bson.M{"$regex": "Levi", "$options": "i"},
	}, filter)
}

func TestProductQueryFilterColor(t *testing.T) {
	filter := utils.ProductQueryFilter("", "purple", "")

	assert.Equal(t, bson.M{"colors": "purple"}, filter)
}

func TestProductQueryFilterFreeText(t *testing.T) {
	filter := utils.ProductQueryFilter("", "", "cloak")

	or, ok := filter["$or"].(bson.A)
	assert.True(t, ok)
	assert.Len(t, or, 3)
	assert.Contains(t, or, bson.M{"title": bson.M{"$regex": "cloak", "$options": "i"}})
	assert.Contains(t, or, bson.M{"description": bson.M{"$regex": "cloak", "$options": "i"}})
	assert.Contains(t, or, bson.M{"character": bson.M{"$regex": "cloak", "$options": "i"}})
}

func TestProductQueryFilterCombinesWithAnd(t *testing.T) {
	filter := utils.ProductQueryFilter("Itachi", "black", "hoodie")

	assert.Len(t, filter, 3)
	assert.Equal(t, bson.M{"$regex": "Itachi", "$options": "i"}, filter["character"])
	assert.Equal(t, "black", filter["colors"])
	assert.Len(t, filter["$or"], 3)
}

func TestFallbackProducts(t *testing.T) {
	fallback := utils.FallbackProducts()

	assert.Len(t, fallback, 3)
	assert.Equal(t, "1", fallback[0]["id"])
	assert.Equal(t, "2", fallback[1]["id"])
	assert.Equal(t, "3", fallback[2]["id"])
	for _, p := range fallback {
		assert.NotEmpty(t, p["title"])
		assert.NotContains(t, p, "_id")
	}
}
