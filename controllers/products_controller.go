package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/otakuwear/shopbackend/database"
	"github.com/otakuwear/shopbackend/utils"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// ListProducts serves GET /api/products with optional character, color and
// free-text filters. Without a configured store it answers with the static
// fallback catalog instead of failing.
func ListProducts(store database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !store.Available() {
			c.JSON(http.StatusOK, utils.FallbackProducts())
			return
		}

		character := strings.TrimSpace(c.Query("character"))
		color := strings.TrimSpace(c.Query("color"))
		q := strings.TrimSpace(c.Query("q"))
		filter := utils.ProductQueryFilter(character, color, q)

		docs, err := store.Collection("product").Find(c.Request.Context(), filter)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		products := make([]bson.M, 0, len(docs))
		for _, doc := range docs {
			products = append(products, utils.ToStringID(doc))
		}
		c.JSON(http.StatusOK, products)
	}
}
