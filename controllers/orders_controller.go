package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/otakuwear/shopbackend/database"
	"github.com/otakuwear/shopbackend/dto"
	"github.com/otakuwear/shopbackend/models"
)

// CreateOrder serves POST /api/orders. Customer fields are validated before
// any store write; items are stored as submitted.
func CreateOrder(store database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.CreateOrderDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			var verrs validator.ValidationErrors
			if errors.As(err, &verrs) {
				c.JSON(http.StatusBadRequest, gin.H{
					"error": "validation failed",
					"field": jsonFieldName(verrs[0].Field()),
				})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		items := body.Items
		if items == nil {
			items = []map[string]any{}
		}

		order := models.Order{
			Items:           items,
			CustomerName:    body.CustomerName,
			CustomerEmail:   body.CustomerEmail,
			CustomerAddress: body.CustomerAddress,
			Note:            body.Note,
			Status:          models.OrderStatusPending,
			CreatedAt:       time.Now().UTC(),
		}

		id, err := store.Collection("order").InsertOne(c.Request.Context(), order)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"id": id, "status": "created"})
	}
}

// jsonFieldName maps a DTO struct field name to its snake_case json key.
func jsonFieldName(field string) string {
	var b strings.Builder
	for i, r := range field {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
