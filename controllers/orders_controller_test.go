package controllers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/otakuwear/shopbackend/config"
	"github.com/otakuwear/shopbackend/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func validOrderPayload() map[string]any {
	return map[string]any{
		"items": []map[string]any{
			{"product_id": "abc123", "quantity": 2, "size": "M", "color": "black"},
		},
		"customer_name":    "Mikasa Ackerman",
		"customer_email":   "mikasa@example.com",
		"customer_address": "Wall Rose, District 3",
		"note":             "gift wrap please",
	}
}

func TestCreateOrderStoresPendingDocument(t *testing.T) {
	store := database.NewMemoryStore("outfitshop")
	r := newTestRouter(&config.AppConfig{}, store)

	w := doRequest(t, r, http.MethodPost, "/api/orders", validOrderPayload())

	require.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "created", resp["status"])
	assert.NotEmpty(t, resp["id"])

	docs, err := store.Collection("order").Find(context.Background(), bson.M{})
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "pending", docs[0]["status"])
	assert.Equal(t, "mikasa@example.com", docs[0]["customer_email"])
	assert.Equal(t, resp["id"], docs[0]["_id"])
}

func TestCreateOrderAcceptsMissingItems(t *testing.T) {
	store := database.NewMemoryStore("outfitshop")
	r := newTestRouter(&config.AppConfig{}, store)

	payload := validOrderPayload()
	delete(payload, "items")
	w := doRequest(t, r, http.MethodPost, "/api/orders", payload)

	require.Equal(t, http.StatusCreated, w.Code)

	docs, err := store.Collection("order").Find(context.Background(), bson.M{})
	require.NoError(t, err)
	require.Len(t, docs, 1)
	items, ok := docs[0]["items"].(bson.A)
	require.True(t, ok)
	assert.Empty(t, items)
}

func TestCreateOrderRejectsInvalidEmailBeforeStoreWrite(t *testing.T) {
	store := database.NewMemoryStore("outfitshop")
	r := newTestRouter(&config.AppConfig{}, store)

	payload := validOrderPayload()
	payload["customer_email"] = "not-an-email"
	w := doRequest(t, r, http.MethodPost, "/api/orders", payload)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "customer_email", resp["field"])

	count, err := store.Collection("order").CountDocuments(context.Background(), bson.M{})
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestCreateOrderRejectsMissingRequiredField(t *testing.T) {
	r := newTestRouter(&config.AppConfig{}, database.NewMemoryStore("outfitshop"))

	payload := validOrderPayload()
	delete(payload, "customer_name")
	w := doRequest(t, r, http.MethodPost, "/api/orders", payload)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "customer_name", resp["field"])
}

func TestCreateOrderStoreFailure(t *testing.T) {
	r := newTestRouter(&config.AppConfig{}, database.Disconnected{})

	w := doRequest(t, r, http.MethodPost, "/api/orders", validOrderPayload())

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["error"], "not connected")
}
