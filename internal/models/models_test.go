package models_test

import (
	"encoding/json"
	"testing"

	"marketplace/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserResponse_OmitsPasswordHash(t *testing.T) {
	user := models.User{ID: 1, Username: "alice", Email: "a@x.com", PasswordHash: "$2a$10$secret"}

	body, err := json.Marshal(user.ToResponse())
	require.NoError(t, err)

	assert.JSONEq(t, `{"id":1,"username":"alice","email":"a@x.com"}`, string(body))
	assert.NotContains(t, string(body), "secret")
}

func TestProductResponse_Fields(t *testing.T) {
	product := models.Product{ID: 3, Name: "Mug", Description: "Blue", Price: 12.5, StorefrontID: 2}

	body, err := json.Marshal(product.ToResponse())
	require.NoError(t, err)

	assert.JSONEq(t, `{"id":3,"name":"Mug","description":"Blue","price":12.5,"image_url":"","rating":0,"storefront_id":2}`, string(body))
}

func TestListViews_NeverNil(t *testing.T) {
	body, err := json.Marshal(models.ProductsToResponse(nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(body))

	body, err = json.Marshal(models.ReviewsToResponse(nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(body))
}

func TestStorefrontAndReviewResponses(t *testing.T) {
	sf := models.Storefront{ID: 4, Name: "Corner Shop", UserID: 1}
	rv := models.Review{ID: 9, Content: "Great", Rating: 5, ProductID: 3}

	assert.Equal(t, models.StorefrontResponse{ID: 4, Name: "Corner Shop", UserID: 1}, sf.ToResponse())
	assert.Equal(t, models.ReviewResponse{ID: 9, Content: "Great", Rating: 5, ProductID: 3}, rv.ToResponse())
}
