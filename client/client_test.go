package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glowora/cosmetics-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductsList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/products", r.URL.Path)
		w.Write([]byte(`[{"id":1,"name":"Matte Lipstick","price":"12.99","category":"Lipstick","source":"db"}]`))
	}))
	defer srv.Close()

	records, err := New(srv.URL, "").Products(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Matte Lipstick", records[0].Name)
	assert.Equal(t, 12.99, float64(records[0].Price))
}

func TestCreateReviewPostsJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/reviews", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var review models.Review
		require.NoError(t, json.NewDecoder(r.Body).Decode(&review))
		review.ID = 7
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(review)
	}))
	defer srv.Close()

	created, err := New(srv.URL, "").CreateReview(context.Background(), models.Review{
		UserName: "nada",
		Rating:   5,
		Comment:  "lovely",
		Category: "lipstick",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(7), created.ID)
	assert.Equal(t, "nada", created.UserName)
}

func TestAdminCallsCarryAPIKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "secret", r.Header.Get("X-API-KEY"))
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"message":"Product deleted"}`))
	}))
	defer srv.Close()

	err := New(srv.URL, "secret").DeleteProduct(context.Background(), 3)
	assert.NoError(t, err)
}

func TestNon2xxBecomesStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := New(srv.URL, "").Product(context.Background(), 99)
	require.Error(t, err)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.Code)
}

func TestReviewsCategoryQueryEscaped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "lip liner", r.URL.Query().Get("category"))
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	reviews, err := New(srv.URL, "").Reviews(context.Background(), "lip liner")
	require.NoError(t, err)
	assert.Empty(t, reviews)
}

func TestUpdateProductSendsSparsePatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{"price": 15.0}, body)

		json.NewEncoder(w).Encode(models.Product{ID: 3, Price: 15})
	}))
	defer srv.Close()

	price := 15.0
	updated, err := New(srv.URL, "secret").UpdateProduct(context.Background(), 3, ProductInput{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, 15.0, updated.Price)
}
