package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/threadline/storefront-api/models"
	"github.com/threadline/storefront-api/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMemoryInsertAssignsIDs(t *testing.T) {
	s := store.NewMemory("testdb")
	ctx := context.Background()

	id1, err := s.Insert(ctx, models.UserCollection, models.User{Name: "A", Email: "a@x.com"})
	require.NoError(t, err)
	id2, err := s.Insert(ctx, models.UserCollection, models.User{Name: "B", Email: "b@x.com"})
	require.NoError(t, err)

	assert.NotEmpty(t, id1)
	assert.NotEqual(t, id1, id2)

	// Ids are valid ObjectID hex strings.
	_, err = primitive.ObjectIDFromHex(id1)
	assert.NoError(t, err)
}

func TestMemoryFindOne(t *testing.T) {
	s := store.NewMemory("testdb")
	ctx := context.Background()

	_, err := s.Insert(ctx, models.UserCollection, models.User{Name: "Alice", Email: "alice@x.com"})
	require.NoError(t, err)

	var user models.User
	err = s.FindOne(ctx, models.UserCollection, bson.M{"email": "alice@x.com"}, &user)
	require.NoError(t, err)
	assert.Equal(t, "Alice", user.Name)
	assert.False(t, user.ID.IsZero())

	err = s.FindOne(ctx, models.UserCollection, bson.M{"email": "nobody@x.com"}, &user)
	assert.ErrorIs(t, err, store.ErrNotFound)

	// Email matching is case-sensitive as stored.
	err = s.FindOne(ctx, models.UserCollection, bson.M{"email": "Alice@x.com"}, &user)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestMemoryFindLimit(t *testing.T) {
	s := store.NewMemory("testdb")
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := s.Insert(ctx, models.ProductCollection, models.Product{Title: "Tee", Category: "shirts"})
		require.NoError(t, err)
	}

	var products []models.Product
	require.NoError(t, s.Find(ctx, models.ProductCollection, bson.M{}, 3, &products))
	assert.Len(t, products, 3)

	require.NoError(t, s.Find(ctx, models.ProductCollection, bson.M{}, 0, &products))
	assert.Len(t, products, 5)
}

func TestMemoryUpdateOne(t *testing.T) {
	s := store.NewMemory("testdb")
	ctx := context.Background()

	_, err := s.Insert(ctx, models.CartCollection, models.Cart{UserID: "u1", Items: []models.CartItem{}})
	require.NoError(t, err)

	err = s.UpdateOne(ctx, models.CartCollection,
		bson.M{"user_id": "u1"},
		bson.M{"$set": bson.M{"items": []models.CartItem{{ProductID: "p1", Quantity: 2}}}},
	)
	require.NoError(t, err)

	var cart models.Cart
	require.NoError(t, s.FindOne(ctx, models.CartCollection, bson.M{"user_id": "u1"}, &cart))
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "p1", cart.Items[0].ProductID)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestMemoryCollections(t *testing.T) {
	s := store.NewMemory("testdb")
	ctx := context.Background()

	_, err := s.Insert(ctx, models.UserCollection, models.User{Email: "a@x.com"})
	require.NoError(t, err)
	_, err = s.Insert(ctx, models.ProductCollection, models.Product{Title: "Tee", Category: "shirts"})
	require.NoError(t, err)

	names, err := s.Collections(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{models.UserCollection, models.ProductCollection}, names)
	assert.Equal(t, "testdb", s.Name())
}
