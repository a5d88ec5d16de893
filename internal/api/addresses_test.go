package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flicky/flowerstore-client/internal/model"
)

func TestAddressesClient_CRUD(t *testing.T) {
	env := newMockEnv(t)
	userID := env.signIn(t, "addresses@example.com")
	addresses := NewAddressesClient(env.api)
	ctx := context.Background()

	created, err := addresses.Create(ctx, userID, model.Address{
		Street: "12 Nguyen Hue", District: "District 1", City: "Ho Chi Minh City",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.AddressID, "addressId is server-assigned")

	list, err := addresses.List(ctx, userID)
	require.NoError(t, err)
	require.Len(t, list, 1)

	got, err := addresses.Get(ctx, userID, created.AddressID)
	require.NoError(t, err)
	assert.Equal(t, "12 Nguyen Hue", got.Street)

	updated, err := addresses.Update(ctx, userID, created.AddressID, model.Address{
		Street: "34 Dong Khoi", District: "District 1", City: "Ho Chi Minh City",
	})
	require.NoError(t, err)
	assert.Equal(t, "34 Dong Khoi", updated.Street)
	assert.Equal(t, created.AddressID, updated.AddressID)

	require.NoError(t, addresses.Delete(ctx, userID, created.AddressID))

	list, err = addresses.List(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestAddressesClient_MutationsRequireToken(t *testing.T) {
	client, _ := newStubClient(t, http.NotFoundHandler())
	addresses := NewAddressesClient(client)
	ctx := context.Background()
	addr := model.Address{Street: "s", District: "d", City: "c"}

	_, err := addresses.Create(ctx, 7, addr)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
	_, err = addresses.Update(ctx, 7, 3, addr)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
	err = addresses.Delete(ctx, 7, 3)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestAddressesClient_GetUnknown(t *testing.T) {
	env := newMockEnv(t)
	userID := env.signIn(t, "addresses-404@example.com")

	_, err := NewAddressesClient(env.api).Get(context.Background(), userID, 9999)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}
