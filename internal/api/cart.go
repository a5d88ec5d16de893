package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/flicky/flowerstore-client/internal/dto"
	"github.com/flicky/flowerstore-client/internal/event"
	"github.com/flicky/flowerstore-client/internal/model"
)

// CartClient mirrors the server-owned cart. Every operation requires a token
// and fails fast with ErrNotAuthenticated before touching the network; every
// mutation returns the server's cart, which the caller adopts wholesale (the
// client computes no totals of its own), and nudges mounted cart views via
// the bus.
type CartClient struct {
	api *Client
	bus *event.Bus
}

func NewCartClient(api *Client, bus *event.Bus) *CartClient {
	return &CartClient{api: api, bus: bus}
}

func (c *CartClient) Get(ctx context.Context, userID int64) (*model.Cart, error) {
	if err := c.api.requireToken(); err != nil {
		return nil, err
	}
	var resp dto.Envelope[model.Cart]
	path := fmt.Sprintf("/users/%d/carts", userID)
	if err := c.api.send(ctx, http.MethodGet, path, nil, nil, &resp, true); err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}
	return &resp.Data, nil
}

func (c *CartClient) Add(ctx context.Context, userID, productID int64, quantity int) (*model.Cart, error) {
	if err := c.api.requireToken(); err != nil {
		return nil, err
	}
	var cart model.Cart
	path := fmt.Sprintf("/users/%d/carts", userID)
	req := dto.CartItemRequest{ProductID: productID, Quantity: quantity}
	if err := c.api.send(ctx, http.MethodPost, path, nil, req, &cart, true); err != nil {
		return nil, fmt.Errorf("add to cart: %w", err)
	}
	c.bus.Publish(event.CartUpdated)
	return &cart, nil
}

func (c *CartClient) UpdateItem(ctx context.Context, userID, productID int64, quantity int) (*model.Cart, error) {
	if err := c.api.requireToken(); err != nil {
		return nil, err
	}
	var cart model.Cart
	path := fmt.Sprintf("/users/%d/carts", userID)
	req := dto.CartItemRequest{ProductID: productID, Quantity: quantity}
	if err := c.api.send(ctx, http.MethodPut, path, nil, req, &cart, true); err != nil {
		return nil, fmt.Errorf("update cart item: %w", err)
	}
	c.bus.Publish(event.CartUpdated)
	return &cart, nil
}

func (c *CartClient) Remove(ctx context.Context, userID, productID int64) (*model.Cart, error) {
	if err := c.api.requireToken(); err != nil {
		return nil, err
	}
	var cart model.Cart
	path := fmt.Sprintf("/users/%d/carts/product/%d", userID, productID)
	if err := c.api.send(ctx, http.MethodDelete, path, nil, nil, &cart, true); err != nil {
		return nil, fmt.Errorf("remove from cart: %w", err)
	}
	c.bus.Publish(event.CartUpdated)
	return &cart, nil
}
