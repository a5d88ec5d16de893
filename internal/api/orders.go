package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/flicky/flowerstore-client/internal/dto"
	"github.com/flicky/flowerstore-client/internal/event"
	"github.com/flicky/flowerstore-client/internal/model"
)

type OrdersClient struct {
	api *Client
	bus *event.Bus
}

func NewOrdersClient(api *Client, bus *event.Bus) *OrdersClient {
	return &OrdersClient{api: api, bus: bus}
}

// Create places an order from the user's cart. Checkout empties the cart
// server-side, so a cart-updated event is published for any mounted cart
// view to re-fetch.
func (o *OrdersClient) Create(ctx context.Context, userID, addressID, paymentID int64) (*dto.OrderCreated, error) {
	if err := o.api.requireToken(); err != nil {
		return nil, err
	}
	var created dto.OrderCreated
	req := dto.CreateOrderRequest{UserID: userID, AddressID: addressID, PaymentID: paymentID}
	if err := o.api.send(ctx, http.MethodPost, "/users/orders", nil, req, &created, true); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	o.bus.Publish(event.CartUpdated)
	return &created, nil
}

func (o *OrdersClient) List(ctx context.Context, userID int64) ([]model.Order, error) {
	var resp dto.Envelope[[]model.Order]
	path := fmt.Sprintf("/users/%d/orders", userID)
	if err := o.api.send(ctx, http.MethodGet, path, nil, nil, &resp, true); err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return resp.Data, nil
}

func (o *OrdersClient) Get(ctx context.Context, userID, orderID int64) (*model.OrderDetails, error) {
	var resp dto.Envelope[model.OrderDetails]
	path := fmt.Sprintf("/users/%d/orders/%d", userID, orderID)
	if err := o.api.send(ctx, http.MethodGet, path, nil, nil, &resp, true); err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &resp.Data, nil
}

// Delete cancels an order; the backend decides whether its status allows it.
func (o *OrdersClient) Delete(ctx context.Context, userID, orderID int64) error {
	if err := o.api.requireToken(); err != nil {
		return err
	}
	path := fmt.Sprintf("/users/%d/orders/%d", userID, orderID)
	if err := o.api.send(ctx, http.MethodDelete, path, nil, nil, nil, true); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	o.bus.Publish(event.OrdersUpdated)
	return nil
}
