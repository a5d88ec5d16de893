package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/flicky/flowerstore-client/internal/dto"
	"github.com/flicky/flowerstore-client/internal/model"
)

type AddressesClient struct {
	api *Client
}

func NewAddressesClient(api *Client) *AddressesClient {
	return &AddressesClient{api: api}
}

func (a *AddressesClient) List(ctx context.Context, userID int64) ([]model.Address, error) {
	var resp dto.Envelope[[]model.Address]
	path := fmt.Sprintf("/users/%d/addresses", userID)
	if err := a.api.send(ctx, http.MethodGet, path, nil, nil, &resp, true); err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}
	return resp.Data, nil
}

func (a *AddressesClient) Get(ctx context.Context, userID, addressID int64) (*model.Address, error) {
	var resp dto.Envelope[model.Address]
	path := fmt.Sprintf("/users/%d/addresses/%d", userID, addressID)
	if err := a.api.send(ctx, http.MethodGet, path, nil, nil, &resp, true); err != nil {
		return nil, fmt.Errorf("get address: %w", err)
	}
	return &resp.Data, nil
}

func (a *AddressesClient) Create(ctx context.Context, userID int64, addr model.Address) (*model.Address, error) {
	if err := a.api.requireToken(); err != nil {
		return nil, err
	}
	var created model.Address
	path := fmt.Sprintf("/users/%d/addresses", userID)
	req := dto.AddressRequest{Street: addr.Street, District: addr.District, City: addr.City}
	if err := a.api.send(ctx, http.MethodPost, path, nil, req, &created, true); err != nil {
		return nil, fmt.Errorf("create address: %w", err)
	}
	return &created, nil
}

func (a *AddressesClient) Update(ctx context.Context, userID, addressID int64, addr model.Address) (*model.Address, error) {
	if err := a.api.requireToken(); err != nil {
		return nil, err
	}
	var updated model.Address
	path := fmt.Sprintf("/users/%d/addresses/%d", userID, addressID)
	req := dto.AddressRequest{Street: addr.Street, District: addr.District, City: addr.City}
	if err := a.api.send(ctx, http.MethodPut, path, nil, req, &updated, true); err != nil {
		return nil, fmt.Errorf("update address: %w", err)
	}
	return &updated, nil
}

func (a *AddressesClient) Delete(ctx context.Context, userID, addressID int64) error {
	if err := a.api.requireToken(); err != nil {
		return err
	}
	path := fmt.Sprintf("/users/%d/addresses/%d", userID, addressID)
	if err := a.api.send(ctx, http.MethodDelete, path, nil, nil, nil, true); err != nil {
		return fmt.Errorf("delete address: %w", err)
	}
	return nil
}
