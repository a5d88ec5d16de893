package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/flicky/flowerstore-client/internal/dto"
	"github.com/flicky/flowerstore-client/internal/model"
)

type CategoriesClient struct {
	api *Client
}

func NewCategoriesClient(api *Client) *CategoriesClient {
	return &CategoriesClient{api: api}
}

func (c *CategoriesClient) List(ctx context.Context) ([]model.Category, error) {
	var resp dto.Envelope[[]model.Category]
	if err := c.api.send(ctx, http.MethodGet, "/categories", nil, nil, &resp, false); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return resp.Data, nil
}
