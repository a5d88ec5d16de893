package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/flicky/flowerstore-client/internal/dto"
	"github.com/flicky/flowerstore-client/internal/model"
)

// ProductsClient reads the product catalog. All operations are public.
type ProductsClient struct {
	api *Client
}

func NewProductsClient(api *Client) *ProductsClient {
	return &ProductsClient{api: api}
}

func pageQuery(pageNo, pageSize int) url.Values {
	return url.Values{
		"pageNo":   {strconv.Itoa(pageNo)},
		"pageSize": {strconv.Itoa(pageSize)},
	}
}

func (p *ProductsClient) List(ctx context.Context, pageNo, pageSize int) (*dto.ProductPage, error) {
	var page dto.ProductPage
	if err := p.api.send(ctx, http.MethodGet, "/products", pageQuery(pageNo, pageSize), nil, &page, false); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return &page, nil
}

func (p *ProductsClient) ListByCategory(ctx context.Context, categoryID int64, pageNo, pageSize int) (*dto.ProductPage, error) {
	var page dto.ProductPage
	path := fmt.Sprintf("/products/categories/%d", categoryID)
	if err := p.api.send(ctx, http.MethodGet, path, pageQuery(pageNo, pageSize), nil, &page, false); err != nil {
		return nil, fmt.Errorf("list products by category: %w", err)
	}
	return &page, nil
}

func (p *ProductsClient) GetByID(ctx context.Context, productID int64) (*model.Product, error) {
	var resp dto.Envelope[model.Product]
	path := fmt.Sprintf("/products/%d", productID)
	if err := p.api.send(ctx, http.MethodGet, path, nil, nil, &resp, false); err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &resp.Data, nil
}

func (p *ProductsClient) SearchByName(ctx context.Context, name string) ([]model.Product, error) {
	var resp dto.Envelope[[]model.Product]
	query := url.Values{"name": {name}}
	if err := p.api.send(ctx, http.MethodGet, "/products/search", query, nil, &resp, false); err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	return resp.Data, nil
}
