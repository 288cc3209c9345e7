package client

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
)

func (c *Client) Products(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := c.getJSON(ctx, "fetch products", "/api/products", &products); err != nil {
		return nil, err
	}
	if products == nil {
		products = []Product{}
	}
	return products, nil
}

func (c *Client) ProductByID(ctx context.Context, id int64) (*Product, error) {
	var product Product
	err := c.getJSON(ctx, fmt.Sprintf("fetch product %d", id), fmt.Sprintf("/api/products/%d", id), &product)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (c *Client) CreateProduct(ctx context.Context, d Draft) (*Product, error) {
	body, contentType, err := buildProductForm(d, true)
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	var product Product
	if err := c.doJSON(ctx, "create product", http.MethodPost, "/api/products", body, contentType, true, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id int64, d Draft) (*Product, error) {
	body, contentType, err := buildProductForm(d, false)
	if err != nil {
		return nil, fmt.Errorf("update product %d: %w", id, err)
	}
	var product Product
	op := fmt.Sprintf("update product %d", id)
	if err := c.doJSON(ctx, op, http.MethodPut, fmt.Sprintf("/api/products/%d", id), body, contentType, true, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	op := fmt.Sprintf("delete product %d", id)
	return c.doJSON(ctx, op, http.MethodDelete, fmt.Sprintf("/api/products/%d", id), nil, "", true, nil)
}

// Categories derives the distinct category set from the full product
// list; the backend has no dedicated endpoint for it. First occurrence
// wins the ordering, duplicates are dropped.
func (c *Client) Categories(ctx context.Context) ([]string, error) {
	products, err := c.Products(ctx)
	if err != nil {
		log.Printf("fetch categories failed: %v", err)
		return nil, err
	}

	seen := make(map[string]struct{}, len(products))
	categories := make([]string, 0, len(products))
	for _, p := range products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}
	return categories, nil
}
