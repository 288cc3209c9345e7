// Package form holds the admin product form's draft state: the field
// values being edited, their validation, and the submit flow that feeds
// the resource service.
package form

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"

	"example.com/protein-store/internal/client"
)

// Categories is the fixed set the form offers.
var Categories = []string{"Whey Protein", "Mass Gainer", "Creatine", "Pre-Workout"}

var ErrSubmitInFlight = errors.New("submit already in progress")

// Errors maps field names to validation messages. It is displayed
// inline, never returned as a Go error.
type Errors map[string]string

// Draft is the unsaved form state. Price stays a string until
// validation parses it.
type Draft struct {
	Name          string
	Description   string
	Price         string
	Category      string
	Image         *client.File
	ExistingImage bool
	Featured      bool
}

// Validate collects every failing field at once; submission may proceed
// only when the result is empty.
func (d Draft) Validate() Errors {
	errs := Errors{}

	if strings.TrimSpace(d.Name) == "" {
		errs["name"] = "Product name is required"
	}
	if strings.TrimSpace(d.Category) == "" {
		errs["category"] = "Category is required"
	}
	if price, err := strconv.ParseFloat(d.Price, 64); d.Price == "" || err != nil || price <= 0 {
		errs["price"] = "Please enter a valid price"
	}
	if d.Image == nil && !d.ExistingImage {
		errs["image"] = "Product image is required"
	}

	return errs
}

// Writer is the slice of the resource service the form submits through.
type Writer interface {
	CreateProduct(ctx context.Context, d client.Draft) (*client.Product, error)
	UpdateProduct(ctx context.Context, id int64, d client.Draft) (*client.Product, error)
}

// ProductForm is the open create/edit modal. ProductID zero means create
// mode. The form is Idle or Submitting; while Submitting, further
// submits are rejected and the UI disables its inputs.
type ProductForm struct {
	ProductID int64
	Draft     Draft

	mu         sync.Mutex
	submitting bool
}

// Edit pre-fills a form from an existing product.
func Edit(p client.Product) *ProductForm {
	return &ProductForm{
		ProductID: p.ID,
		Draft: Draft{
			Name:          p.Name,
			Description:   p.Description,
			Price:         strconv.FormatFloat(p.Price, 'f', -1, 64),
			Category:      p.Category,
			ExistingImage: p.ImageURL != "",
			Featured:      p.Featured,
		},
	}
}

func (f *ProductForm) Submitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}

// Submit validates the draft and, if it passes, makes exactly one create
// or update call. Validation failures return the error map and never
// reach the network. The form returns to Idle whatever the call's
// outcome.
func (f *ProductForm) Submit(ctx context.Context, api Writer) (*client.Product, Errors, error) {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return nil, nil, ErrSubmitInFlight
	}

	if errs := f.Draft.Validate(); len(errs) > 0 {
		f.mu.Unlock()
		return nil, errs, nil
	}

	f.submitting = true
	f.mu.Unlock()
	defer func() {
		f.mu.Lock()
		f.submitting = false
		f.mu.Unlock()
	}()

	price, err := strconv.ParseFloat(f.Draft.Price, 64)
	if err != nil {
		// Unreachable after validation, but don't submit garbage.
		return nil, Errors{"price": "Please enter a valid price"}, nil
	}

	draft := client.Draft{
		Name:        f.Draft.Name,
		Description: f.Draft.Description,
		Price:       price,
		Category:    f.Draft.Category,
		Image:       f.Draft.Image,
		Featured:    f.Draft.Featured,
	}

	var product *client.Product
	if f.ProductID > 0 {
		product, err = api.UpdateProduct(ctx, f.ProductID, draft)
	} else {
		product, err = api.CreateProduct(ctx, draft)
	}
	if err != nil {
		return nil, nil, err
	}
	return product, nil, nil
}
