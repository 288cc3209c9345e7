package product

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	domproduct "example.com/protein-store/internal/domain/product"
)

type mockProductRepository struct {
	products  map[int64]*domproduct.Product
	nextID    int64
	updated   *domproduct.Product
	deletedID int64
	updateErr error
}

func newMockProductRepository() *mockProductRepository {
	return &mockProductRepository{
		products: make(map[int64]*domproduct.Product),
		nextID:   1,
	}
}

func (m *mockProductRepository) Create(ctx context.Context, p *domproduct.Product) (*domproduct.Product, error) {
	p.ID = m.nextID
	m.nextID++
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	m.products[p.ID] = p
	return p, nil
}

func (m *mockProductRepository) Update(ctx context.Context, p *domproduct.Product) (*domproduct.Product, error) {
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	if _, ok := m.products[p.ID]; !ok {
		return nil, domproduct.ErrProductNotFound
	}
	m.products[p.ID] = p
	m.updated = p
	return p, nil
}

func (m *mockProductRepository) Delete(ctx context.Context, id int64) error {
	if _, ok := m.products[id]; !ok {
		return domproduct.ErrProductNotFound
	}
	delete(m.products, id)
	m.deletedID = id
	return nil
}

func (m *mockProductRepository) GetByID(ctx context.Context, id int64) (*domproduct.Product, error) {
	if p, ok := m.products[id]; ok {
		cloned := *p
		return &cloned, nil
	}
	return nil, domproduct.ErrProductNotFound
}

func (m *mockProductRepository) List(ctx context.Context, filter domproduct.ListFilter) ([]*domproduct.Product, error) {
	var result []*domproduct.Product
	for _, p := range m.products {
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		cloned := *p
		result = append(result, &cloned)
	}
	return result, nil
}

func seedProduct(t *testing.T, repo *mockProductRepository) *domproduct.Product {
	t.Helper()
	p, err := repo.Create(context.Background(), &domproduct.Product{
		Name:        "Gold Standard Whey",
		Description: "24g protein per serving",
		Price:       54.99,
		Category:    "Whey Protein",
		ImagePath:   "whey.jpg",
		Featured:    true,
	})
	require.NoError(t, err)
	return p
}

func TestCreate_AssignsID(t *testing.T) {
	repo := newMockProductRepository()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), &domproduct.Product{
		Name:     "Creatine Monohydrate",
		Price:    19.99,
		Category: "Creatine",
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), created.ID)
}

func TestUpdate_MergesNonEmptyFields(t *testing.T) {
	repo := newMockProductRepository()
	svc := NewService(repo)
	existing := seedProduct(t, repo)

	updated, err := svc.Update(context.Background(), &domproduct.Product{
		ID:    existing.ID,
		Name:  "Gold Standard Whey 2kg",
		Price: 59.99,
	}, false)
	require.NoError(t, err)

	require.Equal(t, "Gold Standard Whey 2kg", updated.Name)
	require.Equal(t, 59.99, updated.Price)
	// Untouched fields keep their stored values.
	require.Equal(t, "24g protein per serving", updated.Description)
	require.Equal(t, "Whey Protein", updated.Category)
	require.Equal(t, "whey.jpg", updated.ImagePath)
	require.True(t, updated.Featured)
}

func TestUpdate_FeaturedOnlyWhenSet(t *testing.T) {
	repo := newMockProductRepository()
	svc := NewService(repo)
	existing := seedProduct(t, repo)

	updated, err := svc.Update(context.Background(), &domproduct.Product{
		ID:       existing.ID,
		Featured: false,
	}, false)
	require.NoError(t, err)
	require.True(t, updated.Featured, "featured must not change when the field was absent")

	updated, err = svc.Update(context.Background(), &domproduct.Product{
		ID:       existing.ID,
		Featured: false,
	}, true)
	require.NoError(t, err)
	require.False(t, updated.Featured)
}

func TestUpdate_NotFound(t *testing.T) {
	repo := newMockProductRepository()
	svc := NewService(repo)

	_, err := svc.Update(context.Background(), &domproduct.Product{ID: 999, Name: "ghost"}, false)
	require.ErrorIs(t, err, domproduct.ErrProductNotFound)
}

func TestDelete_NotFound(t *testing.T) {
	repo := newMockProductRepository()
	svc := NewService(repo)

	err := svc.Delete(context.Background(), 42)
	require.ErrorIs(t, err, domproduct.ErrProductNotFound)
}

func TestList_FiltersByCategory(t *testing.T) {
	repo := newMockProductRepository()
	svc := NewService(repo)
	seedProduct(t, repo)
	repo.Create(context.Background(), &domproduct.Product{
		Name:     "Creatine Monohydrate",
		Price:    19.99,
		Category: "Creatine",
	})

	products, err := svc.List(context.Background(), domproduct.ListFilter{Category: "Creatine"})
	require.NoError(t, err)
	require.Len(t, products, 1)
	require.Equal(t, "Creatine Monohydrate", products[0].Name)
}
