package product

import (
	"context"
	"errors"
	"testing"

	"myMarketHub/domain"
)

type fakeProductRepo struct {
	products map[uint64]domain.Product
	nextID   uint64
	failAll  bool
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[uint64]domain.Product{}, nextID: 1}
}

func (f *fakeProductRepo) Create(_ context.Context, product *domain.Product) error {
	if f.failAll {
		return errors.New("db down")
	}
	product.ID = f.nextID
	f.nextID++
	f.products[product.ID] = *product
	return nil
}

func (f *fakeProductRepo) FindByID(_ context.Context, id uint64) (domain.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return domain.Product{}, errors.New("record not found")
	}
	return p, nil
}

func (f *fakeProductRepo) FindAll(_ context.Context) ([]domain.Product, error) {
	if f.failAll {
		return nil, errors.New("db down")
	}
	out := make([]domain.Product, 0, len(f.products))
	for _, p := range f.products {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProductRepo) Update(_ context.Context, product *domain.Product) error {
	if _, ok := f.products[product.ID]; !ok {
		return errors.New("record not found")
	}
	f.products[product.ID] = *product
	return nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id uint64) error {
	if _, ok := f.products[id]; !ok {
		return errors.New("record not found")
	}
	delete(f.products, id)
	return nil
}

func validProduct() *domain.Product {
	return &domain.Product{
		ProductID:       "sku-100",
		SellerID:        7,
		ProductName:     "Bamboo Cutting Board",
		ProductCategory: "kitchen",
		NormalPrice:     25.0,
		Stock:           10,
	}
}

func TestCreateProductValidation(t *testing.T) {
	svc := NewProductService(newFakeProductRepo())
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*domain.Product)
	}{
		{"missing product id", func(p *domain.Product) { p.ProductID = "" }},
		{"missing name", func(p *domain.Product) { p.ProductName = "" }},
		{"missing category", func(p *domain.Product) { p.ProductCategory = "" }},
		{"zero price", func(p *domain.Product) { p.NormalPrice = 0 }},
		{"negative stock", func(p *domain.Product) { p.Stock = -1 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validProduct()
			tc.mutate(p)
			if _, err := svc.CreateProduct(ctx, p); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestCreateAndGetProduct(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewProductService(repo)
	ctx := context.Background()

	created, err := svc.CreateProduct(ctx, validProduct())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected assigned id")
	}

	got, err := svc.GetProductByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ProductID != "sku-100" {
		t.Fatalf("wrong product returned: %+v", got)
	}
}

func TestUpdateProductNotFound(t *testing.T) {
	svc := NewProductService(newFakeProductRepo())

	p := validProduct()
	p.ID = 99
	if _, err := svc.UpdateProduct(context.Background(), p); err == nil {
		t.Fatal("expected product not found error")
	}
}

func TestDeleteProduct(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewProductService(repo)
	ctx := context.Background()

	created, err := svc.CreateProduct(ctx, validProduct())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := svc.DeleteProduct(ctx, created.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.GetProductByID(ctx, created.ID); err == nil {
		t.Fatal("expected error after delete")
	}
}

func TestGetAllProductsPropagatesError(t *testing.T) {
	repo := newFakeProductRepo()
	repo.failAll = true
	svc := NewProductService(repo)

	if _, err := svc.GetAllProducts(context.Background()); err == nil {
		t.Fatal("expected repository error")
	}
}
