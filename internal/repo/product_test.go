package repo

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/olegsavin/storefront/internal/models"
)

func fakeProduct(n int, price string, available bool, category models.Category) *models.Product {
	return &models.Product{
		Name:        fmt.Sprintf("product-%d", n),
		Description: fmt.Sprintf("description %d", n),
		Price:       decimal.RequireFromString(price),
		Available:   available,
		Category:    category,
	}
}

func TestProductCRUD(t *testing.T) {
	ctx := context.Background()
	r := NewProductRepo(newTestDB(t))

	product := fakeProduct(1, "12.50", true, models.CategoryCloths)
	require.NoError(t, r.Create(ctx, product))
	require.NotZero(t, product.ID)

	found, err := r.Find(ctx, product.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Equal(t, product.Name, found.Name)
	require.Equal(t, product.Description, found.Description)
	require.True(t, product.Price.Equal(found.Price))
	require.Equal(t, product.Available, found.Available)
	require.Equal(t, product.Category, found.Category)

	found.Description = "updated"
	found.Available = false
	require.NoError(t, r.Update(ctx, found))

	fresh, err := r.Find(ctx, product.ID)
	require.NoError(t, err)
	require.Equal(t, "updated", fresh.Description)
	require.False(t, fresh.Available)
	require.Equal(t, product.ID, fresh.ID)

	require.NoError(t, r.Delete(ctx, fresh))
	gone, err := r.Find(ctx, product.ID)
	require.NoError(t, err)
	require.Nil(t, gone)
}

func TestFindProductByName(t *testing.T) {
	ctx := context.Background()
	r := NewProductRepo(newTestDB(t))

	require.NoError(t, r.Create(ctx, fakeProduct(1, "1.00", true, models.CategoryFood)))
	require.NoError(t, r.Create(ctx, fakeProduct(2, "2.00", true, models.CategoryFood)))

	matches, err := r.FindByName(ctx, "product-2")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	require.Equal(t, "product-2", matches[0].Name)
}

func TestFindProductByPrice(t *testing.T) {
	ctx := context.Background()
	r := NewProductRepo(newTestDB(t))

	require.NoError(t, r.Create(ctx, fakeProduct(1, "12.50", true, models.CategoryTools)))
	require.NoError(t, r.Create(ctx, fakeProduct(2, "9.99", true, models.CategoryTools)))

	// exact decimal value
	matches, err := r.FindByPrice(ctx, decimal.RequireFromString("12.50"))
	require.NoError(t, err)
	require.Len(t, matches, 1)
	require.Equal(t, "product-1", matches[0].Name)

	// padded, quoted string input matches the same stored value
	matches, err = r.FindByPrice(ctx, ` "12.50" `)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	require.Equal(t, "product-1", matches[0].Name)

	_, err = r.FindByPrice(ctx, "garbage")
	var verr *models.DataValidationError
	require.ErrorAs(t, err, &verr)
}

func TestFindProductByAvailability(t *testing.T) {
	ctx := context.Background()
	r := NewProductRepo(newTestDB(t))

	require.NoError(t, r.Create(ctx, fakeProduct(1, "1.00", true, models.CategoryFood)))
	require.NoError(t, r.Create(ctx, fakeProduct(2, "2.00", false, models.CategoryFood)))
	require.NoError(t, r.Create(ctx, fakeProduct(3, "3.00", true, models.CategoryFood)))

	available, err := r.FindByAvailability(ctx, true)
	require.NoError(t, err)
	require.Len(t, available, 2)
	for _, p := range available {
		require.True(t, p.Available)
	}

	unavailable, err := r.FindByAvailability(ctx, false)
	require.NoError(t, err)
	require.Len(t, unavailable, 1)
	require.Equal(t, "product-2", unavailable[0].Name)
}

func TestFindProductByCategory(t *testing.T) {
	ctx := context.Background()
	r := NewProductRepo(newTestDB(t))

	require.NoError(t, r.Create(ctx, fakeProduct(1, "1.00", true, models.CategoryCloths)))
	require.NoError(t, r.Create(ctx, fakeProduct(2, "2.00", true, models.CategoryUnknown)))
	require.NoError(t, r.Create(ctx, fakeProduct(3, "3.00", true, models.CategoryCloths)))

	cloths, err := r.FindByCategory(ctx, models.CategoryCloths)
	require.NoError(t, err)
	require.Len(t, cloths, 2)

	unknown, err := r.FindByCategory(ctx, models.CategoryUnknown)
	require.NoError(t, err)
	require.Len(t, unknown, 1)
	require.Equal(t, "product-2", unknown[0].Name)
}
