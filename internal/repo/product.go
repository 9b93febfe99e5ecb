package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/olegsavin/storefront/internal/logging"
	"github.com/olegsavin/storefront/internal/models"
)

type ProductRepo struct {
	GormRepo[models.Product, *models.Product]
}

func NewProductRepo(db *gorm.DB) *ProductRepo {
	return &ProductRepo{GormRepo[models.Product, *models.Product]{DB: db}}
}

// FindByName returns all products whose name exactly equals name.
func (r *ProductRepo) FindByName(ctx context.Context, name string) ([]models.Product, error) {
	logging.FromContext(ctx).Info("processing name query", "name", name)
	var products []models.Product
	if err := r.DB.WithContext(ctx).Where("name = ?", name).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// FindByPrice returns all products matching the given price. The price may
// be a decimal.Decimal or a string padded with stray whitespace and quote
// characters, which is normalized before the equality match.
func (r *ProductRepo) FindByPrice(ctx context.Context, price any) ([]models.Product, error) {
	value, err := models.ParsePrice(price)
	if err != nil {
		return nil, err
	}
	logging.FromContext(ctx).Info("processing price query", "price", value.String())
	var products []models.Product
	if err := r.DB.WithContext(ctx).Where("price = ?", value).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// FindByAvailability returns all products with the given availability flag.
func (r *ProductRepo) FindByAvailability(ctx context.Context, available bool) ([]models.Product, error) {
	logging.FromContext(ctx).Info("processing availability query", "available", available)
	var products []models.Product
	if err := r.DB.WithContext(ctx).Where("available = ?", available).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// FindByCategory returns all products in the given category.
func (r *ProductRepo) FindByCategory(ctx context.Context, category models.Category) ([]models.Product, error) {
	logging.FromContext(ctx).Info("processing category query", "category", string(category))
	var products []models.Product
	if err := r.DB.WithContext(ctx).Where("category = ?", category).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}
