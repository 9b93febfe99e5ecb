package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/olegsavin/storefront/internal/logging"
	"github.com/olegsavin/storefront/internal/models"
)

type AccountRepo struct {
	GormRepo[models.Account, *models.Account]
}

func NewAccountRepo(db *gorm.DB) *AccountRepo {
	return &AccountRepo{GormRepo[models.Account, *models.Account]{DB: db}}
}

// FindByName returns all accounts whose name exactly equals name,
// case-sensitive, no pagination.
func (r *AccountRepo) FindByName(ctx context.Context, name string) ([]models.Account, error) {
	logging.FromContext(ctx).Info("processing name query", "name", name)
	var accounts []models.Account
	if err := r.DB.WithContext(ctx).Where("name = ?", name).Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}
