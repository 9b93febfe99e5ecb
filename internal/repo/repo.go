package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/olegsavin/storefront/internal/logging"
)

// Record is what the generic repository needs from a record type: access to
// the store-assigned primary key and a display name for audit log lines. A
// record with a zero primary key is transient; a persisted record has the
// key the store assigned at create time.
type Record interface {
	PrimaryKey() uint
	SetPrimaryKey(uint)
	DisplayName() string
}

// GormRepo is the persistence contract shared by every record type. It
// delegates durability to the injected gorm session and adds nothing on
// top: no retries, no translation of store errors, no caching.
type GormRepo[T any, PT interface {
	*T
	Record
}] struct {
	DB *gorm.DB
}

// Create inserts rec and lets the store assign a fresh primary key. The key
// is forced to zero first, so Create always inserts even when the caller
// reuses an object that still carries a stale id. Constraint violations
// propagate from the store unmodified.
func (r *GormRepo[T, PT]) Create(ctx context.Context, rec PT) error {
	logging.FromContext(ctx).Info("creating record", "name", rec.DisplayName())
	rec.SetPrimaryKey(0)
	return r.DB.WithContext(ctx).Create(rec).Error
}

// Update writes the current in-memory field values to the existing row.
// The record must be persisted; missing-row semantics are the store's.
func (r *GormRepo[T, PT]) Update(ctx context.Context, rec PT) error {
	logging.FromContext(ctx).Info("updating record", "name", rec.DisplayName())
	return r.DB.WithContext(ctx).Save(rec).Error
}

// Delete removes the row for a persisted record. The in-memory instance is
// stale afterwards and must not be reused for Update or Delete.
func (r *GormRepo[T, PT]) Delete(ctx context.Context, rec PT) error {
	logging.FromContext(ctx).Info("deleting record", "name", rec.DisplayName())
	return r.DB.WithContext(ctx).Delete(rec).Error
}

// All returns every persisted record of the type in store-native order.
func (r *GormRepo[T, PT]) All(ctx context.Context) ([]T, error) {
	logging.FromContext(ctx).Info("processing all records")
	var items []T
	if err := r.DB.WithContext(ctx).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Find returns the record with the given id, or (nil, nil) when no such
// row exists. Not-found is a normal return value, never an error.
func (r *GormRepo[T, PT]) Find(ctx context.Context, id uint) (PT, error) {
	logging.FromContext(ctx).Info("processing lookup", "id", id)
	var rec T
	if err := r.DB.WithContext(ctx).First(&rec, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return PT(&rec), nil
}
