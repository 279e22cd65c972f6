package db

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/arencloud/hestia/internal/models"
)

// ErrTenantNotFound reports a lookup or delete for a key with no record.
var ErrTenantNotFound = errors.New("tenant not found")

// TenantStore is the gorm-backed tenant repository.
type TenantStore struct {
	db *gorm.DB
}

func NewTenantStore(gdb *gorm.DB) *TenantStore {
	return &TenantStore{db: gdb}
}

func (s *TenantStore) Create(ctx context.Context, tenant *models.Tenant) error {
	if err := s.db.WithContext(ctx).Create(tenant).Error; err != nil {
		return fmt.Errorf("failed to create tenant %s: %w", tenant.Key, err)
	}
	return nil
}

// Save writes the full tenant record, including the bucket name recorded
// by provisioning.
func (s *TenantStore) Save(ctx context.Context, tenant *models.Tenant) error {
	if err := s.db.WithContext(ctx).Save(tenant).Error; err != nil {
		return fmt.Errorf("failed to save tenant %s: %w", tenant.Key, err)
	}
	return nil
}

func (s *TenantStore) FindByKey(ctx context.Context, key string) (*models.Tenant, error) {
	var tenant models.Tenant
	if err := s.db.WithContext(ctx).Where("key = ?", key).First(&tenant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to find tenant %s: %w", key, err)
	}
	return &tenant, nil
}

func (s *TenantStore) List(ctx context.Context) ([]models.Tenant, error) {
	var tenants []models.Tenant
	if err := s.db.WithContext(ctx).Order("key").Find(&tenants).Error; err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}
	return tenants, nil
}

func (s *TenantStore) Delete(ctx context.Context, key string) error {
	res := s.db.WithContext(ctx).Where("key = ?", key).Delete(&models.Tenant{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete tenant %s: %w", key, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrTenantNotFound
	}
	return nil
}
