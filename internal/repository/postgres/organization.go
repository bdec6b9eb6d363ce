package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/modelproof/biasradar-api/internal/domain"
)

type OrganizationRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewOrganizationRepository(writerDB, readerDB *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *OrganizationRepository) Create(ctx context.Context, org *domain.Organization) (*domain.Organization, error) {
	if org.ID == "" {
		org.ID = uuid.New().String()
	}

	if err := r.writerDB.WithContext(ctx).Create(org).Error; err != nil {
		return nil, err
	}
	return org, nil
}

func (r *OrganizationRepository) GetByEmail(ctx context.Context, email string) (*domain.Organization, error) {
	var org domain.Organization
	if err := r.readerDB.WithContext(ctx).First(&org, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &org, nil
}

// GetByAPIKey resolves a credential to an organization. Lookups go through
// the writer so a freshly revoked key never matches via replica lag.
func (r *OrganizationRepository) GetByAPIKey(ctx context.Context, apiKey string) (*domain.Organization, error) {
	var org domain.Organization
	if err := r.writerDB.WithContext(ctx).First(&org, "api_key = ?", apiKey).Error; err != nil {
		return nil, err
	}
	return &org, nil
}

func (r *OrganizationRepository) SetPlan(ctx context.Context, email string, isPaid bool) (*domain.Organization, error) {
	var org domain.Organization
	err := r.writerDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&org, "email = ?", email).Error; err != nil {
			return err
		}
		if err := tx.Model(&org).Update("is_paid", isPaid).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &org, nil
}

func (r *OrganizationRepository) Delete(ctx context.Context, email string) (*domain.Organization, error) {
	var org domain.Organization
	err := r.writerDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&org, "email = ?", email).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Organization{}, "email = ?", email).Error
	})
	if err != nil {
		return nil, err
	}
	return &org, nil
}

func (r *OrganizationRepository) List(ctx context.Context) ([]domain.Organization, error) {
	var orgs []domain.Organization
	if err := r.readerDB.WithContext(ctx).Order("created_at DESC").Find(&orgs).Error; err != nil {
		return nil, err
	}
	return orgs, nil
}

// ResetUsage is a single conditional UPDATE so that two concurrent requests
// racing past a window boundary perform at most one effective reset.
func (r *OrganizationRepository) ResetUsage(ctx context.Context, id string, now, windowStart time.Time) (bool, error) {
	result := r.writerDB.WithContext(ctx).
		Model(&domain.Organization{}).
		Where("id = ? AND last_reset <= ?", id, windowStart).
		Updates(map[string]any{
			"requests_made": 0,
			"last_reset":    now,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// IncrementUsage pushes the increment into the database so concurrent calls
// never read-modify-write the counter in application code.
func (r *OrganizationRepository) IncrementUsage(ctx context.Context, id string) error {
	result := r.writerDB.WithContext(ctx).
		Model(&domain.Organization{}).
		Where("id = ?", id).
		Update("requests_made", gorm.Expr("requests_made + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
