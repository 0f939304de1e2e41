package companystore

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// CompanyRow is the gorm model for the companies read projection.
type CompanyRow struct {
	gorm.Model
	CompanyID          string `gorm:"uniqueIndex"`
	IsVerified         bool
	VerificationStatus string
	VerifiedAt         *time.Time
}

func (CompanyRow) TableName() string {
	return "companies"
}

type GormCompanyStore struct {
	DB *gorm.DB
}

var _ CompanyStore = (*GormCompanyStore)(nil)

func NewGormCompanyStore(db *gorm.DB) (*GormCompanyStore, error) {
	if err := db.AutoMigrate(&CompanyRow{}); err != nil {
		return nil, err
	}
	return &GormCompanyStore{DB: db}, nil
}

func (s *GormCompanyStore) GetCompany(ctx context.Context, companyID string) (*CompanySnapshot, error) {
	var row CompanyRow
	err := s.DB.WithContext(ctx).Where("company_id = ?", companyID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return &CompanySnapshot{
		CompanyID:          row.CompanyID,
		IsVerified:         row.IsVerified,
		VerificationStatus: row.VerificationStatus,
		VerifiedAt:         row.VerifiedAt,
	}, nil
}
