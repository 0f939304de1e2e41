package postingstore

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// PostingRow is the gorm model for the job_postings read projection. The
// submission workflow owns writes to this table; the engine only reads.
type PostingRow struct {
	gorm.Model
	CompanyID   string `gorm:"index"`
	Title       string
	Description string
	Status      string `gorm:"index"`
}

func (PostingRow) TableName() string {
	return "job_postings"
}

type GormPostingStore struct {
	DB *gorm.DB
}

var _ PostingStore = (*GormPostingStore)(nil)

func NewGormPostingStore(db *gorm.DB) (*GormPostingStore, error) {
	if err := db.AutoMigrate(&PostingRow{}); err != nil {
		return nil, err
	}
	return &GormPostingStore{DB: db}, nil
}

func (s *GormPostingStore) RecentByCompany(ctx context.Context, companyID string, window time.Duration) ([]Posting, error) {
	cutoff := time.Now().Add(-window)
	var rows []PostingRow
	err := s.DB.WithContext(ctx).
		Where("company_id = ? AND created_at > ?", companyID, cutoff).
		Order("created_at desc").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]Posting, len(rows))
	for i, r := range rows {
		out[i] = Posting{
			Title:       r.Title,
			Description: r.Description,
			CreatedAt:   r.CreatedAt,
		}
	}
	return out, nil
}

func (s *GormPostingStore) CountApproved(ctx context.Context, companyID string) (int, error) {
	var count int64
	err := s.DB.WithContext(ctx).Model(&PostingRow{}).
		Where("company_id = ? AND status = ?", companyID, StatusApproved).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return int(count), nil
}
