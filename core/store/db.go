package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// submissionRecord is the gorm model backing the mysql store.
// IDs are generated by the application, not the database.
type submissionRecord struct {
	ID        int64  `gorm:"primaryKey;autoIncrement:false"`
	Name      string `gorm:"not null"`
	Email     string `gorm:"not null;index"`
	Phone     string
	Message   string `gorm:"type:text"`
	CreatedAt string `gorm:"column:created_at"`
}

// TableName specifies the table name for submissionRecord.
func (submissionRecord) TableName() string {
	return "submissions"
}

// GormStore persists submissions in a relational database. It is the
// transactional alternative to the flat-file backend for deployments that
// cannot accept last-writer-wins data loss.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a database-backed store.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Migrate creates the submissions table if it does not exist.
func (s *GormStore) Migrate() error {
	return s.db.AutoMigrate(&submissionRecord{})
}

// LoadAll returns every submission ordered by identifier, which matches
// insertion order since identifiers are time-derived and monotonic.
func (s *GormStore) LoadAll(ctx context.Context) ([]Submission, error) {
	var records []submissionRecord
	if err := s.db.WithContext(ctx).Order("id asc").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to load submissions: %w", err)
	}

	subs := make([]Submission, 0, len(records))
	for _, r := range records {
		subs = append(subs, Submission{
			ID:        r.ID,
			Name:      r.Name,
			Email:     r.Email,
			Phone:     r.Phone,
			Message:   r.Message,
			CreatedAt: r.CreatedAt,
		})
	}
	return subs, nil
}

// AppendOne inserts a new submission row.
func (s *GormStore) AppendOne(ctx context.Context, sub Submission) error {
	record := submissionRecord{
		ID:        sub.ID,
		Name:      sub.Name,
		Email:     sub.Email,
		Phone:     sub.Phone,
		Message:   sub.Message,
		CreatedAt: sub.CreatedAt,
	}
	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		return fmt.Errorf("failed to insert submission: %w", err)
	}
	return nil
}
