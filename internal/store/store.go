package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"school-site-backend/internal/model"
)

// Sentinel errors surfaced to callers instead of raw driver errors.
var (
	// ErrDuplicateEmail reports a breach of the admin email uniqueness
	// constraint.
	ErrDuplicateEmail = errors.New("store: email already registered")
	// ErrNotFound reports that no row matched the lookup.
	ErrNotFound = errors.New("store: record not found")
)

// Store defines the interface for all database operations.
type Store interface {
	CreateAdmin(ctx context.Context, admin *model.Admin) error
	AdminByEmail(ctx context.Context, email string) (*model.Admin, error)
	AdminByID(ctx context.Context, id int64) (*model.Admin, error)

	CreateAdmission(ctx context.Context, admission *model.Admission) error
	ListAdmissions(ctx context.Context, limit int) ([]model.Admission, error)

	CreateNotice(ctx context.Context, notice *model.Notice) error
	ListNotices(ctx context.Context, limit int) ([]model.Notice, error)
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

// CreateAdmin inserts a new administrator row. A duplicate email yields
// ErrDuplicateEmail and leaves the table unchanged.
func (s *gormStore) CreateAdmin(ctx context.Context, admin *model.Admin) error {
	if err := s.db.WithContext(ctx).Create(admin).Error; err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("failed to create admin: %w", err)
	}
	return nil
}

// AdminByEmail looks up an administrator by login email (case-sensitive).
func (s *gormStore) AdminByEmail(ctx context.Context, email string) (*model.Admin, error) {
	var admin model.Admin
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up admin by email: %w", err)
	}
	return &admin, nil
}

// AdminByID looks up an administrator by primary key.
func (s *gormStore) AdminByID(ctx context.Context, id int64) (*model.Admin, error) {
	var admin model.Admin
	err := s.db.WithContext(ctx).First(&admin, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up admin by id: %w", err)
	}
	return &admin, nil
}

// CreateAdmission appends one admission application row.
func (s *gormStore) CreateAdmission(ctx context.Context, admission *model.Admission) error {
	if err := s.db.WithContext(ctx).Create(admission).Error; err != nil {
		return fmt.Errorf("failed to create admission: %w", err)
	}
	return nil
}

// ListAdmissions returns admissions ordered by submission time, newest
// first. A limit <= 0 returns all rows.
func (s *gormStore) ListAdmissions(ctx context.Context, limit int) ([]model.Admission, error) {
	var admissions []model.Admission
	q := s.db.WithContext(ctx).Order("submitted_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&admissions).Error; err != nil {
		return nil, fmt.Errorf("failed to list admissions: %w", err)
	}
	return admissions, nil
}

// CreateNotice appends one notice row.
func (s *gormStore) CreateNotice(ctx context.Context, notice *model.Notice) error {
	if err := s.db.WithContext(ctx).Create(notice).Error; err != nil {
		return fmt.Errorf("failed to create notice: %w", err)
	}
	return nil
}

// ListNotices returns notices ordered by publish time, newest first. A
// limit <= 0 returns all rows.
func (s *gormStore) ListNotices(ctx context.Context, limit int) ([]model.Notice, error) {
	var notices []model.Notice
	q := s.db.WithContext(ctx).Order("published_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&notices).Error; err != nil {
		return nil, fmt.Errorf("failed to list notices: %w", err)
	}
	return notices, nil
}

// isDuplicateKey recognizes uniqueness violations across the supported
// drivers. Older driver versions do not translate to gorm.ErrDuplicatedKey,
// hence the message fallbacks.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || // sqlite
		strings.Contains(msg, "duplicate key value") // postgres
}
