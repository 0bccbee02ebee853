package store

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"school-site-backend/internal/model"
)

// newTestStore opens an in-memory SQLite database with the schema migrated.
func newTestStore(t *testing.T) Store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&model.Admin{}, &model.Admission{}, &model.Notice{}))
	return NewGormStore(db)
}

func TestCreateAdmin_DuplicateEmail(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first := &model.Admin{Email: "admin@school.test", PasswordHash: "hash-a", Name: "First"}
	require.NoError(t, s.CreateAdmin(ctx, first))

	second := &model.Admin{Email: "admin@school.test", PasswordHash: "hash-b", Name: "Second"}
	err := s.CreateAdmin(ctx, second)
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	// The table must be unchanged by the failed insert.
	got, err := s.AdminByEmail(ctx, "admin@school.test")
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
	assert.Equal(t, "First", got.Name)
}

func TestAdminLookups(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	admin := &model.Admin{Email: "admin@school.test", PasswordHash: "hash"}
	require.NoError(t, s.CreateAdmin(ctx, admin))
	require.NotZero(t, admin.ID)

	byEmail, err := s.AdminByEmail(ctx, "admin@school.test")
	require.NoError(t, err)
	assert.Equal(t, admin.ID, byEmail.ID)

	byID, err := s.AdminByID(ctx, admin.ID)
	require.NoError(t, err)
	assert.Equal(t, "admin@school.test", byID.Email)

	_, err = s.AdminByEmail(ctx, "nobody@school.test")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.AdminByID(ctx, admin.ID+100)
	assert.ErrorIs(t, err, ErrNotFound)

	// Email lookup is case-sensitive.
	_, err = s.AdminByEmail(ctx, "ADMIN@school.test")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListAdmissions_OrderAndLimit(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		require.NoError(t, s.CreateAdmission(ctx, &model.Admission{
			StudentName: "Student",
			SubmittedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	admissions, err := s.ListAdmissions(ctx, 3)
	require.NoError(t, err)
	require.Len(t, admissions, 3)
	for i := 1; i < len(admissions); i++ {
		assert.False(t, admissions[i-1].SubmittedAt.Before(admissions[i].SubmittedAt),
			"admissions must be ordered newest first")
	}
	assert.Equal(t, base.Add(3*time.Minute), admissions[0].SubmittedAt.UTC())

	all, err := s.ListAdmissions(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestListNotices_OrderAndLimit(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		require.NoError(t, s.CreateNotice(ctx, &model.Notice{
			Title:       "Notice",
			Content:     "Body",
			PublishedAt: base.Add(time.Duration(i) * time.Hour),
		}))
	}

	latest, err := s.ListNotices(ctx, 5)
	require.NoError(t, err)
	require.Len(t, latest, 5)
	assert.Equal(t, base.Add(6*time.Hour), latest[0].PublishedAt.UTC())
	for i := 1; i < len(latest); i++ {
		assert.False(t, latest[i-1].PublishedAt.Before(latest[i].PublishedAt))
	}

	all, err := s.ListNotices(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 7)
}

// TestListNotices_StoreFailure verifies that a failing database surfaces as
// an error to the caller rather than being swallowed or retried.
func TestListNotices_StoreFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "notices"`)).
		WillReturnError(assert.AnError)

	s := NewGormStore(gormDB)
	_, err = s.ListNotices(context.Background(), 5)
	assert.ErrorIs(t, err, assert.AnError)
	assert.NoError(t, mock.ExpectationsWereMet())
}
