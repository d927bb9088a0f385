package listings

import (
	"context"
	"testing"
	"time"

	"recyklat-backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupStoreTest(t *testing.T) *Store {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Listing{}))
	return &Store{DB: db}
}

func seedListing(t *testing.T, s *Store, title string, createdAt time.Time) *models.Listing {
	l := &models.Listing{
		TransactionType: models.TransactionSell,
		Title:           title,
		Material:        "Folia kolorowa",
		Phone:           "600 100 200",
		Status:          models.StatusActive,
	}
	require.NoError(t, s.Insert(context.Background(), l))
	require.NoError(t, s.DB.Model(l).Update("created_at", createdAt).Error)
	l.CreatedAt = createdAt
	return l
}

func TestInsert_AssignsID(t *testing.T) {
	s := setupStoreTest(t)
	l := &models.Listing{Title: "Bela folii", Material: "Folia kolorowa", Phone: "600 100 200"}
	require.NoError(t, s.Insert(context.Background(), l))
	assert.NotZero(t, l.ID)
	assert.Equal(t, models.StatusActive, l.Status, "status defaults to active at insert")

	second := &models.Listing{Title: "Makulatura", Material: "Makulatura (karton)", Phone: "500 100 200"}
	require.NoError(t, s.Insert(context.Background(), second))
	assert.NotEqual(t, l.ID, second.ID)
}

func TestFetchAll_NewestFirst(t *testing.T) {
	s := setupStoreTest(t)
	base := time.Now().Add(-time.Hour)
	seedListing(t, s, "older", base)
	seedListing(t, s, "newest", base.Add(30*time.Minute))
	seedListing(t, s, "oldest", base.Add(-30*time.Minute))

	all, err := s.FetchAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "newest", all[0].Title)
	assert.Equal(t, "older", all[1].Title)
	assert.Equal(t, "oldest", all[2].Title)
}

func TestFetchByID(t *testing.T) {
	s := setupStoreTest(t)
	l := seedListing(t, s, "Bela", time.Now())

	got, err := s.FetchByID(context.Background(), l.ID)
	require.NoError(t, err)
	assert.Equal(t, l.ID, got.ID)

	_, err = s.FetchByID(context.Background(), 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFetchByIDs(t *testing.T) {
	s := setupStoreTest(t)
	a := seedListing(t, s, "a", time.Now().Add(-time.Minute))
	b := seedListing(t, s, "b", time.Now())

	got, err := s.FetchByIDs(context.Background(), []uint{a.ID, b.ID, 9999})
	require.NoError(t, err)
	require.Len(t, got, 2, "missing ids are skipped")
	assert.Equal(t, "b", got[0].Title, "newest first")

	got, err = s.FetchByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMarkSold(t *testing.T) {
	s := setupStoreTest(t)
	l := seedListing(t, s, "Bela", time.Now())

	sold, err := s.MarkSold(context.Background(), l.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusSold, sold.Status)

	_, err = s.MarkSold(context.Background(), l.ID)
	assert.ErrorIs(t, err, ErrAlreadySold, "sold is terminal")

	_, err = s.MarkSold(context.Background(), 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete(t *testing.T) {
	s := setupStoreTest(t)
	l := seedListing(t, s, "Bela", time.Now())

	require.NoError(t, s.Delete(context.Background(), l.ID))
	_, err := s.FetchByID(context.Background(), l.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, s.Delete(context.Background(), l.ID), ErrNotFound)
}
