package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxcopy/maxcopy-backend/internal/models"
)

var aiContentCols = []string{"id", "product_id", "channel", "content_type", "payload", "approved", "last_model_used", "created_at"}

func newAIContentRepo(t *testing.T) (*AIContentRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewAIContentRepository(db), mock
}

func TestAIContentGetByID(t *testing.T) {
	repo, mock := newAIContentRepo(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, product_id, channel, content_type, payload, approved, last_model_used, created_at FROM ai_contents WHERE id = ?")).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(aiContentCols).
			AddRow(5, 1, "ebay", "full_listing", []byte(`{"title":"[DEMO] eBay title for product #1"}`), false, "gpt-5.1", now))

	c, err := repo.GetByID(context.Background(), 5)
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, int64(1), c.ProductID)
	assert.Equal(t, "ebay", c.Channel)
	assert.Equal(t, "[DEMO] eBay title for product #1", c.Payload["title"])
	assert.False(t, c.Approved)
	require.NotNil(t, c.LastModelUsed)
	assert.Equal(t, "gpt-5.1", *c.LastModelUsed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAIContentGetByIDNotFound(t *testing.T) {
	repo, mock := newAIContentRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, product_id, channel, content_type, payload, approved, last_model_used, created_at FROM ai_contents WHERE id = ?")).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(aiContentCols))

	c, err := repo.GetByID(context.Background(), 99)
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestAIContentListByProductNoFilters(t *testing.T) {
	repo, mock := newAIContentRepo(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, product_id, channel, content_type, payload, approved, last_model_used, created_at FROM ai_contents WHERE product_id = ? ORDER BY created_at DESC, id DESC")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(aiContentCols).
			AddRow(6, 1, "instagram", "caption", []byte(`{}`), false, nil, now).
			AddRow(5, 1, "ebay", "full_listing", []byte(`{}`), true, "gpt-5.1", now.Add(-time.Minute)))

	contents, err := repo.ListByProduct(context.Background(), 1, "", "")
	require.NoError(t, err)
	require.Len(t, contents, 2)
	assert.Equal(t, int64(6), contents[0].ID)
	assert.Nil(t, contents[0].LastModelUsed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAIContentListByProductFilterComposition(t *testing.T) {
	repo, mock := newAIContentRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, product_id, channel, content_type, payload, approved, last_model_used, created_at FROM ai_contents WHERE product_id = ? AND channel = ? AND content_type = ? ORDER BY created_at DESC, id DESC")).
		WithArgs(int64(1), "ebay", "full_listing").
		WillReturnRows(sqlmock.NewRows(aiContentCols))

	contents, err := repo.ListByProduct(context.Background(), 1, "ebay", "full_listing")
	require.NoError(t, err)
	assert.Empty(t, contents)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAIContentListByProductChannelOnly(t *testing.T) {
	repo, mock := newAIContentRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, product_id, channel, content_type, payload, approved, last_model_used, created_at FROM ai_contents WHERE product_id = ? AND channel = ? ORDER BY created_at DESC, id DESC")).
		WithArgs(int64(1), "shopify").
		WillReturnRows(sqlmock.NewRows(aiContentCols))

	_, err := repo.ListByProduct(context.Background(), 1, "shopify", "")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAIContentCreate(t *testing.T) {
	repo, mock := newAIContentRepo(t)
	now := time.Now()
	model := "gpt-5.1"

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO ai_contents (product_id, channel, content_type, payload, approved, last_model_used) VALUES (?, ?, ?, ?, ?, ?)")).
		WithArgs(int64(1), "ebay", "full_listing", sqlmock.AnyArg(), false, &model).
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, product_id, channel, content_type, payload, approved, last_model_used, created_at FROM ai_contents WHERE id = ?")).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(aiContentCols).
			AddRow(7, 1, "ebay", "full_listing", []byte(`{"title":"t"}`), false, model, now))

	c, err := repo.Create(context.Background(), models.CreateAIContentInput{
		ProductID:     1,
		Channel:       "ebay",
		ContentType:   "full_listing",
		Payload:       models.JSONMap{"title": "t"},
		Approved:      false,
		LastModelUsed: &model,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), c.ID)
	assert.Equal(t, now, c.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}
