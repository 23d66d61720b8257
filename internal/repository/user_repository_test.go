package repository_test

import (
	"testing"

	"winestudy/internal/model"
	"winestudy/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestUserRepository(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewGormUserRepository()

	ana := &model.User{UserID: "user_ana", Email: "  Ana@Example.COM ", Name: "Ana", PreferredLanguage: "pt"}
	require.NoError(t, repo.Create(ctx, db, ana))
	assert.Equal(t, "ana@example.com", ana.Email, "保存前に正規化される")

	bruno := &model.User{UserID: "user_bruno", Email: "bruno@example.com", Name: "Bruno", PreferredLanguage: "pt", GoogleID: strPtr("g-ana")}
	require.NoError(t, repo.Create(ctx, db, bruno))

	t.Run("メールの重複は ErrConflict", func(t *testing.T) {
		err := repo.Create(ctx, db, &model.User{UserID: "user_dup", Email: "ANA@example.com", Name: "Dup", PreferredLanguage: "pt"})
		assert.ErrorIs(t, err, model.ErrConflict)
	})

	t.Run("FindByEmail は大文字小文字を無視", func(t *testing.T) {
		found, err := repo.FindByEmail(ctx, db, "ANA@EXAMPLE.com")
		require.NoError(t, err)
		assert.Equal(t, "user_ana", found.UserID)

		_, err = repo.FindByEmail(ctx, db, "nobody@example.com")
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("FindByEmailOrGoogleID はメール一致を優先", func(t *testing.T) {
		// メールは ana、google_id は bruno に一致する
		found, err := repo.FindByEmailOrGoogleID(ctx, db, "ana@example.com", "g-ana")
		require.NoError(t, err)
		assert.Equal(t, "user_ana", found.UserID)

		found, err = repo.FindByEmailOrGoogleID(ctx, db, "new@example.com", "g-ana")
		require.NoError(t, err)
		assert.Equal(t, "user_bruno", found.UserID)

		_, err = repo.FindByEmailOrGoogleID(ctx, db, "new@example.com", "g-none")
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("更新", func(t *testing.T) {
		require.NoError(t, repo.UpdateLanguage(ctx, db, "user_ana", "en"))
		require.NoError(t, repo.UpdatePicture(ctx, db, "user_ana", "https://example.com/a.png"))

		found, err := repo.FindByID(ctx, db, "user_ana")
		require.NoError(t, err)
		assert.Equal(t, "en", found.PreferredLanguage)
		require.NotNil(t, found.Picture)
		assert.Equal(t, "https://example.com/a.png", *found.Picture)

		assert.ErrorIs(t, repo.UpdateLanguage(ctx, db, "user_missing", "en"), model.ErrNotFound)
		_, err = repo.FindByID(ctx, db, "user_missing")
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}
