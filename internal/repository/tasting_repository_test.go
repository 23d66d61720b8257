package repository_test

import (
	"testing"
	"time"

	"winestudy/internal/model"
	"winestudy/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestTastingRepository_OwnerScoping(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewGormTastingRepository()
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	notes := []*model.TastingNote{
		{TastingID: "tasting_a1", UserID: "user_a", WineName: "First", CreatedAt: base, Nose: datatypes.JSON(`{"intensity":"medium"}`)},
		{TastingID: "tasting_a2", UserID: "user_a", WineName: "Second", CreatedAt: base.Add(time.Minute)},
		{TastingID: "tasting_b1", UserID: "user_b", WineName: "Other", CreatedAt: base},
	}
	for _, n := range notes {
		require.NoError(t, repo.Create(ctx, db, n))
	}

	t.Run("一覧は本人のみ新しい順", func(t *testing.T) {
		list, err := repo.ListByUser(ctx, db, "user_a")
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "tasting_a2", list[0].TastingID)
		assert.Equal(t, "tasting_a1", list[1].TastingID)

		list, err = repo.ListByUser(ctx, db, "user_c")
		require.NoError(t, err)
		assert.Equal(t, []model.TastingNote{}, list)
	})

	t.Run("取得は所有者が一致するときだけ", func(t *testing.T) {
		got, err := repo.FindByIDAndUser(ctx, db, "tasting_a1", "user_a")
		require.NoError(t, err)
		assert.JSONEq(t, `{"intensity":"medium"}`, string(got.Nose))

		_, err = repo.FindByIDAndUser(ctx, db, "tasting_a1", "user_b")
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("他人の記録は削除できない", func(t *testing.T) {
		err := repo.DeleteByIDAndUser(ctx, db, "tasting_b1", "user_a")
		assert.ErrorIs(t, err, model.ErrNotFound)

		_, err = repo.FindByIDAndUser(ctx, db, "tasting_b1", "user_b")
		assert.NoError(t, err, "所有者の記録は残っている")

		require.NoError(t, repo.DeleteByIDAndUser(ctx, db, "tasting_b1", "user_b"))
		assert.ErrorIs(t, repo.DeleteByIDAndUser(ctx, db, "tasting_b1", "user_b"), model.ErrNotFound)
	})
}

func TestSeedRepository_InsertIgnore(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewGormSeedRepository()

	tags := []model.AromaTag{
		{TagID: "cherry", NamePT: "Cereja", NameEN: "Cherry", Category: model.AromaCategoryFruit},
		{TagID: "vanilla", NamePT: "Baunilha", NameEN: "Vanilla", Category: model.AromaCategoryOak},
	}
	n, err := repo.InsertAromaTags(ctx, db, tags)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	// 既存行は上書きしない
	require.NoError(t, db.Model(&model.AromaTag{}).Where("tag_id = ?", "cherry").Update("name_en", "Sour cherry").Error)
	tags = append(tags, model.AromaTag{TagID: "rose", NamePT: "Rosa", NameEN: "Rose", Category: model.AromaCategoryFloral})

	n, err = repo.InsertAromaTags(ctx, db, tags)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	var cherry model.AromaTag
	require.NoError(t, db.First(&cherry, "tag_id = ?", "cherry").Error)
	assert.Equal(t, "Sour cherry", cherry.NameEN)

	n, err = repo.InsertCountries(ctx, db, nil)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSeedRepository_InsertRegionsAndGrapes(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewGormSeedRepository()

	regions := []model.Region{
		{RegionID: "douro", CountryID: "portugal", Name: "Douro", KeyGrapes: datatypes.JSONSlice[string]{"Touriga Nacional"}},
		{RegionID: "rioja", CountryID: "spain", Name: "Rioja", KeyGrapes: datatypes.JSONSlice[string]{"Tempranillo"}},
	}
	n, err := repo.InsertRegions(ctx, db, regions)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	regions[0].Name = "Douro Valley"
	n, err = repo.InsertRegions(ctx, db, regions)
	require.NoError(t, err)
	assert.Zero(t, n)

	var douro model.Region
	require.NoError(t, db.First(&douro, "region_id = ?", "douro").Error)
	assert.Equal(t, "Douro", douro.Name)
	assert.Equal(t, []string{"Touriga Nacional"}, []string(douro.KeyGrapes))

	grapes := []model.Grape{
		{GrapeID: "malbec", Name: "Malbec", GrapeType: model.GrapeTypeRed, BestRegions: datatypes.JSONSlice[string]{"Mendoza"}},
	}
	n, err = repo.InsertGrapes(ctx, db, grapes)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = repo.InsertGrapes(ctx, db, grapes)
	require.NoError(t, err)
	assert.Zero(t, n)
}
