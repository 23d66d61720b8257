package service_test

import (
	"context"
	"testing"

	"winestudy/internal/model"
	"winestudy/internal/repository"
	"winestudy/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2回目の投入では何も挿入されず、既存の行も変わらない
func TestSeedService_Idempotent(t *testing.T) {
	db := newTestDB(t)
	seeder := service.NewSeedService(db, repository.NewGormSeedRepository())
	ctx := context.Background()

	first, err := seeder.Seed(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Database seeded successfully", first.Message)
	assert.Equal(t, map[string]int64{
		"countries":      13,
		"regions":        77,
		"grapes":         12,
		"study_tracks":   3,
		"lessons":        5,
		"aroma_tags":     16,
		"quiz_questions": 6,
	}, first.Counts)

	// 参照データを手で変更しておき、再投入で上書きされないことを確認する
	require.NoError(t, db.Model(&model.Country{}).Where("country_id = ?", "france").Update("description_en", "edited").Error)

	second, err := seeder.Seed(ctx)
	require.NoError(t, err)
	for table, n := range second.Counts {
		assert.Zero(t, n, table)
	}

	var france model.Country
	require.NoError(t, db.First(&france, "country_id = ?", "france").Error)
	assert.Equal(t, "edited", france.DescriptionEN)

	var count int64
	require.NoError(t, db.Model(&model.Country{}).Count(&count).Error)
	assert.Equal(t, int64(13), count)

	var rioja model.Region
	require.NoError(t, db.First(&rioja, "region_id = ?", "rioja").Error)
	assert.Equal(t, "spain", rioja.CountryID)
	assert.Contains(t, []string(rioja.KeyGrapes), "Tempranillo")

	var malbec model.Grape
	require.NoError(t, db.First(&malbec, "grape_id = ?", "malbec").Error)
	assert.Equal(t, model.GrapeTypeRed, malbec.GrapeType)
	assert.Equal(t, []string{"Mendoza", "Cahors"}, []string(malbec.BestRegions))
}

// すべての地域は seed 済みの国を指している
func TestSeedService_RegionsReferToKnownCountries(t *testing.T) {
	db := newTestDB(t)
	_, err := service.NewSeedService(db, repository.NewGormSeedRepository()).Seed(context.Background())
	require.NoError(t, err)

	var orphans int64
	require.NoError(t, db.Model(&model.Region{}).
		Where("country_id NOT IN (?)", db.Model(&model.Country{}).Select("country_id")).
		Count(&orphans).Error)
	assert.Zero(t, orphans)
}
