package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"winestudy/internal/model"

	"gorm.io/gorm"
)

// CatalogRepository は参照専用のコンテンツ (国・地域・ブドウ・アロマ) を扱います。
type CatalogRepository interface {
	ListCountries(ctx context.Context, db *gorm.DB, filter model.CountryFilter) ([]model.Country, error)
	FindCountry(ctx context.Context, db *gorm.DB, countryID string) (*model.Country, error)
	ListRegions(ctx context.Context, db *gorm.DB, filter model.RegionFilter) ([]model.Region, error)
	FindRegion(ctx context.Context, db *gorm.DB, regionID string) (*model.Region, error)
	ListGrapes(ctx context.Context, db *gorm.DB, filter model.GrapeFilter) ([]model.Grape, error)
	FindGrape(ctx context.Context, db *gorm.DB, grapeID string) (*model.Grape, error)
	ListAromaTags(ctx context.Context, db *gorm.DB, filter model.AromaFilter) ([]model.AromaTag, error)
	FindAromaTag(ctx context.Context, db *gorm.DB, tagID string) (*model.AromaTag, error)

	SearchGrapes(ctx context.Context, db *gorm.DB, q string, limit int) ([]model.Grape, error)
	SearchRegions(ctx context.Context, db *gorm.DB, q string, limit int) ([]model.Region, error)
	SearchCountries(ctx context.Context, db *gorm.DB, q string, limit int) ([]model.Country, error)
}

type gormCatalogRepository struct{}

func NewGormCatalogRepository() CatalogRepository {
	return &gormCatalogRepository{}
}

func (r *gormCatalogRepository) ListCountries(ctx context.Context, db *gorm.DB, filter model.CountryFilter) ([]model.Country, error) {
	countries := []model.Country{}
	query := db.WithContext(ctx)
	if filter.WorldType != "" {
		query = query.Where("world_type = ?", filter.WorldType)
	}
	if err := query.Order("name_en ASC").Find(&countries).Error; err != nil {
		return nil, fmt.Errorf("gormCatalogRepository.ListCountries: %w", err)
	}
	return countries, nil
}

func (r *gormCatalogRepository) FindCountry(ctx context.Context, db *gorm.DB, countryID string) (*model.Country, error) {
	var country model.Country
	if err := first(db.WithContext(ctx).Where("country_id = ?", countryID), &country); err != nil {
		return nil, wrapFind("gormCatalogRepository.FindCountry", err)
	}
	return &country, nil
}

// ListRegions の品種による絞り込みは JSON 列のため取得後に行います。
func (r *gormCatalogRepository) ListRegions(ctx context.Context, db *gorm.DB, filter model.RegionFilter) ([]model.Region, error) {
	var rows []model.Region
	query := db.WithContext(ctx)
	if filter.CountryID != "" {
		query = query.Where("country_id = ?", filter.CountryID)
	}
	if err := query.Order("name ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("gormCatalogRepository.ListRegions: %w", err)
	}

	regions := make([]model.Region, 0, len(rows))
	for i := range rows {
		if filter.Grape == "" || rows[i].HasGrape(filter.Grape) {
			regions = append(regions, rows[i])
		}
	}
	return regions, nil
}

func (r *gormCatalogRepository) FindRegion(ctx context.Context, db *gorm.DB, regionID string) (*model.Region, error) {
	var region model.Region
	if err := first(db.WithContext(ctx).Where("region_id = ?", regionID), &region); err != nil {
		return nil, wrapFind("gormCatalogRepository.FindRegion", err)
	}
	return &region, nil
}

// ListGrapes は grape_type を SQL で絞り込み、アロマと産地は取得後に値の一致で絞り込みます。
// どちらも JSON 列のため、方言に依存しない判定をアプリ側で行います。
func (r *gormCatalogRepository) ListGrapes(ctx context.Context, db *gorm.DB, filter model.GrapeFilter) ([]model.Grape, error) {
	var rows []model.Grape
	query := db.WithContext(ctx)
	if len(filter.GrapeTypes) > 0 {
		query = query.Where("grape_type IN ?", filter.GrapeTypes)
	}
	if err := query.Order("name ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("gormCatalogRepository.ListGrapes: %w", err)
	}

	grapes := make([]model.Grape, 0, len(rows))
	for i := range rows {
		if hasAll(rows[i].HasAroma, filter.Aromas) && hasAll(rows[i].HasBestRegion, filter.Regions) {
			grapes = append(grapes, rows[i])
		}
	}
	return grapes, nil
}

func hasAll(has func(string) bool, values []string) bool {
	for _, v := range values {
		if !has(v) {
			return false
		}
	}
	return true
}

func (r *gormCatalogRepository) FindGrape(ctx context.Context, db *gorm.DB, grapeID string) (*model.Grape, error) {
	var grape model.Grape
	if err := first(db.WithContext(ctx).Where("grape_id = ?", grapeID), &grape); err != nil {
		return nil, wrapFind("gormCatalogRepository.FindGrape", err)
	}
	return &grape, nil
}

func (r *gormCatalogRepository) ListAromaTags(ctx context.Context, db *gorm.DB, filter model.AromaFilter) ([]model.AromaTag, error) {
	tags := []model.AromaTag{}
	query := db.WithContext(ctx)
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if err := query.Order("category ASC, name_en ASC").Find(&tags).Error; err != nil {
		return nil, fmt.Errorf("gormCatalogRepository.ListAromaTags: %w", err)
	}
	return tags, nil
}

func (r *gormCatalogRepository) FindAromaTag(ctx context.Context, db *gorm.DB, tagID string) (*model.AromaTag, error) {
	var tag model.AromaTag
	if err := first(db.WithContext(ctx).Where("tag_id = ?", tagID), &tag); err != nil {
		return nil, wrapFind("gormCatalogRepository.FindAromaTag", err)
	}
	return &tag, nil
}

func (r *gormCatalogRepository) SearchGrapes(ctx context.Context, db *gorm.DB, q string, limit int) ([]model.Grape, error) {
	grapes := []model.Grape{}
	pattern := likePattern(q)
	err := db.WithContext(ctx).
		Where(likeAny("name", "description_pt", "description_en"), pattern, pattern, pattern).
		Order("name ASC").
		Limit(limit).
		Find(&grapes).Error
	if err != nil {
		return nil, fmt.Errorf("gormCatalogRepository.SearchGrapes: %w", err)
	}
	return grapes, nil
}

func (r *gormCatalogRepository) SearchRegions(ctx context.Context, db *gorm.DB, q string, limit int) ([]model.Region, error) {
	regions := []model.Region{}
	pattern := likePattern(q)
	err := db.WithContext(ctx).
		Where(likeAny("name", "name_pt", "name_en", "description_pt", "description_en"), pattern, pattern, pattern, pattern, pattern).
		Order("name ASC").
		Limit(limit).
		Find(&regions).Error
	if err != nil {
		return nil, fmt.Errorf("gormCatalogRepository.SearchRegions: %w", err)
	}
	return regions, nil
}

func (r *gormCatalogRepository) SearchCountries(ctx context.Context, db *gorm.DB, q string, limit int) ([]model.Country, error) {
	countries := []model.Country{}
	pattern := likePattern(q)
	err := db.WithContext(ctx).
		Where(likeAny("name_pt", "name_en"), pattern, pattern).
		Order("name_en ASC").
		Limit(limit).
		Find(&countries).Error
	if err != nil {
		return nil, fmt.Errorf("gormCatalogRepository.SearchCountries: %w", err)
	}
	return countries, nil
}

// likeAny は "LOWER(a) LIKE ? OR LOWER(b) LIKE ? ..." を組み立てます。
func likeAny(columns ...string) string {
	parts := make([]string, len(columns))
	for i, c := range columns {
		parts[i] = "LOWER(" + c + ") LIKE ? ESCAPE '\\'"
	}
	return strings.Join(parts, " OR ")
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func likePattern(q string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(q)) + "%"
}

// first は ErrRecordNotFound をそのまま返す First のラッパーです。
func first(query *gorm.DB, dst interface{}) error {
	return query.First(dst).Error
}

func wrapFind(op string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}
