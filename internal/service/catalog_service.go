//go:generate mockery --name CatalogService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"strings"

	"winestudy/internal/middleware"
	"winestudy/internal/model"
	"winestudy/internal/repository"

	"gorm.io/gorm"
)

// CatalogService は参照データ (国・地域・ブドウ・アロマ) の読み取りを提供します。認証は不要です。
type CatalogService interface {
	ListCountries(ctx context.Context, filter model.CountryFilter) ([]model.Country, error)
	GetCountry(ctx context.Context, countryID string) (*model.Country, error)
	ListRegions(ctx context.Context, filter model.RegionFilter) ([]model.Region, error)
	GetRegion(ctx context.Context, regionID string) (*model.Region, error)
	ListGrapes(ctx context.Context, filter model.GrapeFilter) ([]model.GrapeResponse, error)
	GetGrape(ctx context.Context, grapeID string) (*model.GrapeResponse, error)
	ListAromaTags(ctx context.Context, filter model.AromaFilter) ([]model.AromaTag, error)
	GetAromaTag(ctx context.Context, tagID string) (*model.AromaTag, error)
	GrapesByAroma(ctx context.Context, tagID string) ([]model.GrapeResponse, error)
	Search(ctx context.Context, q, category string) (*model.SearchResult, error)
}

type catalogService struct {
	db          *gorm.DB
	repo        repository.CatalogRepository
	searchLimit int
}

func NewCatalogService(db *gorm.DB, repo repository.CatalogRepository, searchLimit int) CatalogService {
	return &catalogService{db: db, repo: repo, searchLimit: searchLimit}
}

// notFoundOr は ErrNotFound を指定メッセージの 404 に、それ以外を 500 に変換します。
func notFoundOr(ctx context.Context, err error, code, message string) error {
	if errors.Is(err, model.ErrNotFound) {
		return model.NewAppError(code, message, "", model.ErrNotFound)
	}
	middleware.GetLogger(ctx).Error("Store query failed", "error", err)
	return errInternal(err)
}

func (s *catalogService) ListCountries(ctx context.Context, filter model.CountryFilter) ([]model.Country, error) {
	countries, err := s.repo.ListCountries(ctx, s.db, filter)
	if err != nil {
		return nil, notFoundOr(ctx, err, "", "")
	}
	return countries, nil
}

func (s *catalogService) GetCountry(ctx context.Context, countryID string) (*model.Country, error) {
	country, err := s.repo.FindCountry(ctx, s.db, countryID)
	if err != nil {
		return nil, notFoundOr(ctx, err, "COUNTRY_NOT_FOUND", "Country not found")
	}
	return country, nil
}

func (s *catalogService) ListRegions(ctx context.Context, filter model.RegionFilter) ([]model.Region, error) {
	regions, err := s.repo.ListRegions(ctx, s.db, filter)
	if err != nil {
		return nil, notFoundOr(ctx, err, "", "")
	}
	return regions, nil
}

func (s *catalogService) GetRegion(ctx context.Context, regionID string) (*model.Region, error) {
	region, err := s.repo.FindRegion(ctx, s.db, regionID)
	if err != nil {
		return nil, notFoundOr(ctx, err, "REGION_NOT_FOUND", "Region not found")
	}
	return region, nil
}

func toGrapeResponses(grapes []model.Grape) []model.GrapeResponse {
	out := make([]model.GrapeResponse, len(grapes))
	for i := range grapes {
		out[i] = model.NewGrapeResponse(&grapes[i])
	}
	return out
}

func (s *catalogService) ListGrapes(ctx context.Context, filter model.GrapeFilter) ([]model.GrapeResponse, error) {
	grapes, err := s.repo.ListGrapes(ctx, s.db, filter)
	if err != nil {
		return nil, notFoundOr(ctx, err, "", "")
	}
	return toGrapeResponses(grapes), nil
}

func (s *catalogService) GetGrape(ctx context.Context, grapeID string) (*model.GrapeResponse, error) {
	grape, err := s.repo.FindGrape(ctx, s.db, grapeID)
	if err != nil {
		return nil, notFoundOr(ctx, err, "GRAPE_NOT_FOUND", "Grape not found")
	}
	resp := model.NewGrapeResponse(grape)
	return &resp, nil
}

func (s *catalogService) ListAromaTags(ctx context.Context, filter model.AromaFilter) ([]model.AromaTag, error) {
	tags, err := s.repo.ListAromaTags(ctx, s.db, filter)
	if err != nil {
		return nil, notFoundOr(ctx, err, "", "")
	}
	return tags, nil
}

func (s *catalogService) GetAromaTag(ctx context.Context, tagID string) (*model.AromaTag, error) {
	tag, err := s.repo.FindAromaTag(ctx, s.db, tagID)
	if err != nil {
		return nil, notFoundOr(ctx, err, "AROMA_NOT_FOUND", "Aroma tag not found")
	}
	return tag, nil
}

// GrapesByAroma はタグIDを値としてアロマリストに含むブドウを返します (結合テーブルではなく逆引き)。
// 未知のタグでもエラーにせず空配列を返します。
func (s *catalogService) GrapesByAroma(ctx context.Context, tagID string) ([]model.GrapeResponse, error) {
	return s.ListGrapes(ctx, model.GrapeFilter{Aromas: []string{tagID}})
}

func (s *catalogService) Search(ctx context.Context, q, category string) (*model.SearchResult, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil, model.NewAppError("VALIDATION_ERROR", "Query parameter q is required", "q", model.ErrInvalidInput)
	}
	switch category {
	case "", model.SearchCategoryGrapes, model.SearchCategoryRegions, model.SearchCategoryCountries:
	default:
		return nil, model.NewAppError("VALIDATION_ERROR", "Invalid category", "category", model.ErrInvalidInput)
	}

	result := &model.SearchResult{
		Grapes:    []model.GrapeResponse{},
		Regions:   []model.Region{},
		Countries: []model.Country{},
	}
	if category == "" || category == model.SearchCategoryGrapes {
		grapes, err := s.repo.SearchGrapes(ctx, s.db, q, s.searchLimit)
		if err != nil {
			return nil, notFoundOr(ctx, err, "", "")
		}
		result.Grapes = toGrapeResponses(grapes)
	}
	if category == "" || category == model.SearchCategoryRegions {
		regions, err := s.repo.SearchRegions(ctx, s.db, q, s.searchLimit)
		if err != nil {
			return nil, notFoundOr(ctx, err, "", "")
		}
		result.Regions = regions
	}
	if category == "" || category == model.SearchCategoryCountries {
		countries, err := s.repo.SearchCountries(ctx, s.db, q, s.searchLimit)
		if err != nil {
			return nil, notFoundOr(ctx, err, "", "")
		}
		result.Countries = countries
	}
	return result, nil
}
