package handlers

import (
	"net/http"

	"winestudy/internal/config"
	"winestudy/internal/middleware"
	"winestudy/internal/model"
	"winestudy/internal/service"
	"winestudy/internal/webutil"

	"github.com/go-chi/chi/v5"
)

// CatalogHandler は国・地域・ブドウ・アロマタグ・検索の公開エンドポイントです。
type CatalogHandler struct {
	service service.CatalogService
}

func NewCatalogHandler(s service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: s}
}

func (h *CatalogHandler) Root(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())
	webutil.RespondWithJSON(w, http.StatusOK, model.APIInfo{Message: config.AppName, Version: config.AppVersion}, logger)
}

// ListCountries は ?world_type= (old_world / new_world) で絞り込めます
func (h *CatalogHandler) ListCountries(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "ListCountries")
	filter := model.CountryFilter{WorldType: webutil.QueryString(webutil.QueryParams(r), "world_type")}

	countries, err := h.service.ListCountries(r.Context(), filter)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, countries, logger)
}

func (h *CatalogHandler) GetCountry(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "GetCountry")
	country, err := h.service.GetCountry(r.Context(), chi.URLParam(r, "country_id"))
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, country, logger)
}

// ListRegions は ?country_id= と ?grape= (主要品種名) で絞り込めます
func (h *CatalogHandler) ListRegions(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "ListRegions")
	params := webutil.QueryParams(r)
	filter := model.RegionFilter{
		CountryID: webutil.QueryString(params, "country_id"),
		Grape:     webutil.QueryString(params, "grape"),
	}

	regions, err := h.service.ListRegions(r.Context(), filter)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, regions, logger)
}

func (h *CatalogHandler) GetRegion(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "GetRegion")
	region, err := h.service.GetRegion(r.Context(), chi.URLParam(r, "region_id"))
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, region, logger)
}

// ListGrapes の grape_type / aroma / region は繰り返し指定できます。
// grape_type はいずれかに一致、aroma と region はすべてを含むものに絞り込みます。
func (h *CatalogHandler) ListGrapes(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "ListGrapes")
	params := webutil.QueryParams(r)
	filter := model.GrapeFilter{
		GrapeTypes: webutil.QueryStrings(params, "grape_type"),
		Aromas:     webutil.QueryStrings(params, "aroma"),
		Regions:    webutil.QueryStrings(params, "region"),
	}

	grapes, err := h.service.ListGrapes(r.Context(), filter)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, grapes, logger)
}

func (h *CatalogHandler) GetGrape(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "GetGrape")
	grape, err := h.service.GetGrape(r.Context(), chi.URLParam(r, "grape_id"))
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, grape, logger)
}

func (h *CatalogHandler) ListAromaTags(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "ListAromaTags")
	filter := model.AromaFilter{Category: webutil.QueryString(webutil.QueryParams(r), "category")}

	tags, err := h.service.ListAromaTags(r.Context(), filter)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, tags, logger)
}

func (h *CatalogHandler) GetAromaTag(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "GetAromaTag")
	tag, err := h.service.GetAromaTag(r.Context(), chi.URLParam(r, "tag_id"))
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, tag, logger)
}

func (h *CatalogHandler) GrapesByAroma(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "GrapesByAroma")
	grapes, err := h.service.GrapesByAroma(r.Context(), chi.URLParam(r, "tag_id"))
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, grapes, logger)
}

// Search は ?q= (必須) と ?category= (grapes / regions / countries) を受け付けます
func (h *CatalogHandler) Search(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "Search")
	params := webutil.QueryParams(r)

	result, err := h.service.Search(r.Context(), webutil.QueryString(params, "q"), webutil.QueryString(params, "category"))
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}
