package handlers

import (
	"net/http"

	"winestudy/internal/middleware"
	"winestudy/internal/model"
	"winestudy/internal/service"
	"winestudy/internal/webutil"

	"github.com/go-chi/chi/v5"
)

// TastingHandler はテイスティング記録のエンドポイントです。すべて本人のデータのみ扱います。
type TastingHandler struct {
	service service.TastingService
}

func NewTastingHandler(s service.TastingService) *TastingHandler {
	return &TastingHandler{service: s}
}

func (h *TastingHandler) ListTastings(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "ListTastings")
	identity := identityOrReject(w, r, logger)
	if identity == nil {
		return
	}

	notes, err := h.service.List(r.Context(), identity.UserID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if notes == nil {
		notes = []model.TastingNote{}
	}
	logger.Info("Tastings listed", "count", len(notes))
	webutil.RespondWithJSON(w, http.StatusOK, notes, logger)
}

func (h *TastingHandler) GetTasting(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "GetTasting")
	identity := identityOrReject(w, r, logger)
	if identity == nil {
		return
	}

	note, err := h.service.Get(r.Context(), identity.UserID, chi.URLParam(r, "tasting_id"))
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, note, logger)
}

func (h *TastingHandler) CreateTasting(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "CreateTasting")
	identity := identityOrReject(w, r, logger)
	if identity == nil {
		return
	}

	var req model.CreateTastingRequest
	if !decodeAndValidate(w, r, logger, &req, "wine_name is required") {
		return
	}

	note, err := h.service.Create(r.Context(), identity.UserID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusCreated, note, logger)
}

func (h *TastingHandler) DeleteTasting(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "DeleteTasting")
	identity := identityOrReject(w, r, logger)
	if identity == nil {
		return
	}

	resp, err := h.service.Delete(r.Context(), identity.UserID, chi.URLParam(r, "tasting_id"))
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}
