package handlers

import (
	"net/http"

	"winestudy/internal/middleware"
	"winestudy/internal/service"
	"winestudy/internal/webutil"
)

// SeedHandler は管理用の参照データ投入です。ルーターでは AdminToken の後ろにのみ置きます。
type SeedHandler struct {
	service service.SeedService
}

func NewSeedHandler(s service.SeedService) *SeedHandler {
	return &SeedHandler{service: s}
}

func (h *SeedHandler) Seed(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "Seed")
	resp, err := h.service.Seed(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}
