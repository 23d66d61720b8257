package handlers

import (
	"net/http"
	"strconv"

	"winestudy/internal/middleware"
	"winestudy/internal/model"
	"winestudy/internal/service"
	"winestudy/internal/webutil"

	"github.com/go-chi/chi/v5"
)

// StudyHandler は学習トラック・レッスン・クイズ・進捗のエンドポイントです。
type StudyHandler struct {
	study    service.StudyService
	quiz     service.QuizService
	progress service.ProgressService
}

func NewStudyHandler(study service.StudyService, quiz service.QuizService, progress service.ProgressService) *StudyHandler {
	return &StudyHandler{study: study, quiz: quiz, progress: progress}
}

func (h *StudyHandler) ListTracks(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "ListTracks")
	tracks, err := h.study.ListTracks(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, tracks, logger)
}

func (h *StudyHandler) GetTrack(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "GetTrack")
	track, err := h.study.GetTrack(r.Context(), chi.URLParam(r, "track_id"))
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, track, logger)
}

func (h *StudyHandler) ListLessons(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "ListLessons")
	lessons, err := h.study.ListLessons(r.Context(), chi.URLParam(r, "track_id"))
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, lessons, logger)
}

func (h *StudyHandler) GetLesson(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "GetLesson")
	lesson, err := h.study.GetLesson(r.Context(), chi.URLParam(r, "lesson_id"))
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, lesson, logger)
}

func (h *StudyHandler) CompleteLesson(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "CompleteLesson")
	identity := identityOrReject(w, r, logger)
	if identity == nil {
		return
	}

	resp, err := h.study.CompleteLesson(r.Context(), identity.UserID, chi.URLParam(r, "lesson_id"))
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// Questions の limit は数値でなければ無視してデフォルト値を使います。
func (h *StudyHandler) Questions(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "Questions")
	params := webutil.QueryParams(r)

	limit := 0
	if raw := webutil.QueryString(params, "limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			logger.Warn("Ignoring non-numeric limit", "limit", raw)
		} else {
			limit = n
		}
	}

	questions, err := h.quiz.Questions(r.Context(), chi.URLParam(r, "track_id"), limit)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, questions, logger)
}

// SubmitAnswer は未認証でも採点結果を返します。認証済みで正解の場合のみスコアが加算されます。
func (h *StudyHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "SubmitAnswer")

	var req model.QuizSubmitRequest
	if !decodeAndValidate(w, r, logger, &req, "question_id and selected_answer are required") {
		return
	}

	resp, err := h.quiz.Submit(r.Context(), middleware.GetIdentity(r.Context()), &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

func (h *StudyHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "GetProgress")
	identity := identityOrReject(w, r, logger)
	if identity == nil {
		return
	}

	progress, err := h.progress.Get(r.Context(), identity.UserID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, progress, logger)
}
