package handler

import (
	"encoding/json"
	"net/http"

	"casthub/internal/api/middleware"
	"casthub/internal/app/service"
	"casthub/internal/common"
	"casthub/internal/domain/model"

	"github.com/go-chi/chi/v5"
)

// EpisodeHandler routes are mounted under /podcasts/{podcastID}/episodes, so
// every operation is addressed through the parent podcast's id.
type EpisodeHandler struct {
	episodeService *service.EpisodeService
}

func NewEpisodeHandler(episodeService *service.EpisodeService) *EpisodeHandler {
	return &EpisodeHandler{episodeService: episodeService}
}

func (h *EpisodeHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.listEpisodes)

	r.Group(func(privateRouter chi.Router) {
		privateRouter.Use(middleware.RequireUser)
		privateRouter.Post("/", h.createEpisode)
		privateRouter.Put("/{episodeID}", h.updateEpisode)
		privateRouter.Delete("/{episodeID}", h.deleteEpisode)
	})
}

type listEpisodesResponse struct {
	common.Envelope
	Episodes []model.Episode `json:"episodes"`
}

func (h *EpisodeHandler) listEpisodes(w http.ResponseWriter, r *http.Request) {
	episodes, err := h.episodeService.ListEpisodes(r.Context(), chi.URLParam(r, "podcastID"))
	if err != nil {
		common.RespondWithFailure(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, listEpisodesResponse{Envelope: common.Success(), Episodes: episodes})
}

type createEpisodeResponse struct {
	common.Envelope
	ID string `json:"id,omitempty"`
}

func (h *EpisodeHandler) createEpisode(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithFault(w, http.StatusForbidden, "Forbidden resource")
		return
	}

	var req service.CreateEpisodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithJSON(w, http.StatusOK, common.Fail("Invalid request payload: "+err.Error()))
		return
	}

	episode, err := h.episodeService.CreateEpisode(r.Context(), userID, chi.URLParam(r, "podcastID"), req)
	if err != nil {
		common.RespondWithFailure(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, createEpisodeResponse{Envelope: common.Success(), ID: episode.ID})
}

func (h *EpisodeHandler) updateEpisode(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithFault(w, http.StatusForbidden, "Forbidden resource")
		return
	}

	var req service.UpdateEpisodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithJSON(w, http.StatusOK, common.Fail("Invalid request payload: "+err.Error()))
		return
	}

	_, err := h.episodeService.UpdateEpisode(r.Context(), userID,
		chi.URLParam(r, "podcastID"), chi.URLParam(r, "episodeID"), req)
	if err != nil {
		common.RespondWithFailure(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, common.Success())
}

func (h *EpisodeHandler) deleteEpisode(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithFault(w, http.StatusForbidden, "Forbidden resource")
		return
	}

	err := h.episodeService.DeleteEpisode(r.Context(), userID,
		chi.URLParam(r, "podcastID"), chi.URLParam(r, "episodeID"))
	if err != nil {
		common.RespondWithFailure(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, common.Success())
}
