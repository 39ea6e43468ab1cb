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

type PodcastHandler struct {
	podcastService *service.PodcastService
}

func NewPodcastHandler(podcastService *service.PodcastService) *PodcastHandler {
	return &PodcastHandler{podcastService: podcastService}
}

func (h *PodcastHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.listPodcasts)          // GET /api/v1/podcasts
	r.Get("/{podcastID}", h.getPodcast) // GET /api/v1/podcasts/{id}

	r.Group(func(privateRouter chi.Router) {
		privateRouter.Use(middleware.RequireUser)
		privateRouter.Post("/", h.createPodcast)
		privateRouter.Put("/{podcastID}", h.updatePodcast)
		privateRouter.Delete("/{podcastID}", h.deletePodcast)
	})
}

type createPodcastResponse struct {
	common.Envelope
	ID string `json:"id,omitempty"`
}

func (h *PodcastHandler) createPodcast(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithFault(w, http.StatusForbidden, "Forbidden resource")
		return
	}
	userRole, _ := middleware.GetUserRoleFromContext(r.Context())

	var req service.CreatePodcastRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithJSON(w, http.StatusOK, common.Fail("Invalid request payload: "+err.Error()))
		return
	}

	podcast, err := h.podcastService.CreatePodcast(r.Context(), userID, userRole, req)
	if err != nil {
		common.RespondWithFailure(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, createPodcastResponse{Envelope: common.Success(), ID: podcast.ID})
}

type listPodcastsResponse struct {
	common.Envelope
	Podcasts []model.Podcast `json:"podcasts"`
}

func (h *PodcastHandler) listPodcasts(w http.ResponseWriter, r *http.Request) {
	podcasts, err := h.podcastService.ListPodcasts(r.Context())
	if err != nil {
		common.RespondWithFailure(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, listPodcastsResponse{Envelope: common.Success(), Podcasts: podcasts})
}

type getPodcastResponse struct {
	common.Envelope
	Podcast *model.Podcast `json:"podcast,omitempty"`
}

func (h *PodcastHandler) getPodcast(w http.ResponseWriter, r *http.Request) {
	podcast, err := h.podcastService.GetPodcast(r.Context(), chi.URLParam(r, "podcastID"))
	if err != nil {
		common.RespondWithFailure(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, getPodcastResponse{Envelope: common.Success(), Podcast: podcast})
}

func (h *PodcastHandler) updatePodcast(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithFault(w, http.StatusForbidden, "Forbidden resource")
		return
	}

	var req service.UpdatePodcastRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithJSON(w, http.StatusOK, common.Fail("Invalid request payload: "+err.Error()))
		return
	}

	if _, err := h.podcastService.UpdatePodcast(r.Context(), userID, chi.URLParam(r, "podcastID"), req); err != nil {
		common.RespondWithFailure(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, common.Success())
}

func (h *PodcastHandler) deletePodcast(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithFault(w, http.StatusForbidden, "Forbidden resource")
		return
	}

	if err := h.podcastService.DeletePodcast(r.Context(), userID, chi.URLParam(r, "podcastID")); err != nil {
		common.RespondWithFailure(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, common.Success())
}
