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

type UserHandler struct {
	authService *service.AuthService
}

func NewUserHandler(authService *service.AuthService) *UserHandler {
	return &UserHandler{authService: authService}
}

func (h *UserHandler) RegisterRoutes(r chi.Router) {
	r.Post("/", h.createAccount)
	r.Post("/login", h.login)

	r.Group(func(privateRouter chi.Router) {
		privateRouter.Use(middleware.RequireUser)
		privateRouter.Get("/me", h.me)
		privateRouter.Put("/me", h.editProfile)
		privateRouter.Get("/{userID}", h.getUser)
	})
}

type createAccountResponse struct {
	common.Envelope
	ID string `json:"id,omitempty"`
}

func (h *UserHandler) createAccount(w http.ResponseWriter, r *http.Request) {
	var req service.CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithJSON(w, http.StatusOK, common.Fail("Invalid request payload: "+err.Error()))
		return
	}

	user, err := h.authService.CreateAccount(r.Context(), req)
	if err != nil {
		common.RespondWithFailure(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, createAccountResponse{Envelope: common.Success(), ID: user.ID})
}

type loginResponse struct {
	common.Envelope
	Token string `json:"token,omitempty"`
}

func (h *UserHandler) login(w http.ResponseWriter, r *http.Request) {
	var req service.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithJSON(w, http.StatusOK, common.Fail("Invalid request payload: "+err.Error()))
		return
	}

	token, err := h.authService.Login(r.Context(), req)
	if err != nil {
		common.RespondWithFailure(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, loginResponse{Envelope: common.Success(), Token: token})
}

type profileResponse struct {
	common.Envelope
	User *model.User `json:"user,omitempty"`
}

func (h *UserHandler) me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithFault(w, http.StatusForbidden, "Forbidden resource")
		return
	}
	h.respondProfile(w, r, userID)
}

func (h *UserHandler) getUser(w http.ResponseWriter, r *http.Request) {
	h.respondProfile(w, r, chi.URLParam(r, "userID"))
}

func (h *UserHandler) respondProfile(w http.ResponseWriter, r *http.Request, userID string) {
	user, err := h.authService.Profile(r.Context(), userID)
	if err != nil {
		common.RespondWithFailure(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, profileResponse{Envelope: common.Success(), User: user})
}

func (h *UserHandler) editProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithFault(w, http.StatusForbidden, "Forbidden resource")
		return
	}

	var req service.EditProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithJSON(w, http.StatusOK, common.Fail("Invalid request payload: "+err.Error()))
		return
	}

	if err := h.authService.EditProfile(r.Context(), userID, req); err != nil {
		common.RespondWithFailure(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, common.Success())
}
