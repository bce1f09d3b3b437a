package handler

import (
	"encoding/json"
	"net/http"

	"github.com/BloggingApp/social-service/internal/dto"
	"github.com/google/uuid"
)

func (h *Handler) usersCreate(w http.ResponseWriter, r *http.Request) {
	var input dto.CreateUser
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.Respond(w, Resp{"error": err.Error()}, http.StatusBadRequest)
		return
	}

	user, err := h.services.User.Create(r.Context(), input.Username, input.Email)
	if err != nil {
		h.Respond(w, Resp{"error": err.Error()}, statusFor(err))
		return
	}

	h.Respond(w, user, http.StatusCreated)
}

func (h *Handler) usersGetAll(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.User.GetAll(r.Context())
	if err != nil {
		h.Respond(w, Resp{"error": err.Error()}, statusFor(err))
		return
	}

	h.Respond(w, users, http.StatusOK)
}

func (h *Handler) usersGet(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.Respond(w, Resp{"error": errInvalidUserID.Error()}, http.StatusBadRequest)
		return
	}

	user, err := h.services.User.GetByID(r.Context(), id)
	if err != nil {
		h.Respond(w, Resp{"error": err.Error()}, statusFor(err))
		return
	}

	h.Respond(w, user, http.StatusOK)
}

func (h *Handler) usersUpdateBio(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.Respond(w, Resp{"error": errInvalidUserID.Error()}, http.StatusBadRequest)
		return
	}

	var input dto.UpdateUserBio
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.Respond(w, Resp{"error": err.Error()}, http.StatusBadRequest)
		return
	}

	user, err := h.services.User.UpdateBio(r.Context(), id, input.Bio)
	if err != nil {
		h.Respond(w, Resp{"error": err.Error()}, statusFor(err))
		return
	}

	h.Respond(w, user, http.StatusOK)
}
