package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.followtheprocess.codes/scaffold/internal/store"
)

// userResponse is the body returned when a user is created or updated.
type userResponse struct {
	Message string      `json:"message"`
	User    *store.User `json:"user,omitempty"`
}

func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	orgID := chi.URLParam(r, "org_id")

	if !s.store.HasOrg(orgID) {
		writeError(w, http.StatusNotFound, store.ErrOrgNotFound.Error())
		return
	}

	user, err := decodeUser(r)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if err := s.store.CreateUser(orgID, user); err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, userResponse{Message: "User created", User: &user})
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	user, err := s.store.GetUser(chi.URLParam(r, "org_id"), chi.URLParam(r, "org_user_id"))
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (s *Server) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	orgID := chi.URLParam(r, "org_id")
	userID := chi.URLParam(r, "org_user_id")

	if _, err := s.store.GetUser(orgID, userID); err != nil {
		writeStoreError(w, err)
		return
	}

	user, err := decodeUser(r)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if err := s.store.UpdateUser(orgID, userID, user); err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, userResponse{Message: "User updated", User: &user})
}

func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteUser(chi.URLParam(r, "org_id"), chi.URLParam(r, "org_user_id")); err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, userResponse{Message: "User deleted"})
}

// decodeUser reads and validates a user from the request body.
func decodeUser(r *http.Request) (store.User, error) {
	var user store.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		return store.User{}, fmt.Errorf("could not decode user: %w", err)
	}

	if err := user.Validate(); err != nil {
		return store.User{}, err
	}

	return user, nil
}

// writeStoreError maps a store error onto the matching HTTP status.
func writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrOrgNotFound), errors.Is(err, store.ErrUserNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, store.ErrUserExists):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
