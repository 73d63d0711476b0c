package handler

import (
	"log/slog"
	"net/http"

	"github.com/msomdec/anime-service/internal/service"
)

// UserHandler serves the /v1/users resource.
type UserHandler struct {
	users *service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// HandleList lists users filtered by ?firstName=, ?lastName= or ?email=.
func (h *UserHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	filter := service.UserFilter{
		FirstName: queryParam(r, "firstName"),
		LastName:  queryParam(r, "lastName"),
		Email:     queryParam(r, "email"),
	}
	slog.DebugContext(r.Context(), "request received to list users",
		"firstName", optional(filter.FirstName), "lastName", optional(filter.LastName), "email", optional(filter.Email))

	users, err := h.users.FindAll(r.Context(), filter)
	if err != nil {
		writeServiceError(w, r, "list users", err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponses(users))
}

// HandleGet returns a single user by id.
func (h *UserHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.users.FindByIDOrNotFound(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, "find user", err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(*user))
}

// HandleCreate saves a new user.
func (h *UserHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req userPostRequest
	if err := readJSON(r, &req); err != nil {
		writeServiceError(w, r, "create user", err)
		return
	}
	user, err := req.toUser()
	if err != nil {
		writeServiceError(w, r, "create user", err)
		return
	}

	saved, err := h.users.Save(r.Context(), user)
	if err != nil {
		writeServiceError(w, r, "create user", err)
		return
	}
	writeJSON(w, http.StatusCreated, toUserResponse(*saved))
}

// HandleUpdate replaces an existing user.
func (h *UserHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req userPutRequest
	if err := readJSON(r, &req); err != nil {
		writeServiceError(w, r, "update user", err)
		return
	}
	user, err := req.toUser()
	if err != nil {
		writeServiceError(w, r, "update user", err)
		return
	}

	if err := h.users.Update(r.Context(), user); err != nil {
		writeServiceError(w, r, "update user", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleDelete removes a user by id.
func (h *UserHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.users.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, "delete user", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
