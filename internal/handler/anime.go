package handler

import (
	"log/slog"
	"net/http"

	"github.com/msomdec/anime-service/internal/service"
)

// AnimeHandler serves the /v1/animes resource.
type AnimeHandler struct {
	animes *service.AnimeService
}

// NewAnimeHandler creates a new AnimeHandler.
func NewAnimeHandler(animes *service.AnimeService) *AnimeHandler {
	return &AnimeHandler{animes: animes}
}

// HandleList lists every anime, or those whose name contains ?name=.
func (h *AnimeHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	name := queryParam(r, "name")
	slog.DebugContext(r.Context(), "request received to list animes", "name", optional(name))

	animes, err := h.animes.FindAll(r.Context(), name)
	if err != nil {
		writeServiceError(w, r, "list animes", err)
		return
	}
	writeJSON(w, http.StatusOK, toAnimeResponses(animes))
}

// HandleGet returns a single anime by id.
func (h *AnimeHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	slog.DebugContext(r.Context(), "request to find anime by id", "id", id)

	anime, err := h.animes.FindByIDOrNotFound(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, "find anime", err)
		return
	}
	writeJSON(w, http.StatusOK, toAnimeResponse(*anime))
}

// HandleCreate saves a new anime and echoes it back with its id.
func (h *AnimeHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req animePostRequest
	if err := readJSON(r, &req); err != nil {
		writeServiceError(w, r, "create anime", err)
		return
	}
	anime, err := req.toAnime()
	if err != nil {
		writeServiceError(w, r, "create anime", err)
		return
	}

	saved, err := h.animes.Save(r.Context(), anime)
	if err != nil {
		writeServiceError(w, r, "create anime", err)
		return
	}
	writeJSON(w, http.StatusCreated, toAnimeResponse(*saved))
}

// HandleUpdate replaces an existing anime.
func (h *AnimeHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req animePutRequest
	if err := readJSON(r, &req); err != nil {
		writeServiceError(w, r, "update anime", err)
		return
	}
	anime, err := req.toAnime()
	if err != nil {
		writeServiceError(w, r, "update anime", err)
		return
	}
	slog.DebugContext(r.Context(), "request to update anime", "id", anime.ID)

	if err := h.animes.Update(r.Context(), anime); err != nil {
		writeServiceError(w, r, "update anime", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleDelete removes an anime by id.
func (h *AnimeHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	slog.DebugContext(r.Context(), "request to delete anime", "id", id)

	if err := h.animes.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, "delete anime", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
