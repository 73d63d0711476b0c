package handler

import (
	"log/slog"
	"net/http"

	"github.com/msomdec/anime-service/internal/service"
)

// ProducerHandler serves the /v1/producers resource.
type ProducerHandler struct {
	producers *service.ProducerService
}

// NewProducerHandler creates a new ProducerHandler.
func NewProducerHandler(producers *service.ProducerService) *ProducerHandler {
	return &ProducerHandler{producers: producers}
}

// HandleList lists every producer, or those whose name contains ?name=.
func (h *ProducerHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	name := queryParam(r, "name")
	slog.DebugContext(r.Context(), "request received to list all producers", "name", optional(name))

	producers, err := h.producers.FindAll(r.Context(), name)
	if err != nil {
		writeServiceError(w, r, "list producers", err)
		return
	}
	writeJSON(w, http.StatusOK, toProducerResponses(producers))
}

// HandleGet returns a single producer by id.
func (h *ProducerHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	slog.DebugContext(r.Context(), "request to find producer by id", "id", id)

	producer, err := h.producers.FindByIDOrNotFound(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, "find producer", err)
		return
	}
	writeJSON(w, http.StatusOK, toProducerResponse(*producer))
}

// HandleCreate saves a new producer. The route is wrapped in RequireHeader.
func (h *ProducerHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req producerPostRequest
	if err := readJSON(r, &req); err != nil {
		writeServiceError(w, r, "create producer", err)
		return
	}
	producer, err := req.toProducer()
	if err != nil {
		writeServiceError(w, r, "create producer", err)
		return
	}

	saved, err := h.producers.Save(r.Context(), producer)
	if err != nil {
		writeServiceError(w, r, "create producer", err)
		return
	}
	writeJSON(w, http.StatusCreated, toProducerResponse(*saved))
}

// HandleUpdate replaces an existing producer, keeping its creation time.
func (h *ProducerHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req producerPutRequest
	if err := readJSON(r, &req); err != nil {
		writeServiceError(w, r, "update producer", err)
		return
	}
	producer, err := req.toProducer()
	if err != nil {
		writeServiceError(w, r, "update producer", err)
		return
	}
	slog.DebugContext(r.Context(), "request to update producer", "id", producer.ID)

	if err := h.producers.Update(r.Context(), producer); err != nil {
		writeServiceError(w, r, "update producer", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleDelete removes a producer by id.
func (h *ProducerHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	slog.DebugContext(r.Context(), "request to delete producer", "id", id)

	if err := h.producers.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, "delete producer", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
