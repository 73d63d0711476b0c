package handler

import (
	"net/http"

	"github.com/msomdec/anime-service/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux. POST /v1/producers
// requires the apiKeyHeader request header.
func RegisterRoutes(mux *http.ServeMux, animes *service.AnimeService, producers *service.ProducerService, users *service.UserService, apiKeyHeader string) {
	mux.HandleFunc("GET /healthz", HandleHealthz)

	animeHandler := NewAnimeHandler(animes)
	mux.HandleFunc("GET /v1/animes", animeHandler.HandleList)
	mux.HandleFunc("GET /v1/animes/{id}", animeHandler.HandleGet)
	mux.HandleFunc("POST /v1/animes", animeHandler.HandleCreate)
	mux.HandleFunc("PUT /v1/animes", animeHandler.HandleUpdate)
	mux.HandleFunc("DELETE /v1/animes/{id}", animeHandler.HandleDelete)

	producerHandler := NewProducerHandler(producers)
	mux.HandleFunc("GET /v1/producers", producerHandler.HandleList)
	mux.HandleFunc("GET /v1/producers/{id}", producerHandler.HandleGet)
	mux.Handle("POST /v1/producers", RequireHeader(apiKeyHeader, http.HandlerFunc(producerHandler.HandleCreate)))
	mux.HandleFunc("PUT /v1/producers", producerHandler.HandleUpdate)
	mux.HandleFunc("DELETE /v1/producers/{id}", producerHandler.HandleDelete)

	userHandler := NewUserHandler(users)
	mux.HandleFunc("GET /v1/users", userHandler.HandleList)
	mux.HandleFunc("GET /v1/users/{id}", userHandler.HandleGet)
	mux.HandleFunc("POST /v1/users", userHandler.HandleCreate)
	mux.HandleFunc("PUT /v1/users", userHandler.HandleUpdate)
	mux.HandleFunc("DELETE /v1/users/{id}", userHandler.HandleDelete)

	mux.HandleFunc("GET /v1/greetings", HandleGreeting)
	mux.HandleFunc("POST /v1/greetings", HandleSaveGreeting)
	mux.HandleFunc("GET /v1/heroes", HandleListHeroes)
	mux.HandleFunc("GET /v1/heroes/filter", HandleFilterHeroes)
	mux.HandleFunc("GET /v1/heroes/filterList", HandleFilterHeroesList)
}
