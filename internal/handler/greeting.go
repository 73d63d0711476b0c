package handler

import (
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"slices"
	"strings"
)

const greeting = "OMAE WA MOU SHINDEIRU"

// heroes is the fixed list served by /v1/heroes.
var heroes = []string{"Ryuko Matoi", "Luffy", "Percy Jackson"}

// maxGreetingBody bounds the POST /v1/greetings body.
const maxGreetingBody = 1 << 16

// HandleGreeting responds with a plain-text greeting.
func HandleGreeting(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, greeting)
}

// HandleSaveGreeting logs the raw body and answers with a random id in [1, 1000).
func HandleSaveGreeting(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxGreetingBody))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Request body too large")
		return
	}
	slog.InfoContext(r.Context(), "save greeting", "name", string(body))
	writeJSON(w, http.StatusOK, rand.Int64N(999)+1)
}

// HandleListHeroes returns every hero.
func HandleListHeroes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, heroes)
}

// HandleFilterHeroes returns the heroes equal to ?name=, ignoring case.
func HandleFilterHeroes(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	out := []string{}
	for _, h := range heroes {
		if strings.EqualFold(h, name) {
			out = append(out, h)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

// HandleFilterHeroesList returns the heroes named exactly in ?names=, which may
// be repeated or comma separated.
func HandleFilterHeroesList(w http.ResponseWriter, r *http.Request) {
	names := queryList(r, "names")
	out := []string{}
	for _, h := range heroes {
		if slices.Contains(names, h) {
			out = append(out, h)
		}
	}
	writeJSON(w, http.StatusOK, out)
}
