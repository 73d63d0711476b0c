package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/msomdec/anime-service/internal/domain"
	"github.com/msomdec/anime-service/internal/handler"
	"github.com/msomdec/anime-service/internal/repository/memory"
	"github.com/msomdec/anime-service/internal/service"
)

const testAPIKeyHeader = "x-api-key"

var seedTime = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

// testServer starts an httptest server over memory repositories seeded with
// the given entities.
func testServer(t *testing.T, animes []domain.Anime, producers []domain.Producer, users []domain.User) *httptest.Server {
	t.Helper()

	animeService := service.NewAnimeService(memory.NewAnimeRepository(memory.NewAnimeStore(animes...)))
	producerService := service.NewProducerService(memory.NewProducerRepository(memory.NewProducerStore(producers...)))
	userService := service.NewUserService(memory.NewUserRepository(memory.NewUserStore(users...)))

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, animeService, producerService, userService, testAPIKeyHeader)

	srv := httptest.NewServer(handler.RequestLogger(nil, mux))
	t.Cleanup(srv.Close)
	return srv
}

func defaultServer(t *testing.T) *httptest.Server {
	t.Helper()
	return testServer(t,
		[]domain.Anime{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}},
		[]domain.Producer{
			{ID: 1, Name: "Mappa", CreatedAt: seedTime},
			{ID: 2, Name: "Madhouse", CreatedAt: seedTime},
		},
		[]domain.User{
			{ID: 1, FirstName: "William", LastName: "Suane", Email: "william@example.com"},
			{ID: 2, FirstName: "Rezende", LastName: "Evil", Email: "rezende@example.com"},
		},
	)
}

// do sends a request with an optional JSON body and returns the response.
func do(t *testing.T, method, url string, body any, header http.Header) *http.Response {
	t.Helper()

	var r io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			r = bytes.NewBufferString(b)
		default:
			data, err := json.Marshal(b)
			if err != nil {
				t.Fatalf("marshal body: %v", err)
			}
			r = bytes.NewReader(data)
		}
	}

	req, err := http.NewRequest(method, url, r)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode(t *testing.T, resp *http.Response, dst any) {
	t.Helper()
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		t.Fatalf("decode body: %v", err)
	}
}

func expectStatus(t *testing.T, resp *http.Response, want int) {
	t.Helper()
	if resp.StatusCode != want {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("%s %s: expected %d, got %d: %s", resp.Request.Method, resp.Request.URL.Path, want, resp.StatusCode, body)
	}
}

type errorBody struct {
	Error  string   `json:"error"`
	Errors []string `json:"errors"`
}

func expectError(t *testing.T, resp *http.Response, status int, message string) errorBody {
	t.Helper()
	expectStatus(t, resp, status)
	var body errorBody
	decode(t, resp, &body)
	if message != "" && body.Error != message {
		t.Fatalf("expected error %q, got %q", message, body.Error)
	}
	return body
}
