package handler_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/msomdec/anime-service/internal/domain"
	"github.com/msomdec/anime-service/internal/handler"
	"github.com/msomdec/anime-service/internal/repository/memory"
	"github.com/msomdec/anime-service/internal/service"
)

var errStorage = errors.New("storage unavailable")

// brokenAnimes fails every call with errStorage.
type brokenAnimes struct{}

func (brokenAnimes) FindAll(context.Context) ([]domain.Anime, error) { return nil, errStorage }
func (brokenAnimes) FindByID(context.Context, int64) (*domain.Anime, error) {
	return nil, errStorage
}
func (brokenAnimes) FindByName(context.Context, *string) ([]domain.Anime, error) {
	return nil, errStorage
}
func (brokenAnimes) Save(context.Context, *domain.Anime) error { return errStorage }
func (brokenAnimes) Delete(context.Context, int64) error { return errStorage }
func (brokenAnimes) Update(context.Context, *domain.Anime) error { return errStorage }

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestInternalErrorLogsRequestID(t *testing.T) {
	logs := captureLogs(t)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux,
		service.NewAnimeService(brokenAnimes{}),
		service.NewProducerService(memory.NewProducerRepository(memory.NewProducerStore())),
		service.NewUserService(memory.NewUserRepository(memory.NewUserStore())),
		testAPIKeyHeader,
	)
	srv := httptest.NewServer(handler.RequestLogger(nil, mux))
	defer srv.Close()

	header := http.Header{}
	header.Set(handler.RequestIDHeader, "req-500")
	resp := do(t, http.MethodGet, srv.URL+"/v1/animes", nil, header)

	body := expectError(t, resp, http.StatusInternalServerError, "Internal Server Error")
	if strings.Contains(body.Error, errStorage.Error()) {
		t.Fatalf("expected internal error text to stay out of the response, got %q", body.Error)
	}

	out := logs.String()
	if !strings.Contains(out, `"msg":"list animes"`) || !strings.Contains(out, `"request_id":"req-500"`) {
		t.Fatalf("expected error log with request id, got %s", out)
	}
	if !strings.Contains(out, errStorage.Error()) {
		t.Fatalf("expected the cause in the log, got %s", out)
	}
}
