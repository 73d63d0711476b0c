package handler

import (
	"time"

	"github.com/msomdec/anime-service/internal/domain"
	"github.com/msomdec/anime-service/internal/validate"
)

// Request bodies carry pointer ids so that an omitted id can be told apart
// from zero. Every to* method validates before mapping.

type animeResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type animePostRequest struct {
	Name string `json:"name"`
}

type animePutRequest struct {
	ID   *int64 `json:"id"`
	Name string `json:"name"`
}

func (req animePostRequest) toAnime() (*domain.Anime, error) {
	if err := validate.New().Required("name", req.Name).Err(); err != nil {
		return nil, err
	}
	return &domain.Anime{Name: req.Name}, nil
}

func (req animePutRequest) toAnime() (*domain.Anime, error) {
	err := validate.New().
		RequiredID(req.ID).
		Required("name", req.Name).
		Err()
	if err != nil {
		return nil, err
	}
	return &domain.Anime{ID: *req.ID, Name: req.Name}, nil
}

func toAnimeResponse(a domain.Anime) animeResponse {
	return animeResponse{ID: a.ID, Name: a.Name}
}

func toAnimeResponses(animes []domain.Anime) []animeResponse {
	out := make([]animeResponse, 0, len(animes))
	for _, a := range animes {
		out = append(out, toAnimeResponse(a))
	}
	return out
}

type producerResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type producerPostRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

type producerPutRequest struct {
	ID      *int64 `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

func (req producerPostRequest) toProducer() (*domain.Producer, error) {
	if err := validate.New().Required("name", req.Name).Err(); err != nil {
		return nil, err
	}
	return &domain.Producer{Name: req.Name, Address: req.Address}, nil
}

func (req producerPutRequest) toProducer() (*domain.Producer, error) {
	err := validate.New().
		RequiredID(req.ID).
		Required("name", req.Name).
		Err()
	if err != nil {
		return nil, err
	}
	return &domain.Producer{ID: *req.ID, Name: req.Name, Address: req.Address}, nil
}

func toProducerResponse(p domain.Producer) producerResponse {
	return producerResponse{ID: p.ID, Name: p.Name, Address: p.Address, CreatedAt: p.CreatedAt}
}

func toProducerResponses(producers []domain.Producer) []producerResponse {
	out := make([]producerResponse, 0, len(producers))
	for _, p := range producers {
		out = append(out, toProducerResponse(p))
	}
	return out
}

type userResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

type userPostRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

type userPutRequest struct {
	ID        *int64 `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

func (req userPostRequest) toUser() (*domain.User, error) {
	err := validate.New().
		Required("firstName", req.FirstName).
		Required("lastName", req.LastName).
		Required("email", req.Email).
		Email(req.Email).
		Err()
	if err != nil {
		return nil, err
	}
	return &domain.User{FirstName: req.FirstName, LastName: req.LastName, Email: req.Email}, nil
}

func (req userPutRequest) toUser() (*domain.User, error) {
	err := validate.New().
		RequiredID(req.ID).
		PositiveID(req.ID).
		Required("firstName", req.FirstName).
		Required("lastName", req.LastName).
		Required("email", req.Email).
		Email(req.Email).
		Err()
	if err != nil {
		return nil, err
	}
	return &domain.User{ID: *req.ID, FirstName: req.FirstName, LastName: req.LastName, Email: req.Email}, nil
}

func toUserResponse(u domain.User) userResponse {
	return userResponse{ID: u.ID, FirstName: u.FirstName, LastName: u.LastName, Email: u.Email}
}

func toUserResponses(users []domain.User) []userResponse {
	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out
}
