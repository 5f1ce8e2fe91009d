package intra

import (
	"context"
	"net/http"

	"github.com/elC0mpa/intra-logtime/model"
	"golang.org/x/oauth2/clientcredentials"
)

type service struct {
	baseURL     string
	credentials *clientcredentials.Config
	httpClient  *http.Client
	client      *http.Client
}

type IntraService interface {
	Authenticate(ctx context.Context) error
	GetUser(ctx context.Context, login string) (*model.User, error)
	GetDailyDurations(ctx context.Context, login string, dateRange model.DateRange, timeZone string) (model.DailyDurations, error)
}

// userResponse is the part of GET /users/{login} the tool reads
type userResponse struct {
	ID          int     `json:"id"`
	Login       string  `json:"login"`
	DisplayName string  `json:"displayname"`
	Location    *string `json:"location"`
}
