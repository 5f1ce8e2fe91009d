package intra

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/elC0mpa/intra-logtime/model"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const requestTimeout = 30 * time.Second

// NewService builds a client for cfg. A nil httpClient uses a client with a 30s timeout.
func NewService(cfg model.Config, httpClient *http.Client) *service {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: requestTimeout}
	}

	return &service{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		credentials: &clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     cfg.TokenURL,
			AuthStyle:    oauth2.AuthStyleInParams,
		},
		httpClient: httpClient,
	}
}

// Authenticate exchanges the client credentials for an access token
func (s *service) Authenticate(ctx context.Context) error {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, s.httpClient)

	token, err := s.credentials.Token(ctx)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) && retrieveErr.Response != nil {
			switch retrieveErr.Response.StatusCode {
			case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden:
				return fmt.Errorf("%w: token endpoint answered %d", model.ErrAuth, retrieveErr.Response.StatusCode)
			}
		}
		return fmt.Errorf("%w: failed to fetch token: %w", model.ErrTransport, err)
	}

	s.client = oauth2.NewClient(ctx, oauth2.ReuseTokenSource(token, s.credentials.TokenSource(ctx)))
	return nil
}

func (s *service) GetUser(ctx context.Context, login string) (*model.User, error) {
	path, err := userPath(login)
	if err != nil {
		return nil, err
	}

	var resp userResponse
	if err := s.get(ctx, path, nil, &resp); err != nil {
		return nil, err
	}

	user := &model.User{
		ID:          resp.ID,
		Login:       resp.Login,
		DisplayName: resp.DisplayName,
	}
	if resp.Location != nil {
		user.Location = *resp.Location
	}

	return user, nil
}

// GetDailyDurations fetches /users/{login}/locations_stats over the widened query window of dateRange
func (s *service) GetDailyDurations(ctx context.Context, login string, dateRange model.DateRange, timeZone string) (model.DailyDurations, error) {
	path, err := userPath(login)
	if err != nil {
		return nil, err
	}

	beginAt, endAt := dateRange.QueryWindow()
	query := url.Values{}
	query.Set("begin_at", beginAt)
	query.Set("end_at", endAt)
	query.Set("time_zone", timeZone)

	var raw json.RawMessage
	if err := s.get(ctx, path+"/locations_stats", query, &raw); err != nil {
		return nil, err
	}

	daily := model.DailyDurations{}
	trimmed := bytes.TrimSpace(raw)
	if bytes.Equal(trimmed, []byte("[]")) || bytes.Equal(trimmed, []byte("null")) {
		return daily, nil
	}
	if err := json.Unmarshal(trimmed, &daily); err != nil {
		return nil, fmt.Errorf("%w: failed to decode locations stats: %w", model.ErrTransport, err)
	}

	return daily, nil
}

func (s *service) get(ctx context.Context, path string, query url.Values, out any) error {
	if s.client == nil {
		if err := s.Authenticate(ctx); err != nil {
			return err
		}
	}

	endpoint := s.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to build request: %w", model.ErrTransport, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: GET %s: %w", model.ErrTransport, path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return fmt.Errorf("%w: GET %s answered %d", model.ErrAuth, path, resp.StatusCode)
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: GET %s answered %d", model.ErrNotFound, path, resp.StatusCode)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: GET %s answered %d: %s", model.ErrTransport, path, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode %s: %w", model.ErrTransport, path, err)
	}

	return nil
}

func userPath(login string) (string, error) {
	login = strings.TrimSpace(login)
	if login == "" {
		return "", model.ErrMissingLogin
	}
	return "/users/" + url.PathEscape(login), nil
}
