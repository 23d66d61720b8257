//go:generate mockery --name OAuthProvider --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"winestudy/internal/config"
	"winestudy/internal/model"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

var (
	ErrOAuthExchange = errors.New("oauth: code exchange failed")
	ErrOAuthProfile  = errors.New("oauth: profile fetch failed")
)

// OAuthProvider は認可コードを外部プロバイダのプロフィールに交換します。
type OAuthProvider interface {
	FetchProfile(ctx context.Context, code string) (*model.OAuthProfile, error)
}

type googleOAuthProvider struct {
	oauthCfg    *oauth2.Config
	userInfoURL string
	httpClient  *http.Client
}

func NewGoogleOAuthProvider(c config.GoogleOAuthConfig) OAuthProvider {
	endpoint := google.Endpoint
	if c.TokenURL != "" {
		endpoint.TokenURL = c.TokenURL
	}
	return &googleOAuthProvider{
		oauthCfg: &oauth2.Config{
			ClientID:     c.ClientID,
			ClientSecret: c.ClientSecret,
			RedirectURL:  c.RedirectURI,
			Endpoint:     endpoint,
			Scopes:       []string{"openid", "email", "profile"},
		},
		userInfoURL: c.UserInfoURL,
		httpClient:  &http.Client{Timeout: c.Timeout},
	}
}

func (p *googleOAuthProvider) FetchProfile(ctx context.Context, code string) (*model.OAuthProfile, error) {
	// oauth2 パッケージにタイムアウト付きのクライアントを使わせる
	ctx = context.WithValue(ctx, oauth2.HTTPClient, p.httpClient)

	token, err := p.oauthCfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOAuthExchange, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.userInfoURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOAuthProfile, err)
	}
	resp, err := p.oauthCfg.Client(ctx, token).Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOAuthProfile, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("%w: status %d: %s", ErrOAuthProfile, resp.StatusCode, body)
	}

	var profile model.OAuthProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrOAuthProfile, err)
	}
	if profile.Email == "" || profile.ID == "" {
		return nil, fmt.Errorf("%w: profile without id or email", ErrOAuthProfile)
	}
	return &profile, nil
}
