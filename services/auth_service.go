package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Vitnet1814/qrmenu-sub000/configs"
	"github.com/Vitnet1814/qrmenu-sub000/entity"
	"github.com/Vitnet1814/qrmenu-sub000/utils"

	"golang.org/x/oauth2"
)

// UserRegistry upserts users as they come back from the OAuth provider.
type UserRegistry interface {
	Upsert(ctx context.Context, subject, email, name, picture string) (*entity.User, error)
}

// AuthService delegates sign-in to the external OAuth provider and issues
// JWT sessions for owners.
type AuthService struct {
	Users UserRegistry

	oauth       oauth2.Config
	userInfoURL string
	jwtSecret   string
	jwtTTL      time.Duration
}

func NewAuthService(cfg *configs.Config, users UserRegistry) *AuthService {
	return &AuthService{
		Users: users,
		oauth: oauth2.Config{
			ClientID:     cfg.OAuthClientID,
			ClientSecret: cfg.OAuthClientSecret,
			RedirectURL:  cfg.OAuthRedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint: oauth2.Endpoint{
				AuthURL:  cfg.OAuthAuthURL,
				TokenURL: cfg.OAuthTokenURL,
			},
		},
		userInfoURL: cfg.OAuthUserInfoURL,
		jwtSecret:   cfg.JWTSecret,
		jwtTTL:      cfg.JWTTTL,
	}
}

// AuthURL builds the provider consent page URL for the given CSRF state.
func (s *AuthService) AuthURL(state string) string {
	return s.oauth.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

type userInfo struct {
	ID      string `json:"id"`
	Sub     string `json:"sub"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// HandleCallback exchanges the authorization code, fetches the provider
// profile, upserts the user and issues a session token.
func (s *AuthService) HandleCallback(ctx context.Context, code string) (string, *entity.User, error) {
	if code == "" {
		return "", nil, fmt.Errorf("authorization code is required: %w", entity.ErrInvalidInput)
	}

	token, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		return "", nil, fmt.Errorf("oauth exchange: %w", err)
	}

	info, err := s.fetchUserInfo(ctx, token)
	if err != nil {
		return "", nil, err
	}

	subject := info.Sub
	if subject == "" {
		subject = info.ID
	}
	if subject == "" {
		return "", nil, fmt.Errorf("provider returned no subject id")
	}

	user, err := s.Users.Upsert(ctx, subject, info.Email, info.Name, info.Picture)
	if err != nil {
		return "", nil, err
	}

	session, err := utils.GenerateToken(user.ID.Hex(), s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, err
	}
	return session, user, nil
}

func (s *AuthService) fetchUserInfo(ctx context.Context, token *oauth2.Token) (*userInfo, error) {
	client := s.oauth.Client(ctx, token)
	resp, err := client.Get(s.userInfoURL)
	if err != nil {
		return nil, fmt.Errorf("fetch userinfo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo endpoint returned %d", resp.StatusCode)
	}

	var info userInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("decode userinfo: %w", err)
	}
	return &info, nil
}
