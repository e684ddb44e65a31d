package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"

	"droscher.com/RecipeBook/configs"
	"droscher.com/RecipeBook/pkg/model"
)

const TokenCookie = "token"

var ErrUnauthenticated = errors.New("unauthenticated")

type UserKey struct{}

type userRepository interface {
	GetUserFromEmail(ctx context.Context, email string) (*model.User, error)
}

type Manager struct {
	conf   *configs.Config
	repo   userRepository
	logger *zap.Logger
}

func NewAuthManager(conf *configs.Config, repo userRepository, logger *zap.Logger) *Manager {
	return &Manager{conf: conf, repo: repo, logger: logger}
}

// Authenticate puts the user named by the request's token into the context.
// Requests without a valid token continue anonymously.
func (a *Manager) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accessToken, err := extractToken(r)
		if err != nil {
			next.ServeHTTP(w, r)

			return
		}

		user, err := a.userFromToken(r.Context(), accessToken)
		if err != nil {
			a.logger.Warn("ignoring invalid token", zap.String("path", r.URL.Path), zap.Error(err))
			next.ServeHTTP(w, r)

			return
		}

		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
	})
}

func (a *Manager) userFromToken(ctx context.Context, accessToken string) (*model.User, error) {
	keyFunc := func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: unexpected signing method: %v", ErrUnauthenticated, token.Header["alg"])
		}

		return []byte(a.conf.Auth.SecretKey), nil
	}

	token, err := jwt.ParseWithClaims(accessToken, jwt.MapClaims{}, keyFunc)
	if err != nil {
		return nil, fmt.Errorf("%w: error parsing token: %w", ErrUnauthenticated, err)
	}

	claims, found := token.Claims.(jwt.MapClaims)
	if !found || !token.Valid {
		return nil, fmt.Errorf("%w: invalid token", ErrUnauthenticated)
	}

	if a.conf.Auth.Audience != "" && !claims.VerifyAudience(a.conf.Auth.Audience, true) {
		return nil, fmt.Errorf("%w: unexpected audience", ErrUnauthenticated)
	}

	if a.conf.Auth.Domain != "" && !claims.VerifyIssuer(a.conf.Auth.Domain, true) {
		return nil, fmt.Errorf("%w: unexpected issuer", ErrUnauthenticated)
	}

	email, found := claims["email"].(string)
	if !found {
		return nil, fmt.Errorf("%w: unable to get email from token", ErrUnauthenticated)
	}

	return a.repo.GetUserFromEmail(ctx, email)
}

// IssueToken signs a token for email that the middleware will accept.
func (a *Manager) IssueToken(email string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"email": email,
		"iat":   now.Unix(),
		"exp":   now.Add(ttl).Unix(),
	}

	if a.conf.Auth.Audience != "" {
		claims["aud"] = a.conf.Auth.Audience
	}

	if a.conf.Auth.Domain != "" {
		claims["iss"] = a.conf.Auth.Domain
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(a.conf.Auth.SecretKey))
}

func extractToken(r *http.Request) (string, error) {
	if authorization := r.Header.Get("Authorization"); authorization != "" {
		prefix := "Bearer "
		if !strings.HasPrefix(authorization, prefix) {
			prefix = "bearer "
		}

		token, found := strings.CutPrefix(authorization, prefix)
		if !found || token == "" {
			return "", fmt.Errorf("%w: authorization format must be Bearer {token}", ErrUnauthenticated)
		}

		return token, nil
	}

	if cookie, err := r.Cookie(TokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	return "", fmt.Errorf("%w: no token", ErrUnauthenticated)
}

// RequireUser redirects anonymous requests to loginURL, passing the
// requested path as next.
func RequireUser(loginURL string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := UserFromContext(r.Context()); !ok {
				http.Redirect(w, r, loginURL+"?next="+url.QueryEscape(r.URL.RequestURI()), http.StatusSeeOther)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func WithUser(ctx context.Context, user *model.User) context.Context {
	return context.WithValue(ctx, UserKey{}, user)
}

func UserFromContext(ctx context.Context) (*model.User, bool) {
	user, ok := ctx.Value(UserKey{}).(*model.User)

	return user, ok && user != nil
}
