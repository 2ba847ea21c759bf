package router

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/remiges-tech/sankhya/logger"
)

// TokenCache is an interface for caching verified tokens.
type TokenCache interface {
	Get(ctx context.Context, token string) (bool, error)
	Set(ctx context.Context, token string) error
}

// RedisTokenCache is a Redis implementation of TokenCache. Verified tokens
// are stored with an expiration so a token is re-verified against the
// provider at most once per expiration window.
type RedisTokenCache struct {
	Client     *redis.Client
	Expiration time.Duration
}

const DefaultExpiration = 30 * time.Second

// NewRedisTokenCache connects a token cache to the Redis instance at addr.
// If expiration is zero, DefaultExpiration is used.
func NewRedisTokenCache(addr string, password string, db int, expiration time.Duration) TokenCache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	return NewRedisTokenCacheFromClient(rdb, expiration)
}

// NewRedisTokenCacheFromClient wraps an existing Redis client in a token
// cache.
func NewRedisTokenCacheFromClient(client *redis.Client, expiration time.Duration) TokenCache {
	if expiration == 0 {
		expiration = DefaultExpiration
	}

	return &RedisTokenCache{
		Client:     client,
		Expiration: expiration,
	}
}

// Set marks a token as verified in the cache.
func (r *RedisTokenCache) Set(ctx context.Context, token string) error {
	return r.Client.Set(ctx, token, true, r.Expiration).Err()
}

// Get reports whether a token is present in the cache.
func (r *RedisTokenCache) Get(ctx context.Context, token string) (bool, error) {
	val, err := r.Client.Exists(ctx, token).Result()
	if err != nil {
		return false, err
	}
	return val > 0, nil
}

type AuthMiddleware struct {
	Verifier *oidc.IDTokenVerifier
	Cache    TokenCache
	Logger   logger.Logger
}

func NewAuthMiddleware(clientID string, provider *oidc.Provider, cache TokenCache, logger logger.Logger) (*AuthMiddleware, error) {
	oidcConfig := &oidc.Config{
		ClientID: clientID,
	}
	verifier := provider.Verifier(oidcConfig)

	return &AuthMiddleware{
		Verifier: verifier,
		Cache:    cache,
		Logger:   logger,
	}, nil
}

// MiddlewareFunc returns a gin.HandlerFunc (middleware) that checks for a valid token.
// Tokens found in the cache skip provider verification.
func (a *AuthMiddleware) MiddlewareFunc() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		rawIDToken, err := ExtractToken(c.Request.Header.Get("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, scenarioErrorResponse(TokenMissing))
			return
		}

		isCached, err := a.Cache.Get(ctx, rawIDToken)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, scenarioErrorResponse(TokenCacheFailed))
			return
		}

		if !isCached {
			_, err := a.Verifier.Verify(ctx, rawIDToken)
			if err != nil {
				a.Logger.Log(fmt.Sprintf("Auth error: %v", err))
				c.Set("auth_error", err)
				c.AbortWithStatusJSON(http.StatusUnauthorized, scenarioErrorResponse(TokenVerificationFailed))
				return
			}

			if err := a.Cache.Set(ctx, rawIDToken); err != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, scenarioErrorResponse(TokenCacheFailed))
				return
			}
		}

		c.Next()
	}
}

// ExtractToken extracts the token from the Authorization header.
func ExtractToken(headerValue string) (string, error) {
	const prefix = "Bearer "

	if !strings.HasPrefix(headerValue, prefix) {
		return "", fmt.Errorf("missing or incorrect Authorization header format")
	}

	token := strings.TrimPrefix(headerValue, prefix)
	if token == "" {
		return "", fmt.Errorf("missing token in Authorization header")
	}

	return token, nil
}
