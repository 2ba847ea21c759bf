// Package router provides the HTTP routing setup and the middlewares used by
// Sankhya web services: request-id tagging, structured request logging,
// request timeouts and OIDC token authentication backed by a Redis token
// cache.
package router

import (
	"context"
	"fmt"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/gin-gonic/gin"
	"github.com/remiges-tech/sankhya/logger"
)

const (
	timeout = 60 * time.Second
)

// SetupRouter builds the gin engine with the standard middleware stack.
// reqLogger receives one entry per request; if nil, gin's own logger is used.
// authMiddleware is required when useOIDCAuth is true.
func SetupRouter(useOIDCAuth bool, reqLogger RequestLogger, authMiddleware *AuthMiddleware) (*gin.Engine, error) {
	r := gin.New()

	r.Use(RequestIDMiddleware())

	if reqLogger != nil {
		r.Use(LogRequest(reqLogger))
	} else {
		r.Use(gin.Logger())
	}

	// Recovery must be registered before the timeout middleware so that
	// panics re-raised from the handler goroutine are caught here.
	r.Use(gin.Recovery())
	r.Use(TimeoutMiddleware(timeout))

	if useOIDCAuth {
		if authMiddleware == nil {
			return nil, fmt.Errorf("OIDC auth enabled but auth middleware is nil")
		}
		r.Use(authMiddleware.MiddlewareFunc())
	}

	return r, nil
}

// LoadAuthMiddleware discovers the OIDC provider at providerURL and builds an
// AuthMiddleware verifying tokens issued for clientID.
func LoadAuthMiddleware(clientID string, providerURL string, cache TokenCache, l logger.Logger) (*AuthMiddleware, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	provider, err := oidc.NewProvider(ctx, providerURL)
	if err != nil {
		return nil, err
	}

	authMiddleware, err := NewAuthMiddleware(clientID, provider, cache, l)
	if err != nil {
		return nil, err
	}

	return authMiddleware, nil
}
