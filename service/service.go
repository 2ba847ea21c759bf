// Package service provides a way to create a web service using the other
// packages in the Sankhya framework.
//
// It provides a way to inject dependencies into the service.
//
// It can be used to build a RESTful API server where each resource can be developed as a service.
// To help with that it supports creation of route groups and sub-groups. Each group can have its own
// routes and middleware. It allows grouping of routes by functionality.
package service

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/remiges-tech/logharbour/logharbour"
	"github.com/remiges-tech/rigel"
	"github.com/remiges-tech/sankhya/config"
	"github.com/remiges-tech/sankhya/metrics"
)

// Dependencies is a map to hold arbitrary dependencies.
type Dependencies map[string]any

// Service is the core struct for a web service, holding essential components and optional dependencies.
// It also provides a map to hold arbitrary dependencies. It allows injection of any
// additional components that a service might need.
// Note: Assert the type of the dependency before using it because the value is of type any.
//
// Example:
//
//	  phoneRegion := "IN"
//	  s := NewService(router).WithDependency("phoneRegion", phoneRegion)
//	  value, ok := s.Dependencies["phoneRegion"]
//		 if !ok {
//			 Handle missing region
//		 }
//
// The Service struct also provides a set of With... methods to inject specific dependencies.
//
// Example:
//
//	s := NewService(router).WithLogHarbour(logger).WithCache(redisClient)
type Service struct {
	Config       config.Config
	RigelConfig  *rigel.Rigel
	Router       *gin.Engine
	LogHarbour   *logharbour.Logger
	Cache        *redis.Client
	Metrics      metrics.Metrics
	Dependencies Dependencies
}

// NewService constructs a new Service with the given router. Dependencies are
// attached with the With... methods.
func NewService(r *gin.Engine) *Service {
	s := &Service{
		Router: r,
	}
	return s
}

// WithDependency is a method to inject an arbitrary dependency into the Service.
func (s *Service) WithDependency(key string, value any) *Service {
	if s.Dependencies == nil {
		s.Dependencies = make(Dependencies)
	}
	s.Dependencies[key] = value
	return s
}

// WithConfig is a method to inject a configuration source into the Service.
func (s *Service) WithConfig(c config.Config) *Service {
	s.Config = c
	return s
}

// WithRigelConfig is a method to inject a rigel client into the Service for
// dynamic configuration lookups.
func (s *Service) WithRigelConfig(r *rigel.Rigel) *Service {
	s.RigelConfig = r
	return s
}

// WithLogHarbour is a method to inject a logharbour logger into the Service.
func (s *Service) WithLogHarbour(l *logharbour.Logger) *Service {
	s.LogHarbour = l
	return s
}

// WithCache is a method to inject a Redis client into the Service. Handlers
// use it to cache conversion results.
func (s *Service) WithCache(c *redis.Client) *Service {
	s.Cache = c
	return s
}

// WithMetrics is a method to inject a metrics recorder into the Service.
func (s *Service) WithMetrics(m metrics.Metrics) *Service {
	s.Metrics = m
	return s
}

// HandlerFunc is a function that handles a request.
// It takes a *gin.Context and a *Service as parameters.
type HandlerFunc func(*gin.Context, *Service)

// RegisterRoute allows for the registration of a single route directly on the service's engine.
func (s *Service) RegisterRoute(method, path string, handler HandlerFunc) {
	wrappedHandler := func(c *gin.Context) {
		handler(c, s)
	}
	switch method {
	case http.MethodGet:
		s.Router.GET(path, wrappedHandler)
	case http.MethodPost:
		s.Router.POST(path, wrappedHandler)
	case http.MethodPut:
		s.Router.PUT(path, wrappedHandler)
	case http.MethodDelete:
		s.Router.DELETE(path, wrappedHandler)
	default:
		// Handle unsupported methods
		log.Printf("Unsupported method: %s", method)
	}
}

// RouteGroup represents a group of routes. Handlers registered on a group
// receive the owning Service, same as routes registered on the engine.
type RouteGroup struct {
	svc   *Service
	Group *gin.RouterGroup
}

// CreateGroup creates a new route group with the given path.
func (s *Service) CreateGroup(path string) *RouteGroup {
	return &RouteGroup{
		svc:   s,
		Group: s.Router.Group(path),
	}
}

// RegisterRoute allows for the registration of a single route to the route group.
func (g *RouteGroup) RegisterRoute(method, path string, handler HandlerFunc) {
	wrappedHandler := func(c *gin.Context) {
		handler(c, g.svc)
	}
	switch method {
	case http.MethodGet:
		g.Group.GET(path, wrappedHandler)
	case http.MethodPost:
		g.Group.POST(path, wrappedHandler)
	case http.MethodPut:
		g.Group.PUT(path, wrappedHandler)
	case http.MethodDelete:
		g.Group.DELETE(path, wrappedHandler)
	default:
		// Handle unsupported methods
		log.Printf("Unsupported method: %s", method)
	}
}

// CreateSubGroup creates a new sub-group within the current group.
func (g *RouteGroup) CreateSubGroup(path string) *RouteGroup {
	return &RouteGroup{
		svc:   g.svc,
		Group: g.Group.Group(path),
	}
}
