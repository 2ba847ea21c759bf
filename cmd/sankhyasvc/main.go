// Command sankhyasvc runs the number conversion web service. It loads
// its configuration from a JSON file or from Rigel, wires the logger,
// metrics, cache and optional OIDC auth into a service, and serves the
// conversion endpoints.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/remiges-tech/logharbour/logharbour"
	"github.com/remiges-tech/rigel"

	"github.com/remiges-tech/sankhya/config"
	"github.com/remiges-tech/sankhya/convsvc"
	"github.com/remiges-tech/sankhya/logger"
	"github.com/remiges-tech/sankhya/metrics"
	"github.com/remiges-tech/sankhya/router"
	"github.com/remiges-tech/sankhya/service"
)

// AppConfig is the configuration the service reads at startup, from a
// JSON file or from Rigel.
type AppConfig struct {
	AppServerPort   string `json:"app_server_port"`
	MetricsPort     string `json:"metrics_port"`
	DefaultLang     string `json:"default_lang"`
	CacheEnabled    bool   `json:"cache_enabled"`
	CacheAddr       string `json:"cache_addr"`
	CachePassword   string `json:"cache_password"`
	CacheDB         int    `json:"cache_db"`
	CacheTTLSecs    int    `json:"cache_ttl_secs"`
	AuthEnabled     bool   `json:"auth_enabled"`
	AuthProviderURL string `json:"auth_provider_url"`
	AuthClientID    string `json:"auth_client_id"`
}

func main() {
	configSystem := flag.String("configSource", "file", "The configuration system to use (file or rigel)")
	configFilePath := flag.String("configFile", "./config.json", "The path to the configuration file")
	etcdEndpoints := flag.String("etcdEndpoints", "localhost:2379", "Comma separated etcd endpoints for the rigel source")
	rigelApp := flag.String("rigelApp", "sankhya", "The rigel app name")
	rigelModule := flag.String("rigelModule", "convsvc", "The rigel module name")
	rigelVersion := flag.Int("rigelVersion", 1, "The rigel schema version")
	configName := flag.String("configName", "dev", "The name of the rigel configuration")
	flag.Parse()

	var appConfig AppConfig
	var rigelClient *rigel.Rigel

	switch *configSystem {
	case "file":
		if err := config.LoadConfigFromFile(*configFilePath, &appConfig); err != nil {
			log.Fatalf("Error loading config: %v", err)
		}
	case "rigel":
		client, err := config.NewRigelClient(*etcdEndpoints, *rigelApp, *rigelModule, *rigelVersion, *configName)
		if err != nil {
			log.Fatalf("Error creating rigel client: %v", err)
		}
		rigelClient = client
		if err := config.Load(&config.Rigel{Client: client}, &appConfig); err != nil {
			log.Fatalf("Error loading config: %v", err)
		}
	default:
		log.Fatalf("Unknown configuration system: %s", *configSystem)
	}

	// Initialize logger with stderr as the fallback sink
	fallbackWriter := logharbour.NewFallbackWriter(os.Stdout, os.Stderr)
	lctx := logharbour.NewLoggerContext(logharbour.DefaultPriority)
	lh := logharbour.NewLogger(lctx, "sankhya", fallbackWriter)

	// Metrics
	promMetrics := metrics.NewPrometheusMetrics()
	convsvc.RegisterMetrics(promMetrics)

	// Redis carries the conversion result cache and the auth token cache.
	var cacheClient *redis.Client
	if appConfig.CacheEnabled {
		cacheClient = redis.NewClient(&redis.Options{
			Addr:     appConfig.CacheAddr,
			Password: appConfig.CachePassword,
			DB:       appConfig.CacheDB,
		})
	}

	// Optional OIDC auth
	var authMiddleware *router.AuthMiddleware
	if appConfig.AuthEnabled {
		if cacheClient == nil {
			log.Fatalf("Auth is enabled but the cache is not: the token cache needs cache_addr")
		}
		tokenCache := router.NewRedisTokenCacheFromClient(cacheClient, 0)
		mw, err := router.LoadAuthMiddleware(appConfig.AuthClientID, appConfig.AuthProviderURL,
			tokenCache, &logger.LogHarbour{Logger: lh})
		if err != nil {
			log.Fatalf("Error setting up OIDC auth: %v", err)
		}
		authMiddleware = mw
	}

	// Router with the standard middleware stack
	r, err := router.SetupRouter(appConfig.AuthEnabled, router.NewLogHarbourAdapter(lh), authMiddleware)
	if err != nil {
		log.Fatalf("Error setting up router: %v", err)
	}

	// Service wiring
	s := service.NewService(r).
		WithLogHarbour(lh).
		WithMetrics(promMetrics).
		WithDependency(convsvc.DepDefaultLang, appConfig.DefaultLang)
	if rigelClient != nil {
		s = s.WithRigelConfig(rigelClient)
	}
	if cacheClient != nil {
		ttl := time.Duration(appConfig.CacheTTLSecs) * time.Second
		s = s.WithCache(cacheClient).
			WithDependency(convsvc.DepResultCache, convsvc.NewRedisResultCache(cacheClient, ttl))
	}

	// Register routes
	convsvc.RegisterRoutes(s)

	// Metrics endpoint on its own port
	if appConfig.MetricsPort != "" {
		go func() {
			if err := promMetrics.StartMetricsServer(appConfig.MetricsPort); err != nil {
				log.Printf("Metrics server stopped: %v", err)
			}
		}()
	}

	// Start server
	serverPort := appConfig.AppServerPort
	if serverPort == "" {
		serverPort = "8080"
	}
	lh.Log(fmt.Sprintf("Starting sankhya service on port %s", serverPort))
	if err := r.Run(":" + serverPort); err != nil {
		log.Fatal("Error starting server: ", err)
	}
}
