package api

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/ethanbaker/states/pkg/funfacts"
	"github.com/ethanbaker/states/pkg/states"
	"github.com/ethanbaker/states/pkg/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	funfacts_store "github.com/ethanbaker/states/internal/stores/funfacts"

	health_module "github.com/ethanbaker/states/internal/api/modules/health"
	states_module "github.com/ethanbaker/states/internal/api/modules/states"
)

const landingPage = `<h1>US States API</h1><p>Welcome to the US States API. Visit <a href="/states">/states</a> for API access.</p>`

// Start loads the reference data, connects the fun fact store and serves the API
func Start(cfg *utils.Config) {
	settings, err := cfg.Settings()
	if err != nil {
		log.Fatalf("[API-MAIN]: Failed to load settings: %v", err)
	}

	table, err := states.Load()
	if err != nil {
		log.Fatalf("[API-MAIN]: Failed to load states data: %v", err)
	}

	store, err := NewFunFactStore(settings)
	if err != nil {
		log.Fatalf("[API-MAIN]: Failed to create fun fact store: %v", err)
	}

	if settings.SeedOnStart {
		if err := SeedFunFacts(context.Background(), store, table, settings.SeedPath); err != nil {
			log.Fatalf("[API-MAIN]: Failed to seed fun facts: %v", err)
		}
	}

	engine := NewEngine(settings, table, store)

	// Then after performing initial setup, start the server
	log.Printf("[API-MAIN]: Serving %d states on port %s", table.Len(), settings.Port)
	if err := engine.Run(":" + settings.Port); err != nil {
		log.Fatal("[API-MAIN]: Failed to start server: ", err)
	}
}

// NewEngine builds the gin engine with every module registered
func NewEngine(settings *utils.Settings, table *states.Table, store funfacts.StoreInterface) *gin.Engine {
	// Add app level settings/routes
	engine := gin.Default()
	engine.NoRoute(NoRouteHandler)

	// Add trusted proxies
	engine.SetTrustedProxies(nil)

	// Add CORS using gin-contrib/cors (https://github.com/gin-contrib/cors for documentation)
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     settings.CORSOrigins,
		AllowMethods:     []string{"OPTIONS", "GET", "POST", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	engine.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(landingPage))
	})

	// Adding custom modules
	baseGroup := engine.Group("/")
	health_module.RegisterRoutes(baseGroup, table.Len(), storeKind(store))

	states_module.RegisterRoutes(baseGroup, states_module.NewStatesService(table, store))

	return engine
}

// NewFunFactStore connects to MySQL when a database is configured and falls
// back to an in-memory store otherwise
func NewFunFactStore(settings *utils.Settings) (funfacts.StoreInterface, error) {
	if !settings.MySQL.Enabled() {
		log.Println("[API-MAIN]: Warning, MYSQL_DATABASE not set, using in-memory store (data will not persist across restarts)")
		return funfacts_store.NewInMemoryStore(), nil
	}

	store, err := funfacts_store.NewStore(settings.MySQL.DSN())
	if err != nil {
		return nil, err
	}

	return store, nil
}

// SeedFunFacts loads the seed file at path (or the bundled seed) into store
func SeedFunFacts(ctx context.Context, store funfacts.StoreInterface, table *states.Table, path string) error {
	docs, err := funfacts_store.LoadSeedFile(path)
	if err != nil {
		return err
	}

	n, err := funfacts_store.Seed(ctx, store, docs, table.IsValid)
	if err != nil {
		return fmt.Errorf("seeded %d of %d states: %w", n, len(docs), err)
	}

	log.Printf("[API-MAIN]: Seeded fun facts for %d states", n)
	return nil
}

// storeKind names the fun fact backend for status reporting
func storeKind(store funfacts.StoreInterface) string {
	switch store.(type) {
	case *funfacts_store.Store:
		return "mysql"
	case *funfacts_store.InMemoryStore:
		return "memory"
	default:
		return fmt.Sprintf("%T", store)
	}
}

// NoRouteHandler answers unmatched routes with a 404 in the format the client prefers
func NoRouteHandler(c *gin.Context) {
	switch c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON, gin.MIMEPlain) {
	case gin.MIMEHTML:
		c.Data(http.StatusNotFound, "text/html; charset=utf-8", []byte("<h1>404 Not Found</h1>"))
	case gin.MIMEJSON:
		c.JSON(http.StatusNotFound, gin.H{"error": "404 Not Found"})
	default:
		c.String(http.StatusNotFound, "404 Not Found")
	}
}
