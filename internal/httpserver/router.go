package httpserver

import (
	"embed"
	"fmt"
	"html/template"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed templates/*.html
var templatesFS embed.FS

// buildRouter wires the dashboard page and the read-only JSON API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	router.SetHTMLTemplate(tmpl)

	router.GET("/", dashboardHandler(deps.CatalogSvc))
	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	api := router.Group("/api")
	api.Use(cors.Default())
	api.GET("/products", listProductsHandler(deps.CatalogSvc))
	api.GET("/products/:styleCode", getProductHandler(deps.CatalogSvc))
	api.GET("/stats", statsHandler(deps.CatalogSvc))
	api.GET("/rankings/most-expensive", mostExpensiveHandler(deps.CatalogSvc))
	api.GET("/rankings/top-rated", topRatedHandler(deps.CatalogSvc))

	return router, nil
}
