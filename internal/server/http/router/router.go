package router

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/mikimas/truster/internal/server/http/handlers"
	"github.com/mikimas/truster/internal/server/http/middleware"
	"github.com/mikimas/truster/web"
)

// Setup configures gin router with handlers and middleware. The form may be
// hosted on another origin, so the API stays open to cross-origin requests.
func Setup(facade handlers.OrderFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(cors.Default())
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	orderHandler := handlers.NewOrderHandler(facade)

	api := engine.Group("/api")
	api.POST("/orders", orderHandler.Create)
	api.GET("/orders", orderHandler.List)

	registerForm(engine)

	return engine
}

// registerForm serves the embedded purchase-request form.
func registerForm(engine *gin.Engine) {
	files := http.FS(web.Files)
	engine.GET("/", func(c *gin.Context) {
		c.FileFromFS("/", files)
	})
	engine.GET("/main.js", func(c *gin.Context) {
		c.FileFromFS("main.js", files)
	})
	engine.GET("/styles.css", func(c *gin.Context) {
		c.FileFromFS("styles.css", files)
	})
}
