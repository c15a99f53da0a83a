package httpserver

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	if srv.mode != gin.ReleaseMode {
		srv.gin.Use(gin.Logger())
	}
	// Metrics wraps Recovery so recovered panics are counted as 500s.
	srv.gin.Use(
		srv.mw.RequestID(),
		srv.mw.Metrics(),
		srv.mw.Recovery(),
		srv.mw.CORS(),
		srv.mw.BodyLimit(),
	)

	srv.l.Infof(context.Background(), "HTTP middlewares registered (environment: %s, mode: %s)", srv.environment, srv.mode)
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	if srv.metrics != nil {
		srv.gin.GET("/metrics", gin.WrapH(srv.metrics.Handler()))
	}

	if srv.mode != gin.ReleaseMode {
		srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
			swaggerFiles.Handler,
			ginSwagger.URL("doc.json"),
			ginSwagger.DefaultModelsExpandDepth(-1),
		))
	}

	srv.gin.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found."})
	})
}

// registerDomainRoutes registers all domain routes under /api.
func (srv HTTPServer) registerDomainRoutes() error {
	api := srv.gin.Group("/api")

	if err := srv.setupBookingDomain(context.Background(), api); err != nil {
		return err
	}

	return nil
}
