package main

import (
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"matrix-talent.backend/internal/interfaces/http/handlers"
	"matrix-talent.backend/web"
)

type routeDeps struct {
	developerHandler *handlers.DeveloperHandler
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Profile routes (public, no auth surface exists)
		profiles := v1.Group("/profiles")
		{
			profiles.GET("", d.developerHandler.ListProfiles)
			profiles.POST("", d.developerHandler.CreateProfile)
			profiles.GET("/stats", d.developerHandler.GetStats)
			profiles.GET("/:id", d.developerHandler.GetProfile)
			profiles.DELETE("/:id", d.developerHandler.DeleteProfile)
		}
	}
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Vary", "Origin")
			c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "matrix-talent-backend",
			"version": "0.1.0",
		})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// registerWebRoutes serves the embedded landing page and admin dashboard
func registerWebRoutes(r *gin.Engine) {
	staticFS, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		panic(err)
	}
	r.StaticFS("/static", http.FS(staticFS))

	r.GET("/", func(c *gin.Context) { servePage(c, "index.html") })
	r.GET("/admin", func(c *gin.Context) { servePage(c, "admin.html") })
}

func servePage(c *gin.Context, name string) {
	data, err := web.StaticFS.ReadFile("static/" + name)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", data)
}
