// Package router registers the API routes and their middleware.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/tareqmahmud/letterdesk/internal/config"
	"github.com/tareqmahmud/letterdesk/internal/handler"
	"github.com/tareqmahmud/letterdesk/internal/middleware"
	"github.com/tareqmahmud/letterdesk/internal/model"
)

// Handlers groups the resource handlers the router wires up.
type Handlers struct {
	Users      *handler.UserHandler
	Consumers  *handler.ConsumerHandler
	Activities *handler.ActivityHandler
	Letters    *handler.LetterHandler
}

// Register registers all routes.  Everything under /v1 requires a valid
// bearer token; user management additionally requires the admin role.
// rdb may be nil, which disables the cache and rate limiter.
func Register(e *echo.Echo, h Handlers, jwtSecret string, rdb *redis.Client) {
	e.GET("/healthz", handler.Health)

	v1 := e.Group("/v1")
	v1.Use(middleware.RateLimit(config.LoadRateLimitConfig(), rdb))
	v1.Use(middleware.JWTAuth(jwtSecret))

	listCache := middleware.ListCache(config.LoadCacheConfig(), rdb)

	// User management is admin-only except the login-time email lookup.
	admin := v1.Group("/users", middleware.RequireRole(model.RoleAdmin))
	admin.GET("", h.Users.List)
	admin.POST("", h.Users.Create)
	admin.POST("/bulk", h.Users.Bulk)
	admin.GET("/:id", h.Users.Get)
	admin.PATCH("/:id", h.Users.Patch)
	admin.DELETE("/:id", h.Users.Delete)
	v1.POST("/users/by-email", h.Users.ByEmail)

	v1.GET("/consumers", h.Consumers.List, listCache)
	v1.POST("/consumers", h.Consumers.Create)
	v1.POST("/consumers/bulk", h.Consumers.Bulk)
	v1.POST("/consumers/import-csv", h.Consumers.ImportCSV)
	v1.GET("/consumers/:accNo", h.Consumers.Get)
	v1.PATCH("/consumers/:accNo", h.Consumers.Patch)
	v1.DELETE("/consumers/:accNo", h.Consumers.Delete)

	v1.GET("/activities", h.Activities.List)
	v1.POST("/activities", h.Activities.Create)
	v1.GET("/activities/:id", h.Activities.Get)
	v1.DELETE("/activities/:id", h.Activities.Delete)

	v1.GET("/letter-types", h.Letters.Types, listCache)
	v1.POST("/letters/preview", h.Letters.Preview)
}
