// Package router wires the HTTP routes of the service.
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	accounthandler "accounts_backend/internal/feature/accounts/transport/handler"
	"accounts_backend/internal/platform/http/handler"
)

// NewRouter builds the gin engine with all routes registered.
// uploadDir is served verbatim under /uploads; every stored file is publicly
// readable by path, a documented scope decision.
func NewRouter(accounts *accounthandler.AccountHandler, uploadDir string) *gin.Engine {
	r := gin.Default()

	// The browser frontend runs on a different origin.
	r.Use(cors.Default())

	// Liveness probe
	r.GET("/healthz", handler.Health)

	// Account management
	r.POST("/signup", accounts.Signup)
	r.POST("/login", accounts.Login)
	r.GET("/users", accounts.List)
	r.PUT("/users/:id", accounts.Update)
	r.DELETE("/users/:id", accounts.Delete)

	// Uploaded profile pictures
	r.Static("/uploads", uploadDir)

	return r
}
