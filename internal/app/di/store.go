// Package di provides dependency injection factories for creating
// application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"accounts_backend/internal/feature/accounts/adapters"
	"accounts_backend/internal/feature/accounts/usecase"
	"accounts_backend/internal/platform/cache"
)

// listCacheTTL bounds how stale a cached user listing may get.
const listCacheTTL = 5 * time.Minute

// NewUserRepository creates the UserRepository implementation.
// If Redis is available, the GORM repository is wrapped in a caching
// decorator for the listing. Otherwise the plain repository is returned.
func NewUserRepository(rdb *redis.Client, db *gorm.DB) usecase.UserRepository {
	repo := adapters.NewUserGorm(db)
	if rdb != nil {
		return cache.NewCachingUserRepository(rdb, listCacheTTL, repo, "users")
	}
	return repo
}
