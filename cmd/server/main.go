package main

import (
	"log"

	redisv9 "github.com/redis/go-redis/v9"

	"accounts_backend/internal/app/di"
	"accounts_backend/internal/app/router"
	accounthandler "accounts_backend/internal/feature/accounts/transport/handler"
	accountusecase "accounts_backend/internal/feature/accounts/usecase"
	"accounts_backend/internal/platform/config"
	infradb "accounts_backend/internal/platform/db"
	infraredis "accounts_backend/internal/platform/redis"
	"accounts_backend/internal/platform/storage"
)

func main() {
	cfg := config.Load()

	// db
	db, err := infradb.OpenDB(cfg.DatabaseURL, cfg.RunMigrations)
	if err != nil {
		log.Fatal(err)
	}

	// Redis (optional: the service runs without the listing cache)
	var rdb *redisv9.Client
	if cfg.RedisAddr != "" {
		if tmp, err := infraredis.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword); err != nil {
			log.Println("[WARN] Redis unavailable. Running without cache.")
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					log.Println("[ERROR] Failed to close Redis client:", err)
				}
			}()
		}
	}

	// File store for profile pictures
	files, err := storage.NewLocalStore(cfg.UploadDir, "/uploads")
	if err != nil {
		log.Fatal(err)
	}

	// Repository
	userRepo := di.NewUserRepository(rdb, db)

	// Usecase
	accountUC := accountusecase.NewAccountUsecase(userRepo, files)

	// Handler
	accountH := accounthandler.NewAccountHandler(accountUC)

	// Router
	r := router.NewRouter(accountH, files.Dir())

	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
