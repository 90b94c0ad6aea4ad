package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"admin_backend/internal/app/router"
	authadapters "admin_backend/internal/feature/auth/adapters"
	authhandler "admin_backend/internal/feature/auth/transport/handler"
	authusecase "admin_backend/internal/feature/auth/usecase"
	dashadapters "admin_backend/internal/feature/dashboard/adapters"
	dashhandler "admin_backend/internal/feature/dashboard/transport/handler"
	dashusecase "admin_backend/internal/feature/dashboard/usecase"
	worksadapters "admin_backend/internal/feature/worksref/adapters"
	workshandler "admin_backend/internal/feature/worksref/transport/handler"
	worksusecase "admin_backend/internal/feature/worksref/usecase"
	"admin_backend/internal/platform/cache"
	infradb "admin_backend/internal/platform/db"
	jwtauth "admin_backend/internal/platform/jwt"
	infraredis "admin_backend/internal/platform/redis"
)

func main() {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	// トークン署名鍵は必須（デフォルトなし）
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	bcryptCost := authusecase.DefaultBcryptCost
	if v := os.Getenv("BCRYPT_SALT_ROUNDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			bcryptCost = n
		} else {
			log.Println("[WARN] invalid BCRYPT_SALT_ROUNDS, using default:", v)
		}
	}

	// DB接続。失敗してもサーバーは起動し、認証はメモリフォールバックで動作する
	db, err := infradb.OpenDB()
	if err != nil {
		log.Println("[WARN] Database unavailable. Auth falls back to in-memory storage:", err)
		db = nil
	} else {
		infradb.SeedDemoData(db, bcryptCost)
	}

	// Redis（任意。なければキャッシュなしで動作）
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// ユーザーストア：リレーショナル（あれば）＋インメモリフォールバック
	var primary authusecase.UserStore
	var sessions authusecase.SessionStore
	if db != nil {
		primary = authadapters.NewUserGorm(db)
		sessions = authadapters.NewSessionGorm(db)
	}
	users := authadapters.NewFallbackUserStore(primary, authadapters.NewUserMemory())

	tokens := jwtauth.NewManager(secret, jwtauth.TokenTTL)

	// Usecase / Handler
	authUC := authusecase.NewAuthUsecase(users, sessions, tokens, bcryptCost)
	authH := authhandler.NewAuthHandler(authUC)

	var dashH *dashhandler.DashboardHandler
	var worksH *workshandler.WorksrefHandler
	if db != nil {
		// 統計はRedisキャッシュでラップ
		statsRepo := cache.NewCachingStatisticsRepository(rdb, time.Minute, dashadapters.NewStatisticsGorm(db), "")
		dashUC := dashusecase.NewDashboardUsecase(
			statsRepo,
			dashadapters.NewOrderGorm(db),
			dashadapters.NewDemoUserGorm(db),
			dashadapters.NewDBPinger(db),
		)
		dashH = dashhandler.NewDashboardHandler(dashUC)

		worksUC := worksusecase.NewWorksrefUsecase(worksadapters.NewWorksGorm(db))
		worksH = workshandler.NewWorksrefHandler(worksUC)
	}

	// ルータ生成
	r := router.NewRouter(authH, dashH, worksH)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
