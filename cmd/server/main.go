package main

import (
	"context"
	"log"
	"os"
	"time"

	httpctl "store-service/internal/controllers/http"
	mmysql "store-service/internal/infra/mysql"
	"store-service/internal/infra/rabbitmq"
	mysqlrepo "store-service/internal/repository/mysql"
	"store-service/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	db, err := mmysql.NewMySQLFromEnv()
	if err != nil {
		log.Fatalf("db: connect: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetMaxIdleConns(20)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(1 * time.Minute)

	repos := mysqlrepo.NewRepositories(db)

	publisher, err := rabbitmq.NewPublisher(os.Getenv("RABBITMQ_URL"), "store.exchange")
	if err != nil {
		log.Fatalf("failed to init publisher: %v", err)
	}
	defer publisher.Close()

	memberService := services.NewMemberService(repos)
	storeService := services.NewStoreService(repos)
	itemService := services.NewItemService(repos)
	orderService := services.NewOrderService(repos, publisher)
	orderItemService := services.NewOrderItemService(repos)
	paymentService := services.NewPaymentService(repos, publisher)

	redisClient := redis.NewClient(&redis.Options{
		Addr:         os.Getenv("REDIS_HOST") + ":6379",
		DB:           0,
		PoolSize:     50,
		MinIdleConns: 10,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
	})

	itemService.SetRedisClient(redisClient)

	go func() {
		time.Sleep(5 * time.Second)
		if err := itemService.WarmupMenuCache(context.Background(), []uint64{1, 2}); err != nil {
			log.Printf("Failed to warm up menu cache: %v", err)
		} else {
			log.Println("Menu cache warmed up")
		}
	}()

	handler := httpctl.NewHandler(
		memberService,
		storeService,
		itemService,
		orderService,
		orderItemService,
		paymentService,
		redisClient,
	)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	handler.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting store service on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server run: %v", err)
	}
}
