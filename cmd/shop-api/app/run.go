package app

import (
	"context"
	"database/sql"
	"time"

	"github.com/TajwarSaiyeed/nexora-e-commerce/configs"
	"github.com/TajwarSaiyeed/nexora-e-commerce/internal/adapter/cache"
	"github.com/TajwarSaiyeed/nexora-e-commerce/internal/adapter/http"
	"github.com/TajwarSaiyeed/nexora-e-commerce/internal/adapter/queue"
	"github.com/TajwarSaiyeed/nexora-e-commerce/internal/adapter/repo"
	"github.com/TajwarSaiyeed/nexora-e-commerce/internal/logging"
	"github.com/TajwarSaiyeed/nexora-e-commerce/internal/usecase"
	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

type App struct {
	Router *gin.Engine
}

func InitWithConfig(cfg configs.Config) (*App, func(), error) {
	logger := logging.Init(cfg.App.Name, cfg.App.LogFile)

	// prices serialize as JSON numbers (79.99), matching the API contract
	decimal.MarshalJSONWithoutQuotes = true

	// init database
	db, err := sql.Open("mysql", cfg.MySQL.DSN)
	if err != nil {
		return nil, nil, err
	}
	db.SetConnMaxLifetime(cfg.MySQL.ConnMaxLifetime)
	db.SetMaxOpenConns(cfg.MySQL.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MySQL.MaxIdleConns)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, nil, err
	}

	logger.Info("shop-api: starting up")

	if err := repo.Bootstrap(ctx, db); err != nil {
		return nil, nil, err
	}
	if err := repo.SeedProducts(ctx, db); err != nil {
		return nil, nil, err
	}

	// init redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       0,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, nil, err
	}

	// init rabbitmq; checkout still works without a broker, events are
	// best effort
	var events usecase.OrderEvents
	var rabbitConn *amqp091.Connection
	if cfg.Rabbit.URL != "" {
		conn, err := amqp091.Dial(cfg.Rabbit.URL)
		if err != nil {
			logger.Warn("rabbitmq unavailable, order events disabled", "error", err)
		} else {
			ch, err := conn.Channel()
			if err != nil {
				conn.Close()
				return nil, nil, err
			}
			producer, err := queue.NewRabbitProducer(ch)
			if err != nil {
				conn.Close()
				return nil, nil, err
			}
			events = producer
			rabbitConn = conn
		}
	}

	// infra
	productRepo := repo.NewMySQLProductRepo(db)
	cartRepo := repo.NewMySQLCartRepo(db)
	orderRepo := repo.NewMySQLOrderRepo(db)
	locks := cache.NewRedisCartLock(rdb, cfg.CartLock.TTL)

	// use cases + handlers + router
	catalogUC := usecase.NewCatalog(productRepo)
	cartUC := usecase.NewCart(productRepo, cartRepo, locks)
	checkoutUC := usecase.NewCheckout(productRepo, cartRepo, orderRepo, locks, events)

	router := http.NewRouter(cfg.App.MockUserID,
		http.NewProductHandler(catalogUC),
		http.NewCartHandler(cartUC),
		http.NewCheckoutHandler(checkoutUC))

	cleanup := func() {
		_ = db.Close()
		_ = rdb.Close()
		if rabbitConn != nil {
			_ = rabbitConn.Close()
		}
	}

	return &App{Router: router}, cleanup, nil
}
