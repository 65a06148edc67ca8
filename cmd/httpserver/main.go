package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/dddshop/backend/adapters/event"
	"github.com/dddshop/backend/adapters/event/listeners"
	"github.com/dddshop/backend/adapters/httpserver"
	"github.com/dddshop/backend/adapters/inmemstore"
	"github.com/dddshop/backend/adapters/postgrestore"
	"github.com/dddshop/backend/adapters/redisstore"
	"github.com/dddshop/backend/adapters/services"
	"github.com/dddshop/backend/domain/pubsub"
	"github.com/dddshop/backend/pkg/config"
	"github.com/dddshop/backend/pkg/logger"
	"github.com/dddshop/backend/pkg/sentry"
	sentrygo "github.com/getsentry/sentry-go"
)

// @title DDD Shop APIs
// @version 1.0

// @BasePath /api
// @schemes http https

// @description Customers, products and orders.
func main() {
	applog, err := logger.NewAppLogger()
	if err != nil {
		log.Fatalf("cannot load config: %v\n", err)
	}
	defer logger.Sync(applog)

	cfg, err := config.LoadConfig()
	if err != nil {
		applog.Fatal(err)
	}

	err = sentrygo.Init(sentrygo.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.AppEnv,
		AttachStacktrace: true,
	})
	if err != nil {
		applog.Fatalf("cannot init sentry: %v", err)
	}
	defer sentrygo.Flush(sentry.FlushTime)

	db, err := openDatabase(cfg)
	if err != nil {
		applog.Fatal(err)
	}
	defer db.Close()

	var ps pubsub.Service
	if cfg.Redis.Addr != "" {
		redis, err := redisstore.NewConnection(context.Background(), redisstore.ParseFromConfig(cfg))
		if err != nil {
			applog.Fatal(err)
		}
		defer redis.Close()

		ps = redisstore.NewRedisClient(redis)
	}

	// event bus
	dispatcher := event.NewEventDispatcher(
		event.WithPolicy(event.Policy(cfg.EventPolicy)),
		event.WithLogger(applog),
	)
	listeners.RegisterAll(dispatcher, applog, ps)

	// store adapters
	customerStore := postgrestore.NewCustomerStore(db.ORM)
	productStore := postgrestore.NewProductStore(db.SQL)
	orderStore := postgrestore.NewOrderStore(db.ORM)

	server, err := httpserver.New(cfg, applog, func(s *httpserver.Server) error {
		s.EventDispatcher = dispatcher

		// internal services
		s.MapperService = services.NewMapperService()
		s.CSVService = services.NewCSVService()

		s.CustomerService = services.NewCustomerService(customerStore, dispatcher)
		s.ProductService = services.NewProductService(productStore, dispatcher)
		s.OrderService = services.NewOrderService(orderStore, customerStore, productStore)

		return nil
	})
	if err != nil {
		applog.Fatal(err)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	applog.Infow("server started!", "addr", addr, "event_policy", cfg.EventPolicy)
	applog.Fatal(http.ListenAndServe(addr, server))
}

func openDatabase(cfg *config.Config) (*postgrestore.Conn, error) {
	if cfg.IsLocal() {
		return inmemstore.NewConnection()
	}

	return postgrestore.NewConnection(postgrestore.ParseFromConfig(cfg))
}
