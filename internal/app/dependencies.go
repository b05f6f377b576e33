package app

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
	"github.com/vladislavdragonenkov/storefront/internal/health"
	"github.com/vladislavdragonenkov/storefront/internal/storage/memory"
	"github.com/vladislavdragonenkov/storefront/internal/storage/postgres"
)

var (
	errPostgresDSNRequired  = errors.New("postgres dsn is required for postgres storage driver")
	errUnknownStorageDriver = errors.New("unknown storage driver")
)

// Dependencies содержит собранные зависимости приложения.
type Dependencies struct {
	Customers domain.CustomerRepository
	Products  domain.ProductRepository
	Orders    domain.OrderRepository
	Logger    *log.Entry

	// store не nil только для postgres-драйвера.
	store *postgres.Store
}

// Close освобождает ресурсы хранилища.
func (d *Dependencies) Close() error {
	if d.store == nil {
		return nil
	}
	return d.store.Close()
}

// StorageChecker возвращает health-проверку хранилища.
func (d *Dependencies) StorageChecker() health.Checker {
	if d.store != nil {
		store := d.store
		return health.NewSimpleChecker("postgres", func() error {
			return store.Ping(context.Background())
		})
	}
	return health.NewSimpleChecker("memory", func() error { return nil })
}

// NewDependencies собирает репозитории согласно драйверу хранилища.
func NewDependencies(ctx context.Context, cfg Config, logger *log.Entry) (*Dependencies, error) {
	if logger == nil {
		logger = log.WithField("component", "app")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch cfg.StorageDriver {
	case StorageDriverMemory:
		return newMemoryDependencies(logger), nil
	case StorageDriverPostgres:
		return newPostgresDependencies(ctx, cfg, logger)
	default:
		return nil, fmt.Errorf("%w: %s", errUnknownStorageDriver, cfg.StorageDriver)
	}
}

func newMemoryDependencies(logger *log.Entry) *Dependencies {
	customers := memory.NewCustomerRepository()
	products := memory.NewProductRepository()
	seedDemoData(customers, products)

	logger.Info("используется in-memory хранилище с демо-данными")
	return &Dependencies{
		Customers: customers,
		Products:  products,
		Orders:    memory.NewOrderRepository(),
		Logger:    logger,
	}
}

func newPostgresDependencies(ctx context.Context, cfg Config, logger *log.Entry) (*Dependencies, error) {
	store, err := postgres.Open(ctx, cfg.PostgresDSN)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	if cfg.PostgresAutoMigrate {
		if err := store.MigrateUp(ctx, 0); err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("apply migrations: %w", err)
		}
		logger.Info("миграции применены")
	}

	logger.Info("используется postgres хранилище")
	return &Dependencies{
		Customers: postgres.NewCustomerRepository(store),
		Products:  postgres.NewProductRepository(store),
		Orders:    postgres.NewOrderRepository(store),
		Logger:    logger,
		store:     store,
	}, nil
}

// seedDemoData наполняет in-memory хранилище данными для локальной разработки.
func seedDemoData(customers *memory.CustomerRepository, products *memory.ProductRepository) {
	customers.Put(domain.Customer{
		ID:    "11111111-1111-1111-1111-111111111111",
		Name:  "Demo Customer",
		Email: "demo@example.com",
	})
	products.Put(domain.Product{
		ID:         "22222222-2222-2222-2222-222222222222",
		Name:       "Keyboard",
		PriceMinor: 499900,
		Quantity:   50,
	})
	products.Put(domain.Product{
		ID:         "33333333-3333-3333-3333-333333333333",
		Name:       "Mouse",
		PriceMinor: 129900,
		Quantity:   120,
	})
}
