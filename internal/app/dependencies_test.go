package app

import (
	"context"
	"errors"
	"testing"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/storefront/internal/health"
)

func testLogger() *log.Entry {
	logger := log.New()
	logger.SetLevel(log.ErrorLevel)
	return logger.WithField("component", "app-test")
}

func TestNewDependencies_Memory(t *testing.T) {
	deps, err := NewDependencies(context.Background(), DefaultConfig(), testLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer func() { _ = deps.Close() }()

	if deps.Customers == nil || deps.Products == nil || deps.Orders == nil {
		t.Fatal("all repositories should be initialized")
	}

	// Демо-данные на месте: клиент и товары находятся.
	customer, err := deps.Customers.FindByID("11111111-1111-1111-1111-111111111111")
	if err != nil {
		t.Fatalf("demo customer should exist: %v", err)
	}
	if customer.Name == "" {
		t.Error("demo customer should have a name")
	}

	products, err := deps.Products.FindAllByIDs([]string{
		"22222222-2222-2222-2222-222222222222",
		"33333333-3333-3333-3333-333333333333",
	})
	if err != nil {
		t.Fatalf("demo products should exist: %v", err)
	}
	if len(products) != 2 {
		t.Errorf("expected 2 demo products, got %d", len(products))
	}
}

func TestNewDependencies_UnknownDriver(t *testing.T) {
	_, err := NewDependencies(context.Background(), Config{StorageDriver: "etcd"}, testLogger())
	if !errors.Is(err, errUnknownStorageDriver) {
		t.Errorf("expected errUnknownStorageDriver, got %v", err)
	}
}

func TestNewDependencies_PostgresWithoutDSN(t *testing.T) {
	cfg := Config{StorageDriver: StorageDriverPostgres}
	_, err := NewDependencies(context.Background(), cfg, testLogger())
	if !errors.Is(err, errPostgresDSNRequired) {
		t.Errorf("expected errPostgresDSNRequired, got %v", err)
	}
}

func TestDependencies_StorageChecker_Memory(t *testing.T) {
	deps, err := NewDependencies(context.Background(), DefaultConfig(), testLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer func() { _ = deps.Close() }()

	check := deps.StorageChecker().Check()
	if check.Status != health.StatusHealthy {
		t.Errorf("memory storage should always be healthy, got %s", check.Status)
	}
}

func TestDependencies_CloseWithoutStore(t *testing.T) {
	deps := &Dependencies{}
	if err := deps.Close(); err != nil {
		t.Errorf("close without store should be a no-op, got %v", err)
	}
}
