package postgres

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

func TestOrderRepositoryIntegration_CreateGet(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewOrderRepository(store)

	customer := seedCustomerForIntegrationTest(t, store)
	product := seedProductForIntegrationTest(t, store, 1000, 5)

	created, err := repo.Create(customer, []domain.OrderLine{
		{ProductID: product.ID, PriceMinor: product.PriceMinor, Quantity: 2},
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, customer.ID, created.CustomerID)
	require.Len(t, created.Items, 1)
	require.Equal(t, created.ID, created.Items[0].OrderID)
	require.False(t, created.CreatedAt.IsZero())

	stored, err := repo.Get(created.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, stored.ID)
	require.Len(t, stored.Items, 1)
	require.Equal(t, int64(1000), stored.Items[0].PriceMinor)
	require.Equal(t, int32(2), stored.Items[0].Quantity)
	require.NotNil(t, stored.Customer)
	require.Equal(t, customer.Email, stored.Customer.Email)
}

func TestOrderRepositoryIntegration_Get_NotFound(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewOrderRepository(store)

	_, err := repo.Get("00000000-0000-0000-0000-000000000000")
	require.True(t, errors.Is(err, domain.ErrOrderNotFound))
}

func TestOrderRepositoryIntegration_ListByCustomer(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewOrderRepository(store)

	customer := seedCustomerForIntegrationTest(t, store)
	other := seedCustomerForIntegrationTest(t, store)
	product := seedProductForIntegrationTest(t, store, 1000, 10)

	lines := []domain.OrderLine{{ProductID: product.ID, PriceMinor: 1000, Quantity: 1}}

	_, err := repo.Create(customer, lines)
	require.NoError(t, err)
	_, err = repo.Create(customer, lines)
	require.NoError(t, err)
	_, err = repo.Create(other, lines)
	require.NoError(t, err)

	orders, err := repo.ListByCustomer(customer.ID, 0)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	for _, order := range orders {
		require.Equal(t, customer.ID, order.CustomerID)
		require.Len(t, order.Items, 1)
	}

	limited, err := repo.ListByCustomer(customer.ID, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
}
