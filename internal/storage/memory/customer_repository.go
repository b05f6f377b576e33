package memory

import (
	"sync"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// CustomerRepository — in-memory реализация domain.CustomerRepository
// для локальной разработки и тестов.
type CustomerRepository struct {
	mu    sync.RWMutex
	items map[string]domain.Customer
}

// NewCustomerRepository возвращает пустой in-memory репозиторий клиентов.
func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{
		items: make(map[string]domain.Customer),
	}
}

// Put добавляет или перезаписывает клиента. Используется для наполнения
// репозитория в тестах и демо-режиме.
func (r *CustomerRepository) Put(customer domain.Customer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[customer.ID] = customer
}

// FindByID возвращает клиента или ErrCustomerNotFound, если его нет.
func (r *CustomerRepository) FindByID(id string) (domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	customer, ok := r.items[id]
	if !ok {
		return domain.Customer{}, domain.ErrCustomerNotFound
	}
	return customer, nil
}

var _ domain.CustomerRepository = (*CustomerRepository)(nil)
