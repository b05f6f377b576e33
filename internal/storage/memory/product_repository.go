package memory

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// ProductRepository — in-memory реализация domain.ProductRepository.
// Списание остатков выполняется под одной блокировкой, поэтому декремент
// атомарен относительно конкурентных заказов.
type ProductRepository struct {
	mu    sync.Mutex
	items map[string]domain.Product
}

// NewProductRepository возвращает пустой in-memory каталог товаров.
func NewProductRepository() *ProductRepository {
	return &ProductRepository{
		items: make(map[string]domain.Product),
	}
}

// Put добавляет или перезаписывает товар. Используется для наполнения
// каталога в тестах и демо-режиме.
func (r *ProductRepository) Put(product domain.Product) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[product.ID] = product
}

// FindAllByIDs возвращает найденные товары; отсутствующие идентификаторы опускаются.
func (r *ProductRepository) FindAllByIDs(ids []string) ([]domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[string]struct{}, len(ids))
	result := make([]domain.Product, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		if product, ok := r.items[id]; ok {
			result = append(result, product)
		}
	}

	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })

	return result, nil
}

// UpdateQuantities списывает запрошенные количества по принципу "всё или ничего":
// сначала проверяются все остатки, затем применяется декремент.
func (r *ProductRepository) UpdateQuantities(requests []domain.ItemRequest) ([]domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, req := range requests {
		product, ok := r.items[req.ProductID]
		if !ok {
			return nil, fmt.Errorf("product %s: %w", req.ProductID, domain.ErrProductsNotFound)
		}
		if product.Quantity < req.Quantity {
			return nil, fmt.Errorf("product %s: %w", req.ProductID, domain.ErrInsufficientStock)
		}
	}

	updated := make([]domain.Product, 0, len(requests))
	for _, req := range requests {
		product := r.items[req.ProductID]
		product.Quantity -= req.Quantity
		r.items[req.ProductID] = product
		updated = append(updated, product)
	}

	return updated, nil
}

var _ domain.ProductRepository = (*ProductRepository)(nil)
