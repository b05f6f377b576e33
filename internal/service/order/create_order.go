package ordersvc

import (
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
	"github.com/vladislavdragonenkov/storefront/internal/metrics"
)

// CreateOrderInput — запрос на оформление заказа: клиент и набор позиций.
type CreateOrderInput struct {
	CustomerID string
	Items      []domain.ItemRequest
}

// Service оркестрирует создание заказа поверх репозиториев-коллабораторов:
// проверка клиента, проверка товаров, списание остатков, сохранение заказа.
// Сервис не хранит состояние между вызовами.
type Service struct {
	customers domain.CustomerRepository
	products  domain.ProductRepository
	orders    domain.OrderRepository
	logger    *log.Entry
	metrics   *metrics.OrderMetrics // опционально; nil отключает метрики
}

// NewService конструирует сервис с зависимостями.
func NewService(
	customers domain.CustomerRepository,
	products domain.ProductRepository,
	orders domain.OrderRepository,
	logger *log.Entry,
) *Service {
	if logger == nil {
		logger = log.New().WithField("component", "order-service")
	}
	return &Service{
		customers: customers,
		products:  products,
		orders:    orders,
		logger:    logger,
	}
}

// WithMetrics подключает метрики оформления заказов.
func (s *Service) WithMetrics(m *metrics.OrderMetrics) *Service {
	s.metrics = m
	return s
}

// CreateOrder выполняет workflow оформления заказа.
//
// Последовательность строго линейна: клиент → товары → списание → сохранение.
// Списание остатков выполняется условным декрементом "всё или ничего", поэтому
// отказ ErrInsufficientStock не оставляет склад в изменённом состоянии.
// Повторный вызов с теми же аргументами создаёт новый заказ и списывает
// остатки ещё раз: идемпотентность обеспечивает вызывающий слой, если нужна.
func (s *Service) CreateOrder(in CreateOrderInput) (domain.Order, error) {
	start := time.Now()

	order, err := s.createOrder(in)
	if err != nil {
		s.recordFailure(err)
		return domain.Order{}, err
	}

	s.recordSuccess(order, time.Since(start))
	return order, nil
}

func (s *Service) createOrder(in CreateOrderInput) (domain.Order, error) {
	if err := validateInput(in); err != nil {
		return domain.Order{}, err
	}

	customer, err := s.customers.FindByID(in.CustomerID)
	if err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			return domain.Order{}, fmt.Errorf("customer %s: %w", in.CustomerID, domain.ErrCustomerNotFound)
		}
		return domain.Order{}, fmt.Errorf("find customer: %w", err)
	}

	ids := make([]string, 0, len(in.Items))
	for _, item := range in.Items {
		ids = append(ids, item.ProductID)
	}

	found, err := s.products.FindAllByIDs(ids)
	if err != nil {
		return domain.Order{}, fmt.Errorf("find products: %w", err)
	}
	if len(found) < len(ids) {
		missing := missingIDs(ids, found)
		s.logger.WithField("missing_products", missing).Warn("order references unknown products")
		return domain.Order{}, fmt.Errorf("products %v: %w", missing, domain.ErrProductsNotFound)
	}

	updated, err := s.products.UpdateQuantities(in.Items)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientStock) || errors.Is(err, domain.ErrProductsNotFound) {
			return domain.Order{}, err
		}
		return domain.Order{}, fmt.Errorf("update quantities: %w", err)
	}

	// Страховочная проверка инварианта склада: условный декремент
	// не должен допускать отрицательных остатков.
	for _, product := range updated {
		if product.Quantity < 0 {
			return domain.Order{}, fmt.Errorf("product %s went negative: %w", product.ID, domain.ErrInsufficientStock)
		}
	}

	requestedQty := make(map[string]int32, len(in.Items))
	for _, item := range in.Items {
		requestedQty[item.ProductID] = item.Quantity
	}

	// Цена фиксируется из каталога на момент оформления; количество —
	// запрошенное, а не остаток после списания.
	lines := make([]domain.OrderLine, 0, len(found))
	for _, product := range found {
		lines = append(lines, domain.OrderLine{
			ProductID:  product.ID,
			PriceMinor: product.PriceMinor,
			Quantity:   requestedQty[product.ID],
		})
	}

	order, err := s.orders.Create(customer, lines)
	if err != nil {
		return domain.Order{}, fmt.Errorf("create order: %w", err)
	}

	if errs := order.ValidateInvariants(); len(errs) > 0 {
		s.logger.WithField("order_id", order.ID).WithField("violations", errs).
			Error("persisted order violates invariants")
	}

	s.logger.WithFields(log.Fields{
		"order_id":    order.ID,
		"customer_id": order.CustomerID,
		"items":       len(order.Items),
		"amount":      order.AmountMinor(),
	}).Info("order created")

	return order, nil
}

func validateInput(in CreateOrderInput) error {
	if in.CustomerID == "" {
		return domain.ErrCustomerRequired
	}
	if len(in.Items) == 0 {
		return domain.ErrItemsRequired
	}

	seen := make(map[string]struct{}, len(in.Items))
	for _, item := range in.Items {
		if item.ProductID == "" {
			return domain.ErrItemProductRequired
		}
		if item.Quantity <= 0 {
			return fmt.Errorf("product %s: %w", item.ProductID, domain.ErrItemQtyInvalid)
		}
		if _, ok := seen[item.ProductID]; ok {
			return fmt.Errorf("product %s: %w", item.ProductID, domain.ErrDuplicateProduct)
		}
		seen[item.ProductID] = struct{}{}
	}

	return nil
}

func missingIDs(requested []string, found []domain.Product) []string {
	present := make(map[string]struct{}, len(found))
	for _, product := range found {
		present[product.ID] = struct{}{}
	}

	missing := make([]string, 0)
	for _, id := range requested {
		if _, ok := present[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}

func (s *Service) recordSuccess(order domain.Order, elapsed time.Duration) {
	if s.metrics == nil {
		return
	}
	s.metrics.RecordOrderCreated(len(order.Items))
	s.metrics.RecordCreateDuration(elapsed)
}

func (s *Service) recordFailure(err error) {
	if s.metrics == nil {
		return
	}
	switch {
	case errors.Is(err, domain.ErrCustomerNotFound):
		s.metrics.RecordOrderFailed(metrics.FailReasonCustomerNotFound)
	case errors.Is(err, domain.ErrProductsNotFound):
		s.metrics.RecordOrderFailed(metrics.FailReasonProductsNotFound)
	case errors.Is(err, domain.ErrInsufficientStock):
		s.metrics.RecordOrderFailed(metrics.FailReasonInsufficientStock)
	case domain.IsClientError(err):
		s.metrics.RecordOrderFailed(metrics.FailReasonInvalidRequest)
	default:
		s.metrics.RecordOrderFailed(metrics.FailReasonInternal)
	}
}
