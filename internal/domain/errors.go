package domain

import "errors"

var (
	// Ошибка отсутствующего идентификатора клиента.
	ErrCustomerRequired = errors.New("customer_id is required")
	// Ошибка отсутствия хотя бы одного товара в заказе.
	ErrItemsRequired = errors.New("order must contain at least one item")
	// Ошибка отсутствующего идентификатора товара в позиции.
	ErrItemProductRequired = errors.New("item product_id is required")
	// Ошибка при некорректном количестве товара (<= 0).
	ErrItemQtyInvalid = errors.New("item quantity must be greater than zero")
	// Ошибка, если цена позиции отрицательная.
	ErrItemPriceInvalid = errors.New("item price must be non-negative")
	// Ошибка повторяющегося товара в запросе: позиции должны быть уникальны по товару.
	ErrDuplicateProduct = errors.New("duplicate product in order items")

	// ErrCustomerNotFound возвращается, если клиент не найден.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrProductsNotFound возвращается, если хотя бы один запрошенный товар не существует.
	ErrProductsNotFound = errors.New("one or more products not found")
	// ErrInsufficientStock возвращается, если остатка товара не хватает на запрошенное количество.
	ErrInsufficientStock = errors.New("insufficient product quantity")
	// ErrOrderNotFound возвращается, если заказ не найден в репозитории.
	ErrOrderNotFound = errors.New("order not found")
	// ErrOrderAlreadyExists сигнализирует о коллизии идентификатора при сохранении заказа.
	ErrOrderAlreadyExists = errors.New("order already exists")
)

// IsClientError проверяет, относится ли ошибка к некорректному запросу клиента,
// а не к сбою системы. Такие ошибки вызывающий слой переводит в отказ 4xx.
func IsClientError(err error) bool {
	for _, target := range []error{
		ErrCustomerRequired,
		ErrItemsRequired,
		ErrItemProductRequired,
		ErrItemQtyInvalid,
		ErrItemPriceInvalid,
		ErrDuplicateProduct,
		ErrCustomerNotFound,
		ErrProductsNotFound,
		ErrInsufficientStock,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
