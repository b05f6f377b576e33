package domain

import "time"

// OrderLine — позиция заказа до сохранения: товар, зафиксированная цена
// и запрошенное количество. Идентификатор и времена назначает хранилище.
type OrderLine struct {
	ProductID string
	// PriceMinor — цена за единицу на момент оформления заказа.
	// После сохранения не меняется, даже если цена товара изменится.
	PriceMinor int64
	Quantity   int32
}

// OrderItem — сохранённая позиция заказа. Живёт только вместе с заказом.
type OrderItem struct {
	ID        string
	OrderID   string
	ProductID string
	// PriceMinor — снимок цены на момент оформления.
	PriceMinor int64
	// Quantity — запрошенное количество, а не остаток после списания.
	Quantity  int32
	CreatedAt time.Time
}

// Order — агрегат заказа: ссылка на клиента и список позиций.
// После создания заказ не мутируется.
type Order struct {
	ID         string
	CustomerID string
	// Customer — полная запись клиента, если хранилище её подгрузило.
	Customer  *Customer
	Items     []OrderItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidateInvariants проверяет базовые инварианты заказа и возвращает список замечаний.
func (o *Order) ValidateInvariants() []error {
	var errs []error

	if o.CustomerID == "" {
		errs = append(errs, ErrCustomerRequired)
	}
	if len(o.Items) == 0 {
		errs = append(errs, ErrItemsRequired)
	}

	for _, item := range o.Items {
		if item.ProductID == "" {
			errs = append(errs, ErrItemProductRequired)
		}
		if item.Quantity <= 0 {
			errs = append(errs, ErrItemQtyInvalid)
		}
		if item.PriceMinor < 0 {
			errs = append(errs, ErrItemPriceInvalid)
		}
	}

	return errs
}

// AmountMinor возвращает сумму заказа по позициям: qty * price.
func (o *Order) AmountMinor() int64 {
	var total int64
	for _, item := range o.Items {
		total += int64(item.Quantity) * item.PriceMinor
	}
	return total
}
