package domain

import "time"

// Product — товар каталога с текущим остатком на складе.
type Product struct {
	ID string
	// Name — человекочитаемое название товара.
	Name string
	// PriceMinor — цена за единицу в минимальных денежных единицах (например, копейки).
	PriceMinor int64
	// Quantity — текущий остаток на складе. Никогда не уходит в минус:
	// списание выполняется условным декрементом.
	Quantity  int32
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ItemRequest — запрошенная позиция заказа: товар и количество к списанию.
type ItemRequest struct {
	ProductID string
	Quantity  int32
}
