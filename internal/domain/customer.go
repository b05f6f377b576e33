package domain

import "time"

// Customer — клиент магазина. Справочник клиентов принадлежит отдельной
// подсистеме, заказ ссылается на клиента только по идентификатору.
type Customer struct {
	ID        string
	Name      string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
