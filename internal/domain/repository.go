package domain

// CustomerRepository — хранилище клиентов. Подсистема заказов только читает его.
type CustomerRepository interface {
	// FindByID возвращает клиента или ErrCustomerNotFound, если его нет.
	FindByID(id string) (Customer, error)
}

// ProductRepository — каталог товаров и складские остатки.
type ProductRepository interface {
	// FindAllByIDs возвращает найденные товары по набору идентификаторов.
	// Может вернуть меньше, чем запрошено: отсутствующие просто опускаются.
	FindAllByIDs(ids []string) ([]Product, error)
	// UpdateQuantities атомарно списывает запрошенные количества и возвращает
	// товары в состоянии после списания. Если хотя бы для одного товара остатка
	// не хватает, возвращает ErrInsufficientStock и не меняет ничего.
	UpdateQuantities(requests []ItemRequest) ([]Product, error)
}

// OrderRepository описывает требования к хранилищу заказов.
type OrderRepository interface {
	// Create сохраняет новый заказ по клиенту и позициям. Идентификаторы
	// и времена создаёт хранилище; возвращается сохранённый агрегат.
	Create(customer Customer, lines []OrderLine) (Order, error)
	// Get возвращает заказ по идентификатору или ErrOrderNotFound, если его нет.
	Get(id string) (Order, error)
	// ListByCustomer возвращает заказы клиента с опциональным ограничением на количество.
	ListByCustomer(customerID string, limit int) ([]Order, error)
}
