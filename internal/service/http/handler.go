package httpsvc

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
	ordersvc "github.com/vladislavdragonenkov/storefront/internal/service/order"
)

// Handler — HTTP-обработчики заказов поверх доменного сервиса.
type Handler struct {
	service *ordersvc.Service
	orders  domain.OrderRepository
	logger  *log.Entry
}

// NewHandler создаёт обработчик.
func NewHandler(service *ordersvc.Service, orders domain.OrderRepository, logger *log.Entry) *Handler {
	if logger == nil {
		logger = log.New().WithField("component", "http")
	}
	return &Handler{service: service, orders: orders, logger: logger}
}

type createOrderRequest struct {
	CustomerID string            `json:"customer_id"`
	Items      []itemRequestBody `json:"items"`
}

type itemRequestBody struct {
	ProductID string `json:"product_id"`
	Quantity  int32  `json:"quantity"`
}

type customerBody struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type orderItemBody struct {
	ID         string `json:"id"`
	ProductID  string `json:"product_id"`
	PriceMinor int64  `json:"price_minor"`
	Quantity   int32  `json:"quantity"`
}

type orderBody struct {
	ID          string          `json:"id"`
	CustomerID  string          `json:"customer_id"`
	Customer    *customerBody   `json:"customer,omitempty"`
	Items       []orderItemBody `json:"items"`
	AmountMinor int64           `json:"amount_minor"`
	CreatedAt   time.Time       `json:"created_at"`
}

type errorBody struct {
	Error string `json:"error"`
}

func toOrderBody(order domain.Order) orderBody {
	body := orderBody{
		ID:          order.ID,
		CustomerID:  order.CustomerID,
		Items:       make([]orderItemBody, 0, len(order.Items)),
		AmountMinor: order.AmountMinor(),
		CreatedAt:   order.CreatedAt,
	}
	if order.Customer != nil {
		body.Customer = &customerBody{
			ID:    order.Customer.ID,
			Name:  order.Customer.Name,
			Email: order.Customer.Email,
		}
	}
	for _, item := range order.Items {
		body.Items = append(body.Items, orderItemBody{
			ID:         item.ID,
			ProductID:  item.ProductID,
			PriceMinor: item.PriceMinor,
			Quantity:   item.Quantity,
		})
	}
	return body
}

// CreateOrder обрабатывает POST /api/v1/orders.
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	items := make([]domain.ItemRequest, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, domain.ItemRequest{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	order, err := h.service.CreateOrder(ordersvc.CreateOrderInput{
		CustomerID: req.CustomerID,
		Items:      items,
	})
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, toOrderBody(order))
}

// GetOrder обрабатывает GET /api/v1/orders/{id}.
func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	order, err := h.orders.Get(id)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, toOrderBody(order))
}

// ListCustomerOrders обрабатывает GET /api/v1/customers/{id}/orders.
// Параметр limit ограничивает выдачу; 0 или отсутствие — без ограничения.
func (h *Handler) ListCustomerOrders(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "id")

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			h.writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}

	orders, err := h.orders.ListByCustomer(customerID, limit)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	bodies := make([]orderBody, 0, len(orders))
	for _, order := range orders {
		bodies = append(bodies, toOrderBody(order))
	}
	h.writeJSON(w, http.StatusOK, bodies)
}

// writeDomainError переводит доменные ошибки в HTTP-статусы.
func (h *Handler) writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrCustomerNotFound), errors.Is(err, domain.ErrOrderNotFound):
		h.writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrInsufficientStock):
		h.writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrProductsNotFound), domain.IsClientError(err):
		h.writeError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.WithError(err).Error("request failed")
		h.writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.WithError(err).Error("encode response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, errorBody{Error: message})
}
