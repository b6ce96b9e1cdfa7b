// Package store owns all storefront state: the seed catalog, the
// current session's cart, the order history, and the session itself.
// It is the single writer; the presentation layer holds no copies and
// drives every mutation through the methods here.
package store

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"slicehub/models"
	"slicehub/statemachine"
)

// OrderDetails carries the checkout form fields into PlaceOrder.
type OrderDetails struct {
	DeliveryAddress string               `validate:"required"`
	Payment         models.PaymentMethod `validate:"required,oneof=card upi cod"`
}

// Store is the explicit state owner. Construct one with New and pass
// the handle to whichever component needs it; there is no package-level
// singleton. All methods are safe for concurrent use, though the
// storefront itself drives the store from a single goroutine.
type Store struct {
	mu       sync.RWMutex
	menu     []models.MenuItem
	cart     []models.CartLine
	orders   []models.Order // most recent first
	user     *models.User
	logger   *zap.Logger
	validate *validator.Validate
	now      func() time.Time
}

// New creates a Store seeded with the given catalog and order history.
// A nil logger disables logging.
func New(menu []models.MenuItem, seedOrders []models.Order, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		menu:     append([]models.MenuItem(nil), menu...),
		orders:   append([]models.Order(nil), seedOrders...),
		logger:   logger,
		validate: validator.New(),
		now:      time.Now,
	}
}

// Menu returns the immutable seed catalog.
func (s *Store) Menu() []models.MenuItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.MenuItem(nil), s.menu...)
}

// AddToCart adds one of item to the cart. A repeat add bumps the
// existing line's quantity; the cart never holds two lines for the
// same item id. Catalog membership is the caller's responsibility.
func (s *Store) AddToCart(item models.MenuItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart {
		if s.cart[i].Item.ID == item.ID {
			s.cart[i].Quantity++
			return
		}
	}
	s.cart = append(s.cart, models.CartLine{Item: item, Quantity: 1})
}

// RemoveFromCart deletes the line for itemID; no-op if absent.
func (s *Store) RemoveFromCart(itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart {
		if s.cart[i].Item.ID == itemID {
			s.cart = append(s.cart[:i], s.cart[i+1:]...)
			return
		}
	}
}

// UpdateQuantity applies delta to the line for itemID, clamping at a
// floor of 1. Removal goes through RemoveFromCart; this operation can
// never drive a line to zero. No-op if the line does not exist.
func (s *Store) UpdateQuantity(itemID string, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart {
		if s.cart[i].Item.ID == itemID {
			s.cart[i].Quantity = max(1, s.cart[i].Quantity+delta)
			return
		}
	}
}

// ClearCart empties the cart unconditionally.
func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = nil
}

// Cart returns a copy of the current cart lines in insertion order.
func (s *Store) Cart() []models.CartLine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.CartLine(nil), s.cart...)
}

// CartTotal is recomputed from the current lines on every read so it
// can never diverge from the cart contents.
func (s *Store) CartTotal() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cartTotalLocked()
}

func (s *Store) cartTotalLocked() float64 {
	var total float64
	for _, line := range s.cart {
		total += line.Subtotal()
	}
	return total
}

// PlaceOrder checks out the current cart. It fails with
// ErrNoActiveSession when nobody is logged in, ErrEmptyCart when there
// is nothing to order, and a validation error for a missing address or
// an unknown payment method. On success the new order carries a
// snapshot of the cart frozen at call time, is prepended to the order
// history, and the cart is cleared.
func (s *Store) PlaceOrder(details OrderDetails) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return models.Order{}, ErrNoActiveSession
	}
	if len(s.cart) == 0 {
		return models.Order{}, ErrEmptyCart
	}
	if err := s.validate.Struct(details); err != nil {
		return models.Order{}, fmt.Errorf("invalid order details: %w", err)
	}

	items := make([]models.CartLine, len(s.cart))
	copy(items, s.cart)

	now := s.now()
	order := models.Order{
		ID:              newOrderID(),
		UserID:          s.user.ID,
		Items:           items,
		Total:           s.cartTotalLocked(),
		Status:          models.StatusPending,
		PlacedAt:        now,
		DeliveryAddress: details.DeliveryAddress,
		Payment:         details.Payment,
		History: []models.StatusChange{{
			To:        models.StatusPending,
			ChangedBy: s.user.ID,
			Note:      "order placed",
			At:        now,
		}},
	}

	s.orders = append([]models.Order{order}, s.orders...)
	s.cart = nil

	s.logger.Info("order placed",
		zap.String("order_id", order.ID),
		zap.String("user_id", order.UserID),
		zap.Int("line_count", len(order.Items)),
		zap.Float64("total", order.Total))

	return order, nil
}

// Orders returns the order history, most recent first.
func (s *Store) Orders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Order(nil), s.orders...)
}

// UpdateOrderStatus sets an order's status. Any status may be set from
// any other; this is an administrative override, not a pipeline step,
// so overrides that jump or rewind the pipeline are logged rather than
// rejected. Unknown order ids are a silent no-op, tolerating stale
// operator views. Every applied change appends to the audit history.
func (s *Store) UpdateOrderStatus(orderID string, status models.OrderStatus, changedBy, note string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID != orderID {
			continue
		}
		prev := s.orders[i].Status
		change := statemachine.Classify(prev, status)
		if change == statemachine.Skip || change == statemachine.Rewind {
			s.logger.Warn("status override outside pipeline",
				zap.String("order_id", orderID),
				zap.String("from", string(prev)),
				zap.String("to", string(status)),
				zap.String("change", change.String()),
				zap.String("changed_by", changedBy))
		}
		s.orders[i].Status = status
		s.orders[i].History = append(s.orders[i].History, models.StatusChange{
			From:      prev,
			To:        status,
			ChangedBy: changedBy,
			Note:      note,
			At:        s.now(),
		})
		s.logger.Info("order status updated",
			zap.String("order_id", orderID),
			zap.String("from", string(prev)),
			zap.String("to", string(status)))
		return
	}

	s.logger.Debug("status update for unknown order", zap.String("order_id", orderID))
}

// Login opens a session for name. The requested role is honored except
// for the reserved name "admin" (case-insensitive), which always yields
// an admin session; the elevation is logged so it stays auditable. An
// empty requested role defaults to customer. Logging in does not touch
// the cart.
func (s *Store) Login(name string, requested models.UserRole) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	role := requested
	if role == "" {
		role = models.RoleCustomer
	}
	if strings.EqualFold(name, "admin") {
		if role != models.RoleAdmin {
			s.logger.Info("session elevated by reserved name",
				zap.String("name", name),
				zap.String("requested_role", string(requested)),
				zap.String("granted_role", string(models.RoleAdmin)))
		}
		role = models.RoleAdmin
	}

	prefix := "user"
	if role == models.RoleAdmin {
		prefix = "admin"
	}
	user := models.User{
		ID:    fmt.Sprintf("%s-%s", prefix, uuid.NewString()[:8]),
		Name:  name,
		Email: strings.ToLower(name) + "@example.com",
		Role:  role,
	}
	s.user = &user

	s.logger.Info("session opened",
		zap.String("user_id", user.ID),
		zap.String("role", string(user.Role)))
	return user
}

// Logout clears the session and the cart in the same call.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user != nil {
		s.logger.Info("session closed", zap.String("user_id", s.user.ID))
	}
	s.user = nil
	s.cart = nil
}

// CurrentUser returns the active session, if any.
func (s *Store) CurrentUser() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

func newOrderID() string {
	return "ORD-" + strings.ToUpper(uuid.NewString()[:8])
}
