package mockapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/flicky/flowerstore-client/internal/dto"
	"github.com/flicky/flowerstore-client/internal/model"
)

var paymentMethods = map[int64]string{
	1: "CASH_ON_DELIVERY",
	2: "BANK_TRANSFER",
}

func (s *Server) createOrder(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	method, ok := paymentMethods[req.PaymentID]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown payment method"})
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	cart := s.store.cartFor(req.UserID)
	if len(cart.CartItems) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
		return
	}

	var address model.Address
	for _, a := range s.store.addresses[req.UserID] {
		if a.AddressID == req.AddressID {
			address = a
			break
		}
	}
	if address.AddressID == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "address not found"})
		return
	}

	total := decimal.Zero
	var items []model.OrderItem
	for _, ci := range cart.CartItems {
		total = total.Add(ci.Price.Mul(decimal.NewFromInt(int64(ci.Quantity))))
		items = append(items, model.OrderItem{
			OrderItemID: s.store.id(),
			Quantity:    ci.Quantity,
			OrderPrice:  ci.Price,
			Product:     ci.Product,
		})
	}

	order := model.OrderDetails{
		Order: model.Order{
			OrderID:       s.store.id(),
			OrderDate:     time.Now().Format(time.RFC3339),
			TotalAmount:   total,
			OrderStatus:   "PENDING",
			PaymentStatus: "UNPAID",
		},
		Address:    address,
		Payment:    model.Payment{PaymentID: req.PaymentID, PaymentMethod: method},
		OrderItems: items,
	}
	s.store.orders[req.UserID] = append(s.store.orders[req.UserID], order)

	// checkout empties the cart
	cart.CartItems = []model.CartItem{}
	recalc(cart)

	c.JSON(http.StatusCreated, dto.OrderCreated{
		OrderID:   order.OrderID,
		UserID:    req.UserID,
		AddressID: req.AddressID,
		PaymentID: req.PaymentID,
	})
}

func (s *Server) listOrders(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	orders := []model.Order{}
	for _, o := range s.store.orders[userID] {
		orders = append(orders, o.Order)
	}
	c.JSON(http.StatusOK, dto.Envelope[[]model.Order]{Data: orders})
}

func (s *Server) getOrder(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	orderID, ok := pathID(c, "orderId")
	if !ok {
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	for _, o := range s.store.orders[userID] {
		if o.OrderID == orderID {
			c.JSON(http.StatusOK, dto.Envelope[model.OrderDetails]{Data: o})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
}

func (s *Server) deleteOrder(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	orderID, ok := pathID(c, "orderId")
	if !ok {
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	orders := s.store.orders[userID]
	for i, o := range orders {
		if o.OrderID != orderID {
			continue
		}
		if o.OrderStatus != "PENDING" {
			c.JSON(http.StatusConflict, gin.H{"error": "order is not cancellable"})
			return
		}
		s.store.orders[userID] = append(orders[:i], orders[i+1:]...)
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
}
