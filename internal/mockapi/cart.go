package mockapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/flicky/flowerstore-client/internal/dto"
	"github.com/flicky/flowerstore-client/internal/model"
)

func (s *Server) getCart(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	cart := s.store.cartFor(userID)
	c.JSON(http.StatusOK, dto.Envelope[model.Cart]{Data: *cart})
}

func (s *Server) addToCart(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	var req dto.CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	product := s.store.productByID(req.ProductID)
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	cart := s.store.cartFor(userID)
	merged := false
	for i := range cart.CartItems {
		if cart.CartItems[i].Product.ProductID == req.ProductID {
			cart.CartItems[i].Quantity += req.Quantity
			merged = true
			break
		}
	}
	if !merged {
		cart.CartItems = append(cart.CartItems, model.CartItem{
			CartItemID: s.store.id(),
			Quantity:   req.Quantity,
			Price:      product.RealPrice,
			Product:    *product,
		})
	}
	recalc(cart)
	c.JSON(http.StatusOK, cart)
}

func (s *Server) updateCartItem(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	var req dto.CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	cart := s.store.cartFor(userID)
	for i := range cart.CartItems {
		if cart.CartItems[i].Product.ProductID == req.ProductID {
			cart.CartItems[i].Quantity = req.Quantity
			recalc(cart)
			c.JSON(http.StatusOK, cart)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "cart item not found"})
}

// removeFromCart deletes a line item if present. Removing a product that is
// not in the cart is not an error; the current cart comes back either way.
func (s *Server) removeFromCart(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	productID, ok := pathID(c, "productId")
	if !ok {
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	cart := s.store.cartFor(userID)
	for i := range cart.CartItems {
		if cart.CartItems[i].Product.ProductID == productID {
			cart.CartItems = append(cart.CartItems[:i], cart.CartItems[i+1:]...)
			break
		}
	}
	recalc(cart)
	c.JSON(http.StatusOK, cart)
}
