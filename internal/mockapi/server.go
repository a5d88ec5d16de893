// Package mockapi is an in-memory stand-in for the flower-store backend. It
// implements the full wire contract the client consumes, so the resource
// clients can be tested and the app developed without real infrastructure.
package mockapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type Server struct {
	store  *store
	secret []byte
	engine *gin.Engine
}

func New(secret string) *Server {
	s := &Server{store: newStore(), secret: []byte(secret)}
	s.store.seed()

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		auth.POST("/register", s.register)
		auth.POST("/login", s.login)

		products := v1.Group("/products")
		products.GET("", s.listProducts)
		products.GET("/search", s.searchProducts)
		products.GET("/categories/:categoryId", s.listProductsByCategory)
		products.GET("/:id", s.getProduct)

		v1.GET("/categories", s.listCategories)

		users := v1.Group("/users", s.requireAuth())
		users.POST("/orders", s.createOrder)

		user := users.Group("/:userId")
		user.GET("/carts", s.getCart)
		user.POST("/carts", s.addToCart)
		user.PUT("/carts", s.updateCartItem)
		user.DELETE("/carts/product/:productId", s.removeFromCart)

		user.GET("/orders", s.listOrders)
		user.GET("/orders/:orderId", s.getOrder)
		user.DELETE("/orders/:orderId", s.deleteOrder)

		user.GET("/addresses", s.listAddresses)
		user.POST("/addresses", s.createAddress)
		user.GET("/addresses/:addressId", s.getAddress)
		user.PUT("/addresses/:addressId", s.updateAddress)
		user.DELETE("/addresses/:addressId", s.deleteAddress)

		user.GET("/profile", s.getProfile)
		user.PUT("/profile", s.updateProfile)
	}

	s.engine = r
	return s
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		token, err := jwt.Parse(header[7:], func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return s.secret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid claims"})
			return
		}
		sub, _ := claims["sub"].(string)
		userID, err := strconv.ParseInt(sub, 10, 64)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid user id"})
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}

func authUserID(c *gin.Context) int64 {
	id, _ := c.Get("userID")
	uid, _ := id.(int64)
	return uid
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}
