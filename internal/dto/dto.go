package dto

import (
	"github.com/flicky/flowerstore-client/internal/model"
)

// Wire shapes shared by the resource clients and the mock backend. GET
// endpoints wrap their payload in a data envelope; auth and mutation
// responses carry the resource at top level.

// --- Envelopes ---

type Envelope[T any] struct {
	Data T `json:"data"`
}

// ProductPage is the paginated product envelope.
type ProductPage struct {
	Data        []model.Product `json:"data"`
	TotalPages  int             `json:"totalPages"`
	CurrentPage int             `json:"currentPage"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	FirstName    string `json:"firstName" binding:"required"`
	LastName     string `json:"lastName" binding:"required"`
	MobileNumber string `json:"mobileNumber" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=8"`
}

type AuthResponse struct {
	Token string            `json:"token"`
	User  model.UserProfile `json:"user"`
}

// --- Cart ---

type CartItemRequest struct {
	ProductID int64 `json:"productId" binding:"required"`
	Quantity  int   `json:"quantity" binding:"required,min=1"`
}

// --- Orders ---

type CreateOrderRequest struct {
	UserID    int64 `json:"userId" binding:"required"`
	AddressID int64 `json:"addressId" binding:"required"`
	PaymentID int64 `json:"paymentId" binding:"required"`
}

// OrderCreated is the checkout response: the new order id plus the request
// fields echoed back.
type OrderCreated struct {
	OrderID   int64 `json:"orderId"`
	UserID    int64 `json:"userId"`
	AddressID int64 `json:"addressId"`
	PaymentID int64 `json:"paymentId"`
}

// --- Addresses ---

type AddressRequest struct {
	Street   string `json:"street" binding:"required"`
	District string `json:"district" binding:"required"`
	City     string `json:"city" binding:"required"`
}
