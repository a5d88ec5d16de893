package model

import (
	"github.com/shopspring/decimal"
)

// Field names and JSON tags follow the backend wire contract. Entities other
// than the session are server-authoritative: the client only replaces them
// with a response body, never edits them in place.

type UserProfile struct {
	UserID       int64  `json:"userId"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	MobileNumber string `json:"mobileNumber"`
	Email        string `json:"email"`
	Avatar       string `json:"avatar,omitempty"`
}

type Address struct {
	AddressID int64  `json:"addressId"`
	Street    string `json:"street"`
	District  string `json:"district"`
	City      string `json:"city"`
}

type Product struct {
	ProductID    int64           `json:"productId"`
	ProductName  string          `json:"productName"`
	Description  string          `json:"description"`
	Stock        int             `json:"stock"`
	Price        decimal.Decimal `json:"price"`
	Discount     decimal.Decimal `json:"discount"`
	RealPrice    decimal.Decimal `json:"realPrice"`
	CategoryID   int64           `json:"categoryId"`
	CategoryName string          `json:"categoryName,omitempty"`
	Images       []ProductImage  `json:"images,omitempty"`
	ImageURL     string          `json:"imageUrl"`
}

type ProductImage struct {
	ImageID  int64  `json:"imageId"`
	ImageURL string `json:"imageUrl"`
}

type Category struct {
	CategoryID   int64  `json:"categoryId"`
	CategoryName string `json:"categoryName"`
}

type Cart struct {
	CartID     int64           `json:"cartId"`
	CartItems  []CartItem      `json:"cartItems"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

type CartItem struct {
	CartItemID int64           `json:"cartItemId"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
	Product    Product         `json:"product"`
}

type Order struct {
	OrderID       int64           `json:"orderId"`
	OrderDate     string          `json:"orderDate"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	OrderStatus   string          `json:"orderStatus"`
	PaymentStatus string          `json:"paymentStatus"`
}

type OrderDetails struct {
	Order
	Address    Address     `json:"address"`
	Payment    Payment     `json:"payment"`
	OrderItems []OrderItem `json:"orderItems"`
}

type Payment struct {
	PaymentID     int64  `json:"paymentId"`
	PaymentMethod string `json:"paymentMethod"`
}

type OrderItem struct {
	OrderItemID int64 `json:"orderItemId"`
	Quantity    int   `json:"quantity"`
	// The backend spells this field "oderPrice"; keep the wire name.
	OrderPrice decimal.Decimal `json:"oderPrice"`
	Product    Product         `json:"product"`
}
