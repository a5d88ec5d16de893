package mockapi

import (
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/flicky/flowerstore-client/internal/model"
)

type userRecord struct {
	profile      model.UserProfile
	passwordHash string
}

// store holds all backend state in memory behind one mutex, which also
// serializes concurrent cart mutations the way the real backend is assumed
// to.
type store struct {
	mu           sync.Mutex
	nextID       int64
	users        map[int64]*userRecord
	usersByEmail map[string]int64
	products     []model.Product
	categories   []model.Category
	carts        map[int64]*model.Cart
	orders       map[int64][]model.OrderDetails
	addresses    map[int64][]model.Address
}

func newStore() *store {
	return &store{
		nextID:       100,
		users:        make(map[int64]*userRecord),
		usersByEmail: make(map[string]int64),
		carts:        make(map[int64]*model.Cart),
		orders:       make(map[int64][]model.OrderDetails),
		addresses:    make(map[int64][]model.Address),
	}
}

// id is called with the lock held.
func (s *store) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *store) productByID(id int64) *model.Product {
	for i := range s.products {
		if s.products[i].ProductID == id {
			return &s.products[i]
		}
	}
	return nil
}

// cartFor is called with the lock held.
func (s *store) cartFor(userID int64) *model.Cart {
	cart, ok := s.carts[userID]
	if !ok {
		cart = &model.Cart{CartID: userID, CartItems: []model.CartItem{}}
		s.carts[userID] = cart
	}
	return cart
}

// recalc restores the invariant that the cart total is the server's job.
func recalc(cart *model.Cart) {
	total := decimal.Zero
	for _, item := range cart.CartItems {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	cart.TotalPrice = total
}

func (s *store) seed() {
	s.categories = []model.Category{
		{CategoryID: 1, CategoryName: "Bouquets"},
		{CategoryID: 2, CategoryName: "Roses"},
		{CategoryID: 3, CategoryName: "Orchids"},
	}
	s.products = []model.Product{
		{
			ProductID: 1, ProductName: "Red Rose Bouquet",
			Description: "A dozen red roses", Stock: 25,
			Price:     decimal.NewFromInt(450000),
			Discount:  decimal.NewFromInt(10),
			RealPrice: decimal.NewFromInt(405000),
			CategoryID: 2, CategoryName: "Roses",
			ImageURL: "/images/red-rose-bouquet.jpg",
		},
		{
			ProductID: 2, ProductName: "White Orchid Pot",
			Description: "Phalaenopsis orchid in ceramic pot", Stock: 10,
			Price:     decimal.NewFromInt(650000),
			Discount:  decimal.Zero,
			RealPrice: decimal.NewFromInt(650000),
			CategoryID: 3, CategoryName: "Orchids",
			ImageURL: "/images/white-orchid.jpg",
		},
		{
			ProductID: 42, ProductName: "Sunflower Bundle",
			Description: "Five fresh sunflowers", Stock: 40,
			Price:     decimal.NewFromInt(200000),
			Discount:  decimal.Zero,
			RealPrice: decimal.NewFromInt(200000),
			CategoryID: 1, CategoryName: "Bouquets",
			ImageURL: "/images/sunflowers.jpg",
		},
	}
}

func matchName(p model.Product, name string) bool {
	return strings.Contains(strings.ToLower(p.ProductName), strings.ToLower(name))
}
