package mockapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/flicky/flowerstore-client/internal/dto"
	"github.com/flicky/flowerstore-client/internal/model"
)

func (s *Server) listProducts(c *gin.Context) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	s.paginate(c, s.store.products)
}

func (s *Server) listProductsByCategory(c *gin.Context) {
	categoryID, ok := pathID(c, "categoryId")
	if !ok {
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	var filtered []model.Product
	for _, p := range s.store.products {
		if p.CategoryID == categoryID {
			filtered = append(filtered, p)
		}
	}
	s.paginate(c, filtered)
}

func (s *Server) getProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	product := s.store.productByID(id)
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	c.JSON(http.StatusOK, dto.Envelope[model.Product]{Data: *product})
}

func (s *Server) searchProducts(c *gin.Context) {
	name := c.Query("name")

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	matches := []model.Product{}
	for _, p := range s.store.products {
		if matchName(p, name) {
			matches = append(matches, p)
		}
	}
	c.JSON(http.StatusOK, dto.Envelope[[]model.Product]{Data: matches})
}

func (s *Server) listCategories(c *gin.Context) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	c.JSON(http.StatusOK, dto.Envelope[[]model.Category]{Data: s.store.categories})
}

// paginate is called with the store lock held.
func (s *Server) paginate(c *gin.Context, products []model.Product) {
	pageNo, _ := strconv.Atoi(c.DefaultQuery("pageNo", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	if pageNo < 1 {
		pageNo = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}

	totalPages := (len(products) + pageSize - 1) / pageSize
	start := (pageNo - 1) * pageSize
	if start > len(products) {
		start = len(products)
	}
	end := start + pageSize
	if end > len(products) {
		end = len(products)
	}

	page := make([]model.Product, 0, end-start)
	page = append(page, products[start:end]...)
	c.JSON(http.StatusOK, dto.ProductPage{Data: page, TotalPages: totalPages, CurrentPage: pageNo})
}
