package mockapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/flicky/flowerstore-client/internal/dto"
	"github.com/flicky/flowerstore-client/internal/model"
)

func (s *Server) listAddresses(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	addrs := s.store.addresses[userID]
	if addrs == nil {
		addrs = []model.Address{}
	}
	c.JSON(http.StatusOK, dto.Envelope[[]model.Address]{Data: addrs})
}

func (s *Server) getAddress(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	addressID, ok := pathID(c, "addressId")
	if !ok {
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	for _, a := range s.store.addresses[userID] {
		if a.AddressID == addressID {
			c.JSON(http.StatusOK, dto.Envelope[model.Address]{Data: a})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "address not found"})
}

func (s *Server) createAddress(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	var req dto.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	addr := model.Address{
		AddressID: s.store.id(),
		Street:    req.Street,
		District:  req.District,
		City:      req.City,
	}
	s.store.addresses[userID] = append(s.store.addresses[userID], addr)
	c.JSON(http.StatusCreated, addr)
}

func (s *Server) updateAddress(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	addressID, ok := pathID(c, "addressId")
	if !ok {
		return
	}
	var req dto.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	addrs := s.store.addresses[userID]
	for i := range addrs {
		if addrs[i].AddressID == addressID {
			addrs[i].Street = req.Street
			addrs[i].District = req.District
			addrs[i].City = req.City
			c.JSON(http.StatusOK, addrs[i])
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "address not found"})
}

func (s *Server) deleteAddress(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	addressID, ok := pathID(c, "addressId")
	if !ok {
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	addrs := s.store.addresses[userID]
	for i := range addrs {
		if addrs[i].AddressID == addressID {
			s.store.addresses[userID] = append(addrs[:i], addrs[i+1:]...)
			c.Status(http.StatusNoContent)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "address not found"})
}
