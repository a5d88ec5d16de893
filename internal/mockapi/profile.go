package mockapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/flicky/flowerstore-client/internal/dto"
	"github.com/flicky/flowerstore-client/internal/model"
)

func (s *Server) getProfile(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	rec, ok := s.store.users[userID]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, dto.Envelope[model.UserProfile]{Data: rec.profile})
}

// updateProfile consumes the multipart edit form. An empty text field means
// "no change" per the API contract, not a request to blank the value.
func (s *Server) updateProfile(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "expected multipart form"})
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	rec, exists := s.store.users[userID]
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	if v := formValue(form.Value, "firstName"); v != "" {
		rec.profile.FirstName = v
	}
	if v := formValue(form.Value, "lastName"); v != "" {
		rec.profile.LastName = v
	}
	if v := formValue(form.Value, "mobileNumber"); v != "" {
		rec.profile.MobileNumber = v
	}
	if files := form.File["avatar"]; len(files) > 0 {
		rec.profile.Avatar = "/uploads/" + files[0].Filename
	}

	c.JSON(http.StatusOK, rec.profile)
}

func formValue(form map[string][]string, name string) string {
	if vs := form[name]; len(vs) > 0 {
		return vs[0]
	}
	return ""
}
