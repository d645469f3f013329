package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/skillswap/internal/models"
	"github.com/joshua-takyi/skillswap/internal/services"
)

// CreateOrFetchUser is the first-contact upsert: the first call for an
// email stores the record with role "user", every later call returns the
// stored record unchanged.
func CreateOrFetchUser(s *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := c.ShouldBindJSON(&user); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body", "details": err.Error()})
			return
		}

		stored, err := s.CreateOrFetchUser(c.Request.Context(), c.Param("email"), &user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to create user"})
			return
		}
		c.JSON(http.StatusOK, stored)
	}
}

func GetAllUsers(s *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := s.SearchUsers(c.Request.Context(), c.Query("search"), c.Query("page"), c.Query("limit"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to fetch users"})
			return
		}
		c.JSON(http.StatusOK, users)
	}
}

func SetUserRole(s *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Role string `json:"role" binding:"required"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body", "details": err.Error()})
			return
		}

		matched, modified, err := s.SetUserRole(c.Request.Context(), c.Param("id"), body.Role)
		if err != nil {
			if errors.Is(err, models.ErrInvalidID) {
				c.JSON(http.StatusBadRequest, gin.H{"message": "invalid role update", "details": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to update role"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"acknowledged": true, "matchedCount": matched, "modifiedCount": modified})
	}
}

func DeleteUser(s *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		deleted, err := s.DeleteUser(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, models.ErrInvalidID) {
				c.JSON(http.StatusBadRequest, gin.H{"message": "invalid user id"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to delete user"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"acknowledged": true, "deletedCount": deleted})
	}
}

func GetUserRole(s *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := s.GetUserByEmail(c.Request.Context(), c.Param("email"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to fetch role"})
			return
		}
		if user == nil {
			c.JSON(http.StatusOK, gin.H{"role": nil})
			return
		}
		c.JSON(http.StatusOK, gin.H{"role": user.Role})
	}
}

func GetUserByEmail(s *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := s.GetUserByEmail(c.Request.Context(), c.Param("email"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to fetch user"})
			return
		}
		// A missing user is a JSON null, not a 404.
		c.JSON(http.StatusOK, user)
	}
}

// UpdateUser applies a partial $set of the posted fields; identity and
// privilege fields are dropped before the write.
func UpdateUser(s *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var fields map[string]interface{}
		if err := c.ShouldBindJSON(&fields); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body", "details": err.Error()})
			return
		}
		if len(fields) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "no fields to update"})
			return
		}

		matched, err := s.UpdateUserByEmail(c.Request.Context(), c.Param("email"), fields)
		if err != nil {
			if errors.Is(err, models.ErrInvalidID) {
				c.JSON(http.StatusBadRequest, gin.H{"message": "no fields to update"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to update user"})
			return
		}
		if matched == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "user not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "user updated"})
	}
}
