package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/skillswap/internal/models"
	"github.com/joshua-takyi/skillswap/internal/services"
)

func CreateExchange(s *services.ExchangeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var exchange models.Exchange
		if err := c.ShouldBindJSON(&exchange); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body", "details": err.Error()})
			return
		}

		id, err := s.CreateExchange(c.Request.Context(), &exchange)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to create exchange"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"acknowledged": true, "insertedId": id.Hex()})
	}
}

// GetExchangesByCreator answers {total, requests} for one creator's
// exchange requests, with optional title search and one-based paging.
func GetExchangesByCreator(s *services.ExchangeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email")
		search := c.Query("search")
		page := c.Query("page")
		limit := c.Query("limit")

		exchanges, total, err := s.SearchExchangesByCreator(c.Request.Context(), email, search, page, limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to fetch exchanges"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"total": total, "requests": exchanges})
	}
}

// UpdateExchangeStatus applies the lifecycle transition. The guard order
// is: not found, already accepted, then the write (with the accept cascade
// applied transactionally below).
func UpdateExchangeStatus(s *services.ExchangeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Status             string `json:"status" binding:"required"`
			CreatorSkillID     string `json:"creatorSkillId"`
			ApplicationSkillID string `json:"applicationSkillId"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body", "details": err.Error()})
			return
		}

		err := s.TransitionExchange(c.Request.Context(), c.Param("id"), body.Status, body.CreatorSkillID, body.ApplicationSkillID)
		switch {
		case err == nil:
			c.JSON(http.StatusOK, gin.H{"message": "exchange updated"})
		case errors.Is(err, models.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "exchange not found"})
		case errors.Is(err, models.ErrAlreadyAccepted):
			c.JSON(http.StatusBadRequest, gin.H{"message": "exchange already accepted"})
		case errors.Is(err, models.ErrInvalidID):
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid exchange update", "details": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to update exchange"})
		}
	}
}

func GetAcceptedExchanges(s *services.ExchangeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		exchanges, err := s.AcceptedExchangesForUser(c.Request.Context(), c.Param("email"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to fetch exchanges"})
			return
		}
		c.JSON(http.StatusOK, exchanges)
	}
}
