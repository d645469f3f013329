package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/skillswap/internal/models"
	"github.com/joshua-takyi/skillswap/internal/services"
)

// CreateReview inserts a review unless the reviewer already reviewed the
// skill; a repeat is a 400 and leaves the stored reviews untouched.
func CreateReview(s *services.ModerationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var review models.Review
		if err := c.ShouldBindJSON(&review); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body", "details": err.Error()})
			return
		}

		id, err := s.CreateReview(c.Request.Context(), &review)
		if err != nil {
			if errors.Is(err, models.ErrDuplicate) {
				c.JSON(http.StatusBadRequest, gin.H{"message": "you have already reviewed this skill"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to create review"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"acknowledged": true, "insertedId": id.Hex()})
	}
}

func CreateReport(s *services.ModerationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var report models.Report
		if err := c.ShouldBindJSON(&report); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body", "details": err.Error()})
			return
		}

		id, err := s.CreateReport(c.Request.Context(), &report)
		if err != nil {
			if errors.Is(err, models.ErrDuplicate) {
				c.JSON(http.StatusBadRequest, gin.H{"message": "you have already reported this skill"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to create report"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"acknowledged": true, "insertedId": id.Hex()})
	}
}

func GetReviewsAndReports(s *services.ModerationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		reviews, reports, err := s.ReviewsAndReportsBySkill(c.Request.Context(), c.Param("skillId"))
		if err != nil {
			if errors.Is(err, models.ErrInvalidID) {
				c.JSON(http.StatusBadRequest, gin.H{"message": "invalid skill id"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to fetch reviews and reports"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"reviews": reviews, "reports": reports})
	}
}

func GetAllReports(s *services.ModerationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		reports, err := s.AllReports(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to fetch reports"})
			return
		}
		c.JSON(http.StatusOK, reports)
	}
}

func DeleteReport(s *services.ModerationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		deleted, err := s.DeleteReport(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, models.ErrInvalidID) {
				c.JSON(http.StatusBadRequest, gin.H{"message": "invalid report id"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to delete report"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"acknowledged": true, "deletedCount": deleted})
	}
}
