package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/skillswap/internal/models"
	"github.com/joshua-takyi/skillswap/internal/services"
)

func SaveSkill(s *services.SavedSkillService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var saved models.SavedSkill
		if err := c.ShouldBindJSON(&saved); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body", "details": err.Error()})
			return
		}

		id, err := s.SaveSkill(c.Request.Context(), &saved)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to save skill"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"acknowledged": true, "insertedId": id.Hex()})
	}
}

// GetSavedSkills answers {total, skills} for one user's saved skills.
// The email query parameter is the required owner scope.
func GetSavedSkills(s *services.SavedSkillService) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Query("email")
		if email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "email is required"})
			return
		}

		saved, total, err := s.SearchSavedSkills(c.Request.Context(), email, c.Query("search"), c.Query("page"), c.Query("limit"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to fetch saved skills"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"total": total, "skills": saved})
	}
}

// DeleteSavedSkill removes by skillId. A miss is an acknowledged delete
// with a zero count, not an error.
func DeleteSavedSkill(s *services.SavedSkillService) gin.HandlerFunc {
	return func(c *gin.Context) {
		deleted, err := s.DeleteSavedSkillBySkillID(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, models.ErrInvalidID) {
				c.JSON(http.StatusBadRequest, gin.H{"message": "invalid skill id"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to delete saved skill"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"acknowledged": true, "deletedCount": deleted})
	}
}
