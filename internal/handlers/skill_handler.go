package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/skillswap/internal/models"
	"github.com/joshua-takyi/skillswap/internal/services"
)

func CreateSkill(s *services.SkillService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var skill models.Skill
		if err := c.ShouldBindJSON(&skill); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body", "details": err.Error()})
			return
		}

		id, err := s.CreateSkill(c.Request.Context(), &skill)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to create skill"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"acknowledged": true, "insertedId": id.Hex()})
	}
}

// GetSkills answers the public paginated search: {skills, count}, where
// count is the total matching the filter regardless of paging.
func GetSkills(s *services.SkillService) gin.HandlerFunc {
	return func(c *gin.Context) {
		search := c.Query("searchParams")
		page := c.Query("page")
		size := c.Query("size")
		sortByDate := c.Query("sortByDate") == "true"

		skills, count, err := s.SearchSkills(c.Request.Context(), search, page, size, sortByDate)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to fetch skills"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"skills": skills, "count": count})
	}
}

func GetSkillByID(s *services.SkillService) gin.HandlerFunc {
	return func(c *gin.Context) {
		skill, err := s.GetSkillByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, models.ErrInvalidID) {
				c.JSON(http.StatusBadRequest, gin.H{"message": "invalid skill id"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to fetch skill"})
			return
		}
		// A missing skill is a JSON null, not a 404.
		c.JSON(http.StatusOK, skill)
	}
}

func GetSkillsByCreator(s *services.SkillService) gin.HandlerFunc {
	return func(c *gin.Context) {
		skills, err := s.GetSkillsByCreator(c.Request.Context(), c.Param("email"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to fetch skills"})
			return
		}
		c.JSON(http.StatusOK, skills)
	}
}

func GetCategories(s *services.SkillService) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := s.ListCategories(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

func GetTrendingSkills(s *services.SkillService) gin.HandlerFunc {
	return func(c *gin.Context) {
		trending, err := s.TrendingCategories(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to fetch trending skills"})
			return
		}
		c.JSON(http.StatusOK, trending)
	}
}
