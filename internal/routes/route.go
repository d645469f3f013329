package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/skillswap/internal/container"
	"github.com/joshua-takyi/skillswap/internal/handlers"
	"github.com/joshua-takyi/skillswap/internal/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes configures all routes with the dependency container.
// Paths are registered at the root, not under an API prefix: the public
// contract of this service predates it and clients depend on the exact
// paths. Exactly one handler is registered per path/method pair.
func SetupRoutes(container *container.Container) *gin.Engine {
	// Set Gin mode for production
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Add middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(container.Logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.ErrorHandler(container.Logger))
	r.Use(gin.Recovery())

	// Liveness
	r.GET("/", func(c *gin.Context) {
		c.String(200, "SkillSwap server is running...")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Skills
	r.POST("/create-skills", handlers.CreateSkill(container.SkillService))
	r.GET("/get-skills", handlers.GetSkills(container.SkillService))
	r.GET("/get-skill/:id", handlers.GetSkillByID(container.SkillService))
	r.GET("/get-skills/:email", handlers.GetSkillsByCreator(container.SkillService))
	r.GET("/categories", handlers.GetCategories(container.SkillService))
	r.GET("/trending-skills", handlers.GetTrendingSkills(container.SkillService))

	// Exchanges
	r.POST("/exchanges", handlers.CreateExchange(container.ExchangeService))
	r.GET("/exchanges/:email", handlers.GetExchangesByCreator(container.ExchangeService))
	r.PATCH("/exchanges/:id", handlers.UpdateExchangeStatus(container.ExchangeService))
	r.GET("/accepted-exchanges/:email", handlers.GetAcceptedExchanges(container.ExchangeService))

	// Saved skills
	r.POST("/save-skill", handlers.SaveSkill(container.SavedSkillService))
	r.GET("/get-saved-skills", handlers.GetSavedSkills(container.SavedSkillService))
	r.DELETE("/delete-saved-skill/:id", handlers.DeleteSavedSkill(container.SavedSkillService))

	// Reviews and reports
	r.POST("/review", handlers.CreateReview(container.ModerationService))
	r.POST("/report", handlers.CreateReport(container.ModerationService))
	r.GET("/reviews-and-reports/:skillId", handlers.GetReviewsAndReports(container.ModerationService))
	r.GET("/all-reports", handlers.GetAllReports(container.ModerationService))
	r.DELETE("/delete-report/:id", handlers.DeleteReport(container.ModerationService))

	// Users
	r.POST("/users/:email", handlers.CreateOrFetchUser(container.UserService))
	r.GET("/users/role/:email", handlers.GetUserRole(container.UserService))
	r.GET("/allUsers", handlers.GetAllUsers(container.UserService))
	r.PATCH("/make-role/:id", handlers.SetUserRole(container.UserService))
	r.DELETE("/delete-user/:id", handlers.DeleteUser(container.UserService))
	r.GET("/user/:email", handlers.GetUserByEmail(container.UserService))
	r.PATCH("/user/:email", handlers.UpdateUser(container.UserService))

	return r
}
