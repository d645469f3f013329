package container

import (
	"log/slog"

	"github.com/joshua-takyi/skillswap/internal/models"
	"github.com/joshua-takyi/skillswap/internal/services"
	"go.mongodb.org/mongo-driver/mongo"
)

// Container holds all application dependencies
type Container struct {
	Logger        *slog.Logger
	MongoDBClient *mongo.Client

	SkillService      *services.SkillService
	ExchangeService   *services.ExchangeService
	SavedSkillService *services.SavedSkillService
	ModerationService *services.ModerationService
	UserService       *services.UserService
}

// NewContainer creates a new dependency injection container
func NewContainer(logger *slog.Logger, mongoDBClient *mongo.Client, dbName string) *Container {
	// One Mongo repo backs every service; collections are per-entity.
	repo := models.MongodbNewRepo(mongoDBClient, dbName)

	return &Container{
		Logger:            logger,
		MongoDBClient:     mongoDBClient,
		SkillService:      services.NewSkillService(repo),
		ExchangeService:   services.NewExchangeService(repo),
		SavedSkillService: services.NewSavedSkillService(repo),
		ModerationService: services.NewModerationService(repo),
		UserService:       services.NewUserService(repo),
	}
}
