package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/joshua-takyi/skillswap/internal/helpers"
	"github.com/joshua-takyi/skillswap/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ExchangeService struct {
	exchangeRepo models.ExchangeRepo
}

func NewExchangeService(exchangeRepo models.ExchangeRepo) *ExchangeService {
	return &ExchangeService{
		exchangeRepo: exchangeRepo,
	}
}

func (es *ExchangeService) CreateExchange(ctx context.Context, exchange *models.Exchange) (primitive.ObjectID, error) {
	exchange.Title = helpers.StringTrim(exchange.Title)
	return es.exchangeRepo.CreateExchange(ctx, exchange)
}

// SearchExchangesByCreator pages through the exchanges a user has created,
// optionally filtered by a case-insensitive title search. Page is one-based.
func (es *ExchangeService) SearchExchangesByCreator(ctx context.Context, email, search, page, limit string) ([]models.Exchange, int64, error) {
	if strings.TrimSpace(email) == "" {
		return nil, 0, fmt.Errorf("email cannot be empty")
	}
	q := models.ScopedListQuery("creatorEmail", email, "title", helpers.StringTrim(search), page, limit)
	return es.exchangeRepo.SearchExchanges(ctx, q)
}

func (es *ExchangeService) AcceptedExchangesForUser(ctx context.Context, email string) ([]models.Exchange, error) {
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("email cannot be empty")
	}
	return es.exchangeRepo.AcceptedExchangesForUser(ctx, email)
}

// TransitionExchange validates the identifiers and requested status, then
// delegates to the repo, which applies the guard and the accept cascade
// transactionally.
func (es *ExchangeService) TransitionExchange(ctx context.Context, id, target, creatorSkillID, applicationSkillID string) error {
	oid, err := helpers.ParseObjectID(id)
	if err != nil {
		return err
	}
	if !models.IsValidExchangeStatus(target) {
		return fmt.Errorf("%w: unknown status %q", models.ErrInvalidID, target)
	}

	// The skill identifiers only matter for the accept cascade; a
	// rejection carries none.
	var creatorSkill, applicationSkill primitive.ObjectID
	if target == models.ExchangeStatusAccepted {
		creatorSkill, err = helpers.ParseObjectID(creatorSkillID)
		if err != nil {
			return err
		}
		applicationSkill, err = helpers.ParseObjectID(applicationSkillID)
		if err != nil {
			return err
		}
	}

	return es.exchangeRepo.TransitionExchange(ctx, oid, target, creatorSkill, applicationSkill)
}
