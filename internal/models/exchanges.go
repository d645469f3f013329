package models

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Exchange status values. Pending is the initial state; Accepted and
// Rejected are terminal, and only Accepted cascades onto the skills.
const (
	ExchangeStatusPending  = "Pending"
	ExchangeStatusAccepted = "Accepted"
	ExchangeStatusRejected = "Rejected"
)

type Exchange struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title                string             `bson:"title" json:"title"`
	CreatorEmail         string             `bson:"creatorEmail" json:"creatorEmail" validate:"required,email"`
	ApplicationUserEmail string             `bson:"applicationUserEmail" json:"applicationUserEmail" validate:"required,email"`
	CreatorSkillID       primitive.ObjectID `bson:"creatorSkillId" json:"creatorSkillId"`
	ApplicationSkillID   primitive.ObjectID `bson:"applicationSkillId" json:"applicationSkillId"`
	Status               string             `bson:"status" json:"status"`
	CreatedAt            time.Time          `bson:"createdAt" json:"createdAt"`
}

type ExchangeRepo interface {
	CreateExchange(ctx context.Context, exchange *Exchange) (primitive.ObjectID, error)
	SearchExchanges(ctx context.Context, q ListQuery) ([]Exchange, int64, error)
	AcceptedExchangesForUser(ctx context.Context, email string) ([]Exchange, error)
	// TransitionExchange moves the exchange to target and, iff target is
	// Accepted, marks both referenced skills unavailable in the same
	// transaction. Returns ErrNotFound or ErrAlreadyAccepted on guard
	// failure.
	TransitionExchange(ctx context.Context, id primitive.ObjectID, target string, creatorSkillID, applicationSkillID primitive.ObjectID) error
}

func IsValidExchangeStatus(s string) bool {
	switch s {
	case ExchangeStatusPending, ExchangeStatusAccepted, ExchangeStatusRejected:
		return true
	}
	return false
}

// CanTransition checks the lifecycle guard: once Accepted, an exchange
// never moves again, whatever the requested target.
func (e *Exchange) CanTransition(target string) error {
	if !IsValidExchangeStatus(target) {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidID, target)
	}
	if e.Status == ExchangeStatusAccepted {
		return ErrAlreadyAccepted
	}
	return nil
}

func (e *Exchange) BeforeCreate() {
	if e.ID.IsZero() {
		e.ID = primitive.NewObjectID()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	// Exchanges always enter the lifecycle as Pending.
	e.Status = ExchangeStatusPending
}
