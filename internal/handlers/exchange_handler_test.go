package handlers

import (
	"fmt"
	"testing"

	"github.com/joshua-takyi/skillswap/internal/models"
	"github.com/joshua-takyi/skillswap/internal/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func seedPendingExchange(repo *memRepo) (exchangeID, creatorSkill, applicationSkill primitive.ObjectID) {
	creatorSkill = primitive.NewObjectID()
	applicationSkill = primitive.NewObjectID()
	exchangeID = primitive.NewObjectID()

	repo.skills = append(repo.skills,
		models.Skill{ID: creatorSkill, Title: "Guitar", Category: "Music", CreatorEmail: "a@example.com", Available: true},
		models.Skill{ID: applicationSkill, Title: "Sourdough", Category: "Cooking", CreatorEmail: "b@example.com", Available: true},
	)
	repo.exchanges = append(repo.exchanges, models.Exchange{
		ID:                   exchangeID,
		Title:                "Guitar for sourdough",
		CreatorEmail:         "a@example.com",
		ApplicationUserEmail: "b@example.com",
		CreatorSkillID:       creatorSkill,
		ApplicationSkillID:   applicationSkill,
		Status:               models.ExchangeStatusPending,
	})
	return exchangeID, creatorSkill, applicationSkill
}

func patchBody(status string, creatorSkill, applicationSkill primitive.ObjectID) string {
	return fmt.Sprintf(`{"status":%q,"creatorSkillId":%q,"applicationSkillId":%q}`,
		status, creatorSkill.Hex(), applicationSkill.Hex())
}

func TestAcceptExchangeFlipsBothSkills(t *testing.T) {
	repo := &memRepo{}
	id, cs, as := seedPendingExchange(repo)

	r := newTestRouter()
	r.PATCH("/exchanges/:id", UpdateExchangeStatus(services.NewExchangeService(repo)))

	w := perform(t, r, "PATCH", "/exchanges/"+id.Hex(), patchBody("Accepted", cs, as))
	if w.Code != 200 {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	if repo.exchanges[0].Status != models.ExchangeStatusAccepted {
		t.Errorf("expected Accepted, got %s", repo.exchanges[0].Status)
	}
	for _, s := range repo.skills {
		if s.Available {
			t.Errorf("skill %s should be unavailable after acceptance", s.Title)
		}
	}
}

func TestAcceptedExchangeIsTerminal(t *testing.T) {
	repo := &memRepo{}
	id, cs, as := seedPendingExchange(repo)

	r := newTestRouter()
	r.PATCH("/exchanges/:id", UpdateExchangeStatus(services.NewExchangeService(repo)))

	if w := perform(t, r, "PATCH", "/exchanges/"+id.Hex(), patchBody("Accepted", cs, as)); w.Code != 200 {
		t.Fatalf("first accept should succeed, got %d", w.Code)
	}

	// Reset availability so a later illegal write would be visible.
	for j := range repo.skills {
		repo.skills[j].Available = true
	}

	for _, target := range []string{"Accepted", "Rejected", "Pending"} {
		w := perform(t, r, "PATCH", "/exchanges/"+id.Hex(), patchBody(target, cs, as))
		if w.Code != 400 {
			t.Errorf("PATCH to %s after acceptance: expected 400, got %d", target, w.Code)
		}
	}

	if repo.exchanges[0].Status != models.ExchangeStatusAccepted {
		t.Errorf("status must stay Accepted, got %s", repo.exchanges[0].Status)
	}
	for _, s := range repo.skills {
		if !s.Available {
			t.Error("availability must be untouched by a rejected transition")
		}
	}
}

func TestRejectExchangeHasNoCascade(t *testing.T) {
	repo := &memRepo{}
	id, _, _ := seedPendingExchange(repo)

	r := newTestRouter()
	r.PATCH("/exchanges/:id", UpdateExchangeStatus(services.NewExchangeService(repo)))

	w := perform(t, r, "PATCH", "/exchanges/"+id.Hex(), `{"status":"Rejected"}`)
	if w.Code != 200 {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	if repo.exchanges[0].Status != models.ExchangeStatusRejected {
		t.Errorf("expected Rejected, got %s", repo.exchanges[0].Status)
	}
	for _, s := range repo.skills {
		if !s.Available {
			t.Error("rejection must not touch skill availability")
		}
	}
}

func TestPatchUnknownExchangeIs404(t *testing.T) {
	repo := &memRepo{}
	r := newTestRouter()
	r.PATCH("/exchanges/:id", UpdateExchangeStatus(services.NewExchangeService(repo)))

	w := perform(t, r, "PATCH", "/exchanges/"+primitive.NewObjectID().Hex(), `{"status":"Rejected"}`)
	if w.Code != 404 {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestPatchMalformedExchangeIDIs400(t *testing.T) {
	repo := &memRepo{}
	r := newTestRouter()
	r.PATCH("/exchanges/:id", UpdateExchangeStatus(services.NewExchangeService(repo)))

	w := perform(t, r, "PATCH", "/exchanges/garbage", `{"status":"Rejected"}`)
	if w.Code != 400 {
		t.Errorf("expected 400 for a malformed id, got %d", w.Code)
	}
}

func TestGetExchangesByCreatorShape(t *testing.T) {
	repo := &memRepo{}
	for i := 0; i < 12; i++ {
		repo.exchanges = append(repo.exchanges, models.Exchange{
			ID:                   primitive.NewObjectID(),
			Title:                fmt.Sprintf("swap %d", i),
			CreatorEmail:         "a@example.com",
			ApplicationUserEmail: "b@example.com",
			Status:               models.ExchangeStatusPending,
		})
	}

	r := newTestRouter()
	r.GET("/exchanges/:email", GetExchangesByCreator(services.NewExchangeService(repo)))

	var body struct {
		Total    int64             `json:"total"`
		Requests []models.Exchange `json:"requests"`
	}
	w := perform(t, r, "GET", "/exchanges/a@example.com", "")
	decodeBody(t, w, &body)

	if body.Total != 12 {
		t.Errorf("expected total 12, got %d", body.Total)
	}
	if len(body.Requests) != 10 {
		t.Errorf("default limit is 10, got %d", len(body.Requests))
	}
}

func TestAcceptedExchangesListsBothParties(t *testing.T) {
	repo := &memRepo{}
	repo.exchanges = append(repo.exchanges,
		models.Exchange{ID: primitive.NewObjectID(), CreatorEmail: "a@example.com", ApplicationUserEmail: "b@example.com", Status: models.ExchangeStatusAccepted},
		models.Exchange{ID: primitive.NewObjectID(), CreatorEmail: "c@example.com", ApplicationUserEmail: "a@example.com", Status: models.ExchangeStatusAccepted},
		models.Exchange{ID: primitive.NewObjectID(), CreatorEmail: "a@example.com", ApplicationUserEmail: "d@example.com", Status: models.ExchangeStatusPending},
	)

	r := newTestRouter()
	r.GET("/accepted-exchanges/:email", GetAcceptedExchanges(services.NewExchangeService(repo)))

	var body []models.Exchange
	w := perform(t, r, "GET", "/accepted-exchanges/a@example.com", "")
	decodeBody(t, w, &body)

	if len(body) != 2 {
		t.Errorf("expected the two accepted exchanges, got %d", len(body))
	}
}
