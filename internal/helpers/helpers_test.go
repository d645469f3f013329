package helpers

import (
	"errors"
	"testing"

	"github.com/joshua-takyi/skillswap/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseObjectIDValid(t *testing.T) {
	want := primitive.NewObjectID()
	got, err := ParseObjectID(want.Hex())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Errorf("expected %s, got %s", want.Hex(), got.Hex())
	}
}

func TestParseObjectIDTrimsWhitespace(t *testing.T) {
	want := primitive.NewObjectID()
	got, err := ParseObjectID("  " + want.Hex() + " ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Errorf("expected %s, got %s", want.Hex(), got.Hex())
	}
}

func TestParseObjectIDMalformed(t *testing.T) {
	for _, id := range []string{"", "nonsense", "123", "zzzzzzzzzzzzzzzzzzzzzzzz"} {
		if _, err := ParseObjectID(id); !errors.Is(err, models.ErrInvalidID) {
			t.Errorf("id %q: expected ErrInvalidID, got %v", id, err)
		}
	}
}
