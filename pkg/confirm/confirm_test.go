package confirm

import (
	"errors"
	"fmt"
	"testing"
)

func TestGate(t *testing.T) {
	if err := Gate(true, "sure?"); err != nil {
		t.Fatalf("confirmed gate should pass, got %v", err)
	}

	err := Gate(false, "Are you sure you want to delete this product?")
	if !errors.Is(err, ErrRequired) {
		t.Fatalf("expected ErrRequired, got %v", err)
	}

	wrapped := fmt.Errorf("delete product: %w", err)
	if got := Prompt(wrapped); got != "Are you sure you want to delete this product?" {
		t.Fatalf("unexpected prompt %q", got)
	}
	if got := Prompt(errors.New("other")); got != "" {
		t.Fatalf("expected empty prompt, got %q", got)
	}
}
