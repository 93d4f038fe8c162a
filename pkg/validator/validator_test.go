package validator

import "testing"

func TestCheck(t *testing.T) {
	v := New()
	if !v.Valid() {
		t.Fatal("new validator must be valid")
	}

	v.Check(true, "ok", "should not appear")
	v.Check(false, "name", "must be provided")
	v.Check(false, "name", "second message is dropped")

	if v.Valid() {
		t.Fatal("validator with errors must not be valid")
	}
	if got := v.Errors["name"]; got != "must be provided" {
		t.Fatalf("expected first message to win, got %q", got)
	}
	if _, ok := v.Errors["ok"]; ok {
		t.Fatal("passing check must not record an error")
	}
}

func TestPermittedValue(t *testing.T) {
	if !PermittedValue("standard", "standard", "premium") {
		t.Fatal("standard must be permitted")
	}
	if PermittedValue("luxury", "standard", "premium") {
		t.Fatal("luxury must not be permitted")
	}
}

func TestMatches(t *testing.T) {
	if !Matches("driver@example.com", EmailRX) {
		t.Fatal("expected address to match")
	}
	if Matches("not-an-email", EmailRX) {
		t.Fatal("expected address not to match")
	}
}
