package types

import "testing"

func TestEnumStrings(t *testing.T) {
	if got := RequestPending.String(); got != "pending" {
		t.Fatalf("expected pending, got %q", got)
	}
	if got := DriverActive.String(); got != "active" {
		t.Fatalf("expected active, got %q", got)
	}
	if got := ServiceStandard.String(); got != "standard" {
		t.Fatalf("expected standard, got %q", got)
	}
	if got := ServicePremium.String(); got != "premium" {
		t.Fatalf("expected premium, got %q", got)
	}
	if got := RoleOperator.String(); got != "OPERATOR" {
		t.Fatalf("expected OPERATOR, got %q", got)
	}
}

func TestRequestStatusKnown(t *testing.T) {
	for _, s := range []RequestStatus{RequestPending, RequestAssigned, RequestInProgress, RequestCompleted, RequestCancelled} {
		if !s.Known() {
			t.Fatalf("status %q must be known", s)
		}
	}
	if RequestStatus("stuck").Known() {
		t.Fatal("unexpected status must not be known")
	}
}

func TestRequestStatusTerminal(t *testing.T) {
	if !RequestCompleted.Terminal() || !RequestCancelled.Terminal() {
		t.Fatal("completed and cancelled must be terminal")
	}
	if RequestPending.Terminal() || RequestAssigned.Terminal() || RequestInProgress.Terminal() {
		t.Fatal("non-final statuses must not be terminal")
	}
}
