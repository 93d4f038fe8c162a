package request

import (
	"strings"
	"testing"
)

func TestGenerateRequestID(t *testing.T) {
	seen := make(map[string]bool)
	for range 100 {
		id := generateRequestID()
		if !strings.HasPrefix(id, "REQ") {
			t.Fatalf("id %q does not start with REQ", id)
		}
		seen[id] = true
	}
	if len(seen) < 90 {
		t.Fatalf("expected mostly unique ids, got %d distinct out of 100", len(seen))
	}
}
