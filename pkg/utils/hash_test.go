package utils

import "testing"

func TestAuditDigest_Deterministic(t *testing.T) {
	a := AuditDigest("u1", "venture.create", "details", "2025-01-02T03:04:05Z")
	b := AuditDigest("u1", "venture.create", "details", "2025-01-02T03:04:05Z")
	if a != b {
		t.Fatalf("digest not deterministic: %s vs %s", a, b)
	}
	if len(a) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(a))
	}
}

func TestAuditDigest_SensitiveToParts(t *testing.T) {
	a := AuditDigest("u1", "venture.create", "x", "t")
	b := AuditDigest("u1", "venture.delete", "x", "t")
	if a == b {
		t.Fatal("different actions must not collide")
	}
}
