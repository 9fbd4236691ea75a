package fix

import "testing"

func TestMsgKindIsAvailable(t *testing.T) {
	for k := _msg_kind_beg + 1; k < _msg_kind_end; k++ {
		if !k.IsAvailable() {
			t.Fatalf("kind %s should be available", k)
		}
		if k.String() == "Unknown" {
			t.Fatalf("kind %d has no name", k)
		}
	}
	if _msg_kind_beg.IsAvailable() || _msg_kind_end.IsAvailable() {
		t.Fatal("guard values must not be available")
	}
}

func TestMsgKindAdminSplit(t *testing.T) {
	admin := map[MsgKind]bool{
		MsgKindLogon:         true,
		MsgKindHeartbeat:     true,
		MsgKindSequenceReset: true,
	}
	for k := _msg_kind_beg + 1; k < _msg_kind_end; k++ {
		if k.IsAdmin() != admin[k] {
			t.Fatalf("kind %s admin classification wrong", k)
		}
	}
}

func TestApplVerFromBeginString(t *testing.T) {
	if ver, ok := ApplVerFromBeginString(BeginStringFIX50); !ok || ver != ApplVerFIX50 {
		t.Fatalf("FIX.5.0 should map to %q, got %q %v", ApplVerFIX50, ver, ok)
	}
	if _, ok := ApplVerFromBeginString(BeginStringFIXT11); ok {
		t.Fatal("FIXT carries no application version in its BeginString")
	}
}
