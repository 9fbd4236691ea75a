package gateway

import (
	"errors"
	"testing"

	"main/internal/engine"
	"main/internal/fix"
	"main/pkg/exception"
)

func TestSendUnknownSessionDrops(t *testing.T) {
	g := NewOutbound(engine.NewMemoryEngine())

	err := g.Send("nope", fix.Heartbeat{})
	if !errors.Is(err, exception.ErrSessionNotFound) {
		t.Fatalf("want ErrSessionNotFound, got %+v", err)
	}
}

func TestSendWithoutDictionaryDelivers(t *testing.T) {
	eng := engine.NewMemoryEngine()
	session := engine.NewMemorySession(engine.MemorySessionConfig{ID: "s-1"})
	if err := eng.Register(session); err != nil {
		t.Fatalf("register, err: %+v", err)
	}
	g := NewOutbound(eng)

	if err := g.Send("s-1", fix.Heartbeat{}); err != nil {
		t.Fatalf("send, err: %+v", err)
	}
	if got := len(session.Sent()); got != 1 {
		t.Fatalf("want 1 delivered message, got %d", got)
	}
}

func TestSendValidationFailureNeverTransmits(t *testing.T) {
	reject := engine.ValidatorFunc(func(fix.Message) error {
		return errors.New("tag out of dictionary")
	})
	eng := engine.NewMemoryEngine()
	session := engine.NewMemorySession(engine.MemorySessionConfig{
		ID: "s-2",
		Dictionary: engine.NewStaticDictionary(map[fix.ApplVerID]engine.Validator{
			fix.ApplVerFIX50: reject,
		}),
	})
	if err := eng.Register(session); err != nil {
		t.Fatalf("register, err: %+v", err)
	}
	g := NewOutbound(eng)

	err := g.Send("s-2", fix.Heartbeat{})
	if !errors.Is(err, exception.ErrMessageValidation) {
		t.Fatalf("want ErrMessageValidation, got %+v", err)
	}
	if got := len(session.Sent()); got != 0 {
		t.Fatalf("failed message must never be transmitted, got %d sent", got)
	}
}

func TestSendValidatesAgainstSessionApplVer(t *testing.T) {
	var validated int
	count := engine.ValidatorFunc(func(fix.Message) error {
		validated++
		return nil
	})
	eng := engine.NewMemoryEngine()
	session := engine.NewMemorySession(engine.MemorySessionConfig{
		ID:               "s-3",
		BeginString:      fix.BeginStringFIXT11,
		DefaultApplVerID: fix.ApplVerFIX50SP2,
		Dictionary: engine.NewStaticDictionary(map[fix.ApplVerID]engine.Validator{
			fix.ApplVerFIX50SP2: count,
		}),
	})
	if err := eng.Register(session); err != nil {
		t.Fatalf("register, err: %+v", err)
	}
	g := NewOutbound(eng)

	if err := g.Send("s-3", fix.Heartbeat{}); err != nil {
		t.Fatalf("send, err: %+v", err)
	}
	if validated != 1 {
		t.Fatalf("dictionary for the session's default appl ver must be used, validated=%d", validated)
	}
}

func TestSendFIXTWithoutDefaultFallsBackToFIX50(t *testing.T) {
	var validated int
	count := engine.ValidatorFunc(func(fix.Message) error {
		validated++
		return nil
	})
	eng := engine.NewMemoryEngine()
	session := engine.NewMemorySession(engine.MemorySessionConfig{
		ID:          "s-4",
		BeginString: fix.BeginStringFIXT11,
		Dictionary: engine.NewStaticDictionary(map[fix.ApplVerID]engine.Validator{
			fix.ApplVerFIX50: count,
		}),
	})
	if err := eng.Register(session); err != nil {
		t.Fatalf("register, err: %+v", err)
	}
	g := NewOutbound(eng)

	if err := g.Send("s-4", fix.Heartbeat{}); err != nil {
		t.Fatalf("send, err: %+v", err)
	}
	if validated != 1 {
		t.Fatalf("want FIX50 fallback dictionary consulted, validated=%d", validated)
	}
}

func TestSendTransmissionFailurePropagates(t *testing.T) {
	boom := errors.New("socket gone")
	eng := engine.NewMemoryEngine()
	session := engine.NewMemorySession(engine.MemorySessionConfig{ID: "s-5", SendErr: boom})
	if err := eng.Register(session); err != nil {
		t.Fatalf("register, err: %+v", err)
	}
	g := NewOutbound(eng)

	if err := g.Send("s-5", fix.Heartbeat{}); !errors.Is(err, boom) {
		t.Fatalf("want wrapped transmission error, got %+v", err)
	}
}
