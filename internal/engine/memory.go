package engine

import (
	"sync"

	"main/internal/fix"
	"main/pkg/exception"
)

// MemoryEngine is an in-process engine used by tests and the demo runner.
// It keeps registered sessions behind the Locator interface.
type MemoryEngine struct {
	mu       sync.RWMutex
	sessions map[SessionID]*MemorySession
}

// NewMemoryEngine creates an engine with no sessions.
func NewMemoryEngine() *MemoryEngine {
	return &MemoryEngine{sessions: make(map[SessionID]*MemorySession)}
}

// Register adds a session. Registering the same id twice fails.
func (e *MemoryEngine) Register(session *MemorySession) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.sessions[session.cfg.ID]; ok {
		return exception.ErrDuplicateSession
	}
	e.sessions[session.cfg.ID] = session
	return nil
}

// Lookup resolves a registered session.
func (e *MemoryEngine) Lookup(id SessionID) (Session, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	s, ok := e.sessions[id]
	return s, ok
}

// MemorySessionConfig describes one in-memory session.
type MemorySessionConfig struct {
	ID               SessionID
	BeginString      string
	DefaultApplVerID fix.ApplVerID
	Dictionary       DictionaryProvider
	NextSenderSeqNum int

	// SendErr, when set, makes every Send fail with it.
	SendErr error
}

// MemorySession records sent messages in transmission order.
type MemorySession struct {
	cfg MemorySessionConfig

	mu      sync.Mutex
	sent    []fix.Message
	nextSeq int
	closed  bool
}

// NewMemorySession creates a session from its config.
func NewMemorySession(cfg MemorySessionConfig) *MemorySession {
	if cfg.BeginString == "" {
		cfg.BeginString = fix.BeginStringFIX50
	}
	next := cfg.NextSenderSeqNum
	if next <= 0 {
		next = 1
	}
	return &MemorySession{cfg: cfg, nextSeq: next}
}

func (s *MemorySession) ID() SessionID { return s.cfg.ID }

func (s *MemorySession) BeginString() string { return s.cfg.BeginString }

func (s *MemorySession) SenderDefaultApplVerID() fix.ApplVerID { return s.cfg.DefaultApplVerID }

func (s *MemorySession) DictionaryProvider() DictionaryProvider { return s.cfg.Dictionary }

// Send appends the message to the sent log and consumes a sequence number.
func (s *MemorySession) Send(msg fix.Message) error {
	if s.cfg.SendErr != nil {
		return s.cfg.SendErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return exception.ErrSessionClosed
	}
	s.sent = append(s.sent, msg)
	s.nextSeq++
	return nil
}

// SetNextSenderSeqNum realigns the outbound counter.
func (s *MemorySession) SetNextSenderSeqNum(seqNum int) error {
	if seqNum <= 0 {
		return exception.ErrInvalidSequenceReset
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return exception.ErrSessionClosed
	}
	s.nextSeq = seqNum
	return nil
}

// NextSenderSeqNum returns the next outbound sequence number.
func (s *MemorySession) NextSenderSeqNum() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nextSeq
}

// Sent returns a copy of the transmission log.
func (s *MemorySession) Sent() []fix.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]fix.Message, len(s.sent))
	copy(out, s.sent)
	return out
}

// Close rejects further sends and resets.
func (s *MemorySession) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}

// StaticDictionary serves fixed validators per application version.
type StaticDictionary struct {
	validators map[fix.ApplVerID]Validator
}

// NewStaticDictionary builds a dictionary provider from a validator map.
func NewStaticDictionary(validators map[fix.ApplVerID]Validator) *StaticDictionary {
	return &StaticDictionary{validators: validators}
}

func (d *StaticDictionary) AppDictionary(ver fix.ApplVerID) (Validator, bool) {
	v, ok := d.validators[ver]
	return v, ok
}
