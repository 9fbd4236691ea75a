// Package engine declares the boundary to the external protocol engine.
// Session establishment, heartbeats, sequence persistence, framing and
// dictionary construction all live on the far side of these interfaces.
package engine

import "main/internal/fix"

// SessionID identifies one counterparty session.
type SessionID string

// Session is the send-side surface the engine exposes for one session.
// Implementations own transport and sequencing; this core only sends and,
// on an admin sequence reset, advances the outbound counter.
type Session interface {
	ID() SessionID

	// BeginString is the session's protocol version string.
	BeginString() string

	// SenderDefaultApplVerID is the application version configured for
	// FIXT transport sessions. Empty for plain sessions.
	SenderDefaultApplVerID() fix.ApplVerID

	// DictionaryProvider returns the session's dictionary source, or nil
	// when no dictionary validation is available.
	DictionaryProvider() DictionaryProvider

	// Send transmits one outbound message. Synchronous, non-cancelable.
	Send(msg fix.Message) error

	// SetNextSenderSeqNum realigns the next outbound sequence number.
	SetNextSenderSeqNum(seqNum int) error
}

// Locator resolves a session by identifier.
type Locator interface {
	Lookup(id SessionID) (Session, bool)
}

// DictionaryProvider resolves the message dictionary for an application
// version.
type DictionaryProvider interface {
	AppDictionary(ver fix.ApplVerID) (Validator, bool)
}

// Validator checks one outbound message against a message dictionary.
type Validator interface {
	Validate(msg fix.Message) error
}

// ValidatorFunc adapts a function to the Validator interface.
type ValidatorFunc func(msg fix.Message) error

func (f ValidatorFunc) Validate(msg fix.Message) error { return f(msg) }
