// Package gateway is the single outbound path. Every message this core
// emits passes through it for session lookup and dictionary validation.
package gateway

import (
	"main/internal/engine"
	"main/internal/fix"
	"main/pkg/exception"

	"github.com/yanun0323/errors"
	"github.com/yanun0323/logs"
)

// Outbound validates and forwards outbound messages through the engine.
// Failures are logged and the message is dropped; there are no retries and
// nothing propagates back to the inbound dispatch path.
type Outbound struct {
	locator engine.Locator
}

// NewOutbound creates a gateway over the engine's session locator.
func NewOutbound(locator engine.Locator) Outbound {
	return Outbound{locator: locator}
}

// Send looks up the session, validates the message against the session's
// dictionary when one exists, then hands it to the engine. A message that
// fails validation is never sent malformed.
func (g Outbound) Send(id engine.SessionID, msg fix.Message) error {
	session, ok := g.locator.Lookup(id)
	if !ok {
		logs.Errorf("session %s not found, dropping %s", id, msg.Kind())
		return errors.Wrap(exception.ErrSessionNotFound, "send").
			With("session", string(id))
	}

	if provider := session.DictionaryProvider(); provider != nil {
		if dict, ok := provider.AppDictionary(applVerID(session)); ok {
			if err := dict.Validate(msg); err != nil {
				logs.Errorf("session %s: outgoing %s failed validation, err: %+v", id, msg.Kind(), err)
				return errors.Wrap(exception.ErrMessageValidation, "send").
					With("kind", msg.Kind().String())
			}
		}
	}

	if err := session.Send(msg); err != nil {
		logs.Errorf("session %s: send %s failed, err: %+v", id, msg.Kind(), err)
		return errors.Wrap(err, "send")
	}
	return nil
}

// applVerID resolves the application version outbound messages are
// validated against. FIXT transport sessions carry it in session
// configuration instead of the BeginString.
func applVerID(session engine.Session) fix.ApplVerID {
	if session.BeginString() == fix.BeginStringFIXT11 {
		if ver := session.SenderDefaultApplVerID(); ver != "" {
			return ver
		}
		return fix.ApplVerFIX50
	}
	if ver, ok := fix.ApplVerFromBeginString(session.BeginString()); ok {
		return ver
	}
	return fix.ApplVerFIX50
}
