package app

import (
	"main/internal/engine"
	"main/internal/fix"

	"github.com/yanun0323/logs"
)

// resetSequence advances the session's next outbound sequence number one
// past the reset target. Failures are logged, never escalated.
func (a *Application) resetSequence(id engine.SessionID, reset fix.SequenceReset) {
	if reset.NewSeqNo <= 0 {
		logs.Warnf("session %s: ignoring sequence reset with target %d", id, reset.NewSeqNo)
		return
	}

	session, ok := a.locator.Lookup(id)
	if !ok {
		logs.Errorf("session %s not found for sequence reset", id)
		return
	}

	next := reset.NewSeqNo + 1
	if err := session.SetNextSenderSeqNum(next); err != nil {
		logs.Errorf("session %s: sequence reset to %d failed, err: %+v", id, next, err)
		return
	}
	logs.Infof("session %s: next sender seq num set to %d", id, next)
}
