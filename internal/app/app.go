// Package app is the decision layer behind the protocol engine. It receives
// cracked inbound messages per session, routes them by kind, and emits the
// acknowledgement/report messages through the outbound gateway.
package app

import (
	"errors"
	"time"

	"main/internal/engine"
	"main/internal/exec"
	"main/internal/fix"
	"main/internal/gateway"
	"main/internal/marketdata"
	"main/internal/obs"
	"main/pkg/exception"

	"github.com/yanun0323/logs"
)

// Config is the application's resolved business configuration. Immutable
// after construction.
type Config struct {
	ValidOrderTypes       map[fix.OrdType]struct{}
	AlwaysFillLimitOrders bool
}

// Application serves every session of one engine instance. The id source is
// the only mutable state shared across sessions.
type Application struct {
	cfg       Config
	locator   engine.Locator
	validator exec.Validator
	pricer    exec.Pricer
	simulator exec.Simulator
	outbound  gateway.Outbound
	metrics   *obs.Metrics
	trace     *obs.TraceGenerator
	now       func() time.Time

	handlers map[fix.MsgKind]handlerFunc
}

type handlerFunc func(id engine.SessionID, msg fix.Message) error

// New wires an application. A nil provider means no market-data capability;
// market orders will then be rejected.
func New(cfg Config, provider marketdata.Provider, locator engine.Locator, ids *exec.IDSource, metrics *obs.Metrics) *Application {
	if ids == nil {
		ids = exec.NewIDSource()
	}
	a := &Application{
		cfg:       cfg,
		locator:   locator,
		validator: exec.NewValidator(cfg.ValidOrderTypes, provider != nil),
		pricer:    exec.NewPricer(cfg.AlwaysFillLimitOrders, provider),
		simulator: exec.NewSimulator(ids),
		outbound:  gateway.NewOutbound(locator),
		metrics:   metrics,
		trace:     obs.NewTraceGenerator(0),
		now:       func() time.Time { return time.Now().UTC() },
	}
	a.handlers = map[fix.MsgKind]handlerFunc{
		fix.MsgKindNewOrderSingle:         a.onNewOrderSingle,
		fix.MsgKindExecutionReport:        a.onExecutionReport,
		fix.MsgKindTradeCaptureReport:     a.onTradeCaptureReport,
		fix.MsgKindSecurityDefinition:     a.onSecurityDefinition,
		fix.MsgKindDerivativeSecurityList: a.onDerivativeSecurityList,
	}
	return a
}

// OnCreate logs the accepted order types for the new session.
func (a *Application) OnCreate(id engine.SessionID) {
	codes := make([]byte, 0, len(a.validator.ValidTypes()))
	for t := range a.validator.ValidTypes() {
		codes = append(codes, byte(t))
	}
	logs.Infof("session %s created, valid order types: %q", id, codes)
}

// OnLogon observes a counterparty logon.
func (a *Application) OnLogon(id engine.SessionID) {
	logs.Infof("session %s logon", id)
}

// OnLogout observes a counterparty logout.
func (a *Application) OnLogout(id engine.SessionID) {
	logs.Infof("session %s logout", id)
}

// ToAdmin observes an outbound admin message.
func (a *Application) ToAdmin(id engine.SessionID, msg fix.Message) {
	logs.Infof("session %s toAdmin %s", id, msg.Kind())
}

// ToApp observes an outbound application message.
func (a *Application) ToApp(id engine.SessionID, msg fix.Message) {
	logs.Infof("session %s toApp %s", id, msg.Kind())
}

// FromAdmin handles inbound admin messages. Logon and heartbeat are observed
// only; a sequence reset mutates the session's outbound counter. Malformed
// admin payloads are logged and ignored.
func (a *Application) FromAdmin(id engine.SessionID, msg fix.Message) {
	a.metrics.IncInbound(msg.Kind())
	switch m := msg.(type) {
	case fix.Logon:
		logs.Infof("session %s received logon", id)
	case fix.Heartbeat:
		logs.Infof("session %s received heartbeat", id)
	case fix.SequenceReset:
		a.resetSequence(id, m)
	default:
		logs.Infof("session %s fromAdmin %s", id, msg.Kind())
	}
}

// FromApp dispatches one inbound application message. Validation errors are
// returned to the engine for protocol-level rejection; runtime failures are
// absorbed here and suppress emission for this event only.
func (a *Application) FromApp(id engine.SessionID, msg fix.Message) error {
	a.metrics.IncInbound(msg.Kind())

	// Security status requests bypass business processing entirely.
	if msg.Kind() == fix.MsgKindSecurityStatusRequest {
		a.send(id, msg)
		return nil
	}

	h, ok := a.handlers[msg.Kind()]
	if !ok {
		logs.Warnf("session %s: unsupported message kind %s", id, msg.Kind())
		return exception.ErrUnsupportedMessage
	}
	return a.dispatch(id, msg, h)
}

// dispatch runs one handler behind the panic/error boundary. Only
// validation-class errors escape to the engine.
func (a *Application) dispatch(id engine.SessionID, msg fix.Message, h handlerFunc) (vErr error) {
	trace := a.trace.Next()
	start := a.now()
	defer func() {
		a.metrics.ObserveHandler(a.now().Sub(start))
		if r := recover(); r != nil {
			logs.Errorf("session %s trace %s: %s handler panicked: %v", id, trace, msg.Kind(), r)
			vErr = nil
		}
	}()

	if err := h(id, msg); err != nil {
		if isValidation(err) {
			a.metrics.IncRejected(msg.Kind())
			logs.Warnf("session %s trace %s: %s rejected, err: %+v", id, trace, msg.Kind(), err)
			return err
		}
		logs.Errorf("session %s trace %s: %s handler failed, err: %+v", id, trace, msg.Kind(), err)
	}
	return nil
}

// send pushes one outbound message through the gateway. Gateway failures are
// already logged and dropped there; only the drop counter moves here.
func (a *Application) send(id engine.SessionID, msg fix.Message) {
	if err := a.outbound.Send(id, msg); err != nil {
		a.metrics.IncDrop()
		return
	}
	a.metrics.IncOutbound(msg.Kind())
}

// isValidation classifies the errors the engine should translate into a
// protocol-level rejection.
func isValidation(err error) bool {
	return errors.Is(err, exception.ErrInvalidOrderType) ||
		errors.Is(err, exception.ErrMissingMarketPrice) ||
		errors.Is(err, exception.ErrInvalidSide) ||
		errors.Is(err, exception.ErrNoMarketDataProvider)
}
