package app

import (
	"main/internal/engine"
	"main/internal/fix"
	"main/pkg/exception"
)

// onNewOrderSingle runs the full order pipeline: validate, price, simulate,
// then transmit the ack and, when executable, the fill, in that order.
func (a *Application) onNewOrderSingle(id engine.SessionID, msg fix.Message) error {
	order, ok := msg.(fix.NewOrderSingle)
	if !ok {
		return exception.ErrMalformedPayload
	}

	if err := a.validator.Validate(order); err != nil {
		return err
	}

	price, err := a.pricer.Resolve(order)
	if err != nil {
		return err
	}

	ack, fill := a.simulator.Simulate(order, price)
	a.send(id, ack)
	if fill != nil {
		a.send(id, *fill)
	}
	return nil
}
