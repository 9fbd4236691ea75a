package app

import (
	"main/internal/engine"
	"main/internal/fix"
	"main/pkg/exception"
)

// onExecutionReport acknowledges an inbound execution report.
func (a *Application) onExecutionReport(id engine.SessionID, msg fix.Message) error {
	report, ok := msg.(fix.ExecutionReport)
	if !ok {
		return exception.ErrMalformedPayload
	}

	a.send(id, fix.ExecutionAck{
		OrderID:   report.OrderID,
		ExecID:    report.ExecID,
		Side:      report.Side,
		AckStatus: fix.ExecAckAccepted,
	})
	return nil
}

// onTradeCaptureReport echoes the required report fields back with the
// current response time.
func (a *Application) onTradeCaptureReport(id engine.SessionID, msg fix.Message) error {
	report, ok := msg.(fix.TradeCaptureReport)
	if !ok {
		return exception.ErrMalformedPayload
	}

	a.send(id, fix.TradeCaptureReportAck{
		TradeReportID:        report.TradeReportID,
		TradeReportTransType: report.TradeReportTransType,
		ExecID:               report.ExecID,
		ExecType:             report.ExecType,
		TrdRptStatus:         report.TrdRptStatus,
		LastQty:              report.LastQty,
		Symbol:               report.Symbol,
		SecurityID:           report.SecurityID,
		SecurityStatus:       report.SecurityStatus,
		TransactTime:         a.now(),
	})
	return nil
}

// onSecurityDefinition accepts every proposed definition as-is.
func (a *Application) onSecurityDefinition(id engine.SessionID, msg fix.Message) error {
	def, ok := msg.(fix.SecurityDefinition)
	if !ok {
		return exception.ErrMalformedPayload
	}

	a.send(id, fix.SecurityDefinitionUpdateReport{
		SecurityID:           def.SecurityID,
		SecurityResponseID:   def.SecurityResponseID,
		SecurityResponseType: fix.SecurityResponseAcceptAsProposed,
		SecurityDesc:         def.SecurityDesc,
	})
	return nil
}

// onDerivativeSecurityList echoes the request id and result code.
func (a *Application) onDerivativeSecurityList(id engine.SessionID, msg fix.Message) error {
	list, ok := msg.(fix.DerivativeSecurityList)
	if !ok {
		return exception.ErrMalformedPayload
	}

	a.send(id, fix.SecurityListUpdateReport{
		SecurityReqID:         list.SecurityReqID,
		SecurityResponseID:    list.SecurityResponseID,
		SecurityRequestResult: list.SecurityRequestResult,
	})
	return nil
}
