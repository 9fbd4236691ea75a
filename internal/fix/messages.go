package fix

import (
	"time"

	"github.com/shopspring/decimal"
)

// Message is one cracked protocol message. The engine owns framing, field
// dictionaries and sequencing; this layer only ever sees typed payloads.
type Message interface {
	Kind() MsgKind
}

// Logon is the admin logon notification. Observed, never answered here.
type Logon struct {
	HeartBtInt int
}

func (Logon) Kind() MsgKind { return MsgKindLogon }

// Heartbeat is the admin heartbeat notification.
type Heartbeat struct {
	TestReqID string
}

func (Heartbeat) Kind() MsgKind { return MsgKindHeartbeat }

// SequenceReset instructs the counterparty to realign outbound sequencing.
type SequenceReset struct {
	NewSeqNo int
}

func (SequenceReset) Kind() MsgKind { return MsgKindSequenceReset }

// NewOrderSingle is an inbound order. Price is meaningful iff OrdType is
// limit. Immutable once received.
type NewOrderSingle struct {
	ClOrdID  string
	Symbol   string
	Side     Side
	OrdType  OrdType
	OrderQty decimal.Decimal
	Price    decimal.Decimal
}

func (NewOrderSingle) Kind() MsgKind { return MsgKindNewOrderSingle }

// ExecutionReport is both the order lifecycle event this core emits and the
// inbound report it acknowledges.
type ExecutionReport struct {
	OrderID   string
	ExecID    string
	ExecType  ExecType
	OrdStatus OrdStatus
	Side      Side
	ClOrdID   string
	Symbol    string
	OrderQty  decimal.Decimal
	LeavesQty decimal.Decimal
	CumQty    decimal.Decimal
	LastQty   decimal.Decimal
	LastPx    decimal.Decimal
	AvgPx     decimal.Decimal
}

func (ExecutionReport) Kind() MsgKind { return MsgKindExecutionReport }

// ExecutionAck acknowledges an inbound execution report.
type ExecutionAck struct {
	OrderID   string
	ExecID    string
	Side      Side
	AckStatus ExecAckStatus
}

func (ExecutionAck) Kind() MsgKind { return MsgKindExecutionAck }

// TradeCaptureReport is an inbound post-trade report.
type TradeCaptureReport struct {
	TradeReportID        string
	TradeReportTransType int
	ExecID               string
	ExecType             ExecType
	TrdRptStatus         int
	LastQty              decimal.Decimal
	Symbol               string
	SecurityID           string
	SecurityStatus       string
}

func (TradeCaptureReport) Kind() MsgKind { return MsgKindTradeCaptureReport }

// TradeCaptureReportAck echoes the required report fields and stamps the
// response time.
type TradeCaptureReportAck struct {
	TradeReportID        string
	TradeReportTransType int
	ExecID               string
	ExecType             ExecType
	TrdRptStatus         int
	LastQty              decimal.Decimal
	Symbol               string
	SecurityID           string
	SecurityStatus       string
	TransactTime         time.Time
}

func (TradeCaptureReportAck) Kind() MsgKind { return MsgKindTradeCaptureReportAck }

// SecurityDefinition is an inbound instrument proposal.
type SecurityDefinition struct {
	SecurityID         string
	SecurityResponseID string
	SecurityDesc       string
}

func (SecurityDefinition) Kind() MsgKind { return MsgKindSecurityDefinition }

// SecurityDefinitionUpdateReport answers a security definition.
type SecurityDefinitionUpdateReport struct {
	SecurityID           string
	SecurityResponseID   string
	SecurityResponseType SecurityResponseType
	SecurityDesc         string
}

func (SecurityDefinitionUpdateReport) Kind() MsgKind { return MsgKindSecurityDefinitionUpdate }

// DerivativeSecurityList is an inbound derivative instrument listing.
type DerivativeSecurityList struct {
	SecurityReqID         string
	SecurityResponseID    string
	SecurityRequestResult int
}

func (DerivativeSecurityList) Kind() MsgKind { return MsgKindDerivativeSecurityList }

// SecurityListUpdateReport answers a derivative security list.
type SecurityListUpdateReport struct {
	SecurityReqID         string
	SecurityResponseID    string
	SecurityRequestResult int
}

func (SecurityListUpdateReport) Kind() MsgKind { return MsgKindSecurityListUpdate }

// SecurityStatusRequest passes through to the gateway without business
// processing.
type SecurityStatusRequest struct {
	SecurityStatusReqID string
	Symbol              string
}

func (SecurityStatusRequest) Kind() MsgKind { return MsgKindSecurityStatusRequest }
