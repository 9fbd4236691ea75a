package fix

// MsgKind identifies a protocol message after the engine has cracked it.
// Dispatch is a lookup on this value; the core never inspects raw tag-value
// frames.
type MsgKind uint8

const (
	_msg_kind_beg MsgKind = iota
	MsgKindLogon
	MsgKindHeartbeat
	MsgKindSequenceReset
	MsgKindNewOrderSingle
	MsgKindExecutionReport
	MsgKindExecutionAck
	MsgKindTradeCaptureReport
	MsgKindTradeCaptureReportAck
	MsgKindSecurityDefinition
	MsgKindSecurityDefinitionUpdate
	MsgKindDerivativeSecurityList
	MsgKindSecurityListUpdate
	MsgKindSecurityStatusRequest
	_msg_kind_end
)

func (k MsgKind) IsAvailable() bool {
	return k > _msg_kind_beg && k < _msg_kind_end
}

// IsAdmin reports whether the kind travels on the admin path.
func (k MsgKind) IsAdmin() bool {
	switch k {
	case MsgKindLogon, MsgKindHeartbeat, MsgKindSequenceReset:
		return true
	default:
		return false
	}
}

func (k MsgKind) String() string {
	switch k {
	case MsgKindLogon:
		return "Logon"
	case MsgKindHeartbeat:
		return "Heartbeat"
	case MsgKindSequenceReset:
		return "SequenceReset"
	case MsgKindNewOrderSingle:
		return "NewOrderSingle"
	case MsgKindExecutionReport:
		return "ExecutionReport"
	case MsgKindExecutionAck:
		return "ExecutionAck"
	case MsgKindTradeCaptureReport:
		return "TradeCaptureReport"
	case MsgKindTradeCaptureReportAck:
		return "TradeCaptureReportAck"
	case MsgKindSecurityDefinition:
		return "SecurityDefinition"
	case MsgKindSecurityDefinitionUpdate:
		return "SecurityDefinitionUpdateReport"
	case MsgKindDerivativeSecurityList:
		return "DerivativeSecurityList"
	case MsgKindSecurityListUpdate:
		return "SecurityListUpdateReport"
	case MsgKindSecurityStatusRequest:
		return "SecurityStatusRequest"
	default:
		return "Unknown"
	}
}
