package fix

// OrdType is the single-character order type code from the wire.
type OrdType byte

const (
	OrdTypeMarket OrdType = '1'
	OrdTypeLimit  OrdType = '2'
)

func (t OrdType) IsAvailable() bool {
	return t == OrdTypeMarket || t == OrdTypeLimit
}

// Side is the single-character order direction code from the wire.
type Side byte

const (
	SideBuy       Side = '1'
	SideSell      Side = '2'
	SideSellShort Side = '5'
)

func (s Side) IsAvailable() bool {
	return s == SideBuy || s == SideSell || s == SideSellShort
}

// IsSelling covers both plain sells and short sells, which price and
// execute identically here.
func (s Side) IsSelling() bool {
	return s == SideSell || s == SideSellShort
}

// ExecType classifies an execution report.
type ExecType byte

const (
	ExecTypeNew   ExecType = '0'
	ExecTypeTrade ExecType = 'F'
)

// OrdStatus is the order status carried on an execution report.
type OrdStatus byte

const (
	OrdStatusNew    OrdStatus = '0'
	OrdStatusFilled OrdStatus = '2'
)

// ExecAckStatus is the status carried on an execution acknowledgement.
type ExecAckStatus byte

const (
	ExecAckReceived ExecAckStatus = '0'
	ExecAckAccepted ExecAckStatus = '1'
	ExecAckRejected ExecAckStatus = '2'
)

// SecurityResponseType is the response code on a security definition update.
type SecurityResponseType int

const (
	// SecurityResponseAcceptAsProposed accepts the proposed security
	// definition unchanged.
	SecurityResponseAcceptAsProposed SecurityResponseType = 1
)

// BeginString values this core recognizes. FIXT is a transport-only version;
// its application version lives in session configuration.
const (
	BeginStringFIX42  = "FIX.4.2"
	BeginStringFIX44  = "FIX.4.4"
	BeginStringFIX50  = "FIX.5.0"
	BeginStringFIXT11 = "FIXT.1.1"
)

// ApplVerID names the application protocol version an outbound message is
// validated against.
type ApplVerID string

const (
	ApplVerFIX42    ApplVerID = "4"
	ApplVerFIX44    ApplVerID = "6"
	ApplVerFIX50    ApplVerID = "7"
	ApplVerFIX50SP1 ApplVerID = "8"
	ApplVerFIX50SP2 ApplVerID = "9"
)

// ApplVerFromBeginString maps a plain BeginString onto its application
// version. It reports false for FIXT and anything else without a direct
// application version.
func ApplVerFromBeginString(beginString string) (ApplVerID, bool) {
	switch beginString {
	case BeginStringFIX42:
		return ApplVerFIX42, true
	case BeginStringFIX44:
		return ApplVerFIX44, true
	case BeginStringFIX50:
		return ApplVerFIX50, true
	default:
		return "", false
	}
}
