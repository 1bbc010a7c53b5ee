package types

// CustodyAddress is the reserved account holding the pooled balance of all
// Active and WithdrawalInitiated positions.
var CustodyAddress = HexToAddress("Sx0000000000000000000000000000000000000001")

// DefaultCooldownPeriod is the delay in seconds between initiating a
// withdrawal and being permitted to execute it. 1209600 is 2 weeks.
const DefaultCooldownPeriod uint64 = 1209600

// Position status codes
const (
	PositionStatusActive              byte = 0x01
	PositionStatusWithdrawalInitiated byte = 0x02
	PositionStatusWithdrawalCompleted byte = 0x03
)

// PositionStatusName returns a human-readable status for API responses and
// genesis files.
func PositionStatusName(status byte) string {
	switch status {
	case PositionStatusActive:
		return "active"
	case PositionStatusWithdrawalInitiated:
		return "withdrawal_initiated"
	case PositionStatusWithdrawalCompleted:
		return "withdrawal_completed"
	}

	return "unknown"
}
