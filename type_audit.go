package payrec

import "fmt"

// AuditRecord classifies the outcome of a single transaction's processing
// attempt. Any outcome other than Processed means the operation had no
// effect on account state.
type AuditRecord int

const (
	// Processed indicates the transaction was applied.
	Processed AuditRecord = iota
	// CannotDepositNegative rejects a deposit of a negative amount.
	CannotDepositNegative
	// CannotWithdrawNegative rejects a withdrawal of a negative amount.
	CannotWithdrawNegative
	// NotEnoughToWithdraw rejects a withdrawal exceeding available funds.
	NotEnoughToWithdraw
	// DisputedDepositNotFound rejects a dispute whose referenced id is not a
	// disputable deposit: unknown, already under dispute, or a withdrawal.
	DisputedDepositNotFound
	// NotEnoughToRelease rejects a resolve exceeding held funds.
	NotEnoughToRelease
	// NotEnoughToChargeBack rejects a chargeback exceeding held funds.
	NotEnoughToChargeBack
	// MoneyOverflow rejects an adjustment that would overflow a balance.
	MoneyOverflow
	// MoneyUnderflow rejects an adjustment that would underflow a balance.
	MoneyUnderflow
	// DisputeNotFound rejects a resolve or chargeback whose referenced id is
	// not under active dispute.
	DisputeNotFound
	// AccountLocked rejects a withdrawal from an account frozen by chargeback.
	AccountLocked
)

func (r AuditRecord) String() string {
	switch r {
	case Processed:
		return "processed"
	case CannotDepositNegative:
		return "cannot-deposit-negative"
	case CannotWithdrawNegative:
		return "cannot-withdraw-negative"
	case NotEnoughToWithdraw:
		return "not-enough-to-withdraw"
	case DisputedDepositNotFound:
		return "disputed-deposit-not-found"
	case NotEnoughToRelease:
		return "not-enough-to-release"
	case NotEnoughToChargeBack:
		return "not-enough-to-chargeback"
	case MoneyOverflow:
		return "money-overflow"
	case MoneyUnderflow:
		return "money-underflow"
	case DisputeNotFound:
		return "dispute-not-found"
	case AccountLocked:
		return "account-locked"
	default:
		return "unknown"
	}
}

// ParseAuditRecord parses a string into an AuditRecord.
func ParseAuditRecord(s string) (AuditRecord, error) {
	for r := Processed; r <= AccountLocked; r++ {
		if r.String() == s {
			return r, nil
		}
	}
	return 0, fmt.Errorf("unknown audit record: %q", s)
}

// OK reports whether the transaction was applied.
func (r AuditRecord) OK() bool { return r == Processed }

// MarshalJSON implements the json.Marshaler interface for AuditRecord.
func (r AuditRecord) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", r.String())), nil
}
