package payrec

// ClientID identifies a client account.
type ClientID uint16

// TransactionID identifies a deposit or withdrawal. Ids are unique among
// deposits and withdrawals; dispute, resolve and chargeback reference an
// existing id and are not themselves tracked.
type TransactionID uint32

// CommandType is a typed string for identifying transaction commands.
type CommandType string

// Command types used for identifying transactions.
const (
	CmdDeposit    CommandType = "deposit"
	CmdWithdrawal CommandType = "withdrawal"
	CmdDispute    CommandType = "dispute"
	CmdResolve    CommandType = "resolve"
	CmdChargeBack CommandType = "chargeback"
)

// Transaction defines the common interface for all transaction variants the
// processor can consume. Transactions are immutable once constructed and
// carry no validation of their own: all validation is deferred to the
// account operations.
type Transaction interface {
	What() CommandType // What returns the command type of the transaction.
	Client() ClientID  // Client returns the id of the account the transaction addresses.
	ID() TransactionID // ID returns the transaction id (0 for dispute, resolve, chargeback).
}

type baseTx struct {
	Command  CommandType
	ClientID ClientID
	TxID     TransactionID
}

func (t baseTx) What() CommandType { return t.Command }
func (t baseTx) Client() ClientID  { return t.ClientID }
func (t baseTx) ID() TransactionID { return t.TxID }

// Deposit credits an amount to the client's available funds.
type Deposit struct {
	baseTx
	Amount MoneyAmount
}

// Withdrawal debits an amount from the client's available funds.
type Withdrawal struct {
	baseTx
	Amount MoneyAmount
}

// Dispute claims that the referenced deposit is invalid; its amount is
// frozen pending resolution.
type Dispute struct {
	baseTx
	Ref TransactionID
}

// Resolve deems the referenced dispute invalid; the frozen amount returns
// to available.
type Resolve struct {
	baseTx
	Ref TransactionID
}

// ChargeBack upholds the referenced dispute; the frozen amount is removed
// and the account is locked.
type ChargeBack struct {
	baseTx
	Ref TransactionID
}

// NewDeposit creates a new Deposit transaction.
func NewDeposit(client ClientID, id TransactionID, amount MoneyAmount) Deposit {
	return Deposit{baseTx: baseTx{Command: CmdDeposit, ClientID: client, TxID: id}, Amount: amount}
}

// NewWithdrawal creates a new Withdrawal transaction.
func NewWithdrawal(client ClientID, id TransactionID, amount MoneyAmount) Withdrawal {
	return Withdrawal{baseTx: baseTx{Command: CmdWithdrawal, ClientID: client, TxID: id}, Amount: amount}
}

// NewDispute creates a new Dispute referencing an existing transaction id.
// Disputes carry id 0: they reference another transaction and are not
// themselves uniquely tracked.
func NewDispute(client ClientID, ref TransactionID) Dispute {
	return Dispute{baseTx: baseTx{Command: CmdDispute, ClientID: client}, Ref: ref}
}

// NewResolve creates a new Resolve referencing a disputed transaction id.
// Resolves carry id 0, like disputes.
func NewResolve(client ClientID, ref TransactionID) Resolve {
	return Resolve{baseTx: baseTx{Command: CmdResolve, ClientID: client}, Ref: ref}
}

// NewChargeBack creates a new ChargeBack referencing a disputed transaction
// id. Chargebacks carry id 0, like disputes.
func NewChargeBack(client ClientID, ref TransactionID) ChargeBack {
	return ChargeBack{baseTx: baseTx{Command: CmdChargeBack, ClientID: client}, Ref: ref}
}
