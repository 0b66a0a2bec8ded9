package payrec

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

// Processor routes each transaction to the owning account, creating it on
// first sight, and emits one audit outcome per transaction. It holds
// exclusive, single-threaded ownership of the account collection for the
// duration of a run; no other component mutates accounts.
type Processor struct {
	accounts map[ClientID]*Account
}

// NewProcessor creates a processor with an empty account collection.
func NewProcessor() *Processor {
	return &Processor{accounts: make(map[ClientID]*Account)}
}

// Process applies the transactions in order and yields one AuditRecord per
// transaction, lazily. The sequence is finite and single-pass: account
// state mutates as it is consumed, so iterating it twice does not re-derive
// the same outcomes.
func (p *Processor) Process(transactions []Transaction) iter.Seq[AuditRecord] {
	return func(yield func(AuditRecord) bool) {
		for _, tx := range transactions {
			if !yield(p.apply(tx)) {
				return
			}
		}
	}
}

// ProcessAll applies the transactions in order and collects every outcome.
func (p *Processor) ProcessAll(transactions []Transaction) []AuditRecord {
	return slices.Collect(p.Process(transactions))
}

// apply dispatches a single transaction to its account, creating the
// account with zero balances, unlocked, on first reference. Each
// transaction is applied atomically to its own account only.
func (p *Processor) apply(tx Transaction) AuditRecord {
	account, ok := p.accounts[tx.Client()]
	if !ok {
		account = NewAccount()
		p.accounts[tx.Client()] = account
	}

	switch v := tx.(type) {
	case Deposit:
		return account.Deposit(v.ID(), v.Amount)
	case Withdrawal:
		return account.Withdraw(v.Amount)
	case Dispute:
		return account.Dispute(v.Ref)
	case Resolve:
		return account.Resolve(v.Ref)
	case ChargeBack:
		return account.ChargeBack(v.Ref)
	default:
		panic(fmt.Sprintf("unhandled transaction variant %T", tx))
	}
}

// Account returns the account for the given client, if it exists.
func (p *Processor) Account(id ClientID) (*Account, bool) {
	a, ok := p.accounts[id]
	return a, ok
}

// Accounts iterates over all known accounts in client id order.
func (p *Processor) Accounts() iter.Seq2[ClientID, *Account] {
	return func(yield func(ClientID, *Account) bool) {
		for _, id := range slices.Sorted(maps.Keys(p.accounts)) {
			if !yield(id, p.accounts[id]) {
				return
			}
		}
	}
}
