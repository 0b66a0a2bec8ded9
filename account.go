package payrec

// depositState tracks one deposit's amount and its position in the dispute
// lifecycle. A charged-back deposit is removed from the map entirely, so a
// transaction id is always in exactly one state: absent, deposited, or
// disputed.
type depositState struct {
	amount   MoneyAmount
	disputed bool
}

// Account is the mutable per-client state: spendable funds, funds frozen
// pending dispute, the permanent lock flag, and the dispute lifecycle of
// every deposit seen so far. Accounts are created by the processor and
// mutated only through the operation methods; a failed operation leaves the
// account untouched.
type Account struct {
	available MoneyAmount
	held      MoneyAmount
	locked    bool
	deposits  map[TransactionID]depositState
}

// NewAccount creates an empty, unlocked account.
func NewAccount() *Account {
	return &Account{deposits: make(map[TransactionID]depositState)}
}

// Available returns the funds the client may freely withdraw.
func (a *Account) Available() MoneyAmount { return a.available }

// Held returns the funds frozen due to active disputes.
func (a *Account) Held() MoneyAmount { return a.held }

// Locked reports whether a chargeback has frozen the account.
func (a *Account) Locked() bool { return a.locked }

// Total returns available + held. ok is false when the sum is not
// representable; such an account cannot be reported.
func (a *Account) Total() (MoneyAmount, bool) {
	return a.available.TryChange(a.held)
}

// Deposit credits amount to available funds and records the transaction id
// as disputable. Reusing an id overwrites the recorded amount. Deposits are
// accepted on locked accounts.
func (a *Account) Deposit(id TransactionID, amount MoneyAmount) AuditRecord {
	if amount.IsNegative() {
		return CannotDepositNegative
	}

	available, ok := a.available.TryChange(amount)
	if !ok {
		return MoneyOverflow
	}

	a.available = available
	a.deposits[id] = depositState{amount: amount}

	return Processed
}

// Withdraw debits amount from available funds. Withdrawal is the only
// operation blocked by the lock flag.
func (a *Account) Withdraw(amount MoneyAmount) AuditRecord {
	if amount.IsNegative() {
		return CannotWithdrawNegative
	}
	if a.locked {
		return AccountLocked
	}
	if a.available.LessThan(amount) {
		return NotEnoughToWithdraw
	}

	available, ok := a.available.TryChange(amount.Neg())
	if !ok {
		// unreachable given the check above
		return MoneyUnderflow
	}

	a.available = available

	return Processed
}

// Dispute freezes the referenced deposit's amount: it moves from available
// to held and the deposit becomes non-disputable until resolved. Only
// deposits are ever recorded, so a dispute against a withdrawal or an
// unknown id both report DisputedDepositNotFound.
func (a *Account) Dispute(id TransactionID) AuditRecord {
	state, ok := a.deposits[id]
	if !ok || state.disputed {
		return DisputedDepositNotFound
	}

	held, ok := a.held.TryChange(state.amount)
	if !ok {
		return MoneyOverflow
	}
	available, ok := a.available.TryChange(state.amount.Neg())
	if !ok {
		return MoneyUnderflow
	}

	a.held = held
	a.available = available
	state.disputed = true
	a.deposits[id] = state

	return Processed
}

// Resolve releases the referenced dispute: the amount returns from held to
// available and the deposit becomes disputable again.
func (a *Account) Resolve(id TransactionID) AuditRecord {
	state, ok := a.deposits[id]
	if !ok || !state.disputed {
		return DisputeNotFound
	}
	if a.held.LessThan(state.amount) {
		return NotEnoughToRelease
	}

	available, ok := a.available.TryChange(state.amount)
	if !ok {
		return MoneyOverflow
	}
	held, ok := a.held.TryChange(state.amount.Neg())
	if !ok {
		return MoneyUnderflow
	}

	a.available = available
	a.held = held
	state.disputed = false
	a.deposits[id] = state

	return Processed
}

// ChargeBack upholds the referenced dispute: the amount is removed from held
// funds, the deposit is forgotten, and the account is permanently locked.
// The lock blocks future withdrawals only; deposits and dispute-chain
// operations still apply.
func (a *Account) ChargeBack(id TransactionID) AuditRecord {
	state, ok := a.deposits[id]
	if !ok || !state.disputed {
		return DisputeNotFound
	}
	if a.held.LessThan(state.amount) {
		return NotEnoughToChargeBack
	}

	held, ok := a.held.TryChange(state.amount.Neg())
	if !ok {
		return MoneyUnderflow
	}

	a.held = held
	delete(a.deposits, id)
	a.locked = true

	return Processed
}
