package payrec

import (
	"math"
	"slices"
	"testing"
)

// balance is the expected observable state of one account.
type balance struct {
	available MoneyAmount
	held      MoneyAmount
	locked    bool
}

// assertProcessing processes the transactions and checks the audit records
// and the resulting account states.
func assertProcessing(t *testing.T, transactions []Transaction, wantAudit []AuditRecord, wantAccounts map[ClientID]balance) {
	t.Helper()

	p := NewProcessor()
	audit := p.ProcessAll(transactions)

	if !slices.Equal(audit, wantAudit) {
		t.Errorf("audit records = %v, want %v", audit, wantAudit)
	}

	seen := 0
	for id, account := range p.Accounts() {
		want, ok := wantAccounts[id]
		if !ok {
			t.Errorf("unexpected account for client %d", id)
			continue
		}
		seen++
		if !account.Available().Equal(want.available) {
			t.Errorf("client %d: available = %v, want %v", id, account.Available(), want.available)
		}
		if !account.Held().Equal(want.held) {
			t.Errorf("client %d: held = %v, want %v", id, account.Held(), want.held)
		}
		if account.Locked() != want.locked {
			t.Errorf("client %d: locked = %v, want %v", id, account.Locked(), want.locked)
		}
	}
	if seen != len(wantAccounts) {
		t.Errorf("got %d accounts, want %d", seen, len(wantAccounts))
	}
}

func TestProcessorDepositIncreasesAvailableInCorrectAccounts(t *testing.T) {
	assertProcessing(t,
		[]Transaction{NewDeposit(2, 100, M(99.8765)), NewDeposit(1, 101, M(12.1234))},
		[]AuditRecord{Processed, Processed},
		map[ClientID]balance{
			1: {available: M(12.1234)},
			2: {available: M(99.8765)},
		},
	)
}

func TestProcessorDepositFailsOnNegativeAmounts(t *testing.T) {
	assertProcessing(t,
		[]Transaction{NewDeposit(1, 101, M(10)), NewDeposit(1, 101, M(-13))},
		[]AuditRecord{Processed, CannotDepositNegative},
		map[ClientID]balance{1: {available: M(10)}},
	)
}

func TestProcessorDepositFailsOnOverflow(t *testing.T) {
	large := MoneyAmount{units: math.MaxInt64 - 100}
	assertProcessing(t,
		[]Transaction{NewDeposit(1, 101, large), NewDeposit(1, 102, M(101))},
		[]AuditRecord{Processed, MoneyOverflow},
		map[ClientID]balance{1: {available: large}},
	)
}

func TestProcessorWithdrawDecreasesAmount(t *testing.T) {
	assertProcessing(t,
		[]Transaction{NewDeposit(1, 100, M(12.1234)), NewWithdrawal(1, 101, M(2.12))},
		[]AuditRecord{Processed, Processed},
		map[ClientID]balance{1: {available: M(10.0034)}},
	)
}

func TestProcessorWithdrawFailsOnNegativeAmount(t *testing.T) {
	assertProcessing(t,
		[]Transaction{NewDeposit(1, 100, M(12.1234)), NewWithdrawal(1, 101, M(-3))},
		[]AuditRecord{Processed, CannotWithdrawNegative},
		map[ClientID]balance{1: {available: M(12.1234)}},
	)
}

func TestProcessorWithdrawMustHaveMoney(t *testing.T) {
	assertProcessing(t,
		[]Transaction{NewDeposit(1, 100, M(12.1234)), NewWithdrawal(1, 101, M(20.12))},
		[]AuditRecord{Processed, NotEnoughToWithdraw},
		map[ClientID]balance{1: {available: M(12.1234)}},
	)
}

func TestProcessorWithdrawFailsOnLockedAccount(t *testing.T) {
	assertProcessing(t,
		[]Transaction{
			NewDeposit(1, 100, M(13)),
			NewDispute(1, 100),
			NewChargeBack(1, 100),
			NewWithdrawal(1, 104, M(7)),
		},
		[]AuditRecord{Processed, Processed, Processed, AccountLocked},
		map[ClientID]balance{1: {locked: true}},
	)
}

func TestProcessorDisputeDeposits(t *testing.T) {
	assertProcessing(t,
		[]Transaction{
			NewDeposit(1, 100, M(1000.0)),
			NewDeposit(1, 101, M(200.0)),
			NewDispute(1, 101),
		},
		[]AuditRecord{Processed, Processed, Processed},
		map[ClientID]balance{1: {available: M(1000), held: M(200)}},
	)
}

func TestProcessorDisputeOnlyDeposits(t *testing.T) {
	// Withdrawal ids are never recorded, so disputing one is
	// indistinguishable from disputing an unknown id.
	assertProcessing(t,
		[]Transaction{
			NewDeposit(1, 100, M(1000.0)),
			NewWithdrawal(1, 101, M(200.0)),
			NewDispute(1, 100),
			NewDispute(1, 101),
			NewDispute(1, 102),
		},
		[]AuditRecord{Processed, Processed, Processed, DisputedDepositNotFound, DisputedDepositNotFound},
		map[ClientID]balance{1: {available: M(-200), held: M(1000)}},
	)
}

func TestProcessorDisputeOnlyOnce(t *testing.T) {
	assertProcessing(t,
		[]Transaction{NewDeposit(1, 100, M(1000.0)), NewDispute(1, 100), NewDispute(1, 100)},
		[]AuditRecord{Processed, Processed, DisputedDepositNotFound},
		map[ClientID]balance{1: {held: M(1000)}},
	)
}

func TestProcessorDisputeAfterSpendingGoesNegative(t *testing.T) {
	// Available may legitimately go negative once a prior withdrawal has
	// spent funds later placed under dispute.
	assertProcessing(t,
		[]Transaction{
			NewDeposit(1, 100, M(600.0)),
			NewWithdrawal(1, 101, M(500.0)),
			NewDispute(1, 100),
		},
		[]AuditRecord{Processed, Processed, Processed},
		map[ClientID]balance{1: {available: M(-500), held: M(600)}},
	)
}

func TestProcessorResolveDecreasesHeldFunds(t *testing.T) {
	assertProcessing(t,
		[]Transaction{NewDeposit(1, 100, M(1000.0)), NewDispute(1, 100), NewResolve(1, 100)},
		[]AuditRecord{Processed, Processed, Processed},
		map[ClientID]balance{1: {available: M(1000)}},
	)
}

func TestProcessorChargebackFreezesAccount(t *testing.T) {
	assertProcessing(t,
		[]Transaction{NewDeposit(1, 100, M(1000.0)), NewDispute(1, 100), NewChargeBack(1, 100)},
		[]AuditRecord{Processed, Processed, Processed},
		map[ClientID]balance{1: {locked: true}},
	)
}

func TestProcessorChargebackOnce(t *testing.T) {
	assertProcessing(t,
		[]Transaction{
			NewDeposit(1, 100, M(1000.0)),
			NewDispute(1, 100),
			NewChargeBack(1, 100),
			NewChargeBack(1, 100),
		},
		[]AuditRecord{Processed, Processed, Processed, DisputeNotFound},
		map[ClientID]balance{1: {locked: true}},
	)
}

func TestProcessorProcessIsLazy(t *testing.T) {
	p := NewProcessor()
	transactions := []Transaction{
		NewDeposit(1, 100, M(10)),
		NewDeposit(1, 101, M(20)),
	}

	// Stop after the first outcome: the second transaction must not have
	// been applied yet.
	for range p.Process(transactions) {
		break
	}

	account, ok := p.Account(1)
	if !ok {
		t.Fatal("account 1 missing")
	}
	if !account.Available().Equal(M(10)) {
		t.Errorf("available = %v, want 10.0000 after consuming one outcome", account.Available())
	}
}

func TestProcessorSnapshotOmitsOverflowingTotals(t *testing.T) {
	p := NewProcessor()
	large := MoneyAmount{units: math.MaxInt64 - 100}
	p.ProcessAll([]Transaction{
		NewDeposit(1, 100, large),
		NewDeposit(1, 101, M(200)), // rejected, overflow
		NewDispute(1, 100),         // held = large, available = 0
		NewDeposit(1, 102, M(200)), // available = 200: total now overflows
		NewDeposit(2, 200, M(50)),
	})

	snaps := p.Snapshot()
	if len(snaps) != 1 {
		t.Fatalf("got %d snapshots, want 1 (client 1 omitted)", len(snaps))
	}
	if snaps[0].Client != 2 || !snaps[0].Total.Equal(M(50)) {
		t.Errorf("snapshot = %+v, want client 2 with total 50.0000", snaps[0])
	}
}
