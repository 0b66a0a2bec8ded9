// Package payrec implements a transaction ledger engine for client accounts.
// It ingests an ordered sequence of transactions (deposits, withdrawals,
// disputes, resolutions, chargebacks), applies each one to the owning
// account, and produces a final balance snapshot per account plus an audit
// outcome per transaction.
//
// The core functionalities include:
//   - Fixed-Point Money: a checked, 4-decimal-digit fixed-point
//     representation in which balances can never silently wrap, round or
//     drift. Decimal input is rounded into this representation exactly once,
//     at the parsing boundary.
//   - Account State Machine: per-client available/held balances, a permanent
//     lock entered on chargeback, and a per-deposit dispute lifecycle
//     (deposited, disputed, charged back).
//   - Processing: a single-owner processor that routes transactions to
//     lazily-created accounts in input order and yields one audit outcome
//     per transaction.
//   - Data Boundaries: decoding the delimited transaction format, and
//     encoding balance snapshots to the delimited report format or JSONL.
//
// This package serves as the foundational logic for the `plq` command-line
// tool; it performs no I/O of its own.
package payrec
