package payrec

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// DecodeTransactions reads the delimited transaction format from r and
// returns the transactions in input order.
//
// The format has columns: transaction type (deposit, withdrawal, dispute,
// resolve, chargeback), client id, transaction id, and an optional decimal
// amount present only for deposits and withdrawals. Fields are trimmed.
// Malformed or unparseable records, including the header row, are silently
// dropped before reaching the processor; they are a boundary concern, not
// an audit outcome.
func DecodeTransactions(r io.Reader) ([]Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var transactions []Transaction
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue // drop malformed lines
		}
		if tx, ok := decodeRecord(record); ok {
			transactions = append(transactions, tx)
		}
	}
	return transactions, nil
}

// decodeRecord converts one delimited record into a transaction.
// ok is false when the record does not parse into a known variant.
func decodeRecord(record []string) (tx Transaction, ok bool) {
	if len(record) < 3 {
		return nil, false
	}

	kind := CommandType(strings.TrimSpace(record[0]))

	client, err := strconv.ParseUint(strings.TrimSpace(record[1]), 10, 16)
	if err != nil {
		return nil, false
	}
	id, err := strconv.ParseUint(strings.TrimSpace(record[2]), 10, 32)
	if err != nil {
		return nil, false
	}

	// The amount column is parsed on demand: it is decimal input's single
	// crossing into the fixed-point representation.
	amount := func() (MoneyAmount, bool) {
		if len(record) < 4 {
			return MoneyAmount{}, false
		}
		d, err := decimal.NewFromString(strings.TrimSpace(record[3]))
		if err != nil {
			return MoneyAmount{}, false
		}
		return MoneyFromDecimal(d)
	}

	switch kind {
	case CmdDeposit:
		m, ok := amount()
		if !ok {
			return nil, false
		}
		return NewDeposit(ClientID(client), TransactionID(id), m), true
	case CmdWithdrawal:
		m, ok := amount()
		if !ok {
			return nil, false
		}
		return NewWithdrawal(ClientID(client), TransactionID(id), m), true
	case CmdDispute:
		return NewDispute(ClientID(client), TransactionID(id)), true
	case CmdResolve:
		return NewResolve(ClientID(client), TransactionID(id)), true
	case CmdChargeBack:
		return NewChargeBack(ClientID(client), TransactionID(id)), true
	default:
		return nil, false
	}
}

// EncodeSnapshotsCSV writes the balance report in the delimited output
// format: a header line, then one line per account with columns
// client, available, held, total, locked.
func EncodeSnapshotsCSV(w io.Writer, snaps []AccountSnapshot) error {
	if _, err := fmt.Fprintln(w, "client, available, held, total, locked"); err != nil {
		return err
	}
	for _, s := range snaps {
		_, err := fmt.Fprintf(w, "%d, %s, %s, %s, %t\n", s.Client, s.Available, s.Held, s.Total, s.Locked)
		if err != nil {
			return err
		}
	}
	return nil
}

// EncodeSnapshots writes the snapshots to w in the export format: a JSONL
// stream, one JSON object per account.
func EncodeSnapshots(w io.Writer, snaps []AccountSnapshot) error {
	for _, s := range snaps {
		data, err := json.Marshal(s)
		if err != nil {
			return fmt.Errorf("cannot encode snapshot for client %d: %w", s.Client, err)
		}
		if _, err := fmt.Fprintf(w, "%s\n", data); err != nil {
			return err
		}
	}
	return nil
}
