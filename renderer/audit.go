package renderer

import (
	"bytes"
	"fmt"

	"github.com/mlev/payrec"
	md "github.com/nao1215/markdown"
)

// AuditMarkdown renders one row per transaction with its audit outcome, in
// input order. records must hold one outcome per transaction, as produced
// by the processor. failedOnly keeps only the rejected transactions.
func AuditMarkdown(transactions []payrec.Transaction, records []payrec.AuditRecord, failedOnly bool) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Audit Log")

	rows := make([][]string, 0, len(transactions))
	for i, tx := range transactions {
		if failedOnly && records[i].OK() {
			continue
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			string(tx.What()),
			fmt.Sprintf("%d", tx.Client()),
			fmt.Sprintf("%d", referencedID(tx)),
			records[i].String(),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"#", "Type", "Client", "Tx", "Outcome"},
		Rows:   rows,
	})

	return doc.String()
}

// Transaction renders a transaction to a string.
func Transaction(tx payrec.Transaction) string {
	switch v := tx.(type) {
	case payrec.Deposit:
		return fmt.Sprintf("Deposited %s to client %d (tx %d)", v.Amount, v.Client(), v.ID())
	case payrec.Withdrawal:
		return fmt.Sprintf("Withdrew %s from client %d (tx %d)", v.Amount, v.Client(), v.ID())
	case payrec.Dispute:
		return fmt.Sprintf("Disputed tx %d for client %d", v.Ref, v.Client())
	case payrec.Resolve:
		return fmt.Sprintf("Resolved dispute of tx %d for client %d", v.Ref, v.Client())
	case payrec.ChargeBack:
		return fmt.Sprintf("Charged back tx %d for client %d", v.Ref, v.Client())
	default:
		return string(tx.What())
	}
}

// referencedID returns the transaction id a row reports on: the
// transaction's own id for deposits and withdrawals, the referenced id for
// the dispute chain.
func referencedID(tx payrec.Transaction) payrec.TransactionID {
	switch v := tx.(type) {
	case payrec.Dispute:
		return v.Ref
	case payrec.Resolve:
		return v.Ref
	case payrec.ChargeBack:
		return v.Ref
	default:
		return tx.ID()
	}
}
