// Package renderer turns processing results into human-readable reports.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/mlev/payrec"
	md "github.com/nao1215/markdown"
)

// AccountsMarkdown renders account snapshots as a markdown table, one row
// per account in client id order. displayCurrency optionally formats the
// total column with that currency's display convention; empty keeps the
// exact 4-digit form.
func AccountsMarkdown(snaps []payrec.AccountSnapshot, displayCurrency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Account Balances")

	rows := make([][]string, 0, len(snaps))
	for _, s := range snaps {
		total := s.Total.String()
		if displayCurrency != "" {
			total = FormatIn(s.Total, displayCurrency)
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", s.Client),
			s.Available.String(),
			s.Held.String(),
			total,
			fmt.Sprintf("%t", s.Locked),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Client", "Available", "Held", "Total", "Locked"},
		Rows:   rows,
	})

	return doc.String()
}

// FormatIn renders the amount using the display convention of the given ISO
// currency code: symbol, grouping, and rounding to the currency's minor
// unit. It is rendering only; stored balances stay in the 4-digit
// fixed-point representation.
func FormatIn(m payrec.MoneyAmount, code string) string {
	// to get a never nil currency go through the Money constructor
	cur := *money.New(0, code).Currency()
	minor := m.Decimal().Shift(int32(cur.Fraction)).Round(0).IntPart()
	return cur.Formatter().Format(minor)
}
