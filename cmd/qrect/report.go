package main

import (
	"fmt"
	"io"

	"github.com/markkurossi/tabulate"

	"qrect"
)

// printReport renders the per-pairing oracle outcomes as a table.
func printReport(w io.Writer, results []qrect.PairingResult) {
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Pairing").SetAlign(tabulate.ML)
	tab.Header("Pair 1").SetAlign(tabulate.MC)
	tab.Header("Pair 2").SetAlign(tabulate.MC)
	tab.Header("P(0)").SetAlign(tabulate.MR)
	tab.Header("Match").SetAlign(tabulate.MC)

	for _, r := range results {
		row := tab.Row()
		row.Column(r.Label)
		row.Column(fmt.Sprintf("%s %s", r.Pair1.U, r.Pair1.V))
		row.Column(fmt.Sprintf("%s %s", r.Pair2.U, r.Pair2.V))
		row.Column(fmt.Sprintf("%.6f", r.Probability))
		if r.Match {
			row.Column("yes").SetFormat(tabulate.FmtBold)
		} else {
			row.Column("")
		}
	}

	tab.Print(w)
}
