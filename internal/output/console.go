package output

import (
	"bytes"
	"fmt"
	"text/tabwriter"
)

// ConsoleFormatter renders a compact summary table for the terminal.
// Amounts are man-yen.
type ConsoleFormatter struct{}

// Name returns the format identifier.
func (f *ConsoleFormatter) Name() string {
	return "console"
}

// Format renders the report as a tab-aligned table with a closing summary.
func (f *ConsoleFormatter) Format(report *Report) ([]byte, error) {
	if report.Ledger == nil {
		return nil, fmt.Errorf("report has no ledger")
	}
	ledger := report.Ledger

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "ライフプランシミュレーション %d〜%d年\n\n", ledger.StartYear, ledger.EndYear())

	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "年\t年齢\t収入\t支出\t収支\t投資残高\t総資産\t")
	for i := range ledger.Years {
		row := &ledger.Years[i]
		fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\t%s\t%s\t\n",
			row.Year,
			row.Age,
			row.TotalPersonalIncome().StringFixed(1),
			row.TotalPersonalExpense().StringFixed(1),
			row.PersonalBalance.StringFixed(1),
			row.TotalInvestmentAssets.StringFixed(1),
			row.PersonalTotalAssets.StringFixed(1),
		)
	}
	if err := w.Flush(); err != nil {
		return nil, fmt.Errorf("failed to render table: %w", err)
	}

	fmt.Fprintf(&buf, "\n最終総資産（%d年）: %s 万円\n", ledger.EndYear(), ledger.FinalTotalAssets().StringFixed(1))
	return buf.Bytes(), nil
}
