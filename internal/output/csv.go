package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/lpsim/lifeplan-simulator/internal/domain"
)

// CSVFormatter renders the ledger as one row per year. The output starts with
// a UTF-8 BOM so spreadsheet applications decode the Japanese headers
// correctly.
type CSVFormatter struct{}

// Name returns the format identifier.
func (f *CSVFormatter) Name() string {
	return "csv"
}

var csvHeader = []string{
	"年",
	"年齢",
	"ライフイベント（個人）",
	"ライフイベント（法人）",
	"手取り収入",
	"副業収入",
	"配偶者収入",
	"年金収入",
	"配偶者年金収入",
	"投資収益",
	"生活費",
	"住居費",
	"教育費",
	"その他支出",
	"投資額",
	"投資資産残高",
	"個人収支",
	"個人総資産",
	"法人売上",
	"法人その他収入",
	"法人経費",
	"法人その他支出",
	"法人収支",
	"法人総資産",
}

// Format renders the report as CSV.
func (f *CSVFormatter) Format(report *Report) ([]byte, error) {
	if report.Ledger == nil {
		return nil, fmt.Errorf("report has no ledger")
	}

	var buf bytes.Buffer
	buf.Write([]byte{0xEF, 0xBB, 0xBF}) // UTF-8 BOM

	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, row := range report.Ledger.Years {
		record := []string{
			strconv.Itoa(row.Year),
			strconv.Itoa(row.Age),
			eventsForYear(report.LifeEvents, row.Year, domain.SourcePersonal),
			eventsForYear(report.LifeEvents, row.Year, domain.SourceCorporate),
			row.MainIncome.String(),
			row.SideIncome.String(),
			row.SpouseIncome.String(),
			row.PensionIncome.String(),
			row.SpousePensionIncome.String(),
			row.InvestmentIncome.String(),
			row.LivingExpense.String(),
			row.HousingExpense.String(),
			row.EducationExpense.String(),
			row.OtherExpense.String(),
			row.InvestmentAmount.String(),
			row.TotalInvestmentAssets.String(),
			row.PersonalBalance.String(),
			row.PersonalTotalAssets.String(),
			row.CorporateIncome.String(),
			row.CorporateOtherIncome.String(),
			row.CorporateExpense.String(),
			row.CorporateOtherExpense.String(),
			row.CorporateBalance.String(),
			row.CorporateTotalAssets.String(),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV row for year %d: %w", row.Year, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}
	return buf.Bytes(), nil
}
