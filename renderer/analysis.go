// Package renderer formats analysis results as markdown.
package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"keeporsell"
)

// AnalysisMarkdown renders the full comparison report: baseline, the two
// strategies side by side, the payoff plan, risk scenarios, and the
// recommendation with its long-term outlook.
func AnalysisMarkdown(a *keeporsell.Analysis) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Keep or Sell Analysis")
	doc.PlainText(fmt.Sprintf("*As of %s*", Now().Format("2006-01-02 15:04:05")))

	doc.H2("Household Baseline")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Metric", "Amount"},
		Rows: [][]string{
			{"Monthly income", a.Baseline.MonthlyIncome.String()},
			{"Monthly expenses", a.Baseline.MonthlyExpenses.String()},
			{md.Bold("Monthly surplus"), md.Bold(a.Baseline.MonthlySurplus().String())},
		},
	})

	rental, sell := a.Rental, a.Sell
	doc.H2("Strategy Comparison")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Metric", "Keep as Rental", "Sell"},
		Rows: [][]string{
			{"Net sale proceeds", "", sell.NetProceeds.SignedString()},
			{"Selling costs", "", sell.SellingCosts.String()},
			{"Down payment", rental.DownPayment.String(), sell.DownPayment.String()},
			{"Mortgage amount", rental.MortgageAmount.String(), sell.MortgageAmount.String()},
			{"Loan to value", rental.LoanToValue.String(), sell.LoanToValue.String()},
			{"Monthly payment", rental.MonthlyPayment.String(), sell.MonthlyPayment.String()},
			{"Monthly PITI", rental.MonthlyPITI.String(), sell.MonthlyPITI.String()},
			{"Remaining debt payment", rental.RemainingDebtPayment.String(), ""},
			{"Net monthly impact", rental.NetMonthlyImpact.SignedString(), sell.NetMonthlyImpact.SignedString()},
			{"New monthly surplus", rental.NewMonthlySurplus.String(), sell.NewMonthlySurplus.String()},
			{md.Bold("New annual surplus"), md.Bold(rental.NewAnnualSurplus.String()), md.Bold(sell.NewAnnualSurplus.String())},
		},
	})

	if len(rental.Payoff.Retired) > 0 {
		doc.H2("Debt Payoff")
		payoff := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
			Header:    []string{"Lien", "Balance", "Rate", "Payment"},
		}
		for _, l := range rental.Payoff.Retired {
			payoff.Rows = append(payoff.Rows, []string{l.Kind, l.Balance.String(), l.Rate.String(), l.MonthlyPayment().String()})
		}
		doc.Table(payoff)
		doc.PlainText(fmt.Sprintf("Retiring these liens spends %s and leaves %s toward the down payment, eliminating %s of monthly payments.",
			rental.Payoff.CashSpent, rental.Payoff.CashRemaining, rental.Payoff.PaymentEliminated))
	}

	doc.H2("Risk Scenarios")
	riskTable(doc, "Keep as Rental", a.RentalRisk)
	riskTable(doc, "Sell", a.SellRisk)

	rec := a.Recommendation
	doc.H2("Recommendation")
	doc.PlainText(fmt.Sprintf("%s, ahead by %s per year.", md.Bold(strategyTitle(rec.Preferred)), rec.MarginAnnual))
	if rec.LowConfidence {
		doc.PlainText("The two strategies are a dead heat on the base figures. Treat this as a low-confidence call and weigh the risk scenarios instead.")
	}
	if rec.Warning != "" {
		doc.PlainText(fmt.Sprintf("> %s: %s", md.Bold("Warning"), rec.Warning))
	}

	o := a.Outlook
	doc.H2("Long-Term Outlook")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Horizon", "Keep as Rental", "Sell", "Difference"},
		Rows: [][]string{
			{"5 years", o.Rental.FiveYear.String(), o.Sell.FiveYear.String(), o.FiveYearDiff.SignedString()},
			{"10 years", o.Rental.TenYear.String(), o.Sell.TenYear.String(), o.TenYearDiff.SignedString()},
		},
	})
	doc.PlainText("Linear extension of the annual surplus, with no compounding, appreciation, or rent growth.")

	return doc.String()
}

func riskTable(doc *md.Markdown, title string, risk keeporsell.RiskAssessment) {
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{fmt.Sprintf("Scenario (%s)", title), "Annual Impact", "Resulting Surplus"},
	}
	for _, s := range risk.Scenarios {
		table.Rows = append(table.Rows, []string{s.Label, s.AnnualDelta.SignedString(), s.AnnualSurplus.String()})
	}
	table.Rows = append(table.Rows, []string{md.Bold("Worst case"), "", md.Bold(risk.WorstCase.String())})
	doc.Table(table)
}

func strategyTitle(s keeporsell.Strategy) string {
	if s == keeporsell.Sell {
		return "Sell the home"
	}
	return "Keep the home as a rental"
}
