package cmd

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"keeporsell"
	"keeporsell/budget"
	"keeporsell/config"
)

// requestFlags is the household flag set shared by the analyze and matrix
// commands. Flags defaulting to -1 take their value from the config file.
type requestFlags struct {
	income     float64
	expenses   float64
	budgetFile string

	price     float64
	rate      float64
	term      int
	tax       float64
	insurance float64
	operating float64
	utilities float64

	liens            string
	currentOperating float64
	currentUtilities float64

	rent            float64
	payoff          bool
	payoffThreshold float64

	salePrice              float64
	sellingCost            float64
	savings                float64
	currentMortgagePayment float64

	liquid float64
	bonus  float64
}

func (c *requestFlags) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.income, "income", 0, "Monthly household income. Defaults to the budget statement total when -budget is given.")
	f.Float64Var(&c.expenses, "expenses", 0, "Monthly household expenses. Defaults to the budget statement total when -budget is given.")
	f.StringVar(&c.budgetFile, "budget", "", "Budget statement (CSV or JSON) supplying income, expenses and current-home carrying costs.")

	f.Float64Var(&c.price, "price", 0, "Purchase price of the new home.")
	f.Float64Var(&c.rate, "rate", -1, "Annual mortgage rate in percent. Defaults to the config value.")
	f.IntVar(&c.term, "term", 0, "Mortgage term in months. Defaults to the config value.")
	f.Float64Var(&c.tax, "tax", 0, "Annual property tax on the new home.")
	f.Float64Var(&c.insurance, "insurance", 0, "Annual insurance on the new home.")
	f.Float64Var(&c.operating, "operating", 0, "Monthly operating costs of the new home.")
	f.Float64Var(&c.utilities, "utilities", 0, "Monthly utilities of the new home.")

	f.StringVar(&c.liens, "liens", "", "Liens on the current home as a JSON array, or @file to read one. See 'kos topic analyze' for the format.")
	f.Float64Var(&c.currentOperating, "current-operating", 0, "Monthly operating costs of the current home a sale eliminates. Defaults to the classified operating total when -budget is given.")
	f.Float64Var(&c.currentUtilities, "current-utilities", 0, "Monthly utilities of the current home a sale eliminates. Defaults to the classified utility total when -budget is given.")

	f.Float64Var(&c.rent, "rent", 0, "Expected monthly rent when keeping the home.")
	f.BoolVar(&c.payoff, "payoff", false, "Retire high-rate liens with cash before computing the down payment.")
	f.Float64Var(&c.payoffThreshold, "payoff-threshold", -1, "Retire liens with a rate strictly above this percent. Defaults to the config value.")

	f.Float64Var(&c.salePrice, "sale-price", 0, "Expected sale price of the current home.")
	f.Float64Var(&c.sellingCost, "selling-cost", -1, "Selling costs as a percent of the sale price. Defaults to the config value.")
	f.Float64Var(&c.savings, "savings", 0, "Savings that join the down payment only when selling.")
	f.Float64Var(&c.currentMortgagePayment, "current-mortgage-payment", -1, "Monthly debt service a sale frees from the expense baseline. Defaults to the summed lien payments; pass 0 when the baseline never carried them.")

	f.Float64Var(&c.liquid, "liquid", 0, "Liquid cash available for the down payment.")
	f.Float64Var(&c.bonus, "bonus", 0, "Expected bonus cash available for the down payment.")
}

// Request assembles the engine request from the flags, the config and the
// optional budget statement.
func (c *requestFlags) Request(cfg *config.Config) (keeporsell.Request, error) {
	var req keeporsell.Request

	if err := c.applyBudget(cfg); err != nil {
		return req, err
	}

	liens, err := c.parseLiens()
	if err != nil {
		return req, err
	}

	rate := c.rate
	if rate < 0 {
		rate = cfg.Defaults.InterestRate
	}
	term := c.term
	if term <= 0 {
		term = cfg.Defaults.TermMonths
	}
	threshold := c.payoffThreshold
	if threshold < 0 {
		threshold = cfg.Defaults.PayoffThreshold
	}
	sellingCost := c.sellingCost
	if sellingCost < 0 {
		sellingCost = cfg.Defaults.SellingCostPct
	}

	home := keeporsell.NewHome{
		Price:           keeporsell.M(c.price),
		Rate:            keeporsell.Percent(rate),
		TermMonths:      term,
		AnnualTax:       keeporsell.M(c.tax),
		AnnualInsurance: keeporsell.M(c.insurance),
		Operating:       keeporsell.M(c.operating),
		Utilities:       keeporsell.M(c.utilities),
	}
	current := keeporsell.CurrentHome{
		Liens:     liens,
		Operating: keeporsell.M(c.currentOperating),
		Utilities: keeporsell.M(c.currentUtilities),
	}

	req = keeporsell.Request{
		Baseline: keeporsell.FinancialBaseline{
			MonthlyIncome:   keeporsell.M(c.income),
			MonthlyExpenses: keeporsell.M(c.expenses),
		},
		Rental: keeporsell.RentalInputs{
			NewHome: home,
			// The carrying costs of the current home stay inside the expense
			// baseline while the household still owns it.
			CurrentHome:  keeporsell.CurrentHome{Liens: liens},
			RentalIncome: keeporsell.M(c.rent),
			LiquidCash:   keeporsell.M(c.liquid),
			BonusCash:    keeporsell.M(c.bonus),
			Payoff: keeporsell.PayoffPolicy{
				Enabled:   c.payoff,
				Threshold: keeporsell.Percent(threshold),
			},
		},
		Sell: keeporsell.SellInputs{
			NewHome:       home,
			CurrentHome:   current,
			SalePrice:     keeporsell.M(c.salePrice),
			SellingCost:   keeporsell.Percent(sellingCost),
			LiquidCash:    keeporsell.M(c.liquid),
			BonusCash:     keeporsell.M(c.bonus),
			LiquidSavings: keeporsell.M(c.savings),
		},
		Stresses: cfg.FixedStresses(),
	}
	if c.currentMortgagePayment >= 0 {
		payment := keeporsell.M(c.currentMortgagePayment)
		req.Sell.CurrentMortgagePayment = &payment
	}
	return req, nil
}

// applyBudget fills income, expenses and the current-home carrying figures
// from the statement, keeping any figure the user set explicitly.
func (c *requestFlags) applyBudget(cfg *config.Config) error {
	if c.budgetFile == "" {
		return nil
	}
	classifier := budget.NewClassifier(cfg.Budget.OperatingKeywords, cfg.Budget.UtilityKeywords)
	statement, err := budget.LoadFile(c.budgetFile, classifier, budget.JSONPaths{
		Income:   cfg.Budget.IncomePath,
		Expenses: cfg.Budget.ExpensesPath,
	})
	if err != nil {
		return fmt.Errorf("could not load budget %q: %w", c.budgetFile, err)
	}
	if c.income == 0 {
		c.income = statement.MonthlyIncome.Float64()
	}
	if c.expenses == 0 {
		c.expenses = statement.MonthlyExpenses().Float64()
	}
	if c.currentOperating == 0 {
		c.currentOperating = statement.OperatingCosts().Float64()
	}
	if c.currentUtilities == 0 {
		c.currentUtilities = statement.Utilities().Float64()
	}
	return nil
}

// parseLiens accepts an inline JSON array or, with a leading @, a file
// holding one.
func (c *requestFlags) parseLiens() (keeporsell.Liens, error) {
	if c.liens == "" {
		return nil, nil
	}
	data := []byte(c.liens)
	if name, ok := strings.CutPrefix(c.liens, "@"); ok {
		b, err := os.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("could not read lien file: %w", err)
		}
		data = b
	}
	return keeporsell.ParseLiens(data)
}
