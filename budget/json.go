package budget

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
	"keeporsell"
)

// JSONPaths selects where income and expenses live inside a JSON statement.
// Empty fields fall back to the standard layout.
type JSONPaths struct {
	Income   string // default $.income.monthly
	Expenses string // default $.expenses
}

const (
	defaultIncomePath   = "$.income.monthly"
	defaultExpensesPath = "$.expenses"
)

// ParseJSON reads a statement like
//
//	{
//	  "income": {"monthly": 20000},
//	  "expenses": [{"label": "FPL Electric", "amount": 210}]
//	}
//
// with the income figure and the expense array located by the configured
// jsonpath expressions.
func ParseJSON(r io.Reader, c *Classifier, paths JSONPaths) (*Statement, error) {
	if paths.Income == "" {
		paths.Income = defaultIncomePath
	}
	if paths.Expenses == "" {
		paths.Expenses = defaultExpensesPath
	}

	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("cannot parse statement: %w", err)
	}

	income, err := number(jobj, paths.Income)
	if err != nil {
		return nil, fmt.Errorf("income: %w", err)
	}
	s := &Statement{MonthlyIncome: keeporsell.M(income)}

	jval, err := jsonpath.Get(paths.Expenses, jobj)
	if err != nil {
		return nil, fmt.Errorf("expenses: cannot evaluate %q: %w", paths.Expenses, err)
	}
	jlist, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("expenses: %q is not an array", paths.Expenses)
	}
	for i, je := range jlist {
		jmap, ok := je.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("expense %d is not an object", i+1)
		}
		label, _ := jmap["label"].(string)
		amount, ok := jmap["amount"].(float64)
		if !ok {
			return nil, fmt.Errorf("expense %d (%q) has no numeric amount", i+1, label)
		}
		s.Entries = append(s.Entries, Entry{Label: label, Amount: keeporsell.M(amount), Kind: c.Classify(label)})
	}
	return s, nil
}

// number resolves a jsonpath to a single float.
func number(jobj any, path string) (float64, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return 0, fmt.Errorf("cannot evaluate %q: %w", path, err)
	}
	// jsonpath is never clear about whether it returns a list of one answer
	// or a single answer; keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		return 0, fmt.Errorf("%q is not a number, got %v", path, jval)
	}
	return val, nil
}
