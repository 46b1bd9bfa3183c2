package budget

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"keeporsell"
)

// ParseCSV reads a monthly statement in the three-column form:
//
//	kind,label,amount
//	income,Salary,20000
//	expense,FPL Electric,210
//
// Income rows sum into the monthly income; expense rows become classified
// entries in file order.
func ParseCSV(r io.Reader, c *Classifier) (*Statement, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("cannot read statement header: %w", err)
	}
	if len(header) != 3 || !strings.EqualFold(header[0], "kind") ||
		!strings.EqualFold(header[1], "label") || !strings.EqualFold(header[2], "amount") {
		return nil, fmt.Errorf("statement header must be kind,label,amount, got %v", header)
	}

	s := &Statement{}
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read statement: %w", err)
		}
		amount, err := strconv.ParseFloat(strings.TrimSpace(rec[2]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad amount %q: %w", line, rec[2], err)
		}
		label := strings.TrimSpace(rec[1])
		switch kind := strings.ToLower(strings.TrimSpace(rec[0])); kind {
		case "income":
			s.MonthlyIncome = s.MonthlyIncome.Add(keeporsell.M(amount))
		case "expense":
			s.Entries = append(s.Entries, Entry{Label: label, Amount: keeporsell.M(amount), Kind: c.Classify(label)})
		default:
			return nil, fmt.Errorf("line %d: unknown kind %q, want income or expense", line, kind)
		}
	}
	return s, nil
}
