package keeporsell

import (
	"testing"
)

func TestResolvePayoffs(t *testing.T) {
	liens := Liens{
		{Balance: M(100000), Rate: 3, Kind: "mortgage"},
		{Balance: M(20000), Rate: 9, Kind: "heloc"},
	}

	t.Run("policy off leaves everything alone", func(t *testing.T) {
		plan := ResolvePayoffs(liens, M(25000), PayoffPolicy{})
		if len(plan.Retired) != 0 {
			t.Errorf("retired %d liens, want 0", len(plan.Retired))
		}
		if !plan.CashRemaining.Equal(M(25000)) {
			t.Errorf("CashRemaining = %s, want $25,000.00", plan.CashRemaining)
		}
		if len(plan.Remaining) != 2 {
			t.Errorf("remaining %d liens, want 2", len(plan.Remaining))
		}
	})

	t.Run("high rate lien retired when affordable", func(t *testing.T) {
		plan := ResolvePayoffs(liens, M(25000), PayoffPolicy{Enabled: true, Threshold: 5})
		if len(plan.Retired) != 1 || plan.Retired[0].Kind != "heloc" {
			t.Fatalf("retired = %+v, want just the heloc", plan.Retired)
		}
		if !plan.CashRemaining.Equal(M(5000)) {
			t.Errorf("CashRemaining = %s, want $5,000.00", plan.CashRemaining)
		}
		if !plan.CashSpent.Equal(M(20000)) {
			t.Errorf("CashSpent = %s, want $20,000.00", plan.CashSpent)
		}
		if len(plan.Remaining) != 1 || plan.Remaining[0].Kind != "mortgage" {
			t.Errorf("remaining = %+v, want just the mortgage", plan.Remaining)
		}
	})

	t.Run("unaffordable lien is kept", func(t *testing.T) {
		plan := ResolvePayoffs(liens, M(10000), PayoffPolicy{Enabled: true, Threshold: 5})
		if len(plan.Retired) != 0 {
			t.Errorf("retired = %+v, want none", plan.Retired)
		}
		if !plan.CashRemaining.Equal(M(10000)) {
			t.Errorf("CashRemaining = %s, want the full $10,000.00", plan.CashRemaining)
		}
	})

	t.Run("unaffordable lien ends the walk", func(t *testing.T) {
		ls := Liens{
			{Balance: M(200000), Rate: 10, Kind: "big"},
			{Balance: M(15000), Rate: 8, Kind: "small"},
		}
		plan := ResolvePayoffs(ls, M(20000), PayoffPolicy{Enabled: true, Threshold: 6})
		if len(plan.Retired) != 0 {
			t.Fatalf("retired = %+v, want none: the big lien stops the walk", plan.Retired)
		}
		if !plan.CashRemaining.Equal(M(20000)) {
			t.Errorf("CashRemaining = %s, want the full $20,000.00", plan.CashRemaining)
		}
		if len(plan.Remaining) != 2 {
			t.Errorf("remaining %d liens, want 2", len(plan.Remaining))
		}
	})

	t.Run("threshold is strict", func(t *testing.T) {
		ls := Liens{{Balance: M(5000), Rate: 6, Kind: "at-threshold"}}
		plan := ResolvePayoffs(ls, M(10000), PayoffPolicy{Enabled: true, Threshold: 6})
		if len(plan.Retired) != 0 {
			t.Errorf("retired a lien at exactly the threshold rate: %+v", plan.Retired)
		}
	})

	t.Run("equal rates keep input order", func(t *testing.T) {
		ls := Liens{
			{Balance: M(5000), Rate: 8, Kind: "first"},
			{Balance: M(5000), Rate: 8, Kind: "second"},
			{Balance: M(5000), Rate: 8, Kind: "third"},
		}
		plan := ResolvePayoffs(ls, M(10000), PayoffPolicy{Enabled: true, Threshold: 6})
		if len(plan.Retired) != 2 {
			t.Fatalf("retired %d liens, want 2", len(plan.Retired))
		}
		if plan.Retired[0].Kind != "first" || plan.Retired[1].Kind != "second" {
			t.Errorf("retired order = [%s, %s], want [first, second]",
				plan.Retired[0].Kind, plan.Retired[1].Kind)
		}
		if len(plan.Remaining) != 1 || plan.Remaining[0].Kind != "third" {
			t.Errorf("remaining = %+v, want just the third lien", plan.Remaining)
		}
	})

	t.Run("eliminated payment uses explicit figures", func(t *testing.T) {
		ls := Liens{{Balance: M(20000), Rate: 9, Kind: "heloc", Payment: M(317)}}
		plan := ResolvePayoffs(ls, M(25000), PayoffPolicy{Enabled: true, Threshold: 6})
		if !plan.PaymentEliminated.Equal(M(317)) {
			t.Errorf("PaymentEliminated = %s, want $317.00", plan.PaymentEliminated)
		}
	})

	t.Run("input list is never mutated", func(t *testing.T) {
		ls := Liens{
			{Balance: M(5000), Rate: 9, Kind: "a"},
			{Balance: M(5000), Rate: 12, Kind: "b"},
		}
		ResolvePayoffs(ls, M(100000), PayoffPolicy{Enabled: true, Threshold: 6})
		if ls[0].Kind != "a" || ls[1].Kind != "b" {
			t.Errorf("input liens reordered: %+v", ls)
		}
	})
}
