package keeporsell

import (
	"slices"
	"sort"
)

// PayoffPolicy controls whether high-rate liens are retired from liquid cash
// before the rental down payment is computed.
type PayoffPolicy struct {
	Enabled   bool
	Threshold Percent // retire liens with a rate strictly above this
}

// PayoffPlan is the outcome of resolving a policy against the lien list.
type PayoffPlan struct {
	Retired   Liens `json:"retired,omitempty"`
	Remaining Liens `json:"remaining,omitempty"`
	// CashSpent went to retirements; CashRemaining flows to the down payment.
	CashSpent     Money `json:"cashSpent"`
	CashRemaining Money `json:"cashRemaining"`
	// PaymentEliminated is the monthly debt service the retirements removed.
	PaymentEliminated Money `json:"paymentEliminated"`
}

// ResolvePayoffs walks the liens highest rate first, retiring each lien whose
// rate is strictly above the policy threshold, until one no longer fits in
// the cash still available. Partial retirement is never done, and the first
// unaffordable lien ends the walk even when a smaller qualifying lien follows
// later in the order. Running out of cash is a normal outcome, not an error.
//
// The ordering is stable, so liens with equal rates keep their input order.
// First fit is deliberate; the resolver does not search for the optimal
// retirement set.
func ResolvePayoffs(liens Liens, cash Money, policy PayoffPolicy) PayoffPlan {
	if !policy.Enabled {
		return PayoffPlan{Remaining: slices.Clone(liens), CashRemaining: cash}
	}

	byRate := slices.Clone(liens)
	sort.SliceStable(byRate, func(i, j int) bool { return byRate[i].Rate > byRate[j].Rate })

	plan := PayoffPlan{CashRemaining: cash}
	for i, l := range byRate {
		if l.Rate > policy.Threshold && plan.CashRemaining.LessThan(l.Balance) {
			// the first lien the cash cannot fully retire ends the walk
			plan.Remaining = append(plan.Remaining, byRate[i:]...)
			break
		}
		if l.Rate > policy.Threshold {
			plan.Retired = append(plan.Retired, l)
			plan.CashSpent = plan.CashSpent.Add(l.Balance)
			plan.CashRemaining = plan.CashRemaining.Sub(l.Balance)
			plan.PaymentEliminated = plan.PaymentEliminated.Add(l.MonthlyPayment())
			continue
		}
		plan.Remaining = append(plan.Remaining, l)
	}
	return plan
}
