// Package keeporsell provides the types and business logic for comparing the
// two ways a household that already owns a home can finance the purchase of
// a new one: keep the current home and rent it out, or sell it and roll the
// net proceeds into the purchase. It is designed to be a pure calculation
// engine so that every run is reproducible from its inputs alone.
//
// The core functionalities include:
//   - Amortization: Fixed-rate monthly payment math carried out on exact
//     decimals, rounded only when a figure is displayed.
//   - Debt Payoff Resolution: Retiring high-rate liens from liquid cash
//     before the rental down payment is computed, highest rate first.
//   - Strategy Evaluation: Deriving down payment, mortgage, PITI and the new
//     monthly and annual surplus for both strategies against the household's
//     financial baseline.
//   - Risk Assessment: A declarative stress catalogue per strategy (vacancy,
//     rent drops, repairs, a slow sale, and so on) with worst-case tracking.
//   - Recommendation: The preferred strategy, its margin, a low-confidence
//     flag on ties and a warning when the winner's worst case falls below the
//     loser's estimate.
//   - Outlook: Linear five and ten year projections, and a price/rate/rent
//     sweep matrix for sensitivity analysis.
//
// This package serves as the foundational logic for the `kos` command-line
// tool. It keeps no state, reads no files and fetches nothing; collaborators
// around it do the I/O.
package keeporsell
