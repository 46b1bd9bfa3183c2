package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"

	"keeporsell"
	"keeporsell/config"
	"keeporsell/docs"
	"keeporsell/renderer"
)

const model = "gemini-2.5-pro"

// newFacilitator creates the facilitator running the conversation.
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			The user owns a home, is buying another one, and wants to know whether to keep the
			current home as a rental or sell it. Learn about the experts' skills from the Tools
			and ask them questions. They are at your service and keep context of your previous
			questions.

			Collect the household figures from the user (income, expenses, prices, rates, rent,
			cash, liens) and devise a plan of questions for the experts to come up with the best
			response to the user's request. Never invent figures the user did not give.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewAdvisor creates the expert wired to the comparison engine and the
// documentation.
func NewAdvisor() *Expert {
	lib := []Function{RunAnalysis, GetTopic}

	return &Expert{
		Name: "Advisor",
		Description: `This is the keep-or-sell advisor. He runs the full comparison of keeping
		the current home as a rental against selling it from the household figures, and he can
		look up the documentation. Ask him whenever the user wants numbers or a recommendation.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an advisor on a single household decision: keep the current home as a
			rental, or sell it when buying the next one. Use the tools to run the analysis
			from the figures you are given and to read the documentation. Report the figures
			as the tools computed them; never do the arithmetic yourself.
		`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function.
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// RunAnalysis runs the full two-strategy comparison from structured figures.
var RunAnalysis = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "RunAnalysis",
		Description: `RunAnalysis compares keeping the current home as a rental against selling
		it, and returns the full markdown report: both strategy evaluations, the risk
		scenarios, the recommendation and the long-term outlook.`,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"monthly_income":   {Type: genai.TypeNumber, Description: "Monthly household income in dollars."},
				"monthly_expenses": {Type: genai.TypeNumber, Description: "Monthly household expenses in dollars."},
				"price":            {Type: genai.TypeNumber, Description: "Purchase price of the new home."},
				"rate":             {Type: genai.TypeNumber, Description: "Annual mortgage rate in percent, e.g. 6.13. Defaults to the configured rate."},
				"annual_tax":       {Type: genai.TypeNumber, Description: "Annual property tax on the new home."},
				"annual_insurance": {Type: genai.TypeNumber, Description: "Annual insurance on the new home."},
				"rent":             {Type: genai.TypeNumber, Description: "Expected monthly rent when keeping the current home."},
				"liquid_cash":      {Type: genai.TypeNumber, Description: "Liquid cash available for the down payment."},
				"bonus_cash":       {Type: genai.TypeNumber, Description: "Expected bonus cash available for the down payment."},
				"savings":          {Type: genai.TypeNumber, Description: "Savings that join the down payment only when selling."},
				"sale_price":       {Type: genai.TypeNumber, Description: "Expected sale price of the current home."},
				"selling_cost_pct": {Type: genai.TypeNumber, Description: "Selling costs as a percent of the sale price. Defaults to the configured percent."},
				"payoff":           {Type: genai.TypeBoolean, Description: "Retire high-rate liens with cash before computing the down payment."},
				"payoff_threshold": {Type: genai.TypeNumber, Description: "Retire liens with a rate strictly above this percent. Defaults to the configured threshold."},
				"liens": {
					Type:        genai.TypeArray,
					Description: "Liens on the current home.",
					Items: &genai.Schema{
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"balance":         {Type: genai.TypeNumber, Description: "Outstanding balance."},
							"rate":            {Type: genai.TypeNumber, Description: "Annual rate in percent."},
							"type":            {Type: genai.TypeString, Description: "Free label such as mortgage or heloc."},
							"monthly_payment": {Type: genai.TypeNumber, Description: "Explicit monthly payment; derived from the balance when absent."},
						},
						Required: []string{"balance", "rate"},
					},
				},
			},
			Required: []string{"monthly_income", "monthly_expenses", "price", "rent", "sale_price"},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "The full analysis as a markdown report.",
		},
	},
	Func: func(_ context.Context, id string, args map[string]any) *genai.FunctionResponse {
		fresp := &genai.FunctionResponse{ID: id, Name: "RunAnalysis", Response: map[string]any{}}
		report, err := runAnalysis(args)
		if err != nil {
			fresp.Response["error"] = err.Error()
			return fresp
		}
		fresp.Response["output"] = report
		return fresp
	},
}

// GetTopic returns documentation for the model to ground its answers.
var GetTopic = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "GetTopic",
		Description: `GetTopic returns the documentation for one topic.

		Available topics:

		` + must(docs.GetTopic("readme")),
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"topic": {
					Type:        genai.TypeString,
					Description: "The topic name, or '*' for everything.",
				},
			},
			Required: []string{"topic"},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "The topic's markdown documentation.",
		},
	},
	Func: func(_ context.Context, id string, args map[string]any) *genai.FunctionResponse {
		fresp := &genai.FunctionResponse{ID: id, Name: "GetTopic", Response: map[string]any{}}
		topic, ok := args["topic"].(string)
		if !ok {
			fresp.Response["error"] = fmt.Sprintf("argument 'topic' is not a string as expected but %T", args["topic"])
			return fresp
		}
		content, err := docs.GetTopic(topic)
		if err != nil {
			fresp.Response["error"] = err.Error()
			return fresp
		}
		fresp.Response["output"] = content
		return fresp
	},
}

// runAnalysis assembles the engine request from the model's arguments and
// renders the report.
func runAnalysis(args map[string]any) (string, error) {
	defaults := config.Default().Defaults

	liens, err := parseLiens(args)
	if err != nil {
		return "", err
	}

	home := keeporsell.NewHome{
		Price:           keeporsell.M(number(args, "price", 0)),
		Rate:            keeporsell.Percent(number(args, "rate", defaults.InterestRate)),
		TermMonths:      defaults.TermMonths,
		AnnualTax:       keeporsell.M(number(args, "annual_tax", 0)),
		AnnualInsurance: keeporsell.M(number(args, "annual_insurance", 0)),
	}
	req := keeporsell.Request{
		Baseline: keeporsell.FinancialBaseline{
			MonthlyIncome:   keeporsell.M(number(args, "monthly_income", 0)),
			MonthlyExpenses: keeporsell.M(number(args, "monthly_expenses", 0)),
		},
		Rental: keeporsell.RentalInputs{
			NewHome:      home,
			CurrentHome:  keeporsell.CurrentHome{Liens: liens},
			RentalIncome: keeporsell.M(number(args, "rent", 0)),
			LiquidCash:   keeporsell.M(number(args, "liquid_cash", 0)),
			BonusCash:    keeporsell.M(number(args, "bonus_cash", 0)),
			Payoff: keeporsell.PayoffPolicy{
				Enabled:   boolean(args, "payoff"),
				Threshold: keeporsell.Percent(number(args, "payoff_threshold", defaults.PayoffThreshold)),
			},
		},
		Sell: keeporsell.SellInputs{
			NewHome:       home,
			CurrentHome:   keeporsell.CurrentHome{Liens: liens},
			SalePrice:     keeporsell.M(number(args, "sale_price", 0)),
			SellingCost:   keeporsell.Percent(number(args, "selling_cost_pct", defaults.SellingCostPct)),
			LiquidCash:    keeporsell.M(number(args, "liquid_cash", 0)),
			BonusCash:     keeporsell.M(number(args, "bonus_cash", 0)),
			LiquidSavings: keeporsell.M(number(args, "savings", 0)),
		},
	}

	a, err := keeporsell.Run(req)
	if err != nil {
		return "", err
	}
	return renderer.AnalysisMarkdown(a), nil
}

// number reads a float argument, accepting every numeric shape the decoder
// may hand over.
func number(args map[string]any, key string, fallback float64) float64 {
	v, ok := args[key]
	if !ok {
		return fallback
	}
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return fallback
		}
		return f
	}
	return fallback
}

func boolean(args map[string]any, key string) bool {
	b, _ := args[key].(bool)
	return b
}

// parseLiens round-trips the structured argument through JSON to reuse the
// engine's lien validation.
func parseLiens(args map[string]any) (keeporsell.Liens, error) {
	v, ok := args["liens"]
	if !ok {
		return nil, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("argument 'liens' is not a lien list: %w", err)
	}
	return keeporsell.ParseLiens(data)
}
