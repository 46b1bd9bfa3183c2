package keeporsell

import (
	"errors"
	"strings"
	"testing"
)

func TestLienMonthlyPayment(t *testing.T) {
	cases := []struct {
		name string
		lien Lien
		want float64
	}{
		{"explicit payment wins", Lien{Balance: M(330000), Rate: 2.875, Payment: M(2490)}, 2490},
		{"derived when absent", Lien{Balance: M(300000), Rate: 6}, 1798.65},
		{"zero balance derives zero", Lien{Balance: M(0), Rate: 6}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.lien.MonthlyPayment()
			if !approx(got, tc.want, 0.01) {
				t.Errorf("MonthlyPayment() = %s, want about %.2f", got, tc.want)
			}
		})
	}
}

func TestLiensTotals(t *testing.T) {
	ls := Liens{
		{Balance: M(330000), Rate: 2.875, Kind: "mortgage", Payment: M(2490)},
		{Balance: M(23000), Rate: 9, Kind: "heloc", Payment: M(317)},
	}
	if got := ls.TotalBalance(); !got.Equal(M(353000)) {
		t.Errorf("TotalBalance() = %s, want $353,000.00", got)
	}
	if got := ls.TotalPayment(); !got.Equal(M(2807)) {
		t.Errorf("TotalPayment() = %s, want $2,807.00", got)
	}
}

func TestParseLiens(t *testing.T) {
	t.Run("full list", func(t *testing.T) {
		data := `[
			{"balance": 330000, "rate": 2.875, "type": "mortgage", "monthly_payment": 2490},
			{"balance": 23000, "rate": 9.0, "type": "heloc"}
		]`
		liens, err := ParseLiens([]byte(data))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(liens) != 2 {
			t.Fatalf("got %d liens, want 2", len(liens))
		}
		if liens[0].Kind != "mortgage" || !liens[0].Payment.Equal(M(2490)) {
			t.Errorf("first lien = %+v, want mortgage with explicit $2,490 payment", liens[0])
		}
		if !liens[1].Payment.IsZero() {
			t.Errorf("second lien payment = %s, want none", liens[1].Payment)
		}
	})

	invalid := []struct {
		name string
		data string
	}{
		{"missing balance", `[{"rate": 9.0}]`},
		{"missing rate", `[{"balance": 23000}]`},
		{"negative balance", `[{"balance": -1, "rate": 9.0}]`},
		{"negative rate", `[{"balance": 23000, "rate": -9.0}]`},
		{"not json", `liens: nope`},
	}
	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseLiens([]byte(tc.data))
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("ParseLiens(%q) error = %v, want ErrInvalidInput", tc.data, err)
			}
		})
	}
}

func TestLienMarshalJSON(t *testing.T) {
	l := Lien{Balance: M(23000), Rate: 9, Kind: "heloc", Payment: M(317)}
	got, err := l.MarshalJSON()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `{"balance":23000,"rate":9,"type":"heloc","monthly_payment":317}`
	if string(got) != want {
		t.Errorf("got %s, want %s", got, want)
	}

	// A lien without an explicit payment omits the field entirely.
	bare := Lien{Balance: M(100000), Rate: 3}
	got, err = bare.MarshalJSON()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(string(got), "monthly_payment") {
		t.Errorf("bare lien marshals payment: %s", got)
	}
}
