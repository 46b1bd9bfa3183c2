package keeporsell

import "testing"

func TestProject(t *testing.T) {
	o := Project(M(18000), M(16000))

	if !o.Rental.FiveYear.Equal(M(90000)) {
		t.Errorf("rental FiveYear = %s, want $90,000.00", o.Rental.FiveYear)
	}
	if !o.Rental.TenYear.Equal(M(180000)) {
		t.Errorf("rental TenYear = %s, want $180,000.00", o.Rental.TenYear)
	}
	if !o.Sell.FiveYear.Equal(M(80000)) {
		t.Errorf("sell FiveYear = %s, want $80,000.00", o.Sell.FiveYear)
	}
	if !o.Sell.TenYear.Equal(M(160000)) {
		t.Errorf("sell TenYear = %s, want $160,000.00", o.Sell.TenYear)
	}
	if !o.FiveYearDiff.Equal(M(10000)) {
		t.Errorf("FiveYearDiff = %s, want $10,000.00", o.FiveYearDiff)
	}
	if !o.TenYearDiff.Equal(M(20000)) {
		t.Errorf("TenYearDiff = %s, want $20,000.00", o.TenYearDiff)
	}
}

func TestProjectFavorsSell(t *testing.T) {
	// Differences are rental minus sell, so a stronger sell shows up negative.
	o := Project(M(10000), M(14000))
	if !o.FiveYearDiff.Equal(M(-20000)) {
		t.Errorf("FiveYearDiff = %s, want -$20,000.00", o.FiveYearDiff)
	}
	if !o.TenYearDiff.Equal(M(-40000)) {
		t.Errorf("TenYearDiff = %s, want -$40,000.00", o.TenYearDiff)
	}
}
