package decimal

import (
	"testing"

	stddec "github.com/shopspring/decimal"
)

func TestConstructors(t *testing.T) {
	d := stddec.NewFromFloat(10.125)
	m2 := NewMoneyFromDecimal(d)
	if !m2.Decimal.Equal(d) {
		t.Fatalf("NewMoneyFromDecimal mismatch: got %s want %s", m2.Decimal, d)
	}
	if m2.String() != "10.13" { // rounded for display
		t.Fatalf("display mismatch: got %s", m2.String())
	}
}

func TestNewMoneyFromString(t *testing.T) {
	cases := []struct{ in, out string }{
		{"123.45", "123.45"},
		{"60000", "60000.00"},
		{"1,250.5", "1250.50"},
		{"$90,000", "90000.00"},
		{" 1_000 ", "1000.00"},
		{"-42", "-42.00"},
	}
	for _, c := range cases {
		m, err := NewMoneyFromString(c.in)
		if err != nil {
			t.Fatalf("NewMoneyFromString(%q) unexpected error: %v", c.in, err)
		}
		if got := m.String(); got != c.out {
			t.Fatalf("NewMoneyFromString(%q) got %s want %s", c.in, got, c.out)
		}
	}

	if _, err := NewMoneyFromString("not-a-number"); err == nil {
		t.Fatalf("expected error for invalid string")
	}
}

func TestRounding(t *testing.T) {
	cases := []struct{ in, out string }{
		{"2.344", "2.34"},
		{"2.345", "2.35"},
		{"2.355", "2.36"},
		{"2.365", "2.37"}, // shopspring/decimal Round(2) rounds half away from zero
	}
	for _, c := range cases {
		m, _ := NewMoneyFromString(c.in)
		got := m.Round().String()
		if got != c.out {
			t.Fatalf("round(%s) got %s want %s", c.in, got, c.out)
		}
	}
}

func TestArithmetic(t *testing.T) {
	a := NewMoneyFromDecimal(stddec.NewFromInt(100))
	b := NewMoneyFromDecimal(stddec.NewFromFloat(30.25))
	if got := a.Add(b).String(); got != "130.25" {
		t.Fatalf("Add got %s", got)
	}
	if got := b.Sub(a).String(); got != "-69.75" {
		t.Fatalf("Sub got %s", got)
	}
	if !b.Sub(a).IsNegative() {
		t.Fatalf("expected negative difference")
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		in  float64
		out string
	}{
		{0, "$0.00"},
		{12.5, "$12.50"},
		{999.999, "$1,000.00"},
		{1234.5, "$1,234.50"},
		{1941295.3226044397, "$1,941,295.32"},
		{-25506.89910100748, "-$25,506.90"},
		{-0.001, "$0.00"},
		{123456789, "$123,456,789.00"},
	}
	for _, c := range cases {
		if got := NewMoneyFromDecimal(stddec.NewFromFloat(c.in)).Format(); got != c.out {
			t.Fatalf("Format(%v) got %s want %s", c.in, got, c.out)
		}
	}
}
