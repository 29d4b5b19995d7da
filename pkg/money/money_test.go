package money

import (
	"testing"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Currency
// ---------------------------------------------------------------------------

func TestNewCurrency_Valid(t *testing.T) {
	tests := []string{"GBP", "EUR", "USD", "JPY", "CHF"}
	for _, code := range tests {
		c, err := NewCurrency(code)
		if err != nil {
			t.Errorf("NewCurrency(%q) unexpected error: %v", code, err)
		}
		if c.Code() != code {
			t.Errorf("NewCurrency(%q).Code() = %q, want %q", code, c.Code(), code)
		}
	}
}

func TestNewCurrency_Invalid(t *testing.T) {
	tests := []struct {
		name string
		code string
	}{
		{"empty", ""},
		{"lowercase", "gbp"},
		{"mixed case", "Gbp"},
		{"too short", "GB"},
		{"too long", "GBPP"},
		{"digits", "GB1"},
		{"special chars", "G£P"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCurrency(tt.code)
			if err == nil {
				t.Errorf("NewCurrency(%q) expected error, got nil", tt.code)
			}
		})
	}
}

func TestMustCurrency_Panics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("MustCurrency(\"bad\") did not panic")
		}
	}()
	MustCurrency("bad")
}

// ---------------------------------------------------------------------------
// Construction
// ---------------------------------------------------------------------------

func TestNewFromString_Valid(t *testing.T) {
	tests := []struct {
		amount   string
		currency string
		want     string
	}{
		{"100", "GBP", "100.00 GBP"},
		{"0", "EUR", "0.00 EUR"},
		{"-50.5", "GBP", "-50.50 GBP"},
		{"66.67", "GBP", "66.67 GBP"},
	}
	for _, tt := range tests {
		m, err := NewFromString(tt.amount, tt.currency)
		if err != nil {
			t.Errorf("NewFromString(%q, %q) unexpected error: %v", tt.amount, tt.currency, err)
			continue
		}
		if got := m.String(); got != tt.want {
			t.Errorf("NewFromString(%q, %q).String() = %q, want %q", tt.amount, tt.currency, got, tt.want)
		}
	}
}

func TestNewFromString_InvalidAmount(t *testing.T) {
	_, err := NewFromString("not-a-number", "GBP")
	if err == nil {
		t.Error("NewFromString with invalid amount expected error, got nil")
	}
}

func TestNewFromString_InvalidCurrency(t *testing.T) {
	_, err := NewFromString("100", "bad")
	if err == nil {
		t.Error("NewFromString with invalid currency expected error, got nil")
	}
}

func TestZero(t *testing.T) {
	z := Zero(GBP)
	if !z.IsZero() {
		t.Error("Zero(GBP).IsZero() = false, want true")
	}
	if z.Currency() != GBP {
		t.Errorf("Zero(GBP).Currency() = %v, want GBP", z.Currency())
	}
}

// ---------------------------------------------------------------------------
// Arithmetic
// ---------------------------------------------------------------------------

func TestAdd(t *testing.T) {
	a := New(decimal.NewFromInt(100), GBP)
	b := New(decimal.RequireFromString("66.67"), GBP)

	sum, err := a.Add(b)
	if err != nil {
		t.Fatalf("Add unexpected error: %v", err)
	}
	if got := sum.String(); got != "166.67 GBP" {
		t.Errorf("Add = %q, want %q", got, "166.67 GBP")
	}
}

func TestAdd_CurrencyMismatch(t *testing.T) {
	a := New(decimal.NewFromInt(100), GBP)
	b := New(decimal.NewFromInt(100), EUR)

	if _, err := a.Add(b); err == nil {
		t.Error("Add across currencies expected error, got nil")
	}
}

func TestSubtract(t *testing.T) {
	price := New(decimal.NewFromInt(2400), GBP)
	deposit := New(decimal.NewFromInt(1200), GBP)

	loan, err := price.Subtract(deposit)
	if err != nil {
		t.Fatalf("Subtract unexpected error: %v", err)
	}
	if got := loan.String(); got != "1200.00 GBP" {
		t.Errorf("Subtract = %q, want %q", got, "1200.00 GBP")
	}
}

func TestSubtract_CurrencyMismatch(t *testing.T) {
	a := New(decimal.NewFromInt(100), GBP)
	b := New(decimal.NewFromInt(10), USD)

	if _, err := a.Subtract(b); err == nil {
		t.Error("Subtract across currencies expected error, got nil")
	}
}

// ---------------------------------------------------------------------------
// DivideEvenly
// ---------------------------------------------------------------------------

func TestDivideEvenly_ExactSplit(t *testing.T) {
	total := New(decimal.NewFromInt(1200), GBP)

	parts, err := total.DivideEvenly(12)
	if err != nil {
		t.Fatalf("DivideEvenly unexpected error: %v", err)
	}
	if len(parts) != 12 {
		t.Fatalf("DivideEvenly returned %d parts, want 12", len(parts))
	}
	for i, p := range parts {
		if got := p.String(); got != "100.00 GBP" {
			t.Errorf("parts[%d] = %q, want %q", i, got, "100.00 GBP")
		}
	}
}

func TestDivideEvenly_RemainderGoesToFinalPart(t *testing.T) {
	total := New(decimal.NewFromInt(800), GBP)

	parts, err := total.DivideEvenly(12)
	if err != nil {
		t.Fatalf("DivideEvenly unexpected error: %v", err)
	}
	for i := 0; i < 11; i++ {
		if got := parts[i].String(); got != "66.67 GBP" {
			t.Errorf("parts[%d] = %q, want %q", i, got, "66.67 GBP")
		}
	}
	if got := parts[11].String(); got != "66.63 GBP" {
		t.Errorf("final part = %q, want %q", got, "66.63 GBP")
	}
}

func TestDivideEvenly_PartsSumToTotal(t *testing.T) {
	amounts := []string{"800", "1200", "999.99", "0.01", "0", "15000.37"}
	terms := []int{12, 24, 36}

	for _, amount := range amounts {
		for _, n := range terms {
			total, err := NewFromString(amount, "GBP")
			if err != nil {
				t.Fatalf("NewFromString(%q): %v", amount, err)
			}

			parts, err := total.DivideEvenly(n)
			if err != nil {
				t.Fatalf("DivideEvenly(%s, %d): %v", amount, n, err)
			}
			if len(parts) != n {
				t.Fatalf("DivideEvenly(%s, %d) returned %d parts", amount, n, len(parts))
			}

			sum := Zero(GBP)
			for _, p := range parts {
				sum, err = sum.Add(p)
				if err != nil {
					t.Fatalf("summing parts: %v", err)
				}
			}
			if !sum.Equal(total) {
				t.Errorf("DivideEvenly(%s, %d): parts sum to %s, want %s", amount, n, sum, total)
			}
		}
	}
}

func TestDivideEvenly_FinalPartIsTotalMinusBaseParts(t *testing.T) {
	total := New(decimal.RequireFromString("1000.01"), GBP)

	parts, err := total.DivideEvenly(24)
	if err != nil {
		t.Fatalf("DivideEvenly unexpected error: %v", err)
	}

	base := parts[0]
	for i := 1; i < 23; i++ {
		if !parts[i].Equal(base) {
			t.Errorf("parts[%d] = %s, want %s (all non-final parts equal)", i, parts[i], base)
		}
	}

	expectedFinal, err := total.Subtract(base.Multiply(decimal.NewFromInt(23)))
	if err != nil {
		t.Fatalf("Subtract: %v", err)
	}
	if !parts[23].Equal(expectedFinal) {
		t.Errorf("final part = %s, want %s", parts[23], expectedFinal)
	}
}

func TestDivideEvenly_InvalidParts(t *testing.T) {
	total := New(decimal.NewFromInt(100), GBP)

	for _, n := range []int{0, -1, -12} {
		if _, err := total.DivideEvenly(n); err == nil {
			t.Errorf("DivideEvenly(%d) expected error, got nil", n)
		}
	}
}

func TestDivideEvenly_SinglePart(t *testing.T) {
	total := New(decimal.RequireFromString("123.45"), GBP)

	parts, err := total.DivideEvenly(1)
	if err != nil {
		t.Fatalf("DivideEvenly unexpected error: %v", err)
	}
	if len(parts) != 1 || !parts[0].Equal(total) {
		t.Errorf("DivideEvenly(1) = %v, want [%s]", parts, total)
	}
}
