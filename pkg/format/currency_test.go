package format

import "testing"

func TestCurrency(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{"Zero", 0, "$0"},
		{"Small amount", 60.000004, "$60"},
		{"Thousands grouping", 67004.56, "$67,005"},
		{"Millions grouping", 1234567.89, "$1,234,568"},
		{"Negative amount", -97574.10, "-$97,574"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Currency(tt.input)
			if result != tt.expected {
				t.Errorf("Currency(%v) = %q, expected %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{"Zero", 0, "0.00"},
		{"Two decimals kept", 29155.078125, "29155.08"},
		{"Negative", -1234.5, "-1234.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Amount(tt.input)
			if result != tt.expected {
				t.Errorf("Amount(%v) = %q, expected %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGrouped(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{"Impression threshold", 2000000, "2,000,000"},
		{"Under a thousand", 500, "500"},
		{"Zero", 0, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Grouped(tt.input)
			if result != tt.expected {
				t.Errorf("Grouped(%v) = %q, expected %q", tt.input, result, tt.expected)
			}
		})
	}
}
