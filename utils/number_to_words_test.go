package utils

import "testing"

func TestNumberToWords(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{0, ""},
		{7, "Seven"},
		{13, "Thirteen"},
		{42, "Forty Two"},
		{100, "One Hundred"},
		{215, "Two Hundred Fifteen"},
		{1000, "One Thousand"},
		{2500, "Two Thousand Five Hundred"},
		{1000000, "One Million"},
		{3200500, "Three Million Two Hundred Thousand Five Hundred"},
		{1000000000, "One Billion"},
	}
	for _, tc := range cases {
		if got := NumberToWords(tc.in); got != tc.want {
			t.Errorf("NumberToWords(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNumberToCurrencyWords(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "Zero Dollars Only"},
		{3000, "Three Thousand Dollars Only"},
		{1234.50, "One Thousand Two Hundred Thirty Four Dollars and Fifty Cents Only"},
		{0.99, "Ninety Nine Cents Only"},
	}
	for _, tc := range cases {
		if got := NumberToCurrencyWords(tc.in); got != tc.want {
			t.Errorf("NumberToCurrencyWords(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
