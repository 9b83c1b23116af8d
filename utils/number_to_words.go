package utils

import (
	"fmt"
	"math"
	"strings"
)

var ones = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen",
	"Sixteen", "Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

func NumberToWords(num int) string {
	switch {
	case num == 0:
		return ""
	case num < 20:
		return ones[num]
	case num < 100:
		return strings.TrimSpace(tens[num/10] + " " + ones[num%10])
	case num < 1000:
		remainder := num % 100
		if remainder == 0 {
			return ones[num/100] + " Hundred"
		}
		return ones[num/100] + " Hundred " + NumberToWords(remainder)
	case num < 1000000:
		remainder := num % 1000
		if remainder == 0 {
			return NumberToWords(num/1000) + " Thousand"
		}
		return NumberToWords(num/1000) + " Thousand " + NumberToWords(remainder)
	case num < 1000000000:
		remainder := num % 1000000
		if remainder == 0 {
			return NumberToWords(num/1000000) + " Million"
		}
		return NumberToWords(num/1000000) + " Million " + NumberToWords(remainder)
	default:
		remainder := num % 1000000000
		if remainder == 0 {
			return NumberToWords(num/1000000000) + " Billion"
		}
		return NumberToWords(num/1000000000) + " Billion " + NumberToWords(remainder)
	}
}

// NumberToCurrencyWords spells out a declared value for the bill of lading.
func NumberToCurrencyWords(amount float64) string {
	dollars := int(math.Floor(amount))
	cents := int(math.Round((amount - float64(dollars)) * 100))

	var parts []string

	if dollars > 0 {
		parts = append(parts, fmt.Sprintf("%s Dollars", strings.TrimSpace(NumberToWords(dollars))))
	}
	if cents > 0 {
		parts = append(parts, fmt.Sprintf("%s Cents", strings.TrimSpace(NumberToWords(cents))))
	}

	if len(parts) == 0 {
		return "Zero Dollars Only"
	}

	return strings.Join(parts, " and ") + " Only"
}
