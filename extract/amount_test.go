package extract

import "testing"

func TestAmountPrefersLabeledTotal(t *testing.T) {
	text := "Idli 40.00\nDosa 815.00\nTOTAL: ₹649.00\nPhone 98,76,54321"
	got, ok := Amount(text)
	if !ok || got != 649.00 {
		t.Fatalf("Amount() = %f, %v; want 649.00", got, ok)
	}
}

func TestAmountSpecificLabelsOutrankBareTotal(t *testing.T) {
	text := "Total: 100.00\nGrand Total: 118.00"
	got, ok := Amount(text)
	if !ok || got != 118.00 {
		t.Fatalf("Amount() = %f, %v; want 118.00", got, ok)
	}
}

func TestAmountFallsBackToLargestNumber(t *testing.T) {
	text := "Idli 40.00\nVada 35.00\nCoffee 120.50"
	got, ok := Amount(text)
	if !ok || got != 120.50 {
		t.Fatalf("Amount() = %f, %v; want 120.50", got, ok)
	}
}

func TestAmountParsesThousandsSeparators(t *testing.T) {
	got, ok := Amount("Amount Payable: ₹ 1,234.56")
	if !ok || got != 1234.56 {
		t.Fatalf("Amount() = %f, %v; want 1234.56", got, ok)
	}
}

func TestAmountNothingParses(t *testing.T) {
	if _, ok := Amount("no numbers here"); ok {
		t.Fatalf("expected no amount")
	}
}

func TestAmountIsIdempotent(t *testing.T) {
	text := "Snacks 99.00\nTotal 250.00"
	first, ok1 := Amount(text)
	second, ok2 := Amount(text)
	if ok1 != ok2 || first != second {
		t.Fatalf("Amount() not stable: %f vs %f", first, second)
	}
}
