package extract

import (
	"reflect"
	"testing"
)

func TestLineItemsQuantityPrefix(t *testing.T) {
	got := LineItems("2 x Idli 40.00")
	want := []LineItem{{Name: "Idli", Amount: 40.00, Quantity: 2}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("LineItems() = %+v, want %+v", got, want)
	}
}

func TestLineItemsQuantitySuffix(t *testing.T) {
	got := LineItems("Vada x3 105.00")
	want := []LineItem{{Name: "Vada", Amount: 105.00, Quantity: 3}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("LineItems() = %+v, want %+v", got, want)
	}
}

func TestLineItemsDefaultsQuantityToOne(t *testing.T) {
	got := LineItems("Filter Coffee 35.00")
	want := []LineItem{{Name: "Filter Coffee", Amount: 35.00, Quantity: 1}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("LineItems() = %+v, want %+v", got, want)
	}
}

func TestLineItemsSkipSummaryLines(t *testing.T) {
	text := "Idli 40.00\nSubtotal 40.00\nGST 5% 2.00\nTotal 42.00"
	got := LineItems(text)
	want := []LineItem{{Name: "Idli", Amount: 40.00, Quantity: 1}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("LineItems() = %+v, want %+v", got, want)
	}
}

func TestLineItemsCurrencyGlyphAmount(t *testing.T) {
	got := LineItems("Masala Dosa ₹65.00 served hot")
	want := []LineItem{{Name: "Masala Dosa", Amount: 65.00, Quantity: 1}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("LineItems() = %+v, want %+v", got, want)
	}
}

func TestLineItemsPreserveSourceOrder(t *testing.T) {
	text := "Zebra Cake 90.00\nApple Pie 45.00"
	got := LineItems(text)
	if len(got) != 2 || got[0].Name != "Zebra Cake" || got[1].Name != "Apple Pie" {
		t.Fatalf("unexpected order: %+v", got)
	}
}

func TestLineItemsDropNamelessEntries(t *testing.T) {
	if got := LineItems("499.00"); got != nil {
		t.Fatalf("expected no items, got %+v", got)
	}
}
