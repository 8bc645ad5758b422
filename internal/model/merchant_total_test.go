package model

import (
	"testing"
)

func TestMerchantTotals_TopN(t *testing.T) {
	totals := MerchantTotals{
		{Merchant: "Swiggy", Amount: 350},
		{Merchant: "Amazon", Amount: 400},
		{Merchant: "Uber", Amount: 350},
		{Merchant: "Chaayos", Amount: 90},
	}

	top := totals.TopN(3)

	if len(top) != 3 {
		t.Fatalf("TopN(3) returned %d entries, want 3", len(top))
	}
	if top[0].Merchant != "Amazon" {
		t.Errorf("top[0] = %q, want Amazon", top[0].Merchant)
	}
	// Stable sort: Swiggy appeared before Uber, both at 350.
	if top[1].Merchant != "Swiggy" || top[2].Merchant != "Uber" {
		t.Errorf("tie order = %q, %q, want Swiggy, Uber", top[1].Merchant, top[2].Merchant)
	}
	for i := 1; i < len(top); i++ {
		if top[i-1].Amount < top[i].Amount {
			t.Errorf("totals not in descending order at %d: %v < %v", i, top[i-1].Amount, top[i].Amount)
		}
	}
}

func TestMerchantTotals_TopN_Bounds(t *testing.T) {
	totals := MerchantTotals{
		{Merchant: "Swiggy", Amount: 100},
	}

	if got := totals.TopN(10); len(got) != 1 {
		t.Errorf("TopN larger than slice should return all entries, got %d", len(got))
	}
	if got := totals.TopN(0); len(got) != 0 {
		t.Errorf("TopN(0) should be empty, got %d", len(got))
	}
	if got := totals.TopN(-1); len(got) != 0 {
		t.Errorf("TopN(-1) should be empty, got %d", len(got))
	}

	var empty MerchantTotals
	if got := empty.TopN(10); len(got) != 0 {
		t.Errorf("TopN on empty should be empty, got %d", len(got))
	}
}

func TestTransactionType_Valid(t *testing.T) {
	if !TypeDebit.Valid() || !TypeCredit.Valid() {
		t.Error("debit and credit must be valid types")
	}
	if TransactionType("transfer").Valid() {
		t.Error("unknown type must not be valid")
	}
}

func TestTransaction_AmountValue(t *testing.T) {
	v := 42.5
	withAmount := Transaction{Amount: &v}
	if got := withAmount.AmountValue(); got != 42.5 {
		t.Errorf("AmountValue() = %v, want 42.5", got)
	}

	withoutAmount := Transaction{}
	if got := withoutAmount.AmountValue(); got != 0 {
		t.Errorf("absent amount must contribute 0, got %v", got)
	}
}
