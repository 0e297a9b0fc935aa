package inventory

import (
	"testing"

	"github.com/ravikiranj/stocktrail-backend/pkg/enums"
	pkgerrors "github.com/ravikiranj/stocktrail-backend/pkg/errors"
)

func intPtr(v int) *int { return &v }

func TestNormalizeActionDefaultsToUpdate(t *testing.T) {
	for _, raw := range []string{"", "  "} {
		action, err := normalizeAction(raw)
		if err != nil {
			t.Fatalf("normalize %q: %v", raw, err)
		}
		if action != enums.InventoryActionUpdate {
			t.Fatalf("normalize %q: got %s, want UPDATE", raw, action)
		}
	}
}

func TestNormalizeActionRejectsAdd(t *testing.T) {
	_, err := normalizeAction("ADD")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestNormalizeActionRejectsUnknown(t *testing.T) {
	_, err := normalizeAction("RESTOCK")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestResolveChangeIncrease(t *testing.T) {
	change, next, err := resolveChange(enums.InventoryActionIncrease, 10, 5, nil)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if change != 5 || next != 15 {
		t.Fatalf("got change=%d next=%d", change, next)
	}
}

func TestResolveChangeIncreaseRejectsNonPositive(t *testing.T) {
	for _, delta := range []int{0, -3} {
		_, _, err := resolveChange(enums.InventoryActionIncrease, 10, delta, nil)
		typed := pkgerrors.As(err)
		if typed == nil || typed.Code() != pkgerrors.CodeValidation {
			t.Fatalf("delta %d: expected validation error, got %v", delta, err)
		}
	}
}

func TestResolveChangeDecrease(t *testing.T) {
	change, next, err := resolveChange(enums.InventoryActionDecrease, 10, -4, nil)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if change != -4 || next != 6 {
		t.Fatalf("got change=%d next=%d", change, next)
	}
}

func TestResolveChangeDecreaseRejectsNonNegative(t *testing.T) {
	for _, delta := range []int{0, 2} {
		_, _, err := resolveChange(enums.InventoryActionDecrease, 10, delta, nil)
		typed := pkgerrors.As(err)
		if typed == nil || typed.Code() != pkgerrors.CodeValidation {
			t.Fatalf("delta %d: expected validation error, got %v", delta, err)
		}
	}
}

func TestResolveChangeBlocksNegativeStock(t *testing.T) {
	_, _, err := resolveChange(enums.InventoryActionDecrease, 3, -5, nil)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	details, ok := typed.Details().(map[string]int)
	if !ok || details["current_quantity"] != 3 {
		t.Fatalf("expected current quantity in details, got %v", typed.Details())
	}
}

func TestResolveChangeIncreaseFromNewQuantity(t *testing.T) {
	change, next, err := resolveChange(enums.InventoryActionIncrease, 10, 0, intPtr(16))
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if change != 6 || next != 16 {
		t.Fatalf("got change=%d next=%d", change, next)
	}
}

func TestResolveChangeDecreaseFromNewQuantity(t *testing.T) {
	change, next, err := resolveChange(enums.InventoryActionDecrease, 10, 0, intPtr(3))
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if change != -7 || next != 3 {
		t.Fatalf("got change=%d next=%d", change, next)
	}
}

func TestResolveChangeIncreaseNewQuantityBelowCurrent(t *testing.T) {
	_, _, err := resolveChange(enums.InventoryActionIncrease, 10, 0, intPtr(4))
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestResolveChangeRejectsConflictingInputs(t *testing.T) {
	_, _, err := resolveChange(enums.InventoryActionIncrease, 10, 2, intPtr(16))
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestResolveChangeAgreeingInputs(t *testing.T) {
	change, next, err := resolveChange(enums.InventoryActionIncrease, 10, 6, intPtr(16))
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if change != 6 || next != 16 {
		t.Fatalf("got change=%d next=%d", change, next)
	}
}

func TestResolveChangeUpdateDerivesDelta(t *testing.T) {
	change, next, err := resolveChange(enums.InventoryActionUpdate, 10, 0, intPtr(4))
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if change != -6 || next != 4 {
		t.Fatalf("got change=%d next=%d", change, next)
	}
}

func TestResolveChangeUpdateAllowsZeroDelta(t *testing.T) {
	change, next, err := resolveChange(enums.InventoryActionUpdate, 7, 0, intPtr(7))
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if change != 0 || next != 7 {
		t.Fatalf("got change=%d next=%d", change, next)
	}
}

func TestResolveChangeUpdateRequiresTarget(t *testing.T) {
	_, _, err := resolveChange(enums.InventoryActionUpdate, 7, 0, nil)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}

	_, _, err = resolveChange(enums.InventoryActionUpdate, 7, 0, intPtr(-1))
	typed = pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for negative target, got %v", err)
	}
}
