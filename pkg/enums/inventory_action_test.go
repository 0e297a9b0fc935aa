package enums

import "testing"

func TestInventoryActionIsValid(t *testing.T) {
	for _, action := range []InventoryAction{
		InventoryActionAdd,
		InventoryActionIncrease,
		InventoryActionDecrease,
		InventoryActionUpdate,
	} {
		if !action.IsValid() {
			t.Fatalf("%s should be valid", action)
		}
	}
	if InventoryAction("RESTOCK").IsValid() {
		t.Fatal("unknown action should be invalid")
	}
}

func TestParseInventoryAction(t *testing.T) {
	got, err := ParseInventoryAction("DECREASE")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got != InventoryActionDecrease {
		t.Fatalf("unexpected action %s", got)
	}
	if _, err := ParseInventoryAction("decrease"); err == nil {
		t.Fatal("actions are case sensitive")
	}
}
