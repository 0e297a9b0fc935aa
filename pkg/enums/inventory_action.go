package enums

import "fmt"

// InventoryAction labels an inventory log entry.
type InventoryAction string

const (
	InventoryActionAdd      InventoryAction = "ADD"
	InventoryActionIncrease InventoryAction = "INCREASE"
	InventoryActionDecrease InventoryAction = "DECREASE"
	InventoryActionUpdate   InventoryAction = "UPDATE"
)

var validInventoryActions = []InventoryAction{
	InventoryActionAdd,
	InventoryActionIncrease,
	InventoryActionDecrease,
	InventoryActionUpdate,
}

// IsValid reports whether the value matches the canonical action set.
func (a InventoryAction) IsValid() bool {
	for _, candidate := range validInventoryActions {
		if candidate == a {
			return true
		}
	}
	return false
}

// ParseInventoryAction converts raw input into InventoryAction.
func ParseInventoryAction(value string) (InventoryAction, error) {
	for _, candidate := range validInventoryActions {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid inventory action %q", value)
}
