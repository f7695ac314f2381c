// Package equipment defines equipment slots and the items worn in them
package equipment

// Slot represents the slot an item is worn in
type Slot string

// Define all available equipment slots
const (
	SlotBody     Slot = "body"
	SlotFeet     Slot = "feet"
	SlotFinger   Slot = "finger"
	SlotHands    Slot = "hands"
	SlotHead     Slot = "head"
	SlotLegs     Slot = "legs"
	SlotNeck     Slot = "neck"
	SlotMainHand Slot = "mainhand"
	SlotOffHand  Slot = "offhand"
	SlotCharm    Slot = "charm"
)

// String returns the string representation of the slot
func (s Slot) String() string {
	return string(s)
}

// IsValid checks if the slot is valid
func (s Slot) IsValid() bool {
	switch s {
	case SlotBody, SlotFeet, SlotFinger, SlotHands, SlotHead,
		SlotLegs, SlotNeck, SlotMainHand, SlotOffHand, SlotCharm:
		return true
	default:
		return false
	}
}

// AllSlots returns a slice of all valid equipment slots
func AllSlots() []Slot {
	return []Slot{
		SlotBody,
		SlotFeet,
		SlotFinger,
		SlotHands,
		SlotHead,
		SlotLegs,
		SlotNeck,
		SlotMainHand,
		SlotOffHand,
		SlotCharm,
	}
}

// SlotFromString converts a string to a Slot
// Returns the slot and true if valid, empty slot and false if invalid
func SlotFromString(s string) (Slot, bool) {
	slot := Slot(s)
	if slot.IsValid() {
		return slot, true
	}
	return "", false
}

// Item is a piece of equipment. Attributes is free-form: stat bonuses sit next
// to display fields and generator metadata, so readers must type-check values.
type Item struct {
	ID         string
	Name       string
	Slot       Slot
	Attributes map[string]any
}

// NumericValue returns the item's numeric value for key, or 0 when the value
// is absent or not a number.
func (i *Item) NumericValue(key string) float64 {
	if i == nil {
		return 0
	}

	switch v := i.Attributes[key].(type) {
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case float32:
		return float64(v)
	case float64:
		return v
	default:
		return 0
	}
}
