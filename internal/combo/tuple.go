package combo

import (
	"strings"

	"github.com/specialistvlad/choicegen/internal/directive"
)

// SubsetSeparator joins the elements of a variadic value in its flat string
// form.
const SubsetSeparator = "+"

// Value is the value one slot takes in a tuple: a single label for a fixed
// slot, an ordered subset of the list for a variadic slot.
type Value struct {
	Label    string
	Items    []string
	Variadic bool
}

// Fixed creates the value of a fixed slot.
func Fixed(label string) Value {
	return Value{Label: label}
}

// Subset creates the value of a variadic slot.
func Subset(items ...string) Value {
	return Value{Items: append([]string{}, items...), Variadic: true}
}

// String returns the label, or the subset elements joined with
// SubsetSeparator.
func (v Value) String() string {
	if v.Variadic {
		return strings.Join(v.Items, SubsetSeparator)
	}
	return v.Label
}

// Tuple is one concrete assignment of values to every slot of a request.
type Tuple struct {
	Request string
	Slots   []directive.SlotRef
	Values  []Value
}

// Lookup returns the value of the first slot bound to the named list.
func (t Tuple) Lookup(list string) (Value, bool) {
	for i, slot := range t.Slots {
		if slot.List == list {
			return t.Values[i], true
		}
	}
	return Value{}, false
}

// Strings returns the flat string form of every value, in slot order.
func (t Tuple) Strings() []string {
	out := make([]string, len(t.Values))
	for i, v := range t.Values {
		out[i] = v.String()
	}
	return out
}
