package combo

import (
	"fmt"

	"github.com/specialistvlad/choicegen/internal/registry"
)

// Lookuper resolves a choice list name to its options.
type Lookuper interface {
	Lookup(name string) ([]string, bool)
}

// PowerSet returns every subset of options ordered by size, then by the
// order of options (lexicographic over positions). The empty subset comes
// first, so an empty list yields exactly one element.
func PowerSet(options []string) [][]string {
	n := len(options)
	out := make([][]string, 0, 1<<n)
	for k := 0; k <= n; k++ {
		idx := make([]int, k)
		for i := range idx {
			idx[i] = i
		}
		for {
			subset := make([]string, k)
			for i, j := range idx {
				subset[i] = options[j]
			}
			out = append(out, subset)

			// Advance the rightmost index that still has room.
			i := k - 1
			for i >= 0 && idx[i] == n-k+i {
				i--
			}
			if i < 0 {
				break
			}
			idx[i]++
			for j := i + 1; j < k; j++ {
				idx[j] = idx[j-1] + 1
			}
		}
	}
	return out
}

// Axes resolves every slot of req to the list of values it can take.
func Axes(req *registry.Request, lists Lookuper) ([][]Value, error) {
	axes := make([][]Value, len(req.Slots))
	for i, slot := range req.Slots {
		options, ok := lists.Lookup(slot.List)
		if !ok {
			return nil, &registry.UndefinedListError{List: slot.List, Request: req.Name}
		}
		if slot.Variadic {
			subsets := PowerSet(options)
			axes[i] = make([]Value, len(subsets))
			for j, s := range subsets {
				axes[i][j] = Subset(s...)
			}
			continue
		}
		axes[i] = make([]Value, len(options))
		for j, o := range options {
			axes[i][j] = Fixed(o)
		}
	}
	return axes, nil
}

// Count returns the number of tuples Enumerate would produce.
func Count(req *registry.Request, lists Lookuper) (int, error) {
	axes, err := Axes(req, lists)
	if err != nil {
		return 0, err
	}
	total := 1
	for _, axis := range axes {
		total *= len(axis)
	}
	return total, nil
}

// Each calls fn for every tuple of req in enumeration order. Iteration stops
// at the first error returned by fn.
func Each(req *registry.Request, lists Lookuper, fn func(Tuple) error) error {
	axes, err := Axes(req, lists)
	if err != nil {
		return err
	}
	for _, axis := range axes {
		if len(axis) == 0 {
			return nil
		}
	}

	pos := make([]int, len(axes))
	for {
		values := make([]Value, len(axes))
		for i, p := range pos {
			values[i] = axes[i][p]
		}
		if err := fn(Tuple{Request: req.Name, Slots: req.Slots, Values: values}); err != nil {
			return err
		}

		// Odometer step: the last slot varies fastest.
		i := len(pos) - 1
		for ; i >= 0; i-- {
			pos[i]++
			if pos[i] < len(axes[i]) {
				break
			}
			pos[i] = 0
		}
		if i < 0 {
			return nil
		}
	}
}

// Enumerate returns every tuple of req in enumeration order.
func Enumerate(req *registry.Request, lists Lookuper) ([]Tuple, error) {
	var out []Tuple
	err := Each(req, lists, func(t Tuple) error {
		out = append(out, t)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("enumerating request %q: %w", req.Name, err)
	}
	return out, nil
}
