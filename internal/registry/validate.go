package registry

import (
	"context"
	"fmt"

	"github.com/specialistvlad/choicegen/internal/ctxlog"
	"github.com/specialistvlad/choicegen/internal/directive"
)

// UndefinedListError reports a slot that names a list which was never
// declared.
type UndefinedListError struct {
	List    string
	Request string
}

func (e *UndefinedListError) Error() string {
	return fmt.Sprintf("no definition for %s%s found, needed because of %s%s",
		directive.ListPrefix, e.List, directive.RequestPrefix, e.Request)
}

// Validate checks every slot of every request, in declaration order. visit
// is called once per referenced list, at its first reference, before any
// later slot is checked; the first undefined reference stops the walk with
// an *UndefinedListError. Lists never referenced are not visited.
func (r *Registry) Validate(ctx context.Context, visit func(*ChoiceList) error) error {
	logger := ctxlog.FromContext(ctx)
	seen := make(map[string]struct{})

	for _, req := range r.Requests() {
		for _, slot := range req.Slots {
			if _, ok := seen[slot.List]; ok {
				continue
			}
			list, ok := r.lists[slot.List]
			if !ok {
				return &UndefinedListError{List: slot.List, Request: req.Name}
			}
			seen[slot.List] = struct{}{}
			if visit != nil {
				if err := visit(list); err != nil {
					return err
				}
			}
		}
	}

	logger.Debug("Registry validation passed.", "referenced_lists", len(seen))
	return nil
}
