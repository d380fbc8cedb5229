package registry

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/choicegen/internal/ctxlog"
	"github.com/specialistvlad/choicegen/internal/directive"
)

func newTestRegistry(t *testing.T, lines ...string) *Registry {
	t.Helper()
	decls := make([]directive.Declaration, 0, len(lines))
	for i, line := range lines {
		decl := directive.Classify(i+1, line)
		_, bad := decl.(directive.Malformed)
		require.False(t, bad, "test input line %d is malformed", i+1)
		decls = append(decls, decl)
	}
	return FromDeclarations(ctxlog.Discard(context.Background()), decls)
}

func TestFromDeclarations_RedefinitionKeepsPosition(t *testing.T) {
	r := newTestRegistry(t,
		"#define CHOICES_A x",
		"#define CHOICES_B y",
		"#define CHOICES_A z, w",
	)

	lists := r.Lists()
	require.Len(t, lists, 2)
	require.Equal(t, "A", lists[0].Name)
	require.Equal(t, []string{"z", "w"}, lists[0].Options)
	require.Equal(t, "B", lists[1].Name)
}

func TestLookupReturnsCopy(t *testing.T) {
	r := New()
	r.DefineList("Mode", []string{"A", "B"})

	opts, ok := r.Lookup("Mode")
	require.True(t, ok)
	opts[0] = "mutated"

	again, _ := r.Lookup("Mode")
	require.Equal(t, []string{"A", "B"}, again)
	require.True(t, r.Has("Mode"))
	require.False(t, r.Has("Other"))
}

func TestValidate_VisitsReferencedListsOnceInOrder(t *testing.T) {
	r := newTestRegistry(t,
		"#define CHOICES_Unused q",
		"#define CHOICES_Mode A, B",
		"#define CHOICES_Graph Matrix",
		"#define LIST_CHOICES_First Graph, Mode",
		"#define LIST_CHOICES_Second Mode..., Graph",
	)

	var visited []string
	err := r.Validate(ctxlog.Discard(context.Background()), func(l *ChoiceList) error {
		visited = append(visited, l.Name)
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, []string{"Graph", "Mode"}, visited)
}

func TestValidate_UndefinedReference(t *testing.T) {
	r := newTestRegistry(t,
		"#define CHOICES_Mode A, B",
		"#define LIST_CHOICES_Good Mode",
		"#define LIST_CHOICES_Bad Mode, Missing...",
	)

	var visited []string
	err := r.Validate(ctxlog.Discard(context.Background()), func(l *ChoiceList) error {
		visited = append(visited, l.Name)
		return nil
	})
	require.Error(t, err)

	var undef *UndefinedListError
	require.True(t, errors.As(err, &undef))
	require.Equal(t, "Missing", undef.List)
	require.Equal(t, "Bad", undef.Request)
	require.Equal(t, "no definition for CHOICES_Missing found, needed because of LIST_CHOICES_Bad", err.Error())

	// Lists flushed before the failure stay flushed.
	require.Equal(t, []string{"Mode"}, visited)
}

func TestValidate_VisitErrorStopsWalk(t *testing.T) {
	r := newTestRegistry(t,
		"#define CHOICES_A x",
		"#define CHOICES_B y",
		"#define LIST_CHOICES_R A, B",
	)
	sentinel := errors.New("write failed")

	calls := 0
	err := r.Validate(ctxlog.Discard(context.Background()), func(*ChoiceList) error {
		calls++
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)
	require.Equal(t, 1, calls)
}
