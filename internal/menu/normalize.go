package menu

import (
	"fmt"
	"sort"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// InvokeMarker prefixes mapping values whose command output feeds a
// nested menu instead of running as a final action.
const InvokeMarker = "@"

// Mapping is an insertion-ordered label→action table. Plain Go maps
// shuffle their keys between runs, so menu definitions build mappings
// with NewMapping and Set to keep rows where the caller put them.
type Mapping = orderedmap.OrderedMap[string, any]

// NewMapping returns an empty ordered mapping ready for Set calls.
func NewMapping() *Mapping {
	return orderedmap.New[string, any]()
}

// Normalize turns menu input into a uniform entry list. Accepted shapes
// are a single label, a list of labels, and an ordered label→action
// mapping whose values may nest further mappings. Anything else fails
// with ErrUnsupportedEntries before a single row is drawn.
func Normalize(input any) ([]Entry, error) {
	switch v := input.(type) {
	case string:
		entry, err := labelEntry(v)
		if err != nil {
			return nil, err
		}
		return []Entry{entry}, nil
	case []string:
		entries := make([]Entry, 0, len(v))
		for _, label := range v {
			entry, err := labelEntry(label)
			if err != nil {
				return nil, err
			}
			entries = append(entries, entry)
		}
		return entries, nil
	case *Mapping:
		if v == nil {
			return nil, fmt.Errorf("%w: nil mapping", ErrUnsupportedEntries)
		}
		return normalizeMapping(v)
	case nil:
		return nil, fmt.Errorf("%w: nil input", ErrUnsupportedEntries)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedEntries, input)
	}
}

func labelEntry(label string) (Entry, error) {
	if label == "" {
		return Entry{}, fmt.Errorf("%w: empty label", ErrUnsupportedEntries)
	}
	return Entry{Label: label}, nil
}

func normalizeMapping(m *Mapping) ([]Entry, error) {
	entries := make([]Entry, 0, m.Len())
	for pair := m.Oldest(); pair != nil; pair = pair.Next() {
		entry, err := labelEntry(pair.Key)
		if err != nil {
			return nil, err
		}
		action, err := classify(pair.Key, pair.Value)
		if err != nil {
			return nil, err
		}
		entry.Action = action
		entries = append(entries, entry)
	}
	return entries, nil
}

// classify maps one mapping value onto an action: empty values leave the
// entry terminal, strings become commands (the InvokeMarker prefix
// routes the command output into a nested menu), nested mappings become
// sub-menus.
func classify(label string, value any) (Action, error) {
	switch v := value.(type) {
	case nil:
		return Action{Kind: KindNone}, nil
	case string:
		if v == "" {
			return Action{Kind: KindNone}, nil
		}
		if strings.HasPrefix(v, InvokeMarker) {
			return Action{Kind: KindInvoke, Command: strings.TrimPrefix(v, InvokeMarker)}, nil
		}
		return Action{Kind: KindCommand, Command: v}, nil
	case *Mapping:
		nested, err := normalizeMapping(v)
		if err != nil {
			return Action{}, err
		}
		return Action{Kind: KindNested, Entries: nested}, nil
	default:
		return Action{}, fmt.Errorf("%w: value for %q is %T", ErrUnsupportedEntries, label, value)
	}
}

// SortEntries orders entries by label, case-sensitive, keeping the
// original relative order of equal labels.
func SortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Label < entries[j].Label
	})
}
