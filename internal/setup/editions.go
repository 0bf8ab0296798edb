package setup

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// ParseWimInfo extracts the edition list from DISM /Get-WimInfo output.
// Records arrive as "Index : N" followed by "Name : ...", with other
// detail lines interleaved.
func ParseWimInfo(output string) ([]Edition, error) {
	var editions []Edition
	index := -1
	for _, raw := range strings.Split(output, "\n") {
		line := strings.TrimSpace(strings.TrimRight(raw, "\r"))
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		value = strings.TrimSpace(value)
		switch strings.ToLower(strings.TrimSpace(key)) {
		case "index":
			n, err := strconv.Atoi(value)
			if err != nil {
				return nil, fmt.Errorf("malformed index line %q", line)
			}
			index = n
		case "name":
			if index < 0 {
				continue
			}
			editions = append(editions, Edition{Index: index, Name: value})
			index = -1
		}
	}
	if len(editions) == 0 {
		return nil, errors.New("no editions found in image")
	}
	return editions, nil
}

// PreselectEdition resolves an edition argument against the enumerated
// editions. A bare number matches the DISM index; otherwise the name is
// matched by case-insensitive equality, then prefix, then substring,
// and finally by fuzzy rank.
func PreselectEdition(editions []Edition, query string) (Edition, bool) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" || len(editions) == 0 {
		return Edition{}, false
	}
	if n, err := strconv.Atoi(trimmed); err == nil {
		for _, edition := range editions {
			if edition.Index == n {
				return edition, true
			}
		}
		return Edition{}, false
	}
	lower := strings.ToLower(trimmed)
	for _, edition := range editions {
		if strings.EqualFold(edition.Name, trimmed) {
			return edition, true
		}
	}
	for _, edition := range editions {
		if strings.HasPrefix(strings.ToLower(edition.Name), lower) {
			return edition, true
		}
	}
	for _, edition := range editions {
		if strings.Contains(strings.ToLower(edition.Name), lower) {
			return edition, true
		}
	}
	names := make([]string, len(editions))
	for i, edition := range editions {
		names[i] = edition.Name
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, names)
	if len(ranks) == 0 {
		return Edition{}, false
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance {
			best = rank
			continue
		}
		if rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex {
			best = rank
		}
	}
	if best.OriginalIndex < 0 || best.OriginalIndex >= len(editions) {
		return Edition{}, false
	}
	return editions[best.OriginalIndex], true
}
