package extract

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseGroupNames reads the group names from a dictionary list file.
// A group header is a line of the form "GroupName:" with no path
// component; blank lines and "#" comments are ignored, duplicates kept
// once in first-seen order.
func ParseGroupNames(r io.Reader) ([]string, error) {
	var names []string

	seen := make(map[string]struct{})
	sc := bufio.NewScanner(r)

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !strings.HasSuffix(line, ":") || strings.Contains(line, "/") {
			continue
		}

		name := strings.TrimSpace(strings.TrimSuffix(line, ":"))
		if name == "" {
			continue
		}

		if _, ok := seen[name]; ok {
			continue
		}

		seen[name] = struct{}{}
		names = append(names, name)
	}

	return names, sc.Err()
}

// ParseInputList reads a full dictionary list file: group headers
// followed by "mass: path" entries. Entries before the first header or
// with a non-numeric mass are skipped, matching the tolerant behavior of
// the list format.
func ParseInputList(r io.Reader) (map[string]map[float64]string, error) {
	groups := make(map[string]map[float64]string)

	var current string

	sc := bufio.NewScanner(r)

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasSuffix(line, ":") && !strings.Contains(line, "/") {
			current = strings.TrimSpace(strings.TrimSuffix(line, ":"))
			if current != "" && groups[current] == nil {
				groups[current] = make(map[float64]string)
			}

			continue
		}

		if current == "" {
			continue
		}

		left, right, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}

		mass, err := strconv.ParseFloat(strings.TrimSpace(left), 64)
		if err != nil {
			continue
		}

		path := strings.TrimSpace(right)
		if path == "" {
			continue
		}

		groups[current][mass] = path
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("extract: reading input list: %w", err)
	}

	return groups, nil
}

// ModelFromGroup infers the resonance decay model (qq, gg, or qg) from a
// group name. Unrecognized names default to qq.
func ModelFromGroup(name string) string {
	g := strings.ToLower(strings.TrimSpace(name))

	switch {
	case strings.HasPrefix(g, "rsgtoqq"):
		return "qq"
	case strings.HasPrefix(g, "rsgtogg"):
		return "gg"
	case strings.HasPrefix(g, "qstar"):
		return "qg"
	default:
		return "qq"
	}
}
