// Package changelog parses the release history embedded from CHANGELOG.md
// so the app can show what changed since the version the user last ran.
package changelog

import (
	"bufio"
	_ "embed"
	"regexp"
	"strconv"
	"strings"
)

//go:embed CHANGELOG.md
var Content string

// Entry is one released version and its changes. Parse returns entries in
// file order, which is newest first.
type Entry struct {
	Version string
	Date    string
	Changes []string
}

// versionRegex matches headers like "## v0.3.0 (2026-06-02)" or "## 0.3.0"
var versionRegex = regexp.MustCompile(`^##\s+v?(\d+\.\d+\.\d+)(?:\s+\(([^)]+)\))?`)

// Parse extracts changelog entries from markdown content. Lines outside
// version sections and non-bullet lines are ignored.
func Parse(content string) []Entry {
	var entries []Entry
	var current *Entry

	flush := func() {
		if current != nil {
			entries = append(entries, *current)
			current = nil
		}
	}

	scanner := bufio.NewScanner(strings.NewReader(content))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if m := versionRegex.FindStringSubmatch(line); m != nil {
			flush()
			current = &Entry{Version: m[1], Date: m[2]}
			continue
		}

		if current != nil && strings.HasPrefix(line, "- ") {
			if change := strings.TrimSpace(strings.TrimPrefix(line, "- ")); change != "" {
				current.Changes = append(current.Changes, change)
			}
		}
	}
	flush()

	return entries
}

// GetChangesSince returns all entries newer than lastSeen, keeping the
// newest-first order of the input. An empty lastSeen returns everything.
func GetChangesSince(lastSeen string, entries []Entry) []Entry {
	if lastSeen == "" {
		return entries
	}

	var result []Entry
	for _, entry := range entries {
		if CompareVersions(entry.Version, lastSeen) > 0 {
			result = append(result, entry)
		}
	}
	return result
}

// CompareVersions compares two semantic versions.
// Returns -1 if a < b, 0 if a == b, 1 if a > b.
func CompareVersions(a, b string) int {
	aParts := parseVersion(a)
	bParts := parseVersion(b)

	for i := 0; i < 3; i++ {
		if aParts[i] < bParts[i] {
			return -1
		}
		if aParts[i] > bParts[i] {
			return 1
		}
	}
	return 0
}

// parseVersion extracts [major, minor, patch] from a version string,
// tolerating a leading 'v' and missing parts.
func parseVersion(v string) [3]int {
	v = strings.TrimPrefix(v, "v")

	parts := strings.Split(v, ".")
	var result [3]int
	for i := 0; i < 3 && i < len(parts); i++ {
		result[i], _ = strconv.Atoi(parts[i])
	}
	return result
}
