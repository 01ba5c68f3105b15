// Package roster turns user input into a validated domain.Roster.
//
// Two inputs are accepted: free text with one "Name - Role" entry per line, and an
// uploaded table (CSV or XLSX) with Name and Position columns. Both fail closed:
// one bad entry rejects the whole batch and nothing parsed before it is returned.
package roster

import (
	"bufio"
	"fmt"
	"strings"
	"team-lab/domain"
	"team-lab/errors"
)

const separator = "-"

// ParseText reads one "Name - Role" entry per line, split on the last "-". Blank lines are ignored.
func ParseText(text string) (domain.Roster, error) {
	var roster domain.Roster
	scanner := bufio.NewScanner(strings.NewReader(text))
	for number := 1; scanner.Scan(); number++ {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		// Roles never contain the separator, names may ("Jean-Luc - MID").
		at := strings.LastIndex(line, separator)
		if at < 0 {
			return nil, fmt.Errorf("%w: line %d %q, expected 'Name - Role'",
				errors.ErrMalformedLine, number, strings.TrimSpace(line))
		}
		entry, err := newEntry(line[:at], line[at+len(separator):], fmt.Sprintf("line %d", number))
		if err != nil {
			return nil, err
		}
		roster = append(roster, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrMalformedLine, err)
	}
	if len(roster) == 0 {
		return nil, errors.ErrEmptyRoster
	}
	return roster, nil
}

func newEntry(rawName, rawRole, location string) (domain.RosterEntry, error) {
	name := strings.TrimSpace(rawName)
	if name == "" {
		return domain.RosterEntry{}, fmt.Errorf("%w: %s has no name", errors.ErrMalformedLine, location)
	}
	role, ok := domain.ParseRole(rawRole)
	if !ok {
		return domain.RosterEntry{}, errors.InvalidRoleError{Name: name, Role: role.String()}
	}
	return domain.NewRosterEntry(name, role), nil
}
