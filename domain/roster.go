package domain

import (
	"github.com/samber/lo"
)

// RosterEntry is one person and the role they play. Entries are never mutated after parsing.
type RosterEntry struct {
	Name string `validate:"required"`
	Role Role   `validate:"oneof=ATT MID DEF"`
}

func NewRosterEntry(name string, role Role) RosterEntry {
	return RosterEntry{Name: name, Role: role}
}

type Roster []RosterEntry

// CountByRole reports how many entries carry each role. Roles with no entry are present with zero.
func (r Roster) CountByRole() map[Role]int {
	counts := lo.CountValuesBy(r, func(entry RosterEntry) Role {
		return entry.Role
	})
	for _, role := range Roles {
		if _, ok := counts[role]; !ok {
			counts[role] = 0
		}
	}
	return counts
}

// Clone returns a copy the caller is free to reorder.
func (r Roster) Clone() Roster {
	clone := make(Roster, len(r))
	copy(clone, r)
	return clone
}
