// Package domain contains core concepts of the team builder.
// This file defines the playing roles and the ratio a team aims for.
// No file handling, network, or UI logic should be added here.
package domain

import (
	"fmt"
	"strconv"
	"strings"
	"team-lab/errors"
)

type Role string

const (
	Attack   Role = "ATT"
	Midfield Role = "MID"
	Defense  Role = "DEF"
)

// Roles is the fixed iteration order used everywhere a per-role pass happens.
var Roles = []Role{Attack, Midfield, Defense}

// ParseRole trims and upper-cases raw before matching it against the known roles.
func ParseRole(raw string) (Role, bool) {
	role := Role(strings.ToUpper(strings.TrimSpace(raw)))
	return role, role.Valid()
}

func (r Role) Valid() bool {
	switch r {
	case Attack, Midfield, Defense:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}

// RoleRatio is the target proportion of each role inside a team, not an absolute count.
type RoleRatio map[Role]int

// DefaultRatio is two attackers, three midfielders and two defenders per seven players.
func DefaultRatio() RoleRatio {
	return RoleRatio{Attack: 2, Midfield: 3, Defense: 2}
}

func (r RoleRatio) Weight(role Role) int {
	return r[role]
}

func (r RoleRatio) Total() int {
	total := 0
	for _, role := range Roles {
		total += r[role]
	}
	return total
}

func (r RoleRatio) Validate() error {
	if len(r) != len(Roles) {
		return fmt.Errorf("%w: expected weights for %v, got %d", errors.ErrInvalidRatio, Roles, len(r))
	}
	for _, role := range Roles {
		weight, ok := r[role]
		if !ok {
			return fmt.Errorf("%w: no weight for %s", errors.ErrInvalidRatio, role)
		}
		if weight <= 0 {
			return fmt.Errorf("%w: weight for %s must be positive, got %d", errors.ErrInvalidRatio, role, weight)
		}
	}
	return nil
}

func (r RoleRatio) String() string {
	parts := make([]string, 0, len(Roles))
	for _, role := range Roles {
		parts = append(parts, fmt.Sprintf("%s:%d", role, r[role]))
	}
	return strings.Join(parts, ",")
}

// ParseRatio reads the "ATT:2,MID:3,DEF:2" form used in configuration.
func ParseRatio(raw string) (RoleRatio, error) {
	ratio := make(RoleRatio, len(Roles))
	for _, part := range strings.Split(raw, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		key, value, found := strings.Cut(part, ":")
		if !found {
			return nil, fmt.Errorf("%w: %q is not ROLE:WEIGHT", errors.ErrInvalidRatio, part)
		}
		role, ok := ParseRole(key)
		if !ok {
			return nil, fmt.Errorf("%w: unknown role %q", errors.ErrInvalidRatio, key)
		}
		if _, duplicate := ratio[role]; duplicate {
			return nil, fmt.Errorf("%w: %s listed twice", errors.ErrInvalidRatio, role)
		}
		weight, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("%w: weight for %s: %v", errors.ErrInvalidRatio, role, err)
		}
		ratio[role] = weight
	}
	if err := ratio.Validate(); err != nil {
		return nil, err
	}
	return ratio, nil
}
