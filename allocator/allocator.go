// Package allocator splits a roster into teams whose role mix follows a target ratio.
//
// One run is a single pass: clamp the requested team count, shuffle the roster,
// queue members by role, hand every team its ratio share of a base team size, then
// deal whatever is left round-robin starting from team 1. Ratios and sizes are
// approximate: a team may end up slightly larger than the size cap when leftovers
// land on it.
package allocator

import (
	"log/slog"
	"team-lab/domain"
	"team-lab/errors"

	"github.com/samber/lo"
)

type Allocator struct {
	log      *slog.Logger
	config   Config
	shuffler Shuffler
}

// New fails when config does not pass Validate.
func New(log *slog.Logger, config Config, shuffler Shuffler) (*Allocator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Allocator{
		log:      log,
		config:   config.clone(),
		shuffler: shuffler,
	}, nil
}

// Allocate partitions roster into at most requested groups. Every entry ends up in exactly
// one group. Roles are not checked here; the roster loader is responsible for that.
func (a *Allocator) Allocate(roster domain.Roster, requested int) (domain.Allocation, error) {
	if len(roster) == 0 {
		return domain.Allocation{}, errors.ErrEmptyRoster
	}
	if requested < 1 {
		return domain.Allocation{}, errors.ErrInvalidGroupCount
	}

	effective := EffectiveGroupCount(a.config, roster, requested)
	if effective < requested {
		a.log.Warn("requested group count reduced",
			"requested", requested, "effective", effective, "members", len(roster))
	}

	shuffled := roster.Clone()
	a.shuffler.Shuffle(shuffled)
	queues := lo.GroupBy(shuffled, func(entry domain.RosterEntry) domain.Role {
		return entry.Role
	})

	teamSize := len(roster) / effective
	groups := lo.Times(effective, func(i int) *domain.Group {
		return domain.NewGroup(i + 1)
	})

	for _, group := range groups {
		for _, role := range domain.Roles {
			take := min(a.config.Quota(role, teamSize), len(queues[role]))
			for _, entry := range queues[role][:take] {
				group.Add(entry)
			}
			queues[role] = queues[role][take:]
		}
	}

	leftovers := lo.FlatMap(domain.Roles, func(role domain.Role, _ int) []domain.RosterEntry {
		return queues[role]
	})
	// Entries outside the known roles are never dropped.
	leftovers = append(leftovers, lo.Filter(shuffled, func(entry domain.RosterEntry, _ int) bool {
		return !entry.Role.Valid()
	})...)
	for k, entry := range leftovers {
		groups[k%effective].Add(entry)
	}

	a.log.Debug("roster allocated",
		"members", len(roster),
		"requested", requested,
		"effective", effective,
		"team_size", teamSize,
		"leftovers", len(leftovers))

	return domain.Allocation{
		Requested: requested,
		Effective: effective,
		Groups: lo.Map(groups, func(group *domain.Group, _ int) domain.Group {
			return *group
		}),
	}, nil
}
