package allocator

import "team-lab/domain"

// SizeCap is the number of groups needed so that none has to exceed maxGroupSize. Never below 1.
func SizeCap(total, maxGroupSize int) int {
	if maxGroupSize < 1 {
		return 1
	}
	return max(1, (total+maxGroupSize-1)/maxGroupSize)
}

// CompositionCap is the largest group count at which every role can still supply its ratio
// share to each group. A role with no members does not constrain the result; when no role
// constrains it, constrained is false.
func CompositionCap(counts map[domain.Role]int, ratio domain.RoleRatio) (limit int, constrained bool) {
	for _, role := range domain.Roles {
		count, weight := counts[role], ratio.Weight(role)
		if count == 0 || weight <= 0 {
			continue
		}
		roleLimit := count / weight
		if !constrained || roleLimit < limit {
			limit = roleLimit
			constrained = true
		}
	}
	return limit, constrained
}

// EffectiveGroupCount never exceeds the request nor the caps the roster imposes, and never drops below 1.
func EffectiveGroupCount(config Config, roster domain.Roster, requested int) int {
	effective := min(requested, SizeCap(len(roster), config.MaxGroupSize))
	if config.EnforceComposition {
		if limit, constrained := CompositionCap(roster.CountByRole(), config.Ratio); constrained {
			effective = min(effective, limit)
		}
	}
	return max(1, effective)
}
