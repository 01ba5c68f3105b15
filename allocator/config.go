package allocator

import (
	"fmt"
	"maps"
	"team-lab/domain"
	"team-lab/errors"
)

const DefaultMaxGroupSize = 7

// Config is read-only once built. EnforceComposition turns on the composition cap,
// which lowers the group count until every present role can fill its share in each group.
type Config struct {
	Ratio              domain.RoleRatio
	MaxGroupSize       int
	EnforceComposition bool
}

func DefaultConfig() Config {
	return Config{
		Ratio:              domain.DefaultRatio(),
		MaxGroupSize:       DefaultMaxGroupSize,
		EnforceComposition: false,
	}
}

// NewConfig parses ratio ("ATT:2,MID:3,DEF:2") and checks the resulting configuration.
func NewConfig(ratio string, maxGroupSize int, enforceComposition bool) (Config, error) {
	parsed, err := domain.ParseRatio(ratio)
	if err != nil {
		return Config{}, err
	}
	config := Config{
		Ratio:              parsed,
		MaxGroupSize:       maxGroupSize,
		EnforceComposition: enforceComposition,
	}
	if err = config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func (c Config) Validate() error {
	if c.MaxGroupSize < 1 {
		return fmt.Errorf("%w: max group size must be at least 1, got %d", errors.ErrInvalidRatio, c.MaxGroupSize)
	}
	return c.Ratio.Validate()
}

// Quota is how many members of role a group of teamSize receives during the proportional fill.
// Integer arithmetic keeps the floor exact.
func (c Config) Quota(role domain.Role, teamSize int) int {
	return c.Ratio.Weight(role) * teamSize / c.Ratio.Total()
}

func (c Config) clone() Config {
	c.Ratio = maps.Clone(c.Ratio)
	return c
}
