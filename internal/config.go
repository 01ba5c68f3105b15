package internal

import (
	"fmt"
	"team-lab/allocator"
	"team-lab/domain"
	"time"
)

type Config struct {
	Host               string        `env:"HOST,default=localhost"`
	Port               int           `env:"PORT,default=8080"`
	LogLevel           string        `env:"LOG_LEVEL,required=true"`
	ExportTTL          time.Duration `env:"EXPORT_TTL,default=10m"`
	MaxUploadBytes     int           `env:"MAX_UPLOAD_BYTES,default=5242880"`
	TeamRatio          string        `env:"TEAM_RATIO"`
	MaxTeamSize        int           `env:"MAX_TEAM_SIZE,default=7"`
	EnforceComposition bool          `env:"ENFORCE_COMPOSITION,default=false"`
}

func (c Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// AllocatorConfig falls back to the default ratio when TEAM_RATIO is unset.
func (c Config) AllocatorConfig() (allocator.Config, error) {
	return AllocatorConfig(c.TeamRatio, c.MaxTeamSize, c.EnforceComposition)
}

func AllocatorConfig(ratio string, maxTeamSize int, enforceComposition bool) (allocator.Config, error) {
	if ratio == "" {
		ratio = domain.DefaultRatio().String()
	}
	config, err := allocator.NewConfig(ratio, maxTeamSize, enforceComposition)
	if err != nil {
		return allocator.Config{}, fmt.Errorf("TEAM_RATIO / MAX_TEAM_SIZE: %w", err)
	}
	return config, nil
}
