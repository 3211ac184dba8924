package cli

import "skipctl/internal/config"

// Flags holds command-line flags
type Flags struct {
	Cleanup bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Cleanup: f.Cleanup,
	}
}
