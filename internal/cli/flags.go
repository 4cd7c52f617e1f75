package cli

import "pwreport/internal/config"

// Flags holds command-line flags
type Flags struct {
	TitleFilter string
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		TitleFilter: f.TitleFilter,
	}
}
