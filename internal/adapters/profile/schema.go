package profile

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version  int             `toml:"version"`
	Profiles []profileSchema `toml:"profiles"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported profiles schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type profileSchema struct {
	Name           string   `toml:"name"`
	Runtime        string   `toml:"runtime,omitempty"`
	DomainName     string   `toml:"domain_name,omitempty"`
	Args           []string `toml:"args,omitempty"`
	RedirectOutput bool     `toml:"redirect_output,omitempty"`
	PatchExit      bool     `toml:"patch_exit,omitempty"`
}
