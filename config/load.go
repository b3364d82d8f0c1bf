package config

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// profileFile is the on-disk shape of a profile override file: a list of
// profiles so one file can carry several domains.
type profileFile struct {
	Profiles []*Profile `yaml:"profiles"`
}

// LoadProfiles reads a YAML override file and merges its profiles over the
// built-in defaults. A file profile whose tag matches a built-in replaces it
// entirely; new tags are added. An empty path returns just the defaults.
func LoadProfiles(path string) (map[string]*Profile, error) {
	profiles := DefaultProfiles()
	if path == "" {
		return profiles, nil
	}

	data, err := os.ReadFile(path) // #nosec G304 -- path comes from operator flags, not request input
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file %s: %w", path, err)
	}

	var file profileFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse profile file %s: %w", path, err)
	}

	for i, p := range file.Profiles {
		if p == nil {
			continue
		}
		p.ApplyDefaults()
		if conflicts := p.Validate(); len(conflicts) > 0 {
			return nil, fmt.Errorf("profile %d ('%s') in %s is invalid:\n  - %s",
				i, p.Tag, path, strings.Join(conflicts, "\n  - "))
		}
		profiles[p.Tag] = p
	}

	return profiles, nil
}

// SaveProfiles writes profiles to a YAML file, usable as a starting point for
// an override file.
func SaveProfiles(path string, profiles map[string]*Profile) error {
	file := profileFile{}
	for _, tag := range sortedTags(profiles) {
		file.Profiles = append(file.Profiles, profiles[tag])
	}

	data, err := yaml.Marshal(&file)
	if err != nil {
		return fmt.Errorf("failed to marshal profiles: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write profile file %s: %w", path, err)
	}
	return nil
}

func sortedTags(profiles map[string]*Profile) []string {
	tags := make([]string, 0, len(profiles))
	for tag := range profiles {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
