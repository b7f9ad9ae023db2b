package state

import (
	"fmt"
	"os"

	"huddle/internal/domain/models"

	"gopkg.in/yaml.v3"
)

// Seed holds the entities a session starts with. It replaces the mock
// data the workspace used to grow at module load time: seeding is explicit
// and happens exactly once, in New.
type Seed struct {
	Teams    []models.Team     `yaml:"teams"`
	Members  []models.Member   `yaml:"members"`
	Channels []models.Channel  `yaml:"channels"`
	Files    []models.FileItem `yaml:"files"`
}

// LoadSeed reads a seed fixture from a YAML file.
func LoadSeed(path string) (*Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var seed Seed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}

	return &seed, nil
}

// applySeed copies seed entities into the store's collections, skipping
// any roster entry that would duplicate the acting user. Caller holds no
// lock: only ever invoked from New before the store is shared.
func (s *Store) applySeed(seed *Seed) {
	s.teams = append(s.teams, seed.Teams...)
	s.channels = append(s.channels, seed.Channels...)
	s.files = append(s.files, seed.Files...)

	for _, m := range seed.Members {
		if m.ID == s.actingID {
			continue
		}
		s.members = append(s.members, m)
	}
}
