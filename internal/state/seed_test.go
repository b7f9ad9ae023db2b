package state

import (
	"os"
	"path/filepath"
	"testing"

	"huddle/internal/domain/models"
)

func TestLoadSeed(t *testing.T) {
	fixture := `teams:
  - id: team-1
    name: Development Team
  - id: team-2
    name: Marketing Team
    hidden: true
members:
  - id: user-jane
    email: jane.smith@example.com
    first_name: Jane
    last_name: Smith
    role: Member
    status: online
channels:
  - id: channel-1
    team_id: team-1
    name: general
files:
  - id: file-1
    name: onboarding.md
    kind: file
    path: ""
`

	path := filepath.Join(t.TempDir(), "workspace.yaml")
	if err := os.WriteFile(path, []byte(fixture), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	seed, err := LoadSeed(path)
	if err != nil {
		t.Fatalf("LoadSeed failed: %v", err)
	}

	if len(seed.Teams) != 2 {
		t.Errorf("expected 2 teams, got %d", len(seed.Teams))
	}
	if !seed.Teams[1].Hidden {
		t.Error("expected second team hidden")
	}
	if len(seed.Members) != 1 || seed.Members[0].Role != models.RoleMember {
		t.Errorf("unexpected members %+v", seed.Members)
	}
	if len(seed.Channels) != 1 || seed.Channels[0].TeamID != "team-1" {
		t.Errorf("unexpected channels %+v", seed.Channels)
	}
	if len(seed.Files) != 1 || seed.Files[0].Kind != models.FileKindFile {
		t.Errorf("unexpected files %+v", seed.Files)
	}
}

func TestLoadSeed_MissingFile(t *testing.T) {
	if _, err := LoadSeed(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing seed file")
	}
}

func TestLoadSeed_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("teams: [unterminated"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := LoadSeed(path); err == nil {
		t.Fatal("expected error for malformed seed file")
	}
}
