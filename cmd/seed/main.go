// Command seed writes a starter workspace fixture. Point SEED_FILE at
// the output to boot the server with a populated workspace instead of
// an empty one.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"huddle/internal/domain/models"
	"huddle/internal/state"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

func main() {
	out := flag.String("o", "seed.yaml", "output path for the fixture")
	flag.Parse()

	data, err := yaml.Marshal(starterSeed())
	if err != nil {
		log.Fatalf("encode seed: %v", err)
	}

	if err := os.WriteFile(*out, data, 0644); err != nil {
		log.Fatalf("write %s: %v", *out, err)
	}
	fmt.Printf("wrote %s\n", *out)
}

// starterSeed is one team with a small roster, two channels and a few
// files, enough to exercise every workspace panel.
func starterSeed() *state.Seed {
	teamID := uuid.NewString()
	now := time.Now().Truncate(time.Second)

	return &state.Seed{
		Teams: []models.Team{
			{ID: teamID, Name: "General", Description: "Starter team"},
		},
		Members: []models.Member{
			{
				ID:        uuid.NewString(),
				Email:     "ada@huddle.local",
				FirstName: "Ada",
				LastName:  "Lovelace",
				Role:      models.RoleMember,
				Status:    models.StatusOnline,
			},
			{
				ID:        uuid.NewString(),
				Email:     "grace@huddle.local",
				FirstName: "Grace",
				LastName:  "Hopper",
				Role:      models.RoleGuest,
				Status:    models.StatusAway,
			},
		},
		Channels: []models.Channel{
			{ID: uuid.NewString(), TeamID: teamID, Name: "general"},
			{ID: uuid.NewString(), TeamID: teamID, Name: "random", Description: "Off-topic chatter"},
		},
		Files: []models.FileItem{
			{ID: uuid.NewString(), Name: "docs", Kind: models.FileKindFolder, ModifiedAt: now},
			{ID: uuid.NewString(), Name: "welcome.md", Kind: models.FileKindFile, Size: 512, ModifiedAt: now, Path: "docs"},
			{ID: uuid.NewString(), Name: "roadmap.md", Kind: models.FileKindFile, Size: 2048, ModifiedAt: now, Path: "docs"},
		},
	}
}
