package crm

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeed []byte

// Seed is the initial content of the entity store.
type Seed struct {
	Contacts []Contact
	Creators []Creator
}

type rawSeed struct {
	Contacts []struct {
		ID        string `yaml:"id"`
		Name      string `yaml:"name"`
		Email     string `yaml:"email"`
		Company   string `yaml:"company"`
		Status    string `yaml:"status"`
		CreatedAt string `yaml:"created_at"`
	} `yaml:"contacts"`
	Creators []struct {
		ID          string `yaml:"id"`
		Name        string `yaml:"name"`
		Handle      string `yaml:"handle"`
		Avatar      string `yaml:"avatar"`
		Tier        string `yaml:"tier"`
		Subscribers int    `yaml:"subscribers"`
		JoinedAt    string `yaml:"joined_at"`
	} `yaml:"creators"`
}

// DefaultSeed returns the bundled sample data.
func DefaultSeed() (Seed, error) {
	return ParseSeed(defaultSeed)
}

// LoadSeedFile reads seed data from a YAML file.
func LoadSeedFile(path string) (Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Seed{}, fmt.Errorf("read seed: %w", err)
	}
	return ParseSeed(data)
}

// ParseSeed decodes and validates YAML seed data.
func ParseSeed(data []byte) (Seed, error) {
	var raw rawSeed
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Seed{}, fmt.Errorf("parse seed: %w", err)
	}

	seed := Seed{
		Contacts: make([]Contact, 0, len(raw.Contacts)),
		Creators: make([]Creator, 0, len(raw.Creators)),
	}
	seen := make(map[string]struct{}, len(raw.Contacts))
	for i, rc := range raw.Contacts {
		status, err := ParseContactStatus(rc.Status)
		if err != nil || status == StatusAll {
			return Seed{}, fmt.Errorf("contact %d: invalid status %q", i, rc.Status)
		}
		created, err := parseDay(rc.CreatedAt)
		if err != nil {
			return Seed{}, fmt.Errorf("contact %d: %w", i, err)
		}
		if _, dup := seen[rc.ID]; dup {
			return Seed{}, fmt.Errorf("contact %d: duplicate id %q", i, rc.ID)
		}
		seen[rc.ID] = struct{}{}
		seed.Contacts = append(seed.Contacts, Contact{
			ID:        rc.ID,
			Name:      rc.Name,
			Email:     rc.Email,
			Company:   rc.Company,
			Status:    status,
			CreatedAt: created,
		})
	}

	seen = make(map[string]struct{}, len(raw.Creators))
	for i, rc := range raw.Creators {
		tier, err := ParseCreatorTier(rc.Tier)
		if err != nil || tier == TierAll {
			return Seed{}, fmt.Errorf("creator %d: invalid tier %q", i, rc.Tier)
		}
		if rc.Subscribers < 0 {
			return Seed{}, fmt.Errorf("creator %d: negative subscribers", i)
		}
		joined, err := parseDay(rc.JoinedAt)
		if err != nil {
			return Seed{}, fmt.Errorf("creator %d: %w", i, err)
		}
		if _, dup := seen[rc.ID]; dup {
			return Seed{}, fmt.Errorf("creator %d: duplicate id %q", i, rc.ID)
		}
		seen[rc.ID] = struct{}{}
		seed.Creators = append(seed.Creators, Creator{
			ID:          rc.ID,
			Name:        rc.Name,
			Handle:      NormalizeHandle(rc.Handle),
			Avatar:      rc.Avatar,
			Tier:        tier,
			Subscribers: rc.Subscribers,
			JoinedAt:    joined,
		})
	}
	return seed, nil
}

func parseDay(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", value)
	}
	return t, nil
}
