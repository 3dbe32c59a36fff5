package game

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultName is used when a player enters a blank name and the campaign
// does not set its own.
const DefaultName = "Captain Fearless"

// LoadCampaign loads and validates a campaign from a YAML file.
func LoadCampaign(path string) (*Campaign, error) {
	cleanPath := filepath.Clean(path)
	b, err := os.ReadFile(cleanPath) //nolint:gosec // operator-supplied content path
	if err != nil {
		return nil, err
	}
	c, err := ParseCampaign(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cleanPath, err)
	}
	return c, nil
}

// ParseCampaign decodes and validates campaign YAML.
func ParseCampaign(b []byte) (*Campaign, error) {
	var c Campaign
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("decode campaign: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the balance table. Every problem found is reported.
func (c *Campaign) Validate() error {
	var errs []error
	if len(c.Levels) == 0 {
		errs = append(errs, errors.New("campaign has no levels"))
	}
	// visits are keyed by name, so names must be unique campaign-wide
	seen := map[string]bool{}
	for i, lv := range c.Levels {
		where := fmt.Sprintf("level %d", i+1)
		if len(lv.Locations) == 0 {
			errs = append(errs, fmt.Errorf("%s: no locations", where))
		}
		for _, loc := range lv.Locations {
			errs = append(errs, loc.validate(where, seen)...)
		}
	}
	return errors.Join(errs...)
}

func (l LocationSpec) validate(level string, seen map[string]bool) []error {
	var errs []error
	where := fmt.Sprintf("%s: location %q", level, l.Name)
	switch {
	case l.Name == "":
		errs = append(errs, fmt.Errorf("%s: location without a name", level))
	case seen[l.Name]:
		errs = append(errs, fmt.Errorf("%s: duplicate name", where))
	}
	seen[l.Name] = true

	if l.MinToLoot < 0 || l.Treasure < l.MinToLoot {
		errs = append(errs, fmt.Errorf("%s: need 0 <= minToLoot (%d) <= treasure (%d)", where, l.MinToLoot, l.Treasure))
	}
	for _, ob := range l.Obstacles {
		if ob.Damage < 0 {
			errs = append(errs, fmt.Errorf("%s: obstacle %q has negative damage", where, ob.Name))
		}
	}
	for _, a := range l.Adversaries {
		if a.Health <= 0 || a.Damage < 0 {
			errs = append(errs, fmt.Errorf("%s: adversary %q needs health > 0 and damage >= 0", where, a.Name))
		}
		if a.Accuracy < 0 || a.Accuracy > 1 {
			errs = append(errs, fmt.Errorf("%s: adversary %q accuracy %.2f outside [0,1]", where, a.Name, a.Accuracy))
		}
		if a.CritChance < 0 || a.CritChance > 1 || a.CritMultiplier < 0 {
			errs = append(errs, fmt.Errorf("%s: adversary %q has an invalid critical hit rule", where, a.Name))
		}
	}
	return errs
}

// PlayerName returns the name to use for a raw name entry.
func (c *Campaign) PlayerName(entered string) string {
	if name := trimName(entered); name != "" {
		return name
	}
	if c != nil && c.DefaultName != "" {
		return c.DefaultName
	}
	return DefaultName
}
