// Package content ships the built-in campaign: six levels of towns to
// plunder, from Port Blossom to the Mad King's Treasury.
package content

import (
	_ "embed"

	"plunder/internal/game"
)

//go:embed pirates.yaml
var pirates []byte

// Default parses the built-in campaign. Each call returns a new value.
func Default() (*game.Campaign, error) {
	return game.ParseCampaign(pirates)
}

// Load returns the campaign at path, or the built-in one when path is
// empty.
func Load(path string) (*game.Campaign, error) {
	if path == "" {
		return Default()
	}
	return game.LoadCampaign(path)
}
