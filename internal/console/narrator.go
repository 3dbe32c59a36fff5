// Package console renders game narration as styled text and reads plain
// line-based answers.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"plunder/internal/game"
)

// Narrator is a game.Presenter that writes styled narration to w. Colour
// is used only when w is a terminal.
type Narrator struct {
	w io.Writer

	banner  lipgloss.Style
	heading lipgloss.Style
	good    lipgloss.Style
	bad     lipgloss.Style
	gold    lipgloss.Style
	muted   lipgloss.Style
}

func NewNarrator(w io.Writer) *Narrator {
	r := lipgloss.NewRenderer(w)
	return &Narrator{
		w:       w,
		banner:  r.NewStyle().Foreground(lipgloss.Color("#FFA500")).Bold(true),
		heading: r.NewStyle().Foreground(lipgloss.Color("#5FAFD7")).Bold(true),
		good:    r.NewStyle().Foreground(lipgloss.Color("#87D787")),
		bad:     r.NewStyle().Foreground(lipgloss.Color("#FF5F5F")),
		gold:    r.NewStyle().Foreground(lipgloss.Color("#FFD700")),
		muted:   r.NewStyle().Foreground(lipgloss.Color("#888888")).Italic(true),
	}
}

func (n *Narrator) say(st lipgloss.Style, format string, args ...any) {
	fmt.Fprintln(n.w, st.Render(fmt.Sprintf(format, args...)))
}

func (n *Narrator) plain(format string, args ...any) {
	fmt.Fprintf(n.w, format+"\n", args...)
}

func (n *Narrator) Present(ev game.Event) {
	switch ev := ev.(type) {
	case game.SessionStarted:
		title := ev.Title
		if title == "" {
			title = "Plunder"
		}
		n.say(n.banner, "--- Welcome to %s! ---", title)
		n.plain("Welcome aboard, %s!", ev.Player)
	case game.LevelEntered:
		n.plain("")
		n.say(n.banner, "--- Entering Level %d ---", ev.Number)
	case game.StatusReport:
		n.plain("")
		n.say(n.heading, "%s, your stats:", ev.Player)
		n.plain("Health: %d", ev.Health)
		n.plain("Treasure: %d", ev.Treasure)
		n.plain("Current Weapon: %s", ev.Equipped)
	case game.SelectionInvalid:
		n.say(n.muted, "Invalid choice. Please enter a number between 1 and %d.", ev.Max)
	case game.LocationAlreadyLooted:
		n.say(n.muted, "You've already sufficiently looted %s!", ev.Location)
	case game.VisitStarted:
		n.plain("")
		n.say(n.heading, "--- Sailing to %s ---", ev.Location)
		n.plain("It is rumored to hold %d gold pieces.", ev.Treasure)
		n.plain("You must collect at least %d to consider it properly looted.", ev.Minimum)
	case game.ObstacleTriggered:
		n.say(n.bad, "Watch out! You've encountered %s!", article(ev.Obstacle))
		n.plain("You took %d damage! Your health is now %d.", ev.Damage, ev.Health)
		if ev.Wounded {
			n.say(n.muted, "You're badly wounded! Look for a health potion before fighting.")
		}
	case game.Succumbed:
		n.say(n.bad, "You succumbed to the dangers of %s...", ev.Location)
	case game.AdversaryAppeared:
		if ev.Variant == game.Elite {
			n.say(n.bad, "A dangerous %s appears! (Health: %d)", ev.Name, ev.Health)
		} else {
			n.say(n.bad, "A wild %s appears! (Health: %d)", ev.Name, ev.Health)
		}
	case game.RoundStarted:
		n.plain("")
		n.say(n.heading, "--- Battle ---")
		n.plain("Your health: %d", ev.PlayerHealth)
		n.plain("%s's health: %d", ev.Adversary, ev.AdversaryHealth)
	case game.ItemEquipped:
		if ev.Changed {
			n.plain("You've switched weapons to %s.", ev.Item)
		} else {
			n.plain("Keeping your %s.", ev.Item)
		}
	case game.PlayerStruck:
		if ev.Hit {
			n.say(n.good, "You dealt %d damage to the %s! Its health is now %d.", ev.Damage, ev.Adversary, ev.Remaining)
		} else {
			n.plain("Your attack missed!")
		}
	case game.FleeAttempted:
		if ev.Escaped {
			n.say(n.good, "You successfully fled from the battle!")
		} else {
			n.say(n.bad, "You failed to flee!")
		}
	case game.Hesitated:
		n.say(n.muted, "Invalid choice. You hesitate and do nothing.")
	case game.AdversaryStruck:
		switch {
		case !ev.Hit:
			n.plain("%s's attack missed!", ev.Adversary)
		case ev.Critical:
			n.say(n.bad, "The %s lands a critical hit for %d damage! Your health is now %d.", ev.Adversary, ev.Damage, ev.Health)
		default:
			n.say(n.bad, "%s dealt %d damage to you! Your health is now %d.", ev.Adversary, ev.Damage, ev.Health)
		}
	case game.EncounterEnded:
		switch ev.Outcome {
		case game.PlayerWon:
			n.say(n.good, "You defeated the %s!", ev.Adversary)
		case game.PlayerFled:
			n.plain("You leave the %s behind, and the loot with it.", ev.Adversary)
		case game.PlayerDefeated:
			n.say(n.bad, "You were defeated in battle by the %s...", ev.Adversary)
		}
	case game.TreasureLooted:
		n.say(n.gold, "You looted %d gold pieces from %s!", ev.Amount, ev.Location)
		n.plain("Your total treasure is now %d gold pieces.", ev.Total)
	case game.StashFound:
		n.say(n.gold, "You found a hidden stash!")
	case game.Healed:
		if ev.Rest {
			n.plain("You rest and recover your health (+%d). Health: %d.", ev.Amount, ev.Health)
		} else {
			n.say(n.good, "It's a health potion! You feel invigorated (+%d). Health: %d.", ev.Amount, ev.Health)
		}
	case game.ItemGranted:
		switch {
		case ev.LevelReward:
			n.plain("You found a treasure map to a hidden weapon cache!")
			n.say(n.good, "You've acquired %s!", article(ev.Item.String()))
		case ev.AlreadyOwned:
			n.say(n.muted, "You already have %s! You can't acquire it again.", article(ev.Item.String()))
		default:
			n.say(n.good, "You've acquired %s!", article(ev.Item.String()))
		}
	case game.NoItemsLeft:
		n.plain("You found a treasure map to a hidden weapon cache!")
		n.say(n.muted, "...but it seems you already have all the weapons from it.")
	case game.BonusGold:
		n.say(n.gold, "It's a bag of gold! You found %d gold pieces!", ev.Amount)
		n.plain("Your total treasure is now %d gold pieces.", ev.Total)
	case game.LevelCompleted:
		n.plain("")
		n.say(n.banner, "Congratulations! You've conquered Level %d!", ev.Number)
	case game.GameOver:
		n.plain("")
		if ev.Result == game.Victory {
			n.say(n.banner, "--- VICTORY ---")
			n.plain("You have conquered all the levels and become the most feared pirate on the seven seas!")
		} else {
			n.say(n.bad, "--- GAME OVER ---")
			n.plain("%s, you have been defeated!", ev.Player)
		}
		n.say(n.gold, "Final Treasure: %d", ev.Treasure)
	}
}

// article prefixes a noun with "a" or "an".
func article(noun string) string {
	if noun == "" {
		return noun
	}
	if strings.ContainsRune("aeiouAEIOU", rune(noun[0])) {
		return "an " + noun
	}
	return "a " + noun
}
