// Package console is the text menu for a single game session.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"war/game"
	"war/gamemaster"
	"war/meta"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const separator = "\n\n\n===========================================\n"

type Console struct {
	session *gamemaster.Session
	in      *bufio.Scanner
	out     io.Writer
	p       *message.Printer
}

func New(session *gamemaster.Session, in io.Reader, out io.Writer, tag language.Tag) *Console {
	return &Console{
		session: session,
		in:      bufio.NewScanner(in),
		out:     out,
		p:       message.NewPrinter(tag),
	}
}

// Run shows the menu until the player quits, wins, or input ends.
func (c *Console) Run() error {
	for {
		c.p.Fprint(c.out, separator)
		c.printMap()
		c.printMission()
		c.printMenu()

		c.p.Fprintf(c.out, "Choose an option: ")
		line, ok := c.readLine()
		if !ok {
			return c.in.Err()
		}

		quit := false
		switch option(line) {
		case 1:
			if done := c.attackPhase(); done {
				return c.in.Err()
			}
		case 2:
			if c.session.CheckMission() {
				c.p.Fprintf(c.out, "\n*** CONGRATULATIONS! You completed your mission and WON the game! ***\n")
				quit = true
			} else {
				c.p.Fprintf(c.out, "\n--- Mission not complete yet. Keep fighting! ---\n")
			}
		case 0:
			c.p.Fprintf(c.out, "Leaving the game...\n")
			quit = true
		default:
			c.p.Fprintf(c.out, "Invalid option!\n")
		}
		if quit {
			return nil
		}

		c.p.Fprintf(c.out, "\nPress ENTER to continue...")
		if _, ok := c.readLine(); !ok {
			return c.in.Err()
		}
	}
}

func (c *Console) readLine() (string, bool) {
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

// option parses a menu choice; anything unparsable is invalid.
func option(line string) int {
	n, err := strconv.Atoi(line)
	if err != nil {
		return -1
	}
	return n
}

func (c *Console) faction(f game.Faction) string {
	if f == game.Player {
		return c.p.Sprintf("Blue")
	}
	return c.p.Sprintf("Red")
}

func (c *Console) printMap() {
	c.p.Fprintf(c.out, "%s\n", c.p.Sprintf("WORLD MAP"))
	c.p.Fprintf(c.out, "%-4s%-14s%-12s%s\n", "ID", c.p.Sprintf("Territory"), c.p.Sprintf("Army"), c.p.Sprintf("Troops"))
	for _, t := range c.session.Snapshot() {
		c.p.Fprintf(c.out, "%-4d%-14s%-12s%d\n", t.ID, t.Name, c.faction(t.Faction), t.Troops)
	}
}

func (c *Console) printMission() {
	c.p.Fprintf(c.out, "\n%s", c.p.Sprintf("[ SECRET MISSION ]: "))
	m := c.session.Mission
	switch m.Kind {
	case game.ConquerTerritoriesMission:
		c.p.Fprintf(c.out, "Conquer at least %d territories.\n", m.Threshold)
	case game.EliminateFactionMission:
		c.p.Fprintf(c.out, "Wipe out the %s army.\n", c.faction(m.Target))
	}
}

func (c *Console) printMenu() {
	c.p.Fprintf(c.out, "\n--- ACTION MENU ---\n")
	c.p.Fprintf(c.out, "1. Attack Territory\n")
	c.p.Fprintf(c.out, "2. Check Mission (Victory)\n")
	c.p.Fprintf(c.out, "0. Quit Game\n")
}

// attackPhase reads an origin and a target and plays one attack.
// It returns true when input ended.
func (c *Console) attackPhase() bool {
	c.p.Fprintf(c.out, "\n>>> ATTACK PHASE <<<\n")

	c.p.Fprintf(c.out, "Enter the ORIGIN territory ID or name (yours): ")
	originLine, ok := c.readLine()
	if !ok {
		return true
	}
	c.p.Fprintf(c.out, "Enter the TARGET territory ID or name (enemy): ")
	targetLine, ok := c.readLine()
	if !ok {
		return true
	}

	origin, okOrigin := c.territoryID(originLine)
	target, okTarget := c.territoryID(targetLine)
	if !okOrigin || !okTarget {
		c.p.Fprintf(c.out, "Invalid IDs!\n")
		return false
	}

	outcome, err := c.session.Attack(origin, target)
	if err != nil {
		c.printAttackError(err)
		return false
	}
	c.printBattle(outcome)
	return false
}

// territoryID accepts a numeric ID or a territory name.
func (c *Console) territoryID(line string) (int, bool) {
	if id, err := strconv.Atoi(line); err == nil {
		return id, true
	}
	if id := c.session.Store.Index(line); id >= 0 {
		return id, true
	}
	return 0, false
}

func (c *Console) printAttackError(err error) {
	switch {
	case errors.Is(err, game.ErrInvalidTerritory):
		c.p.Fprintf(c.out, "Invalid IDs!\n")
	case errors.Is(err, game.ErrNotOwnedByPlayer):
		c.p.Fprintf(c.out, "You can only attack from a territory of yours!\n")
	case errors.Is(err, game.ErrSelfAttack):
		c.p.Fprintf(c.out, "You cannot attack your own territory!\n")
	case errors.Is(err, game.ErrInsufficientTroops):
		c.p.Fprintf(c.out, "Not enough troops to attack (minimum %d).\n", meta.MIN_ATTACK_TROOPS)
	case errors.Is(err, gamemaster.ErrGameOver):
		c.p.Fprintf(c.out, "The game is over.\n")
	default:
		fmt.Fprintln(c.out, err)
	}
}

func (c *Console) printBattle(outcome game.BattleOutcome) {
	views := c.session.Snapshot()
	attacker, defender := views[outcome.AttackerID], views[outcome.DefenderID]

	c.p.Fprintf(c.out, "\nBattle: %s (Atk) vs %s (Def)\n", attacker.Name, defender.Name)
	c.p.Fprintf(c.out, "Dice: Attacker [%d] x Defender [%d]\n", outcome.AttackerRoll, outcome.DefenderRoll)
	if outcome.Loser == game.DefenderSide {
		c.p.Fprintf(c.out, "Attacker wins! Defender loses 1 troop.\n")
	} else {
		c.p.Fprintf(c.out, "The defense held! Attacker loses 1 troop.\n")
	}

	if outcome.Conquered {
		c.p.Fprintf(c.out, ">>> TERRITORY CONQUERED! <<<\n")
		c.p.Fprintf(c.out, "Territory %s now belongs to the %s army!\n", defender.Name, c.faction(attacker.Faction))
	}
}
