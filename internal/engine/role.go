package engine

import "fmt"

// Faction groups roles by win condition.
type Faction int

const (
	FactionEmperor Faction = 1
	FactionRebel   Faction = 2
	FactionNeutral Faction = 3
	FactionThird   Faction = 4
)

var factionNames = map[Faction]string{
	FactionEmperor: "Emperor",
	FactionRebel:   "Rebel",
	FactionNeutral: "Neutral",
	FactionThird:   "Third",
}

func (f Faction) String() string {
	if s, ok := factionNames[f]; ok {
		return s
	}
	return "Unknown"
}

// RoleID identifies the hidden roles.
type RoleID int

const (
	RoleEmperor  RoleID = 1
	RoleQueen    RoleID = 2
	RoleRebel    RoleID = 3
	RoleAssassin RoleID = 4
	RoleGuard    RoleID = 5
	RoleRedDevil RoleID = 6
	RoleFarmer   RoleID = 7
	RoleHealer   RoleID = 8
	RoleJudge    RoleID = 9
)

// Role is an immutable role definition with the base stats a player
// assigned this role starts the match with.
type Role struct {
	ID          RoleID  `json:"id"`
	Name        string  `json:"name"`
	Faction     Faction `json:"faction"`
	HP          int     `json:"hp"`
	Stamina     int     `json:"stamina"`
	Attack      int     `json:"attack"`
	Defense     int     `json:"defense"`
	Description string  `json:"description"`
}

var allRoles = []Role{
	{RoleEmperor, "Emperor", FactionEmperor, 4, 5, 2, 3,
		"The figurehead. The Rebels win the moment you fall."},
	{RoleQueen, "Queen", FactionEmperor, 4, 5, 2, 2,
		"Stands with the Emperor."},
	{RoleRebel, "Rebel", FactionRebel, 5, 5, 3, 1,
		"Wins when the Emperor falls."},
	{RoleAssassin, "Assassin", FactionRebel, 4, 5, 4, 1,
		"Wins with the Rebels. Wounds the Emperor from beyond the grave."},
	{RoleGuard, "Guard", FactionEmperor, 6, 5, 2, 2,
		"While alive, the Emperor cannot be attacked outright. Can absorb the Assassin's dying strike once."},
	{RoleRedDevil, "Red Devil", FactionThird, 5, 5, 3, 2,
		"Wins alone among the last two. Once revealed, shrugs off the first hit each round."},
	{RoleFarmer, "Farmer", FactionNeutral, 6, 5, 1, 2,
		"Just wants to survive. Co-wins with the Emperor's side."},
	{RoleHealer, "Healer", FactionEmperor, 4, 5, 1, 2,
		"Revealing heals the Emperor by 1."},
	{RoleJudge, "Judge", FactionNeutral, 5, 5, 2, 1,
		"An impartial observer."},
}

// RoleByID looks up a role definition.
func RoleByID(id RoleID) (Role, bool) {
	for _, r := range allRoles {
		if r.ID == id {
			return r, true
		}
	}
	return Role{}, false
}

// RoleSet returns the fixed role composition for a participant count.
// Each tier from 4 to 9 players adds one role on top of the previous tier.
func RoleSet(numPlayers int) ([]Role, error) {
	if numPlayers < 4 || numPlayers > len(allRoles) {
		return nil, fmt.Errorf("unsupported participant count %d (want 4-%d)", numPlayers, len(allRoles))
	}
	out := make([]Role, numPlayers)
	copy(out, allRoles[:numPlayers])
	return out, nil
}
