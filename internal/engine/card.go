package engine

// CardType categorizes how a card is played.
type CardType int

const (
	CardItem   CardType = 0 // face-up, permanent passive effect
	CardAction CardType = 1 // resolves immediately, costs stamina
	CardHidden CardType = 2 // placed face-down, activated a later round
	CardEvent  CardType = 3 // fires the moment it is drawn
)

var cardTypeNames = map[CardType]string{
	CardItem:   "Item",
	CardAction: "Action",
	CardHidden: "Hidden",
	CardEvent:  "Event",
}

func (t CardType) String() string {
	if s, ok := cardTypeNames[t]; ok {
		return s
	}
	return "Unknown"
}

// EffectTag identifies what a card does when resolved.
type EffectTag string

const (
	ItemArmor  EffectTag = "item_armor"
	ItemWeapon EffectTag = "item_weapon"
	ItemPotion EffectTag = "item_potion"

	ActionBeg           EffectTag = "action_beg"
	ActionRevive        EffectTag = "action_revive"
	ActionFlee          EffectTag = "action_flee"
	ActionSteal         EffectTag = "action_steal"
	ActionHeal          EffectTag = "action_heal"
	ActionPoison        EffectTag = "action_poison"
	ActionSwapStats     EffectTag = "action_swap_stats"
	ActionExorcism      EffectTag = "action_exorcism"
	ActionFortune       EffectTag = "action_fortune"
	ActionCounter       EffectTag = "action_counter"
	ActionCurse         EffectTag = "action_curse"
	ActionStealWeapon   EffectTag = "action_steal_weapon"
	ActionStealArmor    EffectTag = "action_steal_armor"
	ActionRepelInvasion EffectTag = "action_repel_invasion"

	EventDrought   EffectTag = "event_drought"
	EventInvasion  EffectTag = "event_invasion"
	EventShareRice EffectTag = "event_share_rice"
	EventGoddess   EffectTag = "event_goddess"

	HiddenStrike EffectTag = "hidden_strike"
	HiddenWard   EffectTag = "hidden_ward"
)

// Card is an immutable card definition. Multiple physical copies of the
// same definition circulate through the supply.
type Card struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Type        CardType  `json:"type"`
	Effect      EffectTag `json:"effect"`
	Cost        int       `json:"cost"`   // stamina, 0 for Item/Event/Hidden
	Copies      int       `json:"copies"` // copies in the supply
	Description string    `json:"description"`
}

// BaseCards returns the standard 40-copy card catalog.
func BaseCards() []Card {
	var cards []Card
	add := func(copies int, id, name string, typ CardType, effect EffectTag, cost int, desc string) {
		cards = append(cards, Card{
			ID: id, Name: name, Type: typ, Effect: effect,
			Cost: cost, Copies: copies, Description: desc,
		})
	}

	// Items
	add(3, "armor", "Armor", CardItem, ItemArmor, 0, "Equip. Defense +1.")
	add(3, "weapon", "Weapon", CardItem, ItemWeapon, 0, "Equip. Attack +1.")
	add(2, "potion", "Tonic Potion", CardItem, ItemPotion, 0, "Equip. Max stamina +1.")

	// Actions
	add(2, "beg", "Begging Bowl", CardAction, ActionBeg, 2, "Every other living player gives you one random card.")
	add(1, "revive", "Second Life", CardAction, ActionRevive, 3, "Discard your hand. Return a fallen player to life.")
	add(2, "flee", "Flee the Raid", CardAction, ActionFlee, 1, "You are immune to Invasion this round.")
	add(3, "steal", "Pickpocket", CardAction, ActionSteal, 2, "Steal one random card from the target's hand.")
	add(3, "heal", "Healing Herbs", CardAction, ActionHeal, 1, "Recover 1 hp.")
	add(2, "poison", "Poison Vial", CardAction, ActionPoison, 2, "Target loses 1 hp per round for 3 rounds.")
	add(2, "swap_stats", "Topsy-Turvy Draught", CardAction, ActionSwapStats, 2, "Swap the target's attack and defense.")
	add(1, "exorcism", "Exorcist Charm", CardAction, ActionExorcism, 2, "Lift your own curse, or pass the target's curse to a random bystander.")
	add(2, "fortune", "Fortune Teller", CardAction, ActionFortune, 1, "Peek at the top 3 cards of the draw pile.")
	add(2, "counter", "Counterstance", CardAction, ActionCounter, 2, "Retaliate against the next attack made on you.")
	add(2, "curse", "Vengeful Spirit", CardAction, ActionCurse, 3, "Lock the target's max stamina at 2.")
	add(1, "steal_weapon", "Disarm", CardAction, ActionStealWeapon, 3, "Take an equipped weapon from the target.")
	add(1, "steal_armor", "Strip Armor", CardAction, ActionStealArmor, 3, "Take equipped armor from the target.")
	add(1, "repel_invasion", "Repel the Invaders", CardAction, ActionRepelInvasion, 2, "Everyone is immune to Invasion this round. Draw up to 2 cards.")

	// Events
	add(1, "drought", "Drought", CardEvent, EventDrought, 0, "Every living player loses 3 stamina.")
	add(2, "invasion", "Invasion", CardEvent, EventInvasion, 0, "Every living player discards 2 cards.")
	add(1, "share_rice", "Shared Harvest", CardEvent, EventShareRice, 0, "Pool one card from every hand, shuffle, redistribute.")
	add(1, "goddess", "Goddess's Favor", CardEvent, EventGoddess, 0, "The drawer heals to full and draws a card.")

	// Hidden actions
	add(1, "hidden_strike", "Assassination Order", CardHidden, HiddenStrike, 0, "Place face-down on a player. Activate a later round to eliminate them.")
	add(1, "hidden_ward", "Secret Ward", CardHidden, HiddenWard, 0, "Place face-down on a player. Absorbs the next strike against them.")

	return cards
}

// CardByID looks up a catalog definition by ID.
func CardByID(catalog []Card, id string) (Card, bool) {
	for _, c := range catalog {
		if c.ID == id {
			return c, true
		}
	}
	return Card{}, false
}
