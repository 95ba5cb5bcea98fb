package domain

// Skill represents a discrete crafting action that adds a fixed amount of
// progress to the active session. Keys are single characters, unique across
// the catalog, and are the lookup used for user-triggered actions.
//
// Cooldown, ManaCost and CritChance are carried in the schema but not yet
// consulted by any gameplay logic.
type Skill struct {
	ID            int     `json:"skill_id"`
	Key           string  `json:"key"`
	Name          string  `json:"name"`
	ProgressBonus int     `json:"progress_bonus"`
	Category      string  `json:"category"`
	Cooldown      float64 `json:"cooldown,omitempty"`
	ManaCost      int     `json:"mana_cost,omitempty"`
	CritChance    float64 `json:"crit_chance,omitempty"`
}
