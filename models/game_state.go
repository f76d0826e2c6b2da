package models

// Default arena and player parameters of a fresh game.
const (
	DefaultArenaWidth   = 24
	DefaultArenaHeight  = 8
	DefaultPlayerHealth = 40
	DefaultPlayerAttack = 3
	DefaultStartingRoom = 1
)

// ItemKind enumerates pickups lying in the arena.
type ItemKind string

const (
	ItemPotion   ItemKind = "potion"
	ItemTreasure ItemKind = "treasure"
)

// Position is a cell on the arena grid.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Adventurer is the player character.
type Adventurer struct {
	Position
	Health    int        `json:"health"`
	Attack    int        `json:"attack"`
	Inventory []ItemKind `json:"inventory"`
}

// Monster is a hostile creature in the current room.
type Monster struct {
	Position
	Name   string `json:"name"`
	Health int    `json:"health"`
	Attack int    `json:"attack"`
}

// Item is a pickup in the current room.
type Item struct {
	Position
	Kind ItemKind `json:"kind"`
}

// Door leads from the current room to another one.
type Door struct {
	Position
	TargetRoomID int `json:"target_room_id"`
}

// Arena is the grid of the current room and everything in it.
type Arena struct {
	Width    int        `json:"width"`
	Height   int        `json:"height"`
	RoomID   int        `json:"room_id"`
	Player   Adventurer `json:"player"`
	Monsters []Monster  `json:"monsters"`
	Items    []Item     `json:"items"`
	Door     *Door      `json:"door,omitempty"`
}

// GameState is the serialized form of a game session. Field order is the
// canonical encoding order and must not change between releases.
type GameState struct {
	Arena            Arena `json:"arena"`
	InProgress       bool  `json:"in_progress"`
	Turn             int   `json:"turn"`
	MonstersKilled   int32 `json:"monsters_killed"`
	DistanceTraveled int32 `json:"distance_traveled"`
}

// NewGameState returns the state of a brand new game.
func NewGameState() GameState {
	return GameState{
		Arena: Arena{
			Width:  DefaultArenaWidth,
			Height: DefaultArenaHeight,
			RoomID: DefaultStartingRoom,
			Player: Adventurer{
				Position:  Position{X: 1, Y: DefaultArenaHeight / 2},
				Health:    DefaultPlayerHealth,
				Attack:    DefaultPlayerAttack,
				Inventory: []ItemKind{},
			},
			Monsters: []Monster{},
			Items:    []Item{},
		},
		InProgress: true,
	}
}

// ProgressionFor returns the progression counters of g attributed to owner.
// The result is unsigned.
func (g GameState) ProgressionFor(owner string) Progression {
	return Progression{
		Owner:            owner,
		MonstersKilled:   g.MonstersKilled,
		DistanceTraveled: g.DistanceTraveled,
	}
}
