package models

// LocalSave is the client-side cache row written after every save of an
// authenticated player. The progression carries a locally computed
// signature that must verify before the row is trusted again.
type LocalSave struct {
	Game        GameState   `json:"game"`
	Progression Progression `json:"progression"`
}
