package component

import "github.com/lixenwraith/arena/ability"

// InventoryComponent binds an ability inventory to its loadout ids
type InventoryComponent struct {
	ability.Inventory
	Loadout []string
}
