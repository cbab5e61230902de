package engine

import (
	"math"

	"github.com/nathoo/quizfall/engine/state"
	"github.com/nathoo/quizfall/types"
)

// upgradeCostGrowth scales an item's next upgrade price.
const upgradeCostGrowth = 1.5

// EquipWeapon makes the weapon current. Returns false if not owned.
func (e *Engine) EquipWeapon(id string) bool {
	if state.FindWeapon(e.State, id) < 0 {
		return false
	}
	e.State.Inventory.CurrentWeaponID = id
	res := types.Result{}
	e.commit(&res)
	return true
}

// EquipArmor makes the armor current. Returns false if not owned.
func (e *Engine) EquipArmor(id string) bool {
	if state.FindArmor(e.State, id) < 0 {
		return false
	}
	e.State.Inventory.CurrentArmorID = id
	res := types.Result{}
	e.commit(&res)
	return true
}

// UpgradeWeapon spends gems to raise the weapon one level. The next upgrade
// costs half again as much.
func (e *Engine) UpgradeWeapon(id string) bool {
	i := state.FindWeapon(e.State, id)
	if i < 0 {
		return false
	}
	w := e.State.Inventory.Weapons[i]
	if !e.spendGems(w.UpgradeCost) {
		return false
	}
	w.Level++
	w.UpgradeCost = int(math.Floor(float64(w.UpgradeCost) * upgradeCostGrowth))
	e.State.Inventory.Weapons[i] = w

	res := types.Result{}
	e.commit(&res)
	return true
}

// UpgradeArmor spends gems to raise the armor one level.
func (e *Engine) UpgradeArmor(id string) bool {
	i := state.FindArmor(e.State, id)
	if i < 0 {
		return false
	}
	a := e.State.Inventory.Armors[i]
	if !e.spendGems(a.UpgradeCost) {
		return false
	}
	a.Level++
	a.UpgradeCost = int(math.Floor(float64(a.UpgradeCost) * upgradeCostGrowth))
	e.State.Inventory.Armors[i] = a

	res := types.Result{}
	e.commit(&res)
	return true
}

// SellWeapon trades the weapon for its sell price. The equipped weapon
// cannot be sold.
func (e *Engine) SellWeapon(id string) bool {
	s := e.State
	i := state.FindWeapon(s, id)
	if i < 0 || s.Inventory.CurrentWeaponID == id {
		return false
	}
	price := s.Inventory.Weapons[i].SellPrice
	s.Inventory.Weapons = append(s.Inventory.Weapons[:i:i], s.Inventory.Weapons[i+1:]...)
	s.Coins += price
	s.Stats.CoinsEarned += price

	res := types.Result{}
	e.commit(&res)
	return true
}

// SellArmor trades the armor for its sell price. The equipped armor cannot
// be sold.
func (e *Engine) SellArmor(id string) bool {
	s := e.State
	i := state.FindArmor(s, id)
	if i < 0 || s.Inventory.CurrentArmorID == id {
		return false
	}
	price := s.Inventory.Armors[i].SellPrice
	s.Inventory.Armors = append(s.Inventory.Armors[:i:i], s.Inventory.Armors[i+1:]...)
	s.Coins += price
	s.Stats.CoinsEarned += price

	res := types.Result{}
	e.commit(&res)
	return true
}

// DiscardWeapon removes the weapon with no refund. Equipped weapons cannot
// be discarded.
func (e *Engine) DiscardWeapon(id string) bool {
	s := e.State
	i := state.FindWeapon(s, id)
	if i < 0 || s.Inventory.CurrentWeaponID == id {
		return false
	}
	s.Inventory.Weapons = append(s.Inventory.Weapons[:i:i], s.Inventory.Weapons[i+1:]...)

	res := types.Result{}
	e.commit(&res)
	return true
}

// DiscardArmor removes the armor with no refund.
func (e *Engine) DiscardArmor(id string) bool {
	s := e.State
	i := state.FindArmor(s, id)
	if i < 0 || s.Inventory.CurrentArmorID == id {
		return false
	}
	s.Inventory.Armors = append(s.Inventory.Armors[:i:i], s.Inventory.Armors[i+1:]...)

	res := types.Result{}
	e.commit(&res)
	return true
}

// EquipRelic adds an owned relic to the equipped set. Relics have no equip
// limit; double-equipping the same relic is rejected.
func (e *Engine) EquipRelic(id string) bool {
	s := e.State
	if state.FindRelic(s, id) < 0 || state.RelicEquipped(s, id) {
		return false
	}
	s.Inventory.EquippedRelicIDs = append(s.Inventory.EquippedRelicIDs, id)

	res := types.Result{}
	e.commit(&res)
	return true
}

// UnequipRelic removes a relic from the equipped set; the relic stays owned.
func (e *Engine) UnequipRelic(id string) bool {
	s := e.State
	for i, rid := range s.Inventory.EquippedRelicIDs {
		if rid == id {
			s.Inventory.EquippedRelicIDs = append(
				s.Inventory.EquippedRelicIDs[:i:i], s.Inventory.EquippedRelicIDs[i+1:]...)
			res := types.Result{}
			e.commit(&res)
			return true
		}
	}
	return false
}

// UpgradeRelic spends gems to raise the relic one level, growing its fixed
// per-level contribution.
func (e *Engine) UpgradeRelic(id string) bool {
	s := e.State
	i := state.FindRelic(s, id)
	if i < 0 {
		return false
	}
	r := s.Inventory.Relics[i]
	if !e.spendGems(r.UpgradeCost) {
		return false
	}
	r.Level++
	r.UpgradeCost = int(math.Floor(float64(r.UpgradeCost) * upgradeCostGrowth))
	s.Inventory.Relics[i] = r

	res := types.Result{}
	e.commit(&res)
	return true
}
