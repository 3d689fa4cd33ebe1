// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package device

// Item owns a prefab reference, a name hash, quantity bookkeeping, and
// optional per-item logic properties (spec §3).
type Item struct {
	PrefabHash  int32
	NameHash    int32
	Quantity    int
	MaxQuantity int

	properties map[LogicType]float64
}

// NewItem creates an item of the given prefab with quantity 1.
func NewItem(prefabHash int32, maxQuantity int) *Item {
	return &Item{PrefabHash: prefabHash, Quantity: 1, MaxQuantity: maxQuantity, properties: make(map[LogicType]float64)}
}

// SetProperty sets a per-item logic property (e.g. a gas filter's selected
// species, or a canister's internal pressure).
func (it *Item) SetProperty(l LogicType, v float64) { it.properties[l] = v }

// Property reads a per-item logic property, returning 0 if unset.
func (it *Item) Property(l LogicType) float64 { return it.properties[l] }

// Slot owns an optional item reference plus quantity/type constraints
// (spec §3).
type Slot struct {
	Type        SlotType
	Item        *Item
	MaxQuantity int
}

// Insert places item into the slot. If the slot already holds an item of a
// different prefab, item is returned as leftover rather than merged,
// matching spec §4.4's `insert_item_into_slot(i, item) → leftover_item?`.
func (s *Slot) Insert(item *Item) *Item {
	if s.Item == nil {
		s.Item = item
		return nil
	}
	if s.Item.PrefabHash == item.PrefabHash && s.Item.Quantity < s.Item.MaxQuantity {
		room := s.Item.MaxQuantity - s.Item.Quantity
		move := item.Quantity
		if move > room {
			move = room
		}
		s.Item.Quantity += move
		item.Quantity -= move
		if item.Quantity <= 0 {
			return nil
		}
		return item
	}
	return item
}

// Remove detaches and returns the slot's item, leaving the slot empty.
func (s *Slot) Remove() *Item {
	it := s.Item
	s.Item = nil
	return it
}
