// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package device

// ItemPrefabInfo is the compile-time description of one item kind, the
// item-side counterpart to PrefabInfo (spec §6 registry introspection:
// `item_prefab_hashes()`, `item_prefab_info(hash)`).
type ItemPrefabInfo struct {
	ItemName    string
	Hash        int32
	MaxQuantity int
	SlotType    SlotType
}

var itemPrefabsByHash = map[int32]*ItemPrefabInfo{}
var itemPrefabsByName = map[string]*ItemPrefabInfo{}

func registerItem(p *ItemPrefabInfo) *ItemPrefabInfo {
	p.Hash = PrefabHash(p.ItemName)
	itemPrefabsByHash[p.Hash] = p
	itemPrefabsByName[p.ItemName] = p
	return p
}

// Item prefab registry: the item kinds the engine's reference scenarios
// exercise (spec §8 scenario 5's gas filter, plus a portable gas canister
// for manual atmospheric transfer). Like the device registry, this is a
// process-wide, read-only, single initialization point (spec §9).
var (
	ItemGasFilter = registerItem(&ItemPrefabInfo{
		ItemName:    "ItemGasFilter",
		MaxQuantity: 1,
		SlotType:    SlotGasFilter,
	})

	ItemGasCanister = registerItem(&ItemPrefabInfo{
		ItemName:    "ItemGasCanister",
		MaxQuantity: 1,
		SlotType:    SlotGasCanister,
	})
)

// ItemPrefabHashes returns every registered item prefab hash.
func ItemPrefabHashes() []int32 {
	out := make([]int32, 0, len(itemPrefabsByHash))
	for h := range itemPrefabsByHash {
		out = append(out, h)
	}
	return out
}

// ItemPrefabByHash looks up an item prefab by its hash.
func ItemPrefabByHash(hash int32) (*ItemPrefabInfo, bool) {
	p, ok := itemPrefabsByHash[hash]
	return p, ok
}

// ItemPrefabByName looks up an item prefab by its canonical name.
func ItemPrefabByName(name string) (*ItemPrefabInfo, bool) {
	p, ok := itemPrefabsByName[name]
	return p, ok
}
