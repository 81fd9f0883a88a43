package models

import (
	"sort"
	"strings"
)

// GroceryItem is an ingredient and the number of planned meals needing it.
type GroceryItem struct {
	Name     string
	Quantity int
}

type GroceryList []GroceryItem

// Tally collects ingredients, deduplicating by FoldKey. The first spelling
// seen wins.
type Tally struct {
	index map[string]int
	items GroceryList
}

func NewTally() *Tally {
	return &Tally{index: make(map[string]int)}
}

// Add counts each distinct ingredient of one meal once.
func (t *Tally) Add(ingredients []string) {
	seen := make(map[string]struct{}, len(ingredients))
	for _, ing := range ingredients {
		ing = strings.TrimSpace(ing)
		if ing == "" {
			continue
		}
		key := FoldKey(ing)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		if i, ok := t.index[key]; ok {
			t.items[i].Quantity++
			continue
		}
		t.index[key] = len(t.items)
		t.items = append(t.items, GroceryItem{Name: ing, Quantity: 1})
	}
}

// List returns the items sorted by name.
func (t *Tally) List() GroceryList {
	out := make(GroceryList, len(t.items))
	copy(out, t.items)
	sort.SliceStable(out, func(i, j int) bool {
		return FoldKey(out[i].Name) < FoldKey(out[j].Name)
	})
	return out
}
