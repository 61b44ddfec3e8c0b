package models

import (
	"bytes"
	"encoding/json"
)

// ShoppingItem is one aggregated line of a shopping list
type ShoppingItem struct {
	Key      string  `json:"key"`
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// ShoppingList is a mapping from item key to item that remembers the order
// in which keys were first inserted.
type ShoppingList struct {
	items []ShoppingItem
	index map[string]int
}

func NewShoppingList() *ShoppingList {
	return &ShoppingList{index: make(map[string]int)}
}

// Get returns the item stored under key
func (l *ShoppingList) Get(key string) (ShoppingItem, bool) {
	i, ok := l.index[key]
	if !ok {
		return ShoppingItem{}, false
	}
	return l.items[i], true
}

// Set stores an item under its key. An existing key keeps its position.
func (l *ShoppingList) Set(item ShoppingItem) {
	if i, ok := l.index[item.Key]; ok {
		l.items[i] = item
		return
	}
	l.index[item.Key] = len(l.items)
	l.items = append(l.items, item)
}

func (l *ShoppingList) Len() int {
	return len(l.items)
}

// Keys returns item keys in insertion order
func (l *ShoppingList) Keys() []string {
	keys := make([]string, len(l.items))
	for i, it := range l.items {
		keys[i] = it.Key
	}
	return keys
}

// Items returns a copy of the items in insertion order
func (l *ShoppingList) Items() []ShoppingItem {
	out := make([]ShoppingItem, len(l.items))
	copy(out, l.items)
	return out
}

// MarshalJSON encodes the list as a JSON object of {quantity, unit} keyed by
// item key, in insertion order.
func (l *ShoppingList) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, it := range l.items {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(it.Key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(struct {
			Quantity float64 `json:"quantity"`
			Unit     string  `json:"unit"`
		}{it.Quantity, it.Unit})
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
