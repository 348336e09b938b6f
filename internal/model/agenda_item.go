// Package model defines the agenda data types.
package model

import "github.com/google/uuid"

// AgendaItem is a single conference talk on the agenda.
type AgendaItem struct {
	ID     string `json:"id" bson:"_id"`
	Title  string `json:"title" bson:"title"`
	Author string `json:"author" bson:"author"`
	Day    string `json:"day" bson:"day"`
	Time   string `json:"time" bson:"time"`
}

// NewAgendaItem returns an empty item with a freshly generated id.
func NewAgendaItem() AgendaItem {
	return AgendaItem{ID: uuid.NewString()}
}

// NewAgendaItemWithFields returns an item without an id; the id is assigned
// when the item is persisted.
func NewAgendaItemWithFields(title, author, day, time string) AgendaItem {
	return AgendaItem{
		Title:  title,
		Author: author,
		Day:    day,
		Time:   time,
	}
}

// HasID reports whether an id has been assigned.
func (a AgendaItem) HasID() bool {
	return a.ID != ""
}

// SameAs reports whether a and other are the same item. Items without an id
// are never the same as anything.
func (a AgendaItem) SameAs(other AgendaItem) bool {
	return a.HasID() && a.ID == other.ID
}
