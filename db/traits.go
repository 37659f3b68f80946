package db

import (
	"iter"

	"github.com/mundomaya/hoteles/model"
)

// Storage is the promo impression log.
type Storage interface {
	Store(event *model.ModalEvent) error
	GatherCounts() ([]model.EventCount, error)
	AllIterator() iter.Seq2[model.ModalEvent, error]
	Close()
}

// Nop discards events. Used when the impression log is disabled.
type Nop struct{}

func (Nop) Store(*model.ModalEvent) error { return nil }

func (Nop) GatherCounts() ([]model.EventCount, error) { return nil, nil }

func (Nop) AllIterator() iter.Seq2[model.ModalEvent, error] {
	return func(func(model.ModalEvent, error) bool) {}
}

func (Nop) Close() {}
