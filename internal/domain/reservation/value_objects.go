package reservation

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrNoItems         = errors.New("reservation requires at least one item")
	ErrInvalidQuantity = errors.New("item quantity must be positive")
	ErrNegativePrice   = errors.New("price cannot be negative")
)

type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func NewMoneyFromInt64(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativePrice
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) MultiplyBy(qty int32) Money {
	return Money{cents: m.cents * int64(qty)}
}

// LineItem is an ordered item snapshot. Name and unit price are frozen at
// reservation time so later catalog edits don't rewrite history.
type LineItem struct {
	itemID    uuid.UUID
	name      string
	quantity  int32
	unitPrice Money
}

func NewLineItem(itemID uuid.UUID, name string, quantity int32, unitPrice Money) (LineItem, error) {
	if quantity <= 0 {
		return LineItem{}, ErrInvalidQuantity
	}
	return LineItem{
		itemID:    itemID,
		name:      name,
		quantity:  quantity,
		unitPrice: unitPrice,
	}, nil
}

func (li LineItem) ItemID() uuid.UUID { return li.itemID }
func (li LineItem) Name() string      { return li.name }
func (li LineItem) Quantity() int32   { return li.quantity }
func (li LineItem) UnitPrice() Money  { return li.unitPrice }

func (li LineItem) Total() Money {
	return li.unitPrice.MultiplyBy(li.quantity)
}

type Note struct {
	value string
}

func NewNote(value string) Note {
	return Note{value: strings.TrimSpace(value)}
}

func (n Note) String() string {
	return n.value
}

func (n Note) IsEmpty() bool {
	return n.value == ""
}
