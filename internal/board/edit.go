package board

import (
	"errors"
	"fmt"
	"slices"

	"github.com/vango-dev/uikit/ui/key"
)

// Edit errors
var (
	ErrColumnNotFound = errors.New("column not found")
	ErrCardNotFound   = errors.New("card not found")
	ErrEmptyTitle     = errors.New("title is required")
)

// Column returns the column with the given id, or nil.
func (b *Board) Column(id string) *Column {
	for _, col := range b.Columns {
		if col.ID == id {
			return col
		}
	}
	return nil
}

// MoveCard moves a card to position index of another (or the same) column.
// An index past the end appends. The card keeps its identity key, so a
// keyed render sees a moved element rather than a new one.
func (b *Board) MoveCard(cardID, toColumnID string, index int) error {
	to := b.Column(toColumnID)
	if to == nil {
		return fmt.Errorf("%w: %q", ErrColumnNotFound, toColumnID)
	}

	from, i := b.findCard(cardID)
	if from == nil {
		return fmt.Errorf("%w: %q", ErrCardNotFound, cardID)
	}

	card := from.Cards[i]
	from.Cards = slices.Delete(from.Cards, i, i+1)

	index = max(0, min(index, len(to.Cards)))
	to.Cards = slices.Insert(to.Cards, index, card)
	return nil
}

// AddCard appends a new card to a column. Its id is derived from the title
// and made unique on the board.
func (b *Board) AddCard(columnID, title string) (*Card, error) {
	col := b.Column(columnID)
	if col == nil {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, columnID)
	}

	taken := idSet{}
	for _, c := range b.Columns {
		for _, card := range c.Cards {
			taken[card.ID] = true
		}
	}

	id := taken.derive(title)
	if id == "" {
		return nil, ErrEmptyTitle
	}

	card := key.Attach(&Card{ID: id, Title: title}, key.Keep)
	col.Cards = append(col.Cards, card)
	return card, nil
}

func (b *Board) findCard(id string) (*Column, int) {
	for _, col := range b.Columns {
		for i, card := range col.Cards {
			if card.ID == id {
				return col, i
			}
		}
	}
	return nil, -1
}
