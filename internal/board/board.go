// Package board holds the demo kanban board: its model, YAML loading and a
// built-in sample.
package board

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/uikit/ui/key"
)

// Board validation errors
var (
	ErrMissingID         = errors.New("id is required")
	ErrDuplicateColumnID = errors.New("duplicate column id")
	ErrDuplicateCardID   = errors.New("duplicate card id")
	ErrNoColumns         = errors.New("board has no columns")
)

type Board struct {
	ID      string    `json:"id" yaml:"id"`
	Title   string    `json:"title" yaml:"title"`
	Columns []*Column `json:"columns" yaml:"columns"`
}

type Column struct {
	key.Mark `yaml:",inline"`

	ID    string  `json:"id" yaml:"id"`
	Title string  `json:"title" yaml:"title"`
	Width string  `json:"width,omitempty" yaml:"width,omitempty"` // CSS length, e.g. "22rem"
	Cards []*Card `json:"cards" yaml:"cards"`
}

type Card struct {
	key.Mark `yaml:",inline"`

	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Labels      []string `json:"labels,omitempty" yaml:"labels,omitempty"`
	Done        bool     `json:"done,omitempty" yaml:"done,omitempty"`
}

// Load reads and parses a board file.
func Load(path string) (*Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read board: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML board, validates it and attaches identity keys to
// every column and card. Keys present in the document are kept. Columns
// and cards without an id get one derived from their title.
func Parse(data []byte) (*Board, error) {
	var b Board
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("decode board: %w", err)
	}
	b.fillIDs()
	if err := b.Validate(); err != nil {
		return nil, err
	}
	b.attachKeys(key.Keep)
	return &b, nil
}

// Validate checks that the board, every column and every card has a valid
// id (see ValidateID), and that column ids and card ids are unique across
// the board.
func (b *Board) Validate() error {
	if err := ValidateID(b.ID); err != nil {
		return fmt.Errorf("board: %w", err)
	}
	if len(b.Columns) == 0 {
		return ErrNoColumns
	}

	columns := make(map[string]bool, len(b.Columns))
	cards := make(map[string]bool)
	for i, col := range b.Columns {
		if col == nil {
			return fmt.Errorf("column %d: %w", i, ErrMissingID)
		}
		if err := ValidateID(col.ID); err != nil {
			return fmt.Errorf("column %d: %w", i, err)
		}
		if columns[col.ID] {
			return fmt.Errorf("%w: %q", ErrDuplicateColumnID, col.ID)
		}
		columns[col.ID] = true

		for j, card := range col.Cards {
			if card == nil {
				return fmt.Errorf("column %q card %d: %w", col.ID, j, ErrMissingID)
			}
			if err := ValidateID(card.ID); err != nil {
				return fmt.Errorf("column %q card %d: %w", col.ID, j, err)
			}
			if cards[card.ID] {
				return fmt.Errorf("%w: %q", ErrDuplicateCardID, card.ID)
			}
			cards[card.ID] = true
		}
	}
	return nil
}

// fillIDs derives missing column and card ids from titles. Explicit ids
// are reserved first so a derived id never takes one of them.
func (b *Board) fillIDs() {
	columns, cards := idSet{}, idSet{}
	for _, col := range b.Columns {
		if col == nil {
			continue
		}
		columns[col.ID] = col.ID != ""
		for _, card := range col.Cards {
			if card != nil {
				cards[card.ID] = card.ID != ""
			}
		}
	}

	for _, col := range b.Columns {
		if col == nil {
			continue
		}
		if col.ID == "" {
			col.ID = columns.derive(col.Title)
		}
		for _, card := range col.Cards {
			if card != nil && card.ID == "" {
				card.ID = cards.derive(card.Title)
			}
		}
	}
}

// Rekey gives every column and card a fresh identity key, so a client
// treats them all as new elements.
func (b *Board) Rekey() {
	b.attachKeys(key.New)
}

func (b *Board) attachKeys(mode key.Mode) {
	for _, col := range b.Columns {
		key.Attach(col, mode)
		for _, card := range col.Cards {
			key.Attach(card, mode)
		}
	}
}

// CardCount returns the number of cards on the board.
func (b *Board) CardCount() int {
	n := 0
	for _, col := range b.Columns {
		n += len(col.Cards)
	}
	return n
}
