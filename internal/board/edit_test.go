package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cardIDs(col *Column) []string {
	ids := make([]string, len(col.Cards))
	for i, c := range col.Cards {
		ids[i] = c.ID
	}
	return ids
}

func TestMoveCard(t *testing.T) {
	tests := []struct {
		name   string
		card   string
		column string
		index  int
		want   map[string][]string
	}{
		{
			name:   "to another column",
			card:   "copy",
			column: "done",
			index:  0,
			want:   map[string][]string{"todo": {"pricing"}, "done": {"copy", "domain"}},
		},
		{
			name:   "index past the end appends",
			card:   "copy",
			column: "doing",
			index:  99,
			want:   map[string][]string{"todo": {"pricing"}, "doing": {"signup", "copy"}},
		},
		{
			name:   "negative index prepends",
			card:   "signup",
			column: "todo",
			index:  -3,
			want:   map[string][]string{"todo": {"signup", "copy", "pricing"}, "doing": {}},
		},
		{
			name:   "reorder within a column",
			card:   "copy",
			column: "todo",
			index:  1,
			want:   map[string][]string{"todo": {"pricing", "copy"}},
		},
		{
			name:   "into an empty column",
			card:   "domain",
			column: "blocked",
			index:  0,
			want:   map[string][]string{"done": {}, "blocked": {"domain"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Sample()
			from, i := b.findCard(tt.card)
			require.NotNil(t, from)
			moved := from.Cards[i]
			keyBefore := moved.IdentityKey

			require.NoError(t, b.MoveCard(tt.card, tt.column, tt.index))

			for col, ids := range tt.want {
				assert.Equal(t, ids, cardIDs(b.Column(col)), col)
			}
			assert.Equal(t, keyBefore, moved.IdentityKey, "moving keeps the identity key")
			assert.Equal(t, 4, b.CardCount())
		})
	}
}

func TestMoveCard_NotFound(t *testing.T) {
	b := Sample()

	assert.ErrorIs(t, b.MoveCard("missing", "todo", 0), ErrCardNotFound)
	assert.ErrorIs(t, b.MoveCard("copy", "missing", 0), ErrColumnNotFound)
	assert.Equal(t, []string{"copy", "pricing"}, cardIDs(b.Column("todo")), "failed move changes nothing")
}

func TestAddCard(t *testing.T) {
	b := Sample()

	card, err := b.AddCard("blocked", "Legal review")
	require.NoError(t, err)
	assert.Equal(t, "legal-review", card.ID)
	assert.NotEmpty(t, card.IdentityKey)
	assert.Equal(t, []string{"legal-review"}, cardIDs(b.Column("blocked")))

	again, err := b.AddCard("todo", "Copy")
	require.NoError(t, err)
	assert.Equal(t, "copy-2", again.ID, "ids stay unique on the board")
	assert.NotEqual(t, card.IdentityKey, again.IdentityKey)
	require.NoError(t, b.Validate())
}

func TestAddCard_Errors(t *testing.T) {
	b := Sample()

	_, err := b.AddCard("missing", "Anything")
	assert.ErrorIs(t, err, ErrColumnNotFound)

	_, err = b.AddCard("todo", "   ")
	assert.ErrorIs(t, err, ErrEmptyTitle)
}
