package components

import (
	"slices"

	"github.com/a-h/templ"

	"github.com/vango-dev/uikit/ui"
)

const (
	HookNameSortable = "Sortable"

	// DefaultColumnWidth is the column width used when none is set.
	DefaultColumnWidth = "20rem"
)

// --- Kanban Board ---

type KanbanBoardConfig struct {
	BaseConfig
	ID string
}

func (c *KanbanBoardConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type KanbanBoardOption = Option[*KanbanBoardConfig]

func KanbanBoardID(id string) KanbanBoardOption {
	return func(c *KanbanBoardConfig) { c.ID = id }
}

func KanbanBoard(opts ...KanbanBoardOption) *Element {
	c := apply(&KanbanBoardConfig{}, opts)

	var attrs templ.Attributes
	if c.ID != "" {
		attrs = ui.DataAttrs(map[string]any{"boardId": c.ID})
	}

	return c.element("div", ui.Str("flex h-full w-full gap-4 overflow-x-auto p-4 bg-muted/20"), nil, attrs)
}

// --- Kanban Column ---

type KanbanColumnConfig struct {
	BaseConfig
	ID    string
	Key   string
	Title string
	Width string
}

func (c *KanbanColumnConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type KanbanColumnOption = Option[*KanbanColumnConfig]

func KanbanColumnID(id string) KanbanColumnOption {
	return func(c *KanbanColumnConfig) { c.ID = id }
}

// KanbanColumnKey sets data-key, the column's identity across renders.
func KanbanColumnKey(key string) KanbanColumnOption {
	return func(c *KanbanColumnConfig) { c.Key = key }
}

func KanbanColumnTitle(title string) KanbanColumnOption {
	return func(c *KanbanColumnConfig) { c.Title = title }
}

// KanbanColumnWidth sets the column width through --kanban-column-width.
// An empty width keeps DefaultColumnWidth.
func KanbanColumnWidth(width string) KanbanColumnOption {
	return func(c *KanbanColumnConfig) {
		if width != "" {
			c.Width = width
		}
	}
}

type sortableConfig struct {
	Group      string `json:"group"`
	Animation  int    `json:"animation"`
	GhostClass string `json:"ghostClass"`
}

// KanbanColumn renders a column header and a sortable card container. User
// children go into the container.
func KanbanColumn(opts ...KanbanColumnOption) *Element {
	c := apply(&KanbanColumnConfig{Width: DefaultColumnWidth}, opts)

	data := map[string]any{"columnId": c.ID}
	if c.Key != "" {
		data["key"] = c.Key
	}

	var header templ.Component
	if c.Title != "" {
		header = El("h3",
			templ.Attributes{"class": "p-4 font-semibold text-secondary-foreground"},
			c.Title,
		)
	}

	// Shared group allows moving cards between columns
	sortable := hookAttrs(HookNameSortable, sortableConfig{
		Group:      "kanban",
		Animation:  150,
		GhostClass: "opacity-50",
	})

	// min-h keeps a drop target when the column is empty
	content := El("div",
		slices.Concat([]NodeOption{
			templ.Attributes{"class": "flex flex-col gap-2 p-4 pt-0 min-h-[50px]"},
			sortable,
		}, c.BaseConfig.Options)...,
	)

	col := *c
	col.Options = nil
	style := ui.CustomStyle(ui.Style{"--kanban-column-width": c.Width})

	return col.element("div",
		ui.Str("flex w-[var(--kanban-column-width)] shrink-0 flex-col rounded-lg bg-secondary"),
		style,
		ui.DataAttrs(data),
		header,
		content,
	)
}

// --- Kanban Card ---

type KanbanCardConfig struct {
	BaseConfig
	ID   string
	Key  string
	Done bool
}

func (c *KanbanCardConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type KanbanCardOption = Option[*KanbanCardConfig]

func KanbanCardID(id string) KanbanCardOption {
	return func(c *KanbanCardConfig) { c.ID = id }
}

// KanbanCardKey sets data-key, the card's identity across renders.
func KanbanCardKey(key string) KanbanCardOption {
	return func(c *KanbanCardConfig) { c.Key = key }
}

func KanbanCardDone(done bool) KanbanCardOption {
	return func(c *KanbanCardConfig) { c.Done = done }
}

func KanbanCard(opts ...KanbanCardOption) *Element {
	c := apply(&KanbanCardConfig{}, opts)

	class := ui.ClassNames(
		ui.Str("cursor-grab rounded border bg-card p-3 text-card-foreground shadow-sm hover:ring-2 hover:ring-primary/50"),
		ui.FlagList{{Name: "opacity-60 line-through", Value: c.Done}},
	)

	data := map[string]any{}
	if c.ID != "" {
		data["id"] = c.ID
	}
	if c.Key != "" {
		data["key"] = c.Key
	}
	if c.Done {
		data["done"] = true
	}

	return c.element("div", ui.Str(class), nil, ui.DataAttrs(data))
}

// --- Board from a model ---

// KanbanView maps a board model of columns C holding cards K onto the
// kanban components.
type KanbanView[C, K any] struct {
	Columns ui.Source[C]
	Cards   func(column C) ui.Source[K]
	Column  func(column C) []KanbanColumnOption
	Card    func(card K) []KanbanCardOption

	// Empty renders in place of the columns when there are none.
	Empty ui.Fallback
	// EmptyColumn renders inside a column that has no cards.
	EmptyColumn ui.Fallback
}

// KanbanBoardFrom renders every column and card of v with ui.Many. Each
// column and card carries its identity key in data-key, so a client can
// match elements across renders even when IDs repeat.
func KanbanBoardFrom[C, K any](v KanbanView[C, K], opts ...KanbanBoardOption) *Element {
	columns := ui.Many(v.Columns, func(column C, _ int, key string) templ.Component {
		cards := ui.Many(v.Cards(column), func(card K, _ int, cardKey string) templ.Component {
			return KanbanCard(slices.Concat(v.Card(card), []KanbanCardOption{KanbanCardKey(cardKey)})...)
		}, v.EmptyColumn)

		return KanbanColumn(slices.Concat(v.Column(column), []KanbanColumnOption{
			KanbanColumnKey(key),
			Child[*KanbanColumnConfig](cards),
		})...)
	}, v.Empty)

	return KanbanBoard(slices.Concat(opts, []KanbanBoardOption{Child[*KanbanBoardConfig](columns)})...)
}
