package board

import (
	"fmt"

	"github.com/a-h/templ"

	"github.com/vango-dev/uikit/components"
	"github.com/vango-dev/uikit/ui"
)

// View maps the board onto the kanban components.
func (b *Board) View() components.KanbanView[*Column, *Card] {
	return components.KanbanView[*Column, *Card]{
		Columns: ui.Slice(b.Columns),
		Cards: func(col *Column) ui.Source[*Card] {
			return ui.Slice(col.Cards)
		},
		Column: func(col *Column) []components.KanbanColumnOption {
			return []components.KanbanColumnOption{
				components.KanbanColumnID(col.ID),
				components.KanbanColumnTitle(col.Title),
				components.KanbanColumnWidth(col.Width),
			}
		},
		Card: func(card *Card) []components.KanbanCardOption {
			return []components.KanbanCardOption{
				components.KanbanCardID(card.ID),
				components.KanbanCardDone(card.Done),
				components.Child[*components.KanbanCardConfig](cardBody(card)),
			}
		},
		Empty: func() templ.Component {
			return components.El("p", templ.Attributes{"class": "text-muted-foreground"}, "This board has no columns.")
		},
		EmptyColumn: func() templ.Component {
			return components.El("p", templ.Attributes{"class": "text-sm text-muted-foreground"}, "No cards")
		},
	}
}

func cardBody(card *Card) templ.Component {
	labels := ui.Many(ui.Slice(card.Labels), func(label string, _ int, _ string) templ.Component {
		return components.El("span",
			templ.Attributes{"class": "rounded bg-muted px-1.5 py-0.5 text-xs"},
			ui.DataAttrs(map[string]any{"label": label}),
			label,
		)
	})

	var description templ.Component
	if card.Description != "" {
		description = components.El("p", templ.Attributes{"class": "mt-1 text-sm text-muted-foreground"}, card.Description)
	}

	return ui.Fragment{
		components.El("p", templ.Attributes{"class": "font-medium"}, card.Title),
		description,
		components.El("div", templ.Attributes{"class": "mt-2 flex flex-wrap gap-1"}, labels),
	}
}

// Page renders the board as a complete HTML document.
func Page(b *Board) templ.Component {
	summary := components.Card(
		components.Class[*components.CardConfig]("m-4"),
		components.Child[*components.CardConfig](
			components.CardHeader(components.Child[*components.CardHeaderConfig](
				components.CardTitle(components.TextChild[*components.CardTitleConfig](b.Title)),
				components.CardDescription(components.TextChild[*components.CardDescriptionConfig](
					fmt.Sprintf("%d columns, %d cards", len(b.Columns), b.CardCount()),
				)),
			)),
			components.CardFooter(components.Child[*components.CardFooterConfig](
				components.Button(
					components.Variant(components.ButtonVariantPrimary),
					components.Data[*components.ButtonConfig](map[string]any{"opensDialog": "new-card"}),
					components.TextChild[*components.ButtonConfig]("New card"),
				),
			)),
		),
	)

	dialog := components.Dialog(
		components.DialogTitle("New card"),
		components.DialogCloseOnEscape(true),
		components.Attr[*components.DialogConfig](templ.Attributes{"id": "new-card"}),
		components.Child[*components.DialogConfig](
			components.El("form", templ.Attributes{"class": "grid gap-2", "method": "post", "action": "/cards"},
				components.Input(
					components.InputType("hidden"),
					components.InputName("column"),
					components.InputValue(firstColumnID(b)),
				),
				components.Label(
					components.LabelFor("card-title"),
					components.TextChild[*components.LabelConfig]("Title"),
				),
				components.Input(
					components.InputName("title"),
					components.InputPlaceholder("What needs doing?"),
					components.Attr[*components.InputConfig](templ.Attributes{"id": "card-title"}),
				),
				components.Button(
					components.ButtonType("submit"),
					components.TextChild[*components.ButtonConfig]("Add"),
				),
			),
		),
	)

	html := components.El("html", templ.Attributes{"lang": "en"},
		components.El("head",
			components.El("meta", templ.Attributes{"charset": "utf-8"}),
			components.El("title", b.Title),
		),
		components.El("body", templ.Attributes{"class": "bg-background text-foreground"},
			summary,
			components.KanbanBoardFrom(b.View(),
				components.KanbanBoardID(b.ID),
				components.Data[*components.KanbanBoardConfig](map[string]any{"moveUrl": "/cards/{id}/move"}),
			),
			dialog,
		),
	)

	return ui.Fragment{templ.Raw("<!DOCTYPE html>"), html}
}

func firstColumnID(b *Board) string {
	if len(b.Columns) == 0 {
		return ""
	}
	return b.Columns[0].ID
}
