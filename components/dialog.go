package components

import (
	"github.com/a-h/templ"

	"github.com/vango-dev/uikit/ui"
)

const (
	HookNameDialog = "Dialog"
	HookEventClose = "close"

	// DefaultDialogLayer is the stacking level used when none is set.
	DefaultDialogLayer = 50
)

type DialogConfig struct {
	BaseConfig
	Open          bool
	CloseOnEscape bool
	Layer         int
	Title         string
}

// dialogHookConfig is what the client-side hook reads from data-hook-config.
type dialogHookConfig struct {
	Open          bool   `json:"open"`
	CloseOnEscape bool   `json:"closeOnEscape"`
	CloseEvent    string `json:"closeEvent"`
}

func makeDialogHookConfig(c *DialogConfig) dialogHookConfig {
	return dialogHookConfig{
		Open:          c.Open,
		CloseOnEscape: c.CloseOnEscape,
		CloseEvent:    HookEventClose,
	}
}

func (c *DialogConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type DialogOption = Option[*DialogConfig]

func DialogOpen(b bool) DialogOption {
	return func(c *DialogConfig) { c.Open = b }
}

func DialogCloseOnEscape(b bool) DialogOption {
	return func(c *DialogConfig) { c.CloseOnEscape = b }
}

// DialogLayer sets the dialog's stacking level, exposed to CSS as
// --dialog-layer.
func DialogLayer(z int) DialogOption {
	return func(c *DialogConfig) { c.Layer = z }
}

// DialogTitle labels the dialog for assistive technology.
func DialogTitle(title string) DialogOption {
	return func(c *DialogConfig) { c.Title = title }
}

func Dialog(opts ...DialogOption) *Element {
	c := apply(&DialogConfig{Layer: DefaultDialogLayer}, opts)

	class := ui.ClassNames(
		ui.Str("fixed left-[50%] top-[50%] z-[var(--dialog-layer)] grid w-full max-w-lg translate-x-[-50%] translate-y-[-50%] gap-4 border bg-background p-6 shadow-lg duration-200 data-[state=open]:animate-in data-[state=closed]:animate-out data-[state=closed]:fade-out-0 data-[state=open]:fade-in-0 data-[state=closed]:zoom-out-95 data-[state=open]:zoom-in-95 sm:rounded-lg"),
		ui.When(!c.Open, "hidden"),
	)

	state := "closed"
	if c.Open {
		state = "open"
	}

	attrs := templ.Attributes{
		"role":       "dialog",
		"aria-modal": "true",
		"data-state": state,
	}
	if c.Title != "" {
		attrs["aria-label"] = c.Title
	}

	style := ui.CustomStyle(ui.Style{"--dialog-layer": c.Layer})

	return c.element("div", ui.Str(class), style,
		attrs,
		hookAttrs(HookNameDialog, makeDialogHookConfig(c)),
	)
}
