// Package icon renders UI symbols in the variant chosen by icons.variant.
//
// Icons can be displayed as emoji, nerd-font glyphs, plain ASCII, kaomoji,
// or Unicode squares depending on user preference.
package icon

import (
	"github.com/nerdlist/nerdlist/key"
	"github.com/spf13/viper"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	kaomoji = "kaomoji"
	squares = "squares"
)

// AvailableVariants returns every supported variant name.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, kaomoji, squares}
}

// Icon identifies a symbol in the registry.
type Icon int

const (
	Success Icon = iota
	Fail
	Progress
	Lua
	Grow
	Skip
)

type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	kaomoji string
	squares string
}

var icons = map[Icon]*iconDef{
	Success:  {emoji: "🎉", nerd: "", plain: "ok", kaomoji: "(ᵔ◡ᵔ)", squares: "🟩"},
	Fail:     {emoji: "👎", nerd: "", plain: "x", kaomoji: "(╯°□°)╯︵ ┻━┻", squares: "🟥"},
	Progress: {emoji: "⏳", nerd: "", plain: "...", kaomoji: "(・_・;)", squares: "🟦"},
	Lua:      {emoji: "🌙", nerd: "", plain: "lua", kaomoji: "(￣▽￣)", squares: "🟪"},
	Grow:     {emoji: "📈", nerd: "", plain: "x2", kaomoji: "(ง'̀-'́)ง", squares: "🟨"},
	Skip:     {emoji: "⏭️", nerd: "", plain: "-", kaomoji: "(ー_ー)", squares: "⬜"},
}

func (d *iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case kaomoji:
		return d.kaomoji
	case squares:
		return d.squares
	default:
		return ""
	}
}

// Get returns the rendered symbol for i.
func Get(i Icon) string {
	return icons[i].Get()
}
