package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/filez/internal/logging"
)

// ColorTheme defines application colors.
type ColorTheme struct {
	Background    tcell.Color
	Foreground    tcell.Color
	BorderFocused tcell.Color
	Border        tcell.Color
	HeaderFg      tcell.Color
	DimFg         tcell.Color
	SelectionBg   tcell.Color
	SelectionFg   tcell.Color
	DirectoryFg   tcell.Color
	SymlinkFg     tcell.Color
	FileFg        tcell.Color
	DotDotFg      tcell.Color
	MatchBg       tcell.Color
	MatchFg       tcell.Color
	UploadFg      tcell.Color
	DeleteFg      tcell.Color
	SliderFg      tcell.Color
	SliderBg      tcell.Color
	PendingFg     tcell.Color
	ErrorFg       tcell.Color
	OkFg          tcell.Color
	PopupBg       tcell.Color
	LevelFg       map[logging.Level]tcell.Color
}

// GetColorTheme returns the default color scheme.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		Background:    tcell.ColorDefault,
		Foreground:    tcell.ColorDefault,
		BorderFocused: tcell.ColorGreen,
		Border:        tcell.ColorWhite,
		HeaderFg:      tcell.ColorYellow,
		DimFg:         tcell.ColorGray,
		SelectionBg:   tcell.Color33,
		SelectionFg:   tcell.ColorWhite,
		DirectoryFg:   tcell.Color33,
		SymlinkFg:     tcell.Color51,
		FileFg:        tcell.ColorDefault,
		DotDotFg:      tcell.ColorLightSlateGray,
		MatchBg:       tcell.ColorYellow,
		MatchFg:       tcell.ColorBlack,
		UploadFg:      tcell.ColorGreen,
		DeleteFg:      tcell.ColorRed,
		SliderFg:      tcell.ColorWhite,
		SliderBg:      tcell.ColorBlack,
		PendingFg:     tcell.ColorYellow,
		ErrorFg:       tcell.ColorRed,
		OkFg:          tcell.ColorGreen,
		PopupBg:       tcell.ColorDefault,
		LevelFg: map[logging.Level]tcell.Color{
			logging.LevelTrace: tcell.ColorDarkCyan,
			logging.LevelDebug: tcell.ColorBlue,
			logging.LevelInfo:  tcell.ColorGreen,
			logging.LevelWarn:  tcell.ColorYellow,
			logging.LevelError: tcell.ColorRed,
		},
	}
}

func (t ColorTheme) base() tcell.Style {
	return tcell.StyleDefault.Background(t.Background).Foreground(t.Foreground)
}

func (t ColorTheme) border(focused bool) tcell.Style {
	if focused {
		return t.base().Foreground(t.BorderFocused)
	}
	return t.base().Foreground(t.Border)
}

func (t ColorTheme) level(l logging.Level) tcell.Style {
	style := t.base().Foreground(t.LevelFg[l])
	if l >= logging.LevelError {
		style = style.Bold(true)
	}
	return style
}
