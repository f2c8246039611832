// Package model defines shared data structures.
package model

// Config defines practice session settings.
type Config struct {
	KeepTrailingNewline bool
	ExitOnComplete      bool
	WidthPct            float64
	KeyHelp             bool
	Theme               Theme
}

// Theme holds the colors used for each part of the practice text.
type Theme struct {
	Typed      string
	MistypedFg string
	MistypedBg string
	CurrentFg  string
	CurrentBg  string
	Untyped    string
	Footer     string
}

// WordsConfig defines settings for generated practice text.
type WordsConfig struct {
	WordListPath string
	Count        int
	LineWords    int
	CapsPct      float64
	PunctPct     float64
	PunctSet     string
	ASCIIOnly    bool
}

// DefaultTheme mirrors the built-in palette.
func DefaultTheme() Theme {
	return Theme{
		Typed:      "#8C8C8C",
		MistypedFg: "#FF4D4F",
		MistypedBg: "#F0F0F0",
		CurrentFg:  "#000000",
		CurrentBg:  "#F0F0F0",
		Untyped:    "#D0D0D0",
		Footer:     "#6E6E6E",
	}
}
