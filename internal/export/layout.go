package export

import "github.com/jstrand/flashdeck/internal/config"

// Layout carries the tunable formatting constants shared by both renderers.
// Wrap widths are characters per line; text must fit a fixed visual width, so
// these are configuration rather than literals in the formatting logic.
type Layout struct {
	QuestionWrapWidth int
	AnswerWrapWidth   int
}

// LayoutFromConfig builds a Layout from the export configuration.
func LayoutFromConfig(cfg config.ExportConfig) Layout {
	return Layout{
		QuestionWrapWidth: cfg.QuestionWrapWidth,
		AnswerWrapWidth:   cfg.AnswerWrapWidth,
	}
}
