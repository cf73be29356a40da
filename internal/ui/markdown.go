package ui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"

	"github.com/five82/vuecrm/internal/appearance"
)

type sizedRenderer struct {
	width int
	tr    *glamour.TermRenderer
}

// markdownRenderer caches one glamour renderer per mode, rebuilt when the wrap
// width changes. Model is copied on every update, so it is shared through a
// pointer.
type markdownRenderer struct {
	mu        sync.Mutex
	renderers map[appearance.Mode]sizedRenderer
	logger    *zap.Logger
}

func newMarkdownRenderer(logger *zap.Logger) *markdownRenderer {
	return &markdownRenderer{
		renderers: make(map[appearance.Mode]sizedRenderer),
		logger:    logger,
	}
}

// Render renders md for the given mode, falling back to the raw text.
func (r *markdownRenderer) Render(md string, mode appearance.Mode, width int) string {
	if r == nil {
		return md
	}
	width = max(width, 20)

	r.mu.Lock()
	defer r.mu.Unlock()

	cached, ok := r.renderers[mode]
	if !ok || cached.width != width {
		style := "dark"
		if mode == appearance.Light {
			style = "light"
		}
		tr, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			r.logger.Warn("markdown renderer unavailable", zap.Error(err))
			return md
		}
		cached = sizedRenderer{width: width, tr: tr}
		r.renderers[mode] = cached
	}

	out, err := cached.tr.Render(md)
	if err != nil {
		r.logger.Warn("render markdown", zap.Error(err))
		return md
	}
	return strings.Trim(out, "\n")
}
