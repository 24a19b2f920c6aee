package html

import (
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// Partial keys recognised in theme.RendererConfig.Partials.
const (
	PartialForm  = "form"
	PartialField = "field"
)

type themeContext struct {
	Name         string
	Variant      string
	Stylesheet   string
	CSSVarsStyle string
}

func buildThemeContext(cfg *theme.RendererConfig) themeContext {
	if cfg == nil {
		return themeContext{}
	}
	ctx := themeContext{
		Name:         cfg.Theme,
		Variant:      cfg.Variant,
		CSSVarsStyle: cssVarsStyle(cfg.CSSVars),
	}
	if cfg.AssetURL != nil {
		ctx.Stylesheet = cfg.AssetURL(StylesheetName)
	}
	return ctx
}

func partial(cfg *theme.RendererConfig, key, fallback string) string {
	if cfg == nil {
		return fallback
	}
	if name := strings.TrimSpace(cfg.Partials[key]); name != "" {
		return name
	}
	return fallback
}

func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range keys {
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(vars[key])
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}
