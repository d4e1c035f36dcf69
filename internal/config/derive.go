package config

// derivations maps each option to the derived recomputation that must
// re-run after the option mutates, whatever the mutation entry point.
// Options absent from the table have no dependents.
var derivations = func() map[string]func(*Config) {
	table := map[string]func(*Config){
		"merge_imports":     (*Config).setMergeImports,
		"fn_args_layout":    (*Config).setFnArgsLayout,
		"hide_parse_errors": (*Config).setHideParseErrors,
		"version":           (*Config).setVersion,
	}
	widthGoverning := []string{
		"max_width",
		"use_small_heuristics",
		"fn_call_width",
		"attr_fn_like_width",
		"struct_lit_width",
		"struct_variant_width",
		"array_width",
		"chain_width",
		"single_line_if_else_max_width",
		"single_line_let_else_max_width",
	}
	for _, name := range widthGoverning {
		table[name] = (*Config).setHeuristics
	}
	return table
}()

// recompute re-runs the derived computations that depend on the option.
func (c *Config) recompute(name string) {
	if derive, ok := derivations[name]; ok {
		derive(c)
	}
}

// setHeuristics distributes the dependent widths from max_width and the
// heuristics mode, then resolves each against any explicit user value.
func (c *Config) setHeuristics() {
	maxWidth := c.slots["max_width"].value.(int)

	var derived WidthHeuristics
	switch c.slots["use_small_heuristics"].value.(Heuristics) {
	case HeuristicsDefault:
		derived = ScaledWidthHeuristics(maxWidth)
	case HeuristicsMax:
		derived = SetWidthHeuristics(maxWidth)
	case HeuristicsOff:
		derived = NullWidthHeuristics()
	}

	c.resolveWidth("fn_call_width", derived.FnCallWidth, maxWidth)
	c.resolveWidth("attr_fn_like_width", derived.AttrFnLikeWidth, maxWidth)
	c.resolveWidth("struct_lit_width", derived.StructLitWidth, maxWidth)
	c.resolveWidth("struct_variant_width", derived.StructVariantWidth, maxWidth)
	c.resolveWidth("array_width", derived.ArrayWidth, maxWidth)
	c.resolveWidth("chain_width", derived.ChainWidth, maxWidth)
	c.resolveWidth("single_line_if_else_max_width", derived.SingleLineIfElseMaxWidth, maxWidth)
	c.resolveWidth("single_line_let_else_max_width", derived.SingleLineLetElseMaxWidth, maxWidth)
}

// resolveWidth installs the final value for one dependent width: the
// derived value when the user never set the option, the user's value
// otherwise, clamped to max_width with a warning when it exceeds it.
func (c *Config) resolveWidth(name string, derived, maxWidth int) {
	s := c.slots[name]
	if !s.wasSet && !s.wasSetCLI {
		s.value = derived
		return
	}
	if s.value.(int) > maxWidth {
		c.warnf("`%[1]s` cannot have a value that exceeds `max_width`. "+
			"`%[1]s` will be set to the same value as `max_width`", name)
		s.value = maxWidth
	}
}

// setIgnorePrefix anchors the ignore list's relative patterns beneath the
// configuration file's directory.
func (c *Config) setIgnorePrefix(dir string) {
	s := c.slots["ignore"]
	s.value = s.value.(IgnoreList).AddPrefix(dir)
}

// reconcileAlias applies the shared deprecated-alias rule: warn that the
// legacy option is deprecated, let an explicitly set replacement win with a
// precedence warning, and otherwise install the translated legacy value
// into the replacement slot without touching its provenance flags.
func (c *Config) reconcileAlias(legacyName, replacementName string, translate func(any) any) {
	legacy := c.slots[legacyName]
	if !legacy.wasSet {
		return
	}
	c.warnf("the `%s` option is deprecated. Use `%s` instead", legacyName, replacementName)

	replacement := c.slots[replacementName]
	if replacement.wasSet || replacement.wasSetCLI {
		c.warnf("the deprecated `%s` option was used in conjunction with the `%s` option which takes "+
			"precedence. The value of the `%s` option will be ignored.", legacyName, replacementName, legacyName)
		return
	}
	replacement.value = translate(legacy.value)
}

func (c *Config) setMergeImports() {
	c.reconcileAlias("merge_imports", "imports_granularity", func(v any) any {
		if v.(bool) {
			return GranularityCrate
		}
		return GranularityPreserve
	})
}

func (c *Config) setFnArgsLayout() {
	c.reconcileAlias("fn_args_layout", "fn_params_layout", func(v any) any { return v })
}

func (c *Config) setHideParseErrors() {
	c.reconcileAlias("hide_parse_errors", "show_parse_errors", func(v any) any { return v })
}

func (c *Config) setVersion() {
	c.reconcileAlias("version", "style_edition", func(v any) any {
		return StyleEditionForVersion(v.(FormatVersion))
	})
}
