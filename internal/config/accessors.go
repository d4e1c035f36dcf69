package config

import "github.com/Rawk/rustfmt/internal/config/filelines"

// One accessor per option. Each returns the resolved value by copy and
// records the read for the used-options report.

func (c *Config) MaxWidth() int { return c.uintOption("max_width") }
func (c *Config) HardTabs() bool { return c.boolOption("hard_tabs") }
func (c *Config) TabSpaces() int { return c.uintOption("tab_spaces") }

func (c *Config) NewlineStyle() NewlineStyle {
	return c.slots["newline_style"].read().(NewlineStyle)
}

func (c *Config) IndentStyle() IndentStyle {
	return c.slots["indent_style"].read().(IndentStyle)
}

func (c *Config) UseSmallHeuristics() Heuristics {
	return c.slots["use_small_heuristics"].read().(Heuristics)
}

func (c *Config) FnCallWidth() int { return c.uintOption("fn_call_width") }
func (c *Config) AttrFnLikeWidth() int { return c.uintOption("attr_fn_like_width") }
func (c *Config) StructLitWidth() int { return c.uintOption("struct_lit_width") }
func (c *Config) StructVariantWidth() int { return c.uintOption("struct_variant_width") }
func (c *Config) ArrayWidth() int { return c.uintOption("array_width") }
func (c *Config) ChainWidth() int { return c.uintOption("chain_width") }
func (c *Config) SingleLineIfElseMaxWidth() int {
	return c.uintOption("single_line_if_else_max_width")
}
func (c *Config) SingleLineLetElseMaxWidth() int {
	return c.uintOption("single_line_let_else_max_width")
}

func (c *Config) WrapComments() bool { return c.boolOption("wrap_comments") }
func (c *Config) FormatCodeInDocComments() bool { return c.boolOption("format_code_in_doc_comments") }
func (c *Config) CommentWidth() int { return c.uintOption("comment_width") }
func (c *Config) NormalizeComments() bool { return c.boolOption("normalize_comments") }
func (c *Config) FormatStrings() bool { return c.boolOption("format_strings") }
func (c *Config) FormatMacroMatchers() bool { return c.boolOption("format_macro_matchers") }

func (c *Config) SkipMacroInvocations() MacroSelectors {
	return c.slots["skip_macro_invocations"].read().(MacroSelectors)
}

func (c *Config) EmptyItemSingleLine() bool { return c.boolOption("empty_item_single_line") }
func (c *Config) StructFieldAlignThreshold() int {
	return c.uintOption("struct_field_align_threshold")
}

func (c *Config) FnParamsLayout() Density {
	return c.slots["fn_params_layout"].read().(Density)
}

func (c *Config) FnArgsLayout() Density {
	return c.slots["fn_args_layout"].read().(Density)
}

func (c *Config) MatchBlockTrailingComma() bool { return c.boolOption("match_block_trailing_comma") }
func (c *Config) RemoveNestedParens() bool { return c.boolOption("remove_nested_parens") }
func (c *Config) UseTryShorthand() bool { return c.boolOption("use_try_shorthand") }
func (c *Config) UseFieldInitShorthand() bool { return c.boolOption("use_field_init_shorthand") }
func (c *Config) ForceExplicitABI() bool { return c.boolOption("force_explicit_abi") }
func (c *Config) OverflowDelimitedExpr() bool { return c.boolOption("overflow_delimited_expr") }

func (c *Config) ImportsGranularity() ImportGranularity {
	return c.slots["imports_granularity"].read().(ImportGranularity)
}

func (c *Config) GroupImports() GroupImports {
	return c.slots["group_imports"].read().(GroupImports)
}

func (c *Config) ReorderImports() bool { return c.boolOption("reorder_imports") }
func (c *Config) ReorderModules() bool { return c.boolOption("reorder_modules") }
func (c *Config) ReorderImplItems() bool { return c.boolOption("reorder_impl_items") }
func (c *Config) MergeImports() bool { return c.boolOption("merge_imports") }

func (c *Config) Edition() Edition {
	return c.slots["edition"].read().(Edition)
}

func (c *Config) StyleEdition() StyleEdition {
	return c.slots["style_edition"].read().(StyleEdition)
}

func (c *Config) Version() FormatVersion {
	return c.slots["version"].read().(FormatVersion)
}

func (c *Config) UnstableFeatures() bool { return c.boolOption("unstable_features") }
func (c *Config) RequiredVersion() string { return c.stringOption("required_version") }
func (c *Config) DisableAllFormatting() bool {
	return c.boolOption("disable_all_formatting")
}
func (c *Config) SkipChildren() bool { return c.boolOption("skip_children") }
func (c *Config) ShowParseErrors() bool { return c.boolOption("show_parse_errors") }
func (c *Config) HideParseErrors() bool { return c.boolOption("hide_parse_errors") }
func (c *Config) ErrorOnLineOverflow() bool {
	return c.boolOption("error_on_line_overflow")
}
func (c *Config) ErrorOnUnformatted() bool { return c.boolOption("error_on_unformatted") }

func (c *Config) Ignore() IgnoreList {
	return c.slots["ignore"].read().(IgnoreList)
}

func (c *Config) FileLines() filelines.FileLines {
	return c.slots["file_lines"].read().(filelines.FileLines)
}

func (c *Config) Color() Color {
	return c.slots["color"].read().(Color)
}

func (c *Config) Verbose() bool { return c.boolOption("verbose") }
