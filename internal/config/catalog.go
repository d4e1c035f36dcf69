package config

import "github.com/Rawk/rustfmt/internal/config/filelines"

// catalog is the fixed, ordered option set. Registries iterate it in this
// order for merge and documentation output. The full option enumeration of
// the formatter is larger; this table carries every option the resolution
// protocol touches plus the commonly used formatting options.
var catalog = []*OptionDef{
	// Fundamental width and layout options.
	{
		Name:    "max_width",
		Doc:     "Maximum width of each line",
		Hint:    "<unsigned integer>",
		Stable:  true,
		Default: constDefault(100),
		Parse:   textParser(parseUintText),
		Decode:  decodeUint,
	},
	{
		Name:    "hard_tabs",
		Doc:     "Use tab characters for indentation, spaces for alignment",
		Hint:    "<boolean>",
		Stable:  true,
		Default: constDefault(false),
		Parse:   textParser(parseBoolText),
		Decode:  decodeBool,
	},
	{
		Name:    "tab_spaces",
		Doc:     "Number of spaces per tab",
		Hint:    "<unsigned integer>",
		Stable:  true,
		Default: constDefault(4),
		Parse:   textParser(parseUintText),
		Decode:  decodeUint,
	},
	{
		Name:    "newline_style",
		Doc:     "Unix or Windows line endings",
		Hint:    "[Auto|Windows|Unix|Native]",
		Stable:  true,
		Default: constDefault(NewlineAuto),
		Parse:   textParser(ParseNewlineStyle),
		Decode:  stringDecoder(ParseNewlineStyle, "newline style"),
	},
	{
		Name:    "indent_style",
		Doc:     "How do we indent expressions or items",
		Hint:    "[Visual|Block]",
		Stable:  false,
		Default: constDefault(IndentBlock),
		Parse:   textParser(ParseIndentStyle),
		Decode:  stringDecoder(ParseIndentStyle, "indent style"),
	},

	// Width heuristics: the governing mode plus its dependent widths.
	{
		Name:    "use_small_heuristics",
		Doc:     "Whether to use different formatting for items and expressions if they satisfy a heuristic notion of 'small'",
		Hint:    "[Default|Off|Max]",
		Stable:  true,
		Default: constDefault(HeuristicsDefault),
		Parse:   textParser(ParseHeuristics),
		Decode:  stringDecoder(ParseHeuristics, "heuristics mode"),
	},
	{
		Name:    "fn_call_width",
		Doc:     "Maximum width of the args of a function call before falling back to vertical formatting.",
		Hint:    "<unsigned integer>",
		Stable:  true,
		Default: constDefault(60),
		Parse:   textParser(parseUintText),
		Decode:  decodeUint,
	},
	{
		Name:    "attr_fn_like_width",
		Doc:     "Maximum width of the args of a function-like attributes before falling back to vertical formatting.",
		Hint:    "<unsigned integer>",
		Stable:  true,
		Default: constDefault(70),
		Parse:   textParser(parseUintText),
		Decode:  decodeUint,
	},
	{
		Name:    "struct_lit_width",
		Doc:     "Maximum width in the body of a struct lit before falling back to vertical formatting.",
		Hint:    "<unsigned integer>",
		Stable:  true,
		Default: constDefault(18),
		Parse:   textParser(parseUintText),
		Decode:  decodeUint,
	},
	{
		Name:    "struct_variant_width",
		Doc:     "Maximum width in the body of a struct variant before falling back to vertical formatting.",
		Hint:    "<unsigned integer>",
		Stable:  true,
		Default: constDefault(35),
		Parse:   textParser(parseUintText),
		Decode:  decodeUint,
	},
	{
		Name:    "array_width",
		Doc:     "Maximum width of an array literal before falling back to vertical formatting.",
		Hint:    "<unsigned integer>",
		Stable:  true,
		Default: constDefault(60),
		Parse:   textParser(parseUintText),
		Decode:  decodeUint,
	},
	{
		Name:    "chain_width",
		Doc:     "Maximum length of a chain to fit on a single line.",
		Hint:    "<unsigned integer>",
		Stable:  true,
		Default: constDefault(60),
		Parse:   textParser(parseUintText),
		Decode:  decodeUint,
	},
	{
		Name:    "single_line_if_else_max_width",
		Doc:     "Maximum line length for single line if-else expressions. A value of zero means always break if-else expressions.",
		Hint:    "<unsigned integer>",
		Stable:  true,
		Default: constDefault(50),
		Parse:   textParser(parseUintText),
		Decode:  decodeUint,
	},
	{
		Name:    "single_line_let_else_max_width",
		Doc:     "Maximum line length for single line let-else statements. A value of zero means always format the divergent `else` block over multiple lines.",
		Hint:    "<unsigned integer>",
		Stable:  true,
		Default: constDefault(50),
		Parse:   textParser(parseUintText),
		Decode:  decodeUint,
	},

	// Comments and strings.
	{
		Name:    "wrap_comments",
		Doc:     "Break comments to fit on the line",
		Hint:    "<boolean>",
		Stable:  false,
		Default: constDefault(false),
		Parse:   textParser(parseBoolText),
		Decode:  decodeBool,
	},
	{
		Name:    "format_code_in_doc_comments",
		Doc:     "Format the code snippet in doc comments.",
		Hint:    "<boolean>",
		Stable:  false,
		Default: constDefault(false),
		Parse:   textParser(parseBoolText),
		Decode:  decodeBool,
	},
	{
		Name:    "comment_width",
		Doc:     "Maximum length of comments. No effect unless wrap_comments = true",
		Hint:    "<unsigned integer>",
		Stable:  false,
		Default: constDefault(80),
		Parse:   textParser(parseUintText),
		Decode:  decodeUint,
	},
	{
		Name:    "normalize_comments",
		Doc:     "Convert /* */ comments to // comments where possible",
		Hint:    "<boolean>",
		Stable:  false,
		Default: constDefault(false),
		Parse:   textParser(parseBoolText),
		Decode:  decodeBool,
	},
	{
		Name:    "format_strings",
		Doc:     "Format string literals where necessary",
		Hint:    "<boolean>",
		Stable:  false,
		Default: constDefault(false),
		Parse:   textParser(parseBoolText),
		Decode:  decodeBool,
	},
	{
		Name:    "format_macro_matchers",
		Doc:     "Format the metavariable matching patterns in macros.",
		Hint:    "<boolean>",
		Stable:  false,
		Default: constDefault(false),
		Parse:   textParser(parseBoolText),
		Decode:  decodeBool,
	},
	{
		Name:    "skip_macro_invocations",
		Doc:     "Skip formatting the bodies of macros invoked with the following names.",
		Hint:    "[<string>, ...]",
		Stable:  false,
		Default: constDefault(MacroSelectors(nil)),
		Parse:   textParser(ParseMacroSelectors),
		Decode:  decodeMacroSelectors,
	},

	// Items.
	{
		Name:    "empty_item_single_line",
		Doc:     "Put empty-body functions and impls on a single line",
		Hint:    "<boolean>",
		Stable:  false,
		Default: constDefault(true),
		Parse:   textParser(parseBoolText),
		Decode:  decodeBool,
	},
	{
		Name:    "struct_field_align_threshold",
		Doc:     "Align struct fields if their diffs fits within threshold.",
		Hint:    "<unsigned integer>",
		Stable:  false,
		Default: constDefault(0),
		Parse:   textParser(parseUintText),
		Decode:  decodeUint,
	},
	{
		Name:    "fn_params_layout",
		Doc:     "Control the layout of parameters in function signatures.",
		Hint:    "[Compressed|Tall|Vertical]",
		Stable:  true,
		Default: constDefault(DensityTall),
		Parse:   textParser(ParseDensity),
		Decode:  stringDecoder(ParseDensity, "density"),
	},
	{
		Name:    "fn_args_layout",
		Doc:     "(deprecated: use fn_params_layout instead)",
		Hint:    "[Compressed|Tall|Vertical]",
		Stable:  true,
		Default: constDefault(DensityTall),
		Parse:   textParser(ParseDensity),
		Decode:  stringDecoder(ParseDensity, "density"),
	},
	{
		Name:    "match_block_trailing_comma",
		Doc:     "Put a trailing comma after a block based match arm (non-block arms are not affected)",
		Hint:    "<boolean>",
		Stable:  true,
		Default: constDefault(false),
		Parse:   textParser(parseBoolText),
		Decode:  decodeBool,
	},
	{
		Name:    "remove_nested_parens",
		Doc:     "Remove nested parens",
		Hint:    "<boolean>",
		Stable:  true,
		Default: constDefault(true),
		Parse:   textParser(parseBoolText),
		Decode:  decodeBool,
	},
	{
		Name:    "use_try_shorthand",
		Doc:     "Replace uses of the try! macro by the ? shorthand",
		Hint:    "<boolean>",
		Stable:  true,
		Default: constDefault(false),
		Parse:   textParser(parseBoolText),
		Decode:  decodeBool,
	},
	{
		Name:    "use_field_init_shorthand",
		Doc:     "Use field initialization shorthand if possible",
		Hint:    "<boolean>",
		Stable:  true,
		Default: constDefault(false),
		Parse:   textParser(parseBoolText),
		Decode:  decodeBool,
	},
	{
		Name:    "force_explicit_abi",
		Doc:     "Always print the abi for extern items",
		Hint:    "<boolean>",
		Stable:  true,
		Default: constDefault(true),
		Parse:   textParser(parseBoolText),
		Decode:  decodeBool,
	},
	{
		Name:    "overflow_delimited_expr",
		Doc:     "Allow trailing bracket/brace delimited expressions to overflow the last line",
		Hint:    "<boolean>",
		Stable:  false,
		Default: editionDefault(false, true),
		Parse:   textParser(parseBoolText),
		Decode:  decodeBool,
	},

	// Imports.
	{
		Name:    "imports_granularity",
		Doc:     "Merge or split imports to be clean and tidy",
		Hint:    "[Preserve|Crate|Module|Item|One]",
		Stable:  false,
		Default: constDefault(GranularityPreserve),
		Parse:   textParser(ParseImportGranularity),
		Decode:  stringDecoder(ParseImportGranularity, "import granularity"),
	},
	{
		Name:    "group_imports",
		Doc:     "Controls the strategy for how imports are grouped together",
		Hint:    "[Preserve|StdExternalCrate|One]",
		Stable:  false,
		Default: constDefault(GroupPreserve),
		Parse:   textParser(ParseGroupImports),
		Decode:  stringDecoder(ParseGroupImports, "import grouping"),
	},
	{
		Name:    "reorder_imports",
		Doc:     "Reorder import and extern crate statements alphabetically",
		Hint:    "<boolean>",
		Stable:  true,
		Default: constDefault(true),
		Parse:   textParser(parseBoolText),
		Decode:  decodeBool,
	},
	{
		Name:    "reorder_modules",
		Doc:     "Reorder module statements alphabetically in group",
		Hint:    "<boolean>",
		Stable:  true,
		Default: constDefault(true),
		Parse:   textParser(parseBoolText),
		Decode:  decodeBool,
	},
	{
		Name:    "reorder_impl_items",
		Doc:     "Reorder impl items",
		Hint:    "<boolean>",
		Stable:  false,
		Default: constDefault(false),
		Parse:   textParser(parseBoolText),
		Decode:  decodeBool,
	},
	{
		Name:    "merge_imports",
		Doc:     "(deprecated: use imports_granularity instead)",
		Hint:    "<boolean>",
		Stable:  false,
		Default: constDefault(false),
		Parse:   textParser(parseBoolText),
		Decode:  decodeBool,
	},

	// Editions and feature gates.
	{
		Name:    "edition",
		Doc:     "The edition of the parser",
		Hint:    "[2015|2018|2021|2024]",
		Stable:  true,
		Default: constDefault(Lang2015),
		Parse:   textParser(ParseEdition),
		Decode:  stringDecoder(ParseEdition, "edition"),
	},
	{
		Name:    "style_edition",
		Doc:     "The edition of the style guide",
		Hint:    "[2015|2018|2021|2024|2027]",
		Stable:  true,
		Default: func(se StyleEdition) any { return se },
		Parse:   textParser(ParseStyleEdition),
		Decode:  stringDecoder(ParseStyleEdition, "style edition"),
	},
	{
		Name:    "version",
		Doc:     "(deprecated: use style_edition instead)",
		Hint:    "[One|Two]",
		Stable:  false,
		Default: constDefault(VersionOne),
		Parse:   textParser(ParseFormatVersion),
		Decode:  stringDecoder(ParseFormatVersion, "version"),
	},
	{
		Name:    "unstable_features",
		Doc:     "Enables unstable features. Only available on nightly channel",
		Hint:    "<boolean>",
		Stable:  false,
		Default: constDefault(false),
		Parse:   textParser(parseBoolText),
		Decode:  decodeBool,
	},
	{
		Name:    "required_version",
		Doc:     "Require a specific version of the formatter.",
		Hint:    "<string>",
		Stable:  false,
		Default: func(StyleEdition) any { return BuildVersion },
		Parse:   textParser(parseStringText),
		Decode:  decodeString,
	},

	// Run control and diagnostics.
	{
		Name:    "disable_all_formatting",
		Doc:     "Don't reformat anything",
		Hint:    "<boolean>",
		Stable:  true,
		Default: constDefault(false),
		Parse:   textParser(parseBoolText),
		Decode:  decodeBool,
	},
	{
		Name:    "skip_children",
		Doc:     "Don't reformat out of line modules",
		Hint:    "<boolean>",
		Stable:  false,
		Default: constDefault(false),
		Parse:   textParser(parseBoolText),
		Decode:  decodeBool,
	},
	{
		Name:    "show_parse_errors",
		Doc:     "Show errors from the parser (unstable)",
		Hint:    "<boolean>",
		Stable:  false,
		Default: constDefault(true),
		Parse:   textParser(parseBoolText),
		Decode:  decodeBool,
	},
	{
		Name:    "hide_parse_errors",
		Doc:     "(deprecated: use show_parse_errors instead)",
		Hint:    "<boolean>",
		Stable:  false,
		Default: constDefault(false),
		Parse:   textParser(parseBoolText),
		Decode:  decodeBool,
	},
	{
		Name:    "error_on_line_overflow",
		Doc:     "Error if unable to get all lines within max_width",
		Hint:    "<boolean>",
		Stable:  false,
		Default: constDefault(false),
		Parse:   textParser(parseBoolText),
		Decode:  decodeBool,
	},
	{
		Name:    "error_on_unformatted",
		Doc:     "Error if unable to get comments or string literals within max_width, or they are left with trailing whitespaces",
		Hint:    "<boolean>",
		Stable:  false,
		Default: constDefault(false),
		Parse:   textParser(parseBoolText),
		Decode:  decodeBool,
	},
	{
		Name:    "ignore",
		Doc:     "Skip formatting files and directories that match the specified pattern. The pattern format is the same as .gitignore.",
		Hint:    "[<string>, ...]",
		Stable:  false,
		Default: constDefault(IgnoreList{}),
		Parse:   textParser(ParseIgnoreList),
		Decode:  decodeIgnoreList,
	},
	{
		Name:    "file_lines",
		Doc:     "Lines to format; this is not supported in rustfmt.toml, and can only be specified via the --file-lines option",
		Hint:    "<json>",
		Stable:  false,
		Default: constDefault(filelines.All()),
		Parse:   textParser(parseFileLinesText),
		Decode:  decodeFileLines,
	},
	{
		Name:    "color",
		Doc:     "What Color option to use when none is supplied: Always, Never, Auto",
		Hint:    "[Auto|Always|Never]",
		Stable:  false,
		Default: constDefault(ColorAuto),
		Parse:   textParser(ParseColor),
		Decode:  stringDecoder(ParseColor, "color mode"),
	},
	{
		Name:    "verbose",
		Doc:     "Use verbose output",
		Hint:    "<boolean>",
		Stable:  false,
		Default: constDefault(false),
		Parse:   textParser(parseBoolText),
		Decode:  decodeBool,
	},
}

// catalogIndex maps option names to their catalog entries.
var catalogIndex = func() map[string]*OptionDef {
	index := make(map[string]*OptionDef, len(catalog))
	for _, def := range catalog {
		index[def.Name] = def
	}
	return index
}()

// Lookup returns the catalog entry for an option name.
func Lookup(name string) (*OptionDef, bool) {
	def, ok := catalogIndex[name]
	return def, ok
}

// OptionNames returns every option name in catalog order.
func OptionNames() []string {
	names := make([]string, len(catalog))
	for i, def := range catalog {
		names[i] = def.Name
	}
	return names
}

// IsValidName reports whether name is a known option.
func IsValidName(name string) bool {
	_, ok := catalogIndex[name]
	return ok
}

// IsValidKeyVal reports whether val parses into the named option's semantic
// type. Nothing is mutated.
func IsValidKeyVal(key, val string) bool {
	def, ok := catalogIndex[key]
	if !ok {
		return false
	}
	_, err := def.Parse(val)
	return err == nil
}
