package diag

import "fmt"

// ErrorType indexes the fixed error enumeration of the schema. Байт из
// потока — прямой индекс в таблицу; таблица воспроизводит генерируемый
// список продюсера версии 0.24.0.
type ErrorType uint8

// WarningType indexes the fixed warning enumeration of the schema.
type WarningType uint8

var errorTypeNames = []string{
	// Лексические и общие
	"alias_argument",
	"ampampeq_multi_assign",
	"argument_after_block",
	"argument_bare_hash",
	"argument_block_multi",
	"argument_formal_class",
	"argument_formal_constant",
	"argument_formal_global",
	"argument_formal_ivar",
	"argument_no_forwarding_amp",
	"argument_no_forwarding_ellipses",
	"argument_no_forwarding_star",
	"argument_splat_after_assoc_splat",
	"argument_splat_after_splat",
	"argument_term_paren",
	"argument_unexpected_block",
	"array_element",
	"array_expression",
	"array_expression_after_star",
	"array_separator",
	"array_term",
	"begin_lonely_else",
	"begin_term",
	"begin_upcase_brace",
	"begin_upcase_term",
	"begin_upcase_toplevel",
	"block_param_local_variable",
	"block_param_pipe_term",
	"block_term",
	"cannot_parse_expression",
	"cannot_parse_string_part",
	"case_expression_after_case",
	"case_expression_after_when",
	"case_match_missing_predicate",
	"case_missing_conditions",
	"case_term",
	"class_in_method",
	"class_name",
	"class_superclass",
	"class_term",
	"class_unexpected_end",
	"conditional_elsif_predicate",
	"conditional_if_predicate",
	"conditional_predicate_term",
	"conditional_term",
	"conditional_term_else",
	"conditional_unless_predicate",
	"conditional_until_predicate",
	"conditional_while_predicate",
	"constant_path_colon_colon_constant",
	"def_endless",
	"def_endless_setter",
	"def_name",
	"def_name_after_receiver",
	"def_params_term",
	"def_params_term_paren",
	"def_receiver",
	"def_receiver_term",
	"def_term",
	"defined_expression",
	"embdoc_term",
	"embexpr_end",
	"expect_argument",
	"expect_eol_after_statement",
	"expect_expression_after_ampampeq",
	"expect_expression_after_comma",
	"expect_expression_after_equal",
	"expect_expression_after_less_less",
	"expect_expression_after_lparen",
	"expect_expression_after_operator",
	"expect_expression_after_pipepipeeq",
	"expect_expression_after_question",
	"expect_expression_after_splat",
	"expect_expression_after_splat_hash",
	"expect_expression_after_star",
	"expect_ident_req_parameter",
	"expect_lparen_req_parameter",
	"expect_rbracket",
	"expect_rparen",
	"expect_rparen_after_multi",
	"expect_rparen_req_parameter",
	"expect_string_content",
	"expect_when_delimiter",
	"expression_bare_hash",
	"float_parse",
	"for_collection",
	"for_in",
	"for_index",
	"for_term",
	"hash_expression_after_label",
	"hash_key",
	"hash_rocket",
	"hash_term",
	"hash_value",
	"heredoc_term",
	"incomplete_question_mark",
	"incomplete_variable_class",
	"incomplete_variable_instance",
	"invalid_character",
	"invalid_encoding_magic_comment",
	"invalid_float_exponent",
	"invalid_multibyte_character",
	"invalid_number_binary",
	"invalid_number_decimal",
	"invalid_number_hexadecimal",
	"invalid_number_octal",
	"invalid_number_underscore",
	"invalid_percent",
	"invalid_printable_character",
	"invalid_token",
	"invalid_variable_global",
	"lambda_open",
	"lambda_term_brace",
	"lambda_term_end",
	"list_i_lower_element",
	"list_i_lower_term",
	"list_i_upper_element",
	"list_i_upper_term",
	"list_w_lower_element",
	"list_w_lower_term",
	"list_w_upper_element",
	"list_w_upper_term",
	"malloc_failed",
	"module_in_method",
	"module_name",
	"module_term",
	"multi_assign_multi_splats",
	"not_expression",
	"number_literal_underscore",
	"numbered_parameter_outer_scope",
	"operator_multi_assign",
	"operator_write_arguments",
	"operator_write_block",
	"parameter_assoc_splat_multi",
	"parameter_block_multi",
	"parameter_circular",
	"parameter_method_name",
	"parameter_name_repeat",
	"parameter_no_default",
	"parameter_no_default_kw",
	"parameter_numbered_reserved",
	"parameter_order",
	"parameter_splat_multi",
	"parameter_star",
	"parameter_unexpected_fwd",
	"parameter_wild_loose_comma",
	"pattern_expression_after_bracket",
	"pattern_expression_after_comma",
	"pattern_expression_after_hrocket",
	"pattern_expression_after_in",
	"pattern_expression_after_key",
	"pattern_expression_after_paren",
	"pattern_expression_after_pin",
	"pattern_expression_after_pipe",
	"pattern_expression_after_range",
	"pattern_hash_key",
	"pattern_hash_key_label",
	"pattern_ident_after_hrocket",
	"pattern_label_after_comma",
	"pattern_rest",
	"pattern_term_brace",
	"pattern_term_bracket",
	"pattern_term_paren",
	"pipepipeeq_multi_assign",
	"regexp_term",
	"rescue_expression",
	"rescue_modifier_value",
	"rescue_term",
	"rescue_variable",
	"return_invalid",
	"statement_alias",
	"statement_postexe_end",
	"statement_preexe_begin",
	"statement_undef",
	"string_concatenation",
	"string_interpolated_term",
	"string_literal_eof",
	"string_literal_term",
	"symbol_invalid",
	"symbol_term_dynamic",
	"symbol_term_interpolated",
	"ternary_colon",
	"ternary_expression_false",
	"ternary_expression_true",
	"unary_receiver",
	"undef_argument",
	"unexpected_token_close_context",
	"unexpected_token_ignore",
	"until_term",
	"void_expression",
	"while_term",
	"write_target_readonly",
	"write_target_unexpected",
	"xstring_term",
}

var warningTypeNames = []string{
	"ambiguous_first_argument_minus",
	"ambiguous_first_argument_plus",
	"ambiguous_prefix_star",
	"ambiguous_slash",
	"dot_dot_dot_eol",
	"duplicated_hash_key",
	"duplicated_when_clause",
	"end_in_method",
	"equal_in_conditional",
	"float_out_of_range",
	"ignored_frozen_string_literal",
	"integer_in_flip_flop",
	"keyword_eol",
	"literal_in_condition_default",
	"literal_in_condition_verbose",
	"unreachable_statement",
	"unused_local_variable",
	"void_statement",
}

// ErrorTypeCount — размер таблицы ошибок; валидные индексы в [0, count).
func ErrorTypeCount() int { return len(errorTypeNames) }

// WarningTypeCount — размер таблицы предупреждений.
func WarningTypeCount() int { return len(warningTypeNames) }

// Known reports whether the wire byte maps to a table entry.
func (t ErrorType) Known() bool { return int(t) < len(errorTypeNames) }

func (t ErrorType) String() string {
	if t.Known() {
		return errorTypeNames[t]
	}
	return fmt.Sprintf("error_type(%d)", uint8(t))
}

// Known reports whether the wire byte maps to a table entry.
func (t WarningType) Known() bool { return int(t) < len(warningTypeNames) }

func (t WarningType) String() string {
	if t.Known() {
		return warningTypeNames[t]
	}
	return fmt.Sprintf("warning_type(%d)", uint8(t))
}
