package token

import "fmt"

// Type identifies a lexer token type of the serialized schema. Ноль
// зарезервирован под терминатор потока токенов и как тип не используется.
type Type uint16

const (
	// EOF ends every token stream.
	EOF Type = iota + 1
	// Missing marks a token the producer expected but did not find.
	Missing
	// NotProvided marks an absent optional token.
	NotProvided

	Ampersand                  // &
	AmpersandAmpersand         // &&
	AmpersandAmpersandEqual    // &&=
	AmpersandDot               // &.
	AmpersandEqual             // &=
	Backtick                   // `
	BackReference              // $& and friends
	Bang                       // !
	BangEqual                  // !=
	BangTilde                  // !~
	BraceLeft                  // {
	BraceRight                 // }
	BracketLeft                // [
	BracketLeftArray           // [ starting an array literal
	BracketLeftRight           // []
	BracketLeftRightEqual      // []=
	BracketRight               // ]
	Caret                      // ^
	CaretEqual                 // ^=
	CharacterLiteral           // ?a
	ClassVariable              // @@name
	Colon                      // :
	ColonColon                 // ::
	Comma                      // ,
	Comment                    // # ...
	Constant                   // Name
	Dot                        // .
	DotDot                     // ..
	DotDotDot                  // ...
	EmbDocBegin                // =begin
	EmbDocEnd                  // =end
	EmbDocLine                 // line inside =begin/=end
	EmbExprBegin               // #{
	EmbExprEnd                 // }
	EmbVar                     // #@ or #$
	Equal                      // =
	EqualEqual                 // ==
	EqualEqualEqual            // ===
	EqualGreater               // =>
	EqualTilde                 // =~
	Float                      // 1.0
	FloatImaginary             // 1.0i
	FloatRational              // 1.0r
	FloatRationalImaginary     // 1.0ri
	GlobalVariable             // $name
	Greater                    // >
	GreaterEqual               // >=
	GreaterGreater             // >>
	GreaterGreaterEqual        // >>=
	HeredocEnd                 // heredoc terminator
	HeredocStart               // <<~HEREDOC
	Identifier                 // name
	IgnoredNewline             // newline that continues a statement
	InstanceVariable           // @name
	Integer                    // 1
	IntegerImaginary           // 1i
	IntegerRational            // 1r
	IntegerRationalImaginary   // 1ri
	KeywordAlias               // alias
	KeywordAnd                 // and
	KeywordBegin               // begin
	KeywordBeginUpcase         // BEGIN
	KeywordBreak               // break
	KeywordCase                // case
	KeywordClass               // class
	KeywordDef                 // def
	KeywordDefined             // defined?
	KeywordDo                  // do
	KeywordDoLoop              // do keyword of a loop
	KeywordElse                // else
	KeywordElsif               // elsif
	KeywordEnd                 // end
	KeywordEndUpcase           // END
	KeywordEnsure              // ensure
	KeywordFalse               // false
	KeywordFor                 // for
	KeywordIf                  // if
	KeywordIfModifier          // if in modifier position
	KeywordIn                  // in
	KeywordModule              // module
	KeywordNext                // next
	KeywordNil                 // nil
	KeywordNot                 // not
	KeywordOr                  // or
	KeywordRedo                // redo
	KeywordRescue              // rescue
	KeywordRescueModifier      // rescue in modifier position
	KeywordRetry               // retry
	KeywordReturn              // return
	KeywordSelf                // self
	KeywordSuper               // super
	KeywordThen                // then
	KeywordTrue                // true
	KeywordUndef               // undef
	KeywordUnless              // unless
	KeywordUnlessModifier      // unless in modifier position
	KeywordUntil               // until
	KeywordUntilModifier       // until in modifier position
	KeywordWhen                // when
	KeywordWhile               // while
	KeywordWhileModifier       // while in modifier position
	KeywordYield               // yield
	KeywordEncoding            // __ENCODING__
	KeywordFile                // __FILE__
	KeywordLine                // __LINE__
	Label                      // name:
	LabelEnd                   // : closing a label
	LambdaBegin                // { opening a lambda body
	Less                       // <
	LessEqual                  // <=
	LessEqualGreater           // <=>
	LessLess                   // <<
	LessLessEqual              // <<=
	MethodName                 // def-position method name
	Minus                      // -
	MinusEqual                 // -=
	MinusGreater               // ->
	Newline                    // statement-ending newline
	NumberedReference          // $1
	ParenthesisLeft            // (
	ParenthesisLeftParentheses // ( starting a parenthesized group
	ParenthesisRight           // )
	Percent                    // %
	PercentEqual               // %=
	PercentLowerI              // %i(
	PercentLowerW              // %w(
	PercentLowerX              // %x(
	PercentUpperI              // %I(
	PercentUpperW              // %W(
	Pipe                       // |
	PipeEqual                  // |=
	PipePipe                   // ||
	PipePipeEqual              // ||=
	Plus                       // +
	PlusEqual                  // +=
	QuestionMark               // ?
	RegexpBegin                // /
	RegexpEnd                  // / closing a regexp
	Semicolon                  // ;
	Slash                      // /
	SlashEqual                 // /=
	Star                       // *
	StarEqual                  // *=
	StarStar                   // **
	StarStarEqual              // **=
	StringBegin                // " or '
	StringContent              // string body
	StringEnd                  // closing " or '
	SymbolBegin                // :
	Tilde                      // ~
	UAmpersand                 // unary & (block pass)
	UColonColon                // leading ::
	UDotDot                    // beginless ..
	UDotDotDot                 // beginless ...
	UMinus                     // unary -
	UMinusNum                  // unary - on a numeric literal
	UPlus                      // unary +
	UStar                      // unary * (splat)
	UStarStar                  // unary ** (keyword splat)
	WordsSep                   // separator inside %w lists
	EndMarker                  // __END__
)

// TypeCount — число типов токенов схемы; валидные значения в [1, TypeCount].
const TypeCount = int(EndMarker)

// Terminator — зарезервированное значение «токенов больше нет».
const Terminator Type = 0

var typeNames = [...]string{
	EOF:                        "EOF",
	Missing:                    "MISSING",
	NotProvided:                "NOT_PROVIDED",
	Ampersand:                  "AMPERSAND",
	AmpersandAmpersand:         "AMPERSAND_AMPERSAND",
	AmpersandAmpersandEqual:    "AMPERSAND_AMPERSAND_EQUAL",
	AmpersandDot:               "AMPERSAND_DOT",
	AmpersandEqual:             "AMPERSAND_EQUAL",
	Backtick:                   "BACKTICK",
	BackReference:              "BACK_REFERENCE",
	Bang:                       "BANG",
	BangEqual:                  "BANG_EQUAL",
	BangTilde:                  "BANG_TILDE",
	BraceLeft:                  "BRACE_LEFT",
	BraceRight:                 "BRACE_RIGHT",
	BracketLeft:                "BRACKET_LEFT",
	BracketLeftArray:           "BRACKET_LEFT_ARRAY",
	BracketLeftRight:           "BRACKET_LEFT_RIGHT",
	BracketLeftRightEqual:      "BRACKET_LEFT_RIGHT_EQUAL",
	BracketRight:               "BRACKET_RIGHT",
	Caret:                      "CARET",
	CaretEqual:                 "CARET_EQUAL",
	CharacterLiteral:           "CHARACTER_LITERAL",
	ClassVariable:              "CLASS_VARIABLE",
	Colon:                      "COLON",
	ColonColon:                 "COLON_COLON",
	Comma:                      "COMMA",
	Comment:                    "COMMENT",
	Constant:                   "CONSTANT",
	Dot:                        "DOT",
	DotDot:                     "DOT_DOT",
	DotDotDot:                  "DOT_DOT_DOT",
	EmbDocBegin:                "EMBDOC_BEGIN",
	EmbDocEnd:                  "EMBDOC_END",
	EmbDocLine:                 "EMBDOC_LINE",
	EmbExprBegin:               "EMBEXPR_BEGIN",
	EmbExprEnd:                 "EMBEXPR_END",
	EmbVar:                     "EMBVAR",
	Equal:                      "EQUAL",
	EqualEqual:                 "EQUAL_EQUAL",
	EqualEqualEqual:            "EQUAL_EQUAL_EQUAL",
	EqualGreater:               "EQUAL_GREATER",
	EqualTilde:                 "EQUAL_TILDE",
	Float:                      "FLOAT",
	FloatImaginary:             "FLOAT_IMAGINARY",
	FloatRational:              "FLOAT_RATIONAL",
	FloatRationalImaginary:     "FLOAT_RATIONAL_IMAGINARY",
	GlobalVariable:             "GLOBAL_VARIABLE",
	Greater:                    "GREATER",
	GreaterEqual:               "GREATER_EQUAL",
	GreaterGreater:             "GREATER_GREATER",
	GreaterGreaterEqual:        "GREATER_GREATER_EQUAL",
	HeredocEnd:                 "HEREDOC_END",
	HeredocStart:               "HEREDOC_START",
	Identifier:                 "IDENTIFIER",
	IgnoredNewline:             "IGNORED_NEWLINE",
	InstanceVariable:           "INSTANCE_VARIABLE",
	Integer:                    "INTEGER",
	IntegerImaginary:           "INTEGER_IMAGINARY",
	IntegerRational:            "INTEGER_RATIONAL",
	IntegerRationalImaginary:   "INTEGER_RATIONAL_IMAGINARY",
	KeywordAlias:               "KEYWORD_ALIAS",
	KeywordAnd:                 "KEYWORD_AND",
	KeywordBegin:               "KEYWORD_BEGIN",
	KeywordBeginUpcase:         "KEYWORD_BEGIN_UPCASE",
	KeywordBreak:               "KEYWORD_BREAK",
	KeywordCase:                "KEYWORD_CASE",
	KeywordClass:               "KEYWORD_CLASS",
	KeywordDef:                 "KEYWORD_DEF",
	KeywordDefined:             "KEYWORD_DEFINED",
	KeywordDo:                  "KEYWORD_DO",
	KeywordDoLoop:              "KEYWORD_DO_LOOP",
	KeywordElse:                "KEYWORD_ELSE",
	KeywordElsif:               "KEYWORD_ELSIF",
	KeywordEnd:                 "KEYWORD_END",
	KeywordEndUpcase:           "KEYWORD_END_UPCASE",
	KeywordEnsure:              "KEYWORD_ENSURE",
	KeywordFalse:               "KEYWORD_FALSE",
	KeywordFor:                 "KEYWORD_FOR",
	KeywordIf:                  "KEYWORD_IF",
	KeywordIfModifier:          "KEYWORD_IF_MODIFIER",
	KeywordIn:                  "KEYWORD_IN",
	KeywordModule:              "KEYWORD_MODULE",
	KeywordNext:                "KEYWORD_NEXT",
	KeywordNil:                 "KEYWORD_NIL",
	KeywordNot:                 "KEYWORD_NOT",
	KeywordOr:                  "KEYWORD_OR",
	KeywordRedo:                "KEYWORD_REDO",
	KeywordRescue:              "KEYWORD_RESCUE",
	KeywordRescueModifier:      "KEYWORD_RESCUE_MODIFIER",
	KeywordRetry:               "KEYWORD_RETRY",
	KeywordReturn:              "KEYWORD_RETURN",
	KeywordSelf:                "KEYWORD_SELF",
	KeywordSuper:               "KEYWORD_SUPER",
	KeywordThen:                "KEYWORD_THEN",
	KeywordTrue:                "KEYWORD_TRUE",
	KeywordUndef:               "KEYWORD_UNDEF",
	KeywordUnless:              "KEYWORD_UNLESS",
	KeywordUnlessModifier:      "KEYWORD_UNLESS_MODIFIER",
	KeywordUntil:               "KEYWORD_UNTIL",
	KeywordUntilModifier:       "KEYWORD_UNTIL_MODIFIER",
	KeywordWhen:                "KEYWORD_WHEN",
	KeywordWhile:               "KEYWORD_WHILE",
	KeywordWhileModifier:       "KEYWORD_WHILE_MODIFIER",
	KeywordYield:               "KEYWORD_YIELD",
	KeywordEncoding:            "KEYWORD___ENCODING__",
	KeywordFile:                "KEYWORD___FILE__",
	KeywordLine:                "KEYWORD___LINE__",
	Label:                      "LABEL",
	LabelEnd:                   "LABEL_END",
	LambdaBegin:                "LAMBDA_BEGIN",
	Less:                       "LESS",
	LessEqual:                  "LESS_EQUAL",
	LessEqualGreater:           "LESS_EQUAL_GREATER",
	LessLess:                   "LESS_LESS",
	LessLessEqual:              "LESS_LESS_EQUAL",
	MethodName:                 "METHOD_NAME",
	Minus:                      "MINUS",
	MinusEqual:                 "MINUS_EQUAL",
	MinusGreater:               "MINUS_GREATER",
	Newline:                    "NEWLINE",
	NumberedReference:          "NUMBERED_REFERENCE",
	ParenthesisLeft:            "PARENTHESIS_LEFT",
	ParenthesisLeftParentheses: "PARENTHESIS_LEFT_PARENTHESES",
	ParenthesisRight:           "PARENTHESIS_RIGHT",
	Percent:                    "PERCENT",
	PercentEqual:               "PERCENT_EQUAL",
	PercentLowerI:              "PERCENT_LOWER_I",
	PercentLowerW:              "PERCENT_LOWER_W",
	PercentLowerX:              "PERCENT_LOWER_X",
	PercentUpperI:              "PERCENT_UPPER_I",
	PercentUpperW:              "PERCENT_UPPER_W",
	Pipe:                       "PIPE",
	PipeEqual:                  "PIPE_EQUAL",
	PipePipe:                   "PIPE_PIPE",
	PipePipeEqual:              "PIPE_PIPE_EQUAL",
	Plus:                       "PLUS",
	PlusEqual:                  "PLUS_EQUAL",
	QuestionMark:               "QUESTION_MARK",
	RegexpBegin:                "REGEXP_BEGIN",
	RegexpEnd:                  "REGEXP_END",
	Semicolon:                  "SEMICOLON",
	Slash:                      "SLASH",
	SlashEqual:                 "SLASH_EQUAL",
	Star:                       "STAR",
	StarEqual:                  "STAR_EQUAL",
	StarStar:                   "STAR_STAR",
	StarStarEqual:              "STAR_STAR_EQUAL",
	StringBegin:                "STRING_BEGIN",
	StringContent:              "STRING_CONTENT",
	StringEnd:                  "STRING_END",
	SymbolBegin:                "SYMBOL_BEGIN",
	Tilde:                      "TILDE",
	UAmpersand:                 "UAMPERSAND",
	UColonColon:                "UCOLON_COLON",
	UDotDot:                    "UDOT_DOT",
	UDotDotDot:                 "UDOT_DOT_DOT",
	UMinus:                     "UMINUS",
	UMinusNum:                  "UMINUS_NUM",
	UPlus:                      "UPLUS",
	UStar:                      "USTAR",
	UStarStar:                  "USTAR_STAR",
	WordsSep:                   "WORDS_SEP",
	EndMarker:                  "__END__",
}

// Valid reports whether t is a type the schema defines.
func (t Type) Valid() bool { return t >= 1 && int(t) <= TypeCount }

func (t Type) String() string {
	if t.Valid() {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", uint16(t))
}
