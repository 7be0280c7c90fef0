package ast

import "fmt"

// Kind identifies a node kind of the serialized tree schema. Значения
// единично-индексированные: 0 зарезервирован и в потоке не встречается.
type Kind uint8

const (
	// KindAliasGlobalVariable represents `alias $new $old`.
	KindAliasGlobalVariable Kind = iota + 1
	// KindAliasMethod represents `alias new_name old_name`.
	KindAliasMethod
	// KindAlternationPattern represents `foo => bar | baz`.
	KindAlternationPattern
	// KindAnd represents `left && right` or `left and right`.
	KindAnd
	// KindArguments represents the argument list of a call.
	KindArguments
	// KindArray represents `[a, b, c]`.
	KindArray
	// KindArrayPattern represents `foo => [a, *rest, b]`.
	KindArrayPattern
	// KindAssoc represents a single `key => value` pair.
	KindAssoc
	// KindAssocSplat represents `**splat` inside a hash.
	KindAssocSplat
	// KindBackReferenceRead represents `$&`, `$'` and friends.
	KindBackReferenceRead
	// KindBegin represents `begin ... rescue ... end`.
	KindBegin
	// KindBlockArgument represents `&block` in an argument list.
	KindBlockArgument
	// KindBlockLocalVariable represents a block-local in `{ |a; x| }`.
	KindBlockLocalVariable
	// KindBlock represents a brace or do..end block.
	KindBlock
	// KindBlockParameter represents `&block` in a parameter list.
	KindBlockParameter
	// KindBlockParameters represents `|a, b; c|`.
	KindBlockParameters
	// KindBreak represents `break` with optional arguments.
	KindBreak
	// KindCallAndWrite represents `foo.bar &&= value`.
	KindCallAndWrite
	// KindCall represents a method call, operator or not.
	KindCall
	// KindCallOperatorWrite represents `foo.bar += value`.
	KindCallOperatorWrite
	// KindCallOrWrite represents `foo.bar ||= value`.
	KindCallOrWrite
	// KindCallTarget represents `foo.bar` as an assignment target.
	KindCallTarget
	// KindCapturePattern represents `foo => bar => baz`.
	KindCapturePattern
	// KindCaseMatch represents `case ... in ... end`.
	KindCaseMatch
	// KindCase represents `case ... when ... end`.
	KindCase
	// KindClass represents `class Name ... end`.
	KindClass
	// KindClassVariableAndWrite represents `@@a &&= value`.
	KindClassVariableAndWrite
	// KindClassVariableOperatorWrite represents `@@a += value`.
	KindClassVariableOperatorWrite
	// KindClassVariableOrWrite represents `@@a ||= value`.
	KindClassVariableOrWrite
	// KindClassVariableRead represents `@@a`.
	KindClassVariableRead
	// KindClassVariableTarget represents `@@a` as an assignment target.
	KindClassVariableTarget
	// KindClassVariableWrite represents `@@a = value`.
	KindClassVariableWrite
	// KindConstantAndWrite represents `A &&= value`.
	KindConstantAndWrite
	// KindConstantOperatorWrite represents `A += value`.
	KindConstantOperatorWrite
	// KindConstantOrWrite represents `A ||= value`.
	KindConstantOrWrite
	// KindConstantPathAndWrite represents `A::B &&= value`.
	KindConstantPathAndWrite
	// KindConstantPath represents `A::B`.
	KindConstantPath
	// KindConstantPathOperatorWrite represents `A::B += value`.
	KindConstantPathOperatorWrite
	// KindConstantPathOrWrite represents `A::B ||= value`.
	KindConstantPathOrWrite
	// KindConstantPathTarget represents `A::B` as an assignment target.
	KindConstantPathTarget
	// KindConstantPathWrite represents `A::B = value`.
	KindConstantPathWrite
	// KindConstantRead represents `A`.
	KindConstantRead
	// KindConstantTarget represents `A` as an assignment target.
	KindConstantTarget
	// KindConstantWrite represents `A = value`.
	KindConstantWrite
	// KindDef represents `def name(params) ... end`.
	KindDef
	// KindDefined represents `defined?(expr)`.
	KindDefined
	// KindElse represents the `else` clause of a conditional.
	KindElse
	// KindEmbeddedStatements represents `#{statements}` in a string.
	KindEmbeddedStatements
	// KindEmbeddedVariable represents `#@ivar` in a string.
	KindEmbeddedVariable
	// KindEnsure represents the `ensure` clause.
	KindEnsure
	// KindFalse represents `false`.
	KindFalse
	// KindFindPattern represents `foo => [*, a, *]`.
	KindFindPattern
	// KindFlipFlop represents `expr1 .. expr2` in a condition.
	KindFlipFlop
	// KindFloat represents a floating point literal.
	KindFloat
	// KindFor represents `for x in collection ... end`.
	KindFor
	// KindForwardingArguments represents `...` in an argument list.
	KindForwardingArguments
	// KindForwardingParameter represents `...` in a parameter list.
	KindForwardingParameter
	// KindForwardingSuper represents `super` without parentheses.
	KindForwardingSuper
	// KindGlobalVariableAndWrite represents `$a &&= value`.
	KindGlobalVariableAndWrite
	// KindGlobalVariableOperatorWrite represents `$a += value`.
	KindGlobalVariableOperatorWrite
	// KindGlobalVariableOrWrite represents `$a ||= value`.
	KindGlobalVariableOrWrite
	// KindGlobalVariableRead represents `$a`.
	KindGlobalVariableRead
	// KindGlobalVariableTarget represents `$a` as an assignment target.
	KindGlobalVariableTarget
	// KindGlobalVariableWrite represents `$a = value`.
	KindGlobalVariableWrite
	// KindHash represents `{ key => value }`.
	KindHash
	// KindHashPattern represents `foo => {a: 1}`.
	KindHashPattern
	// KindIf represents `if` in statement, modifier or ternary form.
	KindIf
	// KindImaginary represents an imaginary literal like `1i`.
	KindImaginary
	// KindImplicit represents an implicit value in a hash shorthand.
	KindImplicit
	// KindImplicitRest represents the trailing comma in `a, = b`.
	KindImplicitRest
	// KindIn represents an `in` clause of a case-match.
	KindIn
	// KindIndexAndWrite represents `foo[i] &&= value`.
	KindIndexAndWrite
	// KindIndexOperatorWrite represents `foo[i] += value`.
	KindIndexOperatorWrite
	// KindIndexOrWrite represents `foo[i] ||= value`.
	KindIndexOrWrite
	// KindIndexTarget represents `foo[i]` as an assignment target.
	KindIndexTarget
	// KindInstanceVariableAndWrite represents `@a &&= value`.
	KindInstanceVariableAndWrite
	// KindInstanceVariableOperatorWrite represents `@a += value`.
	KindInstanceVariableOperatorWrite
	// KindInstanceVariableOrWrite represents `@a ||= value`.
	KindInstanceVariableOrWrite
	// KindInstanceVariableRead represents `@a`.
	KindInstanceVariableRead
	// KindInstanceVariableTarget represents `@a` as an assignment target.
	KindInstanceVariableTarget
	// KindInstanceVariableWrite represents `@a = value`.
	KindInstanceVariableWrite
	// KindInteger represents an integer literal of any magnitude.
	KindInteger
	// KindInterpolatedMatchLastLine represents `if /a #{b}/` regexps.
	KindInterpolatedMatchLastLine
	// KindInterpolatedRegularExpression represents `/a #{b}/`.
	KindInterpolatedRegularExpression
	// KindInterpolatedString represents `"a #{b}"`.
	KindInterpolatedString
	// KindInterpolatedSymbol represents `:"a #{b}"`.
	KindInterpolatedSymbol
	// KindInterpolatedXString represents `` `a #{b}` ``.
	KindInterpolatedXString
	// KindKeywordHash represents bare `key: value` arguments.
	KindKeywordHash
	// KindKeywordRestParameter represents `**rest` in parameters.
	KindKeywordRestParameter
	// KindLambda represents `->(x) { ... }`.
	KindLambda
	// KindLocalVariableAndWrite represents `a &&= value`.
	KindLocalVariableAndWrite
	// KindLocalVariableOperatorWrite represents `a += value`.
	KindLocalVariableOperatorWrite
	// KindLocalVariableOrWrite represents `a ||= value`.
	KindLocalVariableOrWrite
	// KindLocalVariableRead represents a local variable read.
	KindLocalVariableRead
	// KindLocalVariableTarget represents a local as an assignment target.
	KindLocalVariableTarget
	// KindLocalVariableWrite represents `a = value`.
	KindLocalVariableWrite
	// KindMatchLastLine represents `if /regexp/` implicit matches.
	KindMatchLastLine
	// KindMatchPredicate represents `value in pattern`.
	KindMatchPredicate
	// KindMatchRequired represents `value => pattern`.
	KindMatchRequired
	// KindMatchWrite represents named captures writing locals.
	KindMatchWrite
	// KindMissing represents a node the producer could not parse.
	KindMissing
	// KindModule represents `module Name ... end`.
	KindModule
	// KindMultiTarget represents `(a, b)` destructuring targets.
	KindMultiTarget
	// KindMultiWrite represents `a, b = 1, 2`.
	KindMultiWrite
	// KindNext represents `next` with optional arguments.
	KindNext
	// KindNil represents `nil`.
	KindNil
	// KindNoKeywordsParameter represents `**nil` in parameters.
	KindNoKeywordsParameter
	// KindNumberedParameters represents implicit `_1`-style parameters.
	KindNumberedParameters
	// KindNumberedReferenceRead represents `$1`, `$2`, ...
	KindNumberedReferenceRead
	// KindOptionalKeywordParameter represents `name: default`.
	KindOptionalKeywordParameter
	// KindOptionalParameter represents `name = default`.
	KindOptionalParameter
	// KindOr represents `left || right` or `left or right`.
	KindOr
	// KindParameters represents a full method parameter list.
	KindParameters
	// KindParentheses represents a parenthesized expression group.
	KindParentheses
	// KindPinnedExpression represents `^(expr)` in a pattern.
	KindPinnedExpression
	// KindPinnedVariable represents `^variable` in a pattern.
	KindPinnedVariable
	// KindPostExecution represents `END { ... }`.
	KindPostExecution
	// KindPreExecution represents `BEGIN { ... }`.
	KindPreExecution
	// KindProgram represents the root of every parsed tree.
	KindProgram
	// KindRange represents `left .. right` or `left ... right`.
	KindRange
	// KindRational represents a rational literal like `1r`.
	KindRational
	// KindRedo represents `redo`.
	KindRedo
	// KindRegularExpression represents `/pattern/flags`.
	KindRegularExpression
	// KindRequiredKeywordParameter represents `name:` in parameters.
	KindRequiredKeywordParameter
	// KindRequiredParameter represents a plain required parameter.
	KindRequiredParameter
	// KindRescueModifier represents `expr rescue fallback`.
	KindRescueModifier
	// KindRescue represents a `rescue` clause.
	KindRescue
	// KindRestParameter represents `*rest` in parameters.
	KindRestParameter
	// KindRetry represents `retry`.
	KindRetry
	// KindReturn represents `return` with optional arguments.
	KindReturn
	// KindSelf represents `self`.
	KindSelf
	// KindSingletonClass represents `class << self ... end`.
	KindSingletonClass
	// KindSourceEncoding represents `__ENCODING__`.
	KindSourceEncoding
	// KindSourceFile represents `__FILE__`.
	KindSourceFile
	// KindSourceLine represents `__LINE__`.
	KindSourceLine
	// KindSplat represents `*expr`.
	KindSplat
	// KindStatements represents an ordered statement list.
	KindStatements
	// KindString represents a plain string literal.
	KindString
	// KindSuper represents `super(...)` with parentheses.
	KindSuper
	// KindSymbol represents `:symbol`.
	KindSymbol
	// KindTrue represents `true`.
	KindTrue
	// KindUndef represents `undef name`.
	KindUndef
	// KindUnless represents `unless` in statement or modifier form.
	KindUnless
	// KindUntil represents `until` loops.
	KindUntil
	// KindWhen represents a `when` clause of a case.
	KindWhen
	// KindWhile represents `while` loops.
	KindWhile
	// KindXString represents `` `command` ``.
	KindXString
	// KindYield represents `yield` with optional arguments.
	KindYield
)

// KindCount — число видов узлов в схеме; валидные теги лежат в [1, KindCount].
const KindCount = int(KindYield)

var kindNames = [...]string{
	KindAliasGlobalVariable:           "AliasGlobalVariableNode",
	KindAliasMethod:                   "AliasMethodNode",
	KindAlternationPattern:            "AlternationPatternNode",
	KindAnd:                           "AndNode",
	KindArguments:                     "ArgumentsNode",
	KindArray:                         "ArrayNode",
	KindArrayPattern:                  "ArrayPatternNode",
	KindAssoc:                         "AssocNode",
	KindAssocSplat:                    "AssocSplatNode",
	KindBackReferenceRead:             "BackReferenceReadNode",
	KindBegin:                         "BeginNode",
	KindBlockArgument:                 "BlockArgumentNode",
	KindBlockLocalVariable:            "BlockLocalVariableNode",
	KindBlock:                         "BlockNode",
	KindBlockParameter:                "BlockParameterNode",
	KindBlockParameters:               "BlockParametersNode",
	KindBreak:                         "BreakNode",
	KindCallAndWrite:                  "CallAndWriteNode",
	KindCall:                          "CallNode",
	KindCallOperatorWrite:             "CallOperatorWriteNode",
	KindCallOrWrite:                   "CallOrWriteNode",
	KindCallTarget:                    "CallTargetNode",
	KindCapturePattern:                "CapturePatternNode",
	KindCaseMatch:                     "CaseMatchNode",
	KindCase:                          "CaseNode",
	KindClass:                         "ClassNode",
	KindClassVariableAndWrite:         "ClassVariableAndWriteNode",
	KindClassVariableOperatorWrite:    "ClassVariableOperatorWriteNode",
	KindClassVariableOrWrite:          "ClassVariableOrWriteNode",
	KindClassVariableRead:             "ClassVariableReadNode",
	KindClassVariableTarget:           "ClassVariableTargetNode",
	KindClassVariableWrite:            "ClassVariableWriteNode",
	KindConstantAndWrite:              "ConstantAndWriteNode",
	KindConstantOperatorWrite:         "ConstantOperatorWriteNode",
	KindConstantOrWrite:               "ConstantOrWriteNode",
	KindConstantPathAndWrite:          "ConstantPathAndWriteNode",
	KindConstantPath:                  "ConstantPathNode",
	KindConstantPathOperatorWrite:     "ConstantPathOperatorWriteNode",
	KindConstantPathOrWrite:           "ConstantPathOrWriteNode",
	KindConstantPathTarget:            "ConstantPathTargetNode",
	KindConstantPathWrite:             "ConstantPathWriteNode",
	KindConstantRead:                  "ConstantReadNode",
	KindConstantTarget:                "ConstantTargetNode",
	KindConstantWrite:                 "ConstantWriteNode",
	KindDef:                           "DefNode",
	KindDefined:                       "DefinedNode",
	KindElse:                          "ElseNode",
	KindEmbeddedStatements:            "EmbeddedStatementsNode",
	KindEmbeddedVariable:              "EmbeddedVariableNode",
	KindEnsure:                        "EnsureNode",
	KindFalse:                         "FalseNode",
	KindFindPattern:                   "FindPatternNode",
	KindFlipFlop:                      "FlipFlopNode",
	KindFloat:                         "FloatNode",
	KindFor:                           "ForNode",
	KindForwardingArguments:           "ForwardingArgumentsNode",
	KindForwardingParameter:           "ForwardingParameterNode",
	KindForwardingSuper:               "ForwardingSuperNode",
	KindGlobalVariableAndWrite:        "GlobalVariableAndWriteNode",
	KindGlobalVariableOperatorWrite:   "GlobalVariableOperatorWriteNode",
	KindGlobalVariableOrWrite:         "GlobalVariableOrWriteNode",
	KindGlobalVariableRead:            "GlobalVariableReadNode",
	KindGlobalVariableTarget:          "GlobalVariableTargetNode",
	KindGlobalVariableWrite:           "GlobalVariableWriteNode",
	KindHash:                          "HashNode",
	KindHashPattern:                   "HashPatternNode",
	KindIf:                            "IfNode",
	KindImaginary:                     "ImaginaryNode",
	KindImplicit:                      "ImplicitNode",
	KindImplicitRest:                  "ImplicitRestNode",
	KindIn:                            "InNode",
	KindIndexAndWrite:                 "IndexAndWriteNode",
	KindIndexOperatorWrite:            "IndexOperatorWriteNode",
	KindIndexOrWrite:                  "IndexOrWriteNode",
	KindIndexTarget:                   "IndexTargetNode",
	KindInstanceVariableAndWrite:      "InstanceVariableAndWriteNode",
	KindInstanceVariableOperatorWrite: "InstanceVariableOperatorWriteNode",
	KindInstanceVariableOrWrite:       "InstanceVariableOrWriteNode",
	KindInstanceVariableRead:          "InstanceVariableReadNode",
	KindInstanceVariableTarget:        "InstanceVariableTargetNode",
	KindInstanceVariableWrite:         "InstanceVariableWriteNode",
	KindInteger:                       "IntegerNode",
	KindInterpolatedMatchLastLine:     "InterpolatedMatchLastLineNode",
	KindInterpolatedRegularExpression: "InterpolatedRegularExpressionNode",
	KindInterpolatedString:            "InterpolatedStringNode",
	KindInterpolatedSymbol:            "InterpolatedSymbolNode",
	KindInterpolatedXString:           "InterpolatedXStringNode",
	KindKeywordHash:                   "KeywordHashNode",
	KindKeywordRestParameter:          "KeywordRestParameterNode",
	KindLambda:                        "LambdaNode",
	KindLocalVariableAndWrite:         "LocalVariableAndWriteNode",
	KindLocalVariableOperatorWrite:    "LocalVariableOperatorWriteNode",
	KindLocalVariableOrWrite:          "LocalVariableOrWriteNode",
	KindLocalVariableRead:             "LocalVariableReadNode",
	KindLocalVariableTarget:           "LocalVariableTargetNode",
	KindLocalVariableWrite:            "LocalVariableWriteNode",
	KindMatchLastLine:                 "MatchLastLineNode",
	KindMatchPredicate:                "MatchPredicateNode",
	KindMatchRequired:                 "MatchRequiredNode",
	KindMatchWrite:                    "MatchWriteNode",
	KindMissing:                       "MissingNode",
	KindModule:                        "ModuleNode",
	KindMultiTarget:                   "MultiTargetNode",
	KindMultiWrite:                    "MultiWriteNode",
	KindNext:                          "NextNode",
	KindNil:                           "NilNode",
	KindNoKeywordsParameter:           "NoKeywordsParameterNode",
	KindNumberedParameters:            "NumberedParametersNode",
	KindNumberedReferenceRead:         "NumberedReferenceReadNode",
	KindOptionalKeywordParameter:      "OptionalKeywordParameterNode",
	KindOptionalParameter:             "OptionalParameterNode",
	KindOr:                            "OrNode",
	KindParameters:                    "ParametersNode",
	KindParentheses:                   "ParenthesesNode",
	KindPinnedExpression:              "PinnedExpressionNode",
	KindPinnedVariable:                "PinnedVariableNode",
	KindPostExecution:                 "PostExecutionNode",
	KindPreExecution:                  "PreExecutionNode",
	KindProgram:                       "ProgramNode",
	KindRange:                         "RangeNode",
	KindRational:                      "RationalNode",
	KindRedo:                          "RedoNode",
	KindRegularExpression:             "RegularExpressionNode",
	KindRequiredKeywordParameter:      "RequiredKeywordParameterNode",
	KindRequiredParameter:             "RequiredParameterNode",
	KindRescueModifier:                "RescueModifierNode",
	KindRescue:                        "RescueNode",
	KindRestParameter:                 "RestParameterNode",
	KindRetry:                         "RetryNode",
	KindReturn:                        "ReturnNode",
	KindSelf:                          "SelfNode",
	KindSingletonClass:                "SingletonClassNode",
	KindSourceEncoding:                "SourceEncodingNode",
	KindSourceFile:                    "SourceFileNode",
	KindSourceLine:                    "SourceLineNode",
	KindSplat:                         "SplatNode",
	KindStatements:                    "StatementsNode",
	KindString:                        "StringNode",
	KindSuper:                         "SuperNode",
	KindSymbol:                        "SymbolNode",
	KindTrue:                          "TrueNode",
	KindUndef:                         "UndefNode",
	KindUnless:                        "UnlessNode",
	KindUntil:                         "UntilNode",
	KindWhen:                          "WhenNode",
	KindWhile:                         "WhileNode",
	KindXString:                       "XStringNode",
	KindYield:                         "YieldNode",
}

// Valid reports whether k is a kind the schema defines.
func (k Kind) Valid() bool { return k >= 1 && int(k) <= KindCount }

func (k Kind) String() string {
	if k.Valid() {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}
