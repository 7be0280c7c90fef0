package ast

import "fmt"

// FieldDef describes one schema field: display name and wire shape.
type FieldDef struct {
	Name string
	Kind FieldKind
}

// nodeSchemas — фиксированная таблица схемы 0.24.0: вид узла → упорядоченный
// список полей. Таблица воспроизводит внешнюю генерируемую схему кодировщика;
// декодер никогда не выводит формы полей из данных.
var nodeSchemas = [KindCount + 1][]FieldDef{
	KindAliasGlobalVariable: {{"new_name", FieldNode}, {"old_name", FieldNode}, {"keyword_loc", FieldLocation}},
	KindAliasMethod:         {{"new_name", FieldNode}, {"old_name", FieldNode}, {"keyword_loc", FieldLocation}},
	KindAlternationPattern:  {{"left", FieldNode}, {"right", FieldNode}, {"operator_loc", FieldLocation}},
	KindAnd:                 {{"left", FieldNode}, {"right", FieldNode}, {"operator_loc", FieldLocation}},
	KindArguments:           {{"flags", FieldFlags}, {"arguments", FieldNodeList}},
	KindArray:               {{"flags", FieldFlags}, {"elements", FieldNodeList}, {"opening_loc", FieldOptionalLocation}, {"closing_loc", FieldOptionalLocation}},
	KindArrayPattern: {
		{"constant", FieldOptionalNode}, {"requireds", FieldNodeList}, {"rest", FieldOptionalNode},
		{"posts", FieldNodeList}, {"opening_loc", FieldOptionalLocation}, {"closing_loc", FieldOptionalLocation},
	},
	KindAssoc:              {{"key", FieldNode}, {"value", FieldOptionalNode}, {"operator_loc", FieldOptionalLocation}},
	KindAssocSplat:         {{"value", FieldOptionalNode}, {"operator_loc", FieldLocation}},
	KindBackReferenceRead:  {{"name", FieldConstant}},
	KindBegin: {
		{"begin_keyword_loc", FieldOptionalLocation}, {"statements", FieldOptionalNode}, {"rescue_clause", FieldOptionalNode},
		{"else_clause", FieldOptionalNode}, {"ensure_clause", FieldOptionalNode}, {"end_keyword_loc", FieldOptionalLocation},
	},
	KindBlockArgument:      {{"expression", FieldOptionalNode}, {"operator_loc", FieldLocation}},
	KindBlockLocalVariable: {{"name", FieldConstant}},
	KindBlock: {
		{"locals", FieldConstantList}, {"parameters", FieldOptionalNode}, {"body", FieldOptionalNode},
		{"opening_loc", FieldLocation}, {"closing_loc", FieldLocation},
	},
	KindBlockParameter: {
		{"flags", FieldFlags}, {"name", FieldOptionalConstant}, {"name_loc", FieldOptionalLocation}, {"operator_loc", FieldLocation},
	},
	KindBlockParameters: {
		{"parameters", FieldOptionalNode}, {"locals", FieldNodeList},
		{"opening_loc", FieldOptionalLocation}, {"closing_loc", FieldOptionalLocation},
	},
	KindBreak: {{"arguments", FieldOptionalNode}, {"keyword_loc", FieldLocation}},
	KindCallAndWrite: {
		{"flags", FieldFlags}, {"receiver", FieldOptionalNode}, {"call_operator_loc", FieldOptionalLocation},
		{"message_loc", FieldOptionalLocation}, {"read_name", FieldConstant}, {"write_name", FieldConstant},
		{"operator_loc", FieldLocation}, {"value", FieldNode},
	},
	KindCall: {
		{"flags", FieldFlags}, {"receiver", FieldOptionalNode}, {"call_operator_loc", FieldOptionalLocation},
		{"name", FieldConstant}, {"message_loc", FieldOptionalLocation}, {"opening_loc", FieldOptionalLocation},
		{"arguments", FieldOptionalNode}, {"closing_loc", FieldOptionalLocation}, {"block", FieldOptionalNode},
	},
	KindCallOperatorWrite: {
		{"flags", FieldFlags}, {"receiver", FieldOptionalNode}, {"call_operator_loc", FieldOptionalLocation},
		{"message_loc", FieldOptionalLocation}, {"read_name", FieldConstant}, {"write_name", FieldConstant},
		{"operator", FieldConstant}, {"operator_loc", FieldLocation}, {"value", FieldNode},
	},
	KindCallOrWrite: {
		{"flags", FieldFlags}, {"receiver", FieldOptionalNode}, {"call_operator_loc", FieldOptionalLocation},
		{"message_loc", FieldOptionalLocation}, {"read_name", FieldConstant}, {"write_name", FieldConstant},
		{"operator_loc", FieldLocation}, {"value", FieldNode},
	},
	KindCallTarget: {
		{"flags", FieldFlags}, {"receiver", FieldNode}, {"call_operator_loc", FieldLocation},
		{"name", FieldConstant}, {"message_loc", FieldLocation},
	},
	KindCapturePattern: {{"value", FieldNode}, {"target", FieldNode}, {"operator_loc", FieldLocation}},
	KindCaseMatch: {
		{"predicate", FieldOptionalNode}, {"conditions", FieldNodeList}, {"consequent", FieldOptionalNode},
		{"case_keyword_loc", FieldLocation}, {"end_keyword_loc", FieldLocation},
	},
	KindCase: {
		{"predicate", FieldOptionalNode}, {"conditions", FieldNodeList}, {"consequent", FieldOptionalNode},
		{"case_keyword_loc", FieldLocation}, {"end_keyword_loc", FieldLocation},
	},
	KindClass: {
		{"locals", FieldConstantList}, {"class_keyword_loc", FieldLocation}, {"constant_path", FieldNode},
		{"inheritance_operator_loc", FieldOptionalLocation}, {"superclass", FieldOptionalNode},
		{"body", FieldOptionalNode}, {"end_keyword_loc", FieldLocation}, {"name", FieldConstant},
	},
	KindClassVariableAndWrite: {
		{"name", FieldConstant}, {"name_loc", FieldLocation}, {"operator_loc", FieldLocation}, {"value", FieldNode},
	},
	KindClassVariableOperatorWrite: {
		{"name", FieldConstant}, {"name_loc", FieldLocation}, {"operator_loc", FieldLocation},
		{"value", FieldNode}, {"operator", FieldConstant},
	},
	KindClassVariableOrWrite: {
		{"name", FieldConstant}, {"name_loc", FieldLocation}, {"operator_loc", FieldLocation}, {"value", FieldNode},
	},
	KindClassVariableRead:   {{"name", FieldConstant}},
	KindClassVariableTarget: {{"name", FieldConstant}},
	KindClassVariableWrite: {
		{"name", FieldConstant}, {"name_loc", FieldLocation}, {"value", FieldNode}, {"operator_loc", FieldLocation},
	},
	KindConstantAndWrite: {
		{"name", FieldConstant}, {"name_loc", FieldLocation}, {"operator_loc", FieldLocation}, {"value", FieldNode},
	},
	KindConstantOperatorWrite: {
		{"name", FieldConstant}, {"name_loc", FieldLocation}, {"operator_loc", FieldLocation},
		{"value", FieldNode}, {"operator", FieldConstant},
	},
	KindConstantOrWrite: {
		{"name", FieldConstant}, {"name_loc", FieldLocation}, {"operator_loc", FieldLocation}, {"value", FieldNode},
	},
	KindConstantPathAndWrite: {{"target", FieldNode}, {"operator_loc", FieldLocation}, {"value", FieldNode}},
	KindConstantPath:         {{"parent", FieldOptionalNode}, {"child", FieldNode}, {"delimiter_loc", FieldLocation}},
	KindConstantPathOperatorWrite: {
		{"target", FieldNode}, {"operator_loc", FieldLocation}, {"value", FieldNode}, {"operator", FieldConstant},
	},
	KindConstantPathOrWrite: {{"target", FieldNode}, {"operator_loc", FieldLocation}, {"value", FieldNode}},
	KindConstantPathTarget:  {{"parent", FieldOptionalNode}, {"child", FieldNode}, {"delimiter_loc", FieldLocation}},
	KindConstantPathWrite:   {{"target", FieldNode}, {"operator_loc", FieldLocation}, {"value", FieldNode}},
	KindConstantRead:        {{"name", FieldConstant}},
	KindConstantTarget:      {{"name", FieldConstant}},
	KindConstantWrite: {
		{"name", FieldConstant}, {"name_loc", FieldLocation}, {"value", FieldNode}, {"operator_loc", FieldLocation},
	},
	KindDef: {
		{"name", FieldConstant}, {"name_loc", FieldLocation}, {"receiver", FieldOptionalNode},
		{"parameters", FieldOptionalNode}, {"body", FieldOptionalNode}, {"locals", FieldConstantList},
		{"def_keyword_loc", FieldLocation}, {"operator_loc", FieldOptionalLocation},
		{"lparen_loc", FieldOptionalLocation}, {"rparen_loc", FieldOptionalLocation},
		{"equal_loc", FieldOptionalLocation}, {"end_keyword_loc", FieldOptionalLocation},
	},
	KindDefined: {
		{"lparen_loc", FieldOptionalLocation}, {"value", FieldNode},
		{"rparen_loc", FieldOptionalLocation}, {"keyword_loc", FieldLocation},
	},
	KindElse: {
		{"else_keyword_loc", FieldLocation}, {"statements", FieldOptionalNode}, {"end_keyword_loc", FieldOptionalLocation},
	},
	KindEmbeddedStatements: {
		{"opening_loc", FieldLocation}, {"statements", FieldOptionalNode}, {"closing_loc", FieldLocation},
	},
	KindEmbeddedVariable: {{"operator_loc", FieldLocation}, {"variable", FieldNode}},
	KindEnsure: {
		{"ensure_keyword_loc", FieldLocation}, {"statements", FieldOptionalNode}, {"end_keyword_loc", FieldLocation},
	},
	KindFalse: {},
	KindFindPattern: {
		{"constant", FieldOptionalNode}, {"left", FieldNode}, {"requireds", FieldNodeList}, {"right", FieldNode},
		{"opening_loc", FieldOptionalLocation}, {"closing_loc", FieldOptionalLocation},
	},
	KindFlipFlop: {
		{"flags", FieldFlags}, {"left", FieldOptionalNode}, {"right", FieldOptionalNode}, {"operator_loc", FieldLocation},
	},
	KindFloat: {{"value", FieldDouble}},
	KindFor: {
		{"index", FieldNode}, {"collection", FieldNode}, {"statements", FieldOptionalNode},
		{"for_keyword_loc", FieldLocation}, {"in_keyword_loc", FieldLocation},
		{"do_keyword_loc", FieldOptionalLocation}, {"end_keyword_loc", FieldLocation},
	},
	KindForwardingArguments: {},
	KindForwardingParameter: {},
	KindForwardingSuper:     {{"block", FieldOptionalNode}},
	KindGlobalVariableAndWrite: {
		{"name", FieldConstant}, {"name_loc", FieldLocation}, {"operator_loc", FieldLocation}, {"value", FieldNode},
	},
	KindGlobalVariableOperatorWrite: {
		{"name", FieldConstant}, {"name_loc", FieldLocation}, {"operator_loc", FieldLocation},
		{"value", FieldNode}, {"operator", FieldConstant},
	},
	KindGlobalVariableOrWrite: {
		{"name", FieldConstant}, {"name_loc", FieldLocation}, {"operator_loc", FieldLocation}, {"value", FieldNode},
	},
	KindGlobalVariableRead:   {{"name", FieldConstant}},
	KindGlobalVariableTarget: {{"name", FieldConstant}},
	KindGlobalVariableWrite: {
		{"name", FieldConstant}, {"name_loc", FieldLocation}, {"value", FieldNode}, {"operator_loc", FieldLocation},
	},
	KindHash: {{"elements", FieldNodeList}, {"opening_loc", FieldLocation}, {"closing_loc", FieldLocation}},
	KindHashPattern: {
		{"constant", FieldOptionalNode}, {"elements", FieldNodeList}, {"rest", FieldOptionalNode},
		{"opening_loc", FieldOptionalLocation}, {"closing_loc", FieldOptionalLocation},
	},
	KindIf: {
		{"if_keyword_loc", FieldOptionalLocation}, {"predicate", FieldNode}, {"then_keyword_loc", FieldOptionalLocation},
		{"statements", FieldOptionalNode}, {"consequent", FieldOptionalNode}, {"end_keyword_loc", FieldOptionalLocation},
	},
	KindImaginary:    {{"numeric", FieldNode}},
	KindImplicit:     {{"value", FieldNode}},
	KindImplicitRest: {},
	KindIn: {
		{"pattern", FieldNode}, {"statements", FieldOptionalNode},
		{"in_loc", FieldLocation}, {"then_loc", FieldOptionalLocation},
	},
	KindIndexAndWrite: {
		{"flags", FieldFlags}, {"receiver", FieldOptionalNode}, {"call_operator_loc", FieldOptionalLocation},
		{"opening_loc", FieldLocation}, {"arguments", FieldOptionalNode}, {"closing_loc", FieldLocation},
		{"block", FieldOptionalNode}, {"operator_loc", FieldLocation}, {"value", FieldNode},
	},
	KindIndexOperatorWrite: {
		{"flags", FieldFlags}, {"receiver", FieldOptionalNode}, {"call_operator_loc", FieldOptionalLocation},
		{"opening_loc", FieldLocation}, {"arguments", FieldOptionalNode}, {"closing_loc", FieldLocation},
		{"block", FieldOptionalNode}, {"operator", FieldConstant}, {"operator_loc", FieldLocation}, {"value", FieldNode},
	},
	KindIndexOrWrite: {
		{"flags", FieldFlags}, {"receiver", FieldOptionalNode}, {"call_operator_loc", FieldOptionalLocation},
		{"opening_loc", FieldLocation}, {"arguments", FieldOptionalNode}, {"closing_loc", FieldLocation},
		{"block", FieldOptionalNode}, {"operator_loc", FieldLocation}, {"value", FieldNode},
	},
	KindIndexTarget: {
		{"flags", FieldFlags}, {"receiver", FieldNode}, {"opening_loc", FieldLocation},
		{"arguments", FieldOptionalNode}, {"closing_loc", FieldLocation}, {"block", FieldOptionalNode},
	},
	KindInstanceVariableAndWrite: {
		{"name", FieldConstant}, {"name_loc", FieldLocation}, {"operator_loc", FieldLocation}, {"value", FieldNode},
	},
	KindInstanceVariableOperatorWrite: {
		{"name", FieldConstant}, {"name_loc", FieldLocation}, {"operator_loc", FieldLocation},
		{"value", FieldNode}, {"operator", FieldConstant},
	},
	KindInstanceVariableOrWrite: {
		{"name", FieldConstant}, {"name_loc", FieldLocation}, {"operator_loc", FieldLocation}, {"value", FieldNode},
	},
	KindInstanceVariableRead:   {{"name", FieldConstant}},
	KindInstanceVariableTarget: {{"name", FieldConstant}},
	KindInstanceVariableWrite: {
		{"name", FieldConstant}, {"name_loc", FieldLocation}, {"value", FieldNode}, {"operator_loc", FieldLocation},
	},
	KindInteger: {{"flags", FieldFlags}, {"value", FieldInteger}},
	KindInterpolatedMatchLastLine: {
		{"flags", FieldFlags}, {"opening_loc", FieldLocation}, {"parts", FieldNodeList}, {"closing_loc", FieldLocation},
	},
	KindInterpolatedRegularExpression: {
		{"flags", FieldFlags}, {"opening_loc", FieldLocation}, {"parts", FieldNodeList}, {"closing_loc", FieldLocation},
	},
	KindInterpolatedString: {
		{"opening_loc", FieldOptionalLocation}, {"parts", FieldNodeList}, {"closing_loc", FieldOptionalLocation},
	},
	KindInterpolatedSymbol: {
		{"opening_loc", FieldOptionalLocation}, {"parts", FieldNodeList}, {"closing_loc", FieldOptionalLocation},
	},
	KindInterpolatedXString: {
		{"opening_loc", FieldLocation}, {"parts", FieldNodeList}, {"closing_loc", FieldLocation},
	},
	KindKeywordHash: {{"flags", FieldFlags}, {"elements", FieldNodeList}},
	KindKeywordRestParameter: {
		{"flags", FieldFlags}, {"name", FieldOptionalConstant}, {"name_loc", FieldOptionalLocation}, {"operator_loc", FieldLocation},
	},
	KindLambda: {
		{"locals", FieldConstantList}, {"operator_loc", FieldLocation}, {"opening_loc", FieldLocation},
		{"closing_loc", FieldLocation}, {"parameters", FieldOptionalNode}, {"body", FieldOptionalNode},
	},
	KindLocalVariableAndWrite: {
		{"name_loc", FieldLocation}, {"operator_loc", FieldLocation}, {"value", FieldNode},
		{"name", FieldConstant}, {"depth", FieldUint32},
	},
	KindLocalVariableOperatorWrite: {
		{"name_loc", FieldLocation}, {"operator_loc", FieldLocation}, {"value", FieldNode},
		{"name", FieldConstant}, {"operator", FieldConstant}, {"depth", FieldUint32},
	},
	KindLocalVariableOrWrite: {
		{"name_loc", FieldLocation}, {"operator_loc", FieldLocation}, {"value", FieldNode},
		{"name", FieldConstant}, {"depth", FieldUint32},
	},
	KindLocalVariableRead:   {{"name", FieldConstant}, {"depth", FieldUint32}},
	KindLocalVariableTarget: {{"name", FieldConstant}, {"depth", FieldUint32}},
	KindLocalVariableWrite: {
		{"name", FieldConstant}, {"depth", FieldUint32}, {"name_loc", FieldLocation},
		{"value", FieldNode}, {"operator_loc", FieldLocation},
	},
	KindMatchLastLine: {
		{"flags", FieldFlags}, {"opening_loc", FieldLocation}, {"content_loc", FieldLocation},
		{"closing_loc", FieldLocation}, {"unescaped", FieldString},
	},
	KindMatchPredicate: {{"value", FieldNode}, {"pattern", FieldNode}, {"operator_loc", FieldLocation}},
	KindMatchRequired:  {{"value", FieldNode}, {"pattern", FieldNode}, {"operator_loc", FieldLocation}},
	KindMatchWrite:     {{"call", FieldNode}, {"targets", FieldNodeList}},
	KindMissing:        {},
	KindModule: {
		{"locals", FieldConstantList}, {"module_keyword_loc", FieldLocation}, {"constant_path", FieldNode},
		{"body", FieldOptionalNode}, {"end_keyword_loc", FieldLocation}, {"name", FieldConstant},
	},
	KindMultiTarget: {
		{"lefts", FieldNodeList}, {"rest", FieldOptionalNode}, {"rights", FieldNodeList},
		{"lparen_loc", FieldOptionalLocation}, {"rparen_loc", FieldOptionalLocation},
	},
	KindMultiWrite: {
		{"lefts", FieldNodeList}, {"rest", FieldOptionalNode}, {"rights", FieldNodeList},
		{"lparen_loc", FieldOptionalLocation}, {"rparen_loc", FieldOptionalLocation},
		{"operator_loc", FieldLocation}, {"value", FieldNode},
	},
	KindNext:                {{"arguments", FieldOptionalNode}, {"keyword_loc", FieldLocation}},
	KindNil:                 {},
	KindNoKeywordsParameter: {{"operator_loc", FieldLocation}, {"keyword_loc", FieldLocation}},
	KindNumberedParameters:  {{"maximum", FieldUint8}},
	KindNumberedReferenceRead: {
		{"number", FieldUint32},
	},
	KindOptionalKeywordParameter: {
		{"flags", FieldFlags}, {"name", FieldConstant}, {"name_loc", FieldLocation}, {"value", FieldNode},
	},
	KindOptionalParameter: {
		{"flags", FieldFlags}, {"name", FieldConstant}, {"name_loc", FieldLocation},
		{"operator_loc", FieldLocation}, {"value", FieldNode},
	},
	KindOr: {{"left", FieldNode}, {"right", FieldNode}, {"operator_loc", FieldLocation}},
	KindParameters: {
		{"requireds", FieldNodeList}, {"optionals", FieldNodeList}, {"rest", FieldOptionalNode},
		{"posts", FieldNodeList}, {"keywords", FieldNodeList}, {"keyword_rest", FieldOptionalNode},
		{"block", FieldOptionalNode},
	},
	KindParentheses: {{"body", FieldOptionalNode}, {"opening_loc", FieldLocation}, {"closing_loc", FieldLocation}},
	KindPinnedExpression: {
		{"expression", FieldNode}, {"operator_loc", FieldLocation},
		{"lparen_loc", FieldLocation}, {"rparen_loc", FieldLocation},
	},
	KindPinnedVariable: {{"variable", FieldNode}, {"operator_loc", FieldLocation}},
	KindPostExecution: {
		{"statements", FieldOptionalNode}, {"keyword_loc", FieldLocation},
		{"opening_loc", FieldLocation}, {"closing_loc", FieldLocation},
	},
	KindPreExecution: {
		{"statements", FieldOptionalNode}, {"keyword_loc", FieldLocation},
		{"opening_loc", FieldLocation}, {"closing_loc", FieldLocation},
	},
	KindProgram:  {{"locals", FieldConstantList}, {"statements", FieldNode}},
	KindRange:    {{"flags", FieldFlags}, {"left", FieldOptionalNode}, {"right", FieldOptionalNode}, {"operator_loc", FieldLocation}},
	KindRational: {{"numeric", FieldNode}},
	KindRedo:     {},
	KindRegularExpression: {
		{"flags", FieldFlags}, {"opening_loc", FieldLocation}, {"content_loc", FieldLocation},
		{"closing_loc", FieldLocation}, {"unescaped", FieldString},
	},
	KindRequiredKeywordParameter: {{"flags", FieldFlags}, {"name", FieldConstant}, {"name_loc", FieldLocation}},
	KindRequiredParameter:        {{"flags", FieldFlags}, {"name", FieldConstant}},
	KindRescueModifier:           {{"expression", FieldNode}, {"keyword_loc", FieldLocation}, {"rescue_expression", FieldNode}},
	KindRescue: {
		{"keyword_loc", FieldLocation}, {"exceptions", FieldNodeList}, {"operator_loc", FieldOptionalLocation},
		{"reference", FieldOptionalNode}, {"statements", FieldOptionalNode}, {"consequent", FieldOptionalNode},
	},
	KindRestParameter: {
		{"flags", FieldFlags}, {"name", FieldOptionalConstant}, {"name_loc", FieldOptionalLocation}, {"operator_loc", FieldLocation},
	},
	KindRetry:  {},
	KindReturn: {{"keyword_loc", FieldLocation}, {"arguments", FieldOptionalNode}},
	KindSelf:   {},
	KindSingletonClass: {
		{"locals", FieldConstantList}, {"class_keyword_loc", FieldLocation}, {"operator_loc", FieldLocation},
		{"expression", FieldNode}, {"body", FieldOptionalNode}, {"end_keyword_loc", FieldLocation},
	},
	KindSourceEncoding: {},
	KindSourceFile:     {{"filepath", FieldString}},
	KindSourceLine:     {},
	KindSplat:          {{"operator_loc", FieldLocation}, {"expression", FieldOptionalNode}},
	KindStatements:     {{"body", FieldNodeList}},
	KindString: {
		{"flags", FieldFlags}, {"opening_loc", FieldOptionalLocation}, {"content_loc", FieldLocation},
		{"closing_loc", FieldOptionalLocation}, {"unescaped", FieldString},
	},
	KindSuper: {
		{"keyword_loc", FieldLocation}, {"lparen_loc", FieldOptionalLocation}, {"arguments", FieldOptionalNode},
		{"rparen_loc", FieldOptionalLocation}, {"block", FieldOptionalNode},
	},
	KindSymbol: {
		{"flags", FieldFlags}, {"opening_loc", FieldOptionalLocation}, {"value_loc", FieldOptionalLocation},
		{"closing_loc", FieldOptionalLocation}, {"unescaped", FieldString},
	},
	KindTrue:  {},
	KindUndef: {{"names", FieldNodeList}, {"keyword_loc", FieldLocation}},
	KindUnless: {
		{"keyword_loc", FieldLocation}, {"predicate", FieldNode}, {"then_keyword_loc", FieldOptionalLocation},
		{"statements", FieldOptionalNode}, {"consequent", FieldOptionalNode}, {"end_keyword_loc", FieldOptionalLocation},
	},
	KindUntil: {
		{"flags", FieldFlags}, {"keyword_loc", FieldLocation}, {"closing_loc", FieldOptionalLocation},
		{"predicate", FieldNode}, {"statements", FieldOptionalNode},
	},
	KindWhen: {{"keyword_loc", FieldLocation}, {"conditions", FieldNodeList}, {"statements", FieldOptionalNode}},
	KindWhile: {
		{"flags", FieldFlags}, {"keyword_loc", FieldLocation}, {"closing_loc", FieldOptionalLocation},
		{"predicate", FieldNode}, {"statements", FieldOptionalNode},
	},
	KindXString: {
		{"flags", FieldFlags}, {"opening_loc", FieldLocation}, {"content_loc", FieldLocation},
		{"closing_loc", FieldLocation}, {"unescaped", FieldString},
	},
	KindYield: {
		{"keyword_loc", FieldLocation}, {"lparen_loc", FieldOptionalLocation},
		{"arguments", FieldOptionalNode}, {"rparen_loc", FieldOptionalLocation},
	},
}

// lenHintKinds — виды переменного размера, несущие после локации 4-байтовую
// подсказку длины для пропуска вперёд. Декодер читает её и отбрасывает.
var lenHintKinds = [KindCount + 1]bool{
	KindDef: true,
}

// Schema returns the ordered field definitions for a kind.
func Schema(k Kind) ([]FieldDef, bool) {
	if !k.Valid() {
		return nil, false
	}
	return nodeSchemas[k], true
}

// HasLengthHint reports whether the kind carries a serialized length hint.
func HasLengthHint(k Kind) bool {
	return k.Valid() && lenHintKinds[k]
}

// ValidateSchema проверяет полноту таблиц: каждый вид 1..KindCount имеет имя
// и список полей (возможно пустой, но объявленный). Вызывается из тестов и
// один раз при инициализации загрузчика.
func ValidateSchema() error {
	for k := Kind(1); int(k) <= KindCount; k++ {
		if kindNames[k] == "" {
			return fmt.Errorf("kind %d has no name", k)
		}
		if nodeSchemas[k] == nil {
			return fmt.Errorf("kind %s has no field schema", k)
		}
		for i, def := range nodeSchemas[k] {
			if def.Name == "" {
				return fmt.Errorf("%s field %d has no name", k, i)
			}
			if def.Kind < FieldNode || def.Kind > FieldDouble {
				return fmt.Errorf("%s field %q has invalid shape %d", k, def.Name, def.Kind)
			}
		}
	}
	return nil
}
