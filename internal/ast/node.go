package ast

import (
	"math/big"

	"github.com/Neswisoft/ruby/internal/source"
)

// FieldKind enumerates the wire shapes a node field can take.
type FieldKind uint8

const (
	// FieldNode — обязательный дочерний узел.
	FieldNode FieldKind = iota + 1
	// FieldOptionalNode — дочерний узел либо нулевой байт.
	FieldOptionalNode
	// FieldNodeList — varuint-счётчик и столько же узлов.
	FieldNodeList
	// FieldString — строка в одной из помеченных форм.
	FieldString
	// FieldConstant — обязательная ссылка в пул констант.
	FieldConstant
	// FieldOptionalConstant — ссылка в пул, 0 = отсутствует.
	FieldOptionalConstant
	// FieldConstantList — varuint-счётчик и столько же ссылок.
	FieldConstantList
	// FieldLocation — упакованная пара (start, length).
	FieldLocation
	// FieldOptionalLocation — байт-признак, затем локация если ненулевой.
	FieldOptionalLocation
	// FieldUint8 — один сырой байт.
	FieldUint8
	// FieldUint32 — varuint, ограниченный 32 битами.
	FieldUint32
	// FieldFlags — varuint с битовыми флагами узла.
	FieldFlags
	// FieldInteger — целое произвольной точности.
	FieldInteger
	// FieldDouble — 8-байтовый IEEE-754 little-endian.
	FieldDouble
)

var fieldKindNames = [...]string{
	FieldNode:             "node",
	FieldOptionalNode:     "node?",
	FieldNodeList:         "node[]",
	FieldString:           "string",
	FieldConstant:         "constant",
	FieldOptionalConstant: "constant?",
	FieldConstantList:     "constant[]",
	FieldLocation:         "location",
	FieldOptionalLocation: "location?",
	FieldUint8:            "uint8",
	FieldUint32:           "uint32",
	FieldFlags:            "flags",
	FieldInteger:          "integer",
	FieldDouble:           "double",
}

func (k FieldKind) String() string {
	if int(k) < len(fieldKindNames) && fieldKindNames[k] != "" {
		return fieldKindNames[k]
	}
	return "field?"
}

// Field holds one decoded field value. Kind определяет, какое из полей
// заполнено; остальные остаются нулевыми.
type Field struct {
	Kind FieldKind

	Node    *Node       // FieldNode; FieldOptionalNode (nil = absent)
	Nodes   []*Node     // FieldNodeList
	Str     string      // FieldString
	Const   string      // FieldConstant; FieldOptionalConstant
	ConstOK bool        // присутствие для FieldOptionalConstant
	Consts  []string    // FieldConstantList
	Span    source.Span // FieldLocation; FieldOptionalLocation
	SpanOK  bool        // присутствие для FieldOptionalLocation
	U8      byte        // FieldUint8
	U32     uint32      // FieldUint32; FieldFlags
	Int     *big.Int    // FieldInteger
	F64     float64     // FieldDouble
}

// Node is one decoded tree node. Поля лежат в порядке схемы своего вида;
// после декодирования узел не меняется.
type Node struct {
	Kind   Kind
	Span   source.Span
	Fields []Field
}

// FieldDefs returns the schema field definitions for this node's kind,
// parallel to Fields.
func (n *Node) FieldDefs() []FieldDef {
	defs, _ := Schema(n.Kind)
	return defs
}

// Field returns the decoded field with the given schema name.
func (n *Node) Field(name string) (Field, bool) {
	for i, def := range n.FieldDefs() {
		if def.Name == name {
			return n.Fields[i], true
		}
	}
	return Field{}, false
}

// CommentKind distinguishes the two serialized comment shapes.
type CommentKind uint8

const (
	// CommentInline — обычный комментарий `# ...`.
	CommentInline CommentKind = iota
	// CommentEmbDoc — блок `=begin ... =end`.
	CommentEmbDoc
)

func (k CommentKind) String() string {
	switch k {
	case CommentInline:
		return "inline"
	case CommentEmbDoc:
		return "embdoc"
	default:
		return "comment?"
	}
}

// Comment is a source comment carried in the metadata section.
type Comment struct {
	Kind CommentKind
	Span source.Span
}

// MagicComment is a `# key: value` magic comment; spans cover key and value.
type MagicComment struct {
	KeySpan   source.Span
	ValueSpan source.Span
}
