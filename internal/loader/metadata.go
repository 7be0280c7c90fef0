package loader

import (
	"fmt"

	"github.com/Neswisoft/ruby/internal/ast"
	"github.com/Neswisoft/ruby/internal/diag"
	"github.com/Neswisoft/ruby/internal/wire"
)

// metadata decodes the shared metadata block: comments, magic comments, the
// optional data section location, then parse errors and warnings.
func (l *loader) metadata(res *ParseResult) error {
	count, err := l.cur.Varuint32()
	if err != nil {
		return fmt.Errorf("reading comment count: %w", err)
	}
	if count > l.cur.Remaining() {
		return fmt.Errorf("comment list with %d entries, %d bytes remain: %w",
			count, l.cur.Remaining(), wire.ErrTruncated)
	}
	comments := make([]ast.Comment, count)
	for i := range comments {
		sub, err := l.cur.ReadByte()
		if err != nil {
			return fmt.Errorf("comment %d subtype: %w", i, err)
		}
		if sub > byte(ast.CommentEmbDoc) {
			return fmt.Errorf("comment %d: subtype %d: %w", i, sub, ErrUnknownTag)
		}
		span, err := l.location()
		if err != nil {
			return fmt.Errorf("comment %d location: %w", i, err)
		}
		comments[i] = ast.Comment{Kind: ast.CommentKind(sub), Span: span}
	}
	res.Comments = comments

	count, err = l.cur.Varuint32()
	if err != nil {
		return fmt.Errorf("reading magic comment count: %w", err)
	}
	if count > l.cur.Remaining() {
		return fmt.Errorf("magic comment list with %d entries, %d bytes remain: %w",
			count, l.cur.Remaining(), wire.ErrTruncated)
	}
	magic := make([]ast.MagicComment, count)
	for i := range magic {
		key, err := l.location()
		if err != nil {
			return fmt.Errorf("magic comment %d key: %w", i, err)
		}
		value, err := l.location()
		if err != nil {
			return fmt.Errorf("magic comment %d value: %w", i, err)
		}
		magic[i] = ast.MagicComment{KeySpan: key, ValueSpan: value}
	}
	res.MagicComments = magic

	present, err := l.cur.ReadByte()
	if err != nil {
		return fmt.Errorf("reading data location tag: %w", err)
	}
	if present != 0 {
		span, err := l.location()
		if err != nil {
			return fmt.Errorf("data location: %w", err)
		}
		res.DataSpan = &span
	}

	count, err = l.cur.Varuint32()
	if err != nil {
		return fmt.Errorf("reading error count: %w", err)
	}
	if count > l.cur.Remaining() {
		return fmt.Errorf("error list with %d entries, %d bytes remain: %w",
			count, l.cur.Remaining(), wire.ErrTruncated)
	}
	errs := make([]diag.Error, count)
	for i := range errs {
		typ, err := l.cur.ReadByte()
		if err != nil {
			return fmt.Errorf("error %d type: %w", i, err)
		}
		if !diag.ErrorType(typ).Known() {
			return fmt.Errorf("error %d: type %d: %w", i, typ, ErrUnknownTag)
		}
		msg, err := l.message()
		if err != nil {
			return fmt.Errorf("error %d message: %w", i, err)
		}
		span, err := l.location()
		if err != nil {
			return fmt.Errorf("error %d location: %w", i, err)
		}
		raw, err := l.cur.ReadByte()
		if err != nil {
			return fmt.Errorf("error %d level: %w", i, err)
		}
		var level diag.ErrorLevel
		switch raw {
		case 0:
			level = diag.LevelFatal
		case 1:
			level = diag.LevelArgument
		default:
			return fmt.Errorf("error %d: level %d: %w", i, raw, ErrUnknownTag)
		}
		errs[i] = diag.Error{Type: diag.ErrorType(typ), Message: msg, Span: span, Level: level}
	}
	res.Errors = errs

	count, err = l.cur.Varuint32()
	if err != nil {
		return fmt.Errorf("reading warning count: %w", err)
	}
	if count > l.cur.Remaining() {
		return fmt.Errorf("warning list with %d entries, %d bytes remain: %w",
			count, l.cur.Remaining(), wire.ErrTruncated)
	}
	warns := make([]diag.Warning, count)
	for i := range warns {
		typ, err := l.cur.ReadByte()
		if err != nil {
			return fmt.Errorf("warning %d type: %w", i, err)
		}
		if !diag.WarningType(typ).Known() {
			return fmt.Errorf("warning %d: type %d: %w", i, typ, ErrUnknownTag)
		}
		msg, err := l.message()
		if err != nil {
			return fmt.Errorf("warning %d message: %w", i, err)
		}
		span, err := l.location()
		if err != nil {
			return fmt.Errorf("warning %d location: %w", i, err)
		}
		raw, err := l.cur.ReadByte()
		if err != nil {
			return fmt.Errorf("warning %d level: %w", i, err)
		}
		var level diag.WarningLevel
		switch raw {
		case 0:
			level = diag.LevelDefault
		case 1:
			level = diag.LevelVerbose
		default:
			return fmt.Errorf("warning %d: level %d: %w", i, raw, ErrUnknownTag)
		}
		warns[i] = diag.Warning{Type: diag.WarningType(typ), Message: msg, Span: span, Level: level}
	}
	res.Warnings = warns
	return nil
}

// message reads an embedded diagnostic message. Сообщения продюсера всегда
// ASCII, кодек исходника к ним не применяется.
func (l *loader) message() (string, error) {
	length, err := l.cur.Varuint32()
	if err != nil {
		return "", err
	}
	raw, err := l.cur.ReadSlice(length)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
