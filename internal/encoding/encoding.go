// Package encoding резолвит имена исходных кодировок Ruby в декодеры UTF-8.
//
// Имя кодировки приходит из сериализованного заголовка и совпадает с
// каноническим именем Encoding в Ruby. Большинство имён совпадают с реестром
// IANA; немногочисленные рубишные псевдонимы переводятся таблицей ниже.
package encoding

import (
	"errors"
	"fmt"
	"strings"

	xencoding "golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

// ErrUnknown reports an encoding name that cannot be resolved to a decoder.
var ErrUnknown = errors.New("unknown source encoding")

// identityNames — кодировки, чьи байты уже валидны как UTF-8 либо
// трактуются как бинарные: перекодирование не требуется.
var identityNames = map[string]struct{}{
	"utf-8":      {},
	"utf8":       {},
	"us-ascii":   {},
	"ascii":      {},
	"ascii-8bit": {},
	"binary":     {},
}

// rubyAliases maps Ruby-only spellings to their IANA charset names.
var rubyAliases = map[string]string{
	"sjis":   "Shift_JIS",
	"eucjp":  "EUC-JP",
	"euckr":  "EUC-KR",
	"euccn":  "GBK",
	"cp932":  "Windows-31J",
	"cp936":  "GBK",
	"cp949":  "EUC-KR",
	"cp950":  "Big5",
	"cp1250": "windows-1250",
	"cp1251": "windows-1251",
	"cp1252": "windows-1252",
	"cp1253": "windows-1253",
	"cp1254": "windows-1254",
	"cp1255": "windows-1255",
	"cp1256": "windows-1256",
	"cp1257": "windows-1257",
	"cp1258": "windows-1258",
}

// Encoding is a resolved source encoding. The zero decoder means the bytes
// pass through unchanged.
type Encoding struct {
	Name string
	enc  xencoding.Encoding
}

// Resolve looks up a Ruby encoding name. An empty name defaults to UTF-8,
// matching the parser's own default.
func Resolve(name string) (*Encoding, error) {
	if name == "" {
		return &Encoding{Name: "UTF-8"}, nil
	}
	lower := strings.ToLower(name)
	if _, ok := identityNames[lower]; ok {
		return &Encoding{Name: name}, nil
	}
	iana := name
	if alias, ok := rubyAliases[lower]; ok {
		iana = alias
	}
	enc, err := ianaindex.IANA.Encoding(iana)
	if err != nil || enc == nil {
		// ianaindex возвращает nil без ошибки для имён, известных реестру,
		// но не реализованных в x/text. Для нас оба случая неразличимы.
		return nil, fmt.Errorf("%w: %q", ErrUnknown, name)
	}
	return &Encoding{Name: name, enc: enc}, nil
}

// Identity reports whether decoding is a no-op for this encoding.
func (e *Encoding) Identity() bool { return e.enc == nil }

// DecodeToUTF8 перекодирует b в UTF-8. Для тождественных кодировок
// возвращает b без копирования.
func (e *Encoding) DecodeToUTF8(b []byte) ([]byte, error) {
	if e.enc == nil {
		return b, nil
	}
	out, err := e.enc.NewDecoder().Bytes(b)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", e.Name, err)
	}
	return out, nil
}
