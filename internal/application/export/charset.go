package export

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// Charsets soportados para los archivos exportados.
const (
	CharsetUTF8        = "utf-8"
	CharsetWindows1252 = "windows-1252"
	CharsetISO88591    = "iso-8859-1"
)

// Encode convierte el texto exportado al charset pedido. Las hojas de cálculo
// antiguas abren mejor windows-1252; los caracteres sin equivalente se reemplazan.
func Encode(text, charset string) ([]byte, error) {
	var enc *encoding.Encoder
	switch strings.ToLower(strings.TrimSpace(charset)) {
	case "", CharsetUTF8, "utf8":
		return []byte(text), nil
	case CharsetWindows1252, "cp1252":
		enc = charmap.Windows1252.NewEncoder()
	case CharsetISO88591, "latin1":
		enc = charmap.ISO8859_1.NewEncoder()
	default:
		return nil, fmt.Errorf("charset no soportado: %q", charset)
	}
	out, err := encoding.ReplaceUnsupported(enc).String(text)
	if err != nil {
		return nil, fmt.Errorf("codificar %s: %w", charset, err)
	}
	return []byte(out), nil
}

// ContentType valor de Content-Type para un CSV en el charset dado.
func ContentType(charset string) string {
	c := strings.ToLower(strings.TrimSpace(charset))
	if c == "" || c == "utf8" {
		c = CharsetUTF8
	}
	return "text/csv; charset=" + c
}
