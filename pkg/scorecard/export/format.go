package export

import "fmt"

// Format selects how each chart is written into the archive.
type Format string

const (
	// FormatHTML writes a standalone page per chart.
	FormatHTML Format = "html"
	// FormatPNG writes a rasterized image per chart.
	FormatPNG Format = "png"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatHTML, FormatPNG:
		return Format(s), nil
	default:
		return "", fmt.Errorf("invalid format: %s (must be html or png)", s)
	}
}

// Ext is the file extension of the format.
func (f Format) Ext() string {
	return string(f)
}

// ReadmeName is the usage note placed in every archive.
const ReadmeName = "README.txt"

// Readme returns the usage note for archives of format f.
func Readme(f Format) string {
	if f == FormatPNG {
		return "Megnyitás: a PNG képek bármely képnézegetővel megnyithatók.\n" +
			"Fájlnév: <osztály>__<név>__<diagram>.png\n"
	}
	return "Megnyitás: nyisd meg a HTML fájlokat böngészőben.\n" +
		"PDF: Ctrl+P (Nyomtatás) -> Mentés PDF-be.\n" +
		"Megjegyzés: a grafikonok betöltéséhez internetkapcsolat kell.\n"
}
