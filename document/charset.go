package document

import (
	"golang.org/x/text/encoding/charmap"

	"ResumeBot/model"
)

// Unsupported returns, in order of first appearance, the characters of blocks
// that the cp1252 core fonts cannot draw. WritePDF replaces them.
func Unsupported(blocks []Block) []rune {
	var out []rune
	seen := map[rune]bool{}
	check := func(s string) {
		for _, r := range s {
			if seen[r] {
				continue
			}
			seen[r] = true
			if _, ok := charmap.Windows1252.EncodeRune(r); !ok {
				out = append(out, r)
			}
		}
	}
	for _, b := range blocks {
		check(b.Label)
		check(b.Text)
	}
	return out
}

// UnsupportedText is Unsupported applied to the layout of rec.
func UnsupportedText(rec model.Record) []rune {
	blocks, err := Render(rec)
	if err != nil {
		return nil
	}
	return Unsupported(blocks)
}
