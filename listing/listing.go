// Package listing renders a program memory image as disassembled text.
package listing

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/ezrec/hack/cpu"
)

// Entry is one disassembled memory word.
type Entry struct {
	Address int    `yaml:"address"`
	Word    uint16 `yaml:"word"`
	Binary  string `yaml:"binary"`
	Text    string `yaml:"text,omitempty"`
	Err     string `yaml:"error,omitempty"`
}

// Listing is the disassembly of a memory image.
type Listing struct {
	Entries []Entry `yaml:"entries"`
}

// New disassembles every memory word that is not fill.
// Words outside the 16-bit range are reported as errors.
func New(tr *cpu.Translator, memory []int32, fill int32) (lst *Listing) {
	if tr == nil {
		tr = cpu.Default()
	}

	lst = &Listing{}

	for address, value := range memory {
		if value == fill {
			continue
		}

		entry := Entry{
			Address: address,
			Word:    uint16(value),
			Binary:  fmt.Sprintf("%016b", uint16(value)),
		}

		if value < 0 || value > 0xffff {
			entry.Err = cpu.ErrWordRange(uint32(value)).Error()
		} else {
			text, err := tr.DecodeWord(uint16(value))
			if err != nil {
				entry.Err = err.Error()
			}
			entry.Text = text
		}

		lst.Entries = append(lst.Entries, entry)
	}

	return
}

// WriteText writes one line per entry: address, binary word and text.
func (lst *Listing) WriteText(w io.Writer) (err error) {
	for _, entry := range lst.Entries {
		text := entry.Text
		if len(entry.Err) != 0 {
			text = "; " + entry.Err
		}
		_, err = fmt.Fprintf(w, "%05d  %v  %v\n", entry.Address, entry.Binary, text)
		if err != nil {
			return
		}
	}

	return
}

// WriteYAML writes the listing as a YAML document.
func (lst *Listing) WriteYAML(w io.Writer) (err error) {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	err = enc.Encode(lst)
	if err != nil {
		return
	}

	return enc.Close()
}
