package cpu

import (
	"iter"
	"sync"
)

// registration is a single text to field value pairing.
type registration struct {
	text string
	code Code
}

// compTable lists every expression spelling. The first spelling of a code
// is its canonical text.
var compTable = []registration{
	{"0", Code(COMP_ZERO)},
	{"1", Code(COMP_ONE)},
	{"-1", Code(COMP_MINUS_ONE)},
	{"D", Code(COMP_D)},
	{"!D", Code(COMP_NOT_D)},
	{"NOTD", Code(COMP_NOT_D)},
	{"M", Code(COMP_M)},
	{"A", Code(COMP_A)},
	{"!M", Code(COMP_NOT_M)},
	{"NOTM", Code(COMP_NOT_M)},
	{"!A", Code(COMP_NOT_A)},
	{"NOTA", Code(COMP_NOT_A)},
	{"-D", Code(COMP_MINUS_D)},
	{"-M", Code(COMP_MINUS_M)},
	{"-A", Code(COMP_MINUS_A)},
	{"D+1", Code(COMP_D_PLUS_ONE)},
	{"M+1", Code(COMP_M_PLUS_ONE)},
	{"A+1", Code(COMP_A_PLUS_ONE)},
	{"D-1", Code(COMP_D_MINUS_ONE)},
	{"M-1", Code(COMP_M_MINUS_ONE)},
	{"A-1", Code(COMP_A_MINUS_ONE)},
	{"D+M", Code(COMP_D_PLUS_M)},
	{"M+D", Code(COMP_D_PLUS_M)},
	{"D+A", Code(COMP_D_PLUS_A)},
	{"A+D", Code(COMP_D_PLUS_A)},
	{"D-M", Code(COMP_D_MINUS_M)},
	{"D-A", Code(COMP_D_MINUS_A)},
	{"M-D", Code(COMP_M_MINUS_D)},
	{"A-D", Code(COMP_A_MINUS_D)},
	{"D&M", Code(COMP_D_AND_M)},
	{"M&D", Code(COMP_D_AND_M)},
	{"D&A", Code(COMP_D_AND_A)},
	{"A&D", Code(COMP_D_AND_A)},
	{"D|M", Code(COMP_D_OR_M)},
	{"M|D", Code(COMP_D_OR_M)},
	{"D|A", Code(COMP_D_OR_A)},
	{"A|D", Code(COMP_D_OR_A)},
}

var destTable = []registration{
	{"A", Code(DEST_A)},
	{"M", Code(DEST_M)},
	{"D", Code(DEST_D)},
	{"AM", Code(DEST_AM)},
	{"AD", Code(DEST_AD)},
	{"MD", Code(DEST_MD)},
	{"AMD", Code(DEST_AMD)},
}

var jumpTable = []registration{
	{"JMP", Code(JUMP_JMP)},
	{"JLT", Code(JUMP_JLT)},
	{"JEQ", Code(JUMP_JEQ)},
	{"JGT", Code(JUMP_JGT)},
	{"JNE", Code(JUMP_JNE)},
	{"JLE", Code(JUMP_JLE)},
	{"JGE", Code(JUMP_JGE)},
}

// textSlot is a reverse table entry.
type textSlot struct {
	text  string
	valid bool
}

// fieldTable is the bidirectional table of a single field.
type fieldTable struct {
	field   Field
	shift   uint
	toCode  map[string]Code
	toText  []textSlot
	ordered []registration
}

func newFieldTable(field Field, mask Code, shift uint) *fieldTable {
	return &fieldTable{
		field:  field,
		shift:  shift,
		toCode: make(map[string]Code),
		toText: make([]textSlot, int(mask>>shift)+1),
	}
}

// register adds a spelling. The reverse slot keeps its first text.
func (ft *fieldTable) register(text string, code Code) {
	if len(text) != 0 {
		ft.toCode[text] = code
		ft.ordered = append(ft.ordered, registration{text: text, code: code})
	}

	slot := &ft.toText[code>>ft.shift]
	if !slot.valid {
		slot.text = text
		slot.valid = true
	}
}

func (ft *fieldTable) codeFor(text string) (code Code, err error) {
	code, ok := ft.toCode[text]
	if !ok {
		err = &ErrUnknownMnemonic{Field: ft.field, Text: text}
	}
	return
}

func (ft *fieldTable) textFor(code Code) (text string, err error) {
	index := code >> ft.shift
	if code < 0 || (index<<ft.shift) != code || int(index) >= len(ft.toText) || !ft.toText[index].valid {
		err = &ErrUnknownCode{Field: ft.field, Value: code}
		return
	}

	text = ft.toText[index].text
	return
}

// Translator holds the immutable text to code tables of the three compute
// instruction fields. It is safe for concurrent use once created.
type Translator struct {
	fields [3](*fieldTable)
}

// NewTranslator builds the tables.
func NewTranslator() (tr *Translator) {
	comp := newFieldTable(FIELD_COMP, COMP_MASK, 6)
	// An absent expression decodes to nothing.
	comp.register("", Code(COMP_NONE))
	for _, reg := range compTable {
		comp.register(reg.text, reg.code)
	}

	dest := newFieldTable(FIELD_DEST, DEST_MASK, 3)
	for _, reg := range destTable {
		dest.register(reg.text, reg.code)
	}

	jump := newFieldTable(FIELD_JUMP, JUMP_MASK, 0)
	for _, reg := range jumpTable {
		jump.register(reg.text, reg.code)
	}

	tr = &Translator{
		fields: [3](*fieldTable){comp, dest, jump},
	}

	return
}

var defaultTranslator = sync.OnceValue(NewTranslator)

// Default returns the shared translator, built on first use.
func Default() *Translator {
	return defaultTranslator()
}

func (tr *Translator) table(field Field) (ft *fieldTable) {
	if field < 0 || int(field) >= len(tr.fields) {
		panic(f("invalid field %v", field))
	}
	return tr.fields[field]
}

// CodeFor returns the field value registered for text.
func (tr *Translator) CodeFor(field Field, text string) (code Code, err error) {
	return tr.table(field).codeFor(text)
}

// TextFor returns the canonical text registered for a field value.
func (tr *Translator) TextFor(field Field, code Code) (text string, err error) {
	return tr.table(field).textFor(code)
}

// Aliases iterates over every accepted spelling of a field, in
// registration order.
func (tr *Translator) Aliases(field Field) iter.Seq2[string, Code] {
	ft := tr.table(field)
	return func(yield func(text string, code Code) bool) {
		for _, reg := range ft.ordered {
			if !yield(reg.text, reg.code) {
				return
			}
		}
	}
}

// Canonical iterates over every encodable field value and its canonical
// text, in ascending code order.
func (tr *Translator) Canonical(field Field) iter.Seq2[Code, string] {
	ft := tr.table(field)
	return func(yield func(code Code, text string) bool) {
		for index, slot := range ft.toText {
			if !slot.valid || len(slot.text) == 0 {
				continue
			}
			if !yield(Code(index)<<ft.shift, slot.text) {
				return
			}
		}
	}
}
