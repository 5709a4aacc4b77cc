package document_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ResumeBot/document"
	"ResumeBot/model"
)

func TestUnsupported(t *testing.T) {
	rec := model.Record{Name: "Łukasz Wóyćik 李", Employment: model.EmploymentNone}
	assert.Equal(t, []rune{'Ł', 'ć', '李'}, document.UnsupportedText(rec))

	assert.Empty(t, document.UnsupportedText(sampleRecord()))
	assert.Empty(t, document.Unsupported([]document.Block{{Kind: document.LabeledLine, Label: "Preço", Text: "€ 10 – Ação"}}))
	assert.Nil(t, document.UnsupportedText(model.Record{}))
}
