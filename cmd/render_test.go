package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ResumeBot/model"
)

const recordYAML = `name: Carlos Pereira
age: 41
maritalStatus: Casado
phone: "31988887777"
email: carlos@exemplo.com
highSchool:
  completed: true
  year: "1999"
employment: self_employed
services: Marcenaria, Reformas
languages:
  - institution: Fisk
    language: Espanhol
    level: basic
    startYear: "2020"
    endYear: "2021"
courses: NR-10
`

func TestRenderFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "record.yaml")
	output := filepath.Join(dir, "out.pdf")
	require.NoError(t, os.WriteFile(input, []byte(recordYAML), 0o600))

	require.NoError(t, renderFile(input, output))

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestLoadRecord(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "record.yaml")
	require.NoError(t, os.WriteFile(input, []byte(recordYAML), 0o600))

	rec, err := loadRecord(input)
	require.NoError(t, err)
	assert.Equal(t, "Carlos Pereira", rec.Name)
	assert.Equal(t, model.EmploymentSelfEmployed, rec.Employment)
	assert.Equal(t, model.ProficiencyBasic, rec.Languages[0].Level)
}

func TestRenderFile_Errors(t *testing.T) {
	dir := t.TempDir()

	err := renderFile(filepath.Join(dir, "missing.yaml"), filepath.Join(dir, "out.pdf"))
	assert.ErrorContains(t, err, "error reading record")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("employment: contractor\n"), 0o600))
	assert.ErrorContains(t, renderFile(bad, filepath.Join(dir, "out.pdf")), "error parsing record")

	noStatus := filepath.Join(dir, "nostatus.yaml")
	require.NoError(t, os.WriteFile(noStatus, []byte("employment: none\ndegrees:\n  - institution: Usp\n    course: Direito\n"), 0o600))
	assert.ErrorIs(t, renderFile(noStatus, filepath.Join(dir, "out.pdf")), model.ErrRenderingPrecondition)

	unset := filepath.Join(dir, "unset.yaml")
	require.NoError(t, os.WriteFile(unset, []byte("name: Sem Tipo\n"), 0o600))
	assert.ErrorIs(t, renderFile(unset, filepath.Join(dir, "out.pdf")), model.ErrRenderingPrecondition)
	_, statErr := os.Stat(filepath.Join(dir, "out.pdf"))
	assert.True(t, os.IsNotExist(statErr))
}
