package document_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ResumeBot/document"
	"ResumeBot/model"
	"ResumeBot/wizard"
)

// section returns the blocks between the header titled title and the next header.
func section(t *testing.T, blocks []document.Block, title string) []document.Block {
	t.Helper()
	for i, b := range blocks {
		if b.Kind != document.SectionHeader || b.Text != title {
			continue
		}
		var out []document.Block
		for _, nb := range blocks[i+1:] {
			if nb.Kind == document.SectionHeader {
				break
			}
			out = append(out, nb)
		}
		return out
	}
	t.Fatalf("section %q not rendered", title)
	return nil
}

func labeled(indent int, label, text string) document.Block {
	return document.Block{Kind: document.LabeledLine, Indent: indent, Label: label, Text: text}
}

func sub(indent int, text string) document.Block {
	return document.Block{Kind: document.SubBlockHeader, Indent: indent, Emphasis: true, Text: text}
}

func bullet(indent int, text string) document.Block {
	return document.Block{Kind: document.BulletLine, Indent: indent, Text: text}
}

func sampleRecord() model.Record {
	return model.Record{
		Name:          "Maria Souza",
		Age:           34,
		MaritalStatus: "Casada",
		Phone:         "21999998888",
		Email:         "maria@exemplo.com",
		HighSchool:    model.HighSchool{Completed: true, Year: "2007"},
		Degrees: []model.Degree{
			{Institution: "Ufrj", Course: "Economia", Status: model.StatusCompleted, Year: "2012"},
		},
		PostDegrees: []model.Degree{
			{Institution: "Fgv", Course: "Mba Em Finanças", Status: model.StatusInProgress},
		},
		Employment: model.EmploymentEmployed,
		Employments: []model.Employment{
			{
				Company:    "Banco Azul",
				Title:      "Analista",
				Start:      "03/2013",
				End:        "",
				Activities: []string{"Análise de crédito", "Relatórios"},
			},
			{
				Company: "Corretora Sol",
				Title:   "Estagiária",
				Start:   "01/2011",
				End:     "12/2012",
				Results: []string{"Processo automatizado"},
			},
		},
		Languages: []model.LanguageCourse{
			{Institution: "Wizard", Language: "Inglês", Level: model.ProficiencyIntermediate, StartYear: "2015", EndYear: "2018"},
			{Institution: "Aliança", Language: "Francês", Level: model.ProficiencyBasic, StartYear: "2022"},
		},
		Courses: "Excel Avançado, , Power BI",
	}
}

func TestRender_SectionOrder(t *testing.T) {
	blocks, err := document.Render(sampleRecord())
	require.NoError(t, err)

	var headers []string
	for _, b := range blocks {
		if b.Kind == document.SectionHeader {
			headers = append(headers, b.Text)
		}
	}
	assert.Equal(t, []string{
		document.TitlePersonal,
		document.TitleAcademic,
		document.TitleProfessional,
		document.TitleLanguages,
		document.TitleCourses,
	}, headers)
}

func TestRender_Placeholders(t *testing.T) {
	blocks, err := document.Render(model.Record{Employment: model.EmploymentNone})
	require.NoError(t, err)

	want := []document.Block{
		labeled(0, "Nome", "Não informado"),
		labeled(0, "Idade", "Não informada"),
		labeled(0, "Estado Civil", "Não informado"),
		labeled(0, "Telefone", "Não informado"),
		labeled(0, "E-mail", "Não informado"),
	}
	if diff := cmp.Diff(want, section(t, blocks, document.TitlePersonal)); diff != "" {
		t.Fatalf("personal data mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []document.Block{labeled(0, "Ensino Médio", "Incompleto")}, section(t, blocks, document.TitleAcademic))
	assert.Empty(t, section(t, blocks, document.TitleProfessional))
	assert.Empty(t, section(t, blocks, document.TitleLanguages))
	assert.Empty(t, section(t, blocks, document.TitleCourses))
}

func TestRender_Academic(t *testing.T) {
	blocks, err := document.Render(sampleRecord())
	require.NoError(t, err)

	want := []document.Block{
		labeled(0, "Ensino Médio", "Concluído em 2007"),
		sub(0, "Graduação 1:"),
		labeled(1, "Universidade", "Ufrj"),
		labeled(1, "Curso", "Economia"),
		labeled(1, "Situação", "Concluído em 2012"),
		sub(0, "Pós-Graduação 1:"),
		labeled(1, "Universidade", "Fgv"),
		labeled(1, "Curso", "Mba Em Finanças"),
		labeled(1, "Situação", "Cursando"),
	}
	if diff := cmp.Diff(want, section(t, blocks, document.TitleAcademic)); diff != "" {
		t.Fatalf("academic mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_Professional(t *testing.T) {
	t.Run("employed", func(t *testing.T) {
		blocks, err := document.Render(sampleRecord())
		require.NoError(t, err)

		want := []document.Block{
			{Kind: document.LabeledLine, Emphasis: true, Label: "Tipo de Contrato", Text: "CLT"},
			sub(0, "Empresa 1: Banco Azul"),
			labeled(1, "Cargo", "Analista"),
			labeled(1, "Período", "03/2013 a Atual"),
			sub(1, "Principais Atividades:"),
			bullet(2, "Análise de crédito"),
			bullet(2, "Relatórios"),
			sub(0, "Empresa 2: Corretora Sol"),
			labeled(1, "Cargo", "Estagiária"),
			labeled(1, "Período", "01/2011 a 12/2012"),
			sub(1, "Principais Resultados:"),
			bullet(2, "Processo automatizado"),
		}
		if diff := cmp.Diff(want, section(t, blocks, document.TitleProfessional)); diff != "" {
			t.Fatalf("professional mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("employed bullets are newline split", func(t *testing.T) {
		rec := model.Record{
			Employment:  model.EmploymentEmployed,
			Employments: []model.Employment{{Company: "X", Title: "Y", Start: "01/2020", Activities: []string{"a\n\nb"}}},
		}
		blocks, err := document.Render(rec)
		require.NoError(t, err)
		got := section(t, blocks, document.TitleProfessional)
		assert.Equal(t, []document.Block{bullet(2, "a"), bullet(2, "b")}, got[len(got)-2:])
	})

	t.Run("employed without jobs", func(t *testing.T) {
		blocks, err := document.Render(model.Record{Employment: model.EmploymentEmployed})
		require.NoError(t, err)
		assert.Empty(t, section(t, blocks, document.TitleProfessional))
	})

	t.Run("self employed", func(t *testing.T) {
		rec := model.Record{Employment: model.EmploymentSelfEmployed, Services: "Web Dev, Design,"}
		blocks, err := document.Render(rec)
		require.NoError(t, err)

		want := []document.Block{
			{Kind: document.LabeledLine, Emphasis: true, Label: "Tipo de Contrato", Text: "Microempreendedor Individual (MEI)"},
			sub(0, "Principais Trabalhos/Serviços:"),
			bullet(1, "Web Dev"),
			bullet(1, "Design"),
		}
		if diff := cmp.Diff(want, section(t, blocks, document.TitleProfessional)); diff != "" {
			t.Fatalf("self employed mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("unset kind is a precondition failure", func(t *testing.T) {
		_, err := document.Render(model.Record{})
		require.Error(t, err)
		assert.True(t, errors.Is(err, model.ErrRenderingPrecondition))
		var pe *document.PreconditionError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, "employment", pe.Field)
	})
}

func TestRender_DegreeYearMatchesStatus(t *testing.T) {
	cases := []struct {
		name  string
		rec   model.Record
		field string
	}{
		{
			name:  "completed without year",
			rec:   model.Record{Employment: model.EmploymentNone, Degrees: []model.Degree{{Institution: "Usp", Course: "Direito"}}},
			field: "degrees[0].year",
		},
		{
			name: "in progress with year",
			rec: model.Record{Employment: model.EmploymentNone, PostDegrees: []model.Degree{
				{Institution: "Fgv", Course: "Mba", Status: model.StatusInProgress, Year: "2020"},
			}},
			field: "post_degrees[0].year",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := document.Render(tc.rec)
			require.ErrorIs(t, err, model.ErrRenderingPrecondition)
			var pe *document.PreconditionError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tc.field, pe.Field)
		})
	}
}

func TestRender_LanguagesAndCourses(t *testing.T) {
	blocks, err := document.Render(sampleRecord())
	require.NoError(t, err)

	want := []document.Block{
		sub(0, "Idioma 1:"),
		labeled(1, "Instituição", "Wizard"),
		labeled(1, "Idioma", "Inglês"),
		labeled(1, "Nível", "Intermediário"),
		labeled(1, "Início", "2015 | Conclusão: 2018"),
		sub(0, "Idioma 2:"),
		labeled(1, "Instituição", "Aliança"),
		labeled(1, "Idioma", "Francês"),
		labeled(1, "Nível", "Básico"),
		labeled(1, "Início", "2022 | Situação: Cursando"),
	}
	if diff := cmp.Diff(want, section(t, blocks, document.TitleLanguages)); diff != "" {
		t.Fatalf("languages mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []document.Block{bullet(1, "Excel Avançado"), bullet(1, "Power BI")}, section(t, blocks, document.TitleCourses))
}

func TestRender_DeterministicAndReadOnly(t *testing.T) {
	rec := sampleRecord()
	snapshot := rec.Clone()

	first, err := document.Render(rec)
	require.NoError(t, err)
	second, err := document.Render(rec)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, snapshot, rec)
}

func TestRender_ConversationScenario(t *testing.T) {
	e := wizard.New()
	st, rec, _ := e.Start()
	script := []string{
		"S", "joão da silva", "30", "solteiro", "11987654321", "seu.email@dominio.com",
		"S", "2010", "0", "0", "2", "Web Dev, Design", "N", "Excel, Java",
	}
	var out wizard.Outcome
	for _, a := range script {
		var err error
		out, err = e.Handle(st, rec, a)
		require.NoError(t, err)
		require.NotEqual(t, wizard.StatusRejected, out.Status, "answer %q", a)
		st, rec = out.State, out.Record
	}
	require.Equal(t, wizard.StatusCompleted, out.Status)

	blocks, err := document.Render(rec)
	require.NoError(t, err)

	var services []string
	for _, b := range section(t, blocks, document.TitleProfessional) {
		if b.Kind == document.BulletLine {
			services = append(services, b.Text)
		}
	}
	assert.Equal(t, []string{"Web Dev", "Design"}, services)
	assert.Empty(t, section(t, blocks, document.TitleLanguages))
	assert.Equal(t, []document.Block{bullet(1, "Excel"), bullet(1, "Java")}, section(t, blocks, document.TitleCourses))
}
