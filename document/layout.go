// Package document turns a completed résumé record into layout blocks and
// writes those blocks out as a PDF.
package document

import (
	"fmt"
	"strconv"
	"strings"

	"ResumeBot/model"
)

// Kind is the layout instruction understood by a block writer.
type Kind int

const (
	SectionHeader Kind = iota
	LabeledLine
	SubBlockHeader
	BulletLine
)

func (k Kind) String() string {
	switch k {
	case SectionHeader:
		return "section"
	case LabeledLine:
		return "labeled"
	case SubBlockHeader:
		return "sub_block"
	case BulletLine:
		return "bullet"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Block is one renderable line. Label is only used by LabeledLine.
type Block struct {
	Kind     Kind
	Indent   int
	Emphasis bool
	Label    string
	Text     string
}

// Section titles, in rendering order.
const (
	TitlePersonal     = "Dados Pessoais"
	TitleAcademic     = "Formação Acadêmica"
	TitleProfessional = "Experiência Profissional"
	TitleLanguages    = "Idiomas"
	TitleCourses      = "Cursos Adicionais"
)

const (
	notProvided  = "Não informado"
	notProvidedF = "Não informada"
)

var proficiencyLabels = map[model.Proficiency]string{
	model.ProficiencyBasic:        "Básico",
	model.ProficiencyIntermediate: "Intermediário",
	model.ProficiencyAdvanced:     "Avançado",
}

// PreconditionError reports a record shape that the conversation can never produce.
type PreconditionError struct {
	Field  string
	Reason string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%v: %s %s", model.ErrRenderingPrecondition, e.Field, e.Reason)
}

func (e *PreconditionError) Unwrap() error {
	return model.ErrRenderingPrecondition
}

// Render lays out rec section by section. It never modifies rec and returns the
// same blocks for the same record. Absent values fall back to placeholders;
// the only error is a PreconditionError for a record the conversation cannot
// produce: an unset employment kind or a degree year that contradicts its status.
func Render(rec model.Record) ([]Block, error) {
	var l layout

	l.section(TitlePersonal)
	l.labeled(0, "Nome", orDefault(rec.Name, notProvided))
	age := notProvidedF
	if rec.Age > 0 {
		age = strconv.Itoa(rec.Age)
	}
	l.labeled(0, "Idade", age)
	l.labeled(0, "Estado Civil", orDefault(rec.MaritalStatus, notProvided))
	l.labeled(0, "Telefone", orDefault(rec.Phone, notProvided))
	l.labeled(0, "E-mail", orDefault(rec.Email, notProvided))

	if err := checkDegrees("degrees", rec.Degrees); err != nil {
		return nil, err
	}
	if err := checkDegrees("post_degrees", rec.PostDegrees); err != nil {
		return nil, err
	}

	l.section(TitleAcademic)
	if rec.HighSchool.Completed {
		l.labeled(0, "Ensino Médio", "Concluído em "+orDefault(rec.HighSchool.Year, notProvided))
	} else {
		l.labeled(0, "Ensino Médio", "Incompleto")
	}
	l.degrees("Graduação", rec.Degrees)
	l.degrees("Pós-Graduação", rec.PostDegrees)

	l.section(TitleProfessional)
	switch rec.Employment {
	case model.EmploymentSelfEmployed:
		l.selfEmployed(rec.Services)
	case model.EmploymentEmployed:
		l.employed(rec.Employments)
	case model.EmploymentNone:
	default:
		return nil, &PreconditionError{Field: "employment", Reason: fmt.Sprintf("has unexpected kind %s", rec.Employment)}
	}

	l.section(TitleLanguages)
	for i, lang := range rec.Languages {
		l.sub(0, fmt.Sprintf("Idioma %d:", i+1))
		l.labeled(1, "Instituição", lang.Institution)
		l.labeled(1, "Idioma", lang.Language)
		level, ok := proficiencyLabels[lang.Level]
		if !ok {
			level = lang.Level.String()
		}
		l.labeled(1, "Nível", level)
		if lang.InProgress() {
			l.labeled(1, "Início", lang.StartYear+" | Situação: Cursando")
		} else {
			l.labeled(1, "Início", lang.StartYear+" | Conclusão: "+lang.EndYear)
		}
	}

	l.section(TitleCourses)
	for _, c := range splitList(rec.Courses, ",") {
		l.bullet(1, c)
	}

	return l.blocks, nil
}

type layout struct {
	blocks []Block
}

func (l *layout) add(b Block) {
	l.blocks = append(l.blocks, b)
}

func (l *layout) section(title string) {
	l.add(Block{Kind: SectionHeader, Emphasis: true, Text: title})
}

func (l *layout) sub(indent int, title string) {
	l.add(Block{Kind: SubBlockHeader, Indent: indent, Emphasis: true, Text: title})
}

func (l *layout) labeled(indent int, label, text string) {
	l.add(Block{Kind: LabeledLine, Indent: indent, Label: label, Text: text})
}

func (l *layout) bullet(indent int, text string) {
	l.add(Block{Kind: BulletLine, Indent: indent, Text: text})
}

func (l *layout) degrees(noun string, degrees []model.Degree) {
	for i, d := range degrees {
		l.sub(0, fmt.Sprintf("%s %d:", noun, i+1))
		l.labeled(1, "Universidade", d.Institution)
		l.labeled(1, "Curso", d.Course)
		if d.Status == model.StatusCompleted {
			l.labeled(1, "Situação", "Concluído em "+d.Year)
		} else {
			l.labeled(1, "Situação", "Cursando")
		}
	}
}

// checkDegrees enforces that a completion year is present exactly when the
// degree is completed.
func checkDegrees(field string, degrees []model.Degree) error {
	for i, d := range degrees {
		switch {
		case d.Status == model.StatusCompleted && strings.TrimSpace(d.Year) == "":
			return &PreconditionError{Field: fmt.Sprintf("%s[%d].year", field, i), Reason: "is missing for a completed degree"}
		case d.Status == model.StatusInProgress && d.Year != "":
			return &PreconditionError{Field: fmt.Sprintf("%s[%d].year", field, i), Reason: "is set for a degree in progress"}
		case d.Status != model.StatusCompleted && d.Status != model.StatusInProgress:
			return &PreconditionError{Field: fmt.Sprintf("%s[%d].status", field, i), Reason: fmt.Sprintf("has unexpected value %s", d.Status)}
		}
	}
	return nil
}

func (l *layout) selfEmployed(services string) {
	l.add(Block{Kind: LabeledLine, Emphasis: true, Label: "Tipo de Contrato", Text: "Microempreendedor Individual (MEI)"})
	items := splitList(services, ",")
	if len(items) == 0 {
		return
	}
	l.sub(0, "Principais Trabalhos/Serviços:")
	for _, s := range items {
		l.bullet(1, s)
	}
}

func (l *layout) employed(jobs []model.Employment) {
	if len(jobs) == 0 {
		return
	}
	l.add(Block{Kind: LabeledLine, Emphasis: true, Label: "Tipo de Contrato", Text: "CLT"})
	for i, job := range jobs {
		l.sub(0, fmt.Sprintf("Empresa %d: %s", i+1, job.Company))
		l.labeled(1, "Cargo", job.Title)
		end := job.End
		if job.Current() {
			end = "Atual"
		}
		l.labeled(1, "Período", job.Start+" a "+end)
		l.bullets("Principais Atividades:", job.Activities)
		l.bullets("Principais Resultados:", job.Results)
	}
}

// bullets writes a titled bullet list, skipping blank entries. Entries may
// still hold several lines when the record came from a file.
func (l *layout) bullets(title string, items []string) {
	var lines []string
	for _, item := range items {
		lines = append(lines, splitList(item, "\n")...)
	}
	if len(lines) == 0 {
		return
	}
	l.sub(1, title)
	for _, line := range lines {
		l.bullet(2, line)
	}
}

func splitList(s, sep string) []string {
	var out []string
	for _, part := range strings.Split(s, sep) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func orDefault(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
