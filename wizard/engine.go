// Package wizard implements the résumé conversation: one question per step,
// a validator per step, and a deterministic transition table.
package wizard

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"ResumeBot/model"
)

// Status tells the caller what a handled message did to the conversation.
type Status int

const (
	StatusRejected Status = iota
	StatusAdvanced
	StatusCompleted
	StatusDeclined
)

func (s Status) String() string {
	switch s {
	case StatusRejected:
		return "rejected"
	case StatusAdvanced:
		return "advanced"
	case StatusCompleted:
		return "completed"
	case StatusDeclined:
		return "declined"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Outcome is the result of one handled message. Prompt is the text to send back.
// On StatusRejected, State and Record are the inputs unchanged and Rejection is set.
type Outcome struct {
	State     model.ConversationState
	Record    model.Record
	Prompt    string
	Status    Status
	Rejection *model.ValidationError
}

type promptFunc func(st model.ConversationState, rec *model.Record) string

type applyFunc func(value string, st model.ConversationState, rec *model.Record) (model.ConversationState, error)

// stepDef is one row of the transition table. A nil apply marks a terminal step.
type stepDef struct {
	prompt   promptFunc
	invalid  string
	validate Validator
	apply    applyFunc
}

var errDeclined = errors.New("conversation declined")

// Engine holds the transition table. It has no mutable state and may be shared
// by all conversations.
type Engine struct {
	steps  map[model.Step]stepDef
	tracks map[model.Track]map[model.Step]stepDef
}

func New() *Engine {
	degrees := &collection[model.Degree]{
		track:  model.TrackDegree,
		items:  func(r *model.Record) *[]model.Degree { return &r.Degrees },
		fields: academicFields(),
		more:   model.StepAcademicMore,
		moreQ:  constant(fmt.Sprintf(msgMore, "outra Graduação")),
		after:  model.StepPostDegreeCount,
	}
	postDegrees := &collection[model.Degree]{
		track:  model.TrackPostDegree,
		items:  func(r *model.Record) *[]model.Degree { return &r.PostDegrees },
		fields: academicFields(),
		more:   model.StepAcademicMore,
		moreQ:  constant(fmt.Sprintf(msgMore, "outra Pós-Graduação")),
		after:  model.StepContractType,
	}
	employments := &collection[model.Employment]{
		track:  model.TrackEmployment,
		items:  func(r *model.Record) *[]model.Employment { return &r.Employments },
		fields: employmentFields(),
		more:   model.StepEmploymentMore,
		moreQ:  constant(fmt.Sprintf(msgMore, "outra Experiência Profissional")),
		after:  model.StepLanguagesGate,
		onAbandon: func(r *model.Record) {
			if len(r.Employments) == 0 {
				r.Employment = model.EmploymentNone
			}
		},
	}
	languages := &collection[model.LanguageCourse]{
		track:  model.TrackLanguage,
		items:  func(r *model.Record) *[]model.LanguageCourse { return &r.Languages },
		fields: languageFields(),
		more:   model.StepLanguageMore,
		moreQ:  constant(fmt.Sprintf(msgMore, "outro idioma")),
		after:  model.StepCourses,
	}

	to := func(step model.Step) model.ConversationState {
		return model.ConversationState{Step: step}
	}

	steps := map[model.Step]stepDef{
		model.StepConfirmStart: {
			prompt: constant(msgWelcome), invalid: errConfirmStart, validate: yesNo,
			apply: func(v string, st model.ConversationState, _ *model.Record) (model.ConversationState, error) {
				if !isYes(v) {
					return st, errDeclined
				}
				return to(model.StepName), nil
			},
		},
		model.StepName: {
			prompt: constant(msgName), invalid: errName, validate: MinWords(2),
			apply: func(v string, _ model.ConversationState, r *model.Record) (model.ConversationState, error) {
				r.Name = titleCase(v)
				return to(model.StepAge), nil
			},
		},
		model.StepAge: {
			prompt: constant(msgAge), invalid: errAge, validate: IntRange(14, 99),
			apply: func(v string, _ model.ConversationState, r *model.Record) (model.ConversationState, error) {
				r.Age, _ = strconv.Atoi(v)
				return to(model.StepMaritalStatus), nil
			},
		},
		model.StepMaritalStatus: {
			prompt: constant(msgMaritalStatus), invalid: errMaritalStatus, validate: NonEmpty,
			apply: func(v string, _ model.ConversationState, r *model.Record) (model.ConversationState, error) {
				r.MaritalStatus = titleCase(v)
				return to(model.StepPhone), nil
			},
		},
		model.StepPhone: {
			prompt: constant(msgPhone), invalid: errPhone, validate: Phone,
			apply: func(v string, _ model.ConversationState, r *model.Record) (model.ConversationState, error) {
				r.Phone = v
				return to(model.StepEmail), nil
			},
		},
		model.StepEmail: {
			prompt: constant(msgEmail), invalid: errEmail, validate: Email,
			apply: func(v string, _ model.ConversationState, r *model.Record) (model.ConversationState, error) {
				r.Email = strings.ToLower(v)
				return to(model.StepHighSchool), nil
			},
		},
		model.StepHighSchool: {
			prompt: constant(msgHighSchool), invalid: errYesNo, validate: yesNo,
			apply: func(v string, _ model.ConversationState, r *model.Record) (model.ConversationState, error) {
				if isYes(v) {
					r.HighSchool.Completed = true
					return to(model.StepHighSchoolYear), nil
				}
				r.HighSchool = model.HighSchool{}
				return to(model.StepContractType), nil
			},
		},
		model.StepHighSchoolYear: {
			prompt: constant(msgHighSchoolYr), invalid: errYear, validate: Year,
			apply: func(v string, _ model.ConversationState, r *model.Record) (model.ConversationState, error) {
				r.HighSchool.Year = v
				return to(model.StepDegreeCount), nil
			},
		},
		model.StepDegreeCount: {
			prompt: constant(msgDegreeCount), invalid: errCount, validate: IntRange(0, 99),
			apply: countInto(degrees),
		},
		model.StepPostDegreeCount: {
			prompt: constant(msgPostCount), invalid: errCount, validate: IntRange(0, 99),
			apply: countInto(postDegrees),
		},
		model.StepContractType: {
			prompt: constant(msgContractType), invalid: errContractType, validate: OneOf("1", "2"),
			apply: func(v string, _ model.ConversationState, r *model.Record) (model.ConversationState, error) {
				if v == "1" {
					r.Employment = model.EmploymentEmployed
					return employments.begin(len(r.Employments), 0), nil
				}
				r.Employment = model.EmploymentSelfEmployed
				return to(model.StepServices), nil
			},
		},
		model.StepServices: {
			prompt: constant(msgServices), invalid: errServices, validate: NonEmpty,
			apply: func(v string, _ model.ConversationState, r *model.Record) (model.ConversationState, error) {
				r.Services = v
				return to(model.StepLanguagesGate), nil
			},
		},
		model.StepLanguagesGate: {
			prompt: constant(msgLanguagesGate), invalid: errYesNo, validate: yesNo,
			apply: func(v string, _ model.ConversationState, r *model.Record) (model.ConversationState, error) {
				if isYes(v) {
					return languages.begin(len(r.Languages), 0), nil
				}
				return languages.leave(), nil
			},
		},
		model.StepCourses: {
			prompt: constant(msgCourses), invalid: errCourses, validate: NonEmpty,
			apply: func(v string, _ model.ConversationState, r *model.Record) (model.ConversationState, error) {
				r.Courses = optional(v)
				return to(model.StepDone), nil
			},
		},
		model.StepDone: {
			prompt: constant(msgDone),
		},
	}

	return &Engine{
		steps: steps,
		tracks: map[model.Track]map[model.Step]stepDef{
			model.TrackDegree:     degrees.steps(),
			model.TrackPostDegree: postDegrees.steps(),
			model.TrackEmployment: employments.steps(),
			model.TrackLanguage:   languages.steps(),
		},
	}
}

// countInto handles a "how many" answer: zero skips the collection.
func countInto[T any](c *collection[T]) applyFunc {
	return func(v string, _ model.ConversationState, r *model.Record) (model.ConversationState, error) {
		n, _ := strconv.Atoi(v)
		if n == 0 {
			return c.leave(), nil
		}
		return c.begin(len(*c.items(r)), n), nil
	}
}

func academicFields() []field[model.Degree] {
	return []field[model.Degree]{
		{
			step: model.StepAcademicInstitution, prompt: academic(msgAcademicInst),
			invalid: errInstitution, validate: NonEmpty,
			set: func(d *model.Degree, v string) fieldAction {
				d.Institution = titleCase(v)
				return nextField
			},
		},
		{
			step: model.StepAcademicCourse,
			prompt: func(st model.ConversationState, _ *model.Record) string {
				example := "Engenharia Civil"
				if st.Track == model.TrackPostDegree {
					example = "MBA em Gestão"
				}
				return fmt.Sprintf(msgAcademicCourse, itemLabel(st), example)
			},
			invalid: errCourse, validate: NonEmpty,
			set: func(d *model.Degree, v string) fieldAction {
				d.Course = titleCase(v)
				return nextField
			},
		},
		{
			step: model.StepAcademicStatus, prompt: academic(msgAcademicStatus),
			invalid: errStatus, validate: OneOf("C", "I"),
			set: func(d *model.Degree, v string) fieldAction {
				if strings.EqualFold(v, "C") {
					d.Status = model.StatusCompleted
					return nextField
				}
				d.Status = model.StatusInProgress
				d.Year = ""
				return itemDone
			},
		},
		{
			step: model.StepAcademicYear, prompt: academic(msgAcademicYear),
			invalid: errYear, validate: Year,
			set: func(d *model.Degree, v string) fieldAction {
				d.Year = v
				return nextField
			},
		},
	}
}

func employmentFields() []field[model.Employment] {
	return []field[model.Employment]{
		{
			step: model.StepCompany,
			prompt: func(st model.ConversationState, _ *model.Record) string {
				if st.Index == 0 {
					return msgFirstCompany
				}
				return fmt.Sprintf(msgNextCompany, st.Index+1)
			},
			invalid: errCompany, validate: NonEmpty, abandon: true,
			set: func(e *model.Employment, v string) fieldAction {
				e.Company = titleCase(v)
				return nextField
			},
		},
		{
			step: model.StepJobTitle,
			prompt: func(st model.ConversationState, r *model.Record) string {
				company := "empresa"
				if st.Index >= 0 && st.Index < len(r.Employments) {
					company = escapeMarkdown(r.Employments[st.Index].Company)
				}
				return fmt.Sprintf(msgJobTitle, company)
			},
			invalid: errJobTitle, validate: NonEmpty,
			set: func(e *model.Employment, v string) fieldAction {
				e.Title = titleCase(v)
				return nextField
			},
		},
		{
			step: model.StepJobStart, prompt: constant(msgJobStart),
			invalid: errJobStart, validate: ExactMonthYear,
			set: func(e *model.Employment, v string) fieldAction {
				e.Start = v
				return nextField
			},
		},
		{
			step: model.StepJobEnd, prompt: constant(msgJobEnd),
			invalid: errJobEnd, validate: MonthYear,
			set: func(e *model.Employment, v string) fieldAction {
				if strings.EqualFold(v, CurrentToken) {
					v = ""
				}
				e.End = v
				return nextField
			},
		},
		{
			step: model.StepActivities, prompt: constant(msgActivities),
			invalid: errNarrative, validate: NonEmpty,
			set: func(e *model.Employment, v string) fieldAction {
				e.Activities = splitBullets(v)
				return nextField
			},
		},
		{
			step: model.StepResults, prompt: constant(msgResults),
			invalid: errNarrative, validate: NonEmpty,
			set: func(e *model.Employment, v string) fieldAction {
				e.Results = splitBullets(v)
				return nextField
			},
		},
	}
}

var proficiencyCodes = map[string]model.Proficiency{
	"B": model.ProficiencyBasic,
	"I": model.ProficiencyIntermediate,
	"A": model.ProficiencyAdvanced,
}

func languageFields() []field[model.LanguageCourse] {
	return []field[model.LanguageCourse]{
		{
			step: model.StepLanguageInstitution, prompt: numbered(msgLangInst),
			invalid: errLangInst, validate: NonEmpty,
			set: func(l *model.LanguageCourse, v string) fieldAction {
				l.Institution = titleCase(v)
				return nextField
			},
		},
		{
			step: model.StepLanguageName, prompt: numbered(msgLangName),
			invalid: errLangName, validate: NonEmpty,
			set: func(l *model.LanguageCourse, v string) fieldAction {
				l.Language = titleCase(v)
				return nextField
			},
		},
		{
			step: model.StepLanguageLevel, prompt: numbered(msgLangLevel),
			invalid: errLangLevel, validate: OneOf("B", "I", "A"),
			set: func(l *model.LanguageCourse, v string) fieldAction {
				l.Level = proficiencyCodes[strings.ToUpper(v)]
				return nextField
			},
		},
		{
			step: model.StepLanguageStart, prompt: numbered(msgLangStart),
			invalid: errYear, validate: Year,
			set: func(l *model.LanguageCourse, v string) fieldAction {
				l.StartYear = v
				return nextField
			},
		},
		{
			step: model.StepLanguageEnd, prompt: numbered(msgLangEnd),
			invalid: errLangEnd, validate: YearOrInProgress,
			set: func(l *model.LanguageCourse, v string) fieldAction {
				if strings.EqualFold(v, InProgressToken) {
					v = ""
				}
				l.EndYear = v
				return nextField
			},
		},
	}
}

// Start opens a new conversation and returns its first prompt.
func (e *Engine) Start() (model.ConversationState, model.Record, string) {
	st := model.ConversationState{Step: model.StepConfirmStart}
	var rec model.Record
	return st, rec, e.steps[st.Step].prompt(st, &rec)
}

// Prompt returns the question asked at st.
func (e *Engine) Prompt(st model.ConversationState, rec model.Record) (string, error) {
	def, err := e.lookup(st)
	if err != nil {
		return "", err
	}
	return def.prompt(st, &rec), nil
}

// Handle applies one user message to the conversation. The inputs are never
// modified; the returned Outcome carries the next state and record. An error is
// returned only for an IllegalTransitionError, which means the caller handed in
// a state the engine could never have produced.
func (e *Engine) Handle(st model.ConversationState, rec model.Record, input string) (Outcome, error) {
	def, err := e.lookup(st)
	if err != nil {
		return Outcome{State: st, Record: rec}, err
	}
	if def.apply == nil {
		return Outcome{State: st, Record: rec}, &model.IllegalTransitionError{
			Step: st.Step, Index: st.Index, Reason: "terminal step accepts no input",
		}
	}

	value := strings.TrimSpace(input)
	if !def.validate(value) {
		rejection := &model.ValidationError{Step: st.Step, Message: def.invalid}
		return Outcome{State: st, Record: rec, Prompt: rejection.Message, Status: StatusRejected, Rejection: rejection}, nil
	}

	next := rec.Clone()
	nst, err := def.apply(value, st, &next)
	if errors.Is(err, errDeclined) {
		return Outcome{State: st, Record: rec, Prompt: DeclineMessage, Status: StatusDeclined}, nil
	}
	if err != nil {
		return Outcome{State: st, Record: rec}, err
	}

	prompt, err := e.Prompt(nst, next)
	if err != nil {
		return Outcome{State: st, Record: rec}, err
	}
	status := StatusAdvanced
	if nst.Step == model.StepDone {
		status = StatusCompleted
	}
	return Outcome{State: nst, Record: next, Prompt: prompt, Status: status}, nil
}

func (e *Engine) lookup(st model.ConversationState) (stepDef, error) {
	var (
		def stepDef
		ok  bool
	)
	if st.Track == model.TrackNone {
		def, ok = e.steps[st.Step]
	} else {
		def, ok = e.tracks[st.Track][st.Step]
	}
	if !ok {
		return stepDef{}, &model.IllegalTransitionError{
			Step: st.Step, Index: st.Index, Reason: fmt.Sprintf("no transition defined on track %s", st.Track),
		}
	}
	return def, nil
}
