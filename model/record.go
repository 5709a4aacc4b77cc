package model

import (
	"fmt"
	"strings"
)

// Status is the completion state of a degree or post-degree.
type Status int

const (
	StatusCompleted Status = iota
	StatusInProgress
)

func (s Status) String() string {
	switch s {
	case StatusCompleted:
		return "completed"
	case StatusInProgress:
		return "in_progress"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

func (s Status) MarshalText() ([]byte, error) {
	if s != StatusCompleted && s != StatusInProgress {
		return nil, fmt.Errorf("unknown status %d", int(s))
	}
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "completed":
		*s = StatusCompleted
	case "in_progress":
		*s = StatusInProgress
	default:
		return fmt.Errorf("unknown status %q", text)
	}
	return nil
}

// Proficiency is the self-declared level of a language course.
type Proficiency int

const (
	ProficiencyBasic Proficiency = iota
	ProficiencyIntermediate
	ProficiencyAdvanced
)

func (p Proficiency) String() string {
	switch p {
	case ProficiencyBasic:
		return "basic"
	case ProficiencyIntermediate:
		return "intermediate"
	case ProficiencyAdvanced:
		return "advanced"
	}
	return fmt.Sprintf("Proficiency(%d)", int(p))
}

func (p Proficiency) MarshalText() ([]byte, error) {
	if p < ProficiencyBasic || p > ProficiencyAdvanced {
		return nil, fmt.Errorf("unknown proficiency %d", int(p))
	}
	return []byte(p.String()), nil
}

func (p *Proficiency) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "basic":
		*p = ProficiencyBasic
	case "intermediate":
		*p = ProficiencyIntermediate
	case "advanced":
		*p = ProficiencyAdvanced
	default:
		return fmt.Errorf("unknown proficiency %q", text)
	}
	return nil
}

// EmploymentKind selects which professional experience layout applies.
// The zero value means the conversation never answered the contract question.
type EmploymentKind int

const (
	EmploymentUnset EmploymentKind = iota
	EmploymentNone
	EmploymentEmployed
	EmploymentSelfEmployed
)

func (k EmploymentKind) String() string {
	switch k {
	case EmploymentUnset:
		return "unset"
	case EmploymentNone:
		return "none"
	case EmploymentEmployed:
		return "employed"
	case EmploymentSelfEmployed:
		return "self_employed"
	}
	return fmt.Sprintf("EmploymentKind(%d)", int(k))
}

func (k EmploymentKind) MarshalText() ([]byte, error) {
	if k < EmploymentUnset || k > EmploymentSelfEmployed {
		return nil, fmt.Errorf("unknown employment kind %d", int(k))
	}
	return []byte(k.String()), nil
}

func (k *EmploymentKind) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "", "unset":
		*k = EmploymentUnset
	case "none":
		*k = EmploymentNone
	case "employed":
		*k = EmploymentEmployed
	case "self_employed":
		*k = EmploymentSelfEmployed
	default:
		return fmt.Errorf("unknown employment kind %q", text)
	}
	return nil
}

// Record is everything collected during one conversation.
type Record struct {
	Name          string `json:"name" yaml:"name"`
	Age           int    `json:"age" yaml:"age"`
	MaritalStatus string `json:"maritalStatus" yaml:"maritalStatus"`
	Phone         string `json:"phone" yaml:"phone"`
	Email         string `json:"email" yaml:"email"`

	HighSchool  HighSchool `json:"highSchool" yaml:"highSchool"`
	Degrees     []Degree   `json:"degrees" yaml:"degrees"`
	PostDegrees []Degree   `json:"postDegrees" yaml:"postDegrees"`

	Employment  EmploymentKind `json:"employment" yaml:"employment"`
	Employments []Employment   `json:"employments" yaml:"employments"`
	Services    string         `json:"services" yaml:"services"` // comma separated, self-employed only

	Languages []LanguageCourse `json:"languages" yaml:"languages"`
	Courses   string           `json:"courses" yaml:"courses"` // comma separated
}

type HighSchool struct {
	Completed bool   `json:"completed" yaml:"completed"`
	Year      string `json:"year" yaml:"year"`
}

// Degree is used for both graduation and post-graduation entries.
// Year is empty iff Status is StatusInProgress.
type Degree struct {
	Institution string `json:"institution" yaml:"institution"`
	Course      string `json:"course" yaml:"course"`
	Status      Status `json:"status" yaml:"status"`
	Year        string `json:"year,omitempty" yaml:"year,omitempty"`
}

type Employment struct {
	Company    string   `json:"company" yaml:"company"`
	Title      string   `json:"title" yaml:"title"`
	Start      string   `json:"start" yaml:"start"` // MM/YYYY
	End        string   `json:"end" yaml:"end"`     // MM/YYYY, empty while current
	Activities []string `json:"activities" yaml:"activities"`
	Results    []string `json:"results" yaml:"results"`
}

// Current reports whether the job is still ongoing.
func (e Employment) Current() bool {
	return e.End == ""
}

type LanguageCourse struct {
	Institution string      `json:"institution" yaml:"institution"`
	Language    string      `json:"language" yaml:"language"`
	Level       Proficiency `json:"level" yaml:"level"`
	StartYear   string      `json:"startYear" yaml:"startYear"`
	EndYear     string      `json:"endYear" yaml:"endYear"` // empty while in progress
}

func (l LanguageCourse) InProgress() bool {
	return l.EndYear == ""
}

// Clone returns a deep copy so a step can mutate the copy and leave the input untouched.
func (r Record) Clone() Record {
	c := r
	c.Degrees = append([]Degree(nil), r.Degrees...)
	c.PostDegrees = append([]Degree(nil), r.PostDegrees...)
	c.Languages = append([]LanguageCourse(nil), r.Languages...)
	if r.Employments != nil {
		c.Employments = make([]Employment, len(r.Employments))
		for i, e := range r.Employments {
			e.Activities = append([]string(nil), e.Activities...)
			e.Results = append([]string(nil), e.Results...)
			c.Employments[i] = e
		}
	}
	return c
}
