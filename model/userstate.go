package model

import "fmt"

// Step is one named position of the résumé conversation.
type Step int

const (
	StepConfirmStart Step = iota
	StepName
	StepAge
	StepMaritalStatus
	StepPhone
	StepEmail
	StepHighSchool
	StepHighSchoolYear

	// Academic collections share their item steps; Track tells degree from post-degree.
	StepDegreeCount
	StepPostDegreeCount
	StepAcademicInstitution
	StepAcademicCourse
	StepAcademicStatus
	StepAcademicYear
	StepAcademicMore

	StepContractType
	StepServices
	StepCompany
	StepJobTitle
	StepJobStart
	StepJobEnd
	StepActivities
	StepResults
	StepEmploymentMore

	StepLanguagesGate
	StepLanguageInstitution
	StepLanguageName
	StepLanguageLevel
	StepLanguageStart
	StepLanguageEnd
	StepLanguageMore

	StepCourses
	StepDone
)

var stepNames = [...]string{
	StepConfirmStart:        "confirm_start",
	StepName:                "name",
	StepAge:                 "age",
	StepMaritalStatus:       "marital_status",
	StepPhone:               "phone",
	StepEmail:               "email",
	StepHighSchool:          "high_school",
	StepHighSchoolYear:      "high_school_year",
	StepDegreeCount:         "degree_count",
	StepPostDegreeCount:     "post_degree_count",
	StepAcademicInstitution: "academic_institution",
	StepAcademicCourse:      "academic_course",
	StepAcademicStatus:      "academic_status",
	StepAcademicYear:        "academic_year",
	StepAcademicMore:        "academic_more",
	StepContractType:        "contract_type",
	StepServices:            "services",
	StepCompany:             "company",
	StepJobTitle:            "job_title",
	StepJobStart:            "job_start",
	StepJobEnd:              "job_end",
	StepActivities:          "activities",
	StepResults:             "results",
	StepEmploymentMore:      "employment_more",
	StepLanguagesGate:       "languages_gate",
	StepLanguageInstitution: "language_institution",
	StepLanguageName:        "language_name",
	StepLanguageLevel:       "language_level",
	StepLanguageStart:       "language_start",
	StepLanguageEnd:         "language_end",
	StepLanguageMore:        "language_more",
	StepCourses:             "courses",
	StepDone:                "done",
}

func (s Step) String() string {
	if s >= 0 && int(s) < len(stepNames) {
		return stepNames[s]
	}
	return fmt.Sprintf("Step(%d)", int(s))
}

// Track identifies the repeating collection currently being filled.
type Track int

const (
	TrackNone Track = iota
	TrackDegree
	TrackPostDegree
	TrackEmployment
	TrackLanguage
)

func (t Track) String() string {
	switch t {
	case TrackNone:
		return "none"
	case TrackDegree:
		return "degree"
	case TrackPostDegree:
		return "post_degree"
	case TrackEmployment:
		return "employment"
	case TrackLanguage:
		return "language"
	}
	return fmt.Sprintf("Track(%d)", int(t))
}

// ConversationState is the position of one conversation in the step graph.
// Index points at the item of the active Track that is being filled.
// Declared is the item count the user announced; it only decorates prompts.
type ConversationState struct {
	Step     Step
	Track    Track
	Index    int
	Declared int
}
