package catalog

import (
	"fmt"

	"github.com/svasisht/prepdash/internal/models"
	"github.com/svasisht/prepdash/internal/utils"
)

// Catalog is the resolved exam timetable and label set for one
// language/elective selection. It is static reference data: built once,
// read-only afterwards.
type Catalog struct {
	Exams  []models.Exam
	labels map[string]string
	keys   []string
}

// Languages and electives the timetable supports.
const (
	LanguageKannada = "kannada"
	LanguageHindi   = "hindi"

	ElectiveComputer  = "computer"
	ElectiveEconomics = "economics"
)

// coreExams are the sittings every student takes regardless of
// selection, in timetable order.
var coreExams = []models.Exam{
	{Date: "2026-02-17", Subject: "English Language Paper 1", Key: "english_lang", Duration: "2hrs"},
	{Date: "2026-02-20", Subject: "English Literature Paper 2", Key: "english_lit", Duration: "2hrs"},
	{Date: "2026-03-02", Subject: "Mathematics", Key: "math", Duration: "3hrs"},
	{Date: "2026-03-09", Subject: "Physics", Key: "physics", Duration: "2hrs"},
	{Date: "2026-03-11", Subject: "Chemistry", Key: "chemistry", Duration: "2hrs"},
	{Date: "2026-03-13", Subject: "Biology", Key: "biology", Duration: "2hrs"},
	{Date: "2026-03-16", Subject: "History & Civics", Key: "history", Duration: "2hrs"},
	{Date: "2026-03-18", Subject: "Geography", Key: "geography", Duration: "2hrs"},
}

var languageExams = map[string]models.Exam{
	LanguageKannada: {Date: "2026-03-06", Subject: "Kannada", Key: "kannada", Duration: "3hrs"},
	LanguageHindi:   {Date: "2026-03-06", Subject: "Hindi", Key: "hindi", Duration: "3hrs"},
}

var electiveExams = map[string]models.Exam{
	ElectiveComputer:  {Date: "2026-03-23", Subject: "Computer Application", Key: "computer", Duration: "2hrs"},
	ElectiveEconomics: {Date: "2026-03-23", Subject: "Economic Applications", Key: "economics", Duration: "2hrs"},
}

// Resolve builds the catalog for the given language and elective
// selection. Unknown selectors fall back to the defaults (kannada,
// computer) rather than failing; the planner must always have a
// catalog to work against.
func Resolve(language, elective string) Catalog {
	langExam, ok := languageExams[language]
	if !ok {
		langExam = languageExams[LanguageKannada]
	}
	elecExam, ok := electiveExams[elective]
	if !ok {
		elecExam = electiveExams[ElectiveComputer]
	}

	exams := make([]models.Exam, 0, len(coreExams)+2)
	exams = append(exams, coreExams...)
	// Keep timetable order: language paper sits between math and
	// physics, elective paper is last.
	for i, e := range exams {
		if e.Key == "physics" {
			exams = append(exams[:i], append([]models.Exam{langExam}, exams[i:]...)...)
			break
		}
	}
	exams = append(exams, elecExam)

	c := Catalog{Exams: exams, labels: make(map[string]string, len(exams))}
	for _, e := range exams {
		c.labels[e.Key] = e.Subject
		c.keys = append(c.keys, e.Key)
	}
	return c
}

// Keys returns subject keys in timetable order.
func (c Catalog) Keys() []string {
	return c.keys
}

// Label returns the display name for a subject key, falling back to
// the raw key when the catalog has no entry for it.
func (c Catalog) Label(key string) string {
	if label, ok := c.labels[key]; ok {
		return label
	}
	return key
}

// ExamFor returns the exam for a subject key.
func (c Catalog) ExamFor(key string) (models.Exam, bool) {
	for _, e := range c.Exams {
		if e.Key == key {
			return e, true
		}
	}
	return models.Exam{}, false
}

// ExamOn returns the exam sitting on the given date, if any.
func (c Catalog) ExamOn(date string) (models.Exam, bool) {
	for _, e := range c.Exams {
		if e.Date == date {
			return e, true
		}
	}
	return models.Exam{}, false
}

// NextExamAfter returns the earliest exam dated strictly after date.
// Exams is kept in timetable order, so the first match is the next one.
func (c Catalog) NextExamAfter(date string) (models.Exam, bool) {
	for _, e := range c.Exams {
		if e.Date > date {
			return e, true
		}
	}
	return models.Exam{}, false
}

// Validate checks catalog integrity: unique keys and parseable dates.
// Called once at startup; a broken catalog is a programming error, not
// a user error.
func (c Catalog) Validate() error {
	seen := make(map[string]bool, len(c.Exams))
	for _, e := range c.Exams {
		if seen[e.Key] {
			return fmt.Errorf("duplicate subject key in catalog: %s", e.Key)
		}
		seen[e.Key] = true
		if _, err := utils.ParseDate(e.Date); err != nil {
			return fmt.Errorf("exam %s has invalid date: %w", e.Key, err)
		}
	}
	return nil
}
