// Package models defines data structures for questionnaire aggregation.
package models

// NumQuestions is the number of question rows in the fixed questionnaire layout.
const NumQuestions = 17

// Answer represents one question slot of a questionnaire.
type Answer struct {
	// Question is the question text (informational, not a join key).
	Question string `json:"question"`
	// Answer is the normalized answer text.
	Answer string `json:"answer"`
	// Comment is the free-text comment, if the column mapping carries one.
	Comment string `json:"comment"`
}

// Record represents the parsed data of one questionnaire file.
// Answers always holds exactly NumQuestions slots, index 0 = question 1;
// question rows missing from the source become empty slots.
type Record struct {
	// SourceLabel identifies the originating folder (and file, in
	// multi-file folders) for provenance.
	SourceLabel string `json:"source_label"`
	// Application is the application name from cell B1.
	Application string `json:"application"`
	// Responsible is the responsible person from cell C1.
	Responsible string `json:"responsible"`
	// Deputy is the optional deputy from cell D1.
	Deputy string `json:"deputy,omitempty"`
	// Answers are the question slots from rows 3 through 19.
	Answers [NumQuestions]Answer `json:"answers"`
}
