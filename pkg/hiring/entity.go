package hiring

import (
	"time"

	"github.com/google/uuid"
)

// Status — статус заявки кандидата в админке.
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusReviewed Status = "REVIEWED"
	StatusAccepted Status = "ACCEPTED"
	StatusRejected Status = "REJECTED"
)

// ParseStatus converts a raw string to a Status, returning false for unknown values.
func ParseStatus(s string) (Status, bool) {
	st := Status(s)
	switch st {
	case StatusPending, StatusReviewed, StatusAccepted, StatusRejected:
		return st, true
	}
	return "", false
}

// WorkLocation — предпочтительный формат работы из анкеты кандидата.
type WorkLocation string

const (
	LocationOffice WorkLocation = "OFFICE"
	LocationRemote WorkLocation = "REMOTE"
	LocationHybrid WorkLocation = "HYBRID"
)

// ParseWorkLocation validates a raw work-location value.
func ParseWorkLocation(s string) (WorkLocation, bool) {
	w := WorkLocation(s)
	switch w {
	case LocationOffice, LocationRemote, LocationHybrid:
		return w, true
	}
	return "", false
}

// ResultStatus — итог собеседования.
type ResultStatus string

const (
	ResultPassed  ResultStatus = "PASSED"
	ResultFailed  ResultStatus = "FAILED"
	ResultPending ResultStatus = "PENDING"
)

// ParseResultStatus validates a raw interview-result value.
func ParseResultStatus(s string) (ResultStatus, bool) {
	r := ResultStatus(s)
	switch r {
	case ResultPassed, ResultFailed, ResultPending:
		return r, true
	}
	return "", false
}

// Application — заявка кандидата: анкета с карьерной страницы плюс
// поля этапа собеседования (nullable, пока этап не наступил).
type Application struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	Position        string    `json:"position"`
	YearsExperience int       `json:"yearsExperience"`
	Skills          []string  `json:"skills"`
	CoverLetter     string    `json:"coverLetter,omitempty"`
	CVURL           string    `json:"cvUrl,omitempty"`
	PhotoURL        string    `json:"photoUrl,omitempty"`
	Locale          string    `json:"locale"`
	Status          Status    `json:"status"`
	AdminNotes      string    `json:"adminNotes,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`

	// Этап собеседования. ResponseSubmittedAt — единственный источник
	// истины для состояния "анкета после интервью отправлена".
	ScheduledInterviewAt *time.Time         `json:"scheduledInterviewAt,omitempty"`
	AppointmentConfirmed bool               `json:"appointmentConfirmed"`
	ResponseSubmittedAt  *time.Time         `json:"responseSubmittedAt,omitempty"`
	Response             *InterviewResponse `json:"response,omitempty"`
}

// InterviewResponse — анкета кандидата перед собеседованием.
// Все поля заполняются атомарно одной отправкой (частичных анкет не бывает).
type InterviewResponse struct {
	LastJobExitReason string       `json:"lastJobExitReason"`
	LastSalary        string       `json:"lastSalary"`
	ExpectedSalary    string       `json:"expectedSalary"`
	NoticePeriod      string       `json:"noticePeriod"`
	PreferredLocation WorkLocation `json:"preferredLocation"`
	WillingToRelocate bool         `json:"willingToRelocate"`
	BestInterviewTime string       `json:"bestInterviewTime"`
	Questions         string       `json:"questions,omitempty"`
}

// InterviewResult — итог собеседования, один на заявку (уникален по ApplicationID).
type InterviewResult struct {
	ID             uuid.UUID    `json:"id"`
	ApplicationID  uuid.UUID    `json:"applicationId"`
	InterviewDate  time.Time    `json:"interviewDate"`
	Result         ResultStatus `json:"result"`
	Rating         *int         `json:"rating,omitempty"` // 1..10
	Interviewer    string       `json:"interviewer"`
	Strengths      []string     `json:"strengths,omitempty"`
	Weaknesses     []string     `json:"weaknesses,omitempty"`
	Notes          string       `json:"notes,omitempty"`
	Recommendation string       `json:"recommendation,omitempty"`
	CreatedAt      time.Time    `json:"createdAt"`
	UpdatedAt      time.Time    `json:"updatedAt"`
}
