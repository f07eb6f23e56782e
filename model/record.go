package model

import "time"

const (
	//submission lifecycle statuses
	SENT      string = "SENT"
	CONFIRMED        = "CONFIRMED"
	DENIED           = "DENIED"
	SKIPPED          = "SKIPPED"
)

const (
	//store layout
	Bucket          = "submissions"
	RecordKeyPrefix = "mission:"
	CounterKey      = "stats:counter"
)

//FormFields is the inquiry payload as submitted by the browser form.
//It is passed through to the notification and the log entry unchanged.
type FormFields struct {
	UserType    string `json:"userType"`
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Postcode    string `json:"postcode"`
	Description string `json:"description"`
	ContactTime string `json:"contactTime"`
}

//SubmissionRecord is the durable log entry of a single inquiry.
//Status moves only forward along SENT -> CONFIRMED|DENIED|SKIPPED; the store
//does not enforce this, the verification service is the only writer after
//creation.
type SubmissionRecord struct {
	LogID      string     `json:"logId"`
	Sequence   int        `json:"sequenceNumber"`
	TaskID     string     `json:"taskId"`
	Timestamp  string     `json:"timestamp"`
	Status     string     `json:"status"`
	VerifiedAt string     `json:"verifiedAt,omitempty"`
	Fields     FormFields `json:"data"`
}

//RecordKey returns the store key of the record with the given task id
func RecordKey(taskId string) string {
	return RecordKeyPrefix + taskId
}

//CreatedTime parses the record timestamp. Unparseable timestamps map to the
//zero time so such records sort as oldest.
func (r SubmissionRecord) CreatedTime() time.Time {
	t, err := time.Parse(time.RFC3339, r.Timestamp)
	if err != nil {
		return time.Time{}
	}
	return t
}
