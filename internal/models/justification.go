package models

import "time"

// JustificationStatus is the review state of an absence justification.
type JustificationStatus string

const (
	JustificationPending  JustificationStatus = "PENDING"
	JustificationApproved JustificationStatus = "APPROVED"
	JustificationRejected JustificationStatus = "REJECTED"
)

// JustificationRequest is a student's absence justification awaiting a
// preceptor decision. Date is the absence day (YYYY-MM-DD).
type JustificationRequest struct {
	ID          string              `db:"id" json:"id"`
	StudentID   string              `db:"student_id" json:"studentId"`
	StudentName string              `db:"student_name" json:"studentName"`
	CourseName  string              `db:"course_name" json:"courseName"`
	Date        string              `db:"date" json:"date"`
	Reason      string              `db:"reason" json:"reason"`
	Status      JustificationStatus `db:"status" json:"status"`
	RequestDate time.Time           `db:"request_date" json:"requestDate"`
}
