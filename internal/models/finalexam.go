package models

// FinalExam is a stored final-exam session with its registration set.
type FinalExam struct {
	ID                   string   `json:"id"`
	CareerID             string   `json:"careerId,omitempty"`
	SubjectID            string   `json:"subjectId,omitempty"`
	SubjectName          string   `json:"subjectName"`
	Date                 string   `json:"date"`
	Time                 string   `json:"time"`
	Professor            string   `json:"professor"`
	Classroom            string   `json:"classroom"`
	RegisteredStudentIDs []string `json:"registeredStudentIds"`
}

// FinalExamSession is the per-user view of a final exam.
type FinalExamSession struct {
	ID              string `json:"id"`
	CareerID        string `json:"careerId,omitempty"`
	SubjectID       string `json:"subjectId,omitempty"`
	SubjectName     string `json:"subjectName"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	Professor       string `json:"professor"`
	Classroom       string `json:"classroom"`
	IsRegistered    bool   `json:"isRegistered"`
	RegisteredCount int    `json:"registeredCount"`
}

// View projects the stored exam for one user.
func (f FinalExam) View(userID string) FinalExamSession {
	registered := false
	for _, id := range f.RegisteredStudentIDs {
		if id == userID {
			registered = true
			break
		}
	}
	return FinalExamSession{
		ID:              f.ID,
		CareerID:        f.CareerID,
		SubjectID:       f.SubjectID,
		SubjectName:     f.SubjectName,
		Date:            f.Date,
		Time:            f.Time,
		Professor:       f.Professor,
		Classroom:       f.Classroom,
		IsRegistered:    registered,
		RegisteredCount: len(f.RegisteredStudentIDs),
	}
}
