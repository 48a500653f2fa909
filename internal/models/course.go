package models

// ResourceType classifies course materials.
type ResourceType string

const (
	ResourcePDF   ResourceType = "pdf"
	ResourceLink  ResourceType = "link"
	ResourceVideo ResourceType = "video"
	ResourceDoc   ResourceType = "doc"
)

// Resource is a course material entry.
type Resource struct {
	ID    string       `json:"id"`
	Title string       `json:"title"`
	Type  ResourceType `json:"type"`
	URL   string       `json:"url"`
	Date  string       `json:"date"`
}

// AcademicStanding is a student's standing in a course, which gates
// final-exam registration.
type AcademicStanding string

const (
	StandingApproved   AcademicStanding = "Cursada Aprobada"
	StandingInProgress AcademicStanding = "Cursando"
	StandingFree       AcademicStanding = "Libre"
	StandingPromoted   AcademicStanding = "Promocionado"
)

// CourseExam is an upcoming evaluation inside a course.
type CourseExam struct {
	Date  string `json:"date"`
	Title string `json:"title"`
}

// StudentCourse is a course as seen from the student dashboard.
type StudentCourse struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Professor      string           `json:"professor"`
	Schedule       string           `json:"schedule"`
	Attendance     int              `json:"attendance"`
	NextExams      []CourseExam     `json:"nextExams"`
	Resources      []Resource       `json:"resources"`
	AcademicStatus AcademicStanding `json:"academicStatus"`
}

// CourseStatus marks a teacher course as active or archived.
type CourseStatus string

const (
	CourseActive   CourseStatus = "active"
	CourseArchived CourseStatus = "archived"
)

// TeacherCourse is a course as seen from the teacher dashboard.
type TeacherCourse struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Career        string       `json:"career"`
	Year          string       `json:"year"`
	Schedule      string       `json:"schedule"`
	TotalStudents int          `json:"totalStudents"`
	NextClass     string       `json:"nextClass"`
	Status        CourseStatus `json:"status"`
}

// CourseStudent is a roster row for a teacher course.
type CourseStudent struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Attendance int    `json:"attendance"`
	LastGrade  int    `json:"lastGrade"`
}
