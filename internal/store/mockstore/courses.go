package mockstore

import (
	"context"
	"fmt"
	"sync"

	"github.com/isfdyt26/portal-api/internal/models"
)

// CourseCatalog serves the course views that have no collection of their own
// yet: enrollment data still lives in the legacy administrative system, so
// both backends answer from this fixed catalog. Archival toggles mutate the
// catalog instance, not any collection document.
type CourseCatalog struct {
	mu             sync.Mutex
	teacherCourses []models.TeacherCourse
}

// NewCourseCatalog builds a catalog with the demo enrollment data.
func NewCourseCatalog() *CourseCatalog {
	return &CourseCatalog{
		teacherCourses: []models.TeacherCourse{
			{
				ID: "soft1-prog1", Name: "Programación I",
				Career: "Tec. Sup. en Desarrollo de Software", Year: "1° Año",
				Schedule: "Lun 18:00 - 22:00", TotalStudents: 32,
				NextClass: "Hoy 18:00", Status: models.CourseActive,
			},
			{
				ID: "soft2-bd", Name: "Base de Datos",
				Career: "Tec. Sup. en Desarrollo de Software", Year: "2° Año",
				Schedule: "Mar 19:00 - 21:00", TotalStudents: 25,
				NextClass: "Mañana 19:00", Status: models.CourseActive,
			},
			{
				ID: "enf3-prac", Name: "Práctica Profesional",
				Career: "Tec. Sup. en Enfermería", Year: "3° Año",
				Schedule: "Vie 08:00 - 12:00", TotalStudents: 18,
				NextClass: "Vie 08:00", Status: models.CourseActive,
			},
			{
				ID: "archived-1", Name: "Introducción a la Programación (2023)",
				Career: "Tec. Sup. en Desarrollo de Software", Year: "1° Año",
				Schedule: "Finalizado", TotalStudents: 28,
				NextClass: "-", Status: models.CourseArchived,
			},
		},
	}
}

// StudentCourses returns the demo student's enrollment. Standings are fixed
// so the final-exam eligibility rules have something to act on.
func (c *CourseCatalog) StudentCourses(_ string) []models.StudentCourse {
	return []models.StudentCourse{
		{
			ID: "prog1", Name: "Programación I",
			Professor: "Prof. Alejandro Gomez", Schedule: "Lun 18:00 - 22:00",
			Attendance: 92,
			NextExams:  []models.CourseExam{{Date: "2024-06-10", Title: "Parcial Estructuras de Control"}},
			Resources: []models.Resource{
				{ID: "r1", Title: "Introducción a Algoritmos", Type: models.ResourcePDF, URL: "#", Date: "2024-03-15"},
				{ID: "r2", Title: "Clase Grabada: Variables y Tipos", Type: models.ResourceVideo, URL: "#", Date: "2024-03-20"},
			},
			AcademicStatus: models.StandingApproved,
		},
		{
			ID: "sis1", Name: "Sistemas Operativos",
			Professor: "Prof. Maria Sanchez", Schedule: "Mar 18:00 - 20:00",
			Attendance: 85, NextExams: []models.CourseExam{}, Resources: []models.Resource{},
			AcademicStatus: models.StandingInProgress,
		},
		{
			ID: "mat1", Name: "Matemática I",
			Professor: "Prof. Roberto Diaz", Schedule: "Mie 18:00 - 20:00",
			Attendance: 100, NextExams: []models.CourseExam{}, Resources: []models.Resource{},
			AcademicStatus: models.StandingInProgress,
		},
		{
			ID: "ing1", Name: "Inglés Técnico I",
			Professor: "Prof. Sarah Connor", Schedule: "Jue 18:00 - 20:00",
			Attendance: 70, NextExams: []models.CourseExam{}, Resources: []models.Resource{},
			AcademicStatus: models.StandingApproved,
		},
	}
}

// TeacherCourses returns the current catalog snapshot.
func (c *CourseCatalog) TeacherCourses(_ string) []models.TeacherCourse {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]models.TeacherCourse, len(c.teacherCourses))
	copy(out, c.teacherCourses)
	return out
}

// ToggleCourseStatus flips a course between active and archived and returns
// the full updated catalog.
func (c *CourseCatalog) ToggleCourseStatus(courseID string) []models.TeacherCourse {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.teacherCourses {
		if c.teacherCourses[i].ID != courseID {
			continue
		}
		if c.teacherCourses[i].Status == models.CourseActive {
			c.teacherCourses[i].Status = models.CourseArchived
		} else {
			c.teacherCourses[i].Status = models.CourseActive
		}
	}

	out := make([]models.TeacherCourse, len(c.teacherCourses))
	copy(out, c.teacherCourses)
	return out
}

// CourseStudents generates a deterministic roster per course so repeated
// reads agree.
func (c *CourseCatalog) CourseStudents(courseID string) []models.CourseStudent {
	count := 6
	switch courseID {
	case "soft1-prog1":
		count = 12
	case "soft2-bd":
		count = 8
	}

	surnames := []string{"Alvarez", "Benitez", "Castro", "Dominguez", "Fernandez", "Gomez", "Lopez", "Martinez", "Perez", "Rodriguez", "Sanchez", "Torres"}
	firstNames := []string{"Juan", "Maria", "Pedro", "Ana", "Luis", "Sofia", "Carlos", "Lucia", "Miguel", "Elena"}

	students := make([]models.CourseStudent, 0, count)
	for i := 0; i < count; i++ {
		students = append(students, models.CourseStudent{
			ID:         fmt.Sprintf("st-%s-%d", courseID, i),
			Name:       fmt.Sprintf("%s, %s", surnames[i%len(surnames)], firstNames[i%len(firstNames)]),
			Attendance: 70 + (i*7)%30,
			LastGrade:  6 + (i*3)%4,
		})
	}
	return students
}

func (m *Mock) StudentCourses(_ context.Context, studentID string) ([]models.StudentCourse, error) {
	return m.catalog.StudentCourses(studentID), nil
}

func (m *Mock) TeacherCourses(_ context.Context, teacherID string) ([]models.TeacherCourse, error) {
	return m.catalog.TeacherCourses(teacherID), nil
}

func (m *Mock) CourseStudents(_ context.Context, courseID string) ([]models.CourseStudent, error) {
	return m.catalog.CourseStudents(courseID), nil
}

func (m *Mock) ToggleCourseStatus(_ context.Context, courseID string) ([]models.TeacherCourse, error) {
	return m.catalog.ToggleCourseStatus(courseID), nil
}
