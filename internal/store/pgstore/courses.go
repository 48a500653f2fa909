package pgstore

import (
	"context"

	"github.com/isfdyt26/portal-api/internal/models"
)

// Course views come from the shared catalog: enrollment data has no table
// yet, so the remote backend answers exactly like the local one.

func (p *PG) StudentCourses(_ context.Context, studentID string) ([]models.StudentCourse, error) {
	return p.catalog.StudentCourses(studentID), nil
}

func (p *PG) TeacherCourses(_ context.Context, teacherID string) ([]models.TeacherCourse, error) {
	return p.catalog.TeacherCourses(teacherID), nil
}

func (p *PG) CourseStudents(_ context.Context, courseID string) ([]models.CourseStudent, error) {
	return p.catalog.CourseStudents(courseID), nil
}

func (p *PG) ToggleCourseStatus(_ context.Context, courseID string) ([]models.TeacherCourse, error) {
	return p.catalog.ToggleCourseStatus(courseID), nil
}
