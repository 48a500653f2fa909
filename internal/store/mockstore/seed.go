package mockstore

import (
	"time"

	"go.uber.org/zap"

	"github.com/isfdyt26/portal-api/internal/models"
)

// seedMissing fills every absent collection with its demo dataset. Callers
// hold the mutex.
func (m *Mock) seedMissing() {
	seed := func(key string, data interface{}) {
		if _, ok := m.docs[key]; ok {
			return
		}
		if err := m.write(key, data); err != nil {
			m.logger.Error("seed failed", zap.String("collection", key), zap.Error(err))
		}
	}

	seed(keyUsers, seedUsers())
	seed(keyEvents, seedEvents())
	seed(keyNotifications, seedNotifications())
	seed(keyJustifications, seedJustifications())
	seed(keyCareers, seedCareers())
	seed(keyMessages, seedMessages())
	seed(keyGroups, seedGroups())
	seed(keyClassrooms, seedClassrooms())
	seed(keyBlocked, map[string][]string{})
	seed(keyFinals, seedFinals())
}

func seedCareers() []models.Career {
	return []models.Career{
		{
			ID:    "c8",
			Name:  "Tecnicatura Superior en Desarrollo de Software",
			Years: []string{"1° Año", "2° Año", "3° Año"},
			Subjects: []models.Subject{
				{ID: "s1", Name: "Programación I", Year: "1° Año"},
				{ID: "s2", Name: "Sistemas Operativos", Year: "1° Año"},
				{ID: "s3", Name: "Matemática I", Year: "1° Año"},
				{ID: "s4", Name: "Inglés Técnico I", Year: "1° Año"},
				{ID: "s5", Name: "Base de Datos", Year: "2° Año"},
				{ID: "s6", Name: "Práctica Profesionalizante I", Year: "1° Año"},
			},
		},
		{ID: "c1", Name: "Profesorado de Educación Primaria", Years: []string{"1° Año", "2° Año", "3° Año", "4° Año"}, Subjects: []models.Subject{}},
		{ID: "c2", Name: "Profesorado de Educación Especial", Years: []string{"2° Año", "3° Año", "4° Año"}, Subjects: []models.Subject{}},
		{ID: "c3", Name: "Profesorado de Educación Inicial", Years: []string{"1° Año", "2° Año"}, Subjects: []models.Subject{}},
		{ID: "c6", Name: "Tecnicatura Superior en Enfermería", Years: []string{"1° Año", "2° Año", "3° Año"}, Subjects: []models.Subject{}},
	}
}

func seedUsers() []models.User {
	pref := func(theme models.AppTheme, dark bool) *models.UserPreferences {
		return &models.UserPreferences{EmailNotifications: true, DarkMode: dark, Theme: theme}
	}
	return []models.User{
		{
			ID: "1", Name: "Alumno Demo", Role: models.RoleStudent,
			Email: "alumno@isfd26.edu.ar", Password: "123",
			Avatar:      "https://api.dicebear.com/7.x/initials/svg?seed=AD",
			Preferences: pref(models.ThemeIndigo, false),
		},
		{
			ID: "2", Name: "Prof. Alejandro Gomez", Role: models.RoleTeacher,
			Email: "docente@isfd26.edu.ar", Password: "123",
			Avatar:      "https://api.dicebear.com/7.x/initials/svg?seed=AG",
			Preferences: pref(models.ThemeTeal, false),
		},
		{
			ID: "3", Name: "Laura Quiroga", Role: models.RolePreceptor,
			Email: "preceptor@isfd26.edu.ar", Password: "123",
			Avatar:      "https://api.dicebear.com/7.x/initials/svg?seed=LQ",
			Preferences: pref(models.ThemeRose, false),
		},
		{
			ID: "4", Name: "Dir. Esteban Quito", Role: models.RoleDirector,
			Email: "directivo@isfd26.edu.ar", Password: "123",
			Avatar:      "https://api.dicebear.com/7.x/initials/svg?seed=EQ",
			Preferences: pref(models.ThemeBlue, false),
		},
		{
			ID: "5", Name: "Admin Sistema", Role: models.RoleAdmin,
			Email: "admin@isfd26.edu.ar", Password: "123",
			Avatar:      "https://api.dicebear.com/7.x/initials/svg?seed=AS",
			Preferences: pref(models.ThemeViolet, true),
		},
	}
}

func seedEvents() []models.CalendarEvent {
	return []models.CalendarEvent{
		{ID: "1", Title: "Inicio Ciclo Lectivo", Date: "2024-03-11", Type: models.EventOther, Description: "Acto de inicio"},
		{ID: "2", Title: "Parcial Programación I", Date: "2024-05-20", Type: models.EventExam},
		{ID: "3", Title: "Feriado Nacional", Date: "2024-05-25", Type: models.EventHoliday},
		{ID: "4", Title: "Entrega TP Final", Date: "2024-06-15", Type: models.EventDeadline},
	}
}

func seedNotifications() []models.Notification {
	now := time.Now().UTC()
	return []models.Notification{
		{ID: "1", UserID: "1", Title: "Nueva Calificación", Message: "Se ha cargado la nota de Parcial Programación.", Date: now, Read: false, Type: models.NotificationSuccess},
		{ID: "2", UserID: models.NotificationAudienceAll, Title: "Mantenimiento del Sistema", Message: "La plataforma estará en mantenimiento el domingo.", Date: now, Read: false, Type: models.NotificationInfo},
		{ID: "3", UserID: "2", Title: "Recordatorio Planificación", Message: "Recuerde subir la planificación anual antes del viernes.", Date: now, Read: true, Type: models.NotificationAlert},
	}
}

func seedMessages() []models.ChatMessage {
	now := time.Now().UTC()
	return []models.ChatMessage{
		{ID: "m1", SenderID: "2", ReceiverID: "1", Content: "Hola, recuerda entregar el TP mañana.", Timestamp: now.Add(-24 * time.Hour), Read: false},
		{ID: "m2", SenderID: "1", ReceiverID: "2", Content: "Si profesor, ya lo estoy terminando.", Timestamp: now.Add(-22*time.Hour - 47*time.Minute), Read: true},
	}
}

func seedGroups() []models.ChatGroup {
	return []models.ChatGroup{
		{
			ID: "g1", Name: "Sala de Profesores",
			Members: []string{"2", "3", "4", "5"},
			Admins:  []string{"4"},
			Avatar:  "https://api.dicebear.com/7.x/initials/svg?seed=SP",
		},
	}
}

func seedJustifications() []models.JustificationRequest {
	return []models.JustificationRequest{
		{
			ID:          "req1",
			StudentID:   "2",
			StudentName: "Benitez, Clara",
			CourseName:  "Programación I",
			Date:        "2024-05-10",
			Reason:      "Consulta médica (Certificado adjunto)",
			Status:      models.JustificationPending,
			RequestDate: time.Now().UTC(),
		},
	}
}

func seedClassrooms() []models.Classroom {
	return []models.Classroom{
		{ID: "a1", Name: "Aula 204", Capacity: 35, Location: "Planta Alta"},
		{ID: "a2", Name: "Laboratorio de Informática", Capacity: 25, Location: "Planta Baja"},
		{ID: "a3", Name: "Auditorio", Capacity: 100, Location: "Edificio Anexo"},
	}
}

func seedFinals() []models.FinalExam {
	return []models.FinalExam{
		{ID: "f1", SubjectName: "Programación I", SubjectID: "s1", Date: "2024-07-10", Time: "18:00", Professor: "Prof. A. Gomez", Classroom: "Lab. Informática", RegisteredStudentIDs: []string{}},
		{ID: "f2", SubjectName: "Sistemas Operativos", SubjectID: "s2", Date: "2024-07-12", Time: "19:00", Professor: "Prof. M. Sanchez", Classroom: "Aula 204", RegisteredStudentIDs: []string{}},
		{ID: "f3", SubjectName: "Inglés Técnico I", SubjectID: "s4", Date: "2024-07-15", Time: "18:00", Professor: "Prof. S. Connor", Classroom: "Aula 205", RegisteredStudentIDs: []string{"1"}},
		{ID: "f4", SubjectName: "Matemática I", SubjectID: "s3", Date: "2024-07-18", Time: "18:30", Professor: "Prof. R. Diaz", Classroom: "Aula 202", RegisteredStudentIDs: []string{}},
	}
}
