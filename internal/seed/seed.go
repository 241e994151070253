// Package seed puebla la base con el dataset inicial del curso 740508.
// Es destructivo: vacía Courses y Tasks antes de insertar. Se ejecuta
// una sola vez, a mano (flag -seed), nunca desde el API.
package seed

import (
	"gestor_unad_backend/internal/model"
	"gestor_unad_backend/internal/repository"
	"gestor_unad_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var courses = []*model.Course{
	{Period: "2281", Name: "Educación en Tecnología e Informática V", Code: "740508"},
	{Period: "2104", Name: "Educación en Tecnología e Informática V", Code: "740508"},
}

var campusURLs = map[string]string{
	"2281": "https://campus123.unad.edu.co/sinepv06/course/view.php?id=137",
	"2104": "https://campus123.unad.edu.co/sinepv06/course/view.php?id=103",
}

func campusURL(course string) string {
	if url, ok := campusURLs[course]; ok {
		return url
	}
	return "#"
}

func mk(course string, momento model.Momento, name string, tipo model.Tipo, pts float64, due, desc string, recursos, subtasks []string) *model.Task {
	return &model.Task{
		Course:    course,
		Momento:   momento,
		Name:      name,
		Tipo:      tipo,
		Pts:       pts,
		Due:       due,
		Desc:      desc,
		Recursos:  recursos,
		Subtasks:  subtasks,
		CampusURL: campusURL(course),
		Notes:     "",
		Done:      false,
		AIHistory: []model.ChatTurn{},
	}
}

func tasks() []*model.Task {
	return []*model.Task{
		// ── 2281 ──
		mk("2281", model.MomentoInicial, "Prueba Inicial", model.TipoPrueba, 50, "2026-02-13", "Prueba de evaluación inicial.",
			[]string{"Recurso educativo — Explorando saberes previos", "Prueba inicial (campus)"},
			[]string{"Marcar Acuerdos del curso como realizado", "Revisar recurso educativo", "Realizar la prueba antes del 13/FEB 23:55"}),
		mk("2281", model.MomentoIntermedio, "Act. Evaluativa — La revolución y la tecnología", model.TipoIndividual, 120, "2026-05-01",
			"Documento Word/PDF sobre ciencia, técnica, tecnología y las 4 revoluciones industriales.",
			[]string{"Guía de aprendizaje", "Recurso educativo — Industria 4.0", "Webconferencia educativa"},
			[]string{"Descargar Guía de aprendizaje", "Ver recurso Industria 4.0", "Ver webconferencia", "Resolver actividades", "Entregar Word/PDF antes del 01/MAY 23:55"}),
		mk("2281", model.MomentoIntermedio, "Proyecto Integrador — Estación 7 (PLE)", model.TipoIndividual, 80, "2026-05-01",
			"Entorno Personal de Aprendizaje del proyecto empresarial — Estación 7.",
			[]string{"Problema del ciclo — Ciclo V", "Guía de aprendizaje Estación 7", "Webconferencia educativa"},
			[]string{"Leer Problema del ciclo", "Descargar guía Estación 7", "Ver webconferencia", "Construir el PLE", "Entregar antes del 01/MAY 23:55"}),
		mk("2281", model.MomentoIntermedio, "Foro Proyecto Transversal", model.TipoColaborativa, 40, "2026-05-01",
			"¿Cómo hacer realidad nuestra idea de negocio a través de las TIC?",
			[]string{"Foro Proyecto Transversal (campus)"},
			[]string{"Leer situación problematizadora", "Publicar aporte mín. 200 palabras", "Responder 2 compañeros", "Verificar antes del 01/MAY 23:55"}),
		mk("2281", model.MomentoIntermedio, "Prueba Intermedia", model.TipoPrueba, 60, "2026-05-04",
			"Evalúa ciencia, técnica, tecnología y las 4 revoluciones. Disponible 02–04/MAY.",
			[]string{"Prueba Intermedia (campus)"},
			[]string{"Repasar guía y recurso Industria 4.0", "Realizar prueba entre 02/MAY y 04/MAY"}),
		mk("2281", model.MomentoFinal, "Act. Evaluativa — Pensamiento Computacional con Bloques", model.TipoIndividual, 60, "2026-06-13",
			"Componentes electrónicos, Hardware y Software de dispositivos.",
			[]string{"Guía de aprendizaje — Pensamiento Computacional", "Recurso educativo — Pensamiento lógico", "Webconferencia educativa"},
			[]string{"Descargar guía de aprendizaje", "Ver recurso pensamiento lógico", "Ver webconferencia", "Desarrollar actividades", "Entregar antes del 13/JUN 23:55"}),
		mk("2281", model.MomentoFinal, "Foro Colaborativo — Tejiendo Palabras", model.TipoColaborativa, 40, "2026-06-13",
			"Soluciones a problemas en artefactos electrónicos.",
			[]string{"Foro colaborativo tejiendo palabras (campus)"},
			[]string{"Leer el problema del foro", "Publicar solución argumentada", "Comentar 2 compañeros", "Verificar antes del 13/JUN 23:55"}),
		mk("2281", model.MomentoFinal, "Prueba Final", model.TipoPrueba, 50, "2026-06-17",
			"Hardware, Software y seguridad informática. Disponible 15–17/JUN.",
			[]string{"Prueba final (campus)"},
			[]string{"Repasar guía Pensamiento Computacional", "Estudiar Hardware Software y seguridad", "Realizar prueba entre 15/JUN y 17/JUN"}),
		// ── 2104 ──
		mk("2104", model.MomentoInicial, "Prueba Inicial", model.TipoPrueba, 50, "2025-11-04", "Prueba de evaluación inicial.",
			[]string{"Recurso educativo — Explorando saberes previos", "Prueba inicial (campus)"},
			[]string{"Marcar Acuerdos del curso como realizado", "Revisar recurso educativo", "Realizar la prueba antes del 04/NOV 23:55"}),
		mk("2104", model.MomentoIntermedio, "Act. Evaluativa — La revolución y la tecnología", model.TipoIndividual, 120, "2025-12-14",
			"Documento Word/PDF sobre ciencia, técnica, tecnología y las 4 revoluciones industriales.",
			[]string{"Guía de aprendizaje", "Recurso educativo — Industria 4.0", "Webconferencia educativa"},
			[]string{"Descargar Guía de aprendizaje", "Ver recurso Industria 4.0", "Ver webconferencia", "Resolver actividades", "Entregar Word/PDF antes del 14/DIC 23:55"}),
		mk("2104", model.MomentoIntermedio, "Proyecto Integrador — Estación 7 (PLE)", model.TipoIndividual, 80, "2026-02-11",
			"Entorno Personal de Aprendizaje del proyecto empresarial — Estación 7.",
			[]string{"Problema del ciclo — Ciclo V", "Guía de aprendizaje Estación 7", "Webconferencia educativa"},
			[]string{"Leer Problema del ciclo", "Descargar guía Estación 7", "Ver webconferencia", "Construir el PLE", "Entregar antes del 11/FEB 23:55"}),
		mk("2104", model.MomentoIntermedio, "Foro Proyecto Transversal", model.TipoColaborativa, 40, "2026-02-11",
			"¿Cómo hacer realidad nuestra idea de negocio a través de las TIC?",
			[]string{"Foro Proyecto Transversal (campus)"},
			[]string{"Leer situación problematizadora", "Publicar aporte mín. 200 palabras", "Responder 2 compañeros", "Verificar antes del 11/FEB 23:55"}),
		mk("2104", model.MomentoIntermedio, "Prueba Intermedia", model.TipoPrueba, 60, "2026-02-14",
			"Evalúa ciencia, técnica, tecnología y las 4 revoluciones. Disponible 11–14/FEB.",
			[]string{"Prueba Intermedia (campus)"},
			[]string{"Repasar guía y recurso Industria 4.0", "Realizar prueba entre 11/FEB y 14/FEB"}),
		mk("2104", model.MomentoFinal, "Act. Evaluativa — Pensamiento Computacional con Bloques", model.TipoIndividual, 60, "2026-03-21",
			"Componentes electrónicos, Hardware y Software de dispositivos.",
			[]string{"Guía de aprendizaje — Pensamiento Computacional", "Recurso educativo — Pensamiento lógico", "Webconferencia educativa"},
			[]string{"Descargar guía de aprendizaje", "Ver recurso pensamiento lógico", "Ver webconferencia", "Desarrollar actividades", "Entregar antes del 21/MAR 23:55"}),
		mk("2104", model.MomentoFinal, "Foro Colaborativo — Tejiendo Palabras", model.TipoColaborativa, 40, "2026-03-21",
			"Soluciones a problemas en artefactos electrónicos.",
			[]string{"Foro colaborativo tejiendo palabras (campus)"},
			[]string{"Leer el problema del foro", "Publicar solución argumentada", "Comentar 2 compañeros", "Verificar antes del 21/MAR 23:55"}),
		mk("2104", model.MomentoFinal, "Prueba Final", model.TipoPrueba, 50, "2026-03-23",
			"Hardware, Software y seguridad informática. Disponible 20–23/MAR.",
			[]string{"Prueba final (campus)"},
			[]string{"Repasar guía Pensamiento Computacional", "Estudiar Hardware Software y seguridad", "Realizar prueba entre 20/MAR y 23/MAR"}),
	}
}

// Run vacía Courses y Tasks y los repuebla. Aborta en el primer error
// del almacén; un estado parcial (cursos insertados, tareas no) queda
// como quede, el seed no lo repara.
func Run(db *gorm.DB) error {
	courseRepo := repository.NewCourseRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	if err := courseRepo.DeleteAll(); err != nil {
		return err
	}
	if err := taskRepo.DeleteAll(); err != nil {
		return err
	}
	logger.Log.Info("colecciones limpiadas")

	for _, c := range courses {
		course := *c
		if err := courseRepo.Create(&course); err != nil {
			return err
		}
	}
	logger.Log.Info("cursos insertados", zap.Int("count", len(courses)))

	data := tasks()
	if err := taskRepo.CreateBatch(data); err != nil {
		return err
	}
	logger.Log.Info("tareas insertadas", zap.Int("count", len(data)))

	return nil
}
