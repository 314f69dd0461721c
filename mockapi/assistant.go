package mockapi

import (
	"fmt"
	"strings"

	"clementus360/ai-helper-client/types"
)

// maxContextTokens bounds how much history the canned assistant looks at.
const maxContextTokens = 256

// estimateTokens is a rough guess: ~4 characters per token.
func estimateTokens(text string) int {
	return len(text) / 4
}

// trimHistory drops the oldest messages until the rest fits maxTokens.
func trimHistory(history []types.Message, maxTokens int) []types.Message {
	total := 0
	for i := len(history) - 1; i >= 0; i-- {
		total += estimateTokens(history[i].Content)
		if total > maxTokens {
			return history[i+1:]
		}
	}
	return history
}

var replyTopics = []struct {
	keywords []string
	reply    string
}{
	{[]string{"hábito", "habito", "habit", "rutina"}, "Un buen punto de partida es un hábito pequeño y diario, por ejemplo caminar 10 minutos después de comer. ¿Quieres que lo añada a tus hábitos?"},
	{[]string{"meta", "objetivo", "goal"}, "Definamos una meta SMART: específica, medible, alcanzable, relevante y con fecha límite. ¿Qué te gustaría conseguir en los próximos tres meses?"},
	{[]string{"estrés", "estres", "ansiedad", "stress", "cansad"}, "Siento que estés pasando por eso. Prueba a reservar 5 minutos para respirar profundamente y anota en tu diario qué lo ha provocado."},
	{[]string{"plan", "semana", "week"}, "Puedo generar un plan semanal con tareas repartidas de lunes a domingo. Ve al planificador y pulsa \"Generar plan\"."},
	{[]string{"tarea", "task", "pendiente"}, "Divide la tarea en pasos de menos de 30 minutos y empieza por el más sencillo."},
}

// assistantReply answers from keywords in the latest message. Earlier user
// messages that still fit the context window only change the closing line.
func assistantReply(history []types.Message, text string) string {
	lower := strings.ToLower(text)
	for _, topic := range replyTopics {
		for _, kw := range topic.keywords {
			if strings.Contains(lower, kw) {
				return topic.reply
			}
		}
	}

	previous := 0
	for _, m := range trimHistory(history, maxContextTokens) {
		if m.Sender == types.SenderUser {
			previous++
		}
	}
	if previous == 0 {
		return "¡Gracias por contarme sobre ti! ¿En qué área te gustaría mejorar primero: salud, trabajo o relaciones?"
	}
	return fmt.Sprintf("Entiendo: \"%s\". ¿Qué pequeño paso podrías dar hoy para avanzar?", strings.TrimSpace(text))
}

func suggestedHabits() []types.Habit {
	return []types.Habit{
		{Name: "Beber agua", Description: "Un vaso de agua al despertar", Frequency: "DAILY"},
		{Name: "Leer", Description: "Leer 15 minutos antes de dormir", Frequency: "DAILY"},
		{Name: "Ejercicio", Description: "30 minutos de actividad física", Frequency: "WEEKLY"},
	}
}

func suggestedGoals() []types.Goal {
	return []types.Goal{
		{
			Title:       "Mejorar la condición física",
			Description: "Correr 5 km sin parar",
			Specific:    "Correr 5 km de forma continua",
			Measurable:  "Registrar distancia y tiempo en cada salida",
			Achievable:  "Tres salidas por semana aumentando 10% la distancia",
			Relevant:    "Más energía durante el día",
			TimeBound:   "En 12 semanas",
		},
		{
			Title:       "Leer más",
			Description: "Terminar un libro al mes",
			Specific:    "Leer 12 libros este año",
			Measurable:  "Páginas leídas por día",
			Achievable:  "20 páginas diarias",
			Relevant:    "Aprender y desconectar de las pantallas",
			TimeBound:   "Antes de fin de año",
		},
	}
}

// weekTasks returns one task per day, labelled the way the backend labels days.
func weekTasks() []types.PlanTask {
	days := []string{"Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado", "Domingo"}
	activities := []struct{ kind, desc string }{
		{"Planificación", "Revisar objetivos de la semana"},
		{"Ejercicio", "Caminar 30 minutos"},
		{"Aprendizaje", "Leer un capítulo"},
		{"Ejercicio", "Sesión de estiramientos"},
		{"Reflexión", "Escribir en el diario"},
		{"Ocio", "Actividad al aire libre"},
		{"Descanso", "Preparar la próxima semana"},
	}
	tasks := make([]types.PlanTask, 0, len(days))
	for i, day := range days {
		tasks = append(tasks, types.PlanTask{
			Description: activities[i].desc,
			DayOfWeek:   day,
			Type:        activities[i].kind,
		})
	}
	return tasks
}
