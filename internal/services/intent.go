package services

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/smartunibot/unibot-api/internal/constants"
	"github.com/smartunibot/unibot-api/internal/models"
)

// Ordered intent predicates, first match wins. Tested against the
// lower-cased message.
var (
	reGreeting = regexp.MustCompile(`\b(hola|buenos|hey|hi)\b`)
	reToday    = regexp.MustCompile(`clases? (de )?hoy|horario (de )?hoy|tengo hoy`)
	reTomorrow = regexp.MustCompile(`clases? (de )?mañana|horario (de )?mañana|tengo mañana`)
	rePending  = regexp.MustCompile(`tareas? pendientes?|cuántas tareas?|tengo que hacer`)
	reNext     = regexp.MustCompile(`próxima tarea|siguiente tarea|qué sigue`)
	reHelp     = regexp.MustCompile(`ayuda|help|qué puedes hacer|comandos`)
)

const greetingReply = "¡Hola! 👋 Soy tu asistente académico. Puedo ayudarte con:\n\n" +
	"📅 \"¿Qué clases tengo hoy?\"\n" +
	"📝 \"¿Cuántas tareas tengo pendientes?\"\n" +
	"⏰ \"¿Cuál es mi próxima tarea?\"\n" +
	"📚 \"¿Qué tengo mañana?\""

const helpReply = "🤖 Puedo ayudarte con:\n\n" +
	"📅 Consultar tu horario de hoy o mañana\n" +
	"📝 Ver tus tareas pendientes\n" +
	"⏰ Saber cuál es tu próxima tarea\n\n" +
	"Solo pregúntame en lenguaje natural, como:\n" +
	"• \"¿Qué clases tengo hoy?\"\n" +
	"• \"¿Cuántas tareas pendientes tengo?\"\n" +
	"• \"¿Cuál es mi próxima tarea?\""

const fallbackReply = "Hmm, no estoy seguro de entender. 🤔\n\n" +
	"Prueba preguntarme sobre:\n" +
	"• Tu horario de hoy o mañana\n" +
	"• Tus tareas pendientes\n" +
	"• Tu próxima tarea\n\n" +
	"O escribe \"ayuda\" para ver qué puedo hacer."

// RespondIntent classifies a free-text message against the user's current
// schedule and task snapshot and renders a canned textual answer. It is a
// pure function: no state survives between calls.
func RespondIntent(message string, now time.Time, classes []models.Class, tasks []models.Task) string {
	msg := strings.ToLower(message)

	switch {
	case reGreeting.MatchString(msg):
		return greetingReply
	case reToday.MatchString(msg):
		return renderDayClasses(classes, models.DayOf(now), "Hoy", "🎉 ¡No tienes clases hoy! Aprovecha para descansar o ponerte al día con tareas.")
	case reTomorrow.MatchString(msg):
		return renderDayClasses(classes, models.DayOf(now).Next(), "Mañana", "🎉 Mañana no tienes clases programadas.")
	case rePending.MatchString(msg):
		return renderPendingTasks(tasks, now)
	case reNext.MatchString(msg):
		return renderNextTask(tasks, now)
	case reHelp.MatchString(msg):
		return helpReply
	}
	return fallbackReply
}

func renderDayClasses(classes []models.Class, day models.DayOfWeek, label, emptyReply string) string {
	var matching []models.Class
	for _, c := range classes {
		if c.DayOfWeek == day {
			matching = append(matching, c)
		}
	}

	if len(matching) == 0 {
		return emptyReply
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📅 %s tienes %d clase(s):\n\n", label, len(matching))
	for _, c := range matching {
		fmt.Fprintf(&b, "🎓 %s\n", c.SubjectName)
		fmt.Fprintf(&b, "   ⏰ %s - %s\n", c.StartTime, c.EndTime)
		if c.Location != nil {
			fmt.Fprintf(&b, "   📍 %s\n", *c.Location)
		}
		if c.Professor != nil {
			fmt.Fprintf(&b, "   👨‍🏫 %s\n", *c.Professor)
		}
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String())
}

func renderPendingTasks(tasks []models.Task, now time.Time) string {
	pending := pendingByDueDate(tasks)
	if len(pending) == 0 {
		return "🎉 ¡Genial! No tienes tareas pendientes. Estás al día."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📝 Tienes %d tarea(s) pendiente(s):\n\n", len(pending))

	shown := pending
	if len(shown) > constants.PendingTaskDisplayLimit {
		shown = shown[:constants.PendingTaskDisplayLimit]
	}
	for _, t := range shown {
		if t.Priority == models.PriorityHigh {
			b.WriteString("⚠️ ")
		}
		b.WriteString(t.Title)
		b.WriteString("\n")
		fmt.Fprintf(&b, "   %s\n", urgencyLabel(daysUntil(now, t.DueDate)))
		if t.Subject != nil {
			fmt.Fprintf(&b, "   📚 %s\n", *t.Subject)
		}
		b.WriteString("\n")
	}

	if len(pending) > constants.PendingTaskDisplayLimit {
		fmt.Fprintf(&b, "\n...y %d más.", len(pending)-constants.PendingTaskDisplayLimit)
	}
	return strings.TrimSpace(b.String())
}

func renderNextTask(tasks []models.Task, now time.Time) string {
	pending := pendingByDueDate(tasks)
	if len(pending) == 0 {
		return "✅ No tienes tareas pendientes próximas."
	}

	next := pending[0]
	daysLeft := daysUntil(now, next.DueDate)

	var b strings.Builder
	b.WriteString("⏰ Tu próxima tarea es:\n\n")
	fmt.Fprintf(&b, "📌 %s\n", next.Title)
	if next.Description != nil {
		fmt.Fprintf(&b, "   📄 %s\n", *next.Description)
	}
	if next.Subject != nil {
		fmt.Fprintf(&b, "   📚 %s\n", *next.Subject)
	}
	fmt.Fprintf(&b, "   📅 Fecha: %s\n", next.DueDate.Format("02/01/2006"))

	switch {
	case daysLeft < 0:
		b.WriteString("   🔴 ¡Está atrasada!\n")
	case daysLeft == 0:
		b.WriteString("   🔴 ¡Vence hoy!\n")
	case daysLeft == 1:
		b.WriteString("   🟠 Vence mañana\n")
	default:
		fmt.Fprintf(&b, "   🟢 Faltan %d días\n", daysLeft)
	}
	return strings.TrimSpace(b.String())
}

// urgencyLabel maps days-until-due to the warning tiers the original app
// used: overdue, today, tomorrow, a yellow warning up to 3 days, green after.
func urgencyLabel(daysLeft int) string {
	switch {
	case daysLeft < 0:
		return "🔴 ¡Atrasada!"
	case daysLeft == 0:
		return "🔴 ¡Hoy!"
	case daysLeft == 1:
		return "🟠 Mañana"
	case daysLeft <= 3:
		return fmt.Sprintf("🟡 En %d días", daysLeft)
	default:
		return fmt.Sprintf("🟢 En %d días", daysLeft)
	}
}

func pendingByDueDate(tasks []models.Task) []models.Task {
	var pending []models.Task
	for _, t := range tasks {
		if !t.IsCompleted {
			pending = append(pending, t)
		}
	}
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].DueDate.Before(pending[j].DueDate)
	})
	return pending
}

// daysUntil is the calendar-day distance between two instants, ignoring
// the time of day on both ends.
func daysUntil(now, due time.Time) int {
	a := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}
