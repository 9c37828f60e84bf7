package consumer

import (
	"fmt"
	"strings"

	"github.com/alex-morcg/horarios-vacaciones/internal/events"
)

// Message wording mirrors what the company already sends by hand.

func formatDates(isRange bool, startDate, endDate string, dates []string) string {
	if isRange {
		return fmt.Sprintf("%s al %s", startDate, endDate)
	}
	return strings.Join(dates, ", ")
}

func formatCreatedMessage(event events.RequestCreatedEvent, appURL string) string {
	var b strings.Builder

	b.WriteString("📋 Nueva solicitud de vacaciones\n\n")
	fmt.Fprintf(&b, "👤 Usuario: %s\n", event.EmployeeCode)
	fmt.Fprintf(&b, "📅 Fechas: %s\n", formatDates(event.IsRange, event.StartDate, event.EndDate, event.Dates))

	if event.Comment != "" {
		fmt.Fprintf(&b, "💬 Comentarios: %s\n", event.Comment)
	}

	if len(event.Conflicts) > 0 {
		b.WriteString("\n⚠️ CONFLICTOS DETECTADOS:\n")
		for _, c := range event.Conflicts {
			marker := "⏳"
			if c.Status == "approved" {
				marker = "✅"
			}
			fmt.Fprintf(&b, "• %s (%s) - %s %d día(s)\n",
				c.EmployeeName, strings.Join(c.SharedDepartments, ", "), marker, c.Days)
		}
	}

	if appURL != "" {
		fmt.Fprintf(&b, "\n🔗 Ver solicitud: %s", appURL)
	}

	return b.String()
}

func formatDecidedMessage(event events.RequestDecidedEvent) string {
	statusHeader := "❌ DENEGADA"
	statusWord := "denegada"
	if event.Status == "approved" {
		statusHeader = "✅ APROBADA"
		statusWord = "aprobada"
	}

	return fmt.Sprintf("%s\n\nTu solicitud de vacaciones ha sido %s.\n\nFechas: %s",
		statusHeader, statusWord,
		formatDates(event.IsRange, event.StartDate, event.EndDate, event.Dates))
}

func formatDecidedAdminMessage(event events.RequestDecidedEvent) string {
	statusWord := "denegada"
	if event.Status == "approved" {
		statusWord = "aprobada"
	}
	return fmt.Sprintf("[Admin] Solicitud de %s %s", event.EmployeeCode, statusWord)
}
