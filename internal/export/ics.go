// Package export serializes task and note snapshots into downloadable
// artifacts: an iCalendar payload for reminders and a paginated PDF for
// notes. Both operations are pure over the snapshot they are given.
package export

import (
	"fmt"
	"strings"

	"student-assist/internal/model"
)

const (
	icsProdID     = "-//StudentAssist//EN"
	icsUIDDomain  = "student-assist"
	icsTimeLayout = "20060102T150405Z"
)

// property is one typed field of a calendar component. Values pass through
// escaping at render time, in one place, so reserved characters in task
// descriptions cannot corrupt the payload.
type property struct {
	name  string
	value string
	raw   bool // raw values (dates, UIDs) are emitted verbatim
}

type component struct {
	name  string
	props []property
}

func (c component) render(sb *strings.Builder) {
	sb.WriteString("BEGIN:" + c.name + "\r\n")
	for _, p := range c.props {
		v := p.value
		if !p.raw {
			v = escapeText(v)
		}
		sb.WriteString(p.name + ":" + v + "\r\n")
	}
	sb.WriteString("END:" + c.name + "\r\n")
}

// escapeText applies RFC 5545 TEXT escaping: backslash, semicolon, comma
// and line breaks.
func escapeText(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch r {
		case '\\':
			sb.WriteString(`\\`)
		case ';':
			sb.WriteString(`\;`)
		case ',':
			sb.WriteString(`\,`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			// swallowed; a following \n renders the break
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// ExportCalendar serializes the task snapshot into a complete VCALENDAR
// document. Tasks without a due time contribute no event and are counted in
// skipped; a single undatable record never fails the export. Output is
// deterministic: the same snapshot yields identical bytes.
func ExportCalendar(tasks []model.Task) (data []byte, skipped int) {
	var sb strings.Builder
	sb.WriteString("BEGIN:VCALENDAR\r\n")
	sb.WriteString("VERSION:2.0\r\n")
	sb.WriteString("PRODID:" + icsProdID + "\r\n")

	for _, task := range tasks {
		if task.DueAt == nil {
			skipped++
			continue
		}
		stamp := task.DueAt.UTC().Format(icsTimeLayout)
		ev := component{
			name: "VEVENT",
			props: []property{
				{name: "UID", value: fmt.Sprintf("task-%d@%s", task.ID, icsUIDDomain), raw: true},
				{name: "DTSTAMP", value: stamp, raw: true},
				{name: "DTSTART", value: stamp, raw: true},
				{name: "SUMMARY", value: task.Description},
			},
		}
		ev.render(&sb)
	}

	sb.WriteString("END:VCALENDAR\r\n")
	return []byte(sb.String()), skipped
}
