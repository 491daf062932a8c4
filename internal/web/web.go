package web

import (
	"embed"
	"html/template"
	"time"

	"go-hris-web/internal/attendance"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Templates parses every page and partial. Pages are looked up by file name,
// e.g. "employees.html".
func Templates() (*template.Template, error) {
	return template.New("").Funcs(FuncMap()).ParseFS(templatesFS, "templates/*.html")
}

func FuncMap() template.FuncMap {
	return template.FuncMap{
		"displayDate": displayDate,
		"statusClass": statusClass,
	}
}

// displayDate renders YYYY-MM-DD as dd/mm/yy.
func displayDate(date string) string {
	t, err := time.Parse(attendance.DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format("02/01/06")
}

func statusClass(s attendance.Status) string {
	if s == attendance.StatusPresent {
		return "chip chip-present"
	}
	return "chip chip-absent"
}
