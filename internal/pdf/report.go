// internal/pdf/report.go
package pdf

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"opsboard/internal/models"
)

// ReportGenerator renders project task reports.
type ReportGenerator struct{}

func NewReportGenerator() *ReportGenerator {
	return &ReportGenerator{}
}

// ProjectReport renders a one-page summary followed by the task table.
func (g *ReportGenerator) ProjectReport(summary *models.ProjectSummary, tasks []models.Task) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.AddPage()

	doc.SetFont("Arial", "B", 16)
	doc.Cell(0, 10, fmt.Sprintf("Project report: %s", summary.Project.Name))
	doc.Ln(12)

	doc.SetFont("Arial", "", 11)
	doc.Cell(0, 7, fmt.Sprintf("Tasks: %d   Completed: %d%%   Overdue: %d",
		summary.Total, summary.Percentage, summary.Overdue))
	doc.Ln(7)
	doc.Cell(0, 7, fmt.Sprintf("todo: %d   in_progress: %d   completed: %d",
		summary.ByStatus[models.StatusTodo],
		summary.ByStatus[models.StatusInProgress],
		summary.ByStatus[models.StatusCompleted]))
	doc.Ln(12)

	doc.SetFont("Arial", "B", 10)
	doc.CellFormat(15, 8, "ID", "1", 0, "C", false, 0, "")
	doc.CellFormat(95, 8, "Title", "1", 0, "L", false, 0, "")
	doc.CellFormat(30, 8, "Status", "1", 0, "C", false, 0, "")
	doc.CellFormat(25, 8, "Priority", "1", 0, "C", false, 0, "")
	doc.CellFormat(25, 8, "Deadline", "1", 1, "C", false, 0, "")

	doc.SetFont("Arial", "", 10)
	for _, t := range tasks {
		deadline := "-"
		if t.Deadline != nil {
			deadline = t.Deadline.Format("2006-01-02")
		}
		doc.CellFormat(15, 7, strconv.FormatInt(t.ID, 10), "1", 0, "C", false, 0, "")
		doc.CellFormat(95, 7, truncate(t.Title, 55), "1", 0, "L", false, 0, "")
		doc.CellFormat(30, 7, string(t.Status), "1", 0, "C", false, 0, "")
		doc.CellFormat(25, 7, string(t.Priority), "1", 0, "C", false, 0, "")
		doc.CellFormat(25, 7, deadline, "1", 1, "C", false, 0, "")
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// truncate counts runes, not bytes, so a multi-byte title is never cut
// mid-character.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
