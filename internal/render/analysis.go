package render

import (
	"fmt"
	"strings"

	"github.com/diogo/procchat/internal/models"
)

// Labels of the analysis layout. Absent fields show the placeholders the
// accessors supply ("Not provided" / "N/A").
const (
	labelRiskAssessment      = "Risk assessment"
	labelDocumentation       = "Documentation & approvals"
	labelProcurementStrategy = "Procurement strategy"
)

// AnalysisMarkdown builds the markdown document for a structured analysis.
// Kept separate from terminal rendering so the layout is testable as text.
func AnalysisMarkdown(a models.Analysis) string {
	var b strings.Builder

	b.WriteString("### Final answer\n\n")
	b.WriteString(a.FinalAnswerText())
	b.WriteString("\n\n")

	fields := []struct {
		label string
		value string
	}{
		{labelRiskAssessment, a.RiskAssessmentText()},
		{labelDocumentation, a.DocumentationText()},
		{labelProcurementStrategy, a.ProcurementStrategyText()},
	}
	for _, f := range fields {
		fmt.Fprintf(&b, "**%s:** %s\n\n", f.label, f.value)
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}

// AnalysisPlain is the unstyled fallback layout, used when glamour
// rendering fails or output is not a terminal.
func AnalysisPlain(a models.Analysis) string {
	var b strings.Builder

	b.WriteString("Final answer: ")
	b.WriteString(a.FinalAnswerText())
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s: %s\n", labelRiskAssessment, a.RiskAssessmentText())
	fmt.Fprintf(&b, "%s: %s\n", labelDocumentation, a.DocumentationText())
	fmt.Fprintf(&b, "%s: %s\n", labelProcurementStrategy, a.ProcurementStrategyText())

	return b.String()
}

// ContentPlain renders a reply without terminal styling.
func ContentPlain(c models.DisplayContent) string {
	if c.Kind == models.KindStructuredAnalysis {
		return AnalysisPlain(c.Analysis)
	}
	return c.Text
}
