// Package interpret turns raw reply strings into renderable content.
//
// The backend answers with a string that is either free-form prose or a
// JSON document carrying a structured analysis. Interpretation is a
// best-effort shape check, not schema validation: anything that does not
// look like an analysis document is shown verbatim.
package interpret

import (
	"github.com/tidwall/gjson"

	"github.com/diogo/procchat/internal/models"
)

// Paths into the analysis document.
const (
	pathAnalysis            = "analysis"
	pathFinalAnswer         = "analysis.final_answer"
	pathRiskAssessment      = "analysis.analysis.risk_assessment"
	pathDocumentation       = "analysis.analysis.documentation_and_approvals"
	pathProcurementStrategy = "analysis.analysis.procurement_strategy"
)

// Reply interprets a raw reply string. It returns StructuredAnalysis when
// the string is a JSON object exposing an "analysis" object, and PlainText
// with the original string otherwise. It never fails.
func Reply(raw string) models.DisplayContent {
	if !gjson.Valid(raw) {
		return models.PlainText(raw)
	}

	doc := gjson.Parse(raw)
	if !doc.IsObject() {
		return models.PlainText(raw)
	}

	analysis := doc.Get(pathAnalysis)
	if !analysis.Exists() || !analysis.IsObject() {
		return models.PlainText(raw)
	}

	return models.StructuredAnalysis(models.Analysis{
		FinalAnswer:               stringField(doc, pathFinalAnswer),
		RiskAssessment:            stringField(doc, pathRiskAssessment),
		DocumentationAndApprovals: stringField(doc, pathDocumentation),
		ProcurementStrategy:       stringField(doc, pathProcurementStrategy),
	})
}

// stringField extracts a field as a string pointer, mapping a missing or
// null field to absent (nil).
func stringField(doc gjson.Result, path string) *string {
	field := doc.Get(path)
	if !field.Exists() || field.Type == gjson.Null {
		return nil
	}
	s := field.String()
	return &s
}
