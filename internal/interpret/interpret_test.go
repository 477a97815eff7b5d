package interpret

import (
	"testing"

	"github.com/diogo/procchat/internal/models"
)

func TestReply_PlainProse(t *testing.T) {
	raw := "Hello! Does an existing arrangement exist for this contract?"

	got := Reply(raw)
	if got.Kind != models.KindPlainText {
		t.Fatalf("Kind = %v, want KindPlainText", got.Kind)
	}
	if got.Text != raw {
		t.Errorf("Text = %q, want the original string verbatim", got.Text)
	}
}

func TestReply_FullAnalysis(t *testing.T) {
	raw := `{"analysis":{"final_answer":"Approve","analysis":{` +
		`"risk_assessment":"Low",` +
		`"documentation_and_approvals":"PO referencing the PSA",` +
		`"procurement_strategy":"Single quote"}}}`

	got := Reply(raw)
	if got.Kind != models.KindStructuredAnalysis {
		t.Fatalf("Kind = %v, want KindStructuredAnalysis", got.Kind)
	}

	a := got.Analysis
	if a.FinalAnswerText() != "Approve" {
		t.Errorf("FinalAnswerText() = %q, want Approve", a.FinalAnswerText())
	}
	if a.RiskAssessmentText() != "Low" {
		t.Errorf("RiskAssessmentText() = %q, want Low", a.RiskAssessmentText())
	}
	if a.DocumentationText() != "PO referencing the PSA" {
		t.Errorf("DocumentationText() = %q", a.DocumentationText())
	}
	if a.ProcurementStrategyText() != "Single quote" {
		t.Errorf("ProcurementStrategyText() = %q", a.ProcurementStrategyText())
	}
}

func TestReply_PartialAnalysis(t *testing.T) {
	// Missing nested fields map to absent and render as placeholders.
	raw := `{"analysis":{"final_answer":"Approve","analysis":{"risk_assessment":"Low"}}}`

	got := Reply(raw)
	if got.Kind != models.KindStructuredAnalysis {
		t.Fatalf("Kind = %v, want KindStructuredAnalysis", got.Kind)
	}

	a := got.Analysis
	if a.FinalAnswer == nil || *a.FinalAnswer != "Approve" {
		t.Errorf("FinalAnswer = %v, want Approve", a.FinalAnswer)
	}
	if a.RiskAssessment == nil || *a.RiskAssessment != "Low" {
		t.Errorf("RiskAssessment = %v, want Low", a.RiskAssessment)
	}
	if a.DocumentationAndApprovals != nil {
		t.Errorf("DocumentationAndApprovals = %v, want absent", a.DocumentationAndApprovals)
	}
	if a.ProcurementStrategy != nil {
		t.Errorf("ProcurementStrategy = %v, want absent", a.ProcurementStrategy)
	}
	if a.DocumentationText() != models.PlaceholderField {
		t.Errorf("DocumentationText() = %q, want %q", a.DocumentationText(), models.PlaceholderField)
	}
}

func TestReply_Fallbacks(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"malformed json", `{"analysis": {"final_answer": "Appro`},
		{"json without analysis", `{"response": "hi there"}`},
		{"analysis is a string", `{"analysis": "low risk"}`},
		{"analysis is an array", `{"analysis": ["low"]}`},
		{"analysis is null", `{"analysis": null}`},
		{"json scalar", `42`},
		{"json array", `["a", "b"]`},
		{"empty string", ""},
		{"whitespace", "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reply(tt.raw)
			if got.Kind != models.KindPlainText {
				t.Fatalf("Kind = %v, want KindPlainText", got.Kind)
			}
			if got.Text != tt.raw {
				t.Errorf("Text = %q, want %q verbatim", got.Text, tt.raw)
			}
		})
	}
}

func TestReply_ExplicitNullFieldIsAbsent(t *testing.T) {
	raw := `{"analysis":{"final_answer":null,"analysis":{}}}`

	got := Reply(raw)
	if got.Kind != models.KindStructuredAnalysis {
		t.Fatalf("Kind = %v, want KindStructuredAnalysis", got.Kind)
	}
	if got.Analysis.FinalAnswer != nil {
		t.Errorf("FinalAnswer = %v, want absent", got.Analysis.FinalAnswer)
	}
	if got.Analysis.FinalAnswerText() != models.PlaceholderFinalAnswer {
		t.Errorf("FinalAnswerText() = %q, want %q",
			got.Analysis.FinalAnswerText(), models.PlaceholderFinalAnswer)
	}
}
