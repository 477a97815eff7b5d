package render

import (
	"strings"
	"testing"

	"github.com/diogo/procchat/internal/models"
)

func TestAnalysisMarkdown_AllFields(t *testing.T) {
	a := models.Analysis{
		FinalAnswer:               models.StringPtr("Use a Goods and Services Contract."),
		RiskAssessment:            models.StringPtr("Medium"),
		DocumentationAndApprovals: models.StringPtr("PO referencing standard terms"),
		ProcurementStrategy:       models.StringPtr("Three quotes"),
	}

	md := AnalysisMarkdown(a)

	for _, want := range []string{
		"### Final answer",
		"Use a Goods and Services Contract.",
		"**Risk assessment:** Medium",
		"**Documentation & approvals:** PO referencing standard terms",
		"**Procurement strategy:** Three quotes",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("AnalysisMarkdown() missing %q in:\n%s", want, md)
		}
	}
}

func TestAnalysisMarkdown_Placeholders(t *testing.T) {
	md := AnalysisMarkdown(models.Analysis{})

	if !strings.Contains(md, "Not provided") {
		t.Errorf("AnalysisMarkdown() missing final answer placeholder:\n%s", md)
	}
	if strings.Count(md, "N/A") != 3 {
		t.Errorf("AnalysisMarkdown() should show N/A for the three nested fields:\n%s", md)
	}
}

func TestAnalysisPlain(t *testing.T) {
	a := models.Analysis{FinalAnswer: models.StringPtr("Approve")}

	got := AnalysisPlain(a)

	if !strings.Contains(got, "Final answer: Approve") {
		t.Errorf("AnalysisPlain() missing final answer:\n%s", got)
	}
	if !strings.Contains(got, "Risk assessment: N/A") {
		t.Errorf("AnalysisPlain() missing risk placeholder:\n%s", got)
	}
}

func TestContentPlain(t *testing.T) {
	prose := models.PlainText("just some text")
	if got := ContentPlain(prose); got != "just some text" {
		t.Errorf("ContentPlain(plain) = %q, want verbatim text", got)
	}

	structured := models.StructuredAnalysis(models.Analysis{FinalAnswer: models.StringPtr("Approve")})
	if got := ContentPlain(structured); !strings.Contains(got, "Approve") {
		t.Errorf("ContentPlain(structured) = %q, want analysis layout", got)
	}
}

func TestMarkdownWithWidth(t *testing.T) {
	out, err := MarkdownWithWidth("# Heading\n\nSome body text.", 60)
	if err != nil {
		t.Fatalf("MarkdownWithWidth() error = %v", err)
	}
	if !strings.Contains(out, "Heading") {
		t.Errorf("rendered output missing heading text:\n%s", out)
	}
}
