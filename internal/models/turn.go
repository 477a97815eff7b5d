package models

// Role identifies the author of a turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one message in the conversation log. Turns are created once,
// appended once, and never mutated; their creation order is the
// conversation order.
type Turn struct {
	ID      string
	Role    Role
	Content DisplayContent
}

// ContentKind discriminates the DisplayContent union.
type ContentKind int

const (
	// KindPlainText is an opaque reply shown verbatim.
	KindPlainText ContentKind = iota
	// KindStructuredAnalysis is a reply carrying the analysis payload.
	KindStructuredAnalysis
)

// Placeholders for analysis fields the backend left out.
const (
	PlaceholderFinalAnswer = "Not provided"
	PlaceholderField       = "N/A"
)

// DisplayContent is the renderable form of a reply: either plain text or a
// structured analysis. Kind selects which representation is populated.
type DisplayContent struct {
	Kind     ContentKind
	Text     string
	Analysis Analysis
}

// Analysis holds the fields of a structured analysis payload. A nil-able
// string models "absent": the backend may omit any of the four fields.
type Analysis struct {
	FinalAnswer               *string
	RiskAssessment            *string
	DocumentationAndApprovals *string
	ProcurementStrategy       *string
}

// PlainText wraps an opaque reply string.
func PlainText(text string) DisplayContent {
	return DisplayContent{Kind: KindPlainText, Text: text}
}

// StructuredAnalysis wraps an analysis payload.
func StructuredAnalysis(a Analysis) DisplayContent {
	return DisplayContent{Kind: KindStructuredAnalysis, Analysis: a}
}

// FinalAnswerText returns the final answer or its placeholder.
func (a Analysis) FinalAnswerText() string {
	return orPlaceholder(a.FinalAnswer, PlaceholderFinalAnswer)
}

// RiskAssessmentText returns the risk assessment or its placeholder.
func (a Analysis) RiskAssessmentText() string {
	return orPlaceholder(a.RiskAssessment, PlaceholderField)
}

// DocumentationText returns the documentation and approvals field or its placeholder.
func (a Analysis) DocumentationText() string {
	return orPlaceholder(a.DocumentationAndApprovals, PlaceholderField)
}

// ProcurementStrategyText returns the procurement strategy or its placeholder.
func (a Analysis) ProcurementStrategyText() string {
	return orPlaceholder(a.ProcurementStrategy, PlaceholderField)
}

func orPlaceholder(s *string, placeholder string) string {
	if s == nil {
		return placeholder
	}
	return *s
}

// StringPtr is a convenience for building Analysis values in tests and parsers.
func StringPtr(s string) *string {
	return &s
}
