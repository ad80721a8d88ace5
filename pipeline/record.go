package pipeline

import (
	"errors"

	"github.com/rupeetrack/receiptkit/categorize"
	"github.com/rupeetrack/receiptkit/extract"
)

// Record is the terminal aggregate of one successful processing invocation,
// shaped for flat JSON serialization at the service boundary.
type Record struct {
	Amount             float64               `json:"amount"`
	Date               string                `json:"date"`
	Merchant           string                `json:"merchant,omitempty"`
	Category           string                `json:"category"`
	CategoryConfidence categorize.Confidence `json:"category_confidence"`
	CategoryReason     string                `json:"category_reason"`
	Description        string                `json:"description"`
	Items              []extract.LineItem    `json:"items"`
	RawText            string                `json:"raw_text"`
	NeedsConfirmation  bool                  `json:"needs_confirmation"`
	Success            bool                  `json:"success"`
}

// Failure is the serialized shape of a failed invocation.
type Failure struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	ErrorType string `json:"error_type"`
	RawText   string `json:"raw_text,omitempty"`
}

// FailureFrom converts a Process error into its reportable form.
func FailureFrom(err error) Failure {
	var pe *Error
	if errors.As(err, &pe) {
		return Failure{
			Error:     pe.Message,
			ErrorType: pe.Class(),
			RawText:   pe.RawText,
		}
	}
	return Failure{
		Error:     err.Error(),
		ErrorType: ClassProcessing,
	}
}
