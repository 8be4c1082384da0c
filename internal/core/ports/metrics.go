package ports

import "orderwizard/internal/core/domain/model/draft"

// WizardMetrics records how sellers move through the wizard.
type WizardMetrics interface {
	// SectionSubmitted counts a submission of section; accepted is false when
	// it failed validation or was refused by an external service.
	SectionSubmitted(section draft.Section, accepted bool)

	// OrderPlaced counts a draft turned into an order.
	OrderPlaced()
}

// NopWizardMetrics discards everything.
type NopWizardMetrics struct{}

func (NopWizardMetrics) SectionSubmitted(draft.Section, bool) {}
func (NopWizardMetrics) OrderPlaced()                        {}
