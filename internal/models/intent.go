package models

// Intent is the coarse category of request the command processor acts on.
type Intent string

const (
	IntentVirtualCard     Intent = "virtual_card"
	IntentTransaction     Intent = "transaction"
	IntentExpenseCategory Intent = "expense_category"
	IntentReceipt         Intent = "receipt"
	IntentUnknown         Intent = "unknown"
)

// AllIntents returns every intent the assistant can act on, in dispatch
// priority order
func AllIntents() []Intent {
	return []Intent{
		IntentVirtualCard,
		IntentTransaction,
		IntentExpenseCategory,
		IntentReceipt,
		IntentUnknown,
	}
}

func (i Intent) String() string {
	return string(i)
}

// IsActionable reports whether the intent maps to a concrete capability
func (i Intent) IsActionable() bool {
	return i != IntentUnknown && i != ""
}
