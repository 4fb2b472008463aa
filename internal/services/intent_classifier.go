package services

import (
	"strings"

	"finvoice/internal/models"
)

// intentRule maps a keyword set to an intent. Rules are evaluated in order
// and the first rule with any keyword present wins, so an utterance touching
// several topics resolves by priority, not by keyword position.
type intentRule struct {
	intent   models.Intent
	keywords []string
}

var intentRules = []intentRule{
	{models.IntentVirtualCard, []string{"virtual card", "virtual cards"}},
	{models.IntentTransaction, []string{"transaction", "transactions", "spent", "spend"}},
	{models.IntentExpenseCategory, []string{"category", "categories", "expense"}},
	{models.IntentReceipt, []string{"receipt", "upload"}},
}

// IntentClassifier is a pure keyword-substring classifier. Matching is
// deliberately simple and order-sensitive; callers depend on the exact
// priority behavior.
type IntentClassifier struct{}

func NewIntentClassifier() *IntentClassifier {
	return &IntentClassifier{}
}

// Classify returns the intent of an utterance, or IntentUnknown when no
// keyword matches. Matching is case-insensitive.
func (c *IntentClassifier) Classify(utterance string) models.Intent {
	normalized := strings.ToLower(utterance)

	for _, rule := range intentRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(normalized, keyword) {
				return rule.intent
			}
		}
	}
	return models.IntentUnknown
}
