package services

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"finvoice/internal/models"
)

type IntentClassifierTestSuite struct {
	suite.Suite
	classifier *IntentClassifier
}

func TestIntentClassifierSuite(t *testing.T) {
	suite.Run(t, new(IntentClassifierTestSuite))
}

func (s *IntentClassifierTestSuite) SetupTest() {
	s.classifier = NewIntentClassifier()
}

func (s *IntentClassifierTestSuite) TestKeywordSets() {
	tests := []struct {
		utterance string
		expected  models.Intent
	}{
		{"show my virtual cards", models.IntentVirtualCard},
		{"do I have a virtual card", models.IntentVirtualCard},
		{"list my transactions", models.IntentTransaction},
		{"how much have I spent", models.IntentTransaction},
		{"how much did I spend this month", models.IntentTransaction},
		{"what is my spending like", models.IntentTransaction},
		{"what expense categories do I have", models.IntentExpenseCategory},
		{"show my categories", models.IntentExpenseCategory},
		{"which category is this", models.IntentExpenseCategory},
		{"upload this receipt", models.IntentReceipt},
		{"I want to upload something", models.IntentReceipt},
		{"xyz nonsense", models.IntentUnknown},
		{"", models.IntentUnknown},
	}

	for _, tt := range tests {
		s.Equal(tt.expected, s.classifier.Classify(tt.utterance), "utterance: %q", tt.utterance)
	}
}

func (s *IntentClassifierTestSuite) TestPriorityOrder() {
	// Rules are evaluated top-down, so mixed-topic utterances resolve to
	// the higher-priority intent
	s.Equal(models.IntentVirtualCard, s.classifier.Classify("virtual card transaction"))
	s.Equal(models.IntentVirtualCard, s.classifier.Classify("show virtual card expense category receipt"))
	s.Equal(models.IntentTransaction, s.classifier.Classify("transactions in the food category"))
	s.Equal(models.IntentExpenseCategory, s.classifier.Classify("upload to my expense categories"))
}

func (s *IntentClassifierTestSuite) TestCaseInsensitive() {
	s.Equal(models.IntentVirtualCard, s.classifier.Classify("Show My VIRTUAL CARDS"))
	s.Equal(models.IntentTransaction, s.classifier.Classify("How Much Have I SPENT"))
}

func (s *IntentClassifierTestSuite) TestPureFunction() {
	// Classification carries no state between calls
	s.Equal(models.IntentReceipt, s.classifier.Classify("upload receipt"))
	s.Equal(models.IntentUnknown, s.classifier.Classify("hello there"))
	s.Equal(models.IntentReceipt, s.classifier.Classify("upload receipt"))
}
