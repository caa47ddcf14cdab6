package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/postwave/postwave/pkg/domain/types"
)

func TestDecisionValidation(t *testing.T) {
	tests := []struct {
		name     string
		decision types.Decision
		expected bool
	}{
		{"Valid published", types.DecisionPublished, true},
		{"Valid review", types.DecisionReview, true},
		{"Valid blocked", types.DecisionBlocked, true},
		{"Invalid empty", types.Decision(""), false},
		{"Invalid mixed case", types.Decision("Published"), false},
		{"Invalid unknown", types.Decision("pending"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.decision.IsValid()
			if result != tt.expected {
				t.Errorf("Decision(%q).IsValid() = %v, want %v", tt.decision, result, tt.expected)
			}
		})
	}
}

func TestDecisionRank(t *testing.T) {
	gt.True(t, types.DecisionBlocked.Rank() > types.DecisionReview.Rank())
	gt.True(t, types.DecisionReview.Rank() > types.DecisionPublished.Rank())
	gt.True(t, types.DecisionPublished.Rank() > types.Decision("bogus").Rank())
}

func TestDecisionIsVisible(t *testing.T) {
	gt.True(t, types.DecisionPublished.IsVisible())
	gt.False(t, types.DecisionReview.IsVisible())
	gt.False(t, types.DecisionBlocked.IsVisible())
}

func TestPostSourceValidation(t *testing.T) {
	gt.True(t, types.PostSourceUser.IsValid())
	gt.True(t, types.PostSourceAIAssist.IsValid())
	gt.False(t, types.PostSource("bot").IsValid())
	gt.False(t, types.PostSource("").IsValid())
}

func TestHashtagDisplay(t *testing.T) {
	gt.Equal(t, types.Hashtag("golang").Display(), "#golang")
	gt.Equal(t, types.Hashtag("golang").String(), "golang")
}

func TestNewIDsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := types.NewPostID().String()
		gt.False(t, seen[id])
		seen[id] = true
	}

	sessionID, err := types.NewSessionID()
	gt.NoError(t, err)
	gt.NotEqual(t, sessionID.String(), "")
}
