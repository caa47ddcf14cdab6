package types

// Decision is the publication state assigned by content moderation
type Decision string

const (
	DecisionPublished Decision = "published"
	DecisionReview    Decision = "review"
	DecisionBlocked   Decision = "blocked"
)

// String returns the string representation of the decision
func (d Decision) String() string {
	return string(d)
}

// IsValid checks if the decision is valid
func (d Decision) IsValid() bool {
	switch d {
	case DecisionPublished, DecisionReview, DecisionBlocked:
		return true
	default:
		return false
	}
}

// Rank orders decisions by severity: blocked > review > published.
// Unknown values rank below published.
func (d Decision) Rank() int {
	switch d {
	case DecisionBlocked:
		return 2
	case DecisionReview:
		return 1
	case DecisionPublished:
		return 0
	default:
		return -1
	}
}

// IsVisible returns true if content with this decision may be shown publicly
func (d Decision) IsVisible() bool {
	return d == DecisionPublished
}

// PostSource describes who authored the post text
type PostSource string

const (
	PostSourceUser     PostSource = "user"
	PostSourceAIAssist PostSource = "ai_assist"
)

// String returns the string representation
func (s PostSource) String() string {
	return string(s)
}

// IsValid checks if the source is valid
func (s PostSource) IsValid() bool {
	switch s {
	case PostSourceUser, PostSourceAIAssist:
		return true
	default:
		return false
	}
}

// AIRequestType identifies the assistant operation
type AIRequestType string

const (
	AIRequestTypeGeneratePost AIRequestType = "generate_post"
	AIRequestTypeRewrite      AIRequestType = "rewrite"
)

// String returns the string representation
func (t AIRequestType) String() string {
	return string(t)
}

// AIRequestStatus is the outcome of an assistant call
type AIRequestStatus string

const (
	AIRequestStatusSuccess AIRequestStatus = "success"
	AIRequestStatusError   AIRequestStatus = "error"
)

// String returns the string representation
func (s AIRequestStatus) String() string {
	return string(s)
}
