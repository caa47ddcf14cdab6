package types

import (
	"github.com/google/uuid"
)

// UserID represents a user identifier
type UserID string

// String returns the string representation
func (id UserID) String() string {
	return string(id)
}

// NewUserID creates a new UserID
func NewUserID() UserID {
	return UserID(uuid.New().String())
}

// PostID represents a post identifier (UUID v7, time ordered)
type PostID string

// String returns the string representation
func (id PostID) String() string {
	return string(id)
}

// NewPostID creates a new PostID. Falls back to a random UUID when the
// clock-based generator fails.
func NewPostID() PostID {
	return PostID(newTimeOrderedID())
}

// CommentID represents a comment identifier
type CommentID string

// String returns the string representation
func (id CommentID) String() string {
	return string(id)
}

// NewCommentID creates a new CommentID
func NewCommentID() CommentID {
	return CommentID(newTimeOrderedID())
}

// ImageID represents a stored post image identifier
type ImageID string

// String returns the string representation
func (id ImageID) String() string {
	return string(id)
}

// NewImageID creates a new ImageID
func NewImageID() ImageID {
	return ImageID(newTimeOrderedID())
}

// SessionID represents a session identifier
type SessionID string

// String returns the string representation
func (id SessionID) String() string {
	return string(id)
}

// NewSessionID creates a new SessionID using UUID v7
func NewSessionID() (SessionID, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return SessionID(id.String()), nil
}

// AIRequestID represents an AI assistant request log identifier
type AIRequestID string

// String returns the string representation
func (id AIRequestID) String() string {
	return string(id)
}

// NewAIRequestID creates a new AIRequestID
func NewAIRequestID() AIRequestID {
	return AIRequestID(newTimeOrderedID())
}

// Hashtag is a normalized tag without the leading '#'
type Hashtag string

// String returns the string representation
func (h Hashtag) String() string {
	return string(h)
}

// Display returns the tag with a leading '#'
func (h Hashtag) Display() string {
	return "#" + string(h)
}

func newTimeOrderedID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
