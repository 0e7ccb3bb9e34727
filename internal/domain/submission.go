package domain

import (
	"fmt"
	"time"
)

// SubmissionKind identifies one of the four lead-capture collections.
type SubmissionKind string

const (
	KindCreators SubmissionKind = "creators"
	KindBrands   SubmissionKind = "brands"
	KindContacts SubmissionKind = "contacts"
	KindWaitlist SubmissionKind = "waitlist"
)

// ParseKind maps a request-supplied type string to a SubmissionKind.
func ParseKind(s string) (SubmissionKind, error) {
	switch SubmissionKind(s) {
	case KindCreators, KindBrands, KindContacts, KindWaitlist:
		return SubmissionKind(s), nil
	}
	return "", fmt.Errorf("unknown submission type: %q", s)
}

// Status tracks the moderation state of a submitted record.
type Status string

const (
	StatusNew       Status = "new"
	StatusReviewed  Status = "reviewed"
	StatusContacted Status = "contacted"
	StatusArchived  Status = "archived"
)

// Valid reports whether s is a known moderation status.
func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusReviewed, StatusContacted, StatusArchived:
		return true
	}
	return false
}

// ContactTopic is the enumerated subject of a contact message.
type ContactTopic string

const (
	TopicCreatorEnquiry ContactTopic = "Creator enquiry"
	TopicBrandEnquiry   ContactTopic = "Brand enquiry"
	TopicGeneral        ContactTopic = "General"
)

// Valid reports whether t is a known contact topic.
func (t ContactTopic) Valid() bool {
	switch t {
	case TopicCreatorEnquiry, TopicBrandEnquiry, TopicGeneral:
		return true
	}
	return false
}

// Moderation carries the admin-mutable fields shared by every record kind.
// Everything else on a record is immutable after creation.
type Moderation struct {
	Status     Status     `json:"status"`
	Notes      string     `json:"notes,omitempty"`
	ReviewedAt *time.Time `json:"reviewedAt,omitempty"`
}

// CreatorApplication is a creator's application to join the agency roster.
type CreatorApplication struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Portfolio string    `json:"portfolio,omitempty"`
	Niches    string    `json:"niches,omitempty"`
	Message   string    `json:"message,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	Moderation
}

// BrandEnquiry is an inbound enquiry from a brand looking for creators.
type BrandEnquiry struct {
	ID        string    `json:"id"`
	Company   string    `json:"company"`
	Contact   string    `json:"contact"`
	Email     string    `json:"email"`
	JobTitle  string    `json:"jobTitle,omitempty"`
	Industry  string    `json:"industry,omitempty"`
	Message   string    `json:"message,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	Moderation
}

// ContactMessage is a general contact-form message.
type ContactMessage struct {
	ID        string       `json:"id"`
	Name      string       `json:"name,omitempty"`
	Email     string       `json:"email"`
	Type      ContactTopic `json:"type"`
	Message   string       `json:"message,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
	Moderation
}

// WaitlistEntry is an academy waitlist signup. Email is unique; repeat
// signups are treated as idempotent success, never an error.
type WaitlistEntry struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	Moderation
}

// Counts holds the per-kind record totals shown on the dashboard overview.
type Counts struct {
	Creators int32 `json:"creators"`
	Brands   int32 `json:"brands"`
	Contacts int32 `json:"contacts"`
	Waitlist int32 `json:"waitlist"`
}
