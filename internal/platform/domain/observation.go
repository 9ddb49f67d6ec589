package domain

import (
	"fmt"
	"strings"
	"time"
)

// Status is an observation's position in the rectify/verify workflow.
// The set is closed; the canonical spelling uses underscores everywhere,
// including the rework state a manager sends an observation back to.
type Status string

const (
	// StatusOpen is the initial state after creation.
	StatusOpen Status = "OPEN"
	// StatusAwaitingVerification means the action owner submitted a
	// rectification and a manager has yet to rule on it.
	StatusAwaitingVerification Status = "AWAITING_VERIFICATION"
	// StatusInProgress is the rework state after a rejected verification.
	StatusInProgress Status = "IN_PROGRESS"
	// StatusClosed is terminal; set only by an approved verification.
	StatusClosed Status = "CLOSED"
)

// ParseStatus validates a stored status string against the closed set.
func ParseStatus(s string) (Status, error) {
	switch st := Status(strings.ToUpper(strings.TrimSpace(s))); st {
	case StatusOpen, StatusAwaitingVerification, StatusInProgress, StatusClosed:
		return st, nil
	default:
		return "", fmt.Errorf("unknown observation status %q", s)
	}
}

// Severity grades an observation's risk.
type Severity string

const (
	SeverityLow    Severity = "LOW"
	SeverityMedium Severity = "MEDIUM"
	SeverityHigh   Severity = "HIGH"
)

// ParseSeverity validates a severity string against the closed set.
func ParseSeverity(s string) (Severity, error) {
	switch sv := Severity(strings.ToUpper(strings.TrimSpace(s))); sv {
	case SeverityLow, SeverityMedium, SeverityHigh:
		return sv, nil
	default:
		return "", fmt.Errorf("unknown severity %q", s)
	}
}

// Observation is a logged safety finding, tenant-scoped, moving through the
// create → rectify → verify workflow.
type Observation struct {
	ID             string
	OrganizationID string
	Title          string
	Description    string
	LocationID     string
	Severity       Severity
	Status         Status
	ObserverID     string // Creator
	AssignedTo     string // Action owner; empty until assigned

	// Rectification detail, filled by the action owner.
	RectificationNotes string
	PhotoAfter         string // Evidence reference

	TargetDate   *time.Time
	DateObserved time.Time
	DateClosed   *time.Time
	IsArchived   bool // Orthogonal to Status; archived rows keep their state
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Overdue reports whether the observation blew past its target date without
// being closed.
func (o Observation) Overdue(now time.Time) bool {
	return o.Status != StatusClosed && o.TargetDate != nil && o.TargetDate.Before(now)
}
