package sitesdk

import "time"

// ErrorResponse is the standard error payload returned by every endpoint.
type ErrorResponse struct {
	// Error is the machine-readable code (e.g., "capacity_exceeded")
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error
	ErrorDescription string `json:"error_description"`
}

// SignupRequest provisions a new organization and its owning user.
type SignupRequest struct {
	OrganizationName   string `json:"organization_name"`
	OrganizationDomain string `json:"organization_domain"`
	Email              string `json:"email"`
	Password           string `json:"password"`
}

// LoginRequest is the password grant.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse is the public shape of a user account.
type UserResponse struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	OrganizationID string    `json:"organization_id,omitempty"`
	Roles          []string  `json:"roles"`
	Superuser      bool      `json:"superuser,omitempty"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"created_at"`
}

// OrganizationResponse is the public shape of an organization.
type OrganizationResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Domain    string    `json:"domain"`
	CreatedAt time.Time `json:"created_at"`
}

// PlanResponse summarises the plan governing an organization's subscription.
type PlanResponse struct {
	Name               string `json:"name"`
	PriceMonthlyCents  int64  `json:"price_monthly_cents"`
	MaxUsers           int    `json:"max_users"`
	MaxObservations    int    `json:"max_observations"`
	AdvancedDashboard  bool   `json:"advanced_dashboard"`
	ExportsEnabled     bool   `json:"exports_enabled"`
	SubscriptionActive bool   `json:"subscription_active"`
}

// OrganizationDetailResponse is the current tenant with its entitlements.
type OrganizationDetailResponse struct {
	Organization OrganizationResponse `json:"organization"`
	Plan         PlanResponse         `json:"plan"`
}

// MemberListResponse lists an organization's user accounts.
type MemberListResponse struct {
	Members []UserResponse `json:"members"`
}

// UpdateMemberRolesRequest replaces a member's role set.
type UpdateMemberRolesRequest struct {
	Roles []string `json:"roles"`
}

// SessionResponse carries an issued access token.
type SessionResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresIn   int64        `json:"expires_in"`
	User        UserResponse `json:"user"`
}

// SignupResponse is the freshly provisioned tenant plus an active session.
type SignupResponse struct {
	Organization OrganizationResponse `json:"organization"`
	SessionResponse
}

// InviteRequest mints an invite. TTLSeconds of 0 uses the server default; a
// negative value requests an invite that never expires.
type InviteRequest struct {
	Email      string `json:"email"`
	Role       string `json:"role"`
	TTLSeconds int64  `json:"ttl_seconds,omitempty"`
}

// InviteResponse returns the raw invite token exactly once.
type InviteResponse struct {
	InviteToken string     `json:"invite_token"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
}

// InviteSummary is a minted invite without its token.
type InviteSummary struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	Used      bool       `json:"used"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// InviteListResponse is a manager's view of their organization's invites.
type InviteListResponse struct {
	Invites []InviteSummary `json:"invites"`
}

// AcceptInviteRequest redeems an invite token.
type AcceptInviteRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

// DemoRequestRequest is the public request-a-demo form.
type DemoRequestRequest struct {
	FullName       string `json:"full_name"`
	Email          string `json:"email"`
	WhatsappNumber string `json:"whatsapp_number,omitempty"`
	Company        string `json:"company,omitempty"`
	JobTitle       string `json:"job_title,omitempty"`
	Message        string `json:"message,omitempty"`
}

// DemoRequestResponse acknowledges a stored demo request.
type DemoRequestResponse struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// DemoRequestSummary is one stored lead in the back-office list.
type DemoRequestSummary struct {
	ID             string    `json:"id"`
	FullName       string    `json:"full_name"`
	Email          string    `json:"email"`
	WhatsappNumber string    `json:"whatsapp_number,omitempty"`
	Company        string    `json:"company,omitempty"`
	JobTitle       string    `json:"job_title,omitempty"`
	Message        string    `json:"message,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// DemoRequestListResponse lists stored demo requests, newest first.
type DemoRequestListResponse struct {
	Items []DemoRequestSummary `json:"items"`
}

// ObservationRequest logs a new observation.
type ObservationRequest struct {
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	LocationID   string     `json:"location_id,omitempty"`
	Severity     string     `json:"severity"`
	AssignedTo   string     `json:"assigned_to,omitempty"`
	TargetDate   *time.Time `json:"target_date,omitempty"`
	DateObserved *time.Time `json:"date_observed,omitempty"`
}

// ObservationResponse is the full public shape of an observation.
type ObservationResponse struct {
	ID                 string     `json:"id"`
	OrganizationID     string     `json:"organization_id"`
	Title              string     `json:"title"`
	Description        string     `json:"description,omitempty"`
	LocationID         string     `json:"location_id,omitempty"`
	Severity           string     `json:"severity"`
	Status             string     `json:"status"`
	ObserverID         string     `json:"observer_id,omitempty"`
	AssignedTo         string     `json:"assigned_to,omitempty"`
	RectificationNotes string     `json:"rectification_notes,omitempty"`
	PhotoAfter         string     `json:"photo_after,omitempty"`
	TargetDate         *time.Time `json:"target_date,omitempty"`
	DateObserved       time.Time  `json:"date_observed"`
	DateClosed         *time.Time `json:"date_closed,omitempty"`
	IsArchived         bool       `json:"is_archived"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// ObservationListResponse is one page of observations.
type ObservationListResponse struct {
	Items    []ObservationResponse `json:"items"`
	Total    int                   `json:"total"`
	Page     int                   `json:"page"`
	PageSize int                   `json:"page_size"`
}

// RectifyRequest is the action owner's fix report.
type RectifyRequest struct {
	Notes      string     `json:"notes"`
	PhotoAfter string     `json:"photo_after,omitempty"`
	TargetDate *time.Time `json:"target_date,omitempty"`
}

// VerifyRequest is the manager's ruling. Decision is "approve" or "reject".
type VerifyRequest struct {
	Decision string `json:"decision"`
}

// LocationRequest creates a lookup location.
type LocationRequest struct {
	Name string `json:"name"`
}

// LocationResponse is a lookup location.
type LocationResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// LocationListResponse lists all locations.
type LocationListResponse struct {
	Locations []LocationResponse `json:"locations"`
}

// DashboardResponse carries the KPI aggregates for the landing view.
type DashboardResponse struct {
	Total      int            `json:"total"`
	Open       int            `json:"open"`
	Closed     int            `json:"closed"`
	Overdue    int            `json:"overdue"`
	ByStatus   map[string]int `json:"by_status"`
	BySeverity map[string]int `json:"by_severity"`
	ByLocation map[string]int `json:"by_location"`
	ByMonth    map[string]int `json:"by_month"`
}

// HealthChecks reports per-dependency readiness.
type HealthChecks struct {
	Database string `json:"database"`
}

// HealthResponse is returned by the health probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
