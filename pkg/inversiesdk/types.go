package inversiesdk

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Amounts go over the wire as numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Amount parses a decimal literal and panics on malformed input. Meant for
// constants in callers and tests.
func Amount(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// ============================================================================
// Shared
// ============================================================================

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	// Error is a human readable message.
	Error string `json:"error"`

	// Code is a stable machine readable code (e.g. "not_found").
	Code string `json:"code"`
}

// MessageResponse acknowledges an operation that has nothing else to return.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse is returned by the liveness and readiness probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
}

// PingResponse is the body of GET /health.
type PingResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// IndexResponse describes the API at GET /api.
type IndexResponse struct {
	Name      string   `json:"name"`
	Version   string   `json:"version"`
	Endpoints []string `json:"endpoints"`
}

// ============================================================================
// Auth
// ============================================================================

type LoginRequest struct {
	Email string `json:"email" validate:"required,email"`
	PIN   string `json:"pin"   validate:"required"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      User      `json:"user"`
}

// User never carries the PIN hash.
type User struct {
	ID                string    `json:"id"`
	Email             string    `json:"email"`
	Type              string    `json:"type"`
	FirstName         string    `json:"firstName"`
	LastName          string    `json:"lastName"`
	Language          string    `json:"language"`
	TextSize          string    `json:"textSize"`
	HighContrast      bool      `json:"highContrast"`
	BiometricsEnabled bool      `json:"biometricsEnabled"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

type ChangePINRequest struct {
	CurrentPIN string `json:"currentPin" validate:"required"`
	NewPIN     string `json:"newPin"     validate:"required"`
}

// UpdateSettingsRequest is a partial update; omitted fields are unchanged.
type UpdateSettingsRequest struct {
	Language          *string `json:"language,omitempty"          validate:"omitempty,min=2,max=16"`
	TextSize          *string `json:"textSize,omitempty"          validate:"omitempty,oneofci=SMALL MEDIUM LARGE XLARGE"`
	HighContrast      *bool   `json:"highContrast,omitempty"`
	BiometricsEnabled *bool   `json:"biometricsEnabled,omitempty"`
}

// ============================================================================
// Budget
// ============================================================================

type Potje struct {
	ID            string          `json:"id"`
	ClientID      string          `json:"clientId"`
	Name          string          `json:"name"`
	Icon          *string         `json:"icon"`
	MonthlyBudget decimal.Decimal `json:"monthlyBudget"`
	CurrentSpent  decimal.Decimal `json:"currentSpent"`
	Remaining     decimal.Decimal `json:"remaining"`
	ResetDay      int             `json:"resetDay"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

type Transaction struct {
	ID           string           `json:"id"`
	ClientID     string           `json:"clientId"`
	Date         time.Time        `json:"date"`
	Description  string           `json:"description"`
	Amount       decimal.Decimal  `json:"amount"`
	Category     *string          `json:"category"`
	BalanceAfter *decimal.Decimal `json:"balanceAfter"`
	ImportedAt   time.Time        `json:"importedAt"`
}

// TransactionQuery filters a transaction listing. Dates are YYYY-MM-DD or
// RFC 3339.
type TransactionQuery struct {
	StartDate string
	EndDate   string
	Category  string
}

// ============================================================================
// Decisions
// ============================================================================

type Decision struct {
	ID                   string          `json:"id"`
	ClientID             string          `json:"clientId"`
	PotjeID              string          `json:"potjeId"`
	Title                string          `json:"title"`
	Description          *string         `json:"description"`
	Amount               decimal.Decimal `json:"amount"`
	Status               string          `json:"status"`
	NeedsHelp            bool            `json:"needsHelp"`
	BewindvoerderMessage *string         `json:"bewindvoerderMessage"`
	ApprovedAt           *time.Time      `json:"approvedAt"`
	CreatedAt            time.Time       `json:"createdAt"`
	UpdatedAt            time.Time       `json:"updatedAt"`
	Potje                *Potje          `json:"potje"`
	Reflection           *Reflection     `json:"reflection"`
}

type Reflection struct {
	ID                 string    `json:"id"`
	DecisionID         string    `json:"decisionId"`
	SatisfactionRating int       `json:"satisfactionRating"`
	Notes              *string   `json:"notes"`
	CreatedAt          time.Time `json:"createdAt"`
}

type CreateDecisionRequest struct {
	Title       string           `json:"title"                 validate:"required,max=200"`
	Description *string          `json:"description,omitempty" validate:"omitempty,max=2000"`
	Amount      *decimal.Decimal `json:"amount"                validate:"required"`
	PotjeID     string           `json:"potjeId"               validate:"required"`
	NeedsHelp   bool             `json:"needsHelp,omitempty"`
}

type CreateReflectionRequest struct {
	SatisfactionRating int     `json:"satisfactionRating" validate:"required,min=1,max=5"`
	Notes              *string `json:"notes,omitempty"    validate:"omitempty,max=2000"`
}

// ============================================================================
// Money requests
// ============================================================================

type MoneyRequest struct {
	ID                   string          `json:"id"`
	ClientID             string          `json:"clientId"`
	Amount               decimal.Decimal `json:"amount"`
	Category             string          `json:"category"`
	Description          *string         `json:"description"`
	PhotoURL             string          `json:"photoUrl"`
	Status               string          `json:"status"`
	BewindvoerderMessage *string         `json:"bewindvoerderMessage"`
	ApprovedAt           *time.Time      `json:"approvedAt"`
	CreatedAt            time.Time       `json:"createdAt"`
	UpdatedAt            time.Time       `json:"updatedAt"`
}

type CreateMoneyRequestRequest struct {
	Amount      *decimal.Decimal `json:"amount"                validate:"required"`
	Category    string           `json:"category"              validate:"required,max=100"`
	Description *string          `json:"description,omitempty" validate:"omitempty,max=2000"`
	PhotoURL    string           `json:"photoUrl"              validate:"required"`
}

// ============================================================================
// Savings goals
// ============================================================================

type SavingsGoal struct {
	ID            string          `json:"id"`
	ClientID      string          `json:"clientId"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	Progress      decimal.Decimal `json:"progress"`
	TargetDate    *time.Time      `json:"targetDate"`
	ImageURL      *string         `json:"imageUrl"`
	IsCompleted   bool            `json:"isCompleted"`
	CompletedAt   *time.Time      `json:"completedAt"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

type CreateSavingsGoalRequest struct {
	Name          string           `json:"name"                    validate:"required,max=200"`
	TargetAmount  *decimal.Decimal `json:"targetAmount"            validate:"required"`
	CurrentAmount *decimal.Decimal `json:"currentAmount,omitempty"`
	TargetDate    *string          `json:"targetDate,omitempty"`
	ImageURL      *string          `json:"imageUrl,omitempty"`
}

// UpdateSavingsGoalRequest is a partial update; omitted fields are unchanged.
type UpdateSavingsGoalRequest struct {
	Name          *string          `json:"name,omitempty"          validate:"omitempty,max=200"`
	TargetAmount  *decimal.Decimal `json:"targetAmount,omitempty"`
	CurrentAmount *decimal.Decimal `json:"currentAmount,omitempty"`
	TargetDate    *string          `json:"targetDate,omitempty"`
	ImageURL      *string          `json:"imageUrl,omitempty"`
	IsCompleted   *bool            `json:"isCompleted,omitempty"`
}

// ============================================================================
// Notifications
// ============================================================================

type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Data      *string   `json:"data"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

// ============================================================================
// Guardian
// ============================================================================

type ClientOverview struct {
	ID                   string     `json:"id"`
	FirstName            string     `json:"firstName"`
	LastName             string     `json:"lastName"`
	Email                string     `json:"email"`
	PendingDecisions     int        `json:"pendingDecisions"`
	PendingMoneyRequests int        `json:"pendingMoneyRequests"`
	LastActivity         *time.Time `json:"lastActivity"`
}

// DecideRequest is the optional body of approve and deny.
type DecideRequest struct {
	Message *string `json:"message,omitempty" validate:"omitempty,max=1000"`
}
