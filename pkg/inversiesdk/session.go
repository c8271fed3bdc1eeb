package inversiesdk

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

// Session is an authenticated connection. Sessions expire after 30 minutes
// on the server; a call made with an expired token returns an *APIError with
// code session_invalid.
type Session struct {
	client *SDKClient
	token  string

	// ExpiresAt and User are filled by Login.
	ExpiresAt time.Time
	User      User
}

// Token returns the bearer token of the session.
func (s *Session) Token() string {
	return s.token
}

func (s *Session) call(ctx context.Context, method, path string, body, target any, expectedStatus int) error {
	return s.client.call(ctx, method, path, s.token, body, target, expectedStatus)
}

// ============================================================================
// Auth
// ============================================================================

func (s *Session) Me(ctx context.Context) (*User, error) {
	var out User
	if err := s.call(ctx, http.MethodGet, "/api/auth/me", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout ends the session on the server. The Session must not be used
// afterwards.
func (s *Session) Logout(ctx context.Context) error {
	return s.call(ctx, http.MethodPost, "/api/auth/logout", nil, &MessageResponse{}, http.StatusOK)
}

func (s *Session) ChangePIN(ctx context.Context, currentPIN, newPIN string) error {
	return s.call(ctx, http.MethodPost, "/api/auth/pin/change",
		ChangePINRequest{CurrentPIN: currentPIN, NewPIN: newPIN}, &MessageResponse{}, http.StatusOK)
}

func (s *Session) UpdateSettings(ctx context.Context, req UpdateSettingsRequest) (*User, error) {
	var out User
	if err := s.call(ctx, http.MethodPut, "/api/auth/settings", req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ============================================================================
// Client resources
// ============================================================================

func (s *Session) ListPotjes(ctx context.Context) ([]Potje, error) {
	var out []Potje
	if err := s.call(ctx, http.MethodGet, "/api/potjes", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) GetPotje(ctx context.Context, id string) (*Potje, error) {
	var out Potje
	if err := s.call(ctx, http.MethodGet, "/api/potjes/"+url.PathEscape(id), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) ListDecisions(ctx context.Context) ([]Decision, error) {
	var out []Decision
	if err := s.call(ctx, http.MethodGet, "/api/decisions", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) GetDecision(ctx context.Context, id string) (*Decision, error) {
	var out Decision
	if err := s.call(ctx, http.MethodGet, "/api/decisions/"+url.PathEscape(id), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) CreateDecision(ctx context.Context, req CreateDecisionRequest) (*Decision, error) {
	var out Decision
	if err := s.call(ctx, http.MethodPost, "/api/decisions", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) AddReflection(ctx context.Context, decisionID string, req CreateReflectionRequest) (*Reflection, error) {
	var out Reflection
	path := "/api/decisions/" + url.PathEscape(decisionID) + "/reflection"
	if err := s.call(ctx, http.MethodPost, path, req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) ListMoneyRequests(ctx context.Context) ([]MoneyRequest, error) {
	var out []MoneyRequest
	if err := s.call(ctx, http.MethodGet, "/api/money-requests", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) CreateMoneyRequest(ctx context.Context, req CreateMoneyRequestRequest) (*MoneyRequest, error) {
	var out MoneyRequest
	if err := s.call(ctx, http.MethodPost, "/api/money-requests", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) ListTransactions(ctx context.Context, q TransactionQuery) ([]Transaction, error) {
	v := url.Values{}
	if q.StartDate != "" {
		v.Set("startDate", q.StartDate)
	}
	if q.EndDate != "" {
		v.Set("endDate", q.EndDate)
	}
	if q.Category != "" {
		v.Set("category", q.Category)
	}
	path := "/api/transactions"
	if len(v) > 0 {
		path += "?" + v.Encode()
	}

	var out []Transaction
	if err := s.call(ctx, http.MethodGet, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) ListSavingsGoals(ctx context.Context) ([]SavingsGoal, error) {
	var out []SavingsGoal
	if err := s.call(ctx, http.MethodGet, "/api/savings-goals", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) CreateSavingsGoal(ctx context.Context, req CreateSavingsGoalRequest) (*SavingsGoal, error) {
	var out SavingsGoal
	if err := s.call(ctx, http.MethodPost, "/api/savings-goals", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) UpdateSavingsGoal(ctx context.Context, id string, req UpdateSavingsGoalRequest) (*SavingsGoal, error) {
	var out SavingsGoal
	if err := s.call(ctx, http.MethodPut, "/api/savings-goals/"+url.PathEscape(id), req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) DeleteSavingsGoal(ctx context.Context, id string) error {
	return s.call(ctx, http.MethodDelete, "/api/savings-goals/"+url.PathEscape(id), nil, &MessageResponse{}, http.StatusOK)
}

func (s *Session) ListNotifications(ctx context.Context) ([]Notification, error) {
	var out []Notification
	if err := s.call(ctx, http.MethodGet, "/api/notifications", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) MarkNotificationRead(ctx context.Context, id string) error {
	path := "/api/notifications/" + url.PathEscape(id) + "/read"
	return s.call(ctx, http.MethodPut, path, nil, &MessageResponse{}, http.StatusOK)
}

func (s *Session) MarkAllNotificationsRead(ctx context.Context) error {
	return s.call(ctx, http.MethodPut, "/api/notifications/read-all", nil, &MessageResponse{}, http.StatusOK)
}

// ============================================================================
// Guardian
// ============================================================================

func (s *Session) ListClients(ctx context.Context) ([]ClientOverview, error) {
	var out []ClientOverview
	if err := s.call(ctx, http.MethodGet, "/api/bewindvoerder/clients", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) ListClientDecisions(ctx context.Context, clientID string) ([]Decision, error) {
	var out []Decision
	path := "/api/bewindvoerder/clients/" + url.PathEscape(clientID) + "/decisions"
	if err := s.call(ctx, http.MethodGet, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) ListClientMoneyRequests(ctx context.Context, clientID string) ([]MoneyRequest, error) {
	var out []MoneyRequest
	path := "/api/bewindvoerder/clients/" + url.PathEscape(clientID) + "/money-requests"
	if err := s.call(ctx, http.MethodGet, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) ApproveDecision(ctx context.Context, id, message string) (*Decision, error) {
	return s.decideDecision(ctx, id, "approve", message)
}

func (s *Session) DenyDecision(ctx context.Context, id, message string) (*Decision, error) {
	return s.decideDecision(ctx, id, "deny", message)
}

func (s *Session) ApproveMoneyRequest(ctx context.Context, id, message string) (*MoneyRequest, error) {
	return s.decideMoneyRequest(ctx, id, "approve", message)
}

func (s *Session) DenyMoneyRequest(ctx context.Context, id, message string) (*MoneyRequest, error) {
	return s.decideMoneyRequest(ctx, id, "deny", message)
}

func (s *Session) decideDecision(ctx context.Context, id, action, message string) (*Decision, error) {
	var out Decision
	path := "/api/bewindvoerder/decisions/" + url.PathEscape(id) + "/" + action
	if err := s.call(ctx, http.MethodPost, path, decideBody(message), &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) decideMoneyRequest(ctx context.Context, id, action, message string) (*MoneyRequest, error) {
	var out MoneyRequest
	path := "/api/bewindvoerder/money-requests/" + url.PathEscape(id) + "/" + action
	if err := s.call(ctx, http.MethodPost, path, decideBody(message), &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func decideBody(message string) DecideRequest {
	if message == "" {
		return DecideRequest{}
	}
	return DecideRequest{Message: &message}
}
