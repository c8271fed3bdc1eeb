package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/inversie/internal/inversie/domain"
	"github.com/aussiebroadwan/inversie/internal/inversie/store"
	"github.com/aussiebroadwan/inversie/pkg/idx"
	"github.com/aussiebroadwan/inversie/pkg/slogx"
)

// GuardianService is the BEWINDVOERDER side of the API: client overviews and
// the approve/deny workflow for decisions and money requests.
type GuardianService struct {
	Store store.Store
	Clock Clock

	// StrictTransitions only lets PENDING items be approved or denied. With
	// it off an already decided item is rewritten and a new notification is
	// sent each time.
	StrictTransitions bool
}

func (s *GuardianService) ListClients(ctx context.Context, caller Principal) ([]domain.ClientOverview, error) {
	if !caller.IsGuardian() {
		return nil, fmt.Errorf("%w: bewindvoerder role required", ErrForbidden)
	}
	return s.Store.Guardians().ListClientOverviews(ctx, caller.User.ID)
}

func (s *GuardianService) ClientDecisions(ctx context.Context, caller Principal, clientID string) ([]domain.Decision, error) {
	if err := requireGuardianOf(ctx, s.Store, clientID, caller); err != nil {
		return nil, err
	}
	return s.Store.Decisions().ListDecisions(ctx, clientID)
}

func (s *GuardianService) ClientMoneyRequests(ctx context.Context, caller Principal, clientID string) ([]domain.MoneyRequest, error) {
	if err := requireGuardianOf(ctx, s.Store, clientID, caller); err != nil {
		return nil, err
	}
	return s.Store.MoneyRequests().ListMoneyRequests(ctx, clientID)
}

// DecideDecision approves or denies a decision. The status change and the
// notification to the client commit together or not at all.
func (s *GuardianService) DecideDecision(
	ctx context.Context,
	caller Principal,
	decisionID string,
	o domain.Outcome,
) (domain.Decision, error) {
	if err := validOutcome(o); err != nil {
		return domain.Decision{}, err
	}

	d, err := s.Store.Decisions().GetDecision(ctx, decisionID)
	if err != nil {
		return domain.Decision{}, notFound(err, "decision")
	}
	if err := requireGuardianOf(ctx, s.Store, d.ClientID, caller); err != nil {
		return domain.Decision{}, err
	}
	if s.StrictTransitions && d.Status.Terminal() {
		return domain.Decision{}, fmt.Errorf("%w: decision is already %s", ErrConflict, d.Status)
	}

	n := decisionNotification(d, o)
	var out domain.Decision
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		now := s.Clock.now()
		err := tx.Decisions().SetDecisionStatus(ctx, d.ID, o, now, s.StrictTransitions)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) && s.StrictTransitions {
				return fmt.Errorf("%w: decision was decided concurrently", ErrConflict)
			}
			return notFound(err, "decision")
		}

		n.ID = idx.NewAt(now).String()
		n.CreatedAt = now
		if err := tx.Notifications().CreateNotification(ctx, n); err != nil {
			return fmt.Errorf("create notification: %w", err)
		}

		out, err = tx.Decisions().GetDecision(ctx, d.ID)
		return err
	})
	if err != nil {
		return domain.Decision{}, err
	}

	slogx.FromContext(ctx).Info("decision decided",
		slog.String("decision_id", d.ID),
		slog.String("client_id", d.ClientID),
		slog.String("status", string(o.Status)),
		slog.String("previous_status", string(d.Status)),
	)
	return out, nil
}

// DecideMoneyRequest is DecideDecision for money requests.
func (s *GuardianService) DecideMoneyRequest(
	ctx context.Context,
	caller Principal,
	requestID string,
	o domain.Outcome,
) (domain.MoneyRequest, error) {
	if err := validOutcome(o); err != nil {
		return domain.MoneyRequest{}, err
	}

	m, err := s.Store.MoneyRequests().GetMoneyRequest(ctx, requestID)
	if err != nil {
		return domain.MoneyRequest{}, notFound(err, "money request")
	}
	if err := requireGuardianOf(ctx, s.Store, m.ClientID, caller); err != nil {
		return domain.MoneyRequest{}, err
	}
	if s.StrictTransitions && m.Status.Terminal() {
		return domain.MoneyRequest{}, fmt.Errorf("%w: money request is already %s", ErrConflict, m.Status)
	}

	n := moneyRequestNotification(m, o)
	var out domain.MoneyRequest
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		now := s.Clock.now()
		err := tx.MoneyRequests().SetMoneyRequestStatus(ctx, m.ID, o, now, s.StrictTransitions)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) && s.StrictTransitions {
				return fmt.Errorf("%w: money request was decided concurrently", ErrConflict)
			}
			return notFound(err, "money request")
		}

		n.ID = idx.NewAt(now).String()
		n.CreatedAt = now
		if err := tx.Notifications().CreateNotification(ctx, n); err != nil {
			return fmt.Errorf("create notification: %w", err)
		}

		out, err = tx.MoneyRequests().GetMoneyRequest(ctx, m.ID)
		return err
	})
	if err != nil {
		return domain.MoneyRequest{}, err
	}

	slogx.FromContext(ctx).Info("money request decided",
		slog.String("money_request_id", m.ID),
		slog.String("client_id", m.ClientID),
		slog.String("status", string(o.Status)),
		slog.String("previous_status", string(m.Status)),
	)
	return out, nil
}

func validOutcome(o domain.Outcome) error {
	if o.Status != domain.StatusApproved && o.Status != domain.StatusDenied {
		return fmt.Errorf("%w: outcome must be APPROVED or DENIED", ErrValidation)
	}
	return nil
}

func decisionNotification(d domain.Decision, o domain.Outcome) domain.Notification {
	n := domain.Notification{
		UserID: d.ClientID,
		Data:   notificationData(map[string]string{"decisionId": d.ID}),
	}
	if o.Status == domain.StatusApproved {
		n.Type = domain.NotificationDecisionApproved
		n.Title = "Beslissing goedgekeurd"
		n.Message = fmt.Sprintf("Je bewindvoerder heeft \"%s\" goedgekeurd.", d.Title)
	} else {
		n.Type = domain.NotificationDecisionDenied
		n.Title = "Beslissing afgewezen"
		n.Message = fmt.Sprintf("Je bewindvoerder heeft \"%s\" afgewezen.", d.Title)
	}
	if o.Message != nil && *o.Message != "" {
		n.Message += " " + *o.Message
	}
	return n
}

func moneyRequestNotification(m domain.MoneyRequest, o domain.Outcome) domain.Notification {
	n := domain.Notification{
		UserID: m.ClientID,
		Data:   notificationData(map[string]string{"moneyRequestId": m.ID}),
	}
	amount := m.Amount.StringFixed(2)
	if o.Status == domain.StatusApproved {
		n.Type = domain.NotificationMoneyRequestApproved
		n.Title = "Geldverzoek goedgekeurd"
		n.Message = fmt.Sprintf("Je verzoek van € %s voor %s is goedgekeurd.", amount, m.Category)
	} else {
		n.Type = domain.NotificationMoneyRequestDenied
		n.Title = "Geldverzoek afgewezen"
		n.Message = fmt.Sprintf("Je verzoek van € %s voor %s is afgewezen.", amount, m.Category)
	}
	if o.Message != nil && *o.Message != "" {
		n.Message += " " + *o.Message
	}
	return n
}

func notificationData(v map[string]string) *string {
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	s := string(b)
	return &s
}
