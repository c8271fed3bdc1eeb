package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/inversie/internal/inversie/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers implement it and
// hand out sub-repositories so a transaction scoped Store looks the same as
// the root one.
type Store interface {
	Users() Users
	Sessions() Sessions
	Guardians() Guardians
	Potjes() Potjes
	Decisions() Decisions
	MoneyRequests() MoneyRequests
	Transactions() Transactions
	SavingsGoals() SavingsGoals
	Notifications() Notifications

	ApplyMigrations() error

	// Tx starts a read/write transaction. The caller MUST call Commit() or
	// Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn inside a transaction, rolling back when fn returns an
	// error and committing otherwise.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail matches case-insensitively.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser returns ErrAlreadyExists when the email is taken.
	CreateUser(ctx context.Context, u domain.User) error

	UpdatePINHash(ctx context.Context, userID, hash string, at time.Time) error

	// UpdateSettings persists the preference fields of u and bumps updated_at.
	UpdateSettings(ctx context.Context, u domain.User) error

	IsEmpty(ctx context.Context) (bool, error)
}

type Sessions interface {
	CreateSession(ctx context.Context, s domain.Session) error

	// GetLiveSession returns the session with the given token fingerprint
	// whose expiry lies after now.
	GetLiveSession(ctx context.Context, tokenHash string, now time.Time) (domain.Session, error)

	// DeleteSession is a no-op for unknown ids.
	DeleteSession(ctx context.Context, id string) error

	// DeleteOtherSessions removes every session of userID except keepID.
	DeleteOtherSessions(ctx context.Context, userID, keepID string) (int64, error)

	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

type Guardians interface {
	// CreateRelation returns ErrAlreadyExists for a duplicate pair.
	CreateRelation(ctx context.Context, rel domain.GuardianRelation) error

	RelationExists(ctx context.Context, clientID, guardianID string) (bool, error)

	// ListClientOverviews returns every client of guardianID ordered by last
	// name then first name.
	ListClientOverviews(ctx context.Context, guardianID string) ([]domain.ClientOverview, error)
}

type Potjes interface {
	CreatePotje(ctx context.Context, p domain.Potje) error
	GetPotje(ctx context.Context, id string) (domain.Potje, error)

	// ListPotjes orders by name.
	ListPotjes(ctx context.Context, clientID string) ([]domain.Potje, error)
}

type Decisions interface {
	CreateDecision(ctx context.Context, d domain.Decision) error

	// GetDecision loads the decision with its potje and reflection.
	GetDecision(ctx context.Context, id string) (domain.Decision, error)

	// ListDecisions returns the client's decisions newest first, with potje
	// and reflection loaded.
	ListDecisions(ctx context.Context, clientID string) ([]domain.Decision, error)

	// SetDecisionStatus writes an outcome. With onlyPending set the write is
	// conditional on the row still being PENDING and ErrNotFound signals that
	// nothing matched.
	SetDecisionStatus(ctx context.Context, id string, o domain.Outcome, at time.Time, onlyPending bool) error

	// CreateReflection returns ErrAlreadyExists when the decision already has one.
	CreateReflection(ctx context.Context, r domain.Reflection) error
}

type MoneyRequests interface {
	CreateMoneyRequest(ctx context.Context, m domain.MoneyRequest) error
	GetMoneyRequest(ctx context.Context, id string) (domain.MoneyRequest, error)

	// ListMoneyRequests orders newest first.
	ListMoneyRequests(ctx context.Context, clientID string) ([]domain.MoneyRequest, error)

	// SetMoneyRequestStatus behaves like Decisions.SetDecisionStatus.
	SetMoneyRequestStatus(ctx context.Context, id string, o domain.Outcome, at time.Time, onlyPending bool) error
}

type Transactions interface {
	CreateTransaction(ctx context.Context, t domain.Transaction) error

	// ListTransactions orders by transaction date, newest first.
	ListTransactions(ctx context.Context, clientID string, f domain.TransactionFilter) ([]domain.Transaction, error)
}

type SavingsGoals interface {
	CreateSavingsGoal(ctx context.Context, g domain.SavingsGoal) error
	GetSavingsGoal(ctx context.Context, id string) (domain.SavingsGoal, error)

	// ListSavingsGoals orders newest first.
	ListSavingsGoals(ctx context.Context, clientID string) ([]domain.SavingsGoal, error)

	// UpdateSavingsGoal overwrites every mutable column of g.
	UpdateSavingsGoal(ctx context.Context, g domain.SavingsGoal) error

	DeleteSavingsGoal(ctx context.Context, id string) error
}

type Notifications interface {
	CreateNotification(ctx context.Context, n domain.Notification) error

	// ListNotifications orders newest first.
	ListNotifications(ctx context.Context, userID string) ([]domain.Notification, error)

	// MarkRead returns ErrNotFound unless the notification belongs to userID.
	MarkRead(ctx context.Context, id, userID string) error

	MarkAllRead(ctx context.Context, userID string) (int64, error)

	// ListUnpublished returns up to limit notifications not yet relayed to
	// the broker, oldest first.
	ListUnpublished(ctx context.Context, limit int) ([]domain.Notification, error)

	MarkPublished(ctx context.Context, id string, at time.Time) error
}
