package http

import (
	"github.com/aussiebroadwan/inversie/internal/inversie/domain"
	"github.com/aussiebroadwan/inversie/pkg/inversiesdk"
)

// toUser is the only way a domain.User leaves the server, so the PIN hash
// never does.
func toUser(u domain.User) inversiesdk.User {
	return inversiesdk.User{
		ID:                u.ID,
		Email:             u.Email,
		Type:              string(u.Type),
		FirstName:         u.FirstName,
		LastName:          u.LastName,
		Language:          u.Language,
		TextSize:          string(u.TextSize),
		HighContrast:      u.HighContrast,
		BiometricsEnabled: u.BiometricsEnabled,
		CreatedAt:         u.CreatedAt,
		UpdatedAt:         u.UpdatedAt,
	}
}

func toPotje(p domain.Potje) inversiesdk.Potje {
	return inversiesdk.Potje{
		ID:            p.ID,
		ClientID:      p.ClientID,
		Name:          p.Name,
		Icon:          p.Icon,
		MonthlyBudget: p.MonthlyBudget,
		CurrentSpent:  p.CurrentSpent,
		Remaining:     p.Remaining(),
		ResetDay:      p.ResetDay,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func toReflection(r domain.Reflection) inversiesdk.Reflection {
	return inversiesdk.Reflection{
		ID:                 r.ID,
		DecisionID:         r.DecisionID,
		SatisfactionRating: r.SatisfactionRating,
		Notes:              r.Notes,
		CreatedAt:          r.CreatedAt,
	}
}

func toDecision(d domain.Decision) inversiesdk.Decision {
	out := inversiesdk.Decision{
		ID:                   d.ID,
		ClientID:             d.ClientID,
		PotjeID:              d.PotjeID,
		Title:                d.Title,
		Description:          d.Description,
		Amount:               d.Amount,
		Status:               string(d.Status),
		NeedsHelp:            d.NeedsHelp,
		BewindvoerderMessage: d.BewindvoerderMessage,
		ApprovedAt:           d.ApprovedAt,
		CreatedAt:            d.CreatedAt,
		UpdatedAt:            d.UpdatedAt,
	}
	if d.Potje != nil {
		p := toPotje(*d.Potje)
		out.Potje = &p
	}
	if d.Reflection != nil {
		r := toReflection(*d.Reflection)
		out.Reflection = &r
	}
	return out
}

func toMoneyRequest(m domain.MoneyRequest) inversiesdk.MoneyRequest {
	return inversiesdk.MoneyRequest{
		ID:                   m.ID,
		ClientID:             m.ClientID,
		Amount:               m.Amount,
		Category:             m.Category,
		Description:          m.Description,
		PhotoURL:             m.PhotoURL,
		Status:               string(m.Status),
		BewindvoerderMessage: m.BewindvoerderMessage,
		ApprovedAt:           m.ApprovedAt,
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}
}

func toTransaction(t domain.Transaction) inversiesdk.Transaction {
	return inversiesdk.Transaction{
		ID:           t.ID,
		ClientID:     t.ClientID,
		Date:         t.Date,
		Description:  t.Description,
		Amount:       t.Amount,
		Category:     t.Category,
		BalanceAfter: t.BalanceAfter,
		ImportedAt:   t.ImportedAt,
	}
}

func toSavingsGoal(g domain.SavingsGoal) inversiesdk.SavingsGoal {
	return inversiesdk.SavingsGoal{
		ID:            g.ID,
		ClientID:      g.ClientID,
		Name:          g.Name,
		TargetAmount:  g.TargetAmount,
		CurrentAmount: g.CurrentAmount,
		Progress:      g.Progress(),
		TargetDate:    g.TargetDate,
		ImageURL:      g.ImageURL,
		IsCompleted:   g.IsCompleted,
		CompletedAt:   g.CompletedAt,
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     g.UpdatedAt,
	}
}

func toNotification(n domain.Notification) inversiesdk.Notification {
	return inversiesdk.Notification{
		ID:        n.ID,
		UserID:    n.UserID,
		Type:      string(n.Type),
		Title:     n.Title,
		Message:   n.Message,
		Data:      n.Data,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}

func toClientOverview(o domain.ClientOverview) inversiesdk.ClientOverview {
	return inversiesdk.ClientOverview{
		ID:                   o.Client.ID,
		FirstName:            o.Client.FirstName,
		LastName:             o.Client.LastName,
		Email:                o.Client.Email,
		PendingDecisions:     o.PendingDecisions,
		PendingMoneyRequests: o.PendingMoneyRequests,
		LastActivity:         o.LastActivity,
	}
}

// mapSlice converts a list and never returns nil, so empty lists encode as [].
func mapSlice[T, U any](in []T, f func(T) U) []U {
	out := make([]U, 0, len(in))
	for _, v := range in {
		out = append(out, f(v))
	}
	return out
}
