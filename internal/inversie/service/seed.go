package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/inversie/internal/inversie/domain"
	"github.com/aussiebroadwan/inversie/internal/inversie/store"
	"github.com/aussiebroadwan/inversie/pkg/idx"
	"github.com/shopspring/decimal"
)

// Demo accounts created by SeedDemoData.
const (
	DemoClientEmail   = "jan@test.nl"
	DemoGuardianEmail = "bewindvoerder@test.nl"
	DemoPIN           = "1234"
)

type demoPotje struct {
	name, icon    string
	budget, spent string
}

var demoPotjes = []demoPotje{
	{"Boodschappen", "🛒", "250.00", "87.45"},
	{"Kleding", "👕", "75.00", "20.00"},
	{"Vaste lasten", "🏠", "850.00", "850.00"},
	{"Vrije tijd", "🎉", "50.00", "12.50"},
}

type demoTransaction struct {
	daysAgo     int
	description string
	amount      string
	category    string
}

var demoTransactions = []demoTransaction{
	{1, "Albert Heijn", "-23.45", "Boodschappen"},
	{3, "Jumbo", "-41.10", "Boodschappen"},
	{4, "Bioscoop", "-12.50", "Vrije tijd"},
	{6, "Primark", "-20.00", "Kleding"},
	{9, "Lidl", "-22.90", "Boodschappen"},
	{12, "Leefgeld bewindvoerder", "150.00", ""},
	{14, "Huur", "-850.00", "Vaste lasten"},
}

// SeedDemoData fills an empty database with the demo client, the demo
// guardian and some budget data. It reports false without writing anything
// when users already exist.
func SeedDemoData(ctx context.Context, st store.Store, clock Clock, log *slog.Logger) (bool, error) {
	empty, err := st.Users().IsEmpty(ctx)
	if err != nil {
		return false, err
	}
	if !empty {
		log.Debug("demo seed skipped, users exist")
		return false, nil
	}

	err = st.WithTx(ctx, func(tx store.Tx) error {
		accounts := &AccountService{Store: tx, Clock: clock}
		now := clock.now()

		client, err := accounts.CreateUser(ctx, NewUser{
			Type: domain.UserTypeClient, Email: DemoClientEmail,
			FirstName: "Jan", LastName: "de Vries", PIN: DemoPIN,
		})
		if err != nil {
			return fmt.Errorf("seed client: %w", err)
		}
		if _, err := accounts.CreateUser(ctx, NewUser{
			Type: domain.UserTypeBewindvoerder, Email: DemoGuardianEmail,
			FirstName: "Sanne", LastName: "Bakker", PIN: DemoPIN,
		}); err != nil {
			return fmt.Errorf("seed guardian: %w", err)
		}
		if err := accounts.LinkGuardian(ctx, DemoClientEmail, DemoGuardianEmail); err != nil {
			return fmt.Errorf("seed relation: %w", err)
		}

		for _, p := range demoPotjes {
			icon := p.icon
			if err := tx.Potjes().CreatePotje(ctx, domain.Potje{
				ID:            idx.NewAt(now).String(),
				ClientID:      client.ID,
				Name:          p.name,
				Icon:          &icon,
				MonthlyBudget: decimal.RequireFromString(p.budget),
				CurrentSpent:  decimal.RequireFromString(p.spent),
				ResetDay:      1,
				CreatedAt:     now,
				UpdatedAt:     now,
			}); err != nil {
				return fmt.Errorf("seed potje %s: %w", p.name, err)
			}
		}

		balance := decimal.RequireFromString("412.35")
		for _, t := range demoTransactions {
			var category *string
			if t.category != "" {
				c := t.category
				category = &c
			}
			after := balance
			if err := tx.Transactions().CreateTransaction(ctx, domain.Transaction{
				ID:           idx.NewAt(now).String(),
				ClientID:     client.ID,
				Date:         now.Add(-time.Duration(t.daysAgo) * 24 * time.Hour),
				Description:  t.description,
				Amount:       decimal.RequireFromString(t.amount),
				Category:     category,
				BalanceAfter: &after,
				ImportedAt:   now,
			}); err != nil {
				return fmt.Errorf("seed transaction: %w", err)
			}
			balance = balance.Sub(decimal.RequireFromString(t.amount))
		}

		targetDate := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 6, 0)
		return tx.SavingsGoals().CreateSavingsGoal(ctx, domain.SavingsGoal{
			ID:            idx.NewAt(now).String(),
			ClientID:      client.ID,
			Name:          "Nieuwe fiets",
			TargetAmount:  decimal.RequireFromString("400.00"),
			CurrentAmount: decimal.RequireFromString("120.00"),
			TargetDate:    &targetDate,
			CreatedAt:     now,
			UpdatedAt:     now,
		})
	})
	if err != nil {
		return false, err
	}

	log.Info("demo data seeded", "client", DemoClientEmail, "guardian", DemoGuardianEmail)
	return true, nil
}
