package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"mini-networth/internal/domain"
	"mini-networth/internal/normalizer"
)

// FinancialSummaryUseCase orchestrates building the net-worth report.
type FinancialSummaryUseCase struct {
	repo       AccountRepository
	normalizer *normalizer.BalanceNormalizer
	logger     *slog.Logger
}

// NewFinancialSummaryUseCase creates a new instance of the usecase.
// A nil logger falls back to slog.Default().
func NewFinancialSummaryUseCase(repo AccountRepository, logger *slog.Logger) *FinancialSummaryUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &FinancialSummaryUseCase{
		repo:       repo,
		normalizer: normalizer.NewBalanceNormalizer(),
		logger:     logger,
	}
}

// Summarize loads the account snapshot and computes the financial summary.
func (uc *FinancialSummaryUseCase) Summarize(ctx context.Context, paths []string) (*domain.FinancialSummaryReport, error) {
	accounts, err := uc.repo.GetAccounts(ctx, paths)
	if err != nil {
		return nil, fmt.Errorf("could not get accounts: %w", err)
	}
	uc.logger.Debug("accounts loaded", "files", len(paths), "accounts", len(accounts))

	report := domain.FinancialSummaryReport{
		Summary: domain.Summary{
			AccountsProcessed: len(accounts),
			OverLimitAccounts: make([]string, 0),
		},
		Totals:    uc.normalizer.CalculateTotals(accounts),
		Breakdown: uc.normalizer.Breakdown(accounts),
		Accounts:  make([]domain.AccountView, 0, len(accounts)),
	}

	for _, account := range accounts {
		if !account.Type.IsKnown() {
			uc.logger.Warn("unknown account type, classified as asset", "account_id", account.ID, "type", account.Type)
		}

		view := uc.buildView(account)
		if view.AccountNature == domain.NatureLiability {
			report.Summary.LiabilityAccounts++
		} else {
			report.Summary.AssetAccounts++
		}

		if view.AvailableCredit != nil && view.AvailableCredit.IsNegative() {
			report.Summary.OverLimitAccounts = append(report.Summary.OverLimitAccounts, account.ID)
			uc.logger.Warn("account over credit limit",
				"account_id", account.ID,
				"credit_limit", account.CreditLimit.String(),
				"available_credit", view.AvailableCredit.String(),
			)
		}

		report.Accounts = append(report.Accounts, view)
	}

	uc.logger.Info("financial summary computed",
		"accounts", report.Summary.AccountsProcessed,
		"total_assets", report.Totals.TotalAssets.String(),
		"total_liabilities", report.Totals.TotalLiabilities.String(),
		"net_worth", report.Totals.NetWorth.String(),
	)

	return &report, nil
}

// buildView assembles the per-account line of the report.
func (uc *FinancialSummaryUseCase) buildView(account domain.Account) domain.AccountView {
	view := domain.AccountView{
		Type:                 account.Type,
		NormalizedBalance:    uc.normalizer.Normalize(account),
		NetWorthContribution: uc.normalizer.NetWorthContribution(account),
	}
	if available, ok := uc.normalizer.AvailableCredit(account); ok {
		view.AvailableCredit = &available
	}
	if utilization, ok := uc.normalizer.CreditUtilization(account); ok {
		view.CreditUtilization = &utilization
	}
	return view
}
