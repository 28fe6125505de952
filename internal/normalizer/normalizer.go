// Package normalizer turns provider-reported account balances into a single
// sign convention and aggregates them into net-worth totals.
//
// Providers disagree on how to report debt: some send a credit card balance of
// -1500, others 1500. Liabilities are canonicalized to a positive amount owed.
// Asset balances keep their natural sign, so a negative checking balance still
// reads as an overdraft.
//
// Every method is a pure function of its arguments.
package normalizer

import (
	"sort"

	"github.com/shopspring/decimal"

	"mini-networth/internal/domain"
)

const utilizationPlaces = 4

// BalanceNormalizer classifies and normalizes account balances.
type BalanceNormalizer struct{}

// NewBalanceNormalizer creates a new normalizer instance.
func NewBalanceNormalizer() *BalanceNormalizer {
	return &BalanceNormalizer{}
}

// Classify returns the nature of an account type. Unknown types are assets.
func (n *BalanceNormalizer) Classify(accountType domain.AccountType) domain.AccountNature {
	switch accountType {
	case domain.AccountTypeCreditCard, domain.AccountTypeLoan, domain.AccountTypeMortgage:
		return domain.NatureLiability
	case domain.AccountTypeChecking, domain.AccountTypeSavings, domain.AccountTypeInvestment:
		return domain.NatureAsset
	default:
		return domain.NatureAsset
	}
}

// Normalize produces the read-time view of a single account.
func (n *BalanceNormalizer) Normalize(account domain.Account) domain.NormalizedBalance {
	nature := n.Classify(account.Type)
	result := domain.NormalizedBalance{
		AccountID:     account.ID,
		AccountNature: nature,
	}

	balance := account.CurrentBalance
	switch nature {
	case domain.NatureLiability:
		balance = balance.Abs()
		if balance.IsZero() {
			result.DisplayLabel = domain.LabelPaidOff
			result.AffectsNetWorth = domain.EffectNeutral
		} else {
			result.DisplayLabel = domain.LabelOwed
			result.AffectsNetWorth = domain.EffectNegative
		}
	default:
		if balance.IsNegative() {
			result.DisplayLabel = domain.LabelOverdrawn
			if account.Type == domain.AccountTypeInvestment {
				result.DisplayLabel = domain.LabelMarginDebt
			}
			result.AffectsNetWorth = domain.EffectNegative
		} else {
			result.DisplayLabel = domain.LabelAvailable
			result.AffectsNetWorth = domain.EffectPositive
		}
	}

	result.CurrentBalance = balance
	result.DisplayAmount = balance.Abs()
	return result
}

// NetWorthContribution returns the signed amount an account adds to net worth.
// Liabilities never contribute more than zero.
func (n *BalanceNormalizer) NetWorthContribution(account domain.Account) decimal.Decimal {
	if n.Classify(account.Type) == domain.NatureLiability {
		return account.CurrentBalance.Abs().Neg()
	}
	return account.CurrentBalance
}

// NormalizeBalances normalizes every account, preserving input order.
func (n *BalanceNormalizer) NormalizeBalances(accounts []domain.Account) []domain.NormalizedBalance {
	balances := make([]domain.NormalizedBalance, 0, len(accounts))
	for _, account := range accounts {
		balances = append(balances, n.Normalize(account))
	}
	return balances
}

// CalculateTotals sums assets and liabilities in a single pass.
// An overdrawn asset is counted as a liability, so TotalAssets is never negative.
func (n *BalanceNormalizer) CalculateTotals(accounts []domain.Account) domain.FinancialTotals {
	totalAssets := decimal.Zero
	totalLiabilities := decimal.Zero

	for _, account := range accounts {
		balance := account.CurrentBalance
		switch {
		case n.Classify(account.Type) == domain.NatureLiability:
			totalLiabilities = totalLiabilities.Add(balance.Abs())
		case balance.IsNegative():
			totalLiabilities = totalLiabilities.Add(balance.Abs())
		default:
			totalAssets = totalAssets.Add(balance)
		}
	}

	return domain.FinancialTotals{
		TotalAssets:      totalAssets,
		TotalLiabilities: totalLiabilities,
		NetWorth:         totalAssets.Sub(totalLiabilities),
	}
}

// AvailableCredit returns creditLimit minus the normalized balance.
// The second result is false when the account carries no credit limit.
// The value is not clamped: an over-limit account yields a negative amount.
func (n *BalanceNormalizer) AvailableCredit(account domain.Account) (decimal.Decimal, bool) {
	if account.CreditLimit == nil {
		return decimal.Decimal{}, false
	}
	return account.CreditLimit.Sub(n.usedBalance(account)), true
}

// CreditUtilization returns owed / creditLimit for liability accounts, rounded
// to four places. It is not defined for assets or for a missing or zero limit.
func (n *BalanceNormalizer) CreditUtilization(account domain.Account) (decimal.Decimal, bool) {
	if account.CreditLimit == nil || account.CreditLimit.IsZero() {
		return decimal.Decimal{}, false
	}
	if n.Classify(account.Type) != domain.NatureLiability {
		return decimal.Decimal{}, false
	}
	return n.usedBalance(account).Div(*account.CreditLimit).Round(utilizationPlaces), true
}

// Breakdown groups accounts by nature and type, sorted by type.
func (n *BalanceNormalizer) Breakdown(accounts []domain.Account) domain.Breakdown {
	assets := make(map[domain.AccountType]*domain.TypeSubtotal)
	liabilities := make(map[domain.AccountType]*domain.TypeSubtotal)

	for _, account := range accounts {
		groups := assets
		if n.Classify(account.Type) == domain.NatureLiability {
			groups = liabilities
		}
		subtotal, ok := groups[account.Type]
		if !ok {
			subtotal = &domain.TypeSubtotal{AccountType: account.Type, Total: decimal.Zero}
			groups[account.Type] = subtotal
		}
		subtotal.AccountCount++
		subtotal.Total = subtotal.Total.Add(n.Normalize(account).CurrentBalance)
	}

	return domain.Breakdown{
		Assets:      sortedSubtotals(assets),
		Liabilities: sortedSubtotals(liabilities),
	}
}

// usedBalance is the amount drawn against a credit line: the positive amount
// owed for liabilities, the raw balance for assets.
func (n *BalanceNormalizer) usedBalance(account domain.Account) decimal.Decimal {
	if n.Classify(account.Type) == domain.NatureLiability {
		return account.CurrentBalance.Abs()
	}
	return account.CurrentBalance
}

func sortedSubtotals(groups map[domain.AccountType]*domain.TypeSubtotal) []domain.TypeSubtotal {
	subtotals := make([]domain.TypeSubtotal, 0, len(groups))
	for _, subtotal := range groups {
		subtotals = append(subtotals, *subtotal)
	}
	sort.Slice(subtotals, func(i, j int) bool {
		return subtotals[i].AccountType < subtotals[j].AccountType
	})
	return subtotals
}
