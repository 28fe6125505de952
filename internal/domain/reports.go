package domain

import "github.com/shopspring/decimal"

// AccountView is one account line of the financial summary.
type AccountView struct {
	Type AccountType `json:"type"`
	NormalizedBalance
	NetWorthContribution decimal.Decimal  `json:"net_worth_contribution"`
	AvailableCredit      *decimal.Decimal `json:"available_credit"`
	CreditUtilization    *decimal.Decimal `json:"credit_utilization,omitempty"`
}

// TypeSubtotal sums the normalized balances of one account type.
type TypeSubtotal struct {
	AccountType  AccountType     `json:"account_type"`
	AccountCount int             `json:"account_count"`
	Total        decimal.Decimal `json:"total"`
}

// Breakdown groups subtotals by account nature.
type Breakdown struct {
	Assets      []TypeSubtotal `json:"assets"`
	Liabilities []TypeSubtotal `json:"liabilities"`
}

// Summary provides high-level statistics of the run.
type Summary struct {
	AccountsProcessed int      `json:"accounts_processed"`
	AssetAccounts     int      `json:"asset_accounts"`
	LiabilityAccounts int      `json:"liability_accounts"`
	OverLimitAccounts []string `json:"over_limit_accounts"`
}

// FinancialSummaryReport is the top-level structure for the final JSON output.
type FinancialSummaryReport struct {
	Summary   Summary         `json:"summary"`
	Totals    FinancialTotals `json:"totals"`
	Breakdown Breakdown       `json:"breakdown"`
	Accounts  []AccountView   `json:"accounts"`
}
