package domain

import "github.com/shopspring/decimal"

// AccountType is the account-type tag reported by the banking provider.
type AccountType string

const (
	AccountTypeChecking   AccountType = "CHECKING"
	AccountTypeSavings    AccountType = "SAVINGS"
	AccountTypeInvestment AccountType = "INVESTMENT"
	AccountTypeCreditCard AccountType = "CREDIT_CARD"
	AccountTypeLoan       AccountType = "LOAN"
	AccountTypeMortgage   AccountType = "MORTGAGE"
)

// AccountTypes lists every known account type.
var AccountTypes = []AccountType{
	AccountTypeChecking,
	AccountTypeSavings,
	AccountTypeInvestment,
	AccountTypeCreditCard,
	AccountTypeLoan,
	AccountTypeMortgage,
}

// IsKnown reports whether t is one of the known account types.
func (t AccountType) IsKnown() bool {
	for _, known := range AccountTypes {
		if t == known {
			return true
		}
	}
	return false
}

// AccountNature says whether an account holds money or owes it.
type AccountNature string

const (
	NatureAsset     AccountNature = "ASSET"
	NatureLiability AccountNature = "LIABILITY"
)

// DisplayLabel is the human-readable state of a normalized balance.
type DisplayLabel string

const (
	LabelAvailable  DisplayLabel = "Available"
	LabelOwed       DisplayLabel = "Owed"
	LabelPaidOff    DisplayLabel = "Paid Off"
	LabelOverdrawn  DisplayLabel = "Overdrawn"
	LabelMarginDebt DisplayLabel = "Margin Debt"
)

// NetWorthEffect is the direction in which an account moves net worth.
type NetWorthEffect string

const (
	EffectPositive NetWorthEffect = "positive"
	EffectNegative NetWorthEffect = "negative"
	EffectNeutral  NetWorthEffect = "neutral"
)

// Account is a raw account snapshot as reported by the provider.
// CurrentBalance keeps the provider's own sign convention.
type Account struct {
	ID             string           `json:"id"`
	Type           AccountType      `json:"type"`
	CurrentBalance decimal.Decimal  `json:"current_balance"`
	CreditLimit    *decimal.Decimal `json:"credit_limit,omitempty"` // nil when the account has no credit line
}

// NormalizedBalance is the read-time view of an account balance.
type NormalizedBalance struct {
	AccountID       string          `json:"account_id"`
	CurrentBalance  decimal.Decimal `json:"current_balance"`
	DisplayAmount   decimal.Decimal `json:"display_amount"`
	DisplayLabel    DisplayLabel    `json:"display_label"`
	AffectsNetWorth NetWorthEffect  `json:"affects_net_worth"`
	AccountNature   AccountNature   `json:"account_nature"`
}

// FinancialTotals aggregates a set of accounts.
type FinancialTotals struct {
	TotalAssets      decimal.Decimal `json:"total_assets"`
	TotalLiabilities decimal.Decimal `json:"total_liabilities"`
	NetWorth         decimal.Decimal `json:"net_worth"`
}
