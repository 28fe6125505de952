package gateway

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"mini-networth/internal/domain"
)

// ErrInvalidAccountRecord is returned for rows that cannot become an account.
var ErrInvalidAccountRecord = errors.New("invalid account record")

const (
	colID = iota
	colType
	colCurrentBalance
	colCreditLimit

	minColumns = colCurrentBalance + 1
)

// accountRecord is one CSV row before conversion to decimals.
type accountRecord struct {
	ID             string `validate:"required,max=128"`
	Type           string `validate:"required,uppercase"`
	CurrentBalance string `validate:"required,numeric"`
	CreditLimit    string `validate:"omitempty,numeric"`
}

var validate = validator.New()

// CSVAccountRepository implements the AccountRepository interface for CSV files.
type CSVAccountRepository struct{}

// NewCSVAccountRepository creates a new repository instance.
func NewCSVAccountRepository() *CSVAccountRepository {
	return &CSVAccountRepository{}
}

// GetAccounts reads and parses account snapshot CSV files, in the given order.
func (r *CSVAccountRepository) GetAccounts(ctx context.Context, paths []string) ([]domain.Account, error) {
	var allAccounts []domain.Account

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		accounts, err := readAccountFile(path)
		if err != nil {
			return nil, err
		}
		allAccounts = append(allAccounts, accounts...)
	}
	return allAccounts, nil
}

func readAccountFile(path string) ([]domain.Account, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open account file %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	// Skip header
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("failed to read header from %s: %w", path, err)
	}

	accounts := make([]domain.Account, 0)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading record from %s: %w", path, err)
		}

		line, _ := reader.FieldPos(0)
		account, err := parseAccount(record)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", path, line, err)
		}
		accounts = append(accounts, account)
	}
	return accounts, nil
}

func parseAccount(record []string) (domain.Account, error) {
	if len(record) < minColumns {
		return domain.Account{}, fmt.Errorf("%w: expected at least %d columns, got %d", ErrInvalidAccountRecord, minColumns, len(record))
	}

	row := accountRecord{
		ID:             strings.TrimSpace(record[colID]),
		Type:           strings.TrimSpace(record[colType]),
		CurrentBalance: strings.TrimSpace(record[colCurrentBalance]),
	}
	if len(record) > colCreditLimit {
		row.CreditLimit = strings.TrimSpace(record[colCreditLimit])
	}

	if err := validate.Struct(&row); err != nil {
		return domain.Account{}, fmt.Errorf("%w: %v", ErrInvalidAccountRecord, err)
	}

	balance, err := decimal.NewFromString(row.CurrentBalance)
	if err != nil {
		return domain.Account{}, fmt.Errorf("%w: could not parse current_balance '%s': %v", ErrInvalidAccountRecord, row.CurrentBalance, err)
	}

	account := domain.Account{
		ID:             row.ID,
		Type:           domain.AccountType(row.Type),
		CurrentBalance: balance,
	}

	if row.CreditLimit != "" {
		limit, err := decimal.NewFromString(row.CreditLimit)
		if err != nil {
			return domain.Account{}, fmt.Errorf("%w: could not parse credit_limit '%s': %v", ErrInvalidAccountRecord, row.CreditLimit, err)
		}
		account.CreditLimit = &limit
	}

	return account, nil
}
