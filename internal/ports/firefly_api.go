package ports

import (
	"context"
	"time"
)

const AccountTypeAsset = "asset"

type SystemInfo struct {
	Version    string
	APIVersion string
	PHPVersion string
	OS         string
	Driver     string
}

type Account struct {
	ID             string
	Name           string
	Type           string
	CurrentBalance float64
}

type Category struct {
	ID   string
	Name string
}

// PiggyBank.TargetAmount is nil when the piggy bank has no target.
type PiggyBank struct {
	ID            string
	Name          string
	TargetAmount  *float64
	CurrentAmount float64
}

// DateRange filters transaction lists by date. A zero bound means no filter.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Day returns a range covering the single calendar day of t.
func Day(t time.Time) DateRange {
	return DateRange{Start: t, End: t}
}

type FireflyAPI interface {
	About(ctx context.Context) (SystemInfo, error)
	CountTransactions(ctx context.Context, r DateRange) (int, error)
	CountBills(ctx context.Context) (int, error)
	ListAccounts(ctx context.Context, accountType string) ([]Account, int, error)
	GetAccount(ctx context.Context, id string) (Account, error)
	CountAccountTransactions(ctx context.Context, id string, r DateRange) (int, error)
	ListCategories(ctx context.Context) ([]Category, int, error)
	CountCategoryTransactions(ctx context.Context, id string, r DateRange) (int, error)
	ListPiggyBanks(ctx context.Context) ([]PiggyBank, int, error)
	GetPiggyBank(ctx context.Context, id string) (PiggyBank, error)
}
