package ports

import (
	"context"
	"time"
)

type ResourceKind string

const (
	ResourceTransactions ResourceKind = "transactions"
	ResourceBills        ResourceKind = "bills"
	ResourceAccounts     ResourceKind = "accounts"
	ResourceCategories   ResourceKind = "categories"
	ResourcePiggyBanks   ResourceKind = "piggy_banks"
)

type CycleReport struct {
	Duration time.Duration
	Failures int
	At       time.Time
}

type FinanceMetricsPublisher interface {
	PublishSystemInfo(ctx context.Context, info SystemInfo) error
	PublishResourceTotal(ctx context.Context, kind ResourceKind, total int) error
	PublishAccountTransactions(ctx context.Context, account Account, total int) error
	PublishAccountTransactionsToday(ctx context.Context, account Account, total int) error
	PublishAccountBalance(ctx context.Context, account Account, balance float64) error
	PublishCategoryTransactions(ctx context.Context, category Category, total int) error
	PublishPiggyBankTargetAmount(ctx context.Context, piggyBank PiggyBank, amount float64) error
	PublishPiggyBankCurrentAmount(ctx context.Context, piggyBank PiggyBank, amount float64) error
	PublishRuleFailure(ctx context.Context, rule string) error
	PublishCycle(ctx context.Context, report CycleReport) error
}
