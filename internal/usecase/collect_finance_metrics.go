package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/khmm12/firefly-exporter/internal/common/logging"
	"github.com/khmm12/firefly-exporter/internal/ports"
)

const (
	RuleSystemInfo               = "system_info"
	RuleTransactions             = "transactions"
	RuleBills                    = "bills"
	RuleAccounts                 = "accounts"
	RuleAccountTransactions      = "account_transactions"
	RuleAccountTransactionsToday = "account_transactions_today"
	RuleAccountBalance           = "account_balance"
	RuleCategories               = "categories"
	RuleCategoryTransactions     = "category_transactions"
	RulePiggyBanks               = "piggybanks"
	RulePiggyBankTarget          = "piggybank_target"
	RulePiggyBankCurrent         = "piggybank_current"
)

// CollectFinanceMetricsUseCase runs one poll cycle against the Firefly III API
// and publishes the derived figures. Rules run one after another.
type CollectFinanceMetricsUseCase struct {
	logger    *slog.Logger
	api       ports.FireflyAPI
	publisher ports.FinanceMetricsPublisher
	failFast  bool
}

func NewCollectFinanceMetricsUseCase(logger *slog.Logger, api ports.FireflyAPI, publisher ports.FinanceMetricsPublisher, failFast bool) *CollectFinanceMetricsUseCase {
	return &CollectFinanceMetricsUseCase{
		logger:    logger,
		api:       api,
		publisher: publisher,
		failFast:  failFast,
	}
}

type CollectFinanceMetricsCommand struct {
	// Today is the day counted by the account_transactions_today rule.
	Today time.Time
}

type rule struct {
	name    string
	collect func(ctx context.Context, c *cycle) error
}

// cycle holds the enumerations shared by the rules of a single run. Details
// fetched per item are never kept.
type cycle struct {
	cmd CollectFinanceMetricsCommand

	accounts   *listing[ports.Account]
	categories *listing[ports.Category]
	piggyBanks *listing[ports.PiggyBank]
}

type listing[T any] struct {
	fetched bool
	items   []T
	total   int
	err     error
}

func (l *listing[T]) get(fetch func() ([]T, int, error)) ([]T, int, error) {
	if !l.fetched {
		l.items, l.total, l.err = fetch()
		l.fetched = true
	}

	return l.items, l.total, l.err
}

// Execute runs every rule. With fail-fast enabled the first failing rule
// aborts the cycle; otherwise failed rules are skipped, their series keep the
// previous values and all failures are returned joined.
func (u *CollectFinanceMetricsUseCase) Execute(ctx context.Context, cmd CollectFinanceMetricsCommand) error {
	start := time.Now()

	c := &cycle{
		cmd:        cmd,
		accounts:   &listing[ports.Account]{},
		categories: &listing[ports.Category]{},
		piggyBanks: &listing[ports.PiggyBank]{},
	}

	var errs []error

	for _, r := range u.rules() {
		err := r.collect(ctx, c)
		if err == nil {
			continue
		}

		err = fmt.Errorf("failed to collect %s: %w", r.name, err)
		errs = append(errs, err)

		if perr := u.publisher.PublishRuleFailure(ctx, r.name); perr != nil {
			u.logger.ErrorContext(ctx, "Failed to publish rule failure", logging.Error(perr))
		}

		if u.failFast || ctx.Err() != nil {
			break
		}

		u.logger.WarnContext(ctx, "Skipping rule", slog.String("rule", r.name), logging.Error(err))
	}

	report := ports.CycleReport{
		Duration: time.Since(start),
		Failures: len(errs),
		At:       time.Now(),
	}

	if err := u.publisher.PublishCycle(ctx, report); err != nil {
		errs = append(errs, fmt.Errorf("failed to publish cycle report: %w", err))
	}

	return errors.Join(errs...)
}

func (u *CollectFinanceMetricsUseCase) rules() []rule {
	return []rule{
		{RuleSystemInfo, u.collectSystemInfo},
		{RuleTransactions, u.collectTransactions},
		{RuleBills, u.collectBills},
		{RuleAccounts, u.collectAccounts},
		{RuleAccountTransactions, u.collectAccountTransactions},
		{RuleAccountTransactionsToday, u.collectAccountTransactionsToday},
		{RuleAccountBalance, u.collectAccountBalances},
		{RuleCategories, u.collectCategories},
		{RuleCategoryTransactions, u.collectCategoryTransactions},
		{RulePiggyBanks, u.collectPiggyBanks},
		{RulePiggyBankTarget, u.collectPiggyBankTargets},
		{RulePiggyBankCurrent, u.collectPiggyBankCurrentAmounts},
	}
}

func (u *CollectFinanceMetricsUseCase) collectSystemInfo(ctx context.Context, _ *cycle) error {
	info, err := u.api.About(ctx)
	if err != nil {
		return err
	}

	return u.publisher.PublishSystemInfo(ctx, info)
}

func (u *CollectFinanceMetricsUseCase) collectTransactions(ctx context.Context, _ *cycle) error {
	total, err := u.api.CountTransactions(ctx, ports.DateRange{})
	if err != nil {
		return err
	}

	return u.publisher.PublishResourceTotal(ctx, ports.ResourceTransactions, total)
}

func (u *CollectFinanceMetricsUseCase) collectBills(ctx context.Context, _ *cycle) error {
	total, err := u.api.CountBills(ctx)
	if err != nil {
		return err
	}

	return u.publisher.PublishResourceTotal(ctx, ports.ResourceBills, total)
}

func (u *CollectFinanceMetricsUseCase) collectAccounts(ctx context.Context, c *cycle) error {
	_, total, err := u.assetAccounts(ctx, c)
	if err != nil {
		return err
	}

	return u.publisher.PublishResourceTotal(ctx, ports.ResourceAccounts, total)
}

func (u *CollectFinanceMetricsUseCase) collectAccountTransactions(ctx context.Context, c *cycle) error {
	accounts, _, err := u.assetAccounts(ctx, c)
	if err != nil {
		return err
	}

	for _, account := range accounts {
		total, err := u.api.CountAccountTransactions(ctx, account.ID, ports.DateRange{})
		if err != nil {
			return fmt.Errorf("account %s: %w", account.ID, err)
		}

		if err := u.publisher.PublishAccountTransactions(ctx, account, total); err != nil {
			return err
		}
	}

	return nil
}

func (u *CollectFinanceMetricsUseCase) collectAccountTransactionsToday(ctx context.Context, c *cycle) error {
	accounts, _, err := u.assetAccounts(ctx, c)
	if err != nil {
		return err
	}

	day := ports.Day(c.cmd.Today)

	for _, account := range accounts {
		total, err := u.api.CountAccountTransactions(ctx, account.ID, day)
		if err != nil {
			return fmt.Errorf("account %s: %w", account.ID, err)
		}

		if err := u.publisher.PublishAccountTransactionsToday(ctx, account, total); err != nil {
			return err
		}
	}

	return nil
}

func (u *CollectFinanceMetricsUseCase) collectAccountBalances(ctx context.Context, c *cycle) error {
	accounts, _, err := u.assetAccounts(ctx, c)
	if err != nil {
		return err
	}

	for _, account := range accounts {
		detail, err := u.api.GetAccount(ctx, account.ID)
		if err != nil {
			return fmt.Errorf("account %s: %w", account.ID, err)
		}

		// Labels come from the enumeration so all per-account series agree.
		if err := u.publisher.PublishAccountBalance(ctx, account, detail.CurrentBalance); err != nil {
			return err
		}
	}

	return nil
}

func (u *CollectFinanceMetricsUseCase) collectCategories(ctx context.Context, c *cycle) error {
	_, total, err := u.categories(ctx, c)
	if err != nil {
		return err
	}

	return u.publisher.PublishResourceTotal(ctx, ports.ResourceCategories, total)
}

func (u *CollectFinanceMetricsUseCase) collectCategoryTransactions(ctx context.Context, c *cycle) error {
	categories, _, err := u.categories(ctx, c)
	if err != nil {
		return err
	}

	for _, category := range categories {
		total, err := u.api.CountCategoryTransactions(ctx, category.ID, ports.DateRange{})
		if err != nil {
			return fmt.Errorf("category %s: %w", category.ID, err)
		}

		if err := u.publisher.PublishCategoryTransactions(ctx, category, total); err != nil {
			return err
		}
	}

	return nil
}

func (u *CollectFinanceMetricsUseCase) collectPiggyBanks(ctx context.Context, c *cycle) error {
	_, total, err := u.piggyBanks(ctx, c)
	if err != nil {
		return err
	}

	return u.publisher.PublishResourceTotal(ctx, ports.ResourcePiggyBanks, total)
}

func (u *CollectFinanceMetricsUseCase) collectPiggyBankTargets(ctx context.Context, c *cycle) error {
	piggyBanks, _, err := u.piggyBanks(ctx, c)
	if err != nil {
		return err
	}

	for _, piggyBank := range piggyBanks {
		detail, err := u.api.GetPiggyBank(ctx, piggyBank.ID)
		if err != nil {
			return fmt.Errorf("piggy bank %s: %w", piggyBank.ID, err)
		}

		if detail.TargetAmount == nil {
			u.logger.DebugContext(ctx, "Piggy bank has no target amount", slog.String("piggybank_id", piggyBank.ID))
			continue
		}

		if err := u.publisher.PublishPiggyBankTargetAmount(ctx, piggyBank, *detail.TargetAmount); err != nil {
			return err
		}
	}

	return nil
}

func (u *CollectFinanceMetricsUseCase) collectPiggyBankCurrentAmounts(ctx context.Context, c *cycle) error {
	piggyBanks, _, err := u.piggyBanks(ctx, c)
	if err != nil {
		return err
	}

	for _, piggyBank := range piggyBanks {
		detail, err := u.api.GetPiggyBank(ctx, piggyBank.ID)
		if err != nil {
			return fmt.Errorf("piggy bank %s: %w", piggyBank.ID, err)
		}

		if err := u.publisher.PublishPiggyBankCurrentAmount(ctx, piggyBank, detail.CurrentAmount); err != nil {
			return err
		}
	}

	return nil
}

func (u *CollectFinanceMetricsUseCase) assetAccounts(ctx context.Context, c *cycle) ([]ports.Account, int, error) {
	accounts, total, err := c.accounts.get(func() ([]ports.Account, int, error) {
		return u.api.ListAccounts(ctx, ports.AccountTypeAsset)
	})
	if err != nil {
		return nil, 0, err
	}

	assets := make([]ports.Account, 0, len(accounts))
	for _, account := range accounts {
		if account.Type != ports.AccountTypeAsset {
			continue
		}

		assets = append(assets, account)
	}

	return assets, total, nil
}

func (u *CollectFinanceMetricsUseCase) categories(ctx context.Context, c *cycle) ([]ports.Category, int, error) {
	return c.categories.get(func() ([]ports.Category, int, error) {
		return u.api.ListCategories(ctx)
	})
}

func (u *CollectFinanceMetricsUseCase) piggyBanks(ctx context.Context, c *cycle) ([]ports.PiggyBank, int, error) {
	return c.piggyBanks.get(func() ([]ports.PiggyBank, int, error) {
		return u.api.ListPiggyBanks(ctx)
	})
}
