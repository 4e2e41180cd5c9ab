package prometheus

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/khmm12/firefly-exporter/internal/ports"
)

var _ ports.FinanceMetricsPublisher = (*FinanceMetricsPublisher)(nil)

// FinanceMetricsPublisher writes collected figures into the exporter gauges.
// Every series carries the installation base URL as its first label.
type FinanceMetricsPublisher struct {
	logger   *slog.Logger
	exporter *Exporter
	baseURL  string
}

func NewFinanceMetricsPublisher(logger *slog.Logger, exporter *Exporter, baseURL string) *FinanceMetricsPublisher {
	return &FinanceMetricsPublisher{
		logger:   logger,
		exporter: exporter,
		baseURL:  baseURL,
	}
}

func (p *FinanceMetricsPublisher) PublishSystemInfo(ctx context.Context, info ports.SystemInfo) error {
	p.logger.DebugContext(ctx, "Publishing system info",
		slog.String("version", info.Version),
		slog.String("api_version", info.APIVersion),
	)

	vec := p.exporter.metrics.systemInfo

	// Only the current version tuple is kept, an upgrade must not leave the old one behind.
	vec.Reset()

	return set(vec, 1, p.baseURL, info.Version, info.APIVersion, info.PHPVersion, info.OS, info.Driver)
}

func (p *FinanceMetricsPublisher) PublishResourceTotal(ctx context.Context, kind ports.ResourceKind, total int) error {
	m := p.exporter.metrics

	var vec *prometheus.GaugeVec

	switch kind {
	case ports.ResourceTransactions:
		vec = m.transactionsCount
	case ports.ResourceBills:
		vec = m.billsCount
	case ports.ResourceAccounts:
		vec = m.accountsCount
	case ports.ResourceCategories:
		vec = m.categoriesCount
	case ports.ResourcePiggyBanks:
		vec = m.piggyBanksCount
	default:
		return fmt.Errorf("unknown resource kind %q", kind)
	}

	p.logger.DebugContext(ctx, "Publishing resource total", slog.String("kind", string(kind)), slog.Int("total", total))

	return set(vec, float64(total), p.baseURL)
}

func (p *FinanceMetricsPublisher) PublishAccountTransactions(_ context.Context, account ports.Account, total int) error {
	return set(p.exporter.metrics.accountTransactionsCount, float64(total), p.baseURL, account.ID, account.Name)
}

func (p *FinanceMetricsPublisher) PublishAccountTransactionsToday(_ context.Context, account ports.Account, total int) error {
	return set(p.exporter.metrics.accountTransactionsTodayCount, float64(total), p.baseURL, account.ID, account.Name)
}

func (p *FinanceMetricsPublisher) PublishAccountBalance(_ context.Context, account ports.Account, balance float64) error {
	return set(p.exporter.metrics.accountCurrentBalance, balance, p.baseURL, account.ID, account.Name)
}

func (p *FinanceMetricsPublisher) PublishCategoryTransactions(_ context.Context, category ports.Category, total int) error {
	return set(p.exporter.metrics.categoryTransactionsCount, float64(total), p.baseURL, category.ID, category.Name)
}

func (p *FinanceMetricsPublisher) PublishPiggyBankTargetAmount(_ context.Context, piggyBank ports.PiggyBank, amount float64) error {
	return set(p.exporter.metrics.piggyBankTargetAmount, amount, p.baseURL, piggyBank.ID, piggyBank.Name)
}

func (p *FinanceMetricsPublisher) PublishPiggyBankCurrentAmount(_ context.Context, piggyBank ports.PiggyBank, amount float64) error {
	return set(p.exporter.metrics.piggyBankCurrentAmount, amount, p.baseURL, piggyBank.ID, piggyBank.Name)
}

func (p *FinanceMetricsPublisher) PublishRuleFailure(_ context.Context, rule string) error {
	c, err := p.exporter.metrics.ruleFailures.GetMetricWithLabelValues(rule)
	if err != nil {
		return fmt.Errorf("failed to resolve rule failure counter: %w", err)
	}

	c.Inc()

	return nil
}

func (p *FinanceMetricsPublisher) PublishCycle(ctx context.Context, report ports.CycleReport) error {
	p.logger.DebugContext(ctx, "Publishing collection cycle",
		slog.Group("cycle",
			slog.Duration("duration", report.Duration),
			slog.Int("failures", report.Failures),
		))

	m := p.exporter.metrics

	var success float64
	if report.Failures == 0 {
		success = 1.0
	}

	m.collectionSuccess.Set(success)
	m.collectionDuration.Set(report.Duration.Seconds())
	m.lastCollectionTimestamp.Set(float64(report.At.UnixNano()) / 1e9)

	return nil
}

func set(vec *prometheus.GaugeVec, value float64, labels ...string) error {
	g, err := vec.GetMetricWithLabelValues(labels...)
	if err != nil {
		return fmt.Errorf("failed to resolve series: %w", err)
	}

	g.Set(value)

	return nil
}
