package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	systemInfo *prometheus.GaugeVec

	transactionsCount *prometheus.GaugeVec
	billsCount        *prometheus.GaugeVec
	accountsCount     *prometheus.GaugeVec
	piggyBanksCount   *prometheus.GaugeVec
	categoriesCount   *prometheus.GaugeVec

	accountTransactionsCount      *prometheus.GaugeVec
	accountTransactionsTodayCount *prometheus.GaugeVec
	accountCurrentBalance         *prometheus.GaugeVec

	categoryTransactionsCount *prometheus.GaugeVec

	piggyBankTargetAmount  *prometheus.GaugeVec
	piggyBankCurrentAmount *prometheus.GaugeVec

	collectionDuration      prometheus.Gauge
	collectionSuccess       prometheus.Gauge
	lastCollectionTimestamp prometheus.Gauge
	ruleFailures            *prometheus.CounterVec

	apiRequests        *prometheus.CounterVec
	apiRequestDuration *prometheus.HistogramVec
	apiInFlight        prometheus.Gauge
}

const (
	prefix         = "firefly_"
	exporterPrefix = prefix + "exporter_"
)

var (
	baseLabels      = []string{"baseurl"}
	accountLabels   = []string{"baseurl", "account_id", "account_name"}
	categoryLabels  = []string{"baseurl", "category_id", "category_name"}
	piggyBankLabels = []string{"baseurl", "piggybank_id", "piggybank_name"}
)

func newMetrics(reg *prometheus.Registry) (*metrics, error) {
	m := &metrics{
		systemInfo: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: prefix + "system_info",
			Help: "Firefly III installation info (always 1)",
		}, []string{"baseurl", "version", "api_version", "php_version", "os", "driver"}),
		transactionsCount: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: prefix + "transactions_count",
			Help: "Total number of transactions",
		}, baseLabels),
		billsCount: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: prefix + "bills_count",
			Help: "Total number of bills",
		}, baseLabels),
		accountsCount: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: prefix + "accounts_count",
			Help: "Total number of asset accounts",
		}, baseLabels),
		piggyBanksCount: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: prefix + "piggybanks_count",
			Help: "Total number of piggy banks",
		}, baseLabels),
		categoriesCount: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: prefix + "categories_count",
			Help: "Total number of categories",
		}, baseLabels),
		accountTransactionsCount: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: prefix + "account_transactions_count",
			Help: "Total number of transactions of an asset account",
		}, accountLabels),
		accountTransactionsTodayCount: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: prefix + "account_transactions_today_count",
			Help: "Number of transactions of an asset account dated today",
		}, accountLabels),
		accountCurrentBalance: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: prefix + "account_current_balance",
			Help: "Current balance of an asset account",
		}, accountLabels),
		categoryTransactionsCount: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: prefix + "category_transactions_count",
			Help: "Total number of transactions of a category",
		}, categoryLabels),
		piggyBankTargetAmount: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: prefix + "piggybank_target_amount",
			Help: "Target amount of a piggy bank",
		}, piggyBankLabels),
		piggyBankCurrentAmount: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: prefix + "piggybank_current_amount",
			Help: "Amount currently saved in a piggy bank",
		}, piggyBankLabels),
		collectionDuration: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: exporterPrefix + "collection_duration_seconds",
			Help: "Duration of the last collection cycle",
		}),
		collectionSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: exporterPrefix + "collection_success",
			Help: "Whether the last collection cycle succeeded (1: success, 0: failure)",
		}),
		lastCollectionTimestamp: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: exporterPrefix + "last_collection_timestamp_seconds",
			Help: "Unix time the last collection cycle finished",
		}),
		ruleFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: exporterPrefix + "rule_failures_total",
			Help: "Number of failed collection rules",
		}, []string{"rule"}),
		apiRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: exporterPrefix + "api_requests_total",
			Help: "Number of requests sent to the Firefly III API",
		}, []string{"code", "method"}),
		apiRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    exporterPrefix + "api_request_duration_seconds",
			Help:    "Latency of requests sent to the Firefly III API",
			Buckets: prometheus.DefBuckets,
		}, []string{"method"}),
		apiInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: exporterPrefix + "api_requests_in_flight",
			Help: "Number of requests to the Firefly III API in flight",
		}),
	}

	err := register(reg,
		m.systemInfo,
		m.transactionsCount,
		m.billsCount,
		m.accountsCount,
		m.piggyBanksCount,
		m.categoriesCount,
		m.accountTransactionsCount,
		m.accountTransactionsTodayCount,
		m.accountCurrentBalance,
		m.categoryTransactionsCount,
		m.piggyBankTargetAmount,
		m.piggyBankCurrentAmount,
		m.collectionDuration,
		m.collectionSuccess,
		m.lastCollectionTimestamp,
		m.ruleFailures,
		m.apiRequests,
		m.apiRequestDuration,
		m.apiInFlight,
	)
	if err != nil {
		return nil, err
	}

	return m, nil
}

func register(r *prometheus.Registry, cs ...prometheus.Collector) error {
	for i, c := range cs {
		if err := r.Register(c); err != nil {
			for _, c := range cs[:i] {
				r.Unregister(c)
			}

			return err
		}
	}

	return nil
}
