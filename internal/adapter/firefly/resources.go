package firefly

import (
	"context"
	"maps"
	"net/url"
	"strconv"

	"github.com/khmm12/firefly-exporter/internal/ports"
)

const dateLayout = "2006-01-02"

type pagination struct {
	Total       int `json:"total"`
	CurrentPage int `json:"current_page"`
	TotalPages  int `json:"total_pages"`
}

type listMeta struct {
	Pagination *pagination `json:"pagination"`
}

type resource[A any] struct {
	ID         string `json:"id"`
	Attributes A      `json:"attributes"`
}

type listDocument[A any] struct {
	Data []resource[A] `json:"data"`
	Meta listMeta      `json:"meta"`
}

type countDocument struct {
	Meta listMeta `json:"meta"`
}

type itemDocument[A any] struct {
	Data *resource[A] `json:"data"`
}

type aboutDocument struct {
	Data *struct {
		Version    string `json:"version"`
		APIVersion string `json:"api_version"`
		PHPVersion string `json:"php_version"`
		OS         string `json:"os"`
		Driver     string `json:"driver"`
	} `json:"data"`
}

type accountAttributes struct {
	Name           string `json:"name"`
	Type           string `json:"type"`
	CurrentBalance amount `json:"current_balance"`
}

type categoryAttributes struct {
	Name string `json:"name"`
}

type piggyBankAttributes struct {
	Name          string `json:"name"`
	TargetAmount  amount `json:"target_amount"`
	CurrentAmount amount `json:"current_amount"`
}

var _ ports.FireflyAPI = (*Client)(nil)

func (c *Client) About(ctx context.Context) (ports.SystemInfo, error) {
	const endpoint = "/about"

	var doc aboutDocument
	if err := c.fetch(ctx, endpoint, nil, &doc); err != nil {
		return ports.SystemInfo{}, err
	}

	if doc.Data == nil {
		return ports.SystemInfo{}, missingField(endpoint, "data")
	}

	return ports.SystemInfo{
		Version:    doc.Data.Version,
		APIVersion: doc.Data.APIVersion,
		PHPVersion: doc.Data.PHPVersion,
		OS:         doc.Data.OS,
		Driver:     doc.Data.Driver,
	}, nil
}

func (c *Client) CountTransactions(ctx context.Context, r ports.DateRange) (int, error) {
	return c.count(ctx, "/transactions", dateQuery(r))
}

func (c *Client) CountBills(ctx context.Context) (int, error) {
	return c.count(ctx, "/bills", nil)
}

// ListAccounts returns every account of the given type across all pages and the
// total reported by the server.
func (c *Client) ListAccounts(ctx context.Context, accountType string) ([]ports.Account, int, error) {
	const endpoint = "/accounts"

	query := url.Values{}
	if accountType != "" {
		query.Set("type", accountType)
	}

	items, total, err := list[accountAttributes](ctx, c, endpoint, query)
	if err != nil {
		return nil, 0, err
	}

	accounts := make([]ports.Account, 0, len(items))
	for _, item := range items {
		// The server is asked for the type already; items of any other type are
		// still dropped.
		if accountType != "" && item.Attributes.Type != accountType {
			continue
		}

		accounts = append(accounts, ports.Account{
			ID:             item.ID,
			Name:           item.Attributes.Name,
			Type:           item.Attributes.Type,
			CurrentBalance: item.Attributes.CurrentBalance.value,
		})
	}

	return accounts, total, nil
}

func (c *Client) GetAccount(ctx context.Context, id string) (ports.Account, error) {
	endpoint := "/accounts/" + url.PathEscape(id)

	var doc itemDocument[accountAttributes]
	if err := c.fetch(ctx, endpoint, nil, &doc); err != nil {
		return ports.Account{}, err
	}

	if doc.Data == nil {
		return ports.Account{}, missingField(endpoint, "data")
	}

	if !doc.Data.Attributes.CurrentBalance.valid {
		return ports.Account{}, missingField(endpoint, "data.attributes.current_balance")
	}

	return ports.Account{
		ID:             doc.Data.ID,
		Name:           doc.Data.Attributes.Name,
		Type:           doc.Data.Attributes.Type,
		CurrentBalance: doc.Data.Attributes.CurrentBalance.value,
	}, nil
}

func (c *Client) CountAccountTransactions(ctx context.Context, id string, r ports.DateRange) (int, error) {
	return c.count(ctx, "/accounts/"+url.PathEscape(id)+"/transactions", dateQuery(r))
}

func (c *Client) ListCategories(ctx context.Context) ([]ports.Category, int, error) {
	items, total, err := list[categoryAttributes](ctx, c, "/categories", nil)
	if err != nil {
		return nil, 0, err
	}

	categories := make([]ports.Category, 0, len(items))
	for _, item := range items {
		categories = append(categories, ports.Category{
			ID:   item.ID,
			Name: item.Attributes.Name,
		})
	}

	return categories, total, nil
}

func (c *Client) CountCategoryTransactions(ctx context.Context, id string, r ports.DateRange) (int, error) {
	return c.count(ctx, "/categories/"+url.PathEscape(id)+"/transactions", dateQuery(r))
}

func (c *Client) ListPiggyBanks(ctx context.Context) ([]ports.PiggyBank, int, error) {
	items, total, err := list[piggyBankAttributes](ctx, c, "/piggy_banks", nil)
	if err != nil {
		return nil, 0, err
	}

	piggyBanks := make([]ports.PiggyBank, 0, len(items))
	for _, item := range items {
		piggyBanks = append(piggyBanks, toPiggyBank(item))
	}

	return piggyBanks, total, nil
}

func (c *Client) GetPiggyBank(ctx context.Context, id string) (ports.PiggyBank, error) {
	endpoint := "/piggy_banks/" + url.PathEscape(id)

	var doc itemDocument[piggyBankAttributes]
	if err := c.fetch(ctx, endpoint, nil, &doc); err != nil {
		return ports.PiggyBank{}, err
	}

	if doc.Data == nil {
		return ports.PiggyBank{}, missingField(endpoint, "data")
	}

	if !doc.Data.Attributes.CurrentAmount.valid {
		return ports.PiggyBank{}, missingField(endpoint, "data.attributes.current_amount")
	}

	return toPiggyBank(*doc.Data), nil
}

func (c *Client) count(ctx context.Context, endpoint string, query url.Values) (int, error) {
	var doc countDocument
	if err := c.fetch(ctx, endpoint, query, &doc); err != nil {
		return 0, err
	}

	if doc.Meta.Pagination == nil {
		return 0, missingField(endpoint, "meta.pagination")
	}

	return doc.Meta.Pagination.Total, nil
}

// list walks all pages of endpoint. The returned total is the one reported on
// the first page.
func list[A any](ctx context.Context, c *Client, endpoint string, query url.Values) ([]resource[A], int, error) {
	var (
		items []resource[A]
		total int
	)

	for page := 1; ; page++ {
		q := url.Values{}
		maps.Copy(q, query)

		if page > 1 {
			q.Set("page", strconv.Itoa(page))
		}

		var doc listDocument[A]
		if err := c.fetch(ctx, endpoint, q, &doc); err != nil {
			return nil, 0, err
		}

		if doc.Meta.Pagination == nil {
			return nil, 0, missingField(endpoint, "meta.pagination")
		}

		if page == 1 {
			total = doc.Meta.Pagination.Total
		}

		items = append(items, doc.Data...)

		if len(doc.Data) == 0 || page >= doc.Meta.Pagination.TotalPages {
			return items, total, nil
		}
	}
}

func toPiggyBank(item resource[piggyBankAttributes]) ports.PiggyBank {
	return ports.PiggyBank{
		ID:            item.ID,
		Name:          item.Attributes.Name,
		TargetAmount:  item.Attributes.TargetAmount.ptr(),
		CurrentAmount: item.Attributes.CurrentAmount.value,
	}
}

func dateQuery(r ports.DateRange) url.Values {
	q := url.Values{}

	if !r.Start.IsZero() {
		q.Set("start", r.Start.Format(dateLayout))
	}

	if !r.End.IsZero() {
		q.Set("end", r.End.Format(dateLayout))
	}

	return q
}

func missingField(endpoint, field string) error {
	return &ports.MalformedResponseError{Endpoint: endpoint, Reason: "missing " + field}
}
