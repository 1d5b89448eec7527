package posapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"foodrepublic/internal/cart"
	"foodrepublic/internal/domain"
	"github.com/go-resty/resty/v2"
)

// Client talks to the order store's HTTP API.
type Client struct {
	http   *resty.Client
	logger *log.Logger
}

func New(baseURL string, logger *log.Logger) *Client {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	rc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second).
		SetHeader("Content-Type", "application/json")
	return &Client{http: rc, logger: logger}
}

// Tables lists the dining tables known to the store.
func (c *Client) Tables(ctx context.Context) ([]domain.Table, error) {
	resp, err := c.http.R().SetContext(ctx).Get("/api/tables")
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, apiError("list tables", resp)
	}

	var out struct {
		Tables []domain.Table `json:"tables"`
	}
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, fmt.Errorf("decode tables: %w", err)
	}
	return out.Tables, nil
}

// MenuItems lists the catalog for one category.
func (c *Client) MenuItems(ctx context.Context, category string) ([]domain.MenuItem, error) {
	if !domain.ValidCategory(category) {
		return nil, domain.Validation("unknown menu category")
	}

	resp, err := c.http.R().SetContext(ctx).Get("/api/get-" + category)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", category, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, apiError("list "+category, resp)
	}

	var out struct {
		Items []domain.MenuItem `json:"items"`
	}
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, fmt.Errorf("decode %s items: %w", category, err)
	}
	return out.Items, nil
}

// MemberDiscount resolves the discount percent for a member phone
// number. A missing membership maps to domain.ErrNotFound.
func (c *Client) MemberDiscount(ctx context.Context, phone string) (int64, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("search", phone).
		Get("/api/get-members")
	if err != nil {
		return 0, fmt.Errorf("member lookup: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return 0, domain.ErrNotFound
	}
	if resp.StatusCode() != http.StatusOK {
		return 0, apiError("member lookup", resp)
	}

	var out struct {
		Member domain.Member `json:"member"`
	}
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return 0, fmt.Errorf("decode member: %w", err)
	}
	return out.Member.DiscountValue, nil
}

// CreateInvoice submits a finalized order and returns the generated
// invoice id. It satisfies the cart engine's Submitter contract.
func (c *Client) CreateInvoice(ctx context.Context, tableName string, lines []cart.Line, totalBill, totalDiscount int64) (string, error) {
	items := make([]domain.InvoiceLine, 0, len(lines))
	for _, line := range lines {
		items = append(items, domain.InvoiceLine{
			ItemID:    line.ItemID,
			ItemName:  line.ItemName,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
			TableName: line.TableName,
		})
	}

	body := map[string]any{
		"table_name":     tableName,
		"items":          items,
		"total_bill":     totalBill,
		"total_discount": totalDiscount,
	}

	resp, err := c.http.R().SetContext(ctx).SetBody(body).Post("/api/post-sold-invoices")
	if err != nil {
		return "", fmt.Errorf("submit invoice: %w", err)
	}
	if resp.StatusCode() != http.StatusCreated && resp.StatusCode() != http.StatusOK {
		return "", apiError("submit invoice", resp)
	}

	var out struct {
		InsertedID string `json:"insertedId"`
	}
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return "", fmt.Errorf("decode invoice response: %w", err)
	}
	if out.InsertedID == "" {
		return "", fmt.Errorf("submit invoice: missing insertedId in response")
	}
	return out.InsertedID, nil
}

func apiError(op string, resp *resty.Response) error {
	var out struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(resp.Body(), &out); err == nil && out.Error != "" {
		return fmt.Errorf("%s: %s (status %d)", op, out.Error, resp.StatusCode())
	}
	return fmt.Errorf("%s: unexpected status %d", op, resp.StatusCode())
}
