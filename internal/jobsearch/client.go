// File: internal/jobsearch/client.go
package jobsearch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"gethired/internal/config"
	"gethired/internal/logging"
	"gethired/internal/model"

	"github.com/tidwall/gjson"
)

// maxResponseBytes 上游回應大小上限
const maxResponseBytes = 8 << 20

// Searcher 由 Client 實作，handler 測試時以 fake 取代
type Searcher interface {
	Search(ctx context.Context, query, location string) []model.Job
}

// Client SerpAPI google_jobs 代理
// 任何傳輸或解析失敗都降級為空結果，只記錄警告
type Client struct {
	httpClient      *http.Client
	baseURL         string
	apiKey          string
	defaultLocation string
	logger          logging.Logger
}

func NewClient(cfg config.SearchConfig, logger logging.Logger) *Client {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Client{
		httpClient:      &http.Client{Timeout: cfg.Timeout},
		baseURL:         cfg.BaseURL,
		apiKey:          cfg.APIKey,
		defaultLocation: cfg.DefaultLocation,
		logger:          logger,
	}
}

// Search 永遠回傳非 nil 的切片
func (c *Client) Search(ctx context.Context, query, location string) []model.Job {
	if location == "" {
		location = c.defaultLocation
	}
	jobs, err := c.fetch(ctx, query, location)
	if err != nil {
		c.logger.Warn(ctx, "job search degraded to empty result", "query", query, "location", location, "error", err)
		return []model.Job{}
	}
	return jobs
}

func (c *Client) fetch(ctx context.Context, query, location string) ([]model.Job, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse search url: %w", err)
	}
	q := u.Query()
	q.Set("engine", "google_jobs")
	q.Set("q", query)
	q.Set("location", location)
	q.Set("api_key", c.apiKey)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		// url.Error 會帶上含 api_key 的網址
		var uerr *url.Error
		if errors.As(err, &uerr) {
			err = uerr.Err
		}
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read search response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search api status %d", resp.StatusCode)
	}
	if !gjson.ValidBytes(body) {
		return nil, errors.New("search api returned invalid JSON")
	}
	return parseJobs(gjson.ParseBytes(body))
}

func parseJobs(res gjson.Result) ([]model.Job, error) {
	if msg := res.Get("error"); msg.Exists() && msg.String() != "" {
		return nil, fmt.Errorf("search api error: %s", msg.String())
	}

	jobs := []model.Job{}
	res.Get("jobs_results").ForEach(func(_, item gjson.Result) bool {
		if !item.IsObject() {
			return true
		}
		jobs = append(jobs, model.Job{
			Title:       item.Get("title").String(),
			Company:     item.Get("company_name").String(),
			Location:    item.Get("location").String(),
			Link:        optional(item.Get("related_links.0.link")),
			Description: item.Get("description").String(),
			Contact:     optional(item.Get("job_posting_metadata.source")),
		})
		return true
	})
	return jobs, nil
}

func optional(r gjson.Result) *string {
	if !r.Exists() || r.Type == gjson.Null {
		return nil
	}
	s := r.String()
	return &s
}
