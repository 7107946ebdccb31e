// Package feed pulls project records from a remote JSON endpoint.
package feed

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"changemakers-go/internal/model"
	"changemakers-go/internal/providers/common"
)

const (
	feedPageLimit = 4
	feedTimeout   = 15 * time.Second
	maxFeedPages  = 100
)

var ErrTooManyPages = errors.New("feed reports too many pages")

// Source reads a feed that is either a bare JSON array of projects or a
// paged envelope: {"data": [...], "meta": {"pagination": {"total_pages": n}}}.
// Pages are requested with ?page=n.
type Source struct {
	client *http.Client
	base   string
	logger *zap.Logger
}

func NewSource(client *http.Client, base string, logger *zap.Logger) *Source {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Source{client: client, base: base, logger: logger.With(zap.String("source", "feed"))}
}

func (s *Source) Name() string {
	return "feed"
}

type pagedResponse struct {
	Data []map[string]any `json:"data"`
	Meta struct {
		Pagination struct {
			TotalPages any `json:"total_pages"`
		} `json:"pagination"`
	} `json:"meta"`
}

func (s *Source) Fetch(ctx context.Context) ([]model.Project, error) {
	firstPage, totalPages, err := s.fetchPage(ctx, 1)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("page fetched", zap.Int("page", 1), zap.Int("items", len(firstPage)), zap.Int("total_pages", totalPages))
	if totalPages <= 1 {
		return firstPage, nil
	}
	if totalPages > maxFeedPages {
		return nil, fmt.Errorf("%w: %d (max %d)", ErrTooManyPages, totalPages, maxFeedPages)
	}

	pages := make([][]model.Project, totalPages+1)
	pages[1] = firstPage

	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(feedPageLimit)

	var mu sync.Mutex
	for page := 2; page <= totalPages; page++ {
		current := page
		group.Go(func() error {
			items, _, err := s.fetchPage(gctx, current)
			if err != nil {
				return fmt.Errorf("page %d: %w", current, err)
			}
			s.logger.Debug("page fetched", zap.Int("page", current), zap.Int("items", len(items)))
			mu.Lock()
			pages[current] = items
			mu.Unlock()
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	var projects []model.Project
	for _, items := range pages {
		projects = append(projects, items...)
	}
	return projects, nil
}

func (s *Source) fetchPage(ctx context.Context, page int) ([]model.Project, int, error) {
	reqCtx, cancel := context.WithTimeout(ctx, feedTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, s.base, nil)
	if err != nil {
		return nil, 0, err
	}
	if page > 1 {
		q := req.URL.Query()
		q.Set("page", strconv.Itoa(page))
		req.URL.RawQuery = q.Encode()
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, 0, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var raw json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, 0, fmt.Errorf("decode feed: %w", err)
	}

	items, totalPages, err := decodePayload(raw)
	if err != nil {
		return nil, 0, err
	}

	projects := make([]model.Project, 0, len(items))
	for _, item := range items {
		project, ok := parseProject(item)
		if !ok {
			continue
		}
		projects = append(projects, project)
	}
	return projects, totalPages, nil
}

func decodePayload(raw json.RawMessage) ([]map[string]any, int, error) {
	trimmed := bytes.TrimSpace(raw)
	decoder := json.NewDecoder(bytes.NewReader(trimmed))
	decoder.UseNumber()

	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []map[string]any
		if err := decoder.Decode(&items); err != nil {
			return nil, 0, fmt.Errorf("decode feed: %w", err)
		}
		return items, 1, nil
	}

	var paged pagedResponse
	if err := decoder.Decode(&paged); err != nil {
		return nil, 0, fmt.Errorf("decode feed: %w", err)
	}
	return paged.Data, int(common.ToInt64(paged.Meta.Pagination.TotalPages)), nil
}

func parseProject(p map[string]any) (model.Project, bool) {
	id := common.ToString(p["id"])
	if id == "" {
		return model.Project{}, false
	}

	return model.Project{
		ID:            id,
		Title:         pickTitle(common.ToString(p["title"])),
		Description:   common.PlainText(common.ToString(p["description"])),
		Location:      common.ToString(p["location"]),
		Category:      common.ToString(p["category"]),
		Progress:      int(common.ToInt64(p["progress"])),
		FundingRaised: common.ToFloat64(pick(p, "fundingRaised", "funding_raised")),
		FundingGoal:   common.ToFloat64(pick(p, "fundingGoal", "funding_goal")),
		Volunteers:    int(common.ToInt64(p["volunteers"])),
		ImageURL:      common.ToString(pick(p, "imageUrl", "image", "profilePicture")),
		Members:       int(common.ToInt64(p["members"])),
	}, true
}

func pick(p map[string]any, keys ...string) any {
	for _, key := range keys {
		if v, ok := p[key]; ok && v != nil {
			return v
		}
	}
	return nil
}

func pickTitle(title string) string {
	if title == "" {
		return "Untitled project"
	}
	return title
}
