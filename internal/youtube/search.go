package youtube

import (
	"context"
	"fmt"
	"strings"
)

// Search searches YouTube with params merged over the client's defaults.
// Returns only the first page of results (no pagination) to conserve quota;
// each search costs 100 quota units.
func (c *Client) Search(ctx context.Context, query string, params SearchParams) ([]SearchResultItem, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}

	p := c.settings.Search.Merge(params)

	call := c.service.Search.List([]string{"snippet"}).
		Q(query).
		Type(p.Type).
		SafeSearch(p.SafeSearch).
		Order(p.Order).
		MaxResults(p.MaxResults)
	if p.ChannelID != "" {
		call = call.ChannelId(p.ChannelID)
	}
	if p.RegionCode != "" {
		call = call.RegionCode(p.RegionCode)
	}
	if p.RelevanceLanguage != "" {
		call = call.RelevanceLanguage(p.RelevanceLanguage)
	}
	if p.PublishedAfter != "" {
		call = call.PublishedAfter(p.PublishedAfter)
	}
	if p.PublishedBefore != "" {
		call = call.PublishedBefore(p.PublishedBefore)
	}

	resp, err := call.Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	results := make([]SearchResultItem, 0, len(resp.Items))
	for _, item := range resp.Items {
		if !isVideoHit(item) {
			c.logger.Debug("skipping non-video search hit", "kind", item.Id.Kind)
			continue
		}
		result, err := TransformSearchItem(item)
		if err != nil {
			return nil, fmt.Errorf("failed to read search result: %w", err)
		}
		results = append(results, result)
	}

	// The API may return a few more items than requested.
	if int64(len(results)) > p.MaxResults {
		results = results[:p.MaxResults]
	}

	return results, nil
}

// SearchVerbose runs Search, then fetches statistics for every hit. Search
// metadata takes precedence over the fetched snippet. A failed search fails
// the call; a failed lookup only marks its slot.
func (c *Client) SearchVerbose(ctx context.Context, query string, params SearchParams) ([]Result[VideoStats], error) {
	items, err := c.Search(ctx, query, params)
	if err != nil {
		return nil, err
	}

	return fanOut(ctx, c, items, func(item SearchResultItem) string { return item.ID },
		func(ctx context.Context, item SearchResultItem) (VideoStats, error) {
			stats, err := c.GetVideo(ctx, item.ID)
			if err != nil {
				return VideoStats{}, err
			}
			return mergeSearchItem(stats, item), nil
		}), nil
}

func mergeSearchItem(stats VideoStats, item SearchResultItem) VideoStats {
	stats.ID = item.ID
	stats.Title = item.Title
	stats.Image = item.Image
	stats.Author = item.Author
	stats.URL = item.URL
	stats.Type = item.Type
	return stats
}
