package youtube

// SearchParams are the query parameters of a search.list call. The zero value
// of every field means "not set".
type SearchParams struct {
	Type              string `json:"type,omitempty"`
	SafeSearch        string `json:"safeSearch,omitempty"`
	MaxResults        int64  `json:"maxResults,omitempty"`
	Order             string `json:"order,omitempty"`
	ChannelID         string `json:"channelId,omitempty"`
	RegionCode        string `json:"regionCode,omitempty"`
	RelevanceLanguage string `json:"relevanceLanguage,omitempty"`
	PublishedAfter    string `json:"publishedAfter,omitempty"`
	PublishedBefore   string `json:"publishedBefore,omitempty"`
}

// DefaultSearchParams returns the parameters every search starts from.
func DefaultSearchParams() SearchParams {
	return SearchParams{
		Type:       "video",
		SafeSearch: "none",
		MaxResults: 5,
		Order:      "relevance",
	}
}

// Merge returns p overlaid with every set field of override. Neither value is modified.
func (p SearchParams) Merge(override SearchParams) SearchParams {
	merged := p
	if override.Type != "" {
		merged.Type = override.Type
	}
	if override.SafeSearch != "" {
		merged.SafeSearch = override.SafeSearch
	}
	if override.MaxResults > 0 {
		merged.MaxResults = override.MaxResults
	}
	if override.Order != "" {
		merged.Order = override.Order
	}
	if override.ChannelID != "" {
		merged.ChannelID = override.ChannelID
	}
	if override.RegionCode != "" {
		merged.RegionCode = override.RegionCode
	}
	if override.RelevanceLanguage != "" {
		merged.RelevanceLanguage = override.RelevanceLanguage
	}
	if override.PublishedAfter != "" {
		merged.PublishedAfter = override.PublishedAfter
	}
	if override.PublishedBefore != "" {
		merged.PublishedBefore = override.PublishedBefore
	}
	return merged
}
