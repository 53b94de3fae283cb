// Package searchview holds the state of the video search view, independent of
// how it is drawn.
//
// State is a value, every transition returns a new State. The network call is
// made by Orchestrator outside of the state and fed back through State.Resolve,
// which drops any outcome that does not belong to the latest submission.
package searchview

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Laisky/video-search/library/askapi"
)

// UrlResult is one video link of a response, with a positional title.
type UrlResult struct {
	URL   string `json:"url" yaml:"url"`
	Title string `json:"title" yaml:"title"`
}

// Thumbnail returns the preview image of the result, see Thumbnail.
func (r UrlResult) Thumbnail() (string, bool) {
	return Thumbnail(r.URL)
}

// Response is the view's copy of a successful answer.
type Response struct {
	Answer     string      `json:"answer" yaml:"answer"`
	Query      string      `json:"query" yaml:"query"`
	TokensUsed int         `json:"tokensUsed" yaml:"tokensUsed"`
	URLResults []UrlResult `json:"urlResults" yaml:"urlResults"`
	Success    bool        `json:"success" yaml:"success"`
	Error      *string     `json:"error" yaml:"error"`
	// Dropped counts raw results that carried no usable url.
	Dropped   int    `json:"dropped,omitempty" yaml:"dropped,omitempty"`
	Timestamp string `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`
}

// NewResponse converts the API envelope into a Response.
func NewResponse(resp *askapi.AskResponse) *Response {
	if resp == nil {
		return &Response{Success: true}
	}

	results, dropped := ExtractURLResults(resp.Data.RawResults)
	return &Response{
		Answer:     resp.Data.Answer,
		Query:      resp.Data.Query,
		TokensUsed: resp.Data.TokensUsed,
		URLResults: results,
		Success:    true,
		Dropped:    dropped,
		Timestamp:  resp.Timestamp,
	}
}

// ExtractURLResults maps the raw_results array to UrlResult rows.
//
// Items that are not objects or have no non-empty string url are skipped and
// counted in dropped. Anything other than an array yields no rows.
func ExtractURLResults(raw json.RawMessage) (results []UrlResult, dropped int) {
	results = []UrlResult{}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return results, 0
	}

	for _, item := range items {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(item, &fields); err != nil || fields == nil {
			dropped++
			continue
		}

		var link string
		if err := json.Unmarshal(fields["url"], &link); err != nil {
			dropped++
			continue
		}
		if link = strings.TrimSpace(link); link == "" {
			dropped++
			continue
		}

		results = append(results, UrlResult{
			URL:   link,
			Title: fmt.Sprintf("Video %d", len(results)+1),
		})
	}

	return results, dropped
}
