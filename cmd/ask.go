package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	errors "github.com/Laisky/errors/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Laisky/video-search/internal/searchview"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

var askCMD = &cobra.Command{
	Use:   "ask QUESTION",
	Short: "ask one question and print one page of videos",
	Long: `Ask one question to the question-answering API and print the answer
with one page of matching videos, nine per page.

Example:
  video-search ask "best raids of last season" --page 2 -o yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		page, err := cmd.Flags().GetInt("page")
		if err != nil {
			return errors.Wrap(err, "get page")
		}
		format, err := cmd.Flags().GetString("output")
		if err != nil {
			return errors.Wrap(err, "get output")
		}
		if err = checkOutputFormat(format); err != nil {
			return err
		}

		_, orch, err := newOrchestrator()
		if err != nil {
			return err
		}

		state, err := orch.Submit(cmd.Context(), searchview.NewState(), strings.Join(args, " "))
		if err != nil {
			return errors.Wrap(err, "submit question")
		}
		if state.Phase() == searchview.PhaseFailed {
			return errors.New(state.Err())
		}

		return renderAsk(cmd.OutOrStdout(), state.GoToPage(page), format)
	},
}

func init() {
	askCMD.Flags().Int("page", 1, "1-based result page to print")
	askCMD.Flags().StringP("output", "o", outputText, "`text/json/yaml`")
	rootCMD.AddCommand(askCMD)
}

// askVideo is one printed video row
type askVideo struct {
	Index     int    `json:"index" yaml:"index"`
	Title     string `json:"title" yaml:"title"`
	URL       string `json:"url" yaml:"url"`
	Thumbnail string `json:"thumbnail,omitempty" yaml:"thumbnail,omitempty"`
}

// askOutput is the machine readable form of one answered page
type askOutput struct {
	Question   string     `json:"question" yaml:"question"`
	Answer     string     `json:"answer" yaml:"answer"`
	Query      string     `json:"query,omitempty" yaml:"query,omitempty"`
	TokensUsed int        `json:"tokensUsed" yaml:"tokensUsed"`
	Total      int        `json:"total" yaml:"total"`
	Dropped    int        `json:"dropped,omitempty" yaml:"dropped,omitempty"`
	Page       int        `json:"page" yaml:"page"`
	TotalPages int        `json:"totalPages" yaml:"totalPages"`
	Videos     []askVideo `json:"videos" yaml:"videos"`
}

func checkOutputFormat(format string) error {
	switch format {
	case outputText, outputJSON, outputYAML:
		return nil
	default:
		return errors.Errorf("unknown output format %q, want text, json or yaml", format)
	}
}

// newAskOutput collects the current page of state
func newAskOutput(state searchview.State) askOutput {
	out := askOutput{
		Question:   state.Query(),
		Total:      len(state.Results()),
		Page:       state.Page(),
		TotalPages: state.TotalPages(),
		Videos:     []askVideo{},
	}
	if resp := state.Response(); resp != nil {
		out.Answer = resp.Answer
		out.Query = resp.Query
		out.TokensUsed = resp.TokensUsed
		out.Dropped = resp.Dropped
	}

	offset := state.VisibleOffset()
	for i, result := range state.Visible() {
		thumb, _ := result.Thumbnail()
		out.Videos = append(out.Videos, askVideo{
			Index:     offset + i + 1,
			Title:     result.Title,
			URL:       result.URL,
			Thumbnail: thumb,
		})
	}

	return out
}

// renderAsk writes the current page of state to w in format
func renderAsk(w io.Writer, state searchview.State, format string) error {
	out := newAskOutput(state)

	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return errors.Wrap(err, "encode json")
		}
		return nil
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return errors.Wrap(err, "encode yaml")
		}
		if err := enc.Close(); err != nil {
			return errors.Wrap(err, "close yaml encoder")
		}
		return nil
	case outputText:
	default:
		return checkOutputFormat(format)
	}

	var sb strings.Builder
	if out.Answer != "" {
		sb.WriteString(out.Answer)
		sb.WriteString("\n\n")
	}

	if out.Total == 0 {
		sb.WriteString("No videos found for this question.\n")
	} else {
		for _, v := range out.Videos {
			fmt.Fprintf(&sb, "%d. %s\n   %s\n", v.Index, v.Title, v.URL)
			if v.Thumbnail != "" {
				fmt.Fprintf(&sb, "   thumbnail: %s\n", v.Thumbnail)
			}
		}
		if out.TotalPages > 1 {
			fmt.Fprintf(&sb, "\nPage %d of %d\n", out.Page, out.TotalPages)
		}
	}
	if out.Dropped > 0 {
		fmt.Fprintf(&sb, "%d result(s) skipped: no video link\n", out.Dropped)
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return errors.Wrap(err, "write output")
	}
	return nil
}
