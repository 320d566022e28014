package agent

import (
	"fmt"

	habit "github.com/mtscully16/habit-tracker"
	"github.com/mtscully16/habit-tracker/date"
	"github.com/mtscully16/habit-tracker/renderer"
	"google.golang.org/genai"
)

// config returns the chat configuration: the coach persona grounded on
// today's checklist, plus the Progress tool.
func (c *Coach) config() *genai.GenerateContentConfig {
	today := renderer.ChecklistMarkdown(c.doc, date.Today())
	return &genai.GenerateContentConfig{
		Tools: []*genai.Tool{
			{FunctionDeclarations: []*genai.FunctionDeclaration{progressDecl()}},
		},
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: fmt.Sprintf(`
			You are a habit coach. The user tracks daily habits in two lists,
			things to do and things to avoid; every net point moves a compounding
			daily score by one percent, so small consistent days beat rare big ones.

			Be encouraging and concrete. Point at specific habits and specific
			days, not generalities. When the user asks how they are doing, call
			the Progress tool for the relevant window before answering.

			Today's checklist:

			%s
		`, today)}}},
	}
}

// progressDecl declares the report function the coach can call.
func progressDecl() *genai.FunctionDeclaration {
	return &genai.FunctionDeclaration{
		Name: "Progress",
		Description: `Progress renders the user's compounding progress report over a window:
		the start and end score, the change, and the net points of every day.`,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"period": {
					Type:        genai.TypeString,
					Description: "The report window: week, month, year or all. Week is the default.",
				},
			},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown-formatted progress report over the requested window.",
		},
	}
}

// call serves a function call of the model against the document snapshot.
func (c *Coach) call(fc *genai.FunctionCall) *genai.FunctionResponse {
	fresp := &genai.FunctionResponse{
		ID:   fc.ID,
		Name: fc.Name,
	}
	if fc.Name != "Progress" {
		fresp.Response = map[string]any{
			"error": fmt.Sprintf("unknown function %s", fc.Name),
		}
		return fresp
	}

	sel := c.doc.Selection()
	if arg, ok := fc.Args["period"]; ok {
		s, ok := arg.(string)
		if !ok {
			fresp.Response = map[string]any{
				"error": fmt.Sprintf("argument 'period' is not a string as expected but %T", arg),
			}
			return fresp
		}
		period, err := date.ParsePeriod(s)
		if err != nil {
			fresp.Response = map[string]any{
				"error": fmt.Sprintf("argument 'period' must be week, month, year or all, got %q", s),
			}
			return fresp
		}
		sel.Period = period
	}

	report := renderer.ProgressMarkdown(habit.NewSeries(c.doc, sel, date.Today()))
	fresp.Response = map[string]any{
		"output": report,
	}
	return fresp
}
