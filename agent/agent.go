// Package agent implements the AI habit coach behind 'habits assist'.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	habit "github.com/mtscully16/habit-tracker"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// Coach is the AI assistant that handles the chat session. It grounds
// its advice on a snapshot of the habit document: the system instruction
// carries the current checklist, and a function tool lets the model pull
// progress reports for any window.
type Coach struct {
	w    io.Writer
	r    *bufio.Reader
	doc  *habit.Document
	chat *genai.Chat
}

// NewCoach creates a new Coach over a snapshot of the habit document.
//
// It takes an io.Writer for the coach's output (e.g., os.Stdout) and an
// io.Reader for user input (e.g., os.Stdin).
func NewCoach(w io.Writer, r io.Reader, doc *habit.Document) *Coach {
	return &Coach{
		w:   w,
		r:   bufio.NewReader(r),
		doc: doc,
	}
}

// Start creates the chat session.
func (c *Coach) Start(ctx context.Context, client *genai.Client) error {
	chat, err := client.Chats.Create(ctx, model, c.config(), nil)
	if err != nil {
		return err
	}
	c.chat = chat
	return nil
}

const prompt = "coach> "

// Run starts the interactive REPL session for the coach.
func (c *Coach) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if c.chat == nil {
		if err := c.Start(ctx, client); err != nil {
			return err
		}
	}

	fmt.Fprintln(c.w, "Welcome to the habits coach. Type 'bye' to exit.")

	// REPL loop
	for {
		// Print the prompt
		fmt.Fprint(c.w, prompt)
		var input string

		// Flush prompts from the list and then ask for the user.
		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			fmt.Fprintln(c.w, input)
		} else {
			var err error
			input, err = c.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // Clean exit on Ctrl+D
				}
				return err
			}
		}

		if strings.TrimSpace(input) == "bye" {
			return nil
		}

		answer, err := c.Ask(ctx, &genai.Part{Text: input})
		if err != nil {
			return err
		}
		fmt.Fprintln(c.w, answer)
	}
}

// Ask sends parts to the model, serving its function calls until a text
// answer comes back.
func (c *Coach) Ask(ctx context.Context, parts ...*genai.Part) (string, error) {
	resp, err := c.chat.Send(ctx, parts...)
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from the coach")
	}
	part0 := resp.Candidates[0].Content.Parts[0]
	if part0.FunctionCall != nil {
		// Serve the call and ask again with the response he asked for,
		// until we have a real answer.
		return c.Ask(ctx, &genai.Part{FunctionResponse: c.call(part0.FunctionCall)})
	}
	return part0.Text, nil
}
