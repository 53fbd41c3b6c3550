package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Session:
		o.printSession(v)
	case PlayResult:
		o.printPlayResult(v)
	case Solutions:
		o.printSolutions(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Session response type (matches API)
type Session struct {
	ID            string      `json:"id"`
	Board         Board       `json:"board"`
	BoardRevision int         `json:"board_revision"`
	FoundWords    []FoundWord `json:"found_words"`
	Score         int         `json:"score"`
	Timer         Timer       `json:"timer"`
}

// Board response type
type Board struct {
	Faces [][]string `json:"faces"`
}

// FoundWord response type
type FoundWord struct {
	Word  string `json:"word"`
	Tiles int    `json:"tiles"`
	Score int    `json:"score"`
}

// Timer response type
type Timer struct {
	Running          bool `json:"running"`
	ElapsedSeconds   int  `json:"elapsed_seconds"`
	RemainingSeconds int  `json:"remaining_seconds"`
	LimitSeconds     int  `json:"limit_seconds"`
}

// PlayResult response type
type PlayResult struct {
	Word       string `json:"word"`
	Tiles      int    `json:"tiles"`
	Score      int    `json:"score"`
	TotalScore int    `json:"total_score"`
}

// SolutionWord response type
type SolutionWord struct {
	Word  string `json:"word"`
	Score int    `json:"score"`
}

// Solutions response type
type Solutions struct {
	Words          []SolutionWord `json:"words"`
	TotalWords     int            `json:"total_words"`
	AvailableScore int            `json:"available_score"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printSession(s Session) {
	fmt.Printf("Session: %s\n\n", s.ID)
	for _, row := range s.Board.Faces {
		for _, face := range row {
			// Pad single letters so the Qu tile lines up
			fmt.Printf("%-3s", face)
		}
		fmt.Println()
	}
	fmt.Printf("\nScore: %d\n", s.Score)
	if len(s.FoundWords) > 0 {
		words := make([]string, len(s.FoundWords))
		for i, fw := range s.FoundWords {
			words[i] = fmt.Sprintf("%s(%d)", fw.Word, fw.Score)
		}
		fmt.Printf("Found: %s\n", strings.Join(words, " "))
	}
	if s.Timer.Running {
		fmt.Printf("Time remaining: %ds\n", s.Timer.RemainingSeconds)
	}
}

func (o *Output) printPlayResult(r PlayResult) {
	fmt.Printf("%s: %d tiles, %d points (total %d)\n", r.Word, r.Tiles, r.Score, r.TotalScore)
}

func (o *Output) printSolutions(s Solutions) {
	for _, w := range s.Words {
		fmt.Printf("%-18s %d\n", w.Word, w.Score)
	}
	fmt.Printf("\n%d words, %d points available\n", s.TotalWords, s.AvailableScore)
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
