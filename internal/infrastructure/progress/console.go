package progress

import (
	"context"
	"io"
	"unicode/utf8"

	"github.com/Eugene-WebDev/se-ranking-node/internal/application/port/output"
	"github.com/fatih/color"
)

var (
	_ output.ProgressPort = (*Console)(nil)
	_ output.ProgressPort = Nop{}
)

// Console prints run progress for humans. Records themselves go to stdout
// elsewhere, so this writer is normally stderr.
type Console struct {
	w     io.Writer
	total int
}

func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

func (c *Console) ShowRunStart(ctx context.Context, runID, operation string, items int) {
	c.total = items
	cyan := color.New(color.FgCyan, color.Bold)
	cyan.Fprintf(c.w, "━━━ %s: %d item(s) ━━━\n", operation, items)

	dim := color.New(color.Faint)
	dim.Fprintf(c.w, "   run %s\n", runID)
}

func (c *Console) ShowItemResult(ctx context.Context, index, records int, err error) {
	if err != nil {
		red := color.New(color.FgRed)
		red.Fprintf(c.w, "✗ item %d/%d: ", index+1, c.total)

		dim := color.New(color.Faint)
		dim.Fprintln(c.w, truncate(err.Error(), 300))
		return
	}

	green := color.New(color.FgGreen)
	green.Fprintf(c.w, "✓ item %d/%d: %d record(s)\n", index+1, c.total, records)
}

func (c *Console) ShowRunDone(ctx context.Context, records int, err error) {
	if err != nil {
		red := color.New(color.FgRed, color.Bold)
		red.Fprintf(c.w, "Run aborted after %d record(s)\n", records)
		return
	}
	bold := color.New(color.Bold)
	bold.Fprintf(c.w, "Done: %d record(s)\n", records)
}

type Nop struct{}

func (Nop) ShowRunStart(context.Context, string, string, int) {}
func (Nop) ShowItemResult(context.Context, int, int, error)  {}
func (Nop) ShowRunDone(context.Context, int, error)          {}

// truncate keeps at most maxLen runes.
func truncate(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	return string([]rune(s)[:maxLen]) + "..."
}
