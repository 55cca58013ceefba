package style

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/treeinstall/pkg/errors"
	"github.com/arthur-debert/treeinstall/pkg/materialize"
	"github.com/arthur-debert/treeinstall/pkg/types"
)

// Renderer defines the interface for rendering install output
type Renderer interface {
	RenderPlan(plan *materialize.Plan) string
	RenderResult(result *types.Result) string
	RenderError(err error) string
}

// NewRenderer returns the renderer for a text based format
func NewRenderer(f Format) Renderer {
	if f == FormatTerminal {
		return NewTerminalRenderer()
	}
	return NewPlainRenderer()
}

// TerminalRenderer implements Renderer with rich terminal output
type TerminalRenderer struct{}

// NewTerminalRenderer creates a new terminal renderer
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{}
}

// RenderPlan renders the planned copies grouped by spec
func (r *TerminalRenderer) RenderPlan(plan *materialize.Plan) string {
	if len(plan.Operations) == 0 {
		return MutedStyle.Render("No files selected")
	}

	var result strings.Builder
	result.WriteString(TitleStyle.Render("Install plan") + " " + DestinationStyle.Render(displayRoot(plan.DestRoot)) + "\n")

	for _, sp := range plan.Specs {
		header := fmt.Sprintf("%s %s", pterm.Info.Prefix.Text, SubtitleStyle.Render(sp.Label))
		header += " " + MutedStyle.Render(fmt.Sprintf("(%s, %d files)", sp.SourceRoot, sp.Files))
		result.WriteString("\n" + header + "\n")

		for _, op := range plan.Operations {
			if op.Spec != sp.Index {
				continue
			}
			line := fmt.Sprintf("%s %s → %s",
				PendingIndicator,
				SourceStyle.Render(op.Entry),
				DestinationStyle.Render(op.Destination))
			result.WriteString(Indent(line, 1) + "\n")
		}
	}

	if collisions := plan.Collisions(); len(collisions) > 0 {
		result.WriteString("\n")
		for _, c := range collisions {
			result.WriteString(fmt.Sprintf("%s %s %s\n",
				WarningIndicator,
				DestinationStyle.Render(c.Target),
				MutedStyle.Render(fmt.Sprintf("written by specs %s, last wins", joinInts(c.Specs)))))
		}
	}

	return strings.TrimRight(result.String(), "\n")
}

// RenderResult renders executed operations and a summary line
func (r *TerminalRenderer) RenderResult(result *types.Result) string {
	var out strings.Builder

	for _, op := range result.Operations {
		indicator := PendingIndicator
		switch op.Operation.Status {
		case types.StatusDone:
			indicator = SuccessIndicator
		case types.StatusError:
			indicator = ErrorIndicator
		}
		out.WriteString(fmt.Sprintf("%s %s → %s\n",
			indicator,
			SourceStyle.Render(op.Operation.Entry),
			DestinationStyle.Render(op.Operation.Target)))
	}

	if result.DryRun {
		out.WriteString(fmt.Sprintf("%s %s\n", pterm.Info.Prefix.Text,
			MutedStyle.Render(fmt.Sprintf("Dry run: %d files would be copied", len(result.Operations)))))
	} else {
		out.WriteString(fmt.Sprintf("%s %s\n", pterm.Success.Prefix.Text,
			summary(result)))
	}

	return strings.TrimRight(out.String(), "\n")
}

// RenderError renders an error message with its code and location
func (r *TerminalRenderer) RenderError(err error) string {
	if err == nil {
		return ""
	}

	code := errors.GetErrorCode(err)
	if code == errors.ErrUnknown {
		return fmt.Sprintf("%s %s", pterm.Error.Prefix.Text, pterm.Error.MessageStyle.Sprint(err.Error()))
	}

	msg := fmt.Sprintf("%s Error [%s]: %s",
		pterm.Error.Prefix.Text,
		pterm.Error.MessageStyle.Sprint(code),
		errorMessage(err))
	if loc := Location(err); loc != "" {
		msg += "\n" + Indent(MutedStyle.Render(loc), 1)
	}
	return msg
}

// PlainRenderer implements Renderer with plain text output (no styling)
type PlainRenderer struct{}

// NewPlainRenderer creates a new plain text renderer
func NewPlainRenderer() *PlainRenderer {
	return &PlainRenderer{}
}

// RenderPlan renders one "entry -> destination" line per copy
func (r *PlainRenderer) RenderPlan(plan *materialize.Plan) string {
	if len(plan.Operations) == 0 {
		return "No files selected"
	}

	var result strings.Builder
	result.WriteString(fmt.Sprintf("Install plan: %s\n", displayRoot(plan.DestRoot)))
	for _, sp := range plan.Specs {
		result.WriteString(fmt.Sprintf("%s (%s, %d files)\n", sp.Label, sp.SourceRoot, sp.Files))
		for _, op := range plan.Operations {
			if op.Spec == sp.Index {
				result.WriteString(fmt.Sprintf("  %s -> %s\n", op.Entry, op.Destination))
			}
		}
	}
	for _, c := range plan.Collisions() {
		result.WriteString(fmt.Sprintf("warning: %s written by specs %s, last wins\n", c.Target, joinInts(c.Specs)))
	}

	return strings.TrimRight(result.String(), "\n")
}

// RenderResult renders one line per copy and a summary line
func (r *PlainRenderer) RenderResult(result *types.Result) string {
	var out strings.Builder
	for _, op := range result.Operations {
		out.WriteString(fmt.Sprintf("%s: %s -> %s\n", op.Operation.Status, op.Operation.Entry, op.Operation.Target))
	}
	if result.DryRun {
		out.WriteString(fmt.Sprintf("Dry run: %d files would be copied\n", len(result.Operations)))
	} else {
		out.WriteString(summary(result) + "\n")
	}
	return strings.TrimRight(out.String(), "\n")
}

// RenderError renders a plain error message
func (r *PlainRenderer) RenderError(err error) string {
	if err == nil {
		return ""
	}
	msg := fmt.Sprintf("Error: %s", err.Error())
	if loc := Location(err); loc != "" {
		msg += " (" + loc + ")"
	}
	return msg
}

// locationKeys are the error details that point at the failing input, in
// display order
var locationKeys = []string{"spec", "field", "line", "path", "destination", "variable", "target", "source"}

// Location formats the error details that identify the failing spec, line
// or path, e.g. "spec 1, line 3, path docs/readme.txt".
func Location(err error) string {
	details := errors.GetErrorDetails(err)
	if len(details) == 0 {
		return ""
	}

	var parts []string
	for _, key := range locationKeys {
		if v, ok := details[key]; ok {
			parts = append(parts, fmt.Sprintf("%s %v", key, v))
		}
	}
	return strings.Join(parts, ", ")
}

func errorMessage(err error) string {
	treeErr, ok := err.(*errors.TreeError)
	if !ok {
		return err.Error()
	}
	if treeErr.Wrapped != nil {
		return fmt.Sprintf("%s: %v", treeErr.Message, treeErr.Wrapped)
	}
	return treeErr.Message
}

func summary(result *types.Result) string {
	return fmt.Sprintf("Copied %d files, created %d directories in %s",
		result.Copied(), len(result.CreatedDirs), displayRoot(result.DestRoot))
}

func displayRoot(root string) string {
	if root == "" {
		return "."
	}
	return root
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}
