package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sitebrief/requirements-backend/internal/usecase/elicitation"
	"go.uber.org/zap"
)

// Variants of the console session
const (
	VariantTasks     = "tasks"
	VariantValidate  = "validate"
	VariantInterview = "interview"
)

// Runner drives an interactive elicitation session on a terminal
type Runner struct {
	uc     *elicitation.Usecase
	in     *bufio.Reader
	out    io.Writer
	logger *zap.Logger
}

func NewRunner(uc *elicitation.Usecase, in io.Reader, out io.Writer, logger *zap.Logger) *Runner {
	return &Runner{
		uc:     uc,
		in:     bufio.NewReader(in),
		out:    out,
		logger: logger,
	}
}

// Run dispatches to the selected session variant
func (r *Runner) Run(ctx context.Context, variant string, choiceMode bool, outputPath string) error {
	switch variant {
	case VariantTasks:
		return r.runTasks(ctx)
	case VariantValidate:
		return r.runValidate(ctx)
	case VariantInterview:
		return r.runInterview(ctx, choiceMode, outputPath)
	default:
		return fmt.Errorf("unknown variant %q (expected tasks, validate or interview)", variant)
	}
}

func (r *Runner) printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}

func (r *Runner) println(text string) {
	fmt.Fprintln(r.out, text)
}

// readLine reads one trimmed line from the terminal
func (r *Runner) readLine() (string, error) {
	line, err := r.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// askDescription prompts for the initial website description
func (r *Runner) askDescription() (string, error) {
	r.println("Describe the website you want to build:")
	r.printf("> ")

	description, err := r.readLine()
	if err != nil {
		return "", fmt.Errorf("read description: %w", err)
	}
	if description == "" {
		return "", fmt.Errorf("description must not be empty")
	}

	return description, nil
}
