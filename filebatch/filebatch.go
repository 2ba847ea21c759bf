// Package filebatch converts files of numbers in bulk. A run globs the
// configured patterns, screens each match for type and size, and writes
// a sibling output file with one rendering per input line.
package filebatch

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/remiges-tech/logharbour/logharbour"

	"github.com/remiges-tech/sankhya/numwords"
)

const (
	// DefaultOutSuffix is appended to an input path to name its output
	// file when the configuration does not set one.
	DefaultOutSuffix = ".words"
	// DefaultMaxSizeBytes is the input size cutoff applied when the
	// configuration does not set one.
	DefaultMaxSizeBytes = 10 << 20
)

// BatchConfig holds the configuration for one batch run.
type BatchConfig struct {
	Patterns     []string // glob patterns naming the input files, doublestar syntax
	Lang         string   // language for the words mode, empty means English
	Mode         string   // conversion mode, empty means words
	OutSuffix    string   // appended to each input path, default DefaultOutSuffix
	MaxSizeBytes int64    // inputs larger than this are skipped, default DefaultMaxSizeBytes
}

// Summary reports what one batch run did. Files counts outputs written,
// Lines counts input lines rendered, Failures counts lines that did not
// convert plus files that could not be processed at all.
type Summary struct {
	RunID    string
	Files    int
	Lines    int
	Failures int
}

// check validates the parts of the configuration that would otherwise
// fail identically on every line of every file.
func (c *BatchConfig) check() error {
	if len(c.Patterns) == 0 {
		return fmt.Errorf("no input patterns configured")
	}
	if c.Mode != "" {
		known := false
		for _, m := range numwords.Modes() {
			if m == c.Mode {
				known = true
				break
			}
		}
		if !known {
			return numwords.ConversionError{BaseErr: numwords.ErrUnknownMode, Op: "batch", Input: c.Mode}
		}
	}
	if c.Lang != "" {
		if _, err := numwords.ResolveLang(c.Lang); err != nil {
			return err
		}
	}
	return nil
}

// Run executes one batch run and returns its summary. Every matched file
// is screened and converted independently; a file that cannot be
// processed is logged and counted, it does not stop the run.
func Run(ctx context.Context, cfg BatchConfig, lg *logharbour.Logger) (Summary, error) {
	summary := Summary{RunID: uuid.New().String()}
	if err := cfg.check(); err != nil {
		return summary, err
	}
	if cfg.OutSuffix == "" {
		cfg.OutSuffix = DefaultOutSuffix
	}
	if cfg.MaxSizeBytes == 0 {
		cfg.MaxSizeBytes = DefaultMaxSizeBytes
	}

	files, err := findFiles(cfg.Patterns)
	if err != nil {
		return summary, err
	}

	runLogger := lg.WithModule("filebatch").WithInstanceId(summary.RunID)
	for _, path := range files {
		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		lines, failures, err := convertFile(path, cfg)
		if err != nil {
			summary.Failures++
			runLogger.Error(err).LogActivity("file skipped", map[string]any{"file": path})
			continue
		}
		summary.Files++
		summary.Lines += lines
		summary.Failures += failures
		runLogger.Info().LogActivity("file converted", map[string]any{
			"file":     path,
			"output":   path + cfg.OutSuffix,
			"lines":    lines,
			"failures": failures,
		})
	}
	return summary, nil
}

// findFiles resolves the patterns to file paths. Matches are
// deduplicated across patterns and sorted.
func findFiles(patterns []string) ([]string, error) {
	var files []string
	seen := map[string]bool{}
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("error globbing pattern %s: %w", pattern, err)
		}
		for _, match := range matches {
			if !seen[match] {
				seen[match] = true
				files = append(files, match)
			}
		}
	}
	sort.Strings(files)
	return files, nil
}

// convertFile renders every line of path into path plus the output
// suffix. Blank lines are skipped; a line that fails to convert is
// written as an error note. Returns the rendered and failed line counts.
func convertFile(path string, cfg BatchConfig) (lines, failures int, err error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, 0, fmt.Errorf("error reading file %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return 0, 0, fmt.Errorf("%s is not a regular file", path)
	}
	if info.Size() > cfg.MaxSizeBytes {
		return 0, 0, fmt.Errorf("file %s is %d bytes, over the %d byte limit", path, info.Size(), cfg.MaxSizeBytes)
	}

	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return 0, 0, fmt.Errorf("error detecting type of %s: %w", path, err)
	}
	if !mtype.Is("text/plain") {
		return 0, 0, fmt.Errorf("file %s is %s, want text/plain", path, mtype)
	}

	in, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("error opening %s: %w", path, err)
	}
	defer in.Close()

	outPath := path + cfg.OutSuffix
	out, err := os.Create(outPath)
	if err != nil {
		return 0, 0, fmt.Errorf("error creating %s: %w", outPath, err)
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		text, convErr := numwords.Render(line, cfg.Mode, cfg.Lang)
		if convErr != nil {
			failures++
			fmt.Fprintf(w, "%s = error: %v\n", line, convErr)
			continue
		}
		lines++
		fmt.Fprintf(w, "%s = %s\n", line, text)
	}
	if err := scanner.Err(); err != nil {
		return lines, failures, fmt.Errorf("error reading %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		return lines, failures, fmt.Errorf("error writing %s: %w", outPath, err)
	}
	return lines, failures, nil
}
