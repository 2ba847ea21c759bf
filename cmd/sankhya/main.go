// Command sankhya converts numbers to words from the command line. With
// a positional argument it converts once and exits; without one it runs
// a line-oriented prompt loop. The -batch flag converts whole files
// instead.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/remiges-tech/sankhya/filebatch"
	"github.com/remiges-tech/sankhya/logger"
	"github.com/remiges-tech/sankhya/numwords"
)

func main() {
	lang := flag.String("lang", "", "language for the conversion, a code or name such as es or Spanish")
	ordinal := flag.Bool("ordinal", false, "render the number as an ordinal")
	currency := flag.Bool("currency", false, "render the number as a dollar amount")
	decimal := flag.Bool("decimal", false, "render the number with its fraction spelled out")
	roman := flag.Bool("roman", false, "render the number as a Roman numeral")
	digits := flag.Bool("digits", false, "spell the number digit by digit")
	phone := flag.Bool("phone", false, "spell the digits of a phone number")
	region := flag.String("region", numwords.DefaultPhoneRegion, "phone number region used by -phone")
	batch := flag.String("batch", "", "convert the files matching this glob pattern and exit")
	flag.Parse()

	mode, err := selectMode(*ordinal, *currency, *decimal, *roman, *digits)
	if err == nil && *phone && mode != "" {
		err = fmt.Errorf("-phone cannot be combined with another mode flag")
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *batch != "" {
		runBatch(*batch, mode, *lang)
		return
	}

	if *phone {
		runPhone(flag.Args(), *region)
		return
	}

	if flag.NArg() > 0 {
		text, err := numwords.Render(flag.Arg(0), mode, *lang)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Result: %s\n", text)
		return
	}

	runInteractive(os.Stdin, os.Stdout, os.Stderr, mode, *lang)
}

// selectMode maps the mode flags to a conversion mode. An empty mode
// means plain words.
func selectMode(ordinal, currency, decimal, roman, digits bool) (string, error) {
	mode := ""
	set := 0
	for _, m := range []struct {
		on   bool
		name string
	}{
		{ordinal, numwords.ModeOrdinal},
		{currency, numwords.ModeCurrency},
		{decimal, numwords.ModeDecimal},
		{roman, numwords.ModeRoman},
		{digits, numwords.ModeDigits},
	} {
		if m.on {
			set++
			mode = m.name
		}
	}
	if set > 1 {
		return "", fmt.Errorf("choose at most one of -ordinal, -currency, -decimal, -roman, -digits")
	}
	return mode, nil
}

// runInteractive reads numbers line by line and prints their words.
// Conversion failures are reported and the loop continues; only an
// unreadable input stream ends it.
func runInteractive(in io.Reader, out, errOut io.Writer, mode, lang string) {
	fmt.Fprintln(out, "Number to Text Converter")
	fmt.Fprintln(out, "------------------------")
	fmt.Fprintln(out, "Enter a number to convert to text (press Ctrl+C to exit):")

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		input := strings.TrimSpace(scanner.Text())
		text, err := numwords.Render(input, mode, lang)
		if err != nil {
			if errors.Is(err, numwords.ErrInvalidInput) {
				fmt.Fprintln(errOut, invalidInputMessage(mode))
			} else {
				fmt.Fprintf(errOut, "Error: %v\n", err)
			}
			continue
		}
		fmt.Fprintf(out, "Result: %s\n", text)
		fmt.Fprintln(out, "\nEnter another number (press Ctrl+C to exit):")
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(errOut, "Error reading input: %v\n", err)
	}
}

func invalidInputMessage(mode string) string {
	switch mode {
	case numwords.ModeCurrency, numwords.ModeDecimal:
		return "Error: Please enter a valid number."
	default:
		return "Error: Please enter a valid integer number."
	}
}

func runPhone(args []string, region string) {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Error: -phone needs a phone number argument")
		os.Exit(1)
	}
	text, err := numwords.SpellPhone(args[0], region)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Result: %s\n", text)
}

func runBatch(pattern, mode, lang string) {
	lg := logger.NewLogHarbour("sankhya", os.Stderr)
	summary, err := filebatch.Run(context.Background(), filebatch.BatchConfig{
		Patterns: []string{pattern},
		Mode:     mode,
		Lang:     lang,
	}, lg.Logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Batch %s: %d files, %d lines converted, %d failures\n",
		summary.RunID, summary.Files, summary.Lines, summary.Failures)
	if summary.Failures > 0 {
		os.Exit(1)
	}
}
