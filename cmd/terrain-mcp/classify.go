package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ironsheep/terrain-mcp/internal/classify"
	"github.com/ironsheep/terrain-mcp/internal/imaging"
	"github.com/ironsheep/terrain-mcp/internal/terrain"
)

var classifyCmd = &cobra.Command{
	Use:   "classify [image...]",
	Short: "Classify image files with both classifiers",
	Long: `Classify each image as tundra, forest, desert or ocean with the naive Bayes
and the fuzzy classifier. Scores are printed in the order
[tundra, forest, desert, ocean].

With no arguments, image paths are read from stdin one per line until an
empty line or end of input.`,
	RunE: runClassify,
}

func init() {
	classifyCmd.Flags().String("region", "", "image region to classify ("+strings.Join(imaging.Regions(), ", ")+")")
	classifyCmd.Flags().Bool("json", false, "print results as JSON")
	classifyCmd.Flags().Int("workers", 0, "images classified concurrently (0 = configured value)")
	classifyCmd.Flags().Bool("no-color", false, "disable colored output")
}

func runClassify(cmd *cobra.Command, args []string) error {
	cfg, logger, svc, err := setup(cmd)
	if err != nil {
		return err
	}

	region, _ := cmd.Flags().GetString("region")
	if region == "" {
		region = cfg.Classify.Region
	}
	if !imaging.ValidRegion(region) {
		return fmt.Errorf("unknown region: %s", region)
	}
	if workers, _ := cmd.Flags().GetInt("workers"); workers > 0 {
		svc = classify.NewService(svc.Cache(), classify.Options{
			Workers: workers,
			Logic:   svc.Fuzzy().Logic(),
			Logger:  logger,
		})
	}
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		color.NoColor = true
	}
	asJSON, _ := cmd.Flags().GetBool("json")
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		return classifyInteractive(cmd.InOrStdin(), out, svc, region, asJSON)
	}

	items, err := svc.ClassifyFiles(cmd.Context(), args, region)
	if err != nil {
		return err
	}
	if asJSON {
		if err := writeJSON(out, items); err != nil {
			return err
		}
	} else {
		for _, item := range items {
			printItem(out, item)
		}
	}
	return batchError(items)
}

// classifyInteractive reads one path per line and classifies each as it
// arrives, stopping at an empty line or end of input.
func classifyInteractive(in io.Reader, out io.Writer, svc *classify.Service, region string, asJSON bool) error {
	prompt := isTerminal(in)
	scanner := bufio.NewScanner(in)

	var items []classify.Item
	for {
		if prompt {
			fmt.Fprint(out, "Enter image filepath: ")
		}
		if !scanner.Scan() {
			break
		}
		path := strings.TrimSpace(scanner.Text())
		if path == "" {
			break
		}

		item := classify.Item{Path: path}
		item.Report, item.Err = svc.ClassifyFile(path, region)
		if item.Err != nil {
			item.Error = item.Err.Error()
		}
		items = append(items, item)

		if asJSON {
			if err := writeJSON(out, item); err != nil {
				return err
			}
		} else {
			printItem(out, item)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading paths: %w", err)
	}
	return batchError(items)
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func batchError(items []classify.Item) error {
	failed := 0
	for _, item := range items {
		if item.Err != nil {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d images failed", failed, len(items))
	}
	return nil
}

func writeJSON(out io.Writer, v interface{}) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

var (
	headerColor = color.New(color.Bold)
	labelColor  = color.New(color.FgCyan)
	errorColor  = color.New(color.FgRed, color.Bold)
	classColors = [terrain.NumClasses]*color.Color{
		terrain.Tundra: color.New(color.FgWhite, color.Bold),
		terrain.Forest: color.New(color.FgGreen, color.Bold),
		terrain.Desert: color.New(color.FgYellow, color.Bold),
		terrain.Ocean:  color.New(color.FgBlue, color.Bold),
	}
)

const rule = "----------------------------------------------------------"

// printItem writes the console report for one image.
func printItem(out io.Writer, item classify.Item) {
	fmt.Fprintln(out, rule)
	if item.Err != nil {
		errorColor.Fprintf(out, "%s: %v\n", item.Path, item.Err)
		return
	}

	r := item.Report
	m := r.MeanColor.Means
	headerColor.Fprintf(out, "%s [%s]\n", r.Path, r.Region)
	fmt.Fprintf(out, "Mean color %s  (R %.2f, G %.2f, B %.2f)\n", r.MeanColor.Hex, m.R, m.G, m.B)
	fmt.Fprintln(out, "Probabilities: [tundra, forest, desert, ocean]")
	printResult(out, "NAIVE_BAYES_CLASSIFIER", r.NaiveBayes)
	printResult(out, "FUZZY_CLASSIFIER", r.Fuzzy)
}

func printResult(out io.Writer, name string, res terrain.Result) {
	labelColor.Fprintf(out, "%s RESULT:", name)
	fmt.Fprint(out, " This picture is most likely ")
	classColors[res.Class].Fprintln(out, res.Class)
	fmt.Fprintln(out, formatScores(res.Scores))
}

func formatScores(s terrain.Scores) string {
	parts := make([]string, len(s))
	for i, v := range s {
		parts[i] = fmt.Sprintf("%.6f", v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
