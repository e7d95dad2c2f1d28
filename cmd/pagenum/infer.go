package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/openscan/pagenum/internal/classify"
	"github.com/openscan/pagenum/internal/config"
	"github.com/openscan/pagenum/internal/jsonout"
	"github.com/openscan/pagenum/internal/ocrsrc"
	"github.com/openscan/pagenum/internal/pipeline"
	"github.com/openscan/pagenum/internal/schema"
	"github.com/openscan/pagenum/internal/svcctx"
	"github.com/openscan/pagenum/version"
)

var (
	outFile               string
	scandataFile          string
	classifierFlag        string
	twoPassFlag           bool
	opportunisticFillFlag bool
	pass1ThresholdFlag    float64
	pass2ThresholdFlag    float64
	identifierFlag        string
)

var inferCmd = &cobra.Command{
	Use:   "infer <infile>",
	Short: "Infer printed page numbers for a scanned book's OCR word observations",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfer,
}

func init() {
	inferCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default: stdout)")
	inferCmd.Flags().StringVar(&scandataFile, "scandata", "", "optional scandata skip-page JSON file")
	inferCmd.Flags().StringVar(&classifierFlag, "classifier", "", "classifier: naivebayes or logisticregression")
	inferCmd.Flags().BoolVar(&twoPassFlag, "two-pass", true, "run the classifier-prefiltered second pass")
	inferCmd.Flags().BoolVar(&opportunisticFillFlag, "opportunistic-fill", true, "back/forward-fill edges from the nearest confirmed page number")
	inferCmd.Flags().Float64Var(&pass1ThresholdFlag, "pass1-threshold", 0, "pass-1 sequence density parking threshold")
	inferCmd.Flags().Float64Var(&pass2ThresholdFlag, "pass2-threshold", 0, "pass-2 sequence density parking threshold")
	inferCmd.Flags().StringVar(&identifierFlag, "identifier", "", "override the output document's identifier")
}

func runInfer(cmd *cobra.Command, args []string) error {
	infile := args[0]

	data, err := os.ReadFile(infile)
	if err != nil {
		return fmt.Errorf("pagenum infer: %w", err)
	}
	if err := schema.ValidateOCRInput(data); err != nil {
		return fmt.Errorf("pagenum infer: input document failed validation: %w", err)
	}

	mgr, err := config.NewManager(cfgFile)
	if err != nil {
		return fmt.Errorf("pagenum infer: loading config: %w", err)
	}
	cfg := mgr.Get()
	applyFlagOverrides(cmd, cfg)

	logger := newLogger()
	ctx := svcctx.With(cmd.Context(), svcctx.NewServices(logger))

	source := ocrsrc.JSONSource{Path: infile}
	identifier, err := source.Identifier(ctx)
	if err != nil {
		logger.Warn("could not read source identifier", "error", err)
	}
	if identifier == "" {
		identifier = uuid.New().String()
		logger.Info("input document had no identifier, generated one", "identifier", identifier)
	}

	var skip map[int]bool
	if scandataFile != "" {
		skip, err = (ocrsrc.JSONScandataSource{Path: scandataFile}).SkipPages(ctx)
		if err != nil {
			return fmt.Errorf("pagenum infer: loading scandata: %w", err)
		}
	}

	pipelineCfg := pipeline.Config{
		ClassifierKind:    classify.Kind(cfg.Classifier),
		Pass1Threshold:    cfg.Pass1Threshold,
		Pass2Threshold:    cfg.Pass2Threshold,
		TwoPass:           cfg.TwoPass,
		OpportunisticFill: cfg.OpportunisticFill,
	}

	out, err := pipeline.Run(ctx, source, skip, pipelineCfg)
	if err != nil {
		return fmt.Errorf("pagenum infer: %w", err)
	}

	var identifierPtr *string
	if identifier != "" {
		identifierPtr = &identifier
	}
	leafNums := leafNumsFromSkip(skip, out.TotalPages)
	doc := jsonout.Build(identifierPtr, version.GitRelease, out.Confidence.Percent, out.Assignment, leafNums)

	marshaled, err := jsonout.Marshal(doc)
	if err != nil {
		return fmt.Errorf("pagenum infer: marshaling output: %w", err)
	}
	if cfg.IdentifierOverride != "" {
		marshaled, err = jsonout.WithIdentifierOverride(marshaled, cfg.IdentifierOverride)
		if err != nil {
			return fmt.Errorf("pagenum infer: applying identifier override: %w", err)
		}
	}

	if outFile == "" {
		_, err = os.Stdout.Write(append(marshaled, '\n'))
		return err
	}
	return os.WriteFile(outFile, marshaled, 0o644)
}

// leafNumsFromSkip reconstructs the effective-index-to-leaf-number mapping
// a scandata skip list implies: walking raw page indices in order, each
// one not in skip becomes the next effective page, keeping its raw index
// as its leaf number. Returns nil when there is no scandata (skip is nil),
// so jsonout.Build falls back to leaf == effective index.
func leafNumsFromSkip(skip map[int]bool, totalPages int) []int {
	if skip == nil {
		return nil
	}
	leafNums := make([]int, 0, totalPages)
	for raw := 0; len(leafNums) < totalPages; raw++ {
		if !skip[raw] {
			leafNums = append(leafNums, raw)
		}
	}
	return leafNums
}

// applyFlagOverrides layers explicitly-set CLI flags on top of the loaded
// configuration; unset flags leave the config-file/default value in place.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("classifier") {
		cfg.Classifier = classifierFlag
	}
	if flags.Changed("two-pass") {
		cfg.TwoPass = twoPassFlag
	}
	if flags.Changed("opportunistic-fill") {
		cfg.OpportunisticFill = opportunisticFillFlag
	}
	if flags.Changed("pass1-threshold") {
		cfg.Pass1Threshold = pass1ThresholdFlag
	}
	if flags.Changed("pass2-threshold") {
		cfg.Pass2Threshold = pass2ThresholdFlag
	}
	if flags.Changed("identifier") {
		cfg.IdentifierOverride = identifierFlag
	}
}
