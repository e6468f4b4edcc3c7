package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/maruosan78/mk-line-length-check/internal/config"
	"github.com/maruosan78/mk-line-length-check/internal/docx"
	"github.com/maruosan78/mk-line-length-check/internal/logger"
	"github.com/maruosan78/mk-line-length-check/pkg/bilingual"
	"github.com/maruosan78/mk-line-length-check/pkg/report"
)

var (
	cfgFile      string
	charLimit    int
	outputPath   string
	tagRulesPath string
	debugMode    bool
	verboseMode  bool
)

// NewRootCommand creates the root command.
func NewRootCommand(version, commit, buildDate string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "linecheck [flags] [input.docx]",
		Short: "linecheck flags over-long lines in memoQ bilingual DOCX exports",
		Long: `linecheck scans the bilingual table of a memoQ DOCX export, converts
inline formatting tags into logical line breaks, measures each visible line
of target text and writes a standalone HTML report in which the characters
beyond the configured limit are highlighted.

Without an input argument the first DOCX file in the current folder is used.`,
		Version: fmt.Sprintf("%s (commit %s, built %s)", version, commit, buildDate),
		Args:    cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			run(cmd, args, version)
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().IntVarP(&charLimit, "limit", "l", 0, "character limit per line")
	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "report output path")
	rootCmd.PersistentFlags().StringVar(&tagRulesPath, "tag-rules", "", "TOML file with extra tag patterns")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&verboseMode, "verbose", "v", false, "log per-segment details")

	return rootCmd
}

func run(cmd *cobra.Command, args []string, version string) {
	log := logger.NewLogger(debugMode)
	defer func() {
		_ = log.Sync()
	}()

	cfg, err := config.Load(cfgFile)
	if err != nil {
		log.Error("failed to load config", zap.Error(err))
		os.Exit(1)
	}
	updateConfigFromFlags(cmd, cfg)

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", zap.Error(err))
		os.Exit(1)
	}

	inputPath, err := resolveInput(args)
	if err != nil {
		log.Error("no usable input file", zap.Error(err))
		os.Exit(1)
	}
	if strings.ToLower(filepath.Ext(inputPath)) != ".docx" {
		log.Error("this tool works with DOCX only, export a bilingual DOCX from memoQ",
			zap.String("input", inputPath))
		os.Exit(1)
	}

	runID := uuid.New().String()[:8]
	log = log.With(zap.String("runID", runID))

	normalizer, err := buildNormalizer(cfg)
	if err != nil {
		log.Error("failed to build tag normalizer", zap.Error(err))
		os.Exit(1)
	}

	log.Info("loading DOCX document", zap.String("path", inputPath))
	doc, err := docx.Open(inputPath, log)
	if err != nil {
		log.Error("failed to load DOCX document", zap.Error(err))
		os.Exit(1)
	}

	violations := analyzeDocument(doc, normalizer, cfg, log)

	page, err := report.Render(report.Data{
		Violations: violations,
		Limit:      cfg.CharLimit,
		SourceName: inputPath,
		Version:    version,
		RunID:      runID,
	})
	if err != nil {
		log.Error("failed to render report", zap.Error(err))
		os.Exit(1)
	}

	out := cfg.OutputPath
	if out == "" {
		base := strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
		out = fmt.Sprintf("%s_length_report_%d.html", base, cfg.CharLimit)
	}
	if err := os.WriteFile(out, page, 0o644); err != nil {
		log.Error("failed to write report", zap.String("path", out), zap.Error(err))
		os.Exit(1)
	}
	log.Info("HTML report written", zap.String("path", out))

	printSummary(os.Stdout, violations, cfg.CharLimit)
}

// analyzeDocument runs locate + analyze and maps the recoverable structural
// outcomes to an empty violation list. A row layout mismatch is fatal: the
// table does not match the assumed bilingual layout, so every metric after
// the bad row would be suspect.
func analyzeDocument(doc bilingual.Document, normalizer *bilingual.Normalizer, cfg *config.Config, log *zap.Logger) []bilingual.Violation {
	loc, err := bilingual.Locate(doc)
	if err != nil {
		if errors.Is(err, bilingual.ErrNoBilingualTable) {
			log.Warn("no table with an ID header and at least three columns was found")
			return nil
		}
		log.Error("failed to locate bilingual table", zap.Error(err))
		os.Exit(1)
	}
	log.Info("found bilingual table",
		zap.Int("headerRow", loc.HeaderRow),
		zap.Int("idColumn", loc.IDColumn))

	analyzer, err := bilingual.NewAnalyzer(normalizer, cfg.CharLimit, log)
	if err != nil {
		log.Error("invalid analyzer configuration", zap.Error(err))
		os.Exit(1)
	}

	violations, err := analyzer.Analyze(loc)
	if err != nil {
		if errors.Is(err, bilingual.ErrColumnLayout) {
			log.Warn("could not determine target column (not enough columns)")
			return nil
		}
		var rowErr *bilingual.RowLayoutError
		if errors.As(err, &rowErr) {
			log.Error("bilingual table does not match the expected layout",
				zap.Int("row", rowErr.Row),
				zap.Error(err))
			os.Exit(1)
		}
		log.Error("analysis failed", zap.Error(err))
		os.Exit(1)
	}

	if verboseMode || cfg.Verbose {
		for i := range violations {
			v := &violations[i]
			log.Info("segment over limit",
				zap.String("id", v.DisplayID()),
				zap.Int("maxLineLength", v.MaxLineLength),
				zap.Int("segmentLength", v.SegmentLength),
				zap.Ints("lineLengths", v.LineLengths))
		}
	}
	return violations
}

func buildNormalizer(cfg *config.Config) (*bilingual.Normalizer, error) {
	if cfg.TagRulesPath == "" {
		return bilingual.NewNormalizer()
	}
	rules, err := config.LoadTagRules(cfg.TagRulesPath)
	if err != nil {
		return nil, err
	}
	return bilingual.NewNormalizer(rules.Patterns...)
}

// resolveInput picks the explicit argument, or the first DOCX file in the
// working directory. RTF/RTX exports are detected only to give a clearer
// error than "nothing found".
func resolveInput(args []string) (string, error) {
	if len(args) == 1 {
		if _, err := os.Stat(args[0]); err != nil {
			return "", err
		}
		return args[0], nil
	}

	entries, err := os.ReadDir(".")
	if err != nil {
		return "", err
	}

	rtfLike := ""
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".docx":
			return entry.Name(), nil
		case ".rtf", ".rtx":
			if rtfLike == "" {
				rtfLike = entry.Name()
			}
		}
	}
	if rtfLike != "" {
		return "", fmt.Errorf("found %s, but this tool works with DOCX only", rtfLike)
	}
	return "", errors.New("no DOCX file found in the current folder")
}

// updateConfigFromFlags lets explicit flags override the config file.
func updateConfigFromFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("limit") {
		cfg.CharLimit = charLimit
	}
	if cmd.Flags().Changed("output") {
		cfg.OutputPath = outputPath
	}
	if cmd.Flags().Changed("tag-rules") {
		cfg.TagRulesPath = tagRulesPath
	}
	if cmd.Flags().Changed("debug") {
		cfg.Debug = debugMode
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = verboseMode
	}
}
