package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mvp-joe/contextpack/internal/assemble"
	"github.com/mvp-joe/contextpack/internal/config"
	"github.com/mvp-joe/contextpack/internal/gitx"
	"github.com/mvp-joe/contextpack/internal/render"
	"github.com/mvp-joe/contextpack/internal/security"
	"github.com/mvp-joe/contextpack/internal/token"
	"github.com/mvp-joe/contextpack/internal/walker"
	"github.com/mvp-joe/contextpack/internal/watcher"
)

var (
	packStyle             string
	packOutput            string
	packCompress          bool
	packRemoveComments    bool
	packRemoveEmptyLines  bool
	packShowLineNumbers   bool
	packTopFiles          int
	packInclude           []string
	packIgnore            []string
	packNoGitignore       bool
	packNoDefaultPatterns bool
	packNoSecurityCheck   bool
	packFocus             []string
	packIntent            string
	packHeaderText        string
	packInstructionFile   string
	packIncludeDiffs      bool
	packIncludeLogs       bool
	packCopy              bool
	packRemote            string
	packRemoteBranch      string
	packQuiet             bool
	packWatch             bool
)

// packCmd represents the pack command
var packCmd = &cobra.Command{
	Use:   "pack [path]",
	Short: "Pack a directory into a single context document",
	Long: `Pack discovers source files under a directory, renders each one as full
text or a structural skeleton, and assembles them into one document.

Examples:
  # Pack the current directory into contextpack-output.xml
  contextpack pack

  # Compressed markdown pack with full text for the files being edited
  contextpack pack --compress --style markdown --focus 'internal/server/**'

  # Pack a remote repository
  contextpack pack --remote https://github.com/user/repo

  # Survey pass for a task: skeletons plus the task description
  contextpack pack --compress --intent "add retry logic to the fetcher"

  # Re-pack whenever files change
  contextpack pack --watch
`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPack,
}

func init() {
	rootCmd.AddCommand(packCmd)

	packCmd.Flags().StringVar(&packStyle, "style", "", "output style: xml, markdown, json, or plain")
	packCmd.Flags().StringVarP(&packOutput, "output", "o", "", "output file path ('-' for stdout)")
	packCmd.Flags().BoolVar(&packCompress, "compress", false, "render unfocused files as structural skeletons")
	packCmd.Flags().BoolVar(&packRemoveComments, "remove-comments", false, "strip comments from packed files")
	packCmd.Flags().BoolVar(&packRemoveEmptyLines, "remove-empty-lines", false, "strip blank lines from packed files")
	packCmd.Flags().BoolVar(&packShowLineNumbers, "output-show-line-numbers", false, "prefix packed lines with line numbers")
	packCmd.Flags().IntVar(&packTopFiles, "top-files-len", -1, "number of entries in the top-files ranking")
	packCmd.Flags().StringSliceVar(&packInclude, "include", nil, "glob patterns of files to include")
	packCmd.Flags().StringSliceVar(&packIgnore, "ignore", nil, "glob patterns of files to ignore")
	packCmd.Flags().BoolVar(&packNoGitignore, "no-gitignore", false, "do not honor .gitignore")
	packCmd.Flags().BoolVar(&packNoDefaultPatterns, "no-default-patterns", false, "do not apply the default ignore patterns")
	packCmd.Flags().BoolVar(&packNoSecurityCheck, "no-security-check", false, "disable secret scanning")
	packCmd.Flags().StringSliceVar(&packFocus, "focus", nil, "glob patterns of files forced to full text")
	packCmd.Flags().StringVar(&packIntent, "intent", "", "task description: literal text, a file, or a directory of task files")
	packCmd.Flags().StringVar(&packHeaderText, "header-text", "", "free-form text placed at the top of the document")
	packCmd.Flags().StringVar(&packInstructionFile, "instruction-file-path", "", "file whose content joins the header")
	packCmd.Flags().BoolVar(&packIncludeDiffs, "include-diffs", false, "attach the working-tree git diff")
	packCmd.Flags().BoolVar(&packIncludeLogs, "include-logs", false, "attach recent git log entries")
	packCmd.Flags().BoolVar(&packCopy, "copy", false, "copy the rendered document to the clipboard")
	packCmd.Flags().StringVar(&packRemote, "remote", "", "pack a remote repository URL instead of a local path")
	packCmd.Flags().StringVar(&packRemoteBranch, "remote-branch", "", "branch to clone with --remote")
	packCmd.Flags().BoolVarP(&packQuiet, "quiet", "q", false, "disable progress bars and non-error output")
	packCmd.Flags().BoolVarP(&packWatch, "watch", "w", false, "re-pack whenever watched files change")
}

func runPack(cmd *cobra.Command, args []string) error {
	// Set up context with cancellation for Ctrl+C
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Fprintln(os.Stderr, "\nInterrupted! Cancelling...")
		cancel()
	}()

	git := gitx.NewCollector()

	rootDir, cleanup, err := resolveRoot(args, git)
	if err != nil {
		return err
	}
	if cleanup != nil {
		defer cleanup()
	}

	cfg, err := config.LoadConfigFromDir(rootDir)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	applyFlagOverrides(cmd, cfg)
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	tasks, err := resolveIntent(cfg.Intent)
	if err != nil {
		return err
	}
	if packWatch && len(tasks) > 1 {
		return fmt.Errorf("--watch cannot be combined with a directory of intent tasks")
	}

	for _, task := range tasks {
		outPath := taskOutputPath(cfg.Output.FilePath, task.Name)
		if err := packOnce(ctx, rootDir, cfg, git, task, outPath); err != nil {
			return err
		}
	}

	if packWatch {
		if err := watchAndRepack(ctx, rootDir, cfg, git, tasks[0]); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
	}
	return nil
}

// resolveRoot picks the directory to pack: a shallow clone of --remote, the
// positional argument, or the working directory. The returned cleanup
// removes the clone, if any.
func resolveRoot(args []string, git gitx.Collector) (string, func(), error) {
	if packRemote != "" {
		tmpDir, err := os.MkdirTemp("", "contextpack-remote-*")
		if err != nil {
			return "", nil, fmt.Errorf("failed to create temp directory: %w", err)
		}
		if !packQuiet {
			fmt.Printf("Cloning %s...\n", packRemote)
		}
		if err := git.Clone(packRemote, tmpDir, packRemoteBranch); err != nil {
			os.RemoveAll(tmpDir)
			return "", nil, err
		}
		return tmpDir, func() { os.RemoveAll(tmpDir) }, nil
	}

	if len(args) > 0 {
		return args[0], nil, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	return wd, nil, nil
}

// applyFlagOverrides copies explicitly set flags over the loaded config, so
// flags always win over file and environment values.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()

	if flags.Changed("style") {
		cfg.Output.Style = packStyle
	}
	if flags.Changed("output") {
		cfg.Output.FilePath = packOutput
	}
	if flags.Changed("compress") {
		cfg.Output.Compress = packCompress
	}
	if flags.Changed("remove-comments") {
		cfg.Output.RemoveComments = packRemoveComments
	}
	if flags.Changed("remove-empty-lines") {
		cfg.Output.RemoveEmptyLines = packRemoveEmptyLines
	}
	if flags.Changed("output-show-line-numbers") {
		cfg.Output.ShowLineNumbers = packShowLineNumbers
	}
	if flags.Changed("top-files-len") {
		cfg.Output.TopFilesLength = packTopFiles
	}
	if flags.Changed("include") {
		cfg.Include = packInclude
	}
	if flags.Changed("focus") {
		cfg.Focus = packFocus
	}
	if flags.Changed("intent") {
		cfg.Intent = packIntent
	}
	if flags.Changed("ignore") {
		cfg.Ignore.CustomPatterns = append(cfg.Ignore.CustomPatterns, packIgnore...)
	}
	if flags.Changed("no-gitignore") {
		cfg.Ignore.UseGitignore = !packNoGitignore
	}
	if flags.Changed("no-default-patterns") {
		cfg.Ignore.UseDefaultPatterns = !packNoDefaultPatterns
	}
	if flags.Changed("no-security-check") {
		cfg.Security.EnableSecurityCheck = !packNoSecurityCheck
	}
	if flags.Changed("header-text") {
		cfg.Output.HeaderText = packHeaderText
	}
	if flags.Changed("instruction-file-path") {
		cfg.Output.InstructionFilePath = packInstructionFile
	}
	if flags.Changed("include-diffs") {
		cfg.Output.IncludeDiffs = packIncludeDiffs
	}
	if flags.Changed("include-logs") {
		cfg.Output.IncludeLogs = packIncludeLogs
	}
	if flags.Changed("copy") {
		cfg.Output.CopyToClipboard = packCopy
	}
}

// packOnce runs one full pack: discover, order, load, assemble, render,
// deliver.
func packOnce(ctx context.Context, rootDir string, cfg *config.Config, git gitx.Collector, task intentTask, outPath string) error {
	w, err := walker.New(rootDir, walker.Config{
		IncludePatterns:   cfg.Include,
		IgnorePatterns:    ignorePatternsFor(cfg, outPath),
		UseDefaultIgnores: cfg.Ignore.UseDefaultPatterns,
		RespectGitignore:  cfg.Ignore.UseGitignore,
	})
	if err != nil {
		return err
	}

	paths, err := w.Discover()
	if err != nil {
		return fmt.Errorf("discovery failed: %w", err)
	}

	if git.IsRepo(rootDir) {
		paths = orderByChangeFrequency(paths, git.ChangeCounts(rootDir))
	}

	files, err := assemble.Load(rootDir, paths)
	if err != nil {
		return err
	}

	focusSet, err := walker.CompilePatterns(cfg.Focus)
	if err != nil {
		return err
	}

	counter, err := token.NewCounter()
	if err != nil {
		log.Printf("Warning: token counter unavailable, counts will be 0: %v", err)
		counter = token.Zero()
	}

	scanner := security.NewScanner()
	if !cfg.Security.EnableSecurityCheck {
		scanner = security.AllowAll()
	}

	header, err := buildHeader(cfg)
	if err != nil {
		return err
	}

	var gitLog, gitDiff string
	if git.IsRepo(rootDir) {
		if cfg.Output.IncludeLogs {
			if gitLog, err = git.Log(rootDir); err != nil {
				log.Printf("Warning: could not collect git log: %v", err)
			}
		}
		if cfg.Output.IncludeDiffs {
			if gitDiff, err = git.Diff(rootDir); err != nil {
				log.Printf("Warning: could not collect git diff: %v", err)
			}
		}
	}

	asm := assemble.New(counter, scanner, newPackProgress(packQuiet))
	doc, err := asm.Assemble(ctx, files, assemble.Options{
		Compress:         cfg.Output.Compress,
		FocusSet:         focusSet,
		RemoveComments:   cfg.Output.RemoveComments,
		RemoveEmptyLines: cfg.Output.RemoveEmptyLines,
		ShowLineNumbers:  cfg.Output.ShowLineNumbers,
		TopFilesLength:   cfg.Output.TopFilesLength,
		Verbose:          verbose,
		Header:           header,
		Intent:           buildIntentPreamble(task.Text, !focusSet.Empty()),
		GitLog:           gitLog,
		GitDiff:          gitDiff,
	})
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("packing cancelled")
		}
		return err
	}

	text, err := render.Render(doc, cfg.Output.Style)
	if err != nil {
		return err
	}

	if err := writeOutput(text, outPath, cfg.Output.CopyToClipboard); err != nil {
		return err
	}

	if !packQuiet {
		printSummary(doc, outPath)
	}
	return nil
}

// ignorePatternsFor adds the output file itself to the custom ignores so a
// previous run's document is never packed into the next one.
func ignorePatternsFor(cfg *config.Config, outPath string) []string {
	patterns := append([]string{}, cfg.Ignore.CustomPatterns...)
	if outPath != "-" {
		patterns = append(patterns, outPath)
	}
	return patterns
}

// buildHeader joins the configured header text with the instruction file's
// content, if any.
func buildHeader(cfg *config.Config) (string, error) {
	parts := []string{}
	if cfg.Output.HeaderText != "" {
		parts = append(parts, cfg.Output.HeaderText)
	}
	if cfg.Output.InstructionFilePath != "" {
		content, err := os.ReadFile(cfg.Output.InstructionFilePath)
		if err != nil {
			return "", fmt.Errorf("read instruction file: %w", err)
		}
		parts = append(parts, strings.TrimSpace(string(content)))
	}
	return strings.Join(parts, "\n\n"), nil
}

// orderByChangeFrequency reorders paths by how often each changed in recent
// history, least-changed first, so the most active files sit nearest the end
// of the document. The sort is stable: files with equal counts keep their
// lexical discovery order.
func orderByChangeFrequency(paths []string, counts map[string]int) []string {
	ordered := make([]string, len(paths))
	copy(ordered, paths)
	sort.SliceStable(ordered, func(i, j int) bool {
		return counts[ordered[i]] < counts[ordered[j]]
	})
	return ordered
}

// printSummary prints the post-pack report.
func printSummary(doc *assemble.Document, outPath string) {
	fmt.Println()
	fmt.Printf("✓ Packed %d files\n", doc.Stats.TotalFiles)
	fmt.Printf("  Total chars:  %d\n", doc.Stats.TotalChars)
	fmt.Printf("  Total tokens: %d\n", doc.Stats.TotalTokens)
	if len(doc.Stats.TopFiles) > 0 {
		fmt.Println("  Top files:")
		for i, t := range doc.Stats.TopFiles {
			fmt.Printf("  %d. %s (%d chars, %d tokens)\n", i+1, t.Path, t.CharCount, t.TokenCount)
		}
	}
	if outPath == "-" {
		return
	}
	fmt.Printf("  Output: %s\n", outPath)
}

// watchAndRepack blocks, re-running the pack whenever watched files change.
func watchAndRepack(ctx context.Context, rootDir string, cfg *config.Config, git gitx.Collector, task intentTask) error {
	fw, err := watcher.New(rootDir, cfg.Output.FilePath)
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer fw.Close()

	if !packQuiet {
		log.Println("Watching for changes (Ctrl+C to stop)...")
	}

	return fw.Run(ctx, func(changed []string) {
		if !packQuiet {
			log.Printf("Re-packing after %d change(s)...", len(changed))
		}
		if err := packOnce(ctx, rootDir, cfg, git, task, cfg.Output.FilePath); err != nil {
			log.Printf("Error: re-pack failed: %v", err)
		}
	})
}
