package assemble

import (
	"context"
	"fmt"
	"log"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/mvp-joe/contextpack/internal/extract"
	"github.com/mvp-joe/contextpack/internal/normalize"
	"github.com/mvp-joe/contextpack/internal/security"
	"github.com/mvp-joe/contextpack/internal/token"
	"github.com/mvp-joe/contextpack/internal/walker"
)

// Options controls one assembly run.
type Options struct {
	// Compress renders files as skeletons where the language supports it.
	Compress bool

	// FocusSet forces matching paths to full text regardless of Compress.
	FocusSet *walker.PatternSet

	RemoveComments   bool
	RemoveEmptyLines bool
	ShowLineNumbers  bool

	// TopFilesLength caps the top-files ranking in the stats.
	TopFilesLength int

	// Verbose logs per-file degradations (parse failures, excluded files).
	Verbose bool

	Header  string
	Intent  string
	GitLog  string
	GitDiff string
}

// Assembler turns loaded source files into a Document.
type Assembler struct {
	extractor  extract.Extractor
	normalizer *normalize.Normalizer
	counter    token.Counter
	scanner    security.Scanner
	progress   ProgressReporter
}

// New creates an Assembler. The counter, scanner, and reporter are injected
// so callers control token encoding, security policy, and progress display.
func New(counter token.Counter, scanner security.Scanner, progress ProgressReporter) *Assembler {
	return &Assembler{
		extractor:  extract.NewExtractor(),
		normalizer: normalize.New(),
		counter:    counter,
		scanner:    scanner,
		progress:   progress,
	}
}

// Assemble renders every file concurrently and builds the Document. Results
// land in a slot per input file, so discovery order survives parallel
// completion. Files the security scanner rejects are dropped entirely.
func (a *Assembler) Assemble(ctx context.Context, files []SourceFile, opts Options) (*Document, error) {
	results := make([]*FileRecord, len(files))

	a.progress.Start(len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if !a.scanner.IsSafe(file.Path, string(file.Content)) {
				if opts.Verbose {
					log.Printf("excluding %s: possible secret detected", file.Path)
				}
				a.progress.Step(file.Path)
				return nil
			}
			record := a.renderFile(file, opts)
			results[i] = &record
			a.progress.Step(file.Path)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("assemble: %w", err)
	}
	a.progress.Finish()

	records := make([]FileRecord, 0, len(results))
	for _, r := range results {
		if r != nil {
			records = append(records, *r)
		}
	}

	return &Document{
		Header:  opts.Header,
		Intent:  opts.Intent,
		Files:   records,
		GitLog:  opts.GitLog,
		GitDiff: opts.GitDiff,
		Stats:   computeStats(records, opts.TopFilesLength),
	}, nil
}

// renderFile produces one file's record: mode decision, skeleton or full
// text, normalization, then size metrics.
func (a *Assembler) renderFile(file SourceFile, opts Options) FileRecord {
	text, mode := a.renderText(file, opts)

	if opts.RemoveComments || opts.RemoveEmptyLines {
		normalized, err := a.normalizer.Normalize(text, file.Language, normalize.Options{
			RemoveComments:   opts.RemoveComments,
			RemoveEmptyLines: opts.RemoveEmptyLines,
		})
		if err != nil {
			if opts.Verbose {
				log.Printf("normalize %s: %v (keeping text as-is)", file.Path, err)
			}
		} else {
			text = normalized
		}
	}

	if opts.ShowLineNumbers {
		text = numberLines(text)
	}

	return FileRecord{
		Path:       file.Path,
		Language:   file.Language,
		Mode:       mode,
		Text:       text,
		CharCount:  utf8.RuneCountInString(text),
		TokenCount: a.counter.Count(text),
	}
}

// renderText decides the render mode. Order matters: compression disabled
// wins, then the focus set, then extractor support. Extraction failure of
// any kind degrades that one file to full text.
func (a *Assembler) renderText(file SourceFile, opts Options) (string, RenderMode) {
	if !opts.Compress {
		return string(file.Content), ModeFull
	}
	if opts.FocusSet != nil && opts.FocusSet.Match(file.Path) {
		return string(file.Content), ModeFull
	}

	root, err := a.extractor.Extract(file.Content, file.Language)
	if err != nil {
		if opts.Verbose {
			log.Printf("skeleton %s: %v (falling back to full text)", file.Path, err)
		}
		return string(file.Content), ModeFull
	}

	return extract.Render(root, file.Language), ModeSkeleton
}

// computeStats is a single-threaded reduction over the finished records.
func computeStats(records []FileRecord, topN int) Stats {
	stats := Stats{TotalFiles: len(records)}
	for _, r := range records {
		stats.TotalChars += r.CharCount
		stats.TotalTokens += r.TokenCount
	}

	ranked := make([]FileRecord, len(records))
	copy(ranked, records)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].CharCount != ranked[j].CharCount {
			return ranked[i].CharCount > ranked[j].CharCount
		}
		return ranked[i].Path < ranked[j].Path
	})

	if topN < 0 {
		topN = 0
	}
	if topN > len(ranked) {
		topN = len(ranked)
	}
	for _, r := range ranked[:topN] {
		stats.TopFiles = append(stats.TopFiles, TopFile{
			Path:       r.Path,
			CharCount:  r.CharCount,
			TokenCount: r.TokenCount,
		})
	}
	return stats
}

// numberLines prefixes each line with a right-aligned 1-based line number.
func numberLines(text string) string {
	hadTrailing := strings.HasSuffix(text, "\n")
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")

	width := len(strconv.Itoa(len(lines)))
	for i, line := range lines {
		lines[i] = fmt.Sprintf("%*d: %s", width, i+1, line)
	}

	out := strings.Join(lines, "\n")
	if hadTrailing {
		out += "\n"
	}
	return out
}
