// Package dataset assembles a corpus from curated base data and optional
// downloaded sources, and writes it as a snapshot.
package dataset

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/alexanderramin/tutor/internal/corpus"
	"github.com/alexanderramin/tutor/internal/textnorm"
)

// SubjectReport counts what a build contributed to one subject.
type SubjectReport struct {
	Subject       string
	Base          int
	Downloaded    int
	Duplicates    int
	FailedSources []string
}

// Report summarises a build.
type Report struct {
	Subjects []SubjectReport
	BuiltAt  time.Time
}

// Pairs returns the total pair count.
func (r Report) Pairs() int {
	n := 0
	for _, s := range r.Subjects {
		n += s.Base + s.Downloaded
	}
	return n
}

// Builder merges base data with downloaded sources.
type Builder struct {
	base    []corpus.SubjectData
	sources map[string][]string
	fetcher Fetcher
	logger  *slog.Logger
	now     func() time.Time
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithSources adds per-subject source URLs. Without a fetcher they are ignored.
func WithSources(sources map[string][]string) BuilderOption {
	return func(b *Builder) {
		if b.sources == nil {
			b.sources = make(map[string][]string)
		}
		for subject, urls := range sources {
			b.sources[subject] = append(b.sources[subject], urls...)
		}
	}
}

func WithFetcher(f Fetcher) BuilderOption {
	return func(b *Builder) { b.fetcher = f }
}

func WithLogger(l *slog.Logger) BuilderOption {
	return func(b *Builder) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithBase replaces the base data.
func WithBase(base []corpus.SubjectData) BuilderOption {
	return func(b *Builder) { b.base = base }
}

// NewBuilder returns a Builder seeded with BaseData.
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{
		base:   BaseData(),
		logger: slog.New(slog.DiscardHandler),
		now:    func() time.Time { return time.Now().UTC() },
	}
	for _, o := range opts {
		o(b)
	}
	return b
}

// BaseData is the built-in corpus extended with curated extras.
func BaseData() []corpus.SubjectData {
	subjects := slices.Clone(corpus.Builtin().Subjects)
	for i := range subjects {
		subjects[i].Pairs = append(slices.Clone(subjects[i].Pairs), baseExtras[subjects[i].Name]...)
	}
	return subjects
}

// Build returns the merged corpus. Source failures are logged and recorded
// in the report; the base data always survives.
func (b *Builder) Build(ctx context.Context) (corpus.LegacyCorpus, Report) {
	report := Report{BuiltAt: b.now()}
	var out corpus.LegacyCorpus
	index := make(map[string]int)

	add := func(name string) *subjectAcc {
		i, ok := index[name]
		if !ok {
			i = len(out.Subjects)
			index[name] = i
			out.Subjects = append(out.Subjects, corpus.SubjectData{Name: name})
			report.Subjects = append(report.Subjects, SubjectReport{Subject: name})
		}
		return &subjectAcc{data: &out.Subjects[i], report: &report.Subjects[i]}
	}

	seen := make(map[string]map[string]bool)
	for _, s := range b.base {
		acc := add(s.Name)
		acc.data.Rules = s.Rules
		for _, p := range s.Pairs {
			if acc.keep(p, seen) {
				acc.report.Base++
			}
		}
	}

	if b.fetcher != nil {
		for _, subject := range sortedKeys(b.sources) {
			for _, url := range b.sources[subject] {
				if err := ctx.Err(); err != nil {
					b.logger.WarnContext(ctx, "dataset build cancelled", "error", err)
					return out, report
				}
				acc := add(subject)
				pairs, err := b.fetcher.Fetch(ctx, url)
				if err != nil {
					b.logger.WarnContext(ctx, "dataset source skipped", "subject", subject, "url", url, "error", err)
					acc.report.FailedSources = append(acc.report.FailedSources, url)
					continue
				}
				for _, p := range pairs {
					if acc.keep(p, seen) {
						acc.report.Downloaded++
					}
				}
			}
		}
	}

	for _, s := range report.Subjects {
		b.logger.InfoContext(ctx, "dataset subject built",
			"subject", s.Subject, "base", s.Base, "downloaded", s.Downloaded,
			"duplicates", s.Duplicates, "failed_sources", len(s.FailedSources))
	}
	return out, report
}

// BuildSnapshot builds the corpus and writes it to path as a snapshot.
func (b *Builder) BuildSnapshot(ctx context.Context, path string) (Report, error) {
	legacy, report := b.Build(ctx)
	store, err := corpus.NewStore(legacy)
	if err != nil {
		return report, fmt.Errorf("building corpus: %w", err)
	}
	vc, err := store.Vectorized()
	if err != nil {
		return report, fmt.Errorf("vectorizing corpus: %w", err)
	}
	if err := corpus.SaveSnapshot(path, vc, report.BuiltAt); err != nil {
		return report, err
	}
	return report, nil
}

type subjectAcc struct {
	data   *corpus.SubjectData
	report *SubjectReport
}

// keep appends p unless its normalized question is already in the subject.
func (a *subjectAcc) keep(p corpus.QAPair, seen map[string]map[string]bool) bool {
	key := textnorm.Normalize(p.Question)
	if key == "" || p.Answer == "" {
		return false
	}
	set := seen[a.data.Name]
	if set == nil {
		set = make(map[string]bool)
		seen[a.data.Name] = set
	}
	if set[key] {
		a.report.Duplicates++
		return false
	}
	set[key] = true
	a.data.Pairs = append(a.data.Pairs, p)
	return true
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
