package seed

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/andrKonan/ProjectAutomate-server/internal/data/aggregates"
	"github.com/andrKonan/ProjectAutomate-server/internal/data/dberr"
	"github.com/andrKonan/ProjectAutomate-server/internal/observability"
	"github.com/andrKonan/ProjectAutomate-server/internal/platform/dbctx"
	"github.com/andrKonan/ProjectAutomate-server/internal/platform/logger"
)

const tracerName = "github.com/andrKonan/ProjectAutomate-server/internal/seed"

type Outcome string

const (
	OutcomeApplied  Outcome = "applied"
	OutcomeSkipped  Outcome = "skipped"
	OutcomeRaceLost Outcome = "race_lost"
)

type FileReport struct {
	Path        string
	Kind        Kind
	Fingerprint string
	Outcome     Outcome
	Created     int
	Existing    int
	Attempts    int
}

type Report struct {
	Files []FileReport
}

func (r Report) Count(o Outcome) int {
	n := 0
	for _, f := range r.Files {
		if f.Outcome == o {
			n++
		}
	}
	return n
}

// RunnerConfig wires a Runner. Nil collaborators default to the Store-backed
// implementations; a nil Manifest means the embedded one.
type RunnerConfig struct {
	FS              fs.FS
	Manifest        *Manifest
	ConflictRetries int

	Tx       aggregates.TxRunner
	Ledger   Ledger
	Resolver *Resolver
	Upserter Upserter

	Metrics *observability.Metrics
}

// Runner applies seed sources one at a time, in order.
type Runner struct {
	fsys     fs.FS
	manifest *Manifest
	retries  int

	tx       aggregates.TxRunner
	ledger   Ledger
	resolver *Resolver
	upserter Upserter

	log     *logger.Logger
	tracer  trace.Tracer
	metrics *observability.Metrics
}

var errRaceLost = NewError(CodeDuplicateApplication, "seed.ledger", "fingerprint recorded by another run", nil)

func NewRunner(store *Store, cfg RunnerConfig, baseLog *logger.Logger) (*Runner, error) {
	if cfg.FS == nil {
		return nil, errors.New("seed runner: source filesystem is required")
	}
	if store == nil && (cfg.Tx == nil || cfg.Ledger == nil || cfg.Resolver == nil || cfg.Upserter == nil) {
		return nil, errors.New("seed runner: store is required")
	}
	manifest := cfg.Manifest
	if manifest == nil {
		m, err := DefaultManifest()
		if err != nil {
			return nil, err
		}
		manifest = m
	}
	r := &Runner{
		fsys:     cfg.FS,
		manifest: manifest,
		retries:  cfg.ConflictRetries,
		tx:       cfg.Tx,
		ledger:   cfg.Ledger,
		resolver: cfg.Resolver,
		upserter: cfg.Upserter,
		log:      baseLog.With("service", "SeedRunner"),
		tracer:   otel.Tracer(tracerName),
		metrics:  cfg.Metrics,
	}
	if r.retries < 0 {
		r.retries = 0
	}
	if r.tx == nil {
		r.tx = store.Tx
	}
	if r.ledger == nil {
		r.ledger = NewLedger(store.Applications, baseLog)
	}
	if r.resolver == nil {
		r.resolver = NewResolver(store)
	}
	if r.upserter == nil {
		r.upserter = NewUpserter(store)
	}
	return r, nil
}

// Run applies every manifest source in order and stops at the first fatal
// error. Files applied before the failure stay committed.
func (r *Runner) Run(ctx context.Context) (Report, error) {
	return r.RunSources(ctx, r.manifest.Sources)
}

// RunSources applies sources in the given order without checking it.
func (r *Runner) RunSources(ctx context.Context, sources []Source) (Report, error) {
	ctx, span := r.tracer.Start(ctx, "seed.run", trace.WithAttributes(
		attribute.Int("seed.sources", len(sources)),
	))
	defer span.End()

	var report Report
	for _, src := range sources {
		fr, err := r.runFile(ctx, src)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "seed run failed")
			r.log.Error("seed run aborted", "path", src.Path, "kind", src.Kind, "code", CodeOf(err), "error", err)
			return report, err
		}
		report.Files = append(report.Files, fr)
	}
	r.log.Info("seed run complete",
		"applied", report.Count(OutcomeApplied),
		"skipped", report.Count(OutcomeSkipped),
		"race_lost", report.Count(OutcomeRaceLost),
	)
	return report, nil
}

func (r *Runner) runFile(ctx context.Context, src Source) (fr FileReport, err error) {
	ctx, span := r.tracer.Start(ctx, "seed.file", trace.WithAttributes(
		attribute.String("seed.path", src.Path),
		attribute.String("seed.kind", string(src.Kind)),
	))
	start := time.Now()
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, string(CodeOf(err)))
			r.metrics.IncSeedFailure(string(CodeOf(err)))
		} else {
			span.SetAttributes(attribute.String("seed.outcome", string(fr.Outcome)))
			r.metrics.ObserveSeedFile(string(src.Kind), string(fr.Outcome), fr.Created, fr.Existing, time.Since(start))
		}
		span.End()
	}()

	fr = FileReport{Path: src.Path, Kind: src.Kind}

	raw, err := readSource(r.fsys, src.Path)
	if err != nil {
		return fr, err
	}
	fp := Fingerprint(raw)
	fr.Fingerprint = fp
	span.SetAttributes(attribute.String("seed.fingerprint", fp))

	applied, err := r.ledger.HasApplied(dbctx.Context{Ctx: ctx}, fp)
	if err != nil {
		return fr, atSource(err, src.Path, -1)
	}
	if applied {
		fr.Outcome = OutcomeSkipped
		r.log.Info("seed file skipped", "path", src.Path, "fingerprint", Short(fp))
		return fr, nil
	}

	records, err := Read(src.Kind, raw)
	if err != nil {
		return fr, atSource(err, src.Path, -1)
	}

	for attempt := 1; ; attempt++ {
		fr.Attempts = attempt
		summary, err := r.applyFile(ctx, src, fp, records)
		if err == nil {
			fr.Outcome = OutcomeApplied
			fr.Created, fr.Existing = summary.Created, summary.Existing
			r.log.Info("seed file applied",
				"path", src.Path,
				"fingerprint", Short(fp),
				"created", summary.Created,
				"existing", summary.Existing,
			)
			return fr, nil
		}
		if errors.Is(err, errRaceLost) {
			fr.Outcome = OutcomeRaceLost
			r.log.Warn("seed file race lost", "path", src.Path, "fingerprint", Short(fp))
			return fr, nil
		}
		if IsCode(err, CodeParse) || IsCode(err, CodeReferenceNotFound) || !isConflict(err) {
			return fr, err
		}

		// Another writer touched the same names. If it finished this exact
		// file the work is done; otherwise start the file over.
		done, lerr := r.ledger.HasApplied(dbctx.Context{Ctx: ctx}, fp)
		if lerr != nil {
			return fr, atSource(lerr, src.Path, -1)
		}
		if done {
			fr.Outcome = OutcomeRaceLost
			r.log.Warn("seed file race lost", "path", src.Path, "fingerprint", Short(fp))
			return fr, nil
		}
		if attempt > r.retries {
			return fr, atSource(NewError(CodeStorage, "seed.apply",
				fmt.Sprintf("conflict persisted after %d attempts", attempt), err), src.Path, -1)
		}
		r.log.Warn("seed file conflict, retrying", "path", src.Path, "attempt", attempt, "error", err)
	}
}

// applyFile resolves and upserts every record and writes the ledger row in
// one transaction.
func (r *Runner) applyFile(ctx context.Context, src Source, fp string, records []Record) (Summary, error) {
	var summary Summary
	err := r.tx.InTx(ctx, func(dbc dbctx.Context) error {
		summary = Summary{Records: len(records)}
		for i, rec := range records {
			res, err := r.resolver.ResolveRecord(dbc, rec)
			if err != nil {
				return atSource(err, src.Path, i)
			}
			_, created, err := r.upserter.Upsert(dbc, res)
			if err != nil {
				return atSource(Wrap(CodeStorage, "seed.upsert", err), src.Path, i)
			}
			if created {
				summary.Created++
			} else {
				summary.Existing++
			}
		}
		inserted, err := r.ledger.MarkApplied(dbc, Mark{
			Fingerprint: fp,
			SourcePath:  src.Path,
			Kind:        src.Kind,
			Summary:     summary,
		})
		if err != nil {
			return atSource(err, src.Path, -1)
		}
		if !inserted {
			return errRaceLost
		}
		return nil
	})
	if err != nil {
		return Summary{}, Wrap(CodeStorage, "seed.apply", err)
	}
	return summary, nil
}

func isConflict(err error) bool {
	return dberr.IsUniqueViolation(err) || dberr.IsRetryable(err)
}
