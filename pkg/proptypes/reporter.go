package proptypes

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dmitrymomot/immutableprops/pkg/cache"
	"github.com/dmitrymomot/immutableprops/pkg/environment"
	"github.com/dmitrymomot/immutableprops/pkg/logger"
)

// DefaultDedupeCapacity is the number of distinct messages a Reporter
// remembers when no capacity is configured.
const DefaultDedupeCapacity = 1000

// Reporter runs prop checks and logs each failure as a warning. With dedupe
// enabled a given message is logged only once while it is remembered; the
// memo keeps the most recently seen messages up to its capacity.
type Reporter struct {
	logger     *slog.Logger
	translator Translator
	enabled    bool
	dedupe     bool
	capacity   int

	logged *cache.Seen[string]
}

// ReporterOption configures a Reporter.
type ReporterOption func(*Reporter)

// WithLogger sets the logger failures are written to. Nil is ignored.
func WithLogger(l *slog.Logger) ReporterOption {
	return func(r *Reporter) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithTranslator adds the failure rendered in the context locale to every
// log record as the "message" attribute.
func WithTranslator(tr Translator) ReporterOption {
	return func(r *Reporter) { r.translator = tr }
}

func WithDedupe(dedupe bool) ReporterOption {
	return func(r *Reporter) { r.dedupe = dedupe }
}

// WithDedupeCapacity bounds the dedupe memo. Non-positive values are ignored.
func WithDedupeCapacity(n int) ReporterOption {
	return func(r *Reporter) {
		if n > 0 {
			r.capacity = n
		}
	}
}

func WithEnabled(enabled bool) ReporterOption {
	return func(r *Reporter) { r.enabled = enabled }
}

// NewReporter creates a Reporter from cfg. Reporting is disabled when
// cfg.Environment is production. Options are applied after cfg.
func NewReporter(cfg Config, opts ...ReporterOption) *Reporter {
	r := &Reporter{
		logger:   slog.Default(),
		enabled:  cfg.Enabled && !environment.Parse(cfg.Environment).IsProduction(),
		dedupe:   cfg.Dedupe,
		capacity: DefaultDedupeCapacity,
	}
	if cfg.DedupeCapacity > 0 {
		r.capacity = cfg.DedupeCapacity
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logged = cache.NewSeen[string](r.capacity)
	return r
}

// Check validates props against specs and logs the failures. It returns the
// result of CheckPropTypes whether or not a failure was logged. Nothing is
// checked when the reporter is disabled or ctx carries the production
// environment.
func (r *Reporter) Check(ctx context.Context, specs Fields, props Props, location, componentName string) error {
	if !r.enabled || environment.IsProduction(ctx) {
		return nil
	}

	err := CheckPropTypes(specs, props, location, componentName)
	for _, ve := range ExtractValidationErrors(err) {
		if r.dedupe && !r.logged.Add(ve.Message) {
			continue
		}

		var code string
		var f *Failure
		if errors.As(ve.Err, &f) {
			code = string(f.Code)
		}

		r.logger.WarnContext(ctx, "failed prop type",
			logger.Component(ve.Component),
			logger.Prop(ve.Prop),
			logger.Location(ve.Location),
			logger.Code(code),
			logger.TranslationKey(ve.TranslationKey),
			logger.Error(ve.Err),
			logger.Message(r.localize(ctx, ve)),
		)
	}
	return err
}

func (r *Reporter) localize(ctx context.Context, ve ValidationError) string {
	if r.translator == nil {
		return ""
	}
	return localize(ctx, r.translator, ve.TranslationKey, ve.TranslationValues, ve.Message)
}

// Reset forgets every logged message.
func (r *Reporter) Reset() {
	r.logged.Clear()
}
