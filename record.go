package flogger

import "errors"

// Sentinel errors for the statement lifecycle contract. Misuse of a Draft or
// Record is a programmer error: it is surfaced immediately, never retried.
var (
	ErrNotFinalized       = errors.New("call site requested before finalization")
	ErrAlreadyFinalized   = errors.New("statement already finalized")
	ErrAlreadySet         = errors.New("field already assigned")
	ErrMissingCallSite    = errors.New("finalization requires a call site")
	ErrNoArguments        = errors.New("template context set without arguments")
	ErrNoLiteralArgument  = errors.New("no template context and no literal argument")
	ErrNoTemplateContext  = errors.New("cannot get arguments unless a template context exists")
	ErrTemplateContextSet = errors.New("cannot get literal argument if a template context exists")
)

// TemplateContext describes the formatting required for a statement's
// arguments. The core never formats; it only carries the context through to
// the sink.
type TemplateContext struct {
	Message string
}

// Draft is a log statement under construction. Timestamp, logger name and
// severity are fixed at creation; metadata, template context and arguments
// are single-assignment and may be set in any order until PostProcess.
//
// A Draft is owned by the construction path of one statement and is not safe
// for concurrent use.
type Draft struct {
	timestampNanos int64
	loggerName     string
	severity       Severity

	metadata   *Metadata
	template   *TemplateContext
	args       []any
	literal    any
	hasLiteral bool
	finalized  bool
}

// NewDraft starts a statement at SeverityInfo with the given wall-clock
// timestamp in nanoseconds and logger identity.
func NewDraft(timestampNanos int64, loggerName string) *Draft {
	return NewDraftAt(SeverityInfo, timestampNanos, loggerName)
}

// NewDraftAt starts a statement at an explicit severity.
func NewDraftAt(severity Severity, timestampNanos int64, loggerName string) *Draft {
	return &Draft{
		timestampNanos: timestampNanos,
		loggerName:     loggerName,
		severity:       severity,
	}
}

// SetMetadata attaches the metadata side channel. Single assignment.
func (d *Draft) SetMetadata(md *Metadata) error {
	if d.finalized {
		return ErrAlreadyFinalized
	}
	if d.metadata != nil {
		return ErrAlreadySet
	}
	d.metadata = md
	return nil
}

// SetTemplateContext marks the statement as requiring argument formatting.
// Single assignment.
func (d *Draft) SetTemplateContext(ctx TemplateContext) error {
	if d.finalized {
		return ErrAlreadyFinalized
	}
	if d.template != nil {
		return ErrAlreadySet
	}
	d.template = &ctx
	return nil
}

// SetArguments records the template arguments. Single assignment; only valid
// together with a template context.
func (d *Draft) SetArguments(args []any) error {
	if d.finalized {
		return ErrAlreadyFinalized
	}
	if d.args != nil {
		return ErrAlreadySet
	}
	d.args = args
	return nil
}

// SetLiteralArgument records the single literal argument for statements that
// need no formatting. Single assignment.
func (d *Draft) SetLiteralArgument(arg any) error {
	if d.finalized {
		return ErrAlreadyFinalized
	}
	if d.hasLiteral {
		return ErrAlreadySet
	}
	d.literal = arg
	d.hasLiteral = true
	return nil
}

// Severity returns the fixed statement severity.
func (d *Draft) Severity() Severity { return d.severity }

// TimestampNanos returns the wall-clock timestamp in nanoseconds.
func (d *Draft) TimestampNanos() int64 { return d.timestampNanos }

// TimestampMicros returns the timestamp truncated to microseconds.
func (d *Draft) TimestampMicros() int64 { return d.timestampNanos / 1000 }

// LoggerName returns the fixed logger identity.
func (d *Draft) LoggerName() string { return d.loggerName }

// Metadata never fails; it returns the shared empty instance when no
// metadata was attached.
func (d *Draft) Metadata() *Metadata {
	if d.metadata == nil {
		return emptyMetadata
	}
	return d.metadata
}

// CallSite always fails on a Draft: the call site only exists after
// finalization.
func (d *Draft) CallSite() (CallSite, error) {
	return CallSite{}, ErrNotFinalized
}

// PostProcess finalizes the statement with its call site and returns the
// immutable Record. The Draft is spent afterwards: every setter and a second
// PostProcess fail with ErrAlreadyFinalized.
func (d *Draft) PostProcess(site CallSite) (*Record, error) {
	if d.finalized {
		return nil, ErrAlreadyFinalized
	}
	if site.IsZero() {
		return nil, ErrMissingCallSite
	}
	if d.template != nil && d.args == nil {
		return nil, ErrNoArguments
	}
	if d.template == nil && !d.hasLiteral {
		return nil, ErrNoLiteralArgument
	}
	d.finalized = true
	return &Record{
		timestampNanos: d.timestampNanos,
		loggerName:     d.loggerName,
		severity:       d.severity,
		metadata:       d.metadata,
		site:           site,
		template:       d.template,
		args:           d.args,
		literal:        d.literal,
	}, nil
}

// Record is a finalized, read-only log statement. It is handed to the sink
// and discarded afterwards; records are never pooled or reused.
type Record struct {
	timestampNanos int64
	loggerName     string
	severity       Severity
	metadata       *Metadata
	site           CallSite
	template       *TemplateContext
	args           []any
	literal        any
}

// Severity returns the statement severity.
func (r *Record) Severity() Severity { return r.severity }

// TimestampNanos returns the wall-clock timestamp in nanoseconds.
func (r *Record) TimestampNanos() int64 { return r.timestampNanos }

// TimestampMicros returns the timestamp truncated to microseconds.
func (r *Record) TimestampMicros() int64 { return r.timestampNanos / 1000 }

// LoggerName returns the logger identity.
func (r *Record) LoggerName() string { return r.loggerName }

// CallSite is always present on a finalized record.
func (r *Record) CallSite() CallSite { return r.site }

// Metadata never fails; it returns the shared empty instance when no
// metadata was attached.
func (r *Record) Metadata() *Metadata {
	if r.metadata == nil {
		return emptyMetadata
	}
	return r.metadata
}

// WasForced reports whether the statement carries an explicit boolean true
// under KeyWasForced. Absent or mistyped values are false.
func (r *Record) WasForced() bool {
	v, ok := r.Metadata().Find(KeyWasForced)
	if !ok {
		return false
	}
	forced, ok := v.(bool)
	return ok && forced
}

// TemplateContext returns the formatting context, if the statement has one.
func (r *Record) TemplateContext() (TemplateContext, bool) {
	if r.template == nil {
		return TemplateContext{}, false
	}
	return *r.template, true
}

// Arguments returns the template arguments. It fails when the statement has
// no template context; the literal-argument case must use LiteralArgument.
func (r *Record) Arguments() ([]any, error) {
	if r.template == nil {
		return nil, ErrNoTemplateContext
	}
	return r.args, nil
}

// LiteralArgument returns the single unformatted argument. It fails when a
// template context is set; that case must use Arguments. The two accessors
// are mutually exclusive over the record's life.
func (r *Record) LiteralArgument() (any, error) {
	if r.template != nil {
		return nil, ErrTemplateContextSet
	}
	return r.literal, nil
}
