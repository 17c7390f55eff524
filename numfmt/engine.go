package numfmt

import (
	"sync"

	"github.com/TsubasaBE/go-cellfmt/locale"
)

// Logger receives diagnostic messages from an [Engine].  A logrus logger
// satisfies it, as does any type with these four methods.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Infof(string, ...any)  {}
func (nopLogger) Warnf(string, ...any)  {}
func (nopLogger) Errorf(string, ...any) {}

// Option configures an [Engine].
type Option func(*Engine)

// WithLocale sets the initial locale.  The default is [locale.Default].
func WithLocale(l locale.Locale) Option {
	return func(e *Engine) { e.loc = l.Clone() }
}

// WithLogger routes cache diagnostics to l.
func WithLogger(l Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithDate1904 selects the 1904 date system for date/time rendering.
func WithDate1904(on bool) Option {
	return func(e *Engine) { e.date1904 = on }
}

// Engine owns the parse cache and the active locale.  It is safe for
// concurrent use; rendering itself holds no lock.
//
// Parse results are memoized by the exact format string.  SetLocale and
// ClearCache discard the whole cache, so callers that compare
// *ParsedFormat pointers can use a changed pointer as a staleness signal.
type Engine struct {
	mu       sync.RWMutex
	cache    map[string]*ParsedFormat
	loc      locale.Locale
	date1904 bool
	log      Logger
}

// NewEngine returns an engine with an empty cache.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		cache: make(map[string]*ParsedFormat),
		loc:   locale.Default(),
		log:   nopLogger{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Parse returns the parsed form of format, parsing it on first use.
func (e *Engine) Parse(format string) *ParsedFormat {
	e.mu.RLock()
	pf, ok := e.cache[format]
	e.mu.RUnlock()
	if ok {
		return pf
	}

	parsed := ParseFormat(format)

	e.mu.Lock()
	defer e.mu.Unlock()
	if pf, ok := e.cache[format]; ok {
		// Another goroutine won the race; keep its pointer.
		return pf
	}
	e.cache[format] = parsed
	e.log.Debugf("numfmt: cached %q (%d sections)", format, len(parsed.Sections))
	return parsed
}

// Format renders v with an already parsed format using the engine's
// current locale.
func (e *Engine) Format(v any, pf *ParsedFormat) Result {
	e.mu.RLock()
	loc, opts := e.loc, RenderOptions{Date1904: e.date1904}
	e.mu.RUnlock()
	return Render(v, pf, loc, opts)
}

// FormatValue parses format (through the cache) and renders v with it.
func (e *Engine) FormatValue(v any, format string) Result {
	return e.Format(v, e.Parse(format))
}

// IsDateTimeFormat reports whether any section of format renders a date,
// time, AM/PM marker or elapsed time.
func (e *Engine) IsDateTimeFormat(format string) bool {
	return e.Parse(format).IsDateTime
}

// SetLocale replaces the active locale and empties the parse cache.
func (e *Engine) SetLocale(l locale.Locale) {
	e.mu.Lock()
	n := len(e.cache)
	e.loc = l.Clone()
	e.cache = make(map[string]*ParsedFormat)
	e.mu.Unlock()
	e.log.Infof("numfmt: locale set to %s, dropped %d cached formats", l.Tag, n)
}

// Locale returns a copy of the active locale.
func (e *Engine) Locale() locale.Locale {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.loc.Clone()
}

// ClearCache empties the parse cache.
func (e *Engine) ClearCache() {
	e.mu.Lock()
	n := len(e.cache)
	e.cache = make(map[string]*ParsedFormat)
	e.mu.Unlock()
	e.log.Debugf("numfmt: cleared %d cached formats", n)
}

// CacheLen returns the number of cached formats.
func (e *Engine) CacheLen() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.cache)
}
