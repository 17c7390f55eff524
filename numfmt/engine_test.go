package numfmt

import (
	"fmt"
	"sync"
	"testing"

	"github.com/TsubasaBE/go-cellfmt/locale"
)

type recordingLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *recordingLogger) add(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Debugf(format string, args ...any) { l.add(format, args...) }
func (l *recordingLogger) Infof(format string, args ...any)  { l.add(format, args...) }
func (l *recordingLogger) Warnf(format string, args ...any)  { l.add(format, args...) }
func (l *recordingLogger) Errorf(format string, args ...any) { l.add(format, args...) }

func TestEngineParseIsMemoized(t *testing.T) {
	e := NewEngine()
	a := e.Parse("#,##0.00")
	b := e.Parse("#,##0.00")
	if a != b {
		t.Fatal("Parse returned different pointers for the same format")
	}
	if e.CacheLen() != 1 {
		t.Errorf("CacheLen = %d, want 1", e.CacheLen())
	}
	if c := e.Parse("0.00"); c == a {
		t.Error("distinct formats share a cache entry")
	}
}

func TestEngineGeneralIsCached(t *testing.T) {
	e := NewEngine()
	a := e.Parse("General")
	if !a.IsGeneral || len(a.Sections) != 0 {
		t.Fatalf("Parse(General) = %+v", a)
	}
	if e.Parse("General") != a {
		t.Error("General not memoized")
	}
}

func TestEngineClearCacheInvalidates(t *testing.T) {
	e := NewEngine()
	a := e.Parse("0.00")
	e.ClearCache()
	if e.CacheLen() != 0 {
		t.Errorf("CacheLen after ClearCache = %d", e.CacheLen())
	}
	if b := e.Parse("0.00"); b == a {
		t.Error("Parse after ClearCache returned the stale pointer")
	}
}

func TestEngineSetLocaleInvalidates(t *testing.T) {
	e := NewEngine()
	a := e.Parse("0.00")
	de, err := locale.Lookup("de-DE")
	if err != nil {
		t.Fatal(err)
	}
	e.SetLocale(de)
	if b := e.Parse("0.00"); b == a {
		t.Error("Parse after SetLocale returned the stale pointer")
	}
	if got := e.FormatValue(1234.5, "#,##0.00").Text; got != "1.234,50" {
		t.Errorf("FormatValue after SetLocale = %q, want 1.234,50", got)
	}
}

func TestEngineLocaleIsCopied(t *testing.T) {
	loc := locale.Default()
	e := NewEngine(WithLocale(loc))
	loc.MonthNames[0] = "Changed"
	if got := e.FormatValue(45292.0, "mmmm").Text; got != "January" {
		t.Errorf("engine saw caller mutation: %q", got)
	}
	got := e.Locale()
	got.MonthNames[0] = "Changed again"
	if e.Locale().MonthNames[0] != "January" {
		t.Error("Locale() exposed engine state")
	}
}

func TestEngineOptions(t *testing.T) {
	log := &recordingLogger{}
	e := NewEngine(WithDate1904(true), WithLogger(log), WithLogger(nil))
	if got := e.FormatValue(0.0, "yyyy-mm-dd").Text; got != "1904-01-01" {
		t.Errorf("FormatValue with 1904 system = %q", got)
	}
	e.ClearCache()
	e.SetLocale(locale.Default())
	if len(log.lines) != 3 {
		t.Errorf("logged %d lines, want 3: %q", len(log.lines), log.lines)
	}
}

func TestEngineIsDateTimeFormat(t *testing.T) {
	e := NewEngine()
	tests := map[string]bool{
		"yyyy-mm-dd":     true,
		"[h]:mm:ss":      true,
		"h AM/PM":        true,
		"0.00":           false,
		"@":              false,
		"General":        false,
		`"date"0.00`:     false,
		"0.00;[Red]0.00": false,
	}
	for format, want := range tests {
		if got := e.IsDateTimeFormat(format); got != want {
			t.Errorf("IsDateTimeFormat(%q) = %v, want %v", format, got, want)
		}
	}
}

func TestEngineConcurrentUse(t *testing.T) {
	e := NewEngine()
	formats := []string{"#,##0", "0.00%", "yyyy-mm-dd", "# ?/?", "0.00E+00", "@"}
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				f := formats[(i+j)%len(formats)]
				e.FormatValue(float64(j), f)
				if j%50 == 0 {
					e.ClearCache()
				}
			}
		}(i)
	}
	wg.Wait()
	if e.CacheLen() > len(formats) {
		t.Errorf("CacheLen = %d, want at most %d", e.CacheLen(), len(formats))
	}
}
