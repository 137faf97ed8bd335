package skippath

import "log/slog"

// config holds the options a caller can attach via functional Option
// values, in the style the ambient stack uses throughout this module:
// zero-value-safe, extend by adding an Option, never by changing a
// signature.
type config struct {
	logger *slog.Logger
}

// Option configures a single lookup call.
type Option func(*config)

// WithLogger attaches a structured logger that records failed lookups at
// Debug level. The core Scanner never logs; only this wrapper layer does,
// so hot-path evaluation never pays for a disabled log call.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

func applyOptions(opts []Option) *config {
	cfg := &config{}
	for _, o := range opts {
		o(cfg)
	}
	return cfg
}

// GetByPathOnDemand evaluates path against data without building a parse
// tree, returning every matching sub-value's byte range. A path with no
// Wildcard segments returns at most one Match; a non-nil error comes with
// no matches at all, even when a Wildcard had already matched some
// children before the failure. A root-only path ([Root], length 1) is a special case: it returns the
// entire input verbatim without scanning it at all.
func GetByPathOnDemand(data []byte, path *Path, opts ...Option) ([]Match, error) {
	cfg := applyOptions(opts)
	if path == nil || len(path.Segments) == 0 || path.Segments[0].Kind != SegRoot {
		return nil, &Error{Kind: UnsupportedJsonPath}
	}
	if path.IsRootOnly() {
		return []Match{{Offset: 0, Length: len(data)}}, nil
	}
	s := NewScanner(data)
	var out []Match
	s.evalPath(path.Segments, 1, &out)
	if err := s.Err(); err != nil {
		if cfg.logger != nil {
			cfg.logger.Debug("skippath lookup failed", "path", path.Text, "error", err)
		}
		return nil, err
	}
	return out, nil
}

// GetByPath is GetByPathOnDemand for the common case of a path with no
// Wildcard segment: it returns the single match directly, or an error if
// none was found.
func GetByPath(data []byte, path *Path, opts ...Option) (Match, error) {
	matches, err := GetByPathOnDemand(data, path, opts...)
	if err != nil {
		return Match{}, err
	}
	if len(matches) == 0 {
		return Match{}, &Error{Kind: UnknownObjKey}
	}
	return matches[0], nil
}

// MustGetByPath is GetByPath for callers who have already established the
// path must resolve, such as in tests or against data they generated
// themselves. It panics on error.
func MustGetByPath(data []byte, path *Path, opts ...Option) Match {
	m, err := GetByPath(data, path, opts...)
	if err != nil {
		panic(err)
	}
	return m
}

// ScanValue locates the single JSON value starting at the first
// non-whitespace byte of data, without evaluating any path. Unlike
// GetByPathOnDemand's root-only fast path, which returns the whole input
// unconditionally, ScanValue actually walks the value and reports where it
// ends, so a caller can tell whether anything but whitespace follows it.
func ScanValue(data []byte) (Match, error) {
	s := NewScanner(data)
	start, ok := s.skipOne()
	if !ok {
		return Match{}, s.Err()
	}
	end := s.pos
	if isDigitOrMinus(data[start]) {
		// skipNumber runs on to the next ']', '}' or ',' (or EOF), so the
		// span can include whitespace and whatever follows it; the number
		// itself ends at the first whitespace byte.
		for i := start; i < end; i++ {
			if c := data[i]; c == ' ' || c == '\t' || c == '\n' || c == '\r' {
				end = i
				break
			}
		}
	}
	return Match{Offset: start, Length: end - start}, nil
}

// GetMany evaluates several paths against the same document, reusing one
// Scanner (and its key-unescape buffer) across all of them. Unlike
// GetByPathOnDemand, one path failing does not stop the others: results[i]
// and errs[i] report path[i]'s own outcome independently.
func GetMany(data []byte, paths []*Path, opts ...Option) (results [][]Match, errs []error) {
	cfg := applyOptions(opts)
	s := NewScanner(data)
	results = make([][]Match, len(paths))
	errs = make([]error, len(paths))
	for i, p := range paths {
		if p == nil || len(p.Segments) == 0 || p.Segments[0].Kind != SegRoot {
			errs[i] = &Error{Kind: UnsupportedJsonPath}
			continue
		}
		if p.IsRootOnly() {
			results[i] = []Match{{Offset: 0, Length: len(data)}}
			continue
		}
		s.Reset(data)
		var out []Match
		s.evalPath(p.Segments, 1, &out)
		if err := s.Err(); err != nil {
			errs[i] = err
			if cfg.logger != nil {
				cfg.logger.Debug("skippath lookup failed", "path", p.Text, "error", err)
			}
			continue
		}
		results[i] = out
	}
	return results, errs
}
