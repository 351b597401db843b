package csvrows

import (
	"sync/atomic"

	"github.com/lowlandresearch/larc/config"
)

var defaultComma atomic.Int32

func init() {
	defaultComma.Store(',')
}

// Configure sets the default field delimiter from cfg.
func Configure(cfg config.CSVConfig) {
	defaultComma.Store(cfg.CommaRune())
}

// Rename maps a row key to the output column name.
type Rename struct {
	From string
	To   string
}

type options struct {
	header    bool
	columns   []string
	renames   []Rename
	comma     rune
	crlf      bool
	lazyQuote bool
}

// Option configures a read or a write.
type Option func(*options)

func newOptions(opts []Option) *options {
	o := &options{
		header: true,
		comma:  defaultComma.Load(),
		crlf:   true,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithoutHeader disables the header row.
func WithoutHeader() Option {
	return func(o *options) { o.header = false }
}

// WithColumns names the columns. When reading it overrides the header row.
// When writing maps it projects every row onto these keys.
func WithColumns(columns ...string) Option {
	return func(o *options) { o.columns = columns }
}

// WithColumnMap writes each row key From under the column To, in the given
// order.
func WithColumnMap(renames ...Rename) Option {
	return func(o *options) { o.renames = renames }
}

// WithComma sets the field delimiter.
func WithComma(r rune) Option {
	return func(o *options) { o.comma = r }
}

// UseCRLF selects CRLF (true) or LF (false) line endings for output.
func UseCRLF(on bool) Option {
	return func(o *options) { o.crlf = on }
}

// WithLazyQuotes tolerates bare quotes inside unquoted fields when reading.
func WithLazyQuotes() Option {
	return func(o *options) { o.lazyQuote = true }
}
