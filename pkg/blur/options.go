package blur

import (
	"fmt"
	"strings"

	"github.com/rklaeser/go-blur3x3/pkg/workerpool"
)

// BorderPolicy decides what the manual convolution writes to the outermost
// ring of pixels, which has no full 3x3 neighborhood.
type BorderPolicy int

const (
	// BorderCopy copies border pixels unchanged from the input.
	BorderCopy BorderPolicy = iota

	// BorderZero leaves border pixels black.
	BorderZero
)

func (p BorderPolicy) String() string {
	switch p {
	case BorderCopy:
		return "copy"
	case BorderZero:
		return "zero"
	default:
		return fmt.Sprintf("BorderPolicy(%d)", int(p))
	}
}

// ParseBorderPolicy accepts "copy" or "zero".
func ParseBorderPolicy(s string) (BorderPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "copy":
		return BorderCopy, nil
	case "zero":
		return BorderZero, nil
	default:
		return 0, fmt.Errorf("invalid border policy %q (want copy or zero)", s)
	}
}

// Partition selects how Parallel splits the interior among workers.
type Partition int

const (
	// PartitionFlat flattens every interior (x, y) pair into one index range
	// and hands each worker a contiguous slice of it.
	PartitionFlat Partition = iota

	// PartitionRows hands each worker a contiguous band of interior rows.
	PartitionRows
)

func (p Partition) String() string {
	switch p {
	case PartitionFlat:
		return "flat"
	case PartitionRows:
		return "rows"
	default:
		return fmt.Sprintf("Partition(%d)", int(p))
	}
}

// ParsePartition accepts "flat" or "rows".
func ParsePartition(s string) (Partition, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "flat":
		return PartitionFlat, nil
	case "rows":
		return PartitionRows, nil
	default:
		return 0, fmt.Errorf("invalid partition %q (want flat or rows)", s)
	}
}

// Backend names the imaging library used by Library.
type Backend string

const (
	BackendImaging Backend = "imaging"
	BackendBild    Backend = "bild"
)

// ParseBackend accepts "imaging" or "bild".
func ParseBackend(s string) (Backend, error) {
	switch b := Backend(strings.ToLower(strings.TrimSpace(s))); b {
	case "":
		return BackendImaging, nil
	case BackendImaging, BackendBild:
		return b, nil
	default:
		return "", fmt.Errorf("%w: %q (want imaging or bild)", ErrUnknownBackend, s)
	}
}

// Option configures a blur call.
type Option func(*options)

type options struct {
	border    BorderPolicy
	workers   int
	partition Partition
	pool      *workerpool.Pool
	backend   Backend
}

func defaultOptions() options {
	return options{
		border:    BorderCopy,
		partition: PartitionFlat,
		backend:   BackendImaging,
	}
}

func newOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithBorder sets the border policy of the manual variants.
func WithBorder(p BorderPolicy) Option {
	return func(o *options) {
		o.border = p
	}
}

// WithWorkers sets the pool size Parallel creates. Zero or negative means
// GOMAXPROCS. Ignored when WithPool is given.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithPartition sets the Parallel iteration-space split.
func WithPartition(p Partition) Option {
	return func(o *options) {
		o.partition = p
	}
}

// WithPool makes Parallel run on a caller-owned pool instead of creating
// and closing its own.
func WithPool(p *workerpool.Pool) Option {
	return func(o *options) {
		o.pool = p
	}
}

// WithBackend selects the library used by Library.
func WithBackend(b Backend) Option {
	return func(o *options) {
		o.backend = b
	}
}
