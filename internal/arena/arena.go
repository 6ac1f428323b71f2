// Package arena implements a paged bump allocator. Every document node and
// string is carved from an Arena and reclaimed only when the whole arena is
// dropped; individual allocations are never freed.
//
// Allocations are addressed by Ref handles rather than Go pointers, so the
// data stored in an arena must not itself contain Go pointers.
package arena

import (
	"math"

	"github.com/dustin/go-humanize"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
)

const (
	// DefaultPageSize is the smallest page requested from the runtime (16 KiB).
	DefaultPageSize = 16 << 10
	// MinPageSize keeps pages out of the runtime's tiny allocator so that
	// page memory is always word aligned.
	MinPageSize = 256
	// Alignment of every allocation.
	Alignment = 8
)

// ErrOutOfMemory is returned when growing the arena would exceed its limit.
var ErrOutOfMemory = errors.New("out of memory")

// Ref addresses an allocation: page index + 1 in the upper 32 bits and the
// byte offset inside the page in the lower 32 bits. The zero Ref is nil.
type Ref uint64

func makeRef(page, off int) Ref {
	return Ref(uint64(page+1)<<32 | uint64(off))
}

func (r Ref) split() (page, off int) {
	return int(r>>32) - 1, int(uint32(r))
}

// IsNil reports whether r addresses nothing.
func (r Ref) IsNil() bool { return r == 0 }

type page struct {
	buf  []byte
	used int
}

// Observer is notified about arena growth.
type Observer interface {
	PageAllocated(size int)
}

// Arena is a paged bump allocator. It is not safe for concurrent use:
// allocation and mutation must happen on one goroutine, and readers may only
// fan out while no writer is active.
type Arena struct {
	pages    []*page
	current  *page
	pageSize int
	maxBytes int
	reserved int
	released bool

	logger   log.Logger
	observer Observer
}

// Option configures an Arena.
type Option func(*Arena)

// WithPageSize sets the minimum page size. Values below MinPageSize are
// raised to it.
func WithPageSize(n int) Option {
	return func(a *Arena) {
		a.pageSize = n
	}
}

// WithMaxBytes limits the total bytes reserved by the arena. Zero means no
// limit.
func WithMaxBytes(n int) Option {
	return func(a *Arena) {
		a.maxBytes = n
	}
}

// WithLogger sets the logger used for page growth events.
func WithLogger(l log.Logger) Option {
	return func(a *Arena) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithObserver registers o to be told about new pages.
func WithObserver(o Observer) Option {
	return func(a *Arena) {
		a.observer = o
	}
}

// New creates an empty Arena. The first page is allocated lazily.
func New(opts ...Option) *Arena {
	a := &Arena{
		pageSize: DefaultPageSize,
		logger:   log.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.pageSize < MinPageSize {
		a.pageSize = MinPageSize
	}
	return a
}

// Alloc returns a handle to n bytes with unspecified contents, aligned to
// Alignment. The bytes stay valid until the arena is released.
// A request for zero bytes returns the nil Ref.
func (a *Arena) Alloc(n int) (Ref, error) {
	a.panicIfReleased()
	if n <= 0 {
		return 0, nil
	}
	if p := a.current; p != nil {
		off := alignUp(p.used)
		if off+n <= len(p.buf) {
			p.used = off + n
			return makeRef(len(a.pages)-1, off), nil
		}
	}
	return a.allocSlow(n)
}

func (a *Arena) allocSlow(n int) (Ref, error) {
	if err := a.newPage(n); err != nil {
		return 0, err
	}
	a.current.used = n
	return makeRef(len(a.pages)-1, 0), nil
}

// Grow resizes the block at ref from oldSize to newSize bytes.
//
// The caller must only grow or shrink the block it allocated most recently
// for that purpose; the arena extends the block in place when it is still the
// tail of the current page and otherwise copies it to a fresh block. The old
// block is not reclaimed in the copying case.
func (a *Arena) Grow(ref Ref, oldSize, newSize int) (Ref, error) {
	a.panicIfReleased()
	if ref.IsNil() {
		return a.Alloc(newSize)
	}
	pi, off := ref.split()
	tail := pi == len(a.pages)-1 && off+oldSize == a.current.used
	if newSize <= oldSize {
		if tail {
			a.current.used -= oldSize - newSize
		}
		return ref, nil
	}
	if tail && off+newSize <= len(a.current.buf) {
		a.current.used = off + newSize
		return ref, nil
	}
	moved, err := a.Alloc(newSize)
	if err != nil {
		return 0, err
	}
	copy(a.Bytes(moved, oldSize), a.Bytes(ref, oldSize))
	return moved, nil
}

// Bytes returns the n bytes at ref.
func (a *Arena) Bytes(ref Ref, n int) []byte {
	if ref.IsNil() || n == 0 {
		return nil
	}
	pi, off := ref.split()
	return a.pages[pi].buf[off : off+n : off+n]
}

// Release drops every page. Further use of the arena panics. Calling Release
// more than once is a no-op.
func (a *Arena) Release() {
	if a.released {
		return
	}
	level.Debug(a.logger).Log("msg", "arena released", "pages", len(a.pages), "reserved", humanize.IBytes(uint64(a.reserved)))
	a.pages = nil
	a.current = nil
	a.reserved = 0
	a.released = true
}

// newPage appends a page of at least n bytes and makes it current.
func (a *Arena) newPage(n int) error {
	size := a.pageSize
	if n > size {
		size = n
	}
	if size > math.MaxUint32 {
		return errors.Wrapf(ErrOutOfMemory, "allocation of %s exceeds page addressing", humanize.IBytes(uint64(n)))
	}
	if a.maxBytes > 0 && a.reserved+size > a.maxBytes {
		return errors.Wrapf(ErrOutOfMemory, "page of %s would exceed arena limit of %s (reserved %s)",
			humanize.IBytes(uint64(size)), humanize.IBytes(uint64(a.maxBytes)), humanize.IBytes(uint64(a.reserved)))
	}
	p := &page{buf: make([]byte, size)}
	a.pages = append(a.pages, p)
	a.current = p
	a.reserved += size
	level.Debug(a.logger).Log("msg", "arena page allocated", "size", humanize.IBytes(uint64(size)), "pages", len(a.pages))
	if a.observer != nil {
		a.observer.PageAllocated(size)
	}
	return nil
}

func (a *Arena) panicIfReleased() {
	if a.released {
		panic("arena: use after Release()")
	}
}

// alignUp rounds off up to Alignment.
func alignUp(off int) int {
	return (off + Alignment - 1) &^ (Alignment - 1)
}
