package arena

import "unsafe"

// Sizeof returns the size of T in bytes.
func Sizeof[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// Make copies v into the arena and returns its handle.
// T must not contain Go pointers and must not need more than Alignment.
func Make[T any](a *Arena, v T) (Ref, error) {
	ref, err := a.Alloc(Sizeof[T]())
	if err != nil {
		return 0, err
	}
	*Get[T](a, ref) = v
	return ref, nil
}

// Get reinterprets the bytes at ref as a T.
// The pointer is valid until the arena is released.
func Get[T any](a *Arena, ref Ref) *T {
	a.panicIfReleased()
	pi, off := ref.split()
	return (*T)(unsafe.Pointer(&a.pages[pi].buf[off]))
}

// View reinterprets the bytes at ref as n consecutive values of T.
func View[T any](a *Arena, ref Ref, n int) []T {
	if ref.IsNil() || n == 0 {
		return nil
	}
	return unsafe.Slice(Get[T](a, ref), n)
}
