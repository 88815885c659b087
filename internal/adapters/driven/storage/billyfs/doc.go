// Package billyfs provides go-billy backed implementations of driven.FileSystem.
//
// NewLocal wraps go-billy's osfs rooted at a directory; NewMemory wraps memfs
// for tests and dry runs. Both hand out a fresh handle per call and never
// cache open files.
package billyfs
