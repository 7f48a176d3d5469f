// Package statsfile writes rendered statistics dumps to disk atomically.
//
// # Atomicity
//
// Every write lands in a temporary file in the destination directory and
// is renamed into place, so a dump file is always either the previous
// complete dump or the new complete dump. A crash mid-write leaves the
// old file untouched.
//
// # Durability
//
// By default the rename is not forced to stable storage; a power loss can
// roll a dump back to its previous contents. Periodic simulator dumps are
// usually fine with that. Set Options.Durable for the final end-of-run
// dump to sync the file (fdatasync on Linux/FreeBSD, F_FULLFSYNC on
// macOS, FlushFileBuffers on Windows) and its directory before returning.
//
// # Usage
//
// Writing a rendered buffer:
//
//	statsfile.Write("run.stats", buf.Bytes(), statsfile.DefaultOptions())
//
// Streaming a renderer straight to the file:
//
//	statsfile.WriteFrom("run.stats", func(w io.Writer) error {
//	    return reg.RenderText(w, total)
//	}, statsfile.Options{Durable: true, Perm: 0o644})
package statsfile
