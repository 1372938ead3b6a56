// Package artifact manages the lifecycle of the compiled PDF once the
// compiler has written it to <out>/<pdf>.pdf.
//
// Pressing moves that preprint to its resting place:
//
//	<out>/<release>/<name>.pdf                 release mode, fixed name
//	<out>/<archive>/<name> — Oct 18 (14h 05s).pdf   archive mode, stamped name
//
// An existing file at the final path is replaced. A missing preprint is a
// fatal precondition failure for Press, while Remove treats the same
// condition as nothing to do.
//
// Press and Remove read, delete and rename files in the working directory
// without any locking; running two texpress processes against the same
// directory at once is not supported.
package artifact
