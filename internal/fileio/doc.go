// Package fileio reads and writes text, JSON, CSV and YAML files and lists
// directory entries by extension.
//
// Every function is stateless: it opens the file it needs, decodes or encodes
// the whole content and closes the handle before returning. Behaviour is tuned
// per call with Option values (filesystem, text encoding, CSV delimiter,
// indentation, CSV field names, listing filters).
//
// Files are accessed through a go-billy filesystem. The default is the local
// disk; tests and embedders can pass an in-memory filesystem with WithFS.
//
// Every failure is a *PathError naming the operation and the path, wrapping
// the underlying I/O, parse or serialization error.
package fileio
