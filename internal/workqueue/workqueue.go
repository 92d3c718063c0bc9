// Package workqueue implements the deferred work queue: pending schema
// definitions and pending handler-parameter elaborations keyed by (target
// file, target name), drained FIFO over distinct source files.
//
// A reference crossing into a module not yet parsed can't be resolved on
// the spot, so it is queued as an obligation against that module's path and
// retried once the module is reached — the same deferred-resolution shape
// used for forward references in any single-pass, dependency-driven
// traversal.
package workqueue

// OperationRef addresses an operation already created in the OpenAPI
// document being built, letting a PendingParams obligation resume appending
// parameters to the right operation once its target file is parsed.
type OperationRef struct {
	Path   string
	Method string
}

// PendingSchema asks the engine to define a schema called SchemaName
// (optionally grouped under Namespace) from the declaration exported as
// ExportedName from SourceFile.
type PendingSchema struct {
	SourceFile   string
	ExportedName string
	SchemaName   string
	Namespace    string
}

// PendingParams asks the engine to re-run parameter extraction against the
// type declaration imported into a handler, once SourceFile is parsed.
type PendingParams struct {
	SourceFile   string
	ExportedName string
	Operation    OperationRef
}

func (p PendingSchema) dedupKey() string {
	return p.SourceFile + "\x00" + p.ExportedName + "\x00" + p.SchemaName + "\x00" + p.Namespace
}

func (p PendingParams) dedupKey() string {
	return p.SourceFile + "\x00" + p.ExportedName + "\x00" + p.Operation.Path + "\x00" + p.Operation.Method
}

// Queue is the FIFO-over-distinct-files deferred work queue. Obligations
// targeting the same file are processed together once that file is popped.
type Queue struct {
	fileOrder []string
	queued    map[string]bool
	schemas   map[string][]PendingSchema
	params    map[string][]PendingParams
	seen      map[string]bool
}

// New creates an empty queue.
func New() *Queue {
	return &Queue{
		queued:  make(map[string]bool),
		schemas: make(map[string][]PendingSchema),
		params:  make(map[string][]PendingParams),
		seen:    make(map[string]bool),
	}
}

func (q *Queue) enqueueFile(file string) {
	if !q.queued[file] {
		q.queued[file] = true
		q.fileOrder = append(q.fileOrder, file)
	}
}

// AddSchema enqueues p unless an identical obligation (by SourceFile,
// ExportedName, SchemaName, Namespace) was already added. Returns false if
// the obligation was dropped as a duplicate. The document is not consulted:
// an obligation for a schema already materialized by another route is still
// enqueued.
func (q *Queue) AddSchema(p PendingSchema) bool {
	key := p.dedupKey()
	if q.seen[key] {
		return false
	}
	q.seen[key] = true
	q.schemas[p.SourceFile] = append(q.schemas[p.SourceFile], p)
	q.enqueueFile(p.SourceFile)
	return true
}

// AddParams enqueues p unless an identical obligation was already added.
func (q *Queue) AddParams(p PendingParams) bool {
	key := p.dedupKey()
	if q.seen[key] {
		return false
	}
	q.seen[key] = true
	q.params[p.SourceFile] = append(q.params[p.SourceFile], p)
	q.enqueueFile(p.SourceFile)
	return true
}

// NextFile pops the next distinct source file to parse, FIFO. Returns false
// once the queue is empty (the engine driver's termination condition).
func (q *Queue) NextFile() (string, bool) {
	for len(q.fileOrder) > 0 {
		file := q.fileOrder[0]
		q.fileOrder = q.fileOrder[1:]
		delete(q.queued, file)
		if len(q.schemas[file]) > 0 || len(q.params[file]) > 0 {
			return file, true
		}
	}
	return "", false
}

// SchemasFor returns and clears the pending schema obligations for file.
func (q *Queue) SchemasFor(file string) []PendingSchema {
	p := q.schemas[file]
	delete(q.schemas, file)
	return p
}

// ParamsFor returns and clears the pending parameter obligations for file.
func (q *Queue) ParamsFor(file string) []PendingParams {
	p := q.params[file]
	delete(q.params, file)
	return p
}

// Empty reports whether no file is left for NextFile to pop. Obligations of a
// file already popped but not yet taken by SchemasFor/ParamsFor are not
// counted.
func (q *Queue) Empty() bool {
	return len(q.fileOrder) == 0
}
