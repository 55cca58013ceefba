package types

// OperationType defines the type of file system operation
type OperationType string

const (
	// OperationCopyFile copies a source file to its destination. Parent
	// directories are created on demand and reported in Result.CreatedDirs.
	OperationCopyFile OperationType = "copy_file"
)

// OperationStatus defines the state of an operation
type OperationStatus string

const (
	// StatusReady means the operation is planned but not executed
	StatusReady OperationStatus = "ready"
	// StatusDone means the operation was executed
	StatusDone OperationStatus = "done"
	// StatusError means the operation failed
	StatusError OperationStatus = "error"
)

// Operation is one planned file placement
type Operation struct {
	// Type is the type of operation
	Type OperationType `json:"type" yaml:"type"`

	// Spec is the index of the install spec that produced the operation
	Spec int `json:"spec" yaml:"spec"`

	// Entry is the slash separated path relative to the source root
	Entry string `json:"entry" yaml:"entry"`

	// Destination is the slash separated path relative to the destination root
	Destination string `json:"destination" yaml:"destination"`

	// Source is the full source path
	Source string `json:"source" yaml:"source"`

	// Target is the full destination path
	Target string `json:"target" yaml:"target"`

	// Status is the current state of the operation
	Status OperationStatus `json:"status" yaml:"status"`
}

// OperationResult records the outcome of an executed operation
type OperationResult struct {
	Operation Operation `json:"operation" yaml:"operation"`

	// Size is the number of bytes written
	Size int64 `json:"size" yaml:"size"`

	// Checksum is the xxhash64 of the written content, hex encoded
	Checksum string `json:"checksum,omitempty" yaml:"checksum,omitempty"`
}

// Result summarizes a materialization run
type Result struct {
	DestRoot    string            `json:"dest_root" yaml:"dest_root"`
	DryRun      bool              `json:"dry_run" yaml:"dry_run"`
	Operations  []OperationResult `json:"operations" yaml:"operations"`
	CreatedDirs []string          `json:"created_dirs,omitempty" yaml:"created_dirs,omitempty"`
}

// Copied returns the number of files written
func (r *Result) Copied() int {
	n := 0
	for _, op := range r.Operations {
		if op.Operation.Status == StatusDone {
			n++
		}
	}
	return n
}
