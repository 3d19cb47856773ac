package domain

// WorkspaceSpec describes where `gendata init` scaffolds its files.
type WorkspaceSpec struct {
	Root string
}
