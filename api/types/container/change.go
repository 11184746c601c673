package container

import (
	"fmt"
)

// ChangeType represents the kind of filesystem change reported by the diff
// endpoint.
type ChangeType uint8

const (
	// ChangeModify represents a modified path.
	ChangeModify ChangeType = 0
	// ChangeAdd represents an added path.
	ChangeAdd ChangeType = 1
	// ChangeDelete represents a deleted path.
	ChangeDelete ChangeType = 2
)

func (ct ChangeType) String() string {
	switch ct {
	case ChangeModify:
		return "C"
	case ChangeAdd:
		return "A"
	case ChangeDelete:
		return "D"
	default:
		return ""
	}
}

// FilesystemChange is one change in the container's filesystem, as reported
// by the diff endpoint ("GET /containers/{id}/changes").
type FilesystemChange struct {
	Kind ChangeType
	Path string
}

func (change FilesystemChange) String() string {
	return fmt.Sprintf("%s %s", change.Kind, change.Path)
}
