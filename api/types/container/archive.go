package container

import (
	"os"
	"time"
)

// PathStat is used to describe a directory entry in a container, as
// reported in the X-Docker-Container-Path-Stat header of the archive
// endpoints ("HEAD/GET /containers/{id}/archive").
type PathStat struct {
	Name       string      `json:"name"`
	Size       int64       `json:"size"`
	Mode       os.FileMode `json:"mode"`
	Mtime      time.Time   `json:"mtime"`
	LinkTarget string      `json:"linkTarget"`
}
