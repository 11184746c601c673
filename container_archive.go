package client

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/url"
	"strings"

	"github.com/pkg/errors"

	"github.com/moorage/client/api/types/container"
)

// ContainerFS gives access to a container's filesystem; it moves tar
// archives in and out of the container through the daemon's archive
// endpoints. Obtain one through [Container.FS].
type ContainerFS struct {
	cli *Client
	id  string
}

// FS returns a handle on the container's filesystem. It does not
// communicate with the daemon.
func (c *Container) FS() *ContainerFS {
	return &ContainerFS{cli: c.cli, id: c.id}
}

// Stat returns metadata about the file or directory at path inside the
// container, without transferring its content. The container does not
// need to be running.
func (fs *ContainerFS) Stat(ctx context.Context, path string) (container.PathStat, error) {
	containerID, err := trimID("container", fs.id)
	if err != nil {
		return container.PathStat{}, err
	}

	query := url.Values{}
	query.Set("path", path)

	resp, err := fs.cli.head(ctx, "/containers/"+containerID+"/archive", query, nil)
	defer ensureReaderClosed(resp)
	if err != nil {
		return container.PathStat{}, err
	}
	return getContainerPathStatFromHeader(resp.Header.Get("X-Docker-Container-Path-Stat"))
}

// GetResult holds the result of [ContainerFS.Get]: a tar archive of the
// requested path and the metadata of the archive's root item. The caller
// must close Content once done reading.
type GetResult struct {
	// Content is the tar archive stream. If path named a directory, the
	// archive contains the directory and its contents; if it named a
	// file, the archive contains that single file.
	Content io.ReadCloser

	// Stat describes the path the archive was taken of.
	Stat container.PathStat
}

// Get retrieves the file or directory at path from the container's
// filesystem as a tar archive. The container does not need to be running.
func (fs *ContainerFS) Get(ctx context.Context, path string) (GetResult, error) {
	containerID, err := trimID("container", fs.id)
	if err != nil {
		return GetResult{}, err
	}

	query := url.Values{}
	query.Set("path", path)

	resp, err := fs.cli.get(ctx, "/containers/"+containerID+"/archive", query, nil)
	if err != nil {
		return GetResult{}, err
	}

	// The path's metadata rides along in a header so that it does not
	// have to be fished out of the archive itself. A missing or broken
	// header is not fatal; the stream is still usable.
	stat, err := getContainerPathStatFromHeader(resp.Header.Get("X-Docker-Container-Path-Stat"))
	if err != nil {
		return GetResult{Content: resp.Body}, errors.Wrap(err, "unable to get resource stat from response")
	}
	return GetResult{Content: resp.Body, Stat: stat}, nil
}

func getContainerPathStatFromHeader(encodedStat string) (container.PathStat, error) {
	var stat container.PathStat
	if encodedStat == "" {
		return stat, errors.New("response did not include path-stat header")
	}
	statDecoder := base64.NewDecoder(base64.StdEncoding, strings.NewReader(encodedStat))
	err := json.NewDecoder(statDecoder).Decode(&stat)
	if err != nil {
		err = errors.Wrap(err, "unable to decode container path stat header")
	}
	return stat, err
}

// PutOptions holds parameters for extracting an archive into a
// container's filesystem with [ContainerFS.Put].
type PutOptions struct {
	// AllowOverwriteDirWithFile allows a file from the archive to replace
	// an existing directory at the destination (and the other way
	// around). Without it, such a clash fails the whole extraction.
	AllowOverwriteDirWithFile bool

	// CopyUIDGID preserves the user and group IDs recorded in the
	// archive instead of mapping everything to the container's root.
	CopyUIDGID bool
}

// Put extracts the given tar archive into the container's filesystem at
// path. The path must exist and be a directory; content is streamed to
// the daemon as-is, so it can be an arbitrarily large archive.
func (fs *ContainerFS) Put(ctx context.Context, path string, content io.Reader, options PutOptions) error {
	containerID, err := trimID("container", fs.id)
	if err != nil {
		return err
	}

	query := url.Values{}
	query.Set("path", path)
	if !options.AllowOverwriteDirWithFile {
		query.Set("noOverwriteDirNonDir", "true")
	}
	if options.CopyUIDGID {
		query.Set("copyUIDGID", "true")
	}

	resp, err := fs.cli.putRaw(ctx, "/containers/"+containerID+"/archive", query, content, nil)
	ensureReaderClosed(resp)
	return err
}
