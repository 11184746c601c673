package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	cerrdefs "github.com/containerd/errdefs"
	"github.com/distribution/reference"
	"github.com/moorage/client/api/types/container"
)

// ContainerCommitOptions holds parameters to commit a container's
// filesystem and configuration into a new image.
type ContainerCommitOptions struct {
	// Reference is the name (and optional tag) for the resulting image,
	// for example "myapp:v1". It may be empty, producing a dangling image.
	Reference string

	// Comment is an optional commit message, as shown in the image's
	// history.
	Comment string

	// Author sets the author of the resulting image (e.g. "John Hannibal
	// Smith <hannibal@a-team.com>").
	Author string

	// Changes is a list of Dockerfile instructions to apply while
	// committing, such as `CMD ["/bin/sh"]` or `ENV DEBUG=true`.
	Changes []string

	// DoNotPause disables the daemon's default behavior of pausing the
	// container while committing, trading a consistent snapshot for not
	// interrupting the workload.
	DoNotPause bool

	// Config is an optional configuration for the resulting image,
	// overriding the committed container's configuration.
	Config *container.Config
}

// ContainerCommitResult holds the result of [Container.Commit].
type ContainerCommitResult struct {
	// ID is the ID of the created image.
	ID string
}

// Commit creates a new image from the container's current filesystem and
// configuration.
//
// If [ContainerCommitOptions.Reference] contains a digest, the commit is
// rejected with an invalid-parameter error; committed images get their
// identity from the daemon, not from the caller.
func (c *Container) Commit(ctx context.Context, options ContainerCommitOptions) (ContainerCommitResult, error) {
	containerID, err := trimID("container", c.id)
	if err != nil {
		return ContainerCommitResult{}, err
	}

	var repo, tag string
	if options.Reference != "" {
		ref, err := reference.ParseNormalizedNamed(options.Reference)
		if err != nil {
			return ContainerCommitResult{}, fmt.Errorf("%w: %v", cerrdefs.ErrInvalidArgument, err)
		}
		if _, ok := ref.(reference.Canonical); ok {
			return ContainerCommitResult{}, fmt.Errorf("%w: refusing to create an image with a digest reference", cerrdefs.ErrInvalidArgument)
		}

		ref = reference.TagNameOnly(ref)
		if tagged, ok := ref.(reference.Tagged); ok {
			tag = tagged.Tag()
		}
		repo = reference.FamiliarName(ref)
	}

	query := url.Values{}
	query.Set("container", containerID)
	query.Set("repo", repo)
	query.Set("tag", tag)
	query.Set("comment", options.Comment)
	query.Set("author", options.Author)
	for _, change := range options.Changes {
		query.Add("changes", change)
	}
	if options.DoNotPause {
		query.Set("pause", "0")
	}

	resp, err := c.cli.post(ctx, "/commit", query, options.Config, nil)
	defer ensureReaderClosed(resp)
	if err != nil {
		return ContainerCommitResult{}, err
	}

	var response container.CommitResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return ContainerCommitResult{}, err
	}
	return ContainerCommitResult{ID: response.ID}, nil
}
