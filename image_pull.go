package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	cerrdefs "github.com/containerd/errdefs"
	"github.com/distribution/reference"
	"github.com/opencontainers/go-digest"

	"github.com/moorage/client/api/types/registry"
)

// ImagePullOptions holds parameters to pull an image from a registry.
type ImagePullOptions struct {
	// All pulls all tags of the repository instead of a single tag.
	All bool

	// RegistryAuth is the base64url-encoded credentials for the registry,
	// as produced by [registry.EncodeAuthConfig].
	RegistryAuth string

	// Platform selects the platform to pull, e.g. "linux/arm64". The
	// daemon's default is used when empty.
	Platform string
}

// Pull requests the daemon to pull the image named by refStr from its
// registry. The returned stream carries newline-separated JSON progress
// messages; the pull runs for as long as the stream is consumed, and it is
// up to the caller to read it to completion and close it.
//
// An untagged reference pulls "latest". A digested reference pins the pull
// to that exact digest.
func (s *ImageService) Pull(ctx context.Context, refStr string, options ImagePullOptions) (io.ReadCloser, error) {
	ref, err := reference.ParseNormalizedNamed(refStr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cerrdefs.ErrInvalidArgument, err)
	}

	if digested, ok := ref.(reference.Digested); ok {
		var dgst digest.Digest = digested.Digest()
		if err := dgst.Validate(); err != nil {
			return nil, fmt.Errorf("%w: invalid digest %q: %v", cerrdefs.ErrInvalidArgument, dgst, err)
		}
	}

	query := url.Values{}
	query.Set("fromImage", ref.Name())
	if !options.All {
		query.Set("tag", apiTagFromNamedRef(ref))
	}
	if options.Platform != "" {
		query.Set("platform", strings.ToLower(options.Platform))
	}

	var headers http.Header
	if options.RegistryAuth != "" {
		headers = http.Header{registry.AuthHeader: {options.RegistryAuth}}
	}

	resp, err := s.cli.post(ctx, "/images/create", query, nil, headers)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

// apiTagFromNamedRef returns the tag (or digest) to send for the given
// reference. The API makes a distinction between the name and tag/digest
// part of a reference and expects digests to be sent in the tag slot.
func apiTagFromNamedRef(ref reference.Named) string {
	if digested, ok := ref.(reference.Digested); ok {
		return digested.Digest().String()
	}
	ref = reference.TagNameOnly(ref)
	if tagged, ok := ref.(reference.Tagged); ok {
		return tagged.Tag()
	}
	return ""
}
