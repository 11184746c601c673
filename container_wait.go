package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/url"

	"github.com/moorage/client/api/types/container"
)

// containerWaitErrorMsgLimit is the maximum size of the error message
// buffered from a wait response body that fails to decode. 32kb because
// daemon error messages can be long, but not unbounded.
const containerWaitErrorMsgLimit = 32 * 1024

// Wait waits until the container reaches the given condition, defaulting
// to [container.WaitConditionNotRunning] when none is given.
//
// Wait blocks until the request is sent, then returns immediately with two
// channels. Exactly one message is delivered on exactly one of them:
// the wait outcome (carrying the exit code of the container's main
// process) on the first, or an error on the second. Cancel ctx to abandon
// the wait.
func (c *Container) Wait(ctx context.Context, condition container.WaitCondition) (<-chan container.WaitResponse, <-chan error) {
	resultC := make(chan container.WaitResponse)
	errC := make(chan error, 1)

	containerID, err := trimID("container", c.id)
	if err != nil {
		errC <- err
		return resultC, errC
	}

	query := url.Values{}
	if condition != "" {
		query.Set("condition", string(condition))
	}

	resp, err := c.cli.post(ctx, "/containers/"+containerID+"/wait", query, nil, nil)
	if err != nil {
		defer ensureReaderClosed(resp)
		errC <- err
		return resultC, errC
	}

	go func() {
		defer ensureReaderClosed(resp)

		body := resp.Body
		responseText := bytes.NewBuffer(nil)
		stream := io.TeeReader(body, responseText)

		var res container.WaitResponse
		if err := json.NewDecoder(io.LimitReader(stream, containerWaitErrorMsgLimit)).Decode(&res); err != nil {
			// The daemon writes the response as soon as the request is
			// accepted, but an error that occurs while waiting (such as
			// the daemon shutting down) arrives as trailing plain text.
			// Return that text rather than the decode error.
			_, _ = io.ReadAll(io.LimitReader(stream, containerWaitErrorMsgLimit))
			errC <- errors.New(responseText.String())
			return
		}

		resultC <- res
	}()

	return resultC, errC
}
