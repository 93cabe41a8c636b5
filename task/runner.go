// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package task

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/ajroetker/go-kernels/hwy"
)

// Ready is written once by Serve before the first result.
type Ready struct {
	Type  string `json:"type"`
	Level string `json:"level"`
}

// Runner executes a stream of requests strictly one at a time.
type Runner struct {
	// Logger overrides hwy.Logger for this runner when non-nil.
	Logger *slog.Logger

	served int
	failed int
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return hwy.Logger()
}

// Stats returns the number of requests served and how many of them failed.
func (r *Runner) Stats() (served, failed int) {
	return r.served, r.failed
}

// Run executes one request and records it in the runner's stats.
func (r *Runner) Run(req Request) Result {
	res := Execute(req)
	r.served++
	if !res.Success {
		r.failed++
		r.logger().Warn("task rejected", "id", req.ID, "type", string(req.Type), "error", res.Error)
	} else {
		r.logger().Debug("task done", "id", req.ID, "type", string(req.Type), "ms", res.Duration)
	}
	return res
}

// Serve decodes JSON requests from in and writes a JSON result for each to
// out, preceded by a Ready message. It returns nil at the end of input, the
// context's error once ctx is canceled, and a wrapped error if the stream is
// not valid JSON or out cannot be written. A request with fields of the wrong
// JSON type, or whose result cannot be encoded, gets a failed result.
//
// Cancellation does not wait for in: a read still pending on in is abandoned
// and ends when in is closed.
func (r *Runner) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	enc := json.NewEncoder(out)

	if err := enc.Encode(Ready{Type: "ready", Level: hwy.CurrentName()}); err != nil {
		return fmt.Errorf("task: write ready: %w", err)
	}
	r.logger().Info("task stream opened", "level", hwy.CurrentName())
	defer func() {
		r.logger().Info("task stream closed", "served", r.served, "failed", r.failed)
	}()

	stop := make(chan struct{})
	defer close(stop)
	requests := decodeRequests(in, stop)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		var next decoded
		select {
		case <-ctx.Done():
			return ctx.Err()
		case next = <-requests:
		}

		req, err := next.req, next.err
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			var typeErr *json.UnmarshalTypeError
			if !errors.As(err, &typeErr) {
				return fmt.Errorf("task: decode request: %w", err)
			}
			// The value was consumed; report it and keep reading.
			res := Result{ID: req.ID, Type: req.Type, Error: fmt.Errorf("%w: %v", ErrPayload, err).Error()}
			r.served++
			r.failed++
			r.logger().Warn("task rejected", "id", req.ID, "error", res.Error)
			if err := enc.Encode(res); err != nil {
				return fmt.Errorf("task: write result: %w", err)
			}
			continue
		}
		if err := r.write(enc, r.Run(req)); err != nil {
			return fmt.Errorf("task: write result %q: %w", req.ID, err)
		}
	}
}

// write encodes res. A result value JSON cannot represent, such as an
// infinite float, is replaced by a failed result for the same request.
func (r *Runner) write(enc *json.Encoder, res Result) error {
	err := enc.Encode(res)
	var unsupported *json.UnsupportedValueError
	if err == nil || !errors.As(err, &unsupported) {
		return err
	}
	r.failed++
	failed := Result{
		ID:       res.ID,
		Type:     res.Type,
		Error:    fmt.Errorf("%w: %v", ErrResult, err).Error(),
		Duration: res.Duration,
	}
	r.logger().Warn("task rejected", "id", res.ID, "type", string(res.Type), "error", failed.Error)
	return enc.Encode(failed)
}

// decoded is one item read by decodeRequests.
type decoded struct {
	req Request
	err error
}

// decodeRequests reads requests from in on its own goroutine so that Serve
// can stop waiting on cancellation. It stops after the first error other
// than a *json.UnmarshalTypeError, or once stop is closed.
func decodeRequests(in io.Reader, stop <-chan struct{}) <-chan decoded {
	ch := make(chan decoded)
	go func() {
		defer close(ch)
		dec := json.NewDecoder(in)
		for {
			var d decoded
			d.err = dec.Decode(&d.req)
			select {
			case ch <- d:
			case <-stop:
				return
			}
			var typeErr *json.UnmarshalTypeError
			if d.err != nil && !errors.As(d.err, &typeErr) {
				return
			}
		}
	}()
	return ch
}
