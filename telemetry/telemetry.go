// Copyright 2020-2021 Dolthub, Inc.
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

// Package telemetry wraps the compiler's and executors' logging and
// tracing so call sites read the same way the teacher's auth.Audit wraps
// authentication and authorization calls: one small object threaded
// through, logged and spanned around the call it wraps.
package telemetry

import (
	"context"

	"github.com/opentracing/opentracing-go"
	"github.com/sirupsen/logrus"

	"github.com/GHR-Arash/typedb/ids"
)

// Context bundles a structured logger and an opentracing tracer, plus a
// correlation ID that ties every span and log line emitted through it
// back to one compilation. The zero value is not usable; construct with
// New or use OrNop on a possibly-nil *Context to get a context that
// discards everything.
type Context struct {
	logger        *logrus.Entry
	tracer        opentracing.Tracer
	correlationID string
}

// New builds a Context from a logrus entry and an opentracing tracer,
// tagging both with a fresh correlation ID.
func New(logger *logrus.Entry, tracer opentracing.Tracer) *Context {
	correlationID := ids.NewCorrelationID()
	return &Context{
		logger:        logger.WithField("correlation_id", correlationID),
		tracer:        tracer,
		correlationID: correlationID,
	}
}

// CorrelationID returns the ID tagging this Context's spans and logs.
func (c *Context) CorrelationID() string { return c.correlationID }

// Nop returns a Context that logs to a discarded logger and never
// samples a trace, safe to use when the caller has no telemetry backend
// configured.
func Nop() *Context {
	l := logrus.New()
	l.SetOutput(nopWriter{})
	return &Context{logger: logrus.NewEntry(l), tracer: opentracing.NoopTracer{}}
}

// OrNop returns c if non-nil, else Nop(). Every compiler entry point
// calls this so a nil *Context is always safe to pass.
func (c *Context) OrNop() *Context {
	if c != nil {
		return c
	}
	return Nop()
}

// Logger exposes the wrapped structured logger.
func (c *Context) Logger() *logrus.Entry { return c.logger }

// StartSpan starts an opentracing span named operation, returning it so
// the caller can `defer span.Finish()`.
func (c *Context) StartSpan(operation string) opentracing.Span {
	span, _ := opentracing.StartSpanFromContextWithTracer(context.Background(), c.tracer, operation)
	span.SetTag("correlation_id", c.correlationID)
	return span
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }
