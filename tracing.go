// Copyright 2026 Blink Labs Software
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

package poagov

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func (e *Engine) setupTracing() error {
	ctx := context.Background()
	otel.SetTextMapPropagator(
		propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{},
			propagation.Baggage{},
		),
	)
	var providerOpts []sdktrace.TracerProviderOption
	// OTLP over HTTP(s), configured via the OTEL_EXPORTER_OTLP_* env vars
	httpExporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return err
	}
	providerOpts = append(
		providerOpts,
		sdktrace.WithBatcher(
			httpExporter,
			sdktrace.WithBatchTimeout(time.Second),
		),
	)
	if e.config.tracingStdout {
		stdoutExporter, err := stdouttrace.New()
		if err != nil {
			return err
		}
		providerOpts = append(
			providerOpts,
			sdktrace.WithBatcher(
				stdoutExporter,
				sdktrace.WithBatchTimeout(time.Second),
			),
		)
	}
	tracerProvider := sdktrace.NewTracerProvider(providerOpts...)
	e.shutdownFuncs = append(e.shutdownFuncs, tracerProvider.Shutdown)
	otel.SetTracerProvider(tracerProvider)
	return nil
}
