package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"

	"github.com/rs/zerolog/log"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/alimikegami/point-of-sales/product-admin/config"
	"github.com/alimikegami/point-of-sales/product-admin/internal/domain"
	"github.com/alimikegami/point-of-sales/product-admin/internal/infrastructure/tracing"
	"github.com/alimikegami/point-of-sales/product-admin/internal/repository"
	"github.com/alimikegami/point-of-sales/product-admin/internal/service"
	"github.com/alimikegami/point-of-sales/product-admin/pkg/httpclient"
	"github.com/alimikegami/point-of-sales/product-admin/pkg/logger"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	out    io.Writer
	errOut io.Writer

	baseURL string

	config   *config.Config
	logFile  io.Closer
	provider *sdktrace.TracerProvider
}

// start loads configuration and sets up logging and tracing. Interactive
// commands keep the terminal free of log output.
func (a *app) start(ctx context.Context, interactive bool) (service.ProductService, error) {
	a.config = config.CreateNewConfig()
	if a.baseURL != "" {
		a.config.BaseURL = a.baseURL
	}

	opts := logger.Options{
		Level:       a.config.LogLevel,
		File:        a.config.LogFile,
		Environment: a.config.Environment,
	}
	if !interactive {
		opts.Console = a.errOut
	}
	closer, err := logger.Setup(opts)
	if err != nil {
		return nil, err
	}
	a.logFile = closer

	var transport http.RoundTripper = httpclient.NewLoggingTransport(http.DefaultTransport)
	if host := a.config.TracingConfig.CollectorHost; host != "" {
		provider, err := tracing.InitTracing(ctx, host)
		if err != nil {
			log.Error().Err(err).Str("component", "InitTracing").Msg("")
		} else {
			a.provider = provider
			transport = tracing.InstrumentTransport(transport)
		}
	}

	client := httpclient.NewClient(&http.Client{Transport: transport})
	repo, err := repository.CreateHTTPProductRepository(a.config.BaseURL, client)
	if err != nil {
		return nil, err
	}

	return service.CreateProductService(repo), nil
}

func (a *app) stop() {
	if a.provider != nil {
		if err := a.provider.Shutdown(context.Background()); err != nil {
			log.Error().Err(err).Str("component", "ShutdownTracing").Msg("")
		}
		a.provider = nil
	}
	if a.logFile != nil {
		a.logFile.Close()
		a.logFile = nil
	}
}

func (a *app) printFieldErrors(fe domain.FieldErrors) {
	for _, f := range domain.ErrorFields {
		if msg := fe.Get(f); msg != "" {
			fmt.Fprintf(a.errOut, "%s: %s\n", f, msg)
		}
	}

	keys := make([]string, 0, len(fe.Other))
	for k := range fe.Other {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(a.errOut, "%s: %s\n", k, fe.Other[k])
	}
}

func (a *app) printJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
