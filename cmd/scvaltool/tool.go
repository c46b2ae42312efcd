package main

import (
	"os"

	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/multiversx/mx-contract-fixtures-go/config"
	"github.com/multiversx/mx-contract-fixtures-go/contract"
	"github.com/multiversx/mx-contract-fixtures-go/fixtures"
	"github.com/multiversx/mx-contract-fixtures-go/schema"
	"github.com/multiversx/mx-contract-fixtures-go/scval"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli"
)

const defaultLogLevel = "*:INFO"

var (
	errInvokeNeedsFixtures = errors.New("invoke is only available for the built-in fixture contract")
	errMissingFlag         = errors.New("missing required flag")
)

type tool struct {
	cfg             *config.Config
	registry        *schema.Registry
	codec           scval.ValuesCodec
	builtinSchema   bool
	metricsRegistry *prometheus.Registry
}

func newTool(ctx *cli.Context) (*tool, error) {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return nil, err
	}

	applyFlags(ctx, cfg)

	err = setupLogging(cfg.Logs)
	if err != nil {
		return nil, err
	}

	registry, builtinSchema, err := createRegistry(cfg.Schema)
	if err != nil {
		return nil, err
	}

	log.Debug("schema loaded",
		"builtin", builtinSchema,
		"types", len(registry.TypeNames()),
		"functions", len(registry.Functions()),
	)

	return &tool{
		cfg:           cfg,
		registry:      registry,
		codec:         scval.NewCodec(),
		builtinSchema: builtinSchema,
	}, nil
}

func loadConfig(ctx *cli.Context) (*config.Config, error) {
	path := ctx.GlobalString(configurationFile.Name)
	_, err := os.Stat(path)
	if os.IsNotExist(err) && !ctx.GlobalIsSet(configurationFile.Name) {
		log.Debug("configuration file not found, using defaults", "path", path)
		return &config.Config{
			Logs: config.LogsConfig{LogLevel: defaultLogLevel},
		}, nil
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, errors.Wrapf(err, "loading configuration file %s", path)
	}

	return cfg, nil
}

func applyFlags(ctx *cli.Context, cfg *config.Config) {
	if ctx.GlobalIsSet(logLevel.Name) {
		cfg.Logs.LogLevel = ctx.GlobalString(logLevel.Name)
	}
	if ctx.GlobalIsSet(schemaFile.Name) {
		cfg.Schema.DeclarationsFile = ctx.GlobalString(schemaFile.Name)
	}
	if len(cfg.Logs.LogLevel) == 0 {
		cfg.Logs.LogLevel = defaultLogLevel
	}
}

func setupLogging(cfg config.LogsConfig) error {
	err := logger.SetDisplayByteSlice(logger.ToHex)
	if err != nil {
		return err
	}

	logger.ToggleLoggerName(cfg.WithLoggerName)

	err = logger.SetLogLevel(cfg.LogLevel)
	if err != nil {
		return errors.Wrapf(err, "setting log level %s", cfg.LogLevel)
	}

	return nil
}

func createRegistry(cfg config.SchemaConfig) (*schema.Registry, bool, error) {
	if len(cfg.DeclarationsFile) == 0 {
		registry, err := fixtures.NewRegistry()
		return registry, true, err
	}

	declarations, err := schema.LoadDeclarations(cfg.DeclarationsFile)
	if err != nil {
		return nil, false, errors.Wrap(err, "loading declarations")
	}

	registry, err := schema.NewRegistry(declarations)
	if err != nil {
		return nil, false, errors.Wrapf(err, "resolving declarations from %s", cfg.DeclarationsFile)
	}

	return registry, false, nil
}

// createDispatcher wires the fixture handlers, counting invocations on a private prometheus registry when
// metrics are enabled
func (t *tool) createDispatcher() (contract.Dispatcher, error) {
	if !t.builtinSchema {
		return nil, errInvokeNeedsFixtures
	}

	var metrics contract.MetricsHandler = contract.NewDisabledMetrics()
	if t.cfg.Metrics.Enabled {
		t.metricsRegistry = prometheus.NewRegistry()
		prometheusMetrics, err := contract.NewPrometheusMetrics(t.cfg.Metrics.Namespace, t.metricsRegistry)
		if err != nil {
			return nil, errors.Wrap(err, "creating metrics")
		}

		metrics = prometheusMetrics
	}

	dispatcher, err := contract.NewDispatcher(contract.ArgsDispatcher{
		Registry: t.registry,
		Codec:    t.codec,
		Handlers: fixtures.Handlers(),
		Metrics:  metrics,
	})
	if err != nil {
		return nil, err
	}

	return dispatcher, nil
}

// logMetrics prints the gathered invocation counters, if metrics are enabled
func (t *tool) logMetrics() {
	if t.metricsRegistry == nil {
		return
	}

	families, err := t.metricsRegistry.Gather()
	if err != nil {
		log.Warn("cannot gather metrics", "error", err)
		return
	}

	for _, family := range families {
		for _, metric := range family.GetMetric() {
			args := []interface{}{"name", family.GetName()}
			for _, label := range metric.GetLabel() {
				args = append(args, label.GetName(), label.GetValue())
			}
			args = append(args, "value", metric.GetCounter().GetValue())

			log.Info("metric", args...)
		}
	}
}
