// Package lkenv provides typed environment configuration for Lambda-based
// HTTP services, plus small getters for ad-hoc environment access.
package lkenv

import (
	"github.com/caarlos0/env/v11"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap/zapcore"
)

// Environment defines the interface that all environment configurations must
// implement. Embed BaseEnvironment in your struct to satisfy this interface.
type Environment interface {
	Port() int
	ServiceName() string
	ReadinessCheckPath() string
	LogLevel() zapcore.Level
	OtelExporter() string
	PrimaryRegion() string
}

// BaseEnvironment contains the environment variables required by every
// service. Embed this in your custom environment struct.
type BaseEnvironment struct {
	HTTPPort            int           `env:"AWS_LWA_PORT,required"`
	Service             string        `env:"SERVICE_NAME,required"`
	ReadinessPath       string        `env:"AWS_LWA_READINESS_CHECK_PATH,required"`
	Level               zapcore.Level `env:"LOG_LEVEL" envDefault:"info"`
	Exporter            string        `env:"OTEL_EXPORTER" envDefault:"stdout"`
	PrimaryDeployRegion string        `env:"PRIMARY_REGION"`
}

func (e BaseEnvironment) Port() int {
	return e.HTTPPort
}
func (e BaseEnvironment) ServiceName() string {
	return e.Service
}
func (e BaseEnvironment) ReadinessCheckPath() string {
	return e.ReadinessPath
}
func (e BaseEnvironment) LogLevel() zapcore.Level {
	return e.Level
}
func (e BaseEnvironment) OtelExporter() string {
	return e.Exporter
}
func (e BaseEnvironment) PrimaryRegion() string {
	return e.PrimaryDeployRegion
}

var _ Environment = BaseEnvironment{}

// Parse parses environment variables into the given Environment type.
func Parse[E Environment]() func() (E, error) {
	return func() (e E, err error) {
		if err := env.Parse(&e); err != nil {
			return e, errors.Wrap(err, "failed to parse environment")
		}
		return e, nil
	}
}
