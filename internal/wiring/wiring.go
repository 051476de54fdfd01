// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/courier/internal/adapters/config"
	_ "go.trai.ch/courier/internal/adapters/evaluator"
	_ "go.trai.ch/courier/internal/adapters/generator"
	_ "go.trai.ch/courier/internal/adapters/github"
	_ "go.trai.ch/courier/internal/adapters/httpapi"
	_ "go.trai.ch/courier/internal/adapters/keystore"
	_ "go.trai.ch/courier/internal/adapters/logger"
	_ "go.trai.ch/courier/internal/adapters/probe"
	_ "go.trai.ch/courier/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/courier/internal/app"
	_ "go.trai.ch/courier/internal/engine/intake"
	_ "go.trai.ch/courier/internal/engine/pipeline"
	_ "go.trai.ch/courier/internal/engine/scheduler"
)
