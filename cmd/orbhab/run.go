package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tarunkusetti2004/Orb-of-night-habitat/internal/config"
	"github.com/tarunkusetti2004/Orb-of-night-habitat/internal/logging"
	"github.com/tarunkusetti2004/Orb-of-night-habitat/internal/server"
	"github.com/tarunkusetti2004/Orb-of-night-habitat/internal/store"
	"github.com/tarunkusetti2004/Orb-of-night-habitat/pkg/editor"
	"github.com/tarunkusetti2004/Orb-of-night-habitat/pkg/habitat"
	"github.com/tarunkusetti2004/Orb-of-night-habitat/pkg/layout"
	"github.com/tarunkusetti2004/Orb-of-night-habitat/pkg/metrics"
	"github.com/tarunkusetti2004/Orb-of-night-habitat/pkg/scene"
	"github.com/tarunkusetti2004/Orb-of-night-habitat/pkg/validation"
)

// loadAndValidate loads the project spec and runs schema validation.
func loadAndValidate(projectPath string) (*habitat.Spec, *validation.Report, error) {
	spec, err := habitat.LoadProject(projectPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading spec: %w", err)
	}
	schemaReport := validation.ValidateSpec(spec)
	return spec, schemaReport, nil
}

func runValidate(projectPath string) error {
	spec, report, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}

	if report.Valid {
		l := layout.FromSpec(spec)
		_, metricsReport, cfgErr := metrics.Resolve(l)
		if cfgErr != nil {
			report.AddError(validation.Result{
				Level:     validation.LevelMetrics,
				Message:   cfgErr.Error(),
				FieldPath: "habitat",
			})
		}
		report.Merge(metricsReport)
		report.Merge(metrics.Audit(l))
	}

	printValidationReport(report)

	if !report.Valid {
		os.Exit(1)
	}
	return nil
}

func runStats(projectPath string) error {
	spec, report, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}
	if !report.Valid {
		printValidationReport(report)
		return fmt.Errorf("spec has validation errors; fix before computing stats")
	}

	l := layout.FromSpec(spec)
	summary, metricsReport, err := metrics.Resolve(l)
	if err != nil {
		return err
	}

	printSummary(spec.Name, summary)

	if len(metricsReport.Warnings) > 0 {
		fmt.Println()
		printValidationReport(metricsReport)
	}
	return nil
}

func runScene(projectPath string) error {
	spec, report, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}
	if !report.Valid {
		printValidationReport(report)
		return fmt.Errorf("spec has validation errors")
	}

	l := layout.FromSpec(spec)
	graph := scene.Assemble(spec.Name, l)
	if sceneReport := scene.ValidateGraph(graph); !sceneReport.Valid {
		printValidationReport(sceneReport)
		return fmt.Errorf("assembled scene graph failed validation")
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(graph)
}

func runExport(projectPath, out string) error {
	spec, report, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}
	if !report.Valid {
		printValidationReport(report)
		return fmt.Errorf("spec has validation errors")
	}

	data, err := layout.Encode(layout.FromSpec(spec))
	if err != nil {
		return err
	}

	if out == "" {
		_, err = os.Stdout.Write(append(data, '\n'))
		return err
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("writing layout document: %w", err)
	}
	fmt.Printf("Wrote %s\n", out)
	return nil
}

func runServe(projectPath string, port int, storePath string, portSet bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if portSet {
		cfg.Server.Port = port
	}
	if storePath != "" {
		cfg.Store.Path = storePath
	}

	logger, err := logging.New(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer logger.Sync()

	spec := habitat.Default()
	if projectPath != "" {
		spec, err = habitat.LoadProject(projectPath)
		if err != nil {
			return fmt.Errorf("loading spec: %w", err)
		}
		if report := validation.ValidateSpec(spec); !report.Valid {
			printValidationReport(report)
			return fmt.Errorf("spec has validation errors")
		}
	}

	var library *store.Store
	if cfg.Store.Path != "" {
		library, err = store.Open(cfg.Store.Path)
		if err != nil {
			return err
		}
		defer library.Close()
	}

	session := editor.NewSession(spec.Name, layout.FromSpec(spec))
	return server.New(cfg, logger, spec, session, library).Start()
}
