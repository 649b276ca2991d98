// Package main provides the CLI entry point for sowgen-go.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hts-tools/sowgen-go/pkg/sowgen"
	"github.com/hts-tools/sowgen-go/pkg/sowgen/models"
	"github.com/hts-tools/sowgen-go/pkg/sowgen/sow"
)

var (
	outputPath    string
	docType       string
	configPath    string
	vertical      string
	appendixPath  string
	schedulePath  string
	notesPath     string
	liftRequired  bool
	liftHeight    string
	liftEnv       string
	varFlags      []string
	projectName   string
	verbose       bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sowgen",
		Short: "Generate Scope-of-Work documents from BOM spreadsheets",
		Long: `sowgen-go parses a Bill-of-Materials spreadsheet, auto-fills scope
variables from the material list, and renders a .docx template into a
finished Scope-of-Work document with optional appendix pages.`,
	}

	genCmd := &cobra.Command{
		Use:   "generate [template.docx] [bom.xlsx]",
		Short: "Render a SOW document from a template and a BOM spreadsheet",
		Args:  cobra.ExactArgs(2),
		RunE:  runGenerate,
	}
	genCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: suggested name in cwd)")
	genCmd.Flags().StringVar(&docType, "type", string(models.DocCustomer), "Document type: SOW_Customer, SOW_SUB_Quoting, SOW_SUB_Project")
	genCmd.Flags().StringVar(&configPath, "config", "", "Path to sowgen.yaml overrides")
	genCmd.Flags().StringVar(&vertical, "vertical", "", "Vertical code for the site-requirements appendix (K12, HEW, MED, BIZ, GOV)")
	genCmd.Flags().StringVar(&appendixPath, "appendix", "", "Appendix file to merge (.docx or image)")
	genCmd.Flags().StringVar(&schedulePath, "schedule", "", "Hardware schedule spreadsheet to append as a table")
	genCmd.Flags().StringVar(&notesPath, "programming-notes", "", "Text file appended as the programming-notes page")
	genCmd.Flags().BoolVar(&liftRequired, "lift", false, "Append the lift/equipment requirements page")
	genCmd.Flags().StringVar(&liftHeight, "lift-height", "", "Install height in feet for the lift page")
	genCmd.Flags().StringVar(&liftEnv, "lift-environment", "", "Lift environment: indoor or outdoor")
	genCmd.Flags().StringArrayVar(&varFlags, "var", nil, "Template variable override KEY=VALUE (repeatable)")
	genCmd.Flags().StringVar(&projectName, "project-name", "", "Project name (overrides value extracted from the BOM)")
	genCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	sectionsCmd := &cobra.Command{
		Use:   "sections",
		Short: "List the built-in scope-of-work section catalog",
		Run: func(cmd *cobra.Command, args []string) {
			for _, s := range sow.SectionTemplates {
				fmt.Printf("%-22s %s\n", s.ID, s.Title)
			}
		},
	}

	rootCmd.AddCommand(genCmd, sectionsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	templatePath, bomPath := args[0], args[1]

	logger := zap.NewNop()
	if verbose {
		var err error
		if logger, err = zap.NewDevelopment(); err != nil {
			return err
		}
		defer logger.Sync()
	}

	template, err := os.ReadFile(templatePath)
	if err != nil {
		return fmt.Errorf("read template: %w", err)
	}
	bomData, err := os.ReadFile(bomPath)
	if err != nil {
		return fmt.Errorf("read BOM: %w", err)
	}

	var cfg *sowgen.Config
	if configPath != "" {
		if cfg, err = sowgen.LoadConfig(configPath); err != nil {
			return err
		}
	} else {
		cfg = &sowgen.Config{}
	}

	result, err := sowgen.ParseBOM(bomData, logger)
	if err != nil {
		if errors.Is(err, sowgen.ErrNoItems) || errors.Is(err, sowgen.ErrNoData) {
			return fmt.Errorf("cannot generate document: %w", err)
		}
		return err
	}
	logger.Info("parsed BOM",
		zap.Int("items", len(result.Items)), zap.String("sheet", result.Sheet))

	// Variable precedence: --var flags, then config defaults, then BOM
	// auto-fill. Merging is fill-empty-only at every step.
	variables := make(map[string]string)
	for _, kv := range varFlags {
		key, value, found := strings.Cut(kv, "=")
		if !found {
			return fmt.Errorf("invalid --var %q, expected KEY=VALUE", kv)
		}
		variables[key] = value
	}
	sow.MergeVariables(variables, cfg.Variables)
	filled := sow.MergeVariables(variables, sow.AutoFill(result.Items))
	logger.Debug("auto-filled variables", zap.Strings("keys", filled))

	order := sow.DefaultSectionOrder()
	enabled := make(map[string]bool, len(order))
	for _, id := range order {
		enabled[id] = true
	}
	scopeText := sowgen.ScopeText(models.BuilderState{
		SectionOrder:    order,
		EnabledSections: enabled,
		Variables:       variables,
		CustomTemplates: cfg.CustomTemplates,
	})

	info := models.ProjectInfo{
		ProjectName:       result.Meta.JobName,
		OppNumber:         result.Meta.OppNumber,
		Date:              result.Meta.Date,
		CustomerName:      result.Meta.CustomerName,
		CityStateZip:      result.Meta.CityState,
		SolutionArchitect: result.Meta.SolutionArchitect,
		Scope:             scopeText,
	}
	overrides := models.ProjectInfo{ProjectName: projectName}

	opts := sowgen.Options{
		Logger:            logger,
		Vertical:          vertical,
		VerticalOverrides: cfg.VerticalOverrides,
		LiftRequired:      liftRequired,
		LiftHeight:        liftHeight,
		LiftEnvironment:   liftEnv,
	}
	if appendixPath != "" {
		data, err := os.ReadFile(appendixPath)
		if err != nil {
			return fmt.Errorf("read appendix: %w", err)
		}
		opts.Appendix = &sowgen.AppendixFile{Name: appendixPath, Data: data}
	}
	if schedulePath != "" {
		if opts.HardwareSchedule, err = os.ReadFile(schedulePath); err != nil {
			return fmt.Errorf("read hardware schedule: %w", err)
		}
	}
	if notesPath != "" {
		notes, err := os.ReadFile(notesPath)
		if err != nil {
			return fmt.Errorf("read programming notes: %w", err)
		}
		opts.ProgrammingNotes = string(notes)
	}

	fields := sowgen.BuildFields(info, overrides)
	out, err := sowgen.GenerateDocument(template, fields, opts)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	dest := outputPath
	if dest == "" {
		merged := info.Merged(overrides)
		dest = sowgen.SuggestedFileName(models.DocumentType(docType), merged.ProjectName)
	}
	if err := os.WriteFile(dest, out, 0644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	fmt.Println(dest)
	return nil
}
