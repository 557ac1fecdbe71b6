package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	cda "github.com/gofhir/cda"
	"github.com/gofhir/cda/config"
	"github.com/gofhir/cda/document"
	"github.com/gofhir/cda/engine"
	"github.com/gofhir/cda/pkg/logger"
	"github.com/gofhir/cda/sample"
	"github.com/gofhir/cda/service"
	"github.com/gofhir/cda/vocab"
	"github.com/gofhir/cda/xmlcodec"
)

// Name and Usage of the app.
const (
	Name    = "cdagen"
	Usage   = "Generate, validate and render NEHTA CDA clinical documents"
	Version = "0.1.0"
)

// errInvalid is returned when at least one document failed validation.
var errInvalid = errors.New("one or more documents are invalid")

type state struct {
	cfg *config.Config
	log logrus.FieldLogger

	// loaded holds the --codesystems content and is consulted ahead of the
	// built-in registry. It is nil when no directory was given.
	loaded *vocab.Registry
}

// registries returns the registries to consult, in order.
func (st *state) registries() []*vocab.Registry {
	if st.loaded == nil {
		return []*vocab.Registry{vocab.Default()}
	}
	return []*vocab.Registry{st.loaded, vocab.Default()}
}

// registryFor returns the first registry that knows system.
func (st *state) registryFor(system string) (*vocab.Registry, bool) {
	for _, r := range st.registries() {
		if _, ok := r.System(system); ok {
			return r, true
		}
	}
	return nil, false
}

func (st *state) codeValidator() *service.TerminologyChain {
	chain := service.NewTerminologyChain()
	for _, r := range st.registries() {
		chain.Add(service.NewRegistryValidator(r))
	}
	return chain
}

// GetApp returns the command line application.
func GetApp() *cli.App {
	return setUpApp()
}

func setUpApp() *cli.App {
	st := &state{}

	app := cli.NewApp()
	app.Name = Name
	app.Usage = Usage
	app.Version = Version
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Usage: "Path to a config file (yaml, json, toml or env)",
		},
		cli.StringFlag{
			Name:  "log-level",
			Usage: "Override the configured log level",
		},
		cli.StringFlag{
			Name:  "codesystems",
			Usage: "Directory of FHIR R4 CodeSystem JSON files to add to the vocabulary",
		},
	}
	app.Before = func(c *cli.Context) error {
		cfg, err := config.Load(c.String("config"))
		if err != nil {
			return err
		}
		if lvl := c.String("log-level"); lvl != "" {
			cfg.LogLevel = lvl
		}
		l, err := logger.Configure(cfg.Logger())
		if err != nil {
			return err
		}
		st.cfg = cfg
		st.log = logger.For(l, "cli")

		st.loaded = nil
		if dir := c.String("codesystems"); dir != "" {
			st.loaded = vocab.NewEmptyRegistry()
			stats, err := st.loaded.LoadDirectory(dir)
			if err != nil {
				return err
			}
			st.log.WithFields(logrus.Fields{
				"files":       stats.FilesProcessed,
				"codeSystems": stats.CodeSystemsLoaded,
				"skipped":     stats.Skipped,
			}).Info("code systems loaded")
		}
		return nil
	}

	var (
		outDir    string
		seed      int64
		docType   string
		jsonOut   string
		renderOut string
		strict    bool
		noNarr    bool
	)

	app.Commands = []cli.Command{
		{
			Name:  "generate",
			Usage: "Write sample documents as model XML and CDA XML",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:        "out, o",
					Usage:       "Output directory (default from config)",
					Destination: &outDir,
				},
				cli.Int64Flag{
					Name:        "seed",
					Usage:       "Random seed (default from config)",
					Destination: &seed,
				},
				cli.StringFlag{
					Name:        "type, t",
					Usage:       "Generate only this document type",
					Destination: &docType,
				},
			},
			Action: func(c *cli.Context) error {
				dir := outDir
				if dir == "" {
					dir = st.cfg.OutputDir
				}
				s := seed
				if !c.IsSet("seed") {
					s = st.cfg.Seed
				}
				return st.generate(app.Writer, dir, s, cda.DocumentType(docType))
			},
		},
		{
			Name:      "validate",
			Usage:     "Validate model XML documents and list their issues",
			ArgsUsage: "<file>...",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:        "output",
					Value:       "text",
					Usage:       "Output format: text or json",
					Destination: &jsonOut,
				},
				cli.BoolFlag{
					Name:        "strict",
					Usage:       "Treat warnings as errors",
					Destination: &strict,
				},
			},
			Action: func(c *cli.Context) error {
				if len(c.Args()) == 0 {
					return errors.New("at least one file is required")
				}
				opts := st.cfg.Options()
				if strict {
					opts = append(opts, cda.WithStrictMode(true))
				}
				return st.validate(app.Writer, c.Args(), strings.EqualFold(jsonOut, "json"), opts)
			},
		},
		{
			Name:      "render",
			Usage:     "Validate a model XML document and render it as HL7 CDA",
			ArgsUsage: "<file>",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:        "out, o",
					Usage:       "Write CDA XML to this file instead of stdout",
					Destination: &renderOut,
				},
				cli.BoolFlag{
					Name:        "no-narrative",
					Usage:       "Omit section narrative",
					Destination: &noNarr,
				},
			},
			Action: func(c *cli.Context) error {
				if len(c.Args()) != 1 {
					return errors.New("exactly one file is required")
				}
				opts := st.cfg.Options()
				if noNarr {
					opts = append(opts, cda.WithNarrative(false))
				}
				return st.render(app.Writer, c.Args().First(), renderOut, opts)
			},
		},
		{
			Name:  "vocab",
			Usage: "Inspect the vocabulary registry",
			Subcommands: []cli.Command{
				{
					Name:  "systems",
					Usage: "List registered code systems",
					Action: func(c *cli.Context) error {
						seen := make(map[string]bool)
						for _, r := range st.registries() {
							for _, cs := range r.Systems() {
								if seen[cs.OID] {
									continue
								}
								seen[cs.OID] = true
								fmt.Fprintf(app.Writer, "%s\t%s\t%d\n", cs.OID, cs.Name, len(r.Codes(cs.OID)))
							}
						}
						return nil
					},
				},
				{
					Name:      "codes",
					Usage:     "List the codes of a code system",
					ArgsUsage: "<oid>",
					Action: func(c *cli.Context) error {
						oid := c.Args().First()
						r, ok := st.registryFor(oid)
						if !ok {
							return errors.Errorf("unknown code system %q", oid)
						}
						for _, code := range r.Codes(oid) {
							display, _ := r.Lookup(oid, code)
							fmt.Fprintf(app.Writer, "%s\t%s\n", code, display)
						}
						return nil
					},
				},
				{
					Name:      "lookup",
					Usage:     "Show the display name of a code",
					ArgsUsage: "<oid> <code>",
					Action: func(c *cli.Context) error {
						if len(c.Args()) != 2 {
							return errors.New("a code system and a code are required")
						}
						var display string
						r, ok := st.registryFor(c.Args().Get(0))
						if ok {
							display, ok = r.Lookup(c.Args().Get(0), c.Args().Get(1))
						}
						if !ok {
							return errors.Errorf("code %s not found in %s", c.Args().Get(1), c.Args().Get(0))
						}
						fmt.Fprintln(app.Writer, display)
						return nil
					},
				},
			},
		},
	}
	return app
}

func (st *state) newGenerator(opts []cda.Option) *engine.Generator {
	opts = append(opts, cda.WithLogger(st.log))
	g := engine.New(opts...)
	g.SetCodeValidator(service.NewCachingCodeValidator(st.codeValidator(), g.Options().ExpressionCacheSize))
	return g
}

func fileBase(dt cda.DocumentType) string {
	return strings.ToLower(string(dt))
}

func (st *state) generate(w io.Writer, dir string, seed int64, only cda.DocumentType) error {
	gen := sample.New(seed)

	var docs []document.Document
	if only != "" {
		doc, err := gen.Document(only)
		if err != nil {
			return err
		}
		docs = append(docs, doc)
	} else {
		docs = gen.All()
	}

	g := st.newGenerator(append(st.cfg.Options(), cda.WithPooling(false)))
	defer g.Close()

	results := g.GenerateAll(context.Background(), docs)
	for i, doc := range docs {
		r := results[i]
		if r.Error != nil {
			return errors.Wrapf(r.Error, "generate %s", doc.DocumentType())
		}
		base := filepath.Join(dir, fileBase(doc.DocumentType()))
		if err := xmlcodec.SaveFile(base+".xml", doc); err != nil {
			return err
		}
		if err := os.WriteFile(base+".cda.xml", r.Output, 0o644); err != nil {
			return errors.Wrapf(err, "write %s.cda.xml", base)
		}
		fmt.Fprintf(w, "%s\t%s.xml\t%s.cda.xml\n", doc.DocumentType(), base, base)
	}
	return nil
}

type fileReport struct {
	File         string      `json:"file"`
	DocumentType string      `json:"documentType,omitempty"`
	Valid        bool        `json:"valid"`
	Errors       int         `json:"errors"`
	Warnings     int         `json:"warnings"`
	Issues       []cda.Issue `json:"issues,omitempty"`
	Failure      string      `json:"failure,omitempty"`
}

func (st *state) validate(w io.Writer, files []string, asJSON bool, opts []cda.Option) error {
	reports := make([]fileReport, len(files))
	var (
		docs    []document.Document
		indexes []int
	)
	for i, f := range files {
		reports[i].File = f
		doc, err := xmlcodec.LoadFile(f)
		if err != nil {
			reports[i].Failure = err.Error()
			reports[i].Errors = 1
			continue
		}
		reports[i].DocumentType = doc.DocumentType().String()
		docs = append(docs, doc)
		indexes = append(indexes, i)
	}

	// Results are owned by the caller only when pooling is off.
	g := st.newGenerator(append(opts, cda.WithPooling(false)))
	defer g.Close()

	batch := g.ValidateBatch(context.Background(), docs)
	for j, jr := range batch.Results {
		rep := &reports[indexes[j]]
		if jr.Error != nil {
			rep.Failure = jr.Error.Error()
			rep.Errors = 1
			continue
		}
		rep.Valid = jr.Result.Valid
		rep.Errors = jr.Result.ErrorCount()
		rep.Warnings = jr.Result.WarningCount()
		rep.Issues = jr.Result.Issues
	}

	invalid := false
	for _, rep := range reports {
		if !rep.Valid {
			invalid = true
		}
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(reports); err != nil {
			return errors.Wrap(err, "encode report")
		}
	} else {
		for _, rep := range reports {
			printReport(w, rep)
		}
	}

	if invalid {
		return errInvalid
	}
	return nil
}

func printReport(w io.Writer, rep fileReport) {
	status := "VALID"
	if !rep.Valid {
		status = "INVALID"
	}
	fmt.Fprintf(w, "== %s ==\n", rep.File)
	if rep.Failure != "" {
		fmt.Fprintf(w, "Status: %s\n%s\n\n", status, rep.Failure)
		return
	}
	fmt.Fprintf(w, "Type: %s\nStatus: %s\nErrors: %d, Warnings: %d\n", rep.DocumentType, status, rep.Errors, rep.Warnings)
	for _, iss := range rep.Issues {
		fmt.Fprintf(w, "  %s\n", iss.String())
	}
	fmt.Fprintln(w)
}

func (st *state) render(w io.Writer, in, out string, opts []cda.Option) error {
	doc, err := xmlcodec.LoadFile(in)
	if err != nil {
		return err
	}

	g := st.newGenerator(opts)
	defer g.Close()

	data, err := g.Generate(context.Background(), doc)
	if err != nil {
		if verr, ok := cda.AsValidationError(err); ok {
			for _, iss := range verr.Issues {
				fmt.Fprintf(w, "%s\n", iss.String())
			}
			return errInvalid
		}
		return err
	}

	if out == "" {
		_, err = w.Write(data)
		return errors.Wrap(err, "write output")
	}
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return errors.Wrapf(err, "create directory for %s", out)
	}
	return errors.Wrapf(os.WriteFile(out, data, 0o644), "write %s", out)
}
