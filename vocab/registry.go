package vocab

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/gofhir/fhir/r4"
	"github.com/pkg/errors"
)

// Registry holds the code systems coded values are checked against.
// It is seeded with every vocabulary in this package and can be extended
// with FHIR R4 CodeSystem resources.
type Registry struct {
	mu      sync.RWMutex
	systems map[string]*codeSystemData
}

type codeSystemData struct {
	system CodeSystem
	// codes is nil for systems known by OID only, such as SNOMED CT-AU.
	codes map[string]string
}

// ValidateCodeResult is the outcome of Registry.ValidateCode.
type ValidateCodeResult struct {
	// Known is false when the registry holds no content for the system and
	// the code could not be checked.
	Known   bool
	Valid   bool
	Display string
	Message string
}

// LoadStats reports what a bulk load added.
type LoadStats struct {
	FilesProcessed    int
	CodeSystemsLoaded int
	Skipped           int
}

func builtinTables() []codeTable {
	return []codeTable{
		sexTable,
		indigenousStatusTable,
		relationshipTypeTable,
		deathNotificationSourceTable,
		nameUsageTable,
		organisationNameUsageTable,
		healthIdentifierTypeTable,
		identifierTypeTable,
		entitlementTypeTable,
		addressPurposeTable,
		australianStateTable,
		countryTable,
		mediumTable,
		usageTable,
		documentStatusTable,
		resultStatusTable,
		interpretationTable,
		separationModeTable,
		occupationTable,
		recipientTypeTable,
		nullFlavourTable,
	}
}

// NewEmptyRegistry creates a registry with no code systems.
func NewEmptyRegistry() *Registry {
	return &Registry{systems: make(map[string]*codeSystemData)}
}

// NewRegistry creates a registry seeded with the built-in vocabularies.
func NewRegistry() *Registry {
	r := NewEmptyRegistry()
	for _, t := range builtinTables() {
		r.Register(t.codeSystem(), t.codes())
	}
	for _, cs := range []CodeSystem{SNOMEDCTAU, LOINC, NCTIS, PBS} {
		r.RegisterExternal(cs)
	}
	return r
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// Default returns a shared registry holding only the built-in vocabularies.
// Callers that load additional code systems should use NewRegistry.
func Default() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// Register adds or replaces a code system with the given code -> display map.
func (r *Registry) Register(system CodeSystem, codes map[string]string) {
	data := &codeSystemData{system: system, codes: make(map[string]string, len(codes))}
	for k, v := range codes {
		data.codes[k] = v
	}
	r.mu.Lock()
	r.systems[system.OID] = data
	r.mu.Unlock()
}

// RegisterExternal records a code system by OID without its content.
// Codes from it are reported as not checkable rather than invalid.
func (r *Registry) RegisterExternal(system CodeSystem) {
	r.mu.Lock()
	if _, ok := r.systems[system.OID]; !ok {
		r.systems[system.OID] = &codeSystemData{system: system}
	}
	r.mu.Unlock()
}

// LoadR4CodeSystem loads an R4 CodeSystem. The system is keyed by its URL
// with any "urn:oid:" prefix and "|version" suffix removed.
func (r *Registry) LoadR4CodeSystem(cs *r4.CodeSystem) error {
	if cs == nil || cs.Url == nil {
		return errors.New("codesystem is nil or has no URL")
	}

	oid := canonicalOID(*cs.Url)
	system := CodeSystem{OID: oid, Name: oid}
	if cs.Name != nil {
		system.Name = *cs.Name
	}
	if cs.Version != nil {
		system.Version = *cs.Version
	}

	codes := make(map[string]string)
	extractConcepts(cs.Concept, codes)
	r.Register(system, codes)
	return nil
}

func extractConcepts(concepts []r4.CodeSystemConcept, codes map[string]string) {
	for i := range concepts {
		concept := &concepts[i]
		if concept.Code == nil {
			continue
		}
		display := ""
		if concept.Display != nil {
			display = *concept.Display
		}
		codes[*concept.Code] = display
		if len(concept.Concept) > 0 {
			extractConcepts(concept.Concept, codes)
		}
	}
}

// LoadJSON loads a CodeSystem resource, or every CodeSystem in a Bundle.
func (r *Registry) LoadJSON(data []byte) (*LoadStats, error) {
	stats := &LoadStats{}

	var envelope struct {
		ResourceType string `json:"resourceType"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, errors.Wrap(err, "invalid JSON")
	}

	switch envelope.ResourceType {
	case "CodeSystem":
		var cs r4.CodeSystem
		if err := json.Unmarshal(data, &cs); err != nil {
			return nil, errors.Wrap(err, "failed to parse CodeSystem")
		}
		if err := r.LoadR4CodeSystem(&cs); err != nil {
			return stats, err
		}
		stats.CodeSystemsLoaded++

	case "Bundle":
		var bundle struct {
			Entry []struct {
				Resource json.RawMessage `json:"resource"`
			} `json:"entry"`
		}
		if err := json.Unmarshal(data, &bundle); err != nil {
			return nil, errors.Wrap(err, "failed to parse Bundle")
		}
		for _, e := range bundle.Entry {
			sub, err := r.LoadJSON(e.Resource)
			if err != nil {
				stats.Skipped++
				continue
			}
			stats.CodeSystemsLoaded += sub.CodeSystemsLoaded
			stats.Skipped += sub.Skipped
		}

	default:
		stats.Skipped++
	}

	return stats, nil
}

// LoadFile loads a JSON file through LoadJSON.
func (r *Registry) LoadFile(path string) (*LoadStats, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	stats, err := r.LoadJSON(data)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	stats.FilesProcessed = 1
	return stats, nil
}

// LoadDirectory loads every *.json file directly inside dir.
func (r *Registry) LoadDirectory(dir string) (*LoadStats, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, errors.Wrapf(err, "list %s", dir)
	}
	sort.Strings(files)

	total := &LoadStats{}
	for _, f := range files {
		stats, err := r.LoadFile(f)
		if err != nil {
			return total, err
		}
		total.FilesProcessed++
		total.CodeSystemsLoaded += stats.CodeSystemsLoaded
		total.Skipped += stats.Skipped
	}
	return total, nil
}

// System returns the code system registered under oid.
func (r *Registry) System(oid string) (CodeSystem, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	data, ok := r.systems[canonicalOID(oid)]
	if !ok {
		return CodeSystem{}, false
	}
	return data.system, true
}

// Lookup returns the display name of code in system.
func (r *Registry) Lookup(system, code string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	data, ok := r.systems[canonicalOID(system)]
	if !ok || data.codes == nil {
		return "", false
	}
	display, ok := data.codes[code]
	return display, ok
}

// ValidateCode checks code, and optionally its display name, against system.
// Display names are compared case-insensitively.
func (r *Registry) ValidateCode(system, code, display string) ValidateCodeResult {
	r.mu.RLock()
	data, ok := r.systems[canonicalOID(system)]
	r.mu.RUnlock()

	if !ok {
		return ValidateCodeResult{Message: "code system " + system + " is not known"}
	}
	if data.codes == nil {
		return ValidateCodeResult{Message: "code system " + data.system.Name + " content is not available"}
	}

	expected, found := data.codes[code]
	if !found {
		return ValidateCodeResult{
			Known:   true,
			Message: "code " + code + " is not in " + data.system.Name,
		}
	}

	result := ValidateCodeResult{Known: true, Valid: true, Display: expected}
	if display != "" && expected != "" && !strings.EqualFold(display, expected) {
		result.Message = "display " + display + " does not match " + expected
	}
	return result
}

// Count returns the number of registered code systems.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.systems)
}

// Systems returns every registered code system ordered by OID.
func (r *Registry) Systems() []CodeSystem {
	r.mu.RLock()
	out := make([]CodeSystem, 0, len(r.systems))
	for _, data := range r.systems {
		out = append(out, data.system)
	}
	r.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].OID < out[j].OID })
	return out
}

// Codes returns the codes of system ordered by code.
func (r *Registry) Codes(system string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	data, ok := r.systems[canonicalOID(system)]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(data.codes))
	for c := range data.codes {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

func canonicalOID(url string) string {
	if idx := strings.LastIndex(url, "|"); idx != -1 {
		url = url[:idx]
	}
	return strings.TrimPrefix(url, "urn:oid:")
}
