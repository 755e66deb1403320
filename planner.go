package inlay

import (
	"errors"
	"fmt"
	"sync"

	"github.com/tsawler/inlay/calibration"
	"github.com/tsawler/inlay/model"
	"github.com/tsawler/inlay/placement"
	"github.com/tsawler/inlay/validate"
)

// PageInput is one page of work for the planner: the page's physical
// dimensions and its validated-or-not detector output.
type PageInput struct {
	// Number is the 1-indexed page number, used in warnings, results
	// and explicit mappings. Numbering must start at 1: page 0 is
	// reserved for run-level warnings.
	Number int

	Page         model.Page
	Placeholders []model.PlaceholderRegion
}

// PageResult is the outcome for one page. Err is set when the page
// failed (blocking validation or assignment error); sibling pages are
// unaffected and the caller decides whether to continue the batch.
type PageResult struct {
	Number     int
	Report     validate.Report
	Placements []model.PlacementTransform
	Calibrated bool
	Err        error
}

// ValidationError reports that a page failed blocking validation and
// was not resolved. The full report is attached so the source data
// can be fixed in one pass.
type ValidationError struct {
	Report validate.Report
}

func (e *ValidationError) Error() string {
	blocking := e.Report.Blocking()
	if len(blocking) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("validation failed: %d blocking violation(s), first: %s",
		len(blocking), blocking[0].Message)
}

// Planner provides a fluent interface for planning a render run.
// Each configuration method returns a new Planner instance, making it
// safe to fork a partially configured planner.
type Planner struct {
	pages  []PageInput
	images []model.ImageAsset

	policy          model.ScalingPolicy
	validatorConfig validate.Config
	resolverConfig  placement.Config
	mappings        []placement.Mapping

	store     calibration.Store
	printerID string
	paperType string
	profile   *calibration.Profile

	workers int

	// Accumulated error (fail-fast)
	err error
}

// Plan starts a planner over the given pages with default
// configuration: fill policy, 300 DPI, automatic assignment, no
// calibration, sequential execution.
func Plan(pages ...PageInput) *Planner {
	return &Planner{
		pages:           append([]PageInput(nil), pages...),
		policy:          model.PolicyFill,
		validatorConfig: validate.DefaultConfig(),
		resolverConfig:  placement.DefaultConfig(),
		workers:         1,
	}
}

// clone creates a copy of the Planner so chain methods never mutate
// their receiver.
func (p *Planner) clone() *Planner {
	newPlanner := *p
	newPlanner.pages = append([]PageInput(nil), p.pages...)
	newPlanner.images = append([]model.ImageAsset(nil), p.images...)
	newPlanner.mappings = append([]placement.Mapping(nil), p.mappings...)
	return &newPlanner
}

// Images sets the image assets available for placement
func (p *Planner) Images(assets []model.ImageAsset) *Planner {
	newPlanner := p.clone()
	newPlanner.images = append([]model.ImageAsset(nil), assets...)
	return newPlanner
}

// Policy sets the scaling policy for every placement of the run
func (p *Planner) Policy(policy model.ScalingPolicy) *Planner {
	newPlanner := p.clone()
	newPlanner.policy = policy
	return newPlanner
}

// PrintDPI sets the target print resolution
func (p *Planner) PrintDPI(dpi float64) *Planner {
	newPlanner := p.clone()
	if dpi <= 0 {
		newPlanner.err = fmt.Errorf("print DPI must be positive, got %v", dpi)
		return newPlanner
	}
	newPlanner.resolverConfig.PrintDPI = dpi
	return newPlanner
}

// ValidatorConfig overrides the validation thresholds
func (p *Planner) ValidatorConfig(config validate.Config) *Planner {
	newPlanner := p.clone()
	newPlanner.validatorConfig = config
	return newPlanner
}

// ExplicitMapping switches assignment from automatic to the given
// exact (page, placeholder, image) pairings. Each page receives only
// the mappings addressed to its number, plus any with Page 0, which
// apply everywhere. A mapping referencing an id not present on its
// page fails that page only.
func (p *Planner) ExplicitMapping(mappings ...placement.Mapping) *Planner {
	newPlanner := p.clone()
	newPlanner.mappings = append([]placement.Mapping(nil), mappings...)
	return newPlanner
}

// Calibrate looks up the calibration profile for the printer/paper
// key in the store when the run starts. A missing profile downgrades
// to an observable warning, not an error.
func (p *Planner) Calibrate(store calibration.Store, printerID, paperType string) *Planner {
	newPlanner := p.clone()
	newPlanner.store = store
	newPlanner.printerID = printerID
	newPlanner.paperType = paperType
	newPlanner.profile = nil
	return newPlanner
}

// CalibrateWith applies an already-loaded calibration profile.
func (p *Planner) CalibrateWith(profile calibration.Profile) *Planner {
	newPlanner := p.clone()
	newPlanner.profile = &profile
	newPlanner.store = nil
	return newPlanner
}

// Parallel sets the number of pages processed concurrently. Pages are
// independent, so any worker count produces identical output;
// results and warnings always come back in page order.
func (p *Planner) Parallel(workers int) *Planner {
	newPlanner := p.clone()
	if workers < 1 {
		workers = 1
	}
	newPlanner.workers = workers
	return newPlanner
}

// Run executes the plan: per page, validate, resolve placements, and
// apply calibration. The returned results are in input page order.
// Run fails only for run-level problems (bad configuration, an
// unreadable calibration store); per-page failures are reported in
// each page's PageResult.
func (p *Planner) Run() ([]PageResult, []Warning, error) {
	if p.err != nil {
		return nil, nil, p.err
	}

	var runWarnings []Warning
	profile := p.profile
	if profile == nil && p.store != nil {
		loaded, err := p.store.Load(p.printerID, p.paperType)
		switch {
		case errors.Is(err, calibration.ErrProfileNotFound):
			runWarnings = append(runWarnings, Warning{
				Code: WarnCalibrationAbsent,
				Message: fmt.Sprintf("no calibration profile for %s/%s; placements are uncalibrated",
					p.printerID, p.paperType),
			})
		case err != nil:
			return nil, nil, err
		default:
			profile = &loaded
		}
	}

	validator := validate.NewWithConfig(p.validatorConfig)

	results := make([]PageResult, len(p.pages))
	pageWarnings := make([][]Warning, len(p.pages))

	indexes := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < p.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				results[i], pageWarnings[i] = p.runPage(validator, profile, p.pages[i])
			}
		}()
	}
	for i := range p.pages {
		indexes <- i
	}
	close(indexes)
	wg.Wait()

	warnings := runWarnings
	for _, ws := range pageWarnings {
		warnings = append(warnings, ws...)
	}

	return results, warnings, nil
}

// resolverFor builds the resolver for one page: automatic assignment
// unless explicit mappings were configured, in which case only the
// mappings addressed to this page apply.
func (p *Planner) resolverFor(page int) *placement.Resolver {
	if p.mappings == nil {
		return placement.NewResolverWithConfig(nil, p.resolverConfig)
	}
	assigner := placement.NewExplicitAssigner(placement.MappingsForPage(p.mappings, page))
	return placement.NewResolverWithConfig(assigner, p.resolverConfig)
}

// runPage processes a single page. Failures stay scoped to the page.
func (p *Planner) runPage(validator *validate.Validator, profile *calibration.Profile, in PageInput) (PageResult, []Warning) {
	result := PageResult{Number: in.Number}
	var warnings []Warning

	result.Report = validator.Validate(in.Page, in.Placeholders)
	for _, v := range result.Report.Warnings() {
		warnings = append(warnings, Warning{Page: in.Number, Code: string(v.Code), Message: v.Message})
	}
	if !result.Report.Passed {
		result.Err = &ValidationError{Report: result.Report}
		return result, warnings
	}

	resolved, err := p.resolverFor(in.Number).Resolve(in.Page, in.Placeholders, p.images, p.policy)
	if err != nil {
		result.Err = err
		return result, warnings
	}
	for _, w := range resolved.Warnings {
		warnings = append(warnings, Warning{Page: in.Number, Code: w.Code, Message: w.Message})
	}

	calibrated, err := calibration.Apply(resolved.Placements, profile)
	if err != nil {
		result.Err = err
		return result, warnings
	}

	result.Placements = calibrated.Placements
	result.Calibrated = calibrated.Calibrated
	return result, warnings
}
