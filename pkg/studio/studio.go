package studio

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"renderdeck/pkg/client"
	"renderdeck/pkg/fields"
	"renderdeck/pkg/logging"
	"renderdeck/pkg/present"
	"renderdeck/pkg/request"
	"renderdeck/pkg/statemonitor"
	"renderdeck/pkg/types"
)

// State is the phase of the current submission cycle.
type State int

const (
	Idle State = iota
	Validating
	Submitting
	Awaiting
	Displaying
	ReportingError
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Validating:
		return "Validating"
	case Submitting:
		return "Submitting"
	case Awaiting:
		return "Awaiting"
	case Displaying:
		return "Displaying"
	case ReportingError:
		return "ReportingError"
	default:
		return "Unknown"
	}
}

// ErrBusy is returned when a submission arrives while one is in flight.
// The trigger is dropped, not queued.
var ErrBusy = fmt.Errorf("a render submission is already in flight")

// Studio owns the per-session application state: the scenario catalog, the
// current selection, the presentation sink and the submission state machine.
// All state lives here rather than in ad hoc UI lookups; the UI only reads.
type Studio struct {
	mu       sync.Mutex
	state    State
	catalog  []string
	selected int
	dropped  int

	client *client.Client
	sink   *present.Sink
	notify func()

	inflight sync.WaitGroup
}

func New(c *client.Client, sink *present.Sink) *Studio {
	return &Studio{
		client:   c,
		sink:     sink,
		selected: -1,
	}
}

// SetNotify registers a hook invoked after every state change, so a UI can
// redraw. May be left unset.
func (st *Studio) SetNotify(fn func()) {
	st.mu.Lock()
	st.notify = fn
	st.mu.Unlock()
}

func (st *Studio) State() State {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.state
}

// Catalog returns the scenario identifiers in server order.
func (st *Studio) Catalog() []string {
	st.mu.Lock()
	defer st.mu.Unlock()
	return append([]string(nil), st.catalog...)
}

// SelectedScenario returns the identifier the next submission will target.
func (st *Studio) SelectedScenario() (string, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.selected < 0 || st.selected >= len(st.catalog) {
		return "", false
	}
	return st.catalog[st.selected], true
}

// CycleScenario advances the selection to the next catalog entry.
func (st *Studio) CycleScenario() {
	st.mu.Lock()
	if len(st.catalog) > 0 {
		st.selected = (st.selected + 1) % len(st.catalog)
	}
	st.mu.Unlock()
	st.signal()
}

// DroppedTriggers reports how many submissions were ignored because one was
// already in flight.
func (st *Studio) DroppedTriggers() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.dropped
}

// LoadCatalog fetches the scenario list. Called once at startup. On failure
// the catalog stays empty (never partially populated) and the error goes to
// the diagnostic channel; the session remains usable, just not submittable.
func (st *Studio) LoadCatalog() error {
	values, err := st.client.FetchCatalog()
	if err != nil {
		logging.LogDiagnostic("catalog", err.Error())
		st.mu.Lock()
		st.catalog = nil
		st.selected = -1
		st.mu.Unlock()
		st.signal()
		return err
	}

	st.mu.Lock()
	st.catalog = values
	if len(values) > 0 {
		st.selected = 0
	} else {
		st.selected = -1
	}
	st.mu.Unlock()
	st.signal()
	return nil
}

// Submit runs one submission cycle. Validation and payload assembly happen
// synchronously; a parse or build failure aborts before anything reaches
// the network and is returned to the caller for display. The network leg
// runs in a goroutine so the caller's event loop stays responsive; its
// outcome lands in the sink.
func (st *Studio) Submit(form fields.Form) error {
	st.mu.Lock()
	if st.state != Idle {
		st.dropped++
		st.mu.Unlock()
		return ErrBusy
	}
	st.state = Validating
	st.mu.Unlock()
	st.signal()

	vals, err := fields.ReadForm(form)
	if err != nil {
		st.toIdle()
		return err
	}
	req, err := request.Build(vals)
	if err != nil {
		st.toIdle()
		return err
	}
	scenario, ok := st.SelectedScenario()
	if !ok {
		st.toIdle()
		return fmt.Errorf("no scenario selected; catalog is empty")
	}

	st.setState(Submitting)
	st.inflight.Add(1)
	go st.run(scenario, req)
	return nil
}

// run is the asynchronous leg of one cycle: Send -> Await -> Present.
func (st *Studio) run(scenario string, req types.RenderRequest) {
	defer st.inflight.Done()

	id := uuid.NewString()
	start := time.Now()

	st.setState(Awaiting)
	res := st.client.SubmitRender(scenario, req)
	st.sink.Consume(res)

	rec := &logging.SubmissionRecord{
		ID:         id,
		Scenario:   scenario,
		DurationMS: time.Since(start).Milliseconds(),
	}
	if res.Failed() {
		st.setState(ReportingError)
		rec.State = ReportingError.String()
		rec.Message = res.Err
	} else {
		st.setState(Displaying)
		rec.State = Displaying.String()
	}
	if snap, err := statemonitor.GetSnapshot(); err == nil {
		rec.CPUUsage = snap.CPUUsage
		rec.MemoryUsage = snap.MemoryUsage
	}
	logging.LogSubmission(rec)

	st.toIdle()
}

// Wait blocks until any in-flight submission has finished. Used at shutdown
// and by tests.
func (st *Studio) Wait() {
	st.inflight.Wait()
}

func (st *Studio) setState(s State) {
	st.mu.Lock()
	st.state = s
	st.mu.Unlock()
	st.signal()
}

func (st *Studio) toIdle() {
	st.setState(Idle)
}

func (st *Studio) signal() {
	st.mu.Lock()
	fn := st.notify
	st.mu.Unlock()
	if fn != nil {
		fn()
	}
}
