package instance

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/vmunix/helmarr/internal/events"
)

// ErrIncomplete is returned when a descriptor is missing fields that gate
// submission, such as the API key.
var ErrIncomplete = errors.New("descriptor is not complete")

// ErrUnconfirmedDelete is returned when Delete is called without a
// confirmation token from RequestDelete.
var ErrUnconfirmedDelete = errors.New("delete requires confirmation")

// Registry is the persistence surface the lifecycle writes through.
type Registry interface {
	Get(ctx context.Context, id int64) (*Instance, error)
	Add(ctx context.Context, inst Instance) (int64, error)
	Update(ctx context.Context, inst Instance) error
	Delete(ctx context.Context, id int64) (selectionChanged bool, selectedID int64, err error)
}

// Publisher emits registry change notifications.
type Publisher interface {
	Publish(ctx context.Context, e events.Event)
}

// createFormID keys the busy flag for the not-yet-persisted create form.
const createFormID = int64(0)

// Lifecycle performs create, update and delete of instance configurations.
// At most one operation runs per instance form at a time; concurrent
// duplicate submissions are dropped with ErrOperationInFlight rather than
// queued. It holds the single current-error slot consumed by presentation.
type Lifecycle struct {
	registry Registry
	prober   *Prober
	bus      Publisher
	log      *slog.Logger

	mu      sync.Mutex
	busy    map[int64]bool
	lastErr *ConnectionError
}

// NewLifecycle creates a lifecycle client.
func NewLifecycle(registry Registry, prober *Prober, bus Publisher, log *slog.Logger) *Lifecycle {
	if log == nil {
		log = slog.Default()
	}
	return &Lifecycle{
		registry: registry,
		prober:   prober,
		bus:      bus,
		log:      log,
		busy:     make(map[int64]bool),
	}
}

// Busy reports whether an operation is in flight for the given form.
// Use zero for the create form.
func (l *Lifecycle) Busy(formID int64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.busy[formID]
}

// CurrentError returns the most recent connection error, or nil. A new
// error replaces the previous one; success clears it.
func (l *Lifecycle) CurrentError() *ConnectionError {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lastErr
}

// DismissError clears the current error without side effects.
func (l *Lifecycle) DismissError() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lastErr = nil
}

// Create validates and probes the descriptor, then registers it. On
// success the returned instance carries its assigned ID.
func (l *Lifecycle) Create(ctx context.Context, inst Instance) (Instance, error) {
	if !l.begin(createFormID) {
		return inst, ErrOperationInFlight
	}
	defer l.end(createFormID)

	cleaned, err := l.prepare(ctx, inst)
	if err != nil {
		return inst, l.fail(err)
	}

	id, err := l.registry.Add(ctx, cleaned)
	if err != nil {
		return inst, l.fail(apiError(err))
	}
	cleaned.ID = id

	l.clearErr()
	l.log.Info("instance created", "id", id, "label", cleaned.Label, "variant", cleaned.Variant)
	l.publish(ctx, events.InstanceCreated{
		BaseEvent: events.NewBaseEvent(events.TypeInstanceCreated, id),
		Label:     cleaned.Label,
		Variant:   string(cleaned.Variant),
	})

	return cleaned, nil
}

// Update validates and probes the descriptor, then rewrites the stored
// record.
func (l *Lifecycle) Update(ctx context.Context, inst Instance) (Instance, error) {
	if !l.begin(inst.ID) {
		return inst, ErrOperationInFlight
	}
	defer l.end(inst.ID)

	cleaned, err := l.prepare(ctx, inst)
	if err != nil {
		return inst, l.fail(err)
	}

	if err := l.registry.Update(ctx, cleaned); err != nil {
		return inst, l.fail(apiError(err))
	}

	l.clearErr()
	l.log.Info("instance updated", "id", cleaned.ID, "label", cleaned.Label)
	l.publish(ctx, events.InstanceUpdated{
		BaseEvent: events.NewBaseEvent(events.TypeInstanceUpdated, cleaned.ID),
		Label:     cleaned.Label,
	})

	return cleaned, nil
}

// DeleteConfirmation is the token produced by RequestDelete. Delete
// refuses to run without one, making removal an explicit two-step flow.
type DeleteConfirmation struct {
	id int64
}

// RequestDelete starts the two-phase delete of an instance.
func (l *Lifecycle) RequestDelete(id int64) DeleteConfirmation {
	return DeleteConfirmation{id: id}
}

// Delete removes a confirmed instance. Irreversible. On failure the
// stored instance is left untouched. When the deleted instance was the
// selected one, a SelectionChanged event follows the deletion event so
// collaborators can reconcile their selection state.
func (l *Lifecycle) Delete(ctx context.Context, conf DeleteConfirmation) error {
	if conf.id == 0 {
		return ErrUnconfirmedDelete
	}

	if !l.begin(conf.id) {
		return ErrOperationInFlight
	}
	defer l.end(conf.id)

	prev, err := l.registry.Get(ctx, conf.id)
	if err != nil {
		return l.fail(apiError(err))
	}

	selectionChanged, selectedID, err := l.registry.Delete(ctx, conf.id)
	if err != nil {
		return l.fail(apiError(err))
	}

	l.clearErr()
	l.log.Info("instance deleted", "id", conf.id, "label", prev.Label)
	l.publish(ctx, events.InstanceDeleted{
		BaseEvent: events.NewBaseEvent(events.TypeInstanceDeleted, conf.id),
		Label:     prev.Label,
	})

	if selectionChanged {
		l.publish(ctx, events.SelectionChanged{
			BaseEvent:  events.NewBaseEvent(events.TypeSelectionChanged, selectedID),
			PreviousID: conf.id,
		})
	}

	return nil
}

// prepare runs local validation and the identity probe. A variant
// mismatch discovered by the probe surfaces as ErrorBadAppName; local
// validation never rejects a correctable variant.
func (l *Lifecycle) prepare(ctx context.Context, inst Instance) (Instance, error) {
	if !CanSubmit(inst) {
		if _, err := Validate(inst); err != nil {
			return inst, err
		}
		return inst, ErrIncomplete
	}

	cleaned, err := Validate(inst)
	if err != nil {
		return inst, err
	}

	detected, err := l.prober.Detect(ctx, cleaned.BaseURL, cleaned.APIKey, cleaned.Timeout(), cleaned.Headers)
	if err != nil {
		return inst, err
	}
	if detected != cleaned.Variant {
		return inst, badAppNameError(detected.AppName())
	}

	return cleaned, nil
}

func (l *Lifecycle) begin(formID int64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.busy[formID] {
		return false
	}
	l.busy[formID] = true
	return true
}

func (l *Lifecycle) end(formID int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.busy, formID)
}

// fail records err in the current-error slot and returns it.
func (l *Lifecycle) fail(err error) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if errors.Is(err, ErrIncomplete) {
		// Incomplete forms are blocked from submission, not surfaced
		// as alerts.
		return err
	}
	l.lastErr = AsConnectionError(err)
	return err
}

func (l *Lifecycle) clearErr() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lastErr = nil
}

func (l *Lifecycle) publish(ctx context.Context, e events.Event) {
	if l.bus != nil {
		l.bus.Publish(ctx, e)
	}
}
