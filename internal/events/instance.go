package events

// Event type names for instance registry changes.
const (
	TypeInstanceCreated  = "instance.created"
	TypeInstanceUpdated  = "instance.updated"
	TypeInstanceDeleted  = "instance.deleted"
	TypeSelectionChanged = "instance.selection_changed"
)

// InstanceCreated is emitted when the registry accepts a new instance.
type InstanceCreated struct {
	BaseEvent
	Label   string `json:"label"`
	Variant string `json:"variant"`
}

// InstanceUpdated is emitted when a stored instance is modified.
type InstanceUpdated struct {
	BaseEvent
	Label string `json:"label"`
}

// InstanceDeleted is emitted when an instance is removed.
type InstanceDeleted struct {
	BaseEvent
	Label string `json:"label"`
}

// SelectionChanged is emitted when the selected instance changes,
// including the fallback after deleting the selected instance.
// ID is the newly selected instance, or zero for empty selection.
type SelectionChanged struct {
	BaseEvent
	PreviousID int64 `json:"previous_id"`
}
