package entity

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"creaglass/internal/errors"

	"github.com/oklog/ulid/v2"
)

// Collection identifies a watched table of the backend store.
type Collection string

const (
	CollectionDocuments             Collection = "documents"
	CollectionInventoryItems        Collection = "inventory_items"
	CollectionInventoryGroups       Collection = "inventory_groups"
	CollectionNotifications         Collection = "notifications"
	CollectionProductions           Collection = "productions"
	CollectionProductionItems       Collection = "production_items"
	CollectionEvents                Collection = "events"
	CollectionUsers                 Collection = "users"
	CollectionBloodPriorityMessages Collection = "blood_priority_messages"
	CollectionBloodPriorityReads    Collection = "blood_priority_reads"
)

// WatchedCollections is the fixed set a realtime session subscribes to, one handle each.
func WatchedCollections() []Collection {
	return []Collection{
		CollectionDocuments,
		CollectionInventoryItems,
		CollectionInventoryGroups,
		CollectionNotifications,
		CollectionProductions,
		CollectionProductionItems,
		CollectionEvents,
		CollectionUsers,
		CollectionBloodPriorityMessages,
		CollectionBloodPriorityReads,
	}
}

// ChangeKind is the kind of row mutation, spelled as the backend sends it.
type ChangeKind string

const (
	ChangeInsert ChangeKind = "INSERT"
	ChangeUpdate ChangeKind = "UPDATE"
	ChangeDelete ChangeKind = "DELETE"
)

// Valid reports whether k is one of the known kinds.
func (k ChangeKind) Valid() bool {
	switch k {
	case ChangeInsert, ChangeUpdate, ChangeDelete:
		return true
	default:
		return false
	}
}

// ErrMalformedEvent is returned when a change payload cannot be decoded.
var ErrMalformedEvent = errors.New("malformed change event")

// Record is a row image carried by a change event.
type Record map[string]any

// Has reports whether field is present and non-null.
func (r Record) Has(field string) bool {
	if r == nil {
		return false
	}
	v, ok := r[field]

	return ok && v != nil
}

// String returns field as a string. Numbers are formatted, missing or null fields yield ok=false.
func (r Record) String(field string) (string, bool) {
	if !r.Has(field) {
		return "", false
	}

	switch v := r[field].(type) {
	case string:
		return v, true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case json.Number:
		return v.String(), true
	case bool:
		return strconv.FormatBool(v), true
	default:
		return "", false
	}
}

// Float returns field as a number, accepting numeric strings.
func (r Record) Float(field string) (float64, bool) {
	if !r.Has(field) {
		return 0, false
	}

	switch v := r[field].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()

		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)

		return f, err == nil
	default:
		return 0, false
	}
}

// ChangeEvent is one row mutation delivered by the change feed.
type ChangeEvent struct {
	ID              string     `json:"id"`
	Collection      Collection `json:"collection"`
	Kind            ChangeKind `json:"kind"`
	Before          Record     `json:"before,omitempty"`
	After           Record     `json:"after,omitempty"`
	CommitTimestamp time.Time  `json:"commitTimestamp"`
	ReceivedAt      time.Time  `json:"receivedAt"`
	RequestID       string     `json:"requestId,omitempty"`
}

// NewChangeEvent builds an event with a fresh sortable id.
func NewChangeEvent(collection Collection, kind ChangeKind, before, after Record) *ChangeEvent {
	now := time.Now().UTC()

	return &ChangeEvent{
		ID:              ulid.Make().String(),
		Collection:      collection,
		Kind:            kind,
		Before:          before,
		After:           after,
		CommitTimestamp: now,
		ReceivedAt:      now,
	}
}

// Validate checks the structural rules of a change event.
func (e *ChangeEvent) Validate() error {
	if e == nil {
		return errors.WithMessage(ErrMalformedEvent, "nil event")
	}
	if e.Collection == "" {
		return errors.WithMessage(ErrMalformedEvent, "missing collection")
	}
	if !e.Kind.Valid() {
		return errors.WithMessage(ErrMalformedEvent, "unknown kind "+string(e.Kind))
	}
	if e.Kind == ChangeInsert && e.After == nil {
		return errors.WithMessage(ErrMalformedEvent, "insert without after image")
	}
	if e.Kind == ChangeDelete && e.Before == nil {
		return errors.WithMessage(ErrMalformedEvent, "delete without before image")
	}

	return nil
}

// WireChange is the envelope the backend emits for a row change.
type WireChange struct {
	Schema          string `json:"schema"`
	Table           string `json:"table"`
	Type            string `json:"type"`
	Record          Record `json:"record"`
	OldRecord       Record `json:"old_record"`
	CommitTimestamp string `json:"commit_timestamp,omitempty"`
	RequestID       string `json:"request_id,omitempty"`
}

// DecodeWireChange parses a backend envelope into a validated ChangeEvent.
func DecodeWireChange(data []byte) (*ChangeEvent, error) {
	var wire WireChange
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, errors.Wrap(ErrMalformedEvent, err.Error())
	}

	return wire.ToChangeEvent()
}

// ToChangeEvent converts the envelope. Empty row images are treated as absent.
func (w *WireChange) ToChangeEvent() (*ChangeEvent, error) {
	event := &ChangeEvent{
		ID:         ulid.Make().String(),
		Collection: Collection(w.Table),
		Kind:       ChangeKind(strings.ToUpper(w.Type)),
		ReceivedAt: time.Now().UTC(),
		RequestID:  w.RequestID,
	}
	if len(w.Record) > 0 {
		event.After = w.Record
	}
	if len(w.OldRecord) > 0 {
		event.Before = w.OldRecord
	}

	event.CommitTimestamp = event.ReceivedAt
	if w.CommitTimestamp != "" {
		if ts, err := time.Parse(time.RFC3339Nano, w.CommitTimestamp); err == nil {
			event.CommitTimestamp = ts
		}
	}

	if err := event.Validate(); err != nil {
		return nil, err
	}

	return event, nil
}

// ToWire converts the event back into the backend envelope.
func (e *ChangeEvent) ToWire() *WireChange {
	return &WireChange{
		Schema:          "public",
		Table:           string(e.Collection),
		Type:            string(e.Kind),
		Record:          e.After,
		OldRecord:       e.Before,
		CommitTimestamp: e.CommitTimestamp.UTC().Format(time.RFC3339Nano),
		RequestID:       e.RequestID,
	}
}
