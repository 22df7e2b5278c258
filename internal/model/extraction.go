package model

// EquipmentInstance is one identified piece of process hardware. The id is a
// short token assigned by the extractor (E1, E2, ...), unique within one result
// by prompt instruction only.
type EquipmentInstance struct {
	ID   string        `json:"id"`
	Type EquipmentType `json:"type"`
}

// Connection links two equipment instances. Endpoint types are denormalized
// copies of the instance types; no cross-validation is performed against the
// equipment list.
type Connection struct {
	FromID   string        `json:"from_id"`
	FromType EquipmentType `json:"from_type"`
	ToID     string        `json:"to_id"`
	ToType   EquipmentType `json:"to_type"`
}

// ExtractionResult is the full structured output of one diagram analysis.
// It lives for a single request/render cycle and is never persisted as a record.
type ExtractionResult struct {
	Equipment   []EquipmentInstance `json:"equipment"`
	Connections []Connection        `json:"connections"`
}

// Normalize collapses unrecognized categories to Other and replaces nil slices
// with empty ones so an empty extraction still renders.
func (r *ExtractionResult) Normalize() {
	if r.Equipment == nil {
		r.Equipment = []EquipmentInstance{}
	}
	if r.Connections == nil {
		r.Connections = []Connection{}
	}
	for i := range r.Equipment {
		r.Equipment[i].Type = ParseEquipmentType(string(r.Equipment[i].Type))
	}
	for i := range r.Connections {
		r.Connections[i].FromType = ParseEquipmentType(string(r.Connections[i].FromType))
		r.Connections[i].ToType = ParseEquipmentType(string(r.Connections[i].ToType))
	}
}
