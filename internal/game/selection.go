package game

// SelectionRequest asks the player to pick one item out of a list, e.g.
// which food to eat. It is part of the session flow state and survives
// save/load so an in-flight prompt reappears after restore.
type SelectionRequest struct {
	SelectionType ItemType
	Items         []Item
	Title         string
	// AllowZero permits choosing nothing (cancel / unequip).
	AllowZero bool
}

// SelectionDoc is the persisted form of a pending selection.
type SelectionDoc struct {
	Type      ItemType  `json:"type"`
	Items     []ItemDoc `json:"items"`
	Title     string    `json:"title"`
	AllowZero bool      `json:"allow_zero"`
}

// EncodeSelection converts a pending selection to its persisted form.
// A nil request encodes to nil.
func EncodeSelection(r *SelectionRequest) *SelectionDoc {
	if r == nil {
		return nil
	}
	doc := &SelectionDoc{
		Type:      r.SelectionType,
		Items:     make([]ItemDoc, 0, len(r.Items)),
		Title:     r.Title,
		AllowZero: r.AllowZero,
	}
	for _, item := range r.Items {
		doc.Items = append(doc.Items, EncodeItem(item))
	}
	return doc
}

// DecodeSelection reconstructs a pending selection, or nil for a nil
// document. Items that no longer decode are dropped rather than
// failing the whole restore.
func DecodeSelection(doc *SelectionDoc) *SelectionRequest {
	if doc == nil {
		return nil
	}
	r := &SelectionRequest{
		SelectionType: doc.Type,
		Title:         doc.Title,
		AllowZero:     doc.AllowZero,
	}
	for _, d := range doc.Items {
		item, err := DecodeItem(d)
		if err != nil {
			continue
		}
		r.Items = append(r.Items, item)
	}
	return r
}
