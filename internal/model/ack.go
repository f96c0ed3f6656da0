package model

// Store acknowledgments forwarded verbatim as response bodies. Field names
// mirror the document-store driver results the web clients already consume.

// InsertAck reports a single-document insert.
type InsertAck struct {
	Acknowledged bool        `json:"acknowledged"`
	InsertedID   interface{} `json:"insertedId"`
}

// UpdateAck reports a single-document update.
type UpdateAck struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// DeleteAck reports a single-document delete. Deleting a missing id yields
// DeletedCount 0, not an error.
type DeleteAck struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// PaymentAck extends the insert acknowledgment with the outcome of the
// compensating selection cleanup.
type PaymentAck struct {
	InsertAck
	SelectionRemoved bool `json:"selectionRemoved"`
}
