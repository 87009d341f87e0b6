package entities

// ReconcileResult reports the outcome of a list membership change across
// a batch of records. Found and NotFound partition the requested IDs
// (after de-duplication); TotalRequested counts the IDs as requested,
// duplicates included. Ordering of Found follows discovery order, not
// request order, and is not a guaranteed contract.
type ReconcileResult struct {
	Found          []string
	NotFound       []string
	Updated        []Record
	TotalRequested int
}
