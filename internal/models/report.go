package models

// IndexReport summarizes one reindex run. Partial failures never abort a run;
// they are accounted here instead.
type IndexReport struct {
	Indexed        int      `json:"indexed"`
	Skipped        int      `json:"skipped"`
	Errors         []string `json:"errors"`
	TotalChunks    int      `json:"total_chunks"`
	AvgChunksPerDoc float64 `json:"avg_chunks_per_doc"`
}

// DeleteReport describes the outcome of deleting one document and its
// indexed chunks. Partial success (blob gone, some chunks left) is reported
// distinctly from total failure.
type DeleteReport struct {
	Key            string   `json:"key"`
	BlobDeleted    bool     `json:"blob_deleted"`
	ChunksFound    int      `json:"chunks_found"`
	ChunksDeleted  int      `json:"chunks_deleted"`
	DeletionErrors []string `json:"deletion_errors,omitempty"`
	Success        bool     `json:"success"`
	Message        string   `json:"message"`
}

// BatchDeleteReport aggregates per-key deletion reports.
type BatchDeleteReport struct {
	TotalRequested int             `json:"total_requested"`
	Deleted        int             `json:"deleted"`
	Failed         int             `json:"failed"`
	Details        []*DeleteReport `json:"details"`
}
