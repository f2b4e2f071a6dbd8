package domain

// IngestStats counts AddStory outcomes seen by an intake worker pool.
type IngestStats struct {
	New       int64
	Duplicate int64
	Rejected  int64
	Failed    int64
	Published int64
}

func (s IngestStats) Total() int64 {
	return s.New + s.Duplicate + s.Rejected + s.Failed
}

// Sub returns the counter change from prev to s.
func (s IngestStats) Sub(prev IngestStats) IngestStats {
	return IngestStats{
		New:       s.New - prev.New,
		Duplicate: s.Duplicate - prev.Duplicate,
		Rejected:  s.Rejected - prev.Rejected,
		Failed:    s.Failed - prev.Failed,
		Published: s.Published - prev.Published,
	}
}
