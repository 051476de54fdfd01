package scheduler

// GetTaskStatusMap returns a copy of the internal task status map.
// This is exported for testing purposes only.
func (s *Scheduler) GetTaskStatusMap() map[string]TaskStatus {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()

	statusMap := make(map[string]TaskStatus, len(s.taskStatus))
	for k, v := range s.taskStatus {
		statusMap[k] = v
	}
	return statusMap
}
