package session

// Apply performs an optimistic update: target is mutated immediately, then
// commit runs the remote call. If commit fails the previous value is
// restored and the error returned, mirroring how the dashboard reverts a
// roster row when a role change is rejected.
func Apply[T any](target *T, update func(*T), commit func() error) error {
	snapshot := *target
	update(target)
	if err := commit(); err != nil {
		*target = snapshot
		return err
	}
	return nil
}
