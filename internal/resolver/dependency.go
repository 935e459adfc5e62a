package resolver

// recordDependency adds name to the DependencySet of whichever entity is
// currently being resolved. The list is deduplicated while preserving
// first-occurrence order — that dedup/order-preservation itself lives in
// asr.DependencySet.Add; this just routes a discovered reference to the
// right accumulator. A nil current-entity accumulator (the root
// translation-unit scope, which owns no DependencySet) silently drops the
// record.
func (w *walker) recordDependency(name string) {
	if w.deps != nil {
		w.deps.Add(name)
	}
}
