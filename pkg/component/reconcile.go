package component

import "go.uber.org/zap"

// reconcile migrates plain property values assigned to the host before its
// accessors existed. For every property named by the definition's attribute
// mapping that holds a plain own value, the value is removed and its
// re-assignment deferred, so that by flush time it routes through whichever
// accessor Init installed instead of shadowing it.
//
// Properties without a pre-existing value are seeded from the mapped
// attribute when it is present on the host, run through the spec's coercion.
//
// It runs exactly once, during upgrade. The deferred timing matters: the
// flush must land after all synchronous initialization of the upgrade
// sequence, or a later initializer would overwrite the reconciled value.
// Deactivation does not cancel a pending flush.
func reconcile(in *Instance) {
	if in.def.Attributes == nil {
		return
	}
	mapping := in.def.Attributes()
	if len(mapping) == 0 {
		return
	}

	host := in.host
	for attr, spec := range mapping {
		name := spec.Prop
		if name == "" {
			continue
		}
		if value, ok := host.OwnProp(name); ok {
			host.RemoveOwnProp(name)
			in.registry.sched.Defer(func() {
				host.SetProp(name, value)
			})
			Logger().Debug("property reconciliation scheduled",
				zap.String("tag", host.Tag()),
				zap.Uint64("id", in.id),
				zap.String("prop", name))
			continue
		}
		if raw, ok := host.Attr(attr); ok {
			var value any = raw
			if spec.Coerce != nil {
				value = spec.Coerce(raw)
			}
			in.registry.sched.Defer(func() {
				host.SetProp(name, value)
			})
		}
	}
}
