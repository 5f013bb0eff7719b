package component

import "sync/atomic"

// instanceIDs issues process-wide unique instance ids. Ids seed the style
// marker attributes, so they must never repeat within a process.
var instanceIDs atomic.Uint64

func nextInstanceID() uint64 {
	return instanceIDs.Add(1)
}
