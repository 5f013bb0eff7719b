package style

import (
	"go.uber.org/zap"

	"github.com/go-umbra/umbra/pkg/dom"
)

// isolatedScope owns the single combined sheet inside a shadow root.
type isolatedScope struct {
	shadow *dom.ShadowRoot
	node   *dom.Element
}

func (s *isolatedScope) Mode() Mode {
	return ModeIsolated
}

// Release removes the sheet from the shadow root. The subtree itself is
// reused across activations, so the sheet must not be left behind.
func (s *isolatedScope) Release() {
	if s.node == nil {
		return
	}
	s.shadow.RemoveStyle(s.node)
	s.node = nil
}

// sharedScope records what one shared-mode activation injected: whether it
// holds a reference on the (root, tag) type sheet, and its dedicated
// instance sheet if any.
type sharedScope struct {
	manager *Manager
	root    dom.Root
	tag     string
	host    *dom.Element

	counted      bool
	marker       string
	instanceNode *dom.Element
}

func (s *sharedScope) Mode() Mode {
	return ModeShared
}

// Release drops the reference on the shared type sheet, removing sheet and
// registry entry when the count reaches zero, and unconditionally removes
// the instance sheet. The count change and node removal happen together so
// the registry invariant holds at every step.
func (s *sharedScope) Release() {
	if s.counted {
		s.counted = false
		if entry := s.manager.refs[s.root][s.tag]; entry != nil {
			entry.count--
			if entry.count <= 0 {
				s.root.RemoveStyle(entry.node)
				delete(s.manager.refs[s.root], s.tag)
				if len(s.manager.refs[s.root]) == 0 {
					delete(s.manager.refs, s.root)
				}
			}
			Logger().Debug("shared type sheet released",
				zap.String("tag", s.tag),
				zap.Int("refcount", s.manager.SharedCount(s.root, s.tag)))
		}
	}

	if s.instanceNode != nil {
		s.root.RemoveStyle(s.instanceNode)
		s.instanceNode = nil
		s.host.RemoveAttr(s.marker)
	}
}
