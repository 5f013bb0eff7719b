package component

import (
	"go.uber.org/zap"

	"github.com/go-umbra/umbra/pkg/dom"
	"github.com/go-umbra/umbra/pkg/style"
)

// Instance is one upgraded component. It moves between activated and
// deactivated as its host enters and leaves the connected tree; the same
// instance survives arbitrarily many attach/detach cycles.
type Instance struct {
	id       uint64
	def      *Definition
	registry *Registry
	host     *dom.Element

	// target is the resolved render target; targetSet marks an explicit
	// override installed before activation.
	target    dom.Container
	targetSet bool

	active bool
	mode   style.Mode
	// root is the ancestor root captured at activation and reused at
	// deactivation. Reparenting an activated instance under a different
	// root leaves this stale; cleanup then targets the old root.
	root    dom.Root
	scope   style.Scope
	dispose Disposer
}

// ID returns the process-unique instance id.
func (in *Instance) ID() uint64 {
	return in.id
}

// Host returns the element the instance was upgraded onto.
func (in *Instance) Host() *dom.Element {
	return in.host
}

// Mode returns the style mode selected at the last activation.
func (in *Instance) Mode() style.Mode {
	return in.mode
}

// Active reports whether the instance is currently activated.
func (in *Instance) Active() bool {
	return in.active
}

// SetRenderTarget overrides where the instance renders. It takes effect at
// the next activation.
func (in *Instance) SetRenderTarget(target dom.Container) {
	in.target = target
	in.targetSet = true
}

// Adopt invokes the definition's adoption hook. Hosts signal it when the
// element moves to another document; there is no default behavior.
func (in *Instance) Adopt() {
	if in.def.Adopted != nil {
		in.def.Adopted(in)
	}
}

// connected activates the instance: resolve the render target, activate
// styles for the resulting mode, then render. Renderer panics propagate.
func (in *Instance) connected() {
	if in.active {
		return
	}
	in.active = true

	if !in.targetSet {
		if in.def.LightDOM {
			in.target = in.host
		} else {
			in.target = in.host.AttachShadow()
		}
	}
	if _, isShadow := in.target.(*dom.ShadowRoot); isShadow {
		in.mode = style.ModeIsolated
	} else {
		in.mode = style.ModeShared
	}
	in.root = in.host.NearestRoot()

	activation := style.Activation{
		Tag:     in.host.Tag(),
		ID:      in.id,
		Host:    in.host,
		Target:  in.target,
		Root:    in.root,
		TypeCSS: in.def.typeCSSSource(),
	}
	if in.def.InstanceStyles != nil {
		activation.InstanceCSS = func() string { return in.def.InstanceStyles(in) }
	}
	in.scope = in.registry.styles.Activate(activation)

	if producer := in.producer(); producer != nil && in.registry.renderer != nil {
		in.dispose = in.registry.renderer(producer, in.target)
	}

	Logger().Debug("instance activated",
		zap.String("tag", in.host.Tag()),
		zap.Uint64("id", in.id),
		zap.Stringer("mode", in.mode))
}

// disconnected deactivates the instance: run the disposer exactly once, then
// release styles against the root captured at activation.
func (in *Instance) disconnected() {
	if !in.active {
		return
	}
	in.active = false

	if in.dispose != nil {
		dispose := in.dispose
		in.dispose = nil
		dispose()
	}
	if in.scope != nil {
		in.scope.Release()
		in.scope = nil
	}

	Logger().Debug("instance deactivated",
		zap.String("tag", in.host.Tag()),
		zap.Uint64("id", in.id))
}

// producer resolves the definition's template for this instance.
func (in *Instance) producer() any {
	switch t := in.def.Template.(type) {
	case nil:
		return nil
	case func(*Instance) any:
		return t(in)
	default:
		return t
	}
}
