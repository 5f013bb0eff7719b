package component

import (
	stderrors "errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/go-umbra/umbra/pkg/dom"
	"github.com/go-umbra/umbra/pkg/errors"
	"github.com/go-umbra/umbra/pkg/scheduler"
	"github.com/go-umbra/umbra/pkg/style"
)

// ErrUpgradeUnsupported is returned when the document cannot upgrade
// elements into components. Nothing in this package can function without
// that capability.
var ErrUpgradeUnsupported = stderrors.New("document does not support element upgrades")

// ErrDuplicateTag is returned when a tag is defined twice on one registry.
var ErrDuplicateTag = stderrors.New("tag already defined")

// ErrInvalidTag is returned for tags that are not valid component names.
var ErrInvalidTag = stderrors.New("invalid component tag")

// Option configures a Registry.
type Option func(*Registry)

// WithRenderer sets the renderer invoked for definitions that declare a
// template. Without a renderer, templates are skipped.
func WithRenderer(r Renderer) Option {
	return func(reg *Registry) { reg.renderer = r }
}

// WithScheduler sets the deferred-callback queue used for property
// reconciliation. By default each registry owns a fresh queue.
func WithScheduler(q *scheduler.Queue) Option {
	return func(reg *Registry) { reg.sched = q }
}

// Registry binds component definitions to a document and upgrades matching
// elements into instances. One registry drives one document.
type Registry struct {
	doc      *dom.Document
	defs     map[string]*Definition
	live     map[*dom.Element]*Instance
	styles   *style.Manager
	sched    *scheduler.Queue
	renderer Renderer
}

// NewRegistry creates a registry for doc and installs its upgrader. It
// fails with ErrUpgradeUnsupported when the document lacks upgrade support.
func NewRegistry(doc *dom.Document, opts ...Option) (*Registry, error) {
	if !doc.SupportsUpgrade() {
		return nil, &errors.UmbraError{
			Op:   "component.NewRegistry",
			Kind: errors.KindInit,
			Err:  ErrUpgradeUnsupported,
		}
	}
	reg := &Registry{
		doc:    doc,
		defs:   make(map[string]*Definition),
		live:   make(map[*dom.Element]*Instance),
		styles: style.NewManager(),
	}
	for _, opt := range opts {
		opt(reg)
	}
	if reg.sched == nil {
		reg.sched = scheduler.New()
	}
	doc.SetUpgrader(reg.upgrade)
	return reg, nil
}

// MustNewRegistry is like NewRegistry but panics on error. Use it at startup
// where a registry is a hard requirement.
func MustNewRegistry(doc *dom.Document, opts ...Option) *Registry {
	reg, err := NewRegistry(doc, opts...)
	if err != nil {
		panic(err)
	}
	return reg
}

// Document returns the document the registry drives.
func (r *Registry) Document() *dom.Document {
	return r.doc
}

// Scheduler returns the registry's deferred-callback queue. The driving
// goroutine flushes it after each batch of synchronous work.
func (r *Registry) Scheduler() *scheduler.Queue {
	return r.sched
}

// Styles returns the registry's style manager.
func (r *Registry) Styles() *style.Manager {
	return r.styles
}

// Define registers a component type under tag and upgrades already connected
// elements with that tag. Tags must be lowercase and contain a dash.
func (r *Registry) Define(tag string, def *Definition) error {
	if !validTag(tag) {
		return &errors.UmbraError{
			Op:   "component.Define",
			Kind: errors.KindDefine,
			Err:  fmt.Errorf("%w: %q", ErrInvalidTag, tag),
			Tag:  tag,
		}
	}
	if _, exists := r.defs[tag]; exists {
		return &errors.UmbraError{
			Op:   "component.Define",
			Kind: errors.KindDefine,
			Err:  ErrDuplicateTag,
			Tag:  tag,
		}
	}
	r.defs[tag] = def
	Logger().Debug("component defined", zap.String("tag", tag))

	// Elements with this tag may already be in the tree; upgrade the
	// connected ones now.
	r.doc.Walk(func(el *dom.Element) {
		if el.Tag() == tag && !el.Upgraded() && el.Connected() {
			r.upgrade(el)
		}
	})
	return nil
}

// Defined reports whether tag has a definition on this registry.
func (r *Registry) Defined(tag string) bool {
	_, ok := r.defs[tag]
	return ok
}

// Instance returns the live instance upgraded onto el, or nil.
func (r *Registry) Instance(el *dom.Element) *Instance {
	return r.live[el]
}

// upgrade turns el into a component instance when its tag is defined.
// Upgrades happen at most once per element.
func (r *Registry) upgrade(el *dom.Element) {
	if el.Upgraded() {
		return
	}
	def, ok := r.defs[el.Tag()]
	if !ok {
		return
	}
	el.MarkUpgraded()

	inst := &Instance{
		id:       nextInstanceID(),
		def:      def,
		registry: r,
		host:     el,
	}
	r.live[el] = inst

	reconcile(inst)
	if def.Init != nil {
		def.Init(inst)
	}
	el.ObserveConnection(inst.connected, inst.disconnected)
	if el.Connected() {
		inst.connected()
	}

	Logger().Debug("element upgraded",
		zap.String("tag", el.Tag()),
		zap.Uint64("id", inst.id))
}

// validTag reports whether tag is a usable component name: lowercase, dashed
// and starting with a letter.
func validTag(tag string) bool {
	if tag == "" || tag[0] < 'a' || tag[0] > 'z' {
		return false
	}
	if !strings.Contains(tag, "-") {
		return false
	}
	return tag == strings.ToLower(tag)
}
