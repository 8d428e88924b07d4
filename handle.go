package basalt

// resource is the private disposal half of every handle type. dispose
// releases the resource and everything under it, without detaching from the
// owner's child list; the exported Dispose methods detach first and then
// call it.
type resource interface {
	dispose()
}

// resourceList tracks an owner's live children in creation order. Owners
// cascade through it on disposal so no native handle outlives a handle
// derived from it, and each handle is released exactly once.
type resourceList struct {
	items []resource
}

func (l *resourceList) adopt(r resource) {
	l.items = append(l.items, r)
}

// orphan removes r from the list. Called by a child disposing itself
// directly; the owner's cascade never touches the list mid-walk.
func (l *resourceList) orphan(r resource) {
	for i, item := range l.items {
		if item == r {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return
		}
	}
}

// disposeAll disposes every child, newest first, mirroring scope-exit
// order.
func (l *resourceList) disposeAll() {
	for i := len(l.items) - 1; i >= 0; i-- {
		l.items[i].dispose()
	}
	l.items = nil
}
