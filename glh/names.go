// SPDX-License-Identifier: GPL-2.0-or-later

package glh

// names maps TexIDs to backend texture objects. IDs count up from 1 and are
// never handed out twice, even when the backend reuses its own names.
type names[T any] struct {
	objects map[TexID]T
	next    TexID
}

func newNames[T any]() names[T] {
	return names[T]{objects: make(map[TexID]T)}
}

func (n *names[T]) add(o T) TexID {
	n.next++
	n.objects[n.next] = o
	return n.next
}

func (n *names[T]) get(id TexID) (T, bool) {
	o, ok := n.objects[id]
	return o, ok
}

func (n *names[T]) remove(id TexID) (T, bool) {
	o, ok := n.objects[id]
	if ok {
		delete(n.objects, id)
	}
	return o, ok
}
