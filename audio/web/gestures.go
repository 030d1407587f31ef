//go:build js
// +build js

package web

import "github.com/gopherjs/gopherjs/js"

// GestureEvents are the document events counted as user gestures.
var GestureEvents = []string{"click", "touchstart"}

// DocumentGestures delivers pointer and touch presses on the document.
type DocumentGestures struct{}

// Subscribe adds fn as a listener for every gesture event. The returned
// function removes the listeners again.
func (DocumentGestures) Subscribe(fn func()) func() {
	doc := js.Global.Get("document")
	listener := js.MakeFunc(func(this *js.Object, args []*js.Object) interface{} {
		go fn()
		return nil
	})
	for _, ev := range GestureEvents {
		doc.Call("addEventListener", ev, listener)
	}
	return func() {
		for _, ev := range GestureEvents {
			doc.Call("removeEventListener", ev, listener)
		}
	}
}
