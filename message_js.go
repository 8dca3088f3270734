package main

import (
	"syscall/js"
)

// listenModelActions feeds inbound host-page messages of type
// "model-action" into ch. Messages with any other type are ignored
// entirely: no response, no error.
func listenModelActions(ch chan<- string) {
	js.Global().Get("window").Call("addEventListener", "message",
		js.FuncOf(func(this js.Value, args []js.Value) interface{} {
			data := args[0].Get("data")
			if data.Type() != js.TypeObject {
				return nil
			}
			typ := data.Get("type")
			if typ.Type() != js.TypeString || typ.String() != "model-action" {
				return nil
			}
			action := data.Get("action")
			if action.Type() != js.TypeString {
				return nil
			}
			ch <- action.String()
			return nil
		}),
	)
}

// notifyReady tells the hosting page that the load sequence completed.
// Sent exactly once, broadcast without origin restriction.
func notifyReady() {
	js.Global().Get("parent").Call("postMessage",
		map[string]interface{}{"type": "iframe-ready"}, "*")
}

// bindActionTriggers dispatches the data-model-action attribute of any
// tagged control element on click.
func bindActionTriggers(dispatch func(string)) {
	doc := js.Global().Get("document")
	nodes := doc.Call("querySelectorAll", "[data-model-action]")
	for i := 0; i < nodes.Length(); i++ {
		el := nodes.Index(i)
		el.Call("addEventListener", "click",
			js.FuncOf(func(this js.Value, args []js.Value) interface{} {
				dispatch(this.Call("getAttribute", "data-model-action").String())
				return nil
			}),
		)
	}
}
