//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/cwbudde/algo-colorimetry/internal/webdemo"
)

var (
	engine *webdemo.Engine
	funcs  []js.Func
)

func main() {
	api := js.Global().Get("Object").New()

	api.Set("init", export(func(args []js.Value) any {
		e, err := webdemo.NewEngine()
		if err != nil {
			return err.Error()
		}
		engine = e
		return js.Null()
	}))

	api.Set("gradient", export(func(args []js.Value) any {
		if engine == nil || len(args) < 3 {
			return js.Null()
		}
		stops, err := engine.Gradient(args[0].Float(), args[1].Float(), args[2].Int())
		if err != nil {
			return err.Error()
		}
		return stopsToJS(stops)
	}))

	api.Set("gradientVolts", export(func(args []js.Value) any {
		if engine == nil || len(args) < 3 {
			return js.Null()
		}
		stops, err := engine.GradientVolts(args[0].Float(), args[1].Float(), args[2].Int())
		if err != nil {
			return err.Error()
		}
		return stopsToJS(stops)
	}))

	api.Set("linearGradient", export(func(args []js.Value) any {
		if len(args) < 3 {
			return js.Null()
		}
		stops, err := webdemo.LinearGradient(args[0].Float(), args[1].Float(), args[2].Int())
		if err != nil {
			return err.Error()
		}
		return stopsToJS(stops)
	}))

	api.Set("voltsToKelvin", export(func(args []js.Value) any {
		if engine == nil || len(args) < 1 {
			return js.Null()
		}
		return engine.VoltsToKelvin(args[0].Float())
	}))

	js.Global().Set("BlackBodyDemo", api)
	select {}
}

func stopsToJS(stops []webdemo.Stop) js.Value {
	arr := js.Global().Get("Array").New(len(stops))
	for i, s := range stops {
		obj := js.Global().Get("Object").New()
		obj.Set("kelvin", s.Kelvin)
		obj.Set("volts", s.Volts)
		obj.Set("hex", s.Hex)
		arr.SetIndex(i, obj)
	}
	return arr
}

func export(fn func([]js.Value) any) js.Func {
	f := js.FuncOf(func(_ js.Value, args []js.Value) any {
		return fn(args)
	})
	funcs = append(funcs, f)
	return f
}
