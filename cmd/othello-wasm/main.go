//go:build js && wasm

// Command othello-wasm exposes the text engine to JavaScript. Every exported
// function returns {ok: true, value} or {ok: false, error, kind}.
package main

import (
	"fmt"
	"syscall/js"

	"othello/internal/engine"
)

func main() {
	c := make(chan struct{})

	exports := map[string]func(args []js.Value) (any, error){
		"othelloInit": func(args []js.Value) (any, error) {
			size, err := uintArg(args, 0)
			if err != nil {
				return nil, err
			}
			return engine.TextInit(size)
		},
		"othelloLegalMoveCount": func(args []js.Value) (any, error) {
			if err := wantArgs(args, 2); err != nil {
				return nil, err
			}
			return engine.TextLegalMoveCount(args[0].String(), args[1].String())
		},
		"othelloIsLegal": func(args []js.Value) (any, error) {
			if err := wantArgs(args, 3); err != nil {
				return nil, err
			}
			return engine.TextIsLegal(args[0].String(), args[1].String(), args[2].String())
		},
		"othelloScores": func(args []js.Value) (any, error) {
			if err := wantArgs(args, 1); err != nil {
				return nil, err
			}
			s, err := engine.TextScores(args[0].String())
			if err != nil {
				return nil, err
			}
			return map[string]any{"black": s.Black, "white": s.White}, nil
		},
		"othelloScoreFor": func(args []js.Value) (any, error) {
			if err := wantArgs(args, 2); err != nil {
				return nil, err
			}
			return engine.TextScoreFor(args[0].String(), args[1].String())
		},
		"othelloPlace": func(args []js.Value) (any, error) {
			if err := wantArgs(args, 3); err != nil {
				return nil, err
			}
			return engine.TextPlace(args[0].String(), args[1].String(), args[2].String())
		},
		"othelloAIMove": func(args []js.Value) (any, error) {
			strength, err := uintArg(args, 2)
			if err != nil {
				return nil, err
			}
			return engine.TextAIMove(args[0].String(), args[1].String(), strength)
		},
		"othelloRender": func(args []js.Value) (any, error) {
			if err := wantArgs(args, 1); err != nil {
				return nil, err
			}
			grid, err := engine.TextRender(args[0].String())
			if err != nil {
				return nil, err
			}
			rows := make([]any, len(grid))
			for y, row := range grid {
				cells := make([]any, len(row))
				for x, cell := range row {
					cells[x] = cell
				}
				rows[y] = cells
			}
			return rows, nil
		},
	}

	for name, fn := range exports {
		js.Global().Set(name, js.FuncOf(wrap(fn)))
	}
	js.Global().Set("othelloReady", js.ValueOf(true))

	fmt.Println("othello wasm engine initialized")
	<-c
}

func wrap(fn func(args []js.Value) (any, error)) func(this js.Value, args []js.Value) any {
	return func(this js.Value, args []js.Value) any {
		value, err := fn(args)
		if err != nil {
			return map[string]any{"ok": false, "error": err.Error(), "kind": engine.Kind(err)}
		}
		return map[string]any{"ok": true, "value": value}
	}
}

func wantArgs(args []js.Value, n int) error {
	if len(args) < n {
		return fmt.Errorf("expected %d arguments, got %d", n, len(args))
	}
	return nil
}

// uintArg reads args[i] as a non-negative integer.
func uintArg(args []js.Value, i int) (uint, error) {
	if err := wantArgs(args, i+1); err != nil {
		return 0, err
	}
	v := args[i]
	if v.Type() != js.TypeNumber {
		return 0, fmt.Errorf("argument %d must be a number", i)
	}
	n := v.Int()
	if n < 0 {
		return 0, fmt.Errorf("argument %d must not be negative, got %d", i, n)
	}
	return uint(n), nil
}
