//go:build js && wasm

package main

import (
	"context"
	"crypto/rand"
	"fmt"
	"syscall/js"

	"github.com/smallyu/go-grumpkin-keygen/internal/batch"
	"github.com/smallyu/go-grumpkin-keygen/internal/crypto/curves"
	"github.com/smallyu/go-grumpkin-keygen/internal/encoding"
	"github.com/smallyu/go-grumpkin-keygen/internal/keygen"
	"github.com/smallyu/go-grumpkin-keygen/internal/verify"
)

func main() {
	c := make(chan struct{}, 0)

	fmt.Println("Go Grumpkin keygen WASM Initialized")

	// Expose Go functions to JS
	js.Global().Set("GoGrumpkinKeygen", map[string]interface{}{
		"Generate": js.FuncOf(Generate),
		"Verify":   js.FuncOf(Verify),
	})

	<-c
}

// Generate creates a batch of key pairs.
// Arguments:
// 0: count (number)
// 1: curve name (string, optional, default "grumpkin")
// Returns:
// JSON array of records, or an "error: ..." string
func Generate(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 || len(args) > 2 {
		return "error: expected 1 or 2 arguments (count, curve)"
	}

	count := args[0].Int()
	curve, err := curveArg(args, 1)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	// the browser's crypto.getRandomValues backs crypto/rand under js/wasm
	b, err := keygen.New(curve, rand.Reader, keygen.WithWorkers(1)).Generate(context.Background(), count)
	if err != nil {
		return fmt.Sprintf("error: generate failed: %v", err)
	}

	data, err := batch.Marshal(b.Records(), batch.FormatJSON)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return string(data)
}

// Verify checks a batch produced by Generate.
// Arguments:
// 0: JSON array of records (string)
// 1: curve name (string, optional, default "grumpkin")
// Returns:
// "ok" or an "error: ..." string
func Verify(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 || len(args) > 2 {
		return "error: expected 1 or 2 arguments (jsonRecords, curve)"
	}

	records, err := batch.Unmarshal([]byte(args[0].String()), batch.FormatJSON)
	if err != nil {
		return fmt.Sprintf("error: invalid records: %v", err)
	}
	curve, err := curveArg(args, 1)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	if err := verify.Records(curve, encoding.Encoder{}, records, 0); err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return "ok"
}

func curveArg(args []js.Value, i int) (curves.Curve, error) {
	name := "grumpkin"
	if len(args) > i && args[i].Type() == js.TypeString {
		name = args[i].String()
	}
	return curves.ByName(name)
}
