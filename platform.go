package main

import "runtime"

// isWASM is true when running in a WebAssembly (browser) environment.
var isWASM = (runtime.GOOS == "js" || runtime.GOARCH == "wasm")
