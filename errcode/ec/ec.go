// Package ec is the active backend: downstream code that does not need a
// particular backend uses ec.Code, ec.New and friends, and the composition root
// picks the backend once at build time.
//
// The default is the errno-style backend (syscode). Building with
//
//	go build -tags errcode_rpc
//
// switches to the gRPC backend (rpccode).
package ec
