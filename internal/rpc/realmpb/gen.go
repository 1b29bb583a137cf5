// Package realmpb holds the realm control plane schema and its generated
// stubs. Regenerate from the repository root after editing realm.proto.
package realmpb

//go:generate protoc --proto_path=../../.. --go_out=../../.. --go_opt=paths=source_relative --go-grpc_out=../../.. --go-grpc_opt=paths=source_relative internal/rpc/realmpb/realm.proto
