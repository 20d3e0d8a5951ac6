// Package graphql exposes the timeline over GraphQL alongside the REST API.
// The executable schema and input models under generated/ are produced by
// gqlgen from schema/*.graphql; run go generate ./... before building.
package graphql

//go:generate go run github.com/99designs/gqlgen generate
