// Package scene is a small scene graph annotated for reflgen. Its generated
// files are checked in and exercised by the runtime package tests.
//
//go:generate go run github.com/cmmoran/reflgen generate -i . --index-directory ./sceneindex
package scene
